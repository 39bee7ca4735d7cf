// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ux

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/luxfi/stakecli/pkg/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConvertToStringWithThousandSeparator(t *testing.T) {
	require.Equal(t, "5_050_000", ConvertToStringWithThousandSeparator(5050000))
	require.Equal(t, "999", ConvertToStringWithThousandSeparator(999))
}

func TestUserLogWritesToUser(t *testing.T) {
	require := require.New(t)
	var out, errOut bytes.Buffer
	NewUserLog(zap.NewNop(), &out, &errOut)

	Logger.GreenCheckmarkToUser("done %d", 1)
	Logger.PrintError("boom: %s", "bad key")

	require.Equal("✓ done 1\n", out.String())
	require.Equal("\nERROR: boom: bad key\n", errOut.String())
}

func TestPrintTransactionRequest(t *testing.T) {
	require := require.New(t)
	tx := &models.TransactionRequest{Receiver: "erd1contract", Data: "claim", GasLimit: 5057500}

	var buf bytes.Buffer
	require.NoError(PrintTransactionRequest(&buf, models.Claim, tx, false))
	require.Contains(buf.String(), "Claim Rewards transaction")
	require.Contains(buf.String(), "erd1contract")
	require.Contains(buf.String(), "5_057_500")

	buf.Reset()
	require.NoError(PrintTransactionRequest(&buf, models.Claim, tx, true))
	var decoded models.TransactionRequest
	require.NoError(json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(*tx, decoded)
}

func TestIsTerminal(t *testing.T) {
	require.False(t, IsTerminal(&bytes.Buffer{}))
}
