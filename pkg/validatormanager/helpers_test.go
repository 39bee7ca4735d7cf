// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package validatormanager

import (
	"testing"

	"github.com/luxfi/stakecli/pkg/config"
	"github.com/luxfi/stakecli/pkg/models"
	"github.com/stretchr/testify/require"
)

func TestFinalizeGasFactor(t *testing.T) {
	tests := []struct {
		op       models.Operation
		nodes    int
		expected uint64
	}{
		{op: models.Stake, nodes: 3, expected: 50_000 + 4*1_500 + 3*5_000_000},
		{op: models.Unjail, nodes: 0, expected: 50_000 + 4*1_500},
		{op: models.Claim, nodes: 0, expected: 50_000 + 4*1_500 + 5_000_000},
		{op: models.ChangeRewardAddress, nodes: 3, expected: 50_000 + 4*1_500 + 5_000_000},
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			require := require.New(t)
			b := New(config.New())
			tx := &models.TransactionRequest{}

			require.NoError(b.finalize(tx, tt.op, "data", tt.nodes, true))
			require.Equal(tt.expected, tx.GasLimit)
			require.Equal("data", tx.Data)
		})
	}
}
