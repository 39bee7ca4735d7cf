// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ux

import (
	"fmt"
	"io"

	"github.com/luxfi/stakecli/pkg/models"
	"github.com/luxfi/stakecli/pkg/txutils"
	"github.com/luxfi/stakecli/pkg/utils"
)

// PrintTransactionRequest renders a prepared request as JSON or as a table.
func PrintTransactionRequest(w io.Writer, op models.Operation, tx *models.TransactionRequest, asJSON bool) error {
	if asJSON {
		return utils.WriteJSON(w, tx)
	}
	gasLimit := "not estimated"
	if tx.GasLimit != 0 {
		gasLimit = ConvertToStringWithThousandSeparator(tx.GasLimit)
	}
	if _, err := fmt.Fprintf(w, "%s transaction\n", txutils.GetDisplayName(op)); err != nil {
		return err
	}
	table := NewCompatTable(w)
	table.SetHeader([]string{"Field", "Value"})
	table.AppendCompat([]string{"Receiver", tx.Receiver})
	table.AppendCompat([]string{"Data", tx.Data})
	table.AppendCompat([]string{"Data size", fmt.Sprintf("%d bytes", len(tx.Data))})
	table.AppendCompat([]string{"Gas limit", gasLimit})
	return table.Render()
}
