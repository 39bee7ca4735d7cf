// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package flags

import (
	"github.com/spf13/cobra"
)

// TransactionFlags control how a prepared transaction is completed and shown.
type TransactionFlags struct {
	EstimateGas bool
	JSON        bool
}

func AddTransactionFlagsToCmd(cmd *cobra.Command, f *TransactionFlags) {
	cmd.Flags().BoolVar(&f.EstimateGas, "estimate-gas", false, "fill in the gas limit")
	cmd.Flags().BoolVar(&f.JSON, "json", false, "print the transaction request as JSON")
}
