// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

// TransactionRequest is the transaction handed to the signing and submission
// layer. The staking builders only write Receiver, Data and GasLimit, the
// remaining fields belong to the caller.
type TransactionRequest struct {
	Nonce     uint64 `json:"nonce"`
	Value     string `json:"value"`
	Receiver  string `json:"receiver"`
	Sender    string `json:"sender"`
	GasPrice  uint64 `json:"gasPrice"`
	GasLimit  uint64 `json:"gasLimit"`
	Data      string `json:"data,omitempty"`
	Signature string `json:"signature,omitempty"`
	ChainID   string `json:"chainID"`
	Version   uint32 `json:"version"`
}

// ContractCall is a system smart contract invocation: a function name followed
// by hex encoded arguments, rendered as `fn@arg1@arg2`.
type ContractCall struct {
	Function string
	Args     []string
}
