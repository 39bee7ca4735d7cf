// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package validatormanager

import (
	"github.com/luxfi/stakecli/pkg/models"
	"go.uber.org/zap"
)

// finalize writes the call onto tx. The gas limit is computed first so that a
// failure leaves tx untouched. Node scoped operations pay the base cost once
// per node, every other operation pays it once.
func (b *Builder) finalize(
	tx *models.TransactionRequest,
	op models.Operation,
	data string,
	nodes int,
	estimateGas bool,
) error {
	factor := uint64(1)
	if op.IsNodeScoped() {
		factor = uint64(nodes)
	}
	var gasLimit uint64
	if estimateGas {
		var err error
		gasLimit, err = b.conf.Gas.EstimateOperation(op, data, factor)
		if err != nil {
			return err
		}
	}
	tx.Receiver = b.conf.StakingContract
	tx.Data = data
	if estimateGas {
		tx.GasLimit = gasLimit
	}
	b.log.Debug("prepared staking transaction",
		zap.Stringer("operation", op),
		zap.Int("dataBytes", len(data)),
		zap.Uint64("factor", factor),
		zap.Bool("estimatedGas", estimateGas),
		zap.Uint64("gasLimit", tx.GasLimit),
	)
	return nil
}

// build runs prepare on a fresh request.
func build(prepare func(*models.TransactionRequest) error) (*models.TransactionRequest, error) {
	tx := &models.TransactionRequest{}
	if err := prepare(tx); err != nil {
		return nil, err
	}
	return tx, nil
}
