// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txutils

import "github.com/luxfi/stakecli/pkg/models"

// GetDisplayName returns the name shown to the user for an operation.
func GetDisplayName(op models.Operation) string {
	switch op {
	case models.Stake:
		return "Stake"
	case models.Unstake:
		return "Unstake"
	case models.Unbond:
		return "Unbond"
	case models.Unjail:
		return "Unjail"
	case models.ChangeRewardAddress:
		return "Change Reward Address"
	case models.Claim:
		return "Claim Rewards"
	}
	return "Unknown"
}
