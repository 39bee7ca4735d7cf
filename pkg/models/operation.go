// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

// Operation is a validator lifecycle call on the staking contract. Its value
// is the contract function name.
type Operation string

const (
	Stake               Operation = "stake"
	Unstake             Operation = "unStake"
	Unbond              Operation = "unBond"
	Unjail              Operation = "unJail"
	ChangeRewardAddress Operation = "changeRewardAddress"
	Claim               Operation = "claim"
)

// Operations lists every supported operation in a stable order.
var Operations = []Operation{Stake, Unstake, Unbond, Unjail, ChangeRewardAddress, Claim}

func (o Operation) String() string {
	return string(o)
}

// IsNodeScoped reports whether the operation acts on a list of nodes, in which
// case its gas cost scales with the number of nodes.
func (o Operation) IsNodeScoped() bool {
	switch o {
	case Stake, Unstake, Unbond, Unjail:
		return true
	}
	return false
}
