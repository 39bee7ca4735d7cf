// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOperation(t *testing.T) {
	tests := []struct {
		op         Operation
		function   string
		nodeScoped bool
	}{
		{Stake, "stake", true},
		{Unstake, "unStake", true},
		{Unbond, "unBond", true},
		{Unjail, "unJail", true},
		{ChangeRewardAddress, "changeRewardAddress", false},
		{Claim, "claim", false},
	}
	require.Len(t, Operations, len(tests))
	for i, tt := range tests {
		t.Run(tt.function, func(t *testing.T) {
			require := require.New(t)
			require.Equal(tt.op, Operations[i])
			require.Equal(tt.function, tt.op.String())
			require.Equal(tt.nodeScoped, tt.op.IsNodeScoped())
		})
	}
	require.False(t, Operation("unstake").IsNodeScoped())
	require.False(t, Operation("").IsNodeScoped())
}
