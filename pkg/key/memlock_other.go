// Copyright (C) 2022-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

//go:build !unix

package key

// lockMemory is a no-op on non-Unix platforms.
func lockMemory([]byte) bool {
	return false
}

func unlockMemory([]byte) {}
