// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

func ListConfig(extraArgs ...string) (string, error) {
	return Run(append([]string{ConfigCmd, "list"}, extraArgs...)...)
}

func InitConfig(extraArgs ...string) (string, error) {
	return Run(append([]string{ConfigCmd, "init"}, extraArgs...)...)
}
