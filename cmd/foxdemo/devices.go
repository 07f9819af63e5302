// Copyright 2026 The fox Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/foxos/fox/framebuffer"
)

func init() { rootCmd.AddCommand(devicesCmd) }

var devicesCmd = &cobra.Command{
	Use:   `devices`,
	Short: `list framebuffer backends`,
	Long:  `list registered framebuffer backends by priority`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(listDevices)
	},
}

func listDevices() error {
	for _, name := range framebuffer.List() {
		b, ok := framebuffer.Get(name)
		if !ok {
			continue
		}
		state := `unavailable`
		if b.Available() {
			state = `available`
		}
		fmt.Printf("%-10s %4d  %s\n", b.Name, b.Priority, state)
	}
	return nil
}
