// Copyright 2026 The fox Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"encoding/hex"
	"strings"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"github.com/foxos/fox/chardev"
)

func init() {
	sendCmd.Flags().BoolVar(&sendKeyboard, `keyboard`, false, `send to the PS/2 keyboard`)
	sendCmd.Flags().BoolVar(&sendFontRenderer, `font-renderer`, false, `send to the font renderer`)
	sendCmd.Flags().StringVar(&sendRoot, `root`, chardev.DefaultRoot, `directory device names resolve under`)
	sendCmd.MarkFlagsMutuallyExclusive(`keyboard`, `font-renderer`)
	sendCmd.MarkFlagsOneRequired(`keyboard`, `font-renderer`)
	rootCmd.AddCommand(sendCmd)
}

var sendCmd = &cobra.Command{
	Use:   `send HEX...`,
	Short: `send command bytes to a character device`,
	Long:  `send hex encoded command bytes, for example "ed 07", to a character device`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(func() error { return send(args) })
	},
}

var (
	sendKeyboard     bool
	sendFontRenderer bool
	sendRoot         string
)

func send(args []string) error {
	cmd, err := hex.DecodeString(strings.Join(args, ``))
	if err != nil {
		return errors.Wrap(err, 0)
	}

	c := chardev.New(chardev.WithDeviceRoot(sendRoot))
	defer c.Close()

	if sendKeyboard {
		err = c.SendKeyboard(cmd)
	} else {
		err = c.SendFontRenderer(cmd)
	}
	if err != nil {
		return errors.Wrap(err, 0)
	}
	return nil
}
