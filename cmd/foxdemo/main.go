// Copyright 2026 The fox Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command foxdemo draws on a framebuffer device with the fox library.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"github.com/foxos/fox"
	_ "github.com/foxos/fox/framebuffer/linuxfb"
	_ "github.com/foxos/fox/framebuffer/sixelfb"
	_ "github.com/foxos/fox/framebuffer/termfb"
)

var rootCmd = &cobra.Command{
	Use:          filepath.Base(os.Args[0]),
	Short:        "foxdemo draws on a framebuffer",
	Long:         "foxdemo draws shapes and bitmap text on a framebuffer device",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			fox.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
		os.Exit(1)
	},
}

var (
	debugFlag   bool
	verboseFlag bool
)

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, `debug`, `d`, false, `print error stack traces`)
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, `verbose`, `v`, false, `log to stderr`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		report(err)
		os.Exit(1)
	}
}

// run executes fn and returns its error. Commands return through cobra so
// their deferred cleanup (restoring the terminal) runs before main exits.
func run(fn func() error) error {
	if fn == nil {
		return errors.New(`nil command`)
	}
	return fn()
}

// report prints err, with a stack trace under --debug.
func report(err error) {
	if stackFramer, ok := err.(interface{ ErrorStack() string }); debugFlag && ok {
		fmt.Fprintln(os.Stderr, stackFramer.ErrorStack())
	} else {
		fmt.Fprintln(os.Stderr, err.Error())
	}
}
