// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// spanstr is a small tool for exercising span operations from the command
// line.
package main

import (
	"log"
	"os"

	"github.com/cockroachdb/spanstrings"
	"github.com/spf13/cobra"
)

var (
	initialSize int
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "spanstr [command] (flags)",
	Short: "span string introspection tool",
	Long:  ``,
	// Usage is not useful for errors returned by the operations themselves.
	SilenceUsage: true,
}

func init() {
	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(
		splitCmd,
		concatCmd,
		sliceCmd,
		compareCmd,
		statsCmd,
	)

	rootCmd.PersistentFlags().IntVar(
		&initialSize, "initial-size", 0, "initial arena size in bytes (0 uses the default)")
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "log arena growth")

	for _, cmd := range []*cobra.Command{splitCmd, statsCmd} {
		cmd.Flags().StringVarP(
			&separator, "sep", "s", ",", "field separator")
	}
}

func main() {
	log.SetFlags(0)

	if err := rootCmd.Execute(); err != nil {
		// Cobra has already printed the error message.
		os.Exit(1)
	}
}

func newStore() *spanstrings.Store {
	return spanstrings.NewStore(&spanstrings.Options{
		InitialSize: initialSize,
		Verbose:     verbose,
	})
}
