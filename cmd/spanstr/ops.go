// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var separator string

var splitCmd = &cobra.Command{
	Use:   "split <input>",
	Short: "print the separator-delimited fields of the input, one per line",
	Args:  cobra.ExactArgs(1),
	RunE:  runSplit,
}

var concatCmd = &cobra.Command{
	Use:   "concat <a> <b>",
	Short: "print the concatenation of two strings",
	Args:  cobra.ExactArgs(2),
	RunE:  runConcat,
}

var sliceCmd = &cobra.Command{
	Use:   "slice <input> <start> <len>",
	Short: "print len bytes of the input starting at start",
	Args:  cobra.ExactArgs(3),
	RunE:  runSlice,
}

var compareCmd = &cobra.Command{
	Use:   "compare {equals|starts-with|ends-with} <a> <b>",
	Short: "compare two strings",
	Args:  cobra.ExactArgs(3),
	RunE:  runCompare,
}

func runSplit(cmd *cobra.Command, args []string) error {
	s := newStore()
	for field := range s.Fields(s.ToSpan(args[0]), s.ToSpan(separator)) {
		fmt.Fprintln(cmd.OutOrStdout(), s.ToString(field))
	}
	return nil
}

func runConcat(cmd *cobra.Command, args []string) error {
	s := newStore()
	fmt.Fprintln(cmd.OutOrStdout(), s.ConcatStrings(args[0], args[1]))
	return nil
}

func runSlice(cmd *cobra.Command, args []string) error {
	start, err := strconv.Atoi(args[1])
	if err != nil {
		return errors.Wrapf(err, "invalid start %q", args[1])
	}
	n, err := strconv.Atoi(args[2])
	if err != nil {
		return errors.Wrapf(err, "invalid length %q", args[2])
	}
	s := newStore()
	sp, err := s.GetSlice(s.ToSpan(args[0]), start, n)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), s.ToString(sp))
	return nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	s := newStore()
	a, b := s.ToSpan(args[1]), s.ToSpan(args[2])
	var result bool
	switch args[0] {
	case "equals":
		result = s.Equals(a, b)
	case "starts-with":
		result = s.StartsWith(a, b)
	case "ends-with":
		result = s.EndsWith(a, b)
	default:
		return errors.Newf("unknown comparison %q", args[0])
	}
	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}
