// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"fmt"

	"github.com/cockroachdb/crlib/crhumanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats [<input>...]",
	Short: "intern the fields of the inputs and print arena statistics",
	Long: `
Splits every input on the separator, interns each field and prints the
resulting arena usage. Repeated fields share storage, so the number of
interned strings is the number of distinct fields.
`,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	s := newStore()
	sep := s.ToSpan(separator)
	var fields int
	for _, arg := range args {
		for field := range s.Fields(s.ToSpan(arg), sep) {
			s.InternSpan(field)
			fields++
		}
	}

	m := s.Metrics()
	tbl := tablewriter.NewWriter(cmd.OutOrStdout())
	tbl.SetHeader([]string{"Fields", "Interned", "Allocations", "Size", "Capacity"})
	tbl.Append([]string{
		fmt.Sprint(fields),
		fmt.Sprint(m.Interned),
		fmt.Sprint(m.Allocations),
		string(crhumanize.Bytes(m.ArenaSize, crhumanize.Compact, crhumanize.OmitI)),
		string(crhumanize.Bytes(m.ArenaCapacity, crhumanize.Compact, crhumanize.OmitI)),
	})
	tbl.Render()
	return nil
}
