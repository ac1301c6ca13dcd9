// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (a *app) newListCmd() *cobra.Command {
	var masses bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tabulated energies, production modes and decay channels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "tables\t%s\n", tablesName(a.cfg))

			for _, e := range a.store.Energies() {
				modes, err := a.store.ModesAt(e)
				if err != nil {
					return err
				}
				if !masses {
					fmt.Fprintf(tw, "%s TeV\t%s\n", num(e), strings.Join(modes, " "))
					continue
				}
				for _, m := range modes {
					ms, err := a.store.Masses(e, m)
					if err != nil {
						return err
					}
					fmt.Fprintf(tw, "%s TeV %s\t%s\n", num(e), m, joinNums(ms))
				}
			}

			if !masses {
				fmt.Fprintf(tw, "channels\t%s\n", strings.Join(a.store.Channels(), " "))
				return tw.Flush()
			}
			for _, ch := range a.store.Channels() {
				ms, err := a.store.ChannelMasses(ch)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "br %s\t%s\n", ch, joinNums(ms))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&masses, "masses", false, "also list the tabulated masses")
	return cmd
}

func joinNums(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = num(v)
	}
	return strings.Join(parts, " ")
}
