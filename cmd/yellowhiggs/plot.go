// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/yellowhiggs/chart"
)

func (a *app) newPlotCmd() *cobra.Command {
	var (
		q      chart.Query
		out    string
		format string
	)
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Plot σ (or σ×BR with --channel) against mass with its error band",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = strings.TrimPrefix(filepath.Ext(out), ".")
			}
			f, err := chart.ParseFormat(format)
			if err != nil {
				return err
			}
			if q.Source, err = a.cfg.Source(); err != nil {
				return err
			}

			pts, err := chart.Scan(a.store, q)
			if err != nil {
				return err
			}
			img, err := chart.Render(pts, chart.WithQuery(q), chart.WithFormat(f))
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, img, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			a.logger.Info("plot written",
				zap.String("path", out),
				zap.String("curve", q.Label()),
				zap.Int("points", len(pts)),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d points)\n", out, len(pts))
			return nil
		},
	}
	f := cmd.Flags()
	f.Float64Var(&q.Energy, "energy", 0, "collision energy [TeV]")
	f.StringVar(&q.Mode, "mode", "", "production mode")
	f.StringVar(&q.Channel, "channel", "", "decay channel; plots σ×BR when set")
	f.StringVarP(&out, "out", "o", "", "output file")
	f.StringVar(&format, "format", "", "png, svg or pdf (default: from --out extension)")
	mustMark(cmd, "energy", "mode", "out")
	return cmd
}
