// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/yellowhiggs/errband"
)

// key flags shared by xs, br and xsbr.
type keyFlags struct {
	energy  float64
	mass    float64
	mode    string
	channel string
}

func (a *app) newXSCmd() *cobra.Command {
	var k keyFlags
	cmd := &cobra.Command{
		Use:   "xs",
		Short: "Production cross section [pb] at (energy, mass, mode)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, band, err := a.store.XS(k.energy, k.mass, k.mode, a.cfg.QueryOptions()...)
			if err != nil {
				return err
			}
			label := fmt.Sprintf("xs(%s, %s TeV, %s GeV)", k.mode, num(k.energy), num(k.mass))
			return a.printResult(cmd.OutOrStdout(), label, "pb", v, band, true)
		},
	}
	f := cmd.Flags()
	f.Float64Var(&k.energy, "energy", 0, "collision energy [TeV]")
	f.Float64Var(&k.mass, "mass", 0, "Higgs mass [GeV]")
	f.StringVar(&k.mode, "mode", "", "production mode, e.g. ggf, vbf, wh, zh, tth")
	mustMark(cmd, "energy", "mass", "mode")
	return cmd
}

func (a *app) newBRCmd() *cobra.Command {
	var k keyFlags
	cmd := &cobra.Command{
		Use:   "br",
		Short: "Branching ratio at (mass, channel)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, band, err := a.store.BR(k.mass, k.channel, a.cfg.QueryOptions()...)
			if err != nil {
				return err
			}
			label := fmt.Sprintf("br(%s, %s GeV)", k.channel, num(k.mass))
			return a.printResult(cmd.OutOrStdout(), label, "", v, band, false)
		},
	}
	f := cmd.Flags()
	f.Float64Var(&k.mass, "mass", 0, "Higgs mass [GeV]")
	f.StringVar(&k.channel, "channel", "", "decay channel (case-sensitive), e.g. bb, WW, gamgam")
	mustMark(cmd, "mass", "channel")
	return cmd
}

func (a *app) newXSBRCmd() *cobra.Command {
	var k keyFlags
	cmd := &cobra.Command{
		Use:   "xsbr",
		Short: "σ×BR [pb] with both uncertainties added in quadrature",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, band, err := a.store.XSBR(k.energy, k.mass, k.mode, k.channel, a.cfg.QueryOptions()...)
			if err != nil {
				return err
			}
			label := fmt.Sprintf("xsbr(%s→%s, %s TeV, %s GeV)", k.mode, k.channel, num(k.energy), num(k.mass))
			return a.printResult(cmd.OutOrStdout(), label, "pb", v, band, true)
		},
	}
	f := cmd.Flags()
	f.Float64Var(&k.energy, "energy", 0, "collision energy [TeV]")
	f.Float64Var(&k.mass, "mass", 0, "Higgs mass [GeV]")
	f.StringVar(&k.mode, "mode", "", "production mode, e.g. ggf, vbf, wh, zh, tth")
	f.StringVar(&k.channel, "channel", "", "decay channel (case-sensitive), e.g. bb, WW, gamgam")
	mustMark(cmd, "energy", "mass", "mode", "channel")
	return cmd
}

// printResult writes one line: label, central value and band.
// The error source is shown only where it applies.
func (a *app) printResult(w io.Writer, label, unit string, v float64, band errband.Pair, withSource bool) error {
	if unit != "" {
		unit = " " + unit
	}
	rep, _ := a.cfg.Representation()
	var bandText string
	switch rep {
	case errband.Percent:
		bandText = fmt.Sprintf("+%s%% -%s%%", num(band.High), num(band.Low))
	default:
		bandText = fmt.Sprintf("[%s, %s]", num(band.Low), num(band.High))
	}
	what := rep.String()
	if withSource {
		src, _ := a.cfg.Source()
		what = src.String() + " " + what
	}
	_, err := fmt.Fprintf(w, "%s = %s%s  %s (%s)\n", label, num(v), unit, bandText, what)
	return err
}

// num formats v with the shortest exact representation.
func num(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// mustMark marks flags required; a typo in names is a programming error.
func mustMark(cmd *cobra.Command, names ...string) {
	for _, n := range names {
		if err := cmd.MarkFlagRequired(n); err != nil {
			panic(err)
		}
	}
}
