// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/yellowhiggs/config"
	"github.com/katalvlaran/yellowhiggs/lookup"
)

// app carries the state built once per invocation by PersistentPreRunE.
type app struct {
	// global flags
	configPath string
	tablesDir  string
	xsFormat   string
	errSource  string
	errType    string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
	store  *lookup.Store
}

// newRootCmd wires every subcommand around a fresh app.
func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "yellowhiggs",
		Short: "Higgs cross sections and branching ratios from the Yellow Report tables",
		Long: `yellowhiggs looks up tabulated Higgs production cross sections [pb] and
branching ratios by collision energy [TeV], production mode, Higgs mass [GeV]
and decay channel. Values are never interpolated: only tabulated points answer.

Uncertainties are printed for the chosen error source (full, scale or pdf) as
absolute bounds (value), relative magnitudes (percent) or factors (factor).`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file (missing file = defaults)")
	pf.StringVar(&a.tablesDir, "tables", "", "directory holding xs/ and br/ (default: embedded tables)")
	pf.StringVar(&a.xsFormat, "xs-format", "", "cross-section file format: scale_pdf, full or full_scale_pdf")
	pf.StringVar(&a.errSource, "error", "", "cross-section error source: full, scale or pdf")
	pf.StringVar(&a.errType, "error-type", "", "band representation: value, percent or factor")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		a.newXSCmd(),
		a.newBRCmd(),
		a.newXSBRCmd(),
		a.newListCmd(),
		a.newPlotCmd(),
	)
	return root
}

// setup resolves config, then flags over config, then builds logger and store.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	for _, o := range []struct {
		flag  string
		value string
		field *string
	}{
		{"tables", a.tablesDir, &cfg.Tables.Root},
		{"xs-format", a.xsFormat, &cfg.Tables.XSFormat},
		{"error", a.errSource, &cfg.Query.Error},
		{"error-type", a.errType, &cfg.Query.ErrorType},
	} {
		if flags.Changed(o.flag) {
			*o.field = o.value
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := cfg.Logger(a.verbose)
	if err != nil {
		return err
	}

	store, err := lookup.New(cfg.TablesFS(), cfg.TableOptions(logger)...)
	if err != nil {
		return fmt.Errorf("load tables: %w", err)
	}
	logger.Debug("store ready",
		zap.String("tables", tablesName(cfg)),
		zap.Float64s("energies", store.Energies()),
		zap.Strings("channels", store.Channels()),
	)

	a.cfg, a.logger, a.store = cfg, logger, store
	return nil
}

// tablesName describes the table source for logs and listings.
func tablesName(cfg *config.Config) string {
	if cfg.Tables.Root == "" {
		return "embedded"
	}
	return cfg.Tables.Root
}
