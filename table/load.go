// SPDX-License-Identifier: MIT

package table

import (
	"fmt"
	"io"
	"io/fs"
	"math"
	"path"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Directory layout of a table tree.
const (
	XSDir    = "xs"   // xs/<energy>/<mode>.txt
	BRDir    = "br"   // br/*.txt
	TableExt = ".txt" // only files with this extension are read
)

// Tables is the result of Load: one cross-section and one branching-ratio table.
type Tables struct {
	XS *XSTable
	BR *BRTable
}

// Load reads every table under fsys once and returns immutable lookup tables.
//
// Layout:
//
//	xs/<energy>/<mode>.txt  energy parsed as a float (TeV); mode is the base
//	                        name up to the first ".", folded to lower case
//	br/*.txt                parsed in lexical order and merged by channel
//
// Files without the .txt extension are skipped. Any error aborts the load.
//
// Errors: ErrLayout (missing directory, energy directory that is not a
// positive number, empty mode name), ErrDuplicate (energy, mode or, under
// DuplicateReject, channel defined twice), *ParseError from the parsers with
// Source set to the offending file.
func Load(fsys fs.FS, opts ...Option) (*Tables, error) {
	cfg := newLoadConfig(opts...)

	xs, err := loadXS(fsys, cfg)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	br, err := loadBR(fsys, cfg)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}

	cfg.logger.Info("tables loaded",
		zap.Int("energies", len(xs.energies)),
		zap.Int("xs_points", xs.Len()),
		zap.Int("channels", len(br.channels)),
		zap.Int("br_points", br.Len()),
		zap.Stringer("xs_format", cfg.format),
	)
	return &Tables{XS: xs, BR: br}, nil
}

// loadXS walks xs/<energy>/<mode>.txt.
func loadXS(fsys fs.FS, cfg loadConfig) (*XSTable, error) {
	dirs, err := fs.ReadDir(fsys, XSDir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w: %w", XSDir, ErrLayout, err)
	}

	t := newXSTable()
	energyDir := make(map[float64]string)
	for _, d := range dirs {
		if !d.IsDir() {
			cfg.logger.Debug("skipping non-directory", zap.String("path", path.Join(XSDir, d.Name())))
			continue
		}
		energy, err := parseEnergy(d.Name())
		if err != nil {
			return nil, err
		}
		if prev, dup := energyDir[energy]; dup {
			return nil, fmt.Errorf("energy %g in both %s and %s: %w", energy, prev, d.Name(), ErrDuplicate)
		}
		energyDir[energy] = d.Name()
		t.addEnergy(energy)

		if err := loadEnergy(fsys, cfg, t, energy, path.Join(XSDir, d.Name())); err != nil {
			return nil, err
		}
	}
	t.seal()
	return t, nil
}

// parseEnergy reads an energy directory name such as "7", "8" or "13.6".
func parseEnergy(name string) (float64, error) {
	energy, err := strconv.ParseFloat(name, 64)
	if err != nil {
		return 0, fmt.Errorf("energy directory %q: %w: %w", name, ErrLayout, err)
	}
	if energy <= 0 || math.IsInf(energy, 0) || math.IsNaN(energy) {
		return 0, fmt.Errorf("energy directory %q must be a positive number: %w", name, ErrLayout)
	}
	return energy, nil
}

// loadEnergy parses every mode file of one energy directory into t.
func loadEnergy(fsys fs.FS, cfg loadConfig, t *XSTable, energy float64, dir string) error {
	files, err := tableFiles(fsys, cfg, dir)
	if err != nil {
		return err
	}
	modeFile := make(map[string]string, len(files))
	for _, name := range files {
		mode := FoldMode(strings.SplitN(name, ".", 2)[0])
		if mode == "" {
			return fmt.Errorf("%s: empty mode name: %w", path.Join(dir, name), ErrLayout)
		}
		if prev, dup := modeFile[mode]; dup {
			return fmt.Errorf("mode %q in both %s and %s: %w", mode, path.Join(dir, prev), path.Join(dir, name), ErrDuplicate)
		}
		modeFile[mode] = name

		p := path.Join(dir, name)
		rows, err := readTable(fsys, p, func(r io.Reader) (map[float64]XSEntry, error) {
			return ParseXS(r, cfg.format)
		})
		if err != nil {
			return err
		}
		t.addMode(energy, mode, rows)
		cfg.logger.Debug("cross-section table read",
			zap.String("file", p),
			zap.Float64("energy", energy),
			zap.String("mode", mode),
			zap.Int("masses", len(rows)),
		)
	}
	return nil
}

// loadBR parses br/*.txt and merges the channels.
func loadBR(fsys fs.FS, cfg loadConfig) (*BRTable, error) {
	files, err := tableFiles(fsys, cfg, BRDir)
	if err != nil {
		return nil, err
	}

	merged := make(map[string]map[float64]BREntry)
	owner := make(map[string]string)
	for _, name := range files {
		p := path.Join(BRDir, name)
		chans, err := readTable(fsys, p, ParseBR)
		if err != nil {
			return nil, err
		}

		names := make([]string, 0, len(chans))
		for ch := range chans {
			names = append(names, ch)
		}
		sort.Strings(names)
		for _, ch := range names {
			if prev, dup := owner[ch]; dup {
				if cfg.duplicates == DuplicateReject {
					return nil, fmt.Errorf("channel %q in both %s and %s: %w", ch, prev, p, ErrDuplicate)
				}
				cfg.logger.Warn("branching-ratio channel redefined; later file wins",
					zap.String("channel", ch),
					zap.String("previous", prev),
					zap.String("file", p),
				)
			}
			owner[ch] = p
			merged[ch] = chans[ch]
		}
		cfg.logger.Debug("branching-ratio table read", zap.String("file", p), zap.Strings("channels", names))
	}
	return newBRTable(merged), nil
}

// tableFiles lists the *.txt regular files of dir in lexical order.
func tableFiles(fsys fs.FS, cfg loadConfig, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w: %w", dir, ErrLayout, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != TableExt {
			cfg.logger.Debug("skipping non-table entry", zap.String("path", path.Join(dir, e.Name())))
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// readTable opens p, hands it to parse and stamps p on any *ParseError.
func readTable[T any](fsys fs.FS, p string, parse func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := fsys.Open(p)
	if err != nil {
		return zero, fmt.Errorf("open %s: %w", p, err)
	}
	defer f.Close()

	out, err := parse(f)
	if err != nil {
		return zero, withSource(err, p)
	}
	return out, nil
}
