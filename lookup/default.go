// SPDX-License-Identifier: MIT

package lookup

import (
	"io/fs"
	"sync"

	"github.com/katalvlaran/yellowhiggs/data"
	"github.com/katalvlaran/yellowhiggs/errband"
	"github.com/katalvlaran/yellowhiggs/table"
)

// Process-wide default Store, built at most once.
var (
	defaultOnce  sync.Once
	defaultStore *Store
	defaultErr   error
)

// Init builds the default Store from fsys. Only the first call does any work;
// later calls return the first call's error and ignore their arguments.
func Init(fsys fs.FS, opts ...table.Option) error {
	defaultOnce.Do(func() {
		defaultStore, defaultErr = New(fsys, opts...)
	})
	return defaultErr
}

// Default returns the default Store, building it from the embedded data.FS
// if Init has not been called.
func Default() (*Store, error) {
	if err := Init(data.FS); err != nil {
		return nil, err
	}
	return defaultStore, nil
}

// XS queries the default Store. See Store.XS.
func XS(energy, mass float64, mode string, opts ...QueryOption) (float64, errband.Pair, error) {
	s, err := Default()
	if err != nil {
		return 0, errband.Pair{}, err
	}
	return s.XS(energy, mass, mode, opts...)
}

// BR queries the default Store. See Store.BR.
func BR(mass float64, channel string, opts ...QueryOption) (float64, errband.Pair, error) {
	s, err := Default()
	if err != nil {
		return 0, errband.Pair{}, err
	}
	return s.BR(mass, channel, opts...)
}

// XSBR queries the default Store. See Store.XSBR.
func XSBR(energy, mass float64, mode, channel string, opts ...QueryOption) (float64, errband.Pair, error) {
	s, err := Default()
	if err != nil {
		return 0, errband.Pair{}, err
	}
	return s.XSBR(energy, mass, mode, channel, opts...)
}

// Energies lists the energies of the default Store.
func Energies() ([]float64, error) {
	s, err := Default()
	if err != nil {
		return nil, err
	}
	return s.Energies(), nil
}

// Modes maps energies to production modes in the default Store.
func Modes() (map[float64][]string, error) {
	s, err := Default()
	if err != nil {
		return nil, err
	}
	return s.Modes(), nil
}
