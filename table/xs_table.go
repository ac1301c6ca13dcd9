// SPDX-License-Identifier: MIT

package table

import "sort"

// modeKey groups masses under one (energy, mode) prefix of XSKey.
type modeKey struct {
	energy float64
	mode   string
}

// XSTable holds every cross-section entry under its XSKey, plus sorted
// indexes used to list valid keys. It is immutable once Load returns.
type XSTable struct {
	entries  map[XSKey]XSEntry
	energies []float64
	modes    map[float64][]string
	masses   map[modeKey][]float64
}

// newXSTable returns an empty table ready for addMode.
func newXSTable() *XSTable {
	return &XSTable{
		entries: make(map[XSKey]XSEntry),
		modes:   make(map[float64][]string),
		masses:  make(map[modeKey][]float64),
	}
}

// addEnergy registers energy even if no mode file follows.
func (t *XSTable) addEnergy(energy float64) {
	if _, ok := t.modes[energy]; ok {
		return
	}
	t.modes[energy] = []string{}
	t.energies = append(t.energies, energy)
}

// addMode stores the rows of one (energy, mode) file. mode must be folded.
func (t *XSTable) addMode(energy float64, mode string, rows map[float64]XSEntry) {
	t.addEnergy(energy)
	t.modes[energy] = append(t.modes[energy], mode)
	mk := modeKey{energy: energy, mode: mode}
	t.masses[mk] = make([]float64, 0, len(rows))
	for mass, e := range rows {
		t.entries[XSKey{Energy: energy, Mode: mode, Mass: mass}] = e
		t.masses[mk] = append(t.masses[mk], mass)
	}
}

// seal sorts every index; called once after the last addMode.
func (t *XSTable) seal() {
	sort.Float64s(t.energies)
	for _, ms := range t.modes {
		sort.Strings(ms)
	}
	for _, ms := range t.masses {
		sort.Float64s(ms)
	}
}

// Get returns the entry stored under key. key.Mode must already be folded.
func (t *XSTable) Get(key XSKey) (XSEntry, bool) {
	e, ok := t.entries[key]
	return e, ok
}

// Lookup folds mode and returns the matching entry.
func (t *XSTable) Lookup(energy float64, mode string, mass float64) (XSEntry, bool) {
	return t.Get(XSKey{Energy: energy, Mode: FoldMode(mode), Mass: mass})
}

// Len is the number of tabulated (energy, mode, mass) points.
func (t *XSTable) Len() int { return len(t.entries) }

// Energies lists tabulated energies in ascending order.
func (t *XSTable) Energies() []float64 {
	return append([]float64(nil), t.energies...)
}

// HasEnergy reports whether energy has its own xs directory.
func (t *XSTable) HasEnergy(energy float64) bool {
	_, ok := t.modes[energy]
	return ok
}

// Modes lists the folded mode names tabulated at energy, sorted; nil if the
// energy is unknown.
func (t *XSTable) Modes(energy float64) []string {
	ms, ok := t.modes[energy]
	if !ok {
		return nil
	}
	return append([]string{}, ms...)
}

// HasMode reports whether mode (folded here) is tabulated at energy.
func (t *XSTable) HasMode(energy float64, mode string) bool {
	_, ok := t.masses[modeKey{energy: energy, mode: FoldMode(mode)}]
	return ok
}

// Masses lists the masses tabulated for (energy, mode) in ascending order.
func (t *XSTable) Masses(energy float64, mode string) []float64 {
	ms := t.masses[modeKey{energy: energy, mode: FoldMode(mode)}]
	return append([]float64(nil), ms...)
}
