// SPDX-License-Identifier: MIT

package table

import "sort"

// brKey is the composite key of a branching-ratio entry.
type brKey struct {
	channel string
	mass    float64
}

// BRTable holds every branching ratio under (channel, mass). Channel names are
// case-sensitive. It is immutable once Load returns.
type BRTable struct {
	entries  map[brKey]BREntry
	channels []string
	masses   map[string][]float64
}

// newBRTable builds a sealed table from merged channel rows.
func newBRTable(merged map[string]map[float64]BREntry) *BRTable {
	t := &BRTable{
		entries: make(map[brKey]BREntry),
		masses:  make(map[string][]float64, len(merged)),
	}
	for ch, rows := range merged {
		t.channels = append(t.channels, ch)
		ms := make([]float64, 0, len(rows))
		for mass, e := range rows {
			t.entries[brKey{channel: ch, mass: mass}] = e
			ms = append(ms, mass)
		}
		sort.Float64s(ms)
		t.masses[ch] = ms
	}
	sort.Strings(t.channels)
	return t
}

// Lookup returns the entry for (channel, mass). No case folding is applied.
func (t *BRTable) Lookup(channel string, mass float64) (BREntry, bool) {
	e, ok := t.entries[brKey{channel: channel, mass: mass}]
	return e, ok
}

// Len is the number of tabulated (channel, mass) points.
func (t *BRTable) Len() int { return len(t.entries) }

// Channels lists channel names in lexical order.
func (t *BRTable) Channels() []string {
	return append([]string(nil), t.channels...)
}

// HasChannel reports whether channel is tabulated, matching case exactly.
func (t *BRTable) HasChannel(channel string) bool {
	_, ok := t.masses[channel]
	return ok
}

// Masses lists the masses tabulated for channel in ascending order.
func (t *BRTable) Masses(channel string) []float64 {
	return append([]float64(nil), t.masses[channel]...)
}
