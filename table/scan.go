// SPDX-License-Identifier: MIT

package table

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// commentPrefix starts a line that is ignored entirely.
const commentPrefix = "#"

// scanLines calls fn with the 1-based number and trimmed text of every line
// that is neither blank nor a comment. The first error from fn stops the scan.
func scanLines(r io.Reader, fn func(n int, text string) error) error {
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, commentPrefix) {
			continue
		}
		if err := fn(n, text); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read after line %d: %w", n, err)
	}
	return nil
}

// parseFields converts every field to a finite float64.
// The returned error is the *strconv.NumError or wraps ErrNonFinite.
func parseFields(fields []string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("field %d %q: %w", i+1, f, ErrNonFinite)
		}
		out[i] = v
	}
	return out, nil
}
