// SPDX-License-Identifier: MIT

package chart

import "errors"

var (
	// ErrNoPoints indicates a scan or render with nothing to draw.
	ErrNoPoints = errors.New("chart: no points to draw")

	// ErrBadImageFormat indicates an unsupported output encoding.
	ErrBadImageFormat = errors.New("chart: unsupported image format")
)
