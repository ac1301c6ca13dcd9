// SPDX-License-Identifier: MIT

package config

import "errors"

// ErrInvalid indicates a configuration value outside its allowed set.
var ErrInvalid = errors.New("config: invalid value")
