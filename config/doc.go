// SPDX-License-Identifier: MIT

// Package config reads the YAML settings shared by the yellowhiggs command
// and by programs that embed the lookup library.
//
// ⚙️ File layout:
//
//	tables:
//	  root: ""              # directory holding xs/ and br/; empty = embedded data
//	  xs_format: scale_pdf  # scale_pdf | full | full_scale_pdf
//	  duplicates: warn      # warn | reject
//	log:
//	  level: info           # debug | info | warn | error
//	  format: console       # console | json
//	query:
//	  error: full           # full | scale | pdf
//	  error_type: value     # value | percent | factor
//
// Every key may be overridden by an environment variable named
// YELLOWHIGGS_<SECTION>_<KEY>, e.g. YELLOWHIGGS_TABLES_ROOT. Overrides are
// applied after the file and before Validate.
//
// A missing file is not an error: Load returns Default with overrides applied.
package config
