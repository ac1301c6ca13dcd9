// SPDX-License-Identifier: MIT

// Command yellowhiggs prints Higgs production cross sections, branching
// ratios and σ×BR with their uncertainties, lists the tabulated keys and
// plots mass scans.
//
//	yellowhiggs xs   --energy 8 --mass 125 --mode ggf
//	yellowhiggs br   --mass 125 --channel gamgam --error-type percent
//	yellowhiggs xsbr --energy 8 --mass 125 --mode ggf --channel gamgam
//	yellowhiggs list
//	yellowhiggs plot --energy 8 --mode ggf --channel gamgam --out scan.png
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
