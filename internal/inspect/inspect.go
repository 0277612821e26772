package inspect

import (
	"fmt"
	"io"
	"strings"
)

// Substring conventions for mass-like and size-like NSA column names.
// Diagnostic only: the columns the pipeline actually consumes are fixed.
var (
	massKeys = []string{"MASS", "MSTAR"}
	sizeKeys = []string{"TH50", "PETRO", "SERSIC", "R50"}
)

// headListing caps the unconditional name dump
const headListing = 30

// Columns prints the first 30 column names, then every name matching the
// mass-like and size-like conventions
func Columns(w io.Writer, names []string) {
	fmt.Fprintf(w, "\nFirst %d column names:\n", headListing)
	for i, name := range names {
		if i >= headListing {
			break
		}
		fmt.Fprintln(w, name)
	}

	fmt.Fprintln(w, "\n=== Stellar mass related columns ===")
	for _, name := range matching(names, massKeys) {
		fmt.Fprintln(w, name)
	}

	fmt.Fprintln(w, "\n=== Galaxy size related columns ===")
	for _, name := range matching(names, sizeKeys) {
		fmt.Fprintln(w, name)
	}
}

func matching(names, keys []string) []string {
	var out []string
	for _, name := range names {
		upper := strings.ToUpper(name)
		for _, key := range keys {
			if strings.Contains(upper, key) {
				out = append(out, name)
				break
			}
		}
	}
	return out
}
