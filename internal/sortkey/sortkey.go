// Package sortkey provides the named cell transforms behind the
// --sort-key flag. Each transform maps a cell to a key whose ordinal
// order matches the intended order, so the results can be handed
// straight to the table sorter.
package sortkey

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-version"

	"github.com/tabulatehq/tabulate/internal/util"
)

// Cells that don't parse get keyed under this prefix, which sorts
// after every numeric and version key.
const unparsed = "~"

const (
	fracWidth    = 9
	versionDepth = 8
)

// Numeric keys cells by numeric value. Integer and decimal cells sort
// by value with negatives first, and anything else sorts after the
// numbers by its lowercased text.
func Numeric(cell string) string {
	s := strings.TrimSpace(cell)
	rest := s
	neg := strings.HasPrefix(rest, "-")
	if neg || strings.HasPrefix(rest, "+") {
		rest = rest[1:]
	}
	intPart, frac := rest, ""
	if i := strings.IndexByte(rest, '.'); i >= 0 {
		intPart, frac = rest[:i], rest[i+1:]
	}
	if (intPart == "" && frac == "") || !digits(intPart) || !digits(frac) {
		return unparsed + strings.ToLower(s)
	}

	// Variable-length integers can't be compared ordinally, so the key
	// leads with the digit count: "12" keys as 00212, "9" as 0019.
	intPart = strings.TrimLeft(intPart, "0")
	if len(frac) > fracWidth {
		frac = frac[:fracWidth]
	} else {
		frac += strings.Repeat("0", fracWidth-len(frac))
	}
	key := fmt.Sprintf("%03d%s.%s", len(intPart), intPart, frac)
	if neg {
		// Nines-complement flips the order of the negatives.
		return "0" + complement(key)
	}
	return "1" + key
}

// Version keys cells by version number, so that 1.10.0 sorts after
// 1.9.0 and prereleases sort before their release. Cells that don't
// parse as versions sort after the ones that do.
func Version(cell string) string {
	v, err := version.NewVersion(strings.TrimSpace(cell))
	if err != nil {
		return unparsed + strings.ToLower(cell)
	}
	segments := v.Segments64()
	parts := make([]string, versionDepth)
	for i := range parts {
		if i < len(segments) {
			parts[i] = fmt.Sprintf("%012d", segments[i])
		} else {
			parts[i] = fmt.Sprintf("%012d", 0)
		}
	}
	key := strings.Join(parts, ".")
	if pre := v.Prerelease(); pre != "" {
		return key + "-" + pre
	}
	return key + "="
}

// Lower keys cells by their lowercased text.
func Lower(cell string) string {
	return strings.ToLower(cell)
}

// Get resolves a --sort-key name to its transform. The empty name and
// "none" mean the raw cell text.
func Get(name string) func(string) string {
	switch name {
	case "", "none":
		return nil
	case "lower":
		return Lower
	case "numeric":
		return Numeric
	case "version":
		return Version
	}
	util.Die("no such sort key: %s (one of %s)",
		name, strings.Join(Names(), ", "))
	panic("unreachable")
}

// Names returns the accepted --sort-key values.
func Names() []string {
	return []string{"none", "lower", "numeric", "version"}
}

func digits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func complement(key string) string {
	b := []byte(key)
	for i, c := range b {
		if c >= '0' && c <= '9' {
			b[i] = '9' - c + '0'
		}
	}
	return string(b)
}
