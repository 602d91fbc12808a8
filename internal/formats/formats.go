// Package formats implements the input format registry: the decoders
// that turn a data file into a dataset the renderer can display.
package formats

import (
	"path/filepath"
	"strings"

	"github.com/tabulatehq/tabulate/internal/api"
	"github.com/tabulatehq/tabulate/internal/util"
)

// If more than one format claims the same extension, the one that
// comes first in this list wins.
var inputFormats = []api.Format{
	csvFormat,
	tsvFormat,
	jsonFormat,
	yamlFormat,
	tomlFormat,
}

// Keep up to date with Format in types.go
func CheckAll() {
	seen := map[string]bool{}
	for _, f := range inputFormats {
		if f.Name == "" ||
			len(f.Extensions) == 0 ||
			f.Load == nil {
			util.Panicf("input format %s is incomplete", f.Name)
		}
		if seen[f.Name] {
			util.Panicf("duplicate input format %s", f.Name)
		}
		seen[f.Name] = true
	}
}

// GetFormat resolves which format to decode with: the named one when
// --input was given, the one detected from the filename extension
// otherwise. Reading from stdin, where there is no filename, defaults
// to csv.
func GetFormat(name string, filename string) api.Format {
	if name != "" {
		for _, f := range inputFormats {
			if f.Name == name {
				return f
			}
		}
		util.Die("no such input format: %s (one of %s)",
			name, strings.Join(GetFormatNames(), ", "))
	}
	if filename == "" {
		return csvFormat
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	for _, f := range inputFormats {
		for _, e := range f.Extensions {
			if e == ext {
				return f
			}
		}
	}
	util.Die("cannot detect the format of %s (use --input, one of %s)",
		filename, strings.Join(GetFormatNames(), ", "))
	panic("unreachable")
}

// GetFormats returns the registered formats in priority order.
func GetFormats() []api.Format {
	return inputFormats
}

// GetFormatNames returns the registered format names in priority
// order.
func GetFormatNames() []string {
	formatNames := []string{}
	for _, f := range inputFormats {
		formatNames = append(formatNames, f.Name)
	}
	return formatNames
}

// columnBuilder accumulates column labels in first-seen order while
// map-shaped documents (JSON, YAML, TOML) are decoded, since Go maps
// would scramble it.
type columnBuilder struct {
	index   map[string]int
	columns []string
}

func newColumnBuilder() *columnBuilder {
	return &columnBuilder{index: map[string]int{}}
}

func (b *columnBuilder) add(key string) {
	if _, ok := b.index[key]; !ok {
		b.index[key] = len(b.columns)
		b.columns = append(b.columns, key)
	}
}

// dataset lays the decoded objects out as rows under the accumulated
// columns. Keys an object doesn't have render as empty cells.
func (b *columnBuilder) dataset(objects []map[string]string) *api.Dataset {
	ds := &api.Dataset{Columns: b.columns}
	for _, obj := range objects {
		row := make([]string, len(b.columns))
		for key, value := range obj {
			row[b.index[key]] = value
		}
		ds.Rows = append(ds.Rows, row)
	}
	return ds
}
