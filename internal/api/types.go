// Package api defines the types shared between the CLI and the input
// format registry.
package api

import "io"

// Dataset is tabular data decoded from an input source: ordered
// column labels plus rows of cell strings. Row lengths match the
// column count for map-shaped sources; delimited sources may produce
// ragged rows, which the renderer tolerates.
type Dataset struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Keep up to date with CheckAll in formats.go
type Format struct {
	// Name identifies the format; it is matched against --input.
	Name string

	// Extensions are the filename extensions (without the dot)
	// that autodetect to this format.
	Extensions []string

	// Load decodes one document into a dataset.
	Load func(r io.Reader) (*Dataset, error)
}
