package formats

import (
	"encoding/csv"
	"io"

	"github.com/tabulatehq/tabulate/internal/api"
)

// loadSeparated decodes comma- or tab-separated values. The first
// record is the header; records are allowed to have varying lengths,
// which the renderer tolerates.
func loadSeparated(r io.Reader, comma rune) (*api.Dataset, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &api.Dataset{}, nil
	}
	return &api.Dataset{Columns: records[0], Rows: records[1:]}, nil
}

var csvFormat = api.Format{
	Name:       "csv",
	Extensions: []string{"csv"},
	Load: func(r io.Reader) (*api.Dataset, error) {
		return loadSeparated(r, ',')
	},
}

var tsvFormat = api.Format{
	Name:       "tsv",
	Extensions: []string{"tsv", "tab"},
	Load: func(r io.Reader) (*api.Dataset, error) {
		return loadSeparated(r, '\t')
	},
}
