package formats

import (
	"database/sql"

	"github.com/tabulatehq/tabulate/internal/api"

	// Wire up the sqlite3 driver for LoadSQLite.
	_ "github.com/mattn/go-sqlite3"
)

// LoadSQLite runs a query against the SQLite database at dbPath,
// opened read-only, and packs the result set into a dataset. The
// result's column names become the column labels; NULLs become empty
// cells and every other value is rendered through the driver's string
// conversion.
func LoadSQLite(dbPath string, query string) (*api.Dataset, error) {
	db, err := sql.Open("sqlite3", dbPath+"?mode=ro")
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	ds := &api.Dataset{Columns: columns}
	for rows.Next() {
		cells := make([]sql.NullString, len(columns))
		scan := make([]interface{}, len(columns))
		for i := range cells {
			scan[i] = &cells[i]
		}
		if err := rows.Scan(scan...); err != nil {
			return nil, err
		}
		row := make([]string, len(columns))
		for i, cell := range cells {
			if cell.Valid {
				row[i] = cell.String
			}
		}
		ds.Rows = append(ds.Rows, row)
	}
	return ds, rows.Err()
}
