package formats

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/tabulatehq/tabulate/internal/api"
)

// loadTOML decodes a document holding a [[row]] array of tables, one
// per data row. Column order comes from the decoder's key metadata,
// which lists keys in document order.
func loadTOML(r io.Reader) (*api.Dataset, error) {
	var doc struct {
		Rows []map[string]interface{} `toml:"row"`
	}
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, err
	}

	builder := newColumnBuilder()
	for _, key := range md.Keys() {
		if len(key) == 2 && key[0] == "row" {
			builder.add(key[1])
		}
	}

	objects := make([]map[string]string, len(doc.Rows))
	for i, row := range doc.Rows {
		obj := map[string]string{}
		for k, v := range row {
			obj[k] = tomlCell(v)
		}
		objects[i] = obj
	}

	return builder.dataset(objects), nil
}

// tomlCell renders one TOML value as a cell string.
func tomlCell(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case time.Time:
		return x.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", x)
	}
}

var tomlFormat = api.Format{
	Name:       "toml",
	Extensions: []string{"toml"},
	Load:       loadTOML,
}
