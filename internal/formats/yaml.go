package formats

import (
	"fmt"
	"io"
	"strconv"

	"github.com/tabulatehq/tabulate/internal/api"
	"gopkg.in/yaml.v2"
)

// loadYAML decodes a sequence of mappings. MapSlice keeps the keys in
// document order, which becomes the column order.
func loadYAML(r io.Reader) (*api.Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var docs []yaml.MapSlice
	if err := yaml.Unmarshal(data, &docs); err != nil {
		return nil, err
	}

	builder := newColumnBuilder()
	objects := []map[string]string{}
	for _, doc := range docs {
		obj := map[string]string{}
		for _, item := range doc {
			key := fmt.Sprintf("%v", item.Key)
			builder.add(key)
			obj[key] = yamlCell(item.Value)
		}
		objects = append(objects, obj)
	}

	return builder.dataset(objects), nil
}

// yamlCell renders one YAML value as a cell string.
func yamlCell(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", x)
	}
}

var yamlFormat = api.Format{
	Name:       "yaml",
	Extensions: []string{"yaml", "yml"},
	Load:       loadYAML,
}
