package formats

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/tabulatehq/tabulate/internal/api"
)

// loadJSON decodes an array of objects. The decoder walks tokens
// instead of unmarshalling into maps so that column order follows the
// keys' first appearance in the document.
func loadJSON(r io.Reader) (*api.Dataset, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, fmt.Errorf("expected an array of objects, got %v", tok)
	}

	builder := newColumnBuilder()
	objects := []map[string]string{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if delim, ok := tok.(json.Delim); !ok || delim != '{' {
			return nil, fmt.Errorf("expected an object, got %v", tok)
		}
		obj := map[string]string{}
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("expected an object key, got %v", keyTok)
			}
			var raw json.RawMessage
			if err := dec.Decode(&raw); err != nil {
				return nil, err
			}
			builder.add(key)
			obj[key] = jsonCell(raw)
		}
		if _, err := dec.Token(); err != nil { // closing brace
			return nil, err
		}
		objects = append(objects, obj)
	}
	if _, err := dec.Token(); err != nil { // closing bracket
		return nil, err
	}

	return builder.dataset(objects), nil
}

// jsonCell renders one JSON value as a cell string: scalars as their
// text, null as empty, and anything nested as compact JSON.
func jsonCell(raw json.RawMessage) string {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return string(raw)
	}
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	default:
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return string(raw)
		}
		return buf.String()
	}
}

var jsonFormat = api.Format{
	Name:       "json",
	Extensions: []string{"json"},
	Load:       loadJSON,
}
