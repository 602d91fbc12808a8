package formats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAll(t *testing.T) {
	CheckAll()
}

func TestLoadCSV(t *testing.T) {
	ds, err := csvFormat.Load(strings.NewReader("Name,Age\nAlice,30\nBob,25\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Age"}, ds.Columns)
	assert.Equal(t, [][]string{{"Alice", "30"}, {"Bob", "25"}}, ds.Rows)
}

func TestLoadCSVRagged(t *testing.T) {
	ds, err := csvFormat.Load(strings.NewReader("A,B\n1\n1,2,3\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, ds.Columns)
	assert.Equal(t, [][]string{{"1"}, {"1", "2", "3"}}, ds.Rows)
}

func TestLoadCSVEmpty(t *testing.T) {
	ds, err := csvFormat.Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, ds.Columns)
	assert.Empty(t, ds.Rows)
}

func TestLoadTSV(t *testing.T) {
	ds, err := tsvFormat.Load(strings.NewReader("Name\tAge\nAlice\t30\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Age"}, ds.Columns)
	assert.Equal(t, [][]string{{"Alice", "30"}}, ds.Rows)
}

func TestLoadJSON(t *testing.T) {
	input := `[
		{"name": "Alice", "age": 30, "admin": true},
		{"age": 25, "name": "Bob", "city": "Tokyo"}
	]`
	ds, err := jsonFormat.Load(strings.NewReader(input))
	require.NoError(t, err)
	// Column order follows first appearance, not map iteration.
	assert.Equal(t, []string{"name", "age", "admin", "city"}, ds.Columns)
	assert.Equal(t, [][]string{
		{"Alice", "30", "true", ""},
		{"Bob", "25", "", "Tokyo"},
	}, ds.Rows)
}

func TestLoadJSONScalars(t *testing.T) {
	input := `[{"s": "x", "n": 1.5, "b": false, "z": null, "nested": {"a": 1}, "list": [1, 2]}]`
	ds, err := jsonFormat.Load(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"s", "n", "b", "z", "nested", "list"}, ds.Columns)
	require.Len(t, ds.Rows, 1)
	assert.Equal(t, []string{"x", "1.5", "false", "", `{"a":1}`, "[1,2]"}, ds.Rows[0])
}

func TestLoadJSONRejectsNonArray(t *testing.T) {
	_, err := jsonFormat.Load(strings.NewReader(`{"name": "Alice"}`))
	assert.Error(t, err)
}

func TestLoadYAML(t *testing.T) {
	input := `
- name: Alice
  age: 30
- name: Bob
  city: Tokyo
  tall: true
`
	ds, err := yamlFormat.Load(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "age", "city", "tall"}, ds.Columns)
	assert.Equal(t, [][]string{
		{"Alice", "30", "", ""},
		{"Bob", "", "Tokyo", "true"},
	}, ds.Rows)
}

func TestLoadTOML(t *testing.T) {
	input := `
[[row]]
name = "Alice"
age = 30

[[row]]
name = "Bob"
age = 25
score = 1.5
`
	ds, err := tomlFormat.Load(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "age", "score"}, ds.Columns)
	assert.Equal(t, [][]string{
		{"Alice", "30", ""},
		{"Bob", "25", "1.5"},
	}, ds.Rows)
}

func TestGetFormatByName(t *testing.T) {
	for _, name := range GetFormatNames() {
		f := GetFormat(name, "ignored.xyz")
		assert.Equal(t, name, f.Name)
	}
}

func TestGetFormatByExtension(t *testing.T) {
	cases := map[string]string{
		"data.csv":     "csv",
		"data.tsv":     "tsv",
		"data.tab":     "tsv",
		"data.json":    "json",
		"data.yaml":    "yaml",
		"data.yml":     "yaml",
		"data.toml":    "toml",
		"DATA.CSV":     "csv",
		"dir.d/f.json": "json",
	}
	for filename, want := range cases {
		f := GetFormat("", filename)
		if f.Name != want {
			t.Errorf("GetFormat(%q) = %s, want %s", filename, f.Name, want)
		}
	}
}

func TestGetFormatStdinDefaultsToCSV(t *testing.T) {
	f := GetFormat("", "")
	assert.Equal(t, "csv", f.Name)
}

func TestColumnBuilderOrder(t *testing.T) {
	b := newColumnBuilder()
	for _, k := range []string{"b", "a", "b", "c", "a"} {
		b.add(k)
	}
	ds := b.dataset([]map[string]string{{"a": "1", "c": "2"}})
	assert.Equal(t, []string{"b", "a", "c"}, ds.Columns)
	assert.Equal(t, [][]string{{"", "1", "2"}}, ds.Rows)
}
