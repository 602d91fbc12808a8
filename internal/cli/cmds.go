package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/tabulatehq/tabulate/internal/api"
	"github.com/tabulatehq/tabulate/internal/formats"
	"github.com/tabulatehq/tabulate/internal/store"
	"github.com/tabulatehq/tabulate/internal/table"
	"github.com/tabulatehq/tabulate/internal/trace"
	"github.com/tabulatehq/tabulate/internal/util"
)

// isURL reports whether the render argument names a remote input.
func isURL(arg string) bool {
	return strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://")
}

// loadDataset reads and decodes the input for 'tabulate render':
// stdin when no filename was given, an HTTP fetch when the argument
// is a URL, the named file otherwise.
func loadDataset(filename string, inputName string) *api.Dataset {
	reader := io.Reader(os.Stdin)
	name := "stdin"
	detectFrom := filename

	switch {
	case filename == "":
	case isURL(filename):
		resp, err := api.HttpClient.Get(filename)
		if err != nil {
			util.Die("%s: %s", filename, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			util.Die("%s: %s", filename, resp.Status)
		}
		// Extension detection wants the URL's path, not the
		// query string.
		if u, err := url.Parse(filename); err == nil {
			detectFrom = u.Path
		}
		reader = resp.Body
		name = filename
	default:
		file, err := os.Open(filename)
		if err != nil {
			util.Die("%s: %s", filename, err)
		}
		defer file.Close()
		reader = file
		name = filename
	}

	format := formats.GetFormat(inputName, detectFrom)
	ds, err := format.Load(reader)
	if err != nil {
		util.Die("%s: decoding %s: %s", name, format.Name, err)
	}
	return ds
}

// datasetJSON lays a dataset out as a JSON array of objects, with
// keys in column order. encoding/json would sort map keys, so the
// objects are assembled by hand. Cells beyond the column count are
// dropped and missing cells become empty strings, matching what the
// table renderer displays.
func datasetJSON(ds *api.Dataset) string {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, row := range ds.Rows {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('{')
		for j, column := range ds.Columns {
			if j > 0 {
				buf.WriteByte(',')
			}
			key, _ := json.Marshal(column)
			buf.Write(key)
			buf.WriteByte(':')
			cell := ""
			if j < len(row) {
				cell = row[j]
			}
			value, _ := json.Marshal(cell)
			buf.Write(value)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte(']')
	return buf.String()
}

// emitDataset renders a dataset and sends it where the user asked: a
// file when --output was given, the terminal (possibly paged)
// otherwise. The table-shaping options only affect tables; JSON
// output carries the dataset itself.
func emitDataset(ds *api.Dataset, opts renderOptions,
	outputFormat outputFormat, outputPath string, noPager bool) {

	if len(ds.Columns) == 0 && outputFormat == outputFormatTable {
		util.Log("no data")
		return
	}

	var t *table.Table
	var text string
	switch outputFormat {
	case outputFormatTable:
		t = table.New(ds.Columns...).AddRows(ds.Rows)
		applyOptions(t, opts)
		text = t.Render()
	case outputFormatJSON:
		text = datasetJSON(ds)
	}

	switch {
	case outputPath != "":
		util.TryWriteAtomic(outputPath, []byte(text+"\n"))
	case outputFormat == outputFormatJSON || noPager:
		fmt.Println(text)
	default:
		t.Print()
	}
}

// runRender implements 'tabulate render'.
func runRender(filename string, inputName string, opts renderOptions,
	outputFormat outputFormat, outputPath string, noPager bool) {
	span, _ := trace.StartSpanFromExistingContext("cmd.render")
	defer span.Finish()

	ds := loadDataset(filename, inputName)
	emitDataset(ds, opts, outputFormat, outputPath, noPager)
}

// runQuery implements 'tabulate query'.
func runQuery(dbPath string, query string, opts renderOptions,
	outputFormat outputFormat, outputPath string, noPager bool) {
	span, _ := trace.StartSpanFromExistingContext("cmd.query")
	defer span.Finish()

	// The sqlite driver only notices a missing file on the first
	// query; checking here gives a clearer message.
	if !util.FileExists(dbPath) {
		util.Die("no such database: %s", dbPath)
	}
	ds, err := formats.LoadSQLite(dbPath, query)
	if err != nil {
		util.Die("%s: %s", dbPath, err)
	}
	emitDataset(ds, opts, outputFormat, outputPath, noPager)
}

// formatLine represents one line in the table emitted by 'tabulate
// formats'.
type formatLine struct {
	Name       string   `pretty:"name"`
	Extensions []string `pretty:"extensions"`
}

// runFormats implements 'tabulate formats'.
func runFormats() {
	lines := []formatLine{}
	for _, f := range formats.GetFormats() {
		lines = append(lines, formatLine{Name: f.Name, Extensions: f.Extensions})
	}
	table.FromStructs(lines).Print()
}

// runStyles implements 'tabulate styles'.
func runStyles() {
	sections := []string{}
	for _, name := range styleNames {
		t := table.New("Name", "Age")
		t.AddRow("Alice", "30")
		t.AddRow("Bob", "25")
		t.SetGlyphs(parseStyle(name))
		sections = append(sections, name+"\n\n"+t.Render())
	}
	fmt.Println(strings.Join(sections, "\n\n"))
}

// runPresetSave implements 'tabulate preset save'.
func runPresetSave(name string, opts renderOptions) {
	st := store.Read()
	st.SetPreset(name, presetFromOptions(opts))
}

// presetLine represents one line in the table emitted by 'tabulate
// preset list'.
type presetLine struct {
	Name    string `pretty:"name"`
	Options string `pretty:"options"`
}

// runPresetList implements 'tabulate preset list'.
func runPresetList() {
	st := store.Read()
	names := st.PresetNames()
	if len(names) == 0 {
		util.Log("no saved presets")
		return
	}
	lines := []presetLine{}
	for _, name := range names {
		lines = append(lines, presetLine{
			Name:    name,
			Options: presetSummary(*st.GetPreset(name)),
		})
	}
	table.FromStructs(lines).Print()
}

// runPresetDelete implements 'tabulate preset delete'.
func runPresetDelete(name string) {
	st := store.Read()
	if !st.DeletePreset(name) {
		util.Die("no such preset: %s", name)
	}
}
