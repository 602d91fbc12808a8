// Package store reads and writes the preset store, a JSON file that
// holds named rendering option sets.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/tabulatehq/tabulate/internal/util"
)

// currentVersion is bumped on backwards-incompatible changes to the
// store format. Old stores are discarded rather than migrated.
const currentVersion = 1

func getStoreLocation() string {
	loc, ok := os.LookupEnv("TABULATE_STORE")
	if ok {
		return loc
	} else {
		return ".tabulate/store.json"
	}
}

// Read loads the store, returning a fresh one when the file doesn't
// exist yet or was written by an incompatible version.
func Read() Store {
	filename := getStoreLocation()
	bytes, err := os.ReadFile(filename)

	if err != nil {
		if os.IsNotExist(err) {
			return Store{Version: currentVersion}
		}
		util.Die("%s: %s", filename, err)
	}

	var st Store
	err = json.Unmarshal(bytes, &st)

	if err != nil {
		util.Die("%s: %s", filename, err)
	}

	if st.Version != currentVersion {
		return Store{Version: currentVersion}
	}

	return st
}

func (st *Store) Write() {
	filename := getStoreLocation()

	filename, err := filepath.Abs(filename)
	if err != nil {
		util.Die("%s: %s", filename, err)
	}

	directory, _ := filepath.Split(filename)
	if err := os.MkdirAll(directory, 0777); err != nil {
		util.Die("%s: %s", directory, err)
	}

	content, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		util.Panicf("writeStore: json.MarshalIndent failed: %s", err)
	}
	content = append(content, '\n')

	util.TryWriteAtomic(filename, content)
}

// GetPreset looks up a saved preset, or nil if there is none by that
// name.
func (st *Store) GetPreset(name string) *Preset {
	return st.Presets[name]
}

// SetPreset saves a preset under the given name, replacing any
// previous one, and writes the store.
func (st *Store) SetPreset(name string, preset Preset) {
	if st.Presets == nil {
		st.Presets = map[string]*Preset{}
	}
	st.Presets[name] = &preset
	st.Write()
}

// DeletePreset removes the named preset and writes the store. It
// reports whether the preset existed.
func (st *Store) DeletePreset(name string) bool {
	if _, ok := st.Presets[name]; !ok {
		return false
	}
	delete(st.Presets, name)
	st.Write()
	return true
}

// PresetNames returns the saved preset names in sorted order.
func (st *Store) PresetNames() []string {
	names := []string{}
	for name := range st.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
