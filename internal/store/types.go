package store

// Preset is a named bundle of rendering options, as saved by
// `tabulate preset save`.
type Preset struct {
	Style     string   `json:"style,omitempty"`
	Align     string   `json:"align,omitempty"`
	AlignCols []string `json:"alignCols,omitempty"`
	Sort      string   `json:"sort,omitempty"`
	Desc      bool     `json:"desc,omitempty"`
	SortKey   string   `json:"sortKey,omitempty"`

	// Padding has no omitempty so that a saved --padding=0 is
	// visible in the store file.
	Padding int `json:"padding"`

	NoBorder bool   `json:"noBorder,omitempty"`
	NoHeader bool   `json:"noHeader,omitempty"`
	HRules   string `json:"hrules,omitempty"`
	VRules   string `json:"vrules,omitempty"`
}

// Store represents the JSON written (by default) to
// .tabulate/store.json.
type Store struct {

	// The version of the store file. This gets incremented every
	// time we make a backwards-incompatible change, and causes
	// the store to be invalidated.
	Version int `json:"version,omitempty"`

	// Map from preset names to saved option sets.
	Presets map[string]*Preset `json:"presets,omitempty"`
}
