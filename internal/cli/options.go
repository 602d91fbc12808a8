package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tabulatehq/tabulate/internal/config"
	"github.com/tabulatehq/tabulate/internal/sortkey"
	"github.com/tabulatehq/tabulate/internal/store"
	"github.com/tabulatehq/tabulate/internal/table"
	"github.com/tabulatehq/tabulate/internal/util"
)

// renderOptions collects the table-shaping options shared by the
// commands that render tables. The zero value is not meaningful;
// defaults come from the flag definitions in cli.go.
type renderOptions struct {
	style      string
	align      string
	alignCols  []string
	sortColumn string
	desc       bool
	sortKey    string
	padding    int
	noBorder   bool
	noHeader   bool
	hrules     string
	vrules     string
}

// styleNames are the accepted --style values, in the order shown by
// 'tabulate styles'.
var styleNames = []string{"ascii", "unicode", "heavy", "dots"}

// parseStyle takes a style name and returns its glyph set.
func parseStyle(styleStr string) table.Glyphs {
	switch styleStr {
	case "ascii":
		return table.StyleASCII
	case "unicode":
		return table.StyleUnicode
	case "heavy":
		return table.StyleHeavy
	case "dots":
		return table.StyleDots
	default:
		util.Die("Error: invalid style %#v (one of %s)",
			styleStr, strings.Join(styleNames, ", "))
		return table.Glyphs{}
	}
}

// parseAlignment takes "left", "center", or "right" and returns a
// table.Alignment.
func parseAlignment(alignStr string) table.Alignment {
	switch alignStr {
	case "left":
		return table.AlignLeft
	case "center":
		return table.AlignCenter
	case "right":
		return table.AlignRight
	default:
		util.Die(`Error: invalid alignment %#v (must be "left", "center", or "right")`, alignStr)
		return 0
	}
}

// parseHRules takes "none", "frame", "header", or "all" and returns a
// table.HRuleMode.
func parseHRules(hrulesStr string) table.HRuleMode {
	switch hrulesStr {
	case "none":
		return table.HRulesNone
	case "frame":
		return table.HRulesFrame
	case "header":
		return table.HRulesHeader
	case "all":
		return table.HRulesAll
	default:
		util.Die(`Error: invalid hrules %#v (must be "none", "frame", "header", or "all")`, hrulesStr)
		return 0
	}
}

// parseVRules takes "none", "frame", or "all" and returns a
// table.VRuleMode.
func parseVRules(vrulesStr string) table.VRuleMode {
	switch vrulesStr {
	case "none":
		return table.VRulesNone
	case "frame":
		return table.VRulesFrame
	case "all":
		return table.VRulesAll
	default:
		util.Die(`Error: invalid vrules %#v (must be "none", "frame", or "all")`, vrulesStr)
		return 0
	}
}

// hasColumn reports whether the table has a column with the given
// label.
func hasColumn(t *table.Table, label string) bool {
	for _, column := range t.Columns() {
		if column == label {
			return true
		}
	}
	return false
}

// applyOptions configures a table according to the command-line
// options. Options naming a column the data doesn't have are applied
// anyway and have no effect; a notice points out the likely typo
// unless --quiet suppressed it.
func applyOptions(t *table.Table, opts renderOptions) {
	t.SetGlyphs(parseStyle(opts.style))
	t.SetAlignment(parseAlignment(opts.align))
	for _, spec := range opts.alignCols {
		fields := strings.SplitN(spec, "=", 2)
		if len(fields) < 2 {
			util.Die("--align-col wants COLUMN=ALIGNMENT, got %#v", spec)
		}
		if !config.Quiet && !hasColumn(t, fields[0]) {
			util.Logf("no such column: %s", fields[0])
		}
		t.SetColumnAlignment(fields[0], parseAlignment(fields[1]))
	}
	t.SetPadding(opts.padding)
	t.SetBorder(!opts.noBorder)
	t.SetHeader(!opts.noHeader)
	t.SetHRules(parseHRules(opts.hrules))
	t.SetVRules(parseVRules(opts.vrules))
	if opts.sortColumn != "" {
		if !config.Quiet && !hasColumn(t, opts.sortColumn) {
			util.Logf("no such column: %s", opts.sortColumn)
		}
		t.SortBy(opts.sortColumn)
		if opts.desc {
			t.SetSortOrder(table.Descending)
		}
		if transform := sortkey.Get(opts.sortKey); transform != nil {
			t.SetSortKey(transform)
		}
	}
}

// applyPreset merges a saved preset into the options. Flags the user
// set on the command line win over the preset's values.
func applyPreset(cmd *cobra.Command, opts *renderOptions, name string) {
	if name == "" {
		return
	}
	st := store.Read()
	preset := st.GetPreset(name)
	if preset == nil {
		util.Die("no such preset: %s", name)
	}

	flags := cmd.Flags()
	if !flags.Changed("style") {
		opts.style = preset.Style
	}
	if !flags.Changed("align") {
		opts.align = preset.Align
	}
	if !flags.Changed("align-col") {
		opts.alignCols = preset.AlignCols
	}
	if !flags.Changed("sort") {
		opts.sortColumn = preset.Sort
	}
	if !flags.Changed("desc") {
		opts.desc = preset.Desc
	}
	if !flags.Changed("sort-key") {
		opts.sortKey = preset.SortKey
	}
	if !flags.Changed("padding") {
		opts.padding = preset.Padding
	}
	if !flags.Changed("no-border") {
		opts.noBorder = preset.NoBorder
	}
	if !flags.Changed("no-header") {
		opts.noHeader = preset.NoHeader
	}
	if !flags.Changed("hrules") {
		opts.hrules = preset.HRules
	}
	if !flags.Changed("vrules") {
		opts.vrules = preset.VRules
	}
}

// presetFromOptions converts the in-memory options to their stored
// form.
func presetFromOptions(opts renderOptions) store.Preset {
	return store.Preset{
		Style:     opts.style,
		Align:     opts.align,
		AlignCols: opts.alignCols,
		Sort:      opts.sortColumn,
		Desc:      opts.desc,
		SortKey:   opts.sortKey,
		Padding:   opts.padding,
		NoBorder:  opts.noBorder,
		NoHeader:  opts.noHeader,
		HRules:    opts.hrules,
		VRules:    opts.vrules,
	}
}

// presetSummary renders a preset's options the way they would be
// spelled on the command line, for 'preset list'. Options left at
// their defaults are not shown.
func presetSummary(p store.Preset) string {
	parts := []string{}
	if p.Style != "ascii" {
		parts = append(parts, "--style="+p.Style)
	}
	if p.Align != "left" {
		parts = append(parts, "--align="+p.Align)
	}
	for _, spec := range p.AlignCols {
		parts = append(parts, "--align-col="+spec)
	}
	if p.Sort != "" {
		parts = append(parts, "--sort="+p.Sort)
	}
	if p.Desc {
		parts = append(parts, "--desc")
	}
	if p.SortKey != "" && p.SortKey != "none" {
		parts = append(parts, "--sort-key="+p.SortKey)
	}
	if p.Padding != 1 {
		parts = append(parts, fmt.Sprintf("--padding=%d", p.Padding))
	}
	if p.NoBorder {
		parts = append(parts, "--no-border")
	}
	if p.NoHeader {
		parts = append(parts, "--no-header")
	}
	if p.HRules != "frame" {
		parts = append(parts, "--hrules="+p.HRules)
	}
	if p.VRules != "all" {
		parts = append(parts, "--vrules="+p.VRules)
	}
	if len(parts) == 0 {
		return "(defaults)"
	}
	return strings.Join(parts, " ")
}
