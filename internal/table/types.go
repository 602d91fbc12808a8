package table

// Table holds tabular data plus the options controlling how it is
// drawn. Tables have an ordered list of column labels and a list of
// rows; rows may be shorter or longer than the column list. Construct
// one with New or FromStructs, add data with AddRow, adjust options
// with the fluent setters, and produce text with Render.
type Table struct {
	columns []string
	rows    [][]string
	config  renderConfig
}

// Alignment says where a cell's text sits inside its column.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// HRuleMode selects which horizontal rules are drawn.
type HRuleMode int

const (
	// HRulesNone draws no horizontal rules.
	HRulesNone HRuleMode = iota
	// HRulesFrame draws the top rule, the rule under the header,
	// and the bottom rule.
	HRulesFrame
	// HRulesHeader draws the top rule and the rule under the
	// header only.
	HRulesHeader
	// HRulesAll additionally draws a rule between every pair of
	// data rows.
	HRulesAll
)

// VRuleMode selects which vertical rules are drawn.
type VRuleMode int

const (
	// VRulesNone draws no vertical glyphs at all.
	VRulesNone VRuleMode = iota
	// VRulesFrame draws vertical glyphs at the left and right
	// edges only; interior columns are separated by a space.
	VRulesFrame
	// VRulesAll draws vertical glyphs at the edges and between
	// every pair of columns.
	VRulesAll
)

// SortOrder is the direction of a sort directive.
type SortOrder int

const (
	Ascending SortOrder = iota
	Descending
)

// Glyphs is the character set used to draw rules: the horizontal rule
// character, the vertical rule character, and the junction character
// drawn where the two cross.
type Glyphs struct {
	Horizontal string
	Vertical   string
	Junction   string
}

// Glyph presets. StyleASCII is the default.
var (
	StyleASCII   = Glyphs{Horizontal: "-", Vertical: "|", Junction: "+"}
	StyleUnicode = Glyphs{Horizontal: "─", Vertical: "│", Junction: "┼"}
	StyleHeavy   = Glyphs{Horizontal: "━", Vertical: "┃", Junction: "╋"}
	StyleDots    = Glyphs{Horizontal: ".", Vertical: ":", Junction: "."}
)

// sortDirective describes an optional reordering of rows: which
// column to sort by, in which direction, and an optional transform
// applied to each cell before the ordinal comparison.
type sortDirective struct {
	column    string
	order     SortOrder
	transform func(string) string
}

// renderConfig is the snapshot of options consulted by Render.
type renderConfig struct {
	border      bool
	hrules      HRuleMode
	vrules      VRuleMode
	padding     int
	header      bool
	align       Alignment
	columnAlign map[string]Alignment
	glyphs      Glyphs
	sort        *sortDirective
}
