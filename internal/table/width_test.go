package table

import (
	"testing"
)

func TestDisplayWidthASCII(t *testing.T) {
	// For pure printable ASCII, display width and length agree.
	for _, s := range []string{"", "a", "hello", "Name", "  spaced  ", "!@#$%^&*()", "0123456789"} {
		if w := DisplayWidth(s); w != len(s) {
			t.Errorf("DisplayWidth(%q) = %d, want %d", s, w, len(s))
		}
	}
}

func TestDisplayWidthWide(t *testing.T) {
	cases := []struct {
		text  string
		width int
	}{
		{"中", 2},               // one CJK ideograph
		{"中文", 4},         // two CJK ideographs
		{"アリス", 6},   // katakana
		{"あ", 2},               // hiragana
		{"가", 2},               // hangul syllable
		{"ᄀ", 2},               // hangul jamo
		{"Ａ", 2},               // fullwidth A
		{"￥", 2},               // fullwidth yen sign
		{"Go言語", 6},       // mixed narrow and wide
		{"\U0001F600", 2},           // emoticon
		{"\U0001F680", 2},           // rocket
		{"\U0001F0A1", 2},           // playing card
		{"\U0001F004", 2},           // mahjong tile
		{"\U0001FA78", 2},           // drop of blood
		{"✅", 2},               // dingbat check mark
	}
	for _, c := range cases {
		if w := DisplayWidth(c.text); w != c.width {
			t.Errorf("DisplayWidth(%q) = %d, want %d", c.text, w, c.width)
		}
	}
}

func TestDisplayWidthZero(t *testing.T) {
	cases := []struct {
		text  string
		width int
	}{
		{"", 0},
		{"​", 0},          // zero-width space
		{"‌", 0},          // zero-width non-joiner
		{"‍", 0},          // zero-width joiner
		{"️", 0},          // variation selector 16
		{"﷐", 0},          // noncharacter
		{"￿", 0},          // noncharacter
		{"a‍b", 2},        // joiner between narrow characters
		{"⚠️", 1},    // warning sign keeps its narrow width, selector is zero
	}
	for _, c := range cases {
		if w := DisplayWidth(c.text); w != c.width {
			t.Errorf("DisplayWidth(%q) = %d, want %d", c.text, w, c.width)
		}
	}
}

func TestDisplayWidthMiscSymbolsNarrow(t *testing.T) {
	// U+2600-26FF render inconsistently across terminals and are
	// counted narrow on purpose.
	for _, s := range []string{"☀", "☃", "⚠", "⛿"} {
		if w := DisplayWidth(s); w != 1 {
			t.Errorf("DisplayWidth(%q) = %d, want 1", s, w)
		}
	}
}

func TestDisplayWidthANSI(t *testing.T) {
	cases := []struct {
		text  string
		width int
	}{
		{"\x1b[31mred\x1b[0m", 3},
		{"\x1b[1;32mbold green\x1b[0m", 10},
		{"\x1b[2Jcleared", 7},
		{"plain", 5},
		{"\x1b[31m中\x1b[0m", 2}, // escapes around a wide character
	}
	for _, c := range cases {
		if w := DisplayWidth(c.text); w != c.width {
			t.Errorf("DisplayWidth(%q) = %d, want %d", c.text, w, c.width)
		}
	}
}
