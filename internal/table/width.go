package table

import "regexp"

// ansiEscape matches ANSI CSI escape sequences (SGR colors, cursor
// movement): ESC '[' followed by digits and semicolons, terminated by
// a letter. Terminals render these as zero columns, so measurement
// strips them first. The original string, escapes included, is what
// ends up in the rendered output.
var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// widthRange is an inclusive range of code points that all render at
// the same width.
type widthRange struct {
	lo, hi rune
}

// wideRanges covers the blocks that monospace fonts draw two columns
// wide: CJK ideographs and radicals, kana, bopomofo, Hangul, and the
// various fullwidth/vertical presentation forms.
var wideRanges = []widthRange{
	{0x1100, 0x11FF}, // Hangul Jamo
	{0x2E80, 0x2FDF}, // CJK and Kangxi radicals
	{0x3000, 0x303F}, // CJK symbols and punctuation
	{0x3040, 0x309F}, // Hiragana
	{0x30A0, 0x30FF}, // Katakana
	{0x3100, 0x312F}, // Bopomofo
	{0x3130, 0x318F}, // Hangul compatibility Jamo
	{0x3400, 0x4DBF}, // CJK ideographs extension A
	{0x4E00, 0x9FFF}, // CJK unified ideographs
	{0xAC00, 0xD7AF}, // Hangul syllables
	{0xF900, 0xFAFF}, // CJK compatibility ideographs
	{0xFE10, 0xFE1F}, // vertical forms
	{0xFE30, 0xFE4F}, // CJK compatibility forms
	{0xFF00, 0xFF60}, // fullwidth forms
	{0xFFE0, 0xFFE6}, // fullwidth signs
}

// emojiRanges covers the pictograph blocks treated as two columns
// wide. U+2600-26FF (Miscellaneous Symbols) is deliberately not here:
// terminals disagree about its width, so those characters count as
// narrow. Emoji presentation selectors (VS16) are not resolved either;
// a base character keeps its own width and the selector counts as
// zero. Known limitation, kept on purpose.
var emojiRanges = []widthRange{
	{0x1F000, 0x1F02F}, // mahjong and domino tiles
	{0x1F0A0, 0x1F0FF}, // playing cards
	{0x1F300, 0x1F9FF}, // pictographs, emoticons, transport, supplemental symbols
	{0x1FA00, 0x1FAFF}, // chess symbols, symbols extended-A
	{0x2700, 0x27BF},   // dingbats
}

func inRanges(r rune, ranges []widthRange) bool {
	for _, rg := range ranges {
		if r >= rg.lo && r <= rg.hi {
			return true
		}
	}
	return false
}

// isZeroWidth reports whether r occupies no columns: zero-width
// space/joiner/non-joiner, variation selectors, and Unicode
// noncharacters.
func isZeroWidth(r rune) bool {
	switch {
	case r >= 0x200B && r <= 0x200D:
		return true
	case r >= 0xFE00 && r <= 0xFE0F:
		return true
	case r >= 0xFDD0 && r <= 0xFDEF:
		return true
	case r&0xFFFE == 0xFFFE:
		return true
	}
	return false
}

// runeWidth returns the number of terminal columns a single code
// point occupies: 0, 1, or 2.
func runeWidth(r rune) int {
	if isZeroWidth(r) {
		return 0
	}
	if inRanges(r, wideRanges) || inRanges(r, emojiRanges) {
		return 2
	}
	return 1
}

// DisplayWidth returns the number of terminal columns text occupies
// when printed: ANSI CSI escapes count as zero, CJK and emoji count
// as two, zero-width characters as zero, everything else as one. The
// empty string has width 0.
func DisplayWidth(text string) int {
	stripped := ansiEscape.ReplaceAllString(text, "")
	width := 0
	for _, r := range stripped {
		width += runeWidth(r)
	}
	return width
}
