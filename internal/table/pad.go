package table

import "strings"

// Pad returns text padded with spaces to the given display width.
// Text already at or beyond the target width comes back unchanged;
// cells are never truncated. Centering splits the slack evenly and
// puts the odd space on the right.
func Pad(text string, width int, align Alignment) string {
	slack := width - DisplayWidth(text)
	if slack <= 0 {
		return text
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", slack) + text
	case AlignCenter:
		left := slack / 2
		return strings.Repeat(" ", left) + text + strings.Repeat(" ", slack-left)
	default:
		return text + strings.Repeat(" ", slack)
	}
}
