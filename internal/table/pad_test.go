package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPadReachesTargetWidth(t *testing.T) {
	texts := []string{"", "a", "hello", "中文", "\x1b[31mred\x1b[0m", "\U0001F600"}
	aligns := []Alignment{AlignLeft, AlignCenter, AlignRight}
	for _, s := range texts {
		for w := DisplayWidth(s); w <= DisplayWidth(s)+4; w++ {
			for _, a := range aligns {
				padded := Pad(s, w, a)
				if got := DisplayWidth(padded); got != w {
					t.Errorf("DisplayWidth(Pad(%q, %d, %v)) = %d, want %d", s, w, a, got, w)
				}
			}
		}
	}
}

func TestPadNeverTruncates(t *testing.T) {
	for _, a := range []Alignment{AlignLeft, AlignCenter, AlignRight} {
		assert.Equal(t, "hello", Pad("hello", 3, a))
		assert.Equal(t, "hello", Pad("hello", 5, a))
		assert.Equal(t, "hello", Pad("hello", 0, a))
		assert.Equal(t, "hello", Pad("hello", -1, a))
	}
}

func TestPadLeft(t *testing.T) {
	assert.Equal(t, "ab   ", Pad("ab", 5, AlignLeft))
	assert.Equal(t, "中   ", Pad("中", 5, AlignLeft))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "   ab", Pad("ab", 5, AlignRight))
	assert.Equal(t, "   中", Pad("中", 5, AlignRight))
}

func TestPadCenter(t *testing.T) {
	// Even slack splits evenly; odd slack puts the extra space on
	// the right.
	assert.Equal(t, "  A  ", Pad("A", 5, AlignCenter))
	assert.Equal(t, " A  ", Pad("A", 4, AlignCenter))
	assert.Equal(t, "A ", Pad("A", 2, AlignCenter))
	assert.Equal(t, " ab ", Pad("ab", 4, AlignCenter))
}
