package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTraceID64(t *testing.T) {
	c := &SpanContext{}
	require.NoError(t, c.ParseTraceID("75bcd15"))
	assert.Equal(t, uint64(0x75bcd15), c.TraceID())
	assert.Equal(t, "000000000000000000000000075bcd15", c.TraceID128())
}

func TestParseTraceID128(t *testing.T) {
	c := &SpanContext{}
	require.NoError(t, c.ParseTraceID("463ac35c9f6413ad48485a3953bb6124"))
	assert.Equal(t, uint64(0x48485a3953bb6124), c.TraceID())
	assert.Equal(t, "463ac35c9f6413ad48485a3953bb6124", c.TraceID128())
}

func TestParseTraceIDCorrupted(t *testing.T) {
	c := &SpanContext{}
	assert.Equal(t, ErrSpanContextCorrupted, c.ParseTraceID("not hex"))
}

func TestParseSpanID(t *testing.T) {
	c := &SpanContext{}
	require.NoError(t, c.ParseSpanID("00f067aa0ba902b7"))
	assert.Equal(t, uint64(0x00f067aa0ba902b7), c.SpanID())

	assert.Error(t, c.ParseSpanID("not hex"))
}
