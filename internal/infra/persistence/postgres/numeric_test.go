package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumeric(t *testing.T) {
	assert.InDelta(t, 1234.56, parseNumeric("1234.56"), 0.0001)
	assert.Zero(t, parseNumeric(""))
	assert.Zero(t, parseNumeric("not-a-number"))
}

func TestFormatNumeric_RoundTrip(t *testing.T) {
	assert.Equal(t, "90.00", formatNumeric(90))
	assert.Equal(t, "12.30", formatNumeric(12.3))
	assert.InDelta(t, 12.3, parseNumeric(formatNumeric(12.3)), 0.0001)
}

func TestNumericPtrHelpers(t *testing.T) {
	assert.Nil(t, parseNumericPtr(nil))
	assert.Nil(t, formatNumericPtr(nil))

	s := "480.00"
	parsed := parseNumericPtr(&s)
	require.NotNil(t, parsed)
	assert.InDelta(t, 480, *parsed, 0.0001)

	f := 480.0
	formatted := formatNumericPtr(&f)
	require.NotNil(t, formatted)
	assert.Equal(t, "480.00", *formatted)
}

func TestStringPtrHelpers(t *testing.T) {
	assert.Nil(t, strPtrOrNil(""))
	assert.Equal(t, "", derefStr(nil))

	p := strPtrOrNil("agent-4")
	require.NotNil(t, p)
	assert.Equal(t, "agent-4", derefStr(p))
}
