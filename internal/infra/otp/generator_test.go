package otp

import (
	"bytes"
	"regexp"
	"testing"

	"ledger/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_FormatAndLength(t *testing.T) {
	gen := NewGenerator(&config.Config{Ledger: &config.LedgerConfig{CodeLength: 8}})
	digits := regexp.MustCompile(`^[0-9]{8}$`)

	for range 200 {
		code, err := gen.Generate()
		require.NoError(t, err)
		assert.Regexp(t, digits, code)
	}
}

func TestGenerator_MinimumLength(t *testing.T) {
	gen := NewGenerator(&config.Config{Ledger: &config.LedgerConfig{CodeLength: 3}})

	code, err := gen.Generate()
	require.NoError(t, err)
	assert.Len(t, code, config.MinCodeLength)
}

func TestGenerator_ZeroPads(t *testing.T) {
	// an all-zero source draws 0
	gen := newNumericGenerator(6, bytes.NewReader(make([]byte, 64)))

	code, err := gen.Generate()
	require.NoError(t, err)
	assert.Equal(t, "000000", code)
}

func TestGenerator_SourceFailure(t *testing.T) {
	gen := newNumericGenerator(6, bytes.NewReader(nil))

	_, err := gen.Generate()
	require.Error(t, err)
}
