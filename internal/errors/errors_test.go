package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseError(t *testing.T) {
	underlying := errors.New("unexpected end of file")
	err := NewParseError("strings.json", "unsupported extension", underlying)

	assert.Equal(t, "strings.json", err.Filename)
	assert.True(t, errors.Is(err, underlying))
	assert.Equal(t, "parse strings.json: unsupported extension: unexpected end of file", err.Error())
	assert.False(t, err.Timestamp.IsZero())
}

func TestParseErrorWithoutUnderlying(t *testing.T) {
	err := NewParseError("glossary.csv", "unrecognized extension", nil)

	require.Error(t, err)
	assert.Equal(t, "parse glossary.csv: unrecognized extension", err.Error())
}

func TestConfigError(t *testing.T) {
	underlying := errors.New("must be within [1.0, 3.0]")
	err := NewConfigError("maxLengthRatio", "5.0", underlying)

	assert.Equal(t, "maxLengthRatio", err.Field)
	assert.Equal(t, "5.0", err.Value)
	assert.True(t, errors.Is(err, underlying))
	assert.Equal(t, `config field maxLengthRatio (value "5.0"): must be within [1.0, 3.0]`, err.Error())
}
