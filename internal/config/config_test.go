package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	ApplyDefaults(&cfg)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 25, cfg.BytesPerLine)
	assert.Equal(t, "image", cfg.Name)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := Config{BytesPerLine: -4, Name: "blob", Indent: "\t"}
	ApplyDefaults(&cfg)

	assert.Equal(t, Config{BytesPerLine: -4, Name: "blob", Indent: "\t"}, cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantError string
	}{
		{
			name: "defaults",
			cfg:  Default(),
		},
		{
			name: "one byte per line",
			cfg:  Config{BytesPerLine: 1, Name: "x", Indent: " "},
		},
		{
			name:      "zero bytes per line",
			cfg:       Config{BytesPerLine: 0, Name: "image"},
			wantError: "bytes per line must be a positive integer, got 0",
		},
		{
			name:      "negative bytes per line",
			cfg:       Config{BytesPerLine: -1, Name: "image"},
			wantError: "got -1",
		},
		{
			name:      "name starts with digit",
			cfg:       Config{BytesPerLine: 8, Name: "1image"},
			wantError: "not a valid C identifier",
		},
		{
			name:      "name with dash",
			cfg:       Config{BytesPerLine: 8, Name: "my-image"},
			wantError: "not a valid C identifier",
		},
		{
			name:      "empty name",
			cfg:       Config{BytesPerLine: 8},
			wantError: "not a valid C identifier",
		},
		{
			name:      "indent with newline",
			cfg:       Config{BytesPerLine: 8, Name: "image", Indent: "\n"},
			wantError: "indent must not contain line breaks",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.cfg)
			if tt.wantError == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidConfiguration)
			assert.Contains(t, err.Error(), tt.wantError)
		})
	}
}

func TestParseBytesPerLine(t *testing.T) {
	for _, s := range []string{"1", "25", " 16 ", "+8"} {
		n, err := ParseBytesPerLine(s)
		require.NoError(t, err, s)
		assert.Positive(t, n)
	}

	n, err := ParseBytesPerLine("16")
	require.NoError(t, err)
	assert.Equal(t, 16, n)

	// Legacy atoi coerced these to zero and wrapped before every element.
	for _, s := range []string{"abc", "", "0", "-3", "12abc", "0x10"} {
		_, err := ParseBytesPerLine(s)
		assert.ErrorIs(t, err, ErrInvalidConfiguration, s)
	}
}

func TestValidateLogLevel(t *testing.T) {
	for _, lvl := range []string{"", "debug", "INFO", "warn", "error"} {
		assert.NoError(t, ValidateLogLevel(lvl), lvl)
	}
	err := ValidateLogLevel("verbose")
	require.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.Contains(t, err.Error(), "invalid logging level: verbose")
}

func TestValidateName(t *testing.T) {
	for _, name := range []string{"image", "_blob", "Payload2"} {
		assert.NoError(t, ValidateName(name), name)
	}
	for _, name := range []string{"", "2x", "a b", "a-b"} {
		assert.ErrorIs(t, ValidateName(name), ErrInvalidConfiguration, name)
	}
}
