package config

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultBytesPerLine is the number of array elements rendered per line
// when the caller does not supply one.
const DefaultBytesPerLine = 25

// DefaultName is the identifier of the generated array.
const DefaultName = "image"

// DefaultIndent prefixes every line of the array body.
const DefaultIndent = "    "

// ErrInvalidConfiguration is returned for malformed encoding settings,
// such as a non-positive bytes-per-line value.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Config holds the settings that shape the generated header.
// Each encoding takes its own Config, so several encodings with different
// settings can run in the same process.
type Config struct {
	// BytesPerLine is the number of elements emitted before a line break.
	BytesPerLine int
	// Name is the C identifier of the generated array.
	Name string
	// Indent is written at the start of every body line.
	Indent string
}

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Default returns a Config with every field set to its default value.
func Default() Config {
	return Config{
		BytesPerLine: DefaultBytesPerLine,
		Name:         DefaultName,
		Indent:       DefaultIndent,
	}
}

// ApplyDefaults sets default values for fields that were left empty.
// A zero BytesPerLine means unset; negative values are left for Validate.
//
// Parameters:
//   - cfg: The Config object to modify.
func ApplyDefaults(cfg *Config) {
	if cfg.BytesPerLine == 0 {
		cfg.BytesPerLine = DefaultBytesPerLine
	}
	if cfg.Name == "" {
		cfg.Name = DefaultName
	}
	if cfg.Indent == "" {
		cfg.Indent = DefaultIndent
	}
}

// Validate checks the configuration for errors.
//
// Parameters:
//   - cfg: The Config object to validate.
//
// Returns:
//   - error: An error wrapping ErrInvalidConfiguration, or nil.
func Validate(cfg Config) error {
	if cfg.BytesPerLine < 1 {
		return fmt.Errorf("%w: bytes per line must be a positive integer, got %d", ErrInvalidConfiguration, cfg.BytesPerLine)
	}
	if err := ValidateName(cfg.Name); err != nil {
		return err
	}
	if strings.ContainsAny(cfg.Indent, "\r\n") {
		return fmt.Errorf("%w: indent must not contain line breaks", ErrInvalidConfiguration)
	}
	return nil
}

// ValidateName checks that name can be used as the array identifier.
func ValidateName(name string) error {
	if !identRe.MatchString(name) {
		return fmt.Errorf("%w: array name %q is not a valid C identifier", ErrInvalidConfiguration, name)
	}
	return nil
}

// ParseBytesPerLine parses a base-10 bytes-per-line argument.
// Non-numeric, zero and negative values are rejected.
func ParseBytesPerLine(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: bytes per line %q is not a number", ErrInvalidConfiguration, s)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: bytes per line must be a positive integer, got %d", ErrInvalidConfiguration, n)
	}
	return n, nil
}

// ValidateLogLevel checks a logging level name.
func ValidateLogLevel(level string) error {
	switch strings.ToLower(level) {
	case "", "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("%w: invalid logging level: %s (allowed: debug, info, warn, error)", ErrInvalidConfiguration, level)
	}
}
