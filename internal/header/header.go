// Package header renders binary data as a C++ header declaring a
// const uint8_t array.
package header

import (
	"errors"
	"io"
	"regexp"
	"strings"

	"github.com/xll-gen/file2header/internal/config"
)

const hexDigits = "0123456789ABCDEF"

// ErrClosed is returned when writing to an Encoder after Close.
var ErrClosed = errors.New("header: encoder is closed")

// Stats describes a finished encoding.
type Stats struct {
	// Bytes is the number of array elements emitted.
	Bytes int
	// Lines is the number of body lines holding elements.
	Lines int
}

// Encoder writes a header to an underlying writer. Data may be passed to
// Write in any number of chunks; the element index carries across calls,
// so the output does not depend on how the input was split.
type Encoder struct {
	w       io.Writer
	cfg     config.Config
	stats   Stats
	pending bool // an element was written and still needs its separator
	started bool
	closed  bool
	buf     []byte
}

// NewEncoder returns an Encoder writing to w. The config is validated up
// front so a bad setting never produces partial output.
func NewEncoder(w io.Writer, cfg config.Config) (*Encoder, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return &Encoder{w: w, cfg: cfg}, nil
}

// WriteHeader writes the preamble and the opening brace. It is called
// implicitly by the first Write or by Close.
func (e *Encoder) WriteHeader() error {
	if e.started {
		return nil
	}
	e.started = true
	_, err := io.WriteString(e.w, "#pragma once\n#include <cstdint>\n\nconst uint8_t "+e.cfg.Name+"[] = \n{")
	return err
}

// Write encodes p as array elements.
func (e *Encoder) Write(p []byte) (int, error) {
	if e.closed {
		return 0, ErrClosed
	}
	if err := e.WriteHeader(); err != nil {
		return 0, err
	}

	// Counters are committed only once the chunk reached the writer.
	stats, pending := e.stats, e.pending
	e.buf = e.buf[:0]
	for _, b := range p {
		if pending {
			e.buf = append(e.buf, ',', ' ')
		}
		if stats.Bytes%e.cfg.BytesPerLine == 0 {
			e.buf = append(e.buf, '\n')
			e.buf = append(e.buf, e.cfg.Indent...)
			stats.Lines++
		}
		e.buf = append(e.buf, '0', 'x', hexDigits[b>>4], hexDigits[b&0x0F])
		pending = true
		stats.Bytes++
	}
	if _, err := e.w.Write(e.buf); err != nil {
		return 0, err
	}
	e.stats, e.pending = stats, pending
	return len(p), nil
}

// Close writes the closing brace and statement terminator. The last
// element never gets a trailing separator.
func (e *Encoder) Close() error {
	if e.closed {
		return nil
	}
	if err := e.WriteHeader(); err != nil {
		return err
	}
	e.closed = true
	_, err := io.WriteString(e.w, "\n};\n")
	return err
}

// Stats returns the counters for everything written so far.
func (e *Encoder) Stats() Stats {
	return e.stats
}

// Encode renders data as a complete header. The output is a pure function
// of data and cfg.
//
// Parameters:
//   - data: The bytes to embed.
//   - cfg: The encoding settings; see config.Validate.
//
// Returns:
//   - string: The generated header text.
//   - Stats: Element and line counts.
//   - error: An error wrapping config.ErrInvalidConfiguration if cfg is invalid.
func Encode(data []byte, cfg config.Config) (string, Stats, error) {
	var sb strings.Builder
	sb.Grow(encodedSize(len(data), cfg))

	enc, err := NewEncoder(&sb, cfg)
	if err != nil {
		return "", Stats{}, err
	}
	// strings.Builder writes never fail.
	_, _ = enc.Write(data)
	_ = enc.Close()
	return sb.String(), enc.Stats(), nil
}

// encodedSize estimates the output length so the builder allocates once.
func encodedSize(n int, cfg config.Config) int {
	lines := 0
	if cfg.BytesPerLine > 0 {
		lines = (n + cfg.BytesPerLine - 1) / cfg.BytesPerLine
	}
	return 64 + len(cfg.Name) + n*6 + lines*(1+len(cfg.Indent))
}

var tokenRe = regexp.MustCompile(`0x[0-9A-F]{2}\b`)

// CountTokens returns the number of hex element tokens in a generated
// header body.
func CountTokens(text string) int {
	if i := strings.IndexByte(text, '{'); i >= 0 {
		text = text[i:]
	}
	return len(tokenRe.FindAllStringIndex(text, -1))
}
