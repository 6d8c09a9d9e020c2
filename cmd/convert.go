package cmd

import (
	"fmt"
	"log/slog"

	"github.com/xll-gen/file2header/internal/config"
	"github.com/xll-gen/file2header/internal/fileio"
	"github.com/xll-gen/file2header/internal/header"
	"github.com/xll-gen/file2header/internal/ui"
)

// options holds the parsed command line of one conversion.
type options struct {
	input  string
	output string
	// bytesPerLine is the raw optional argument; empty means the default.
	bytesPerLine string
	name         string
}

// runConvert reads the input file, encodes it and writes the header.
// Every failure is terminal; nothing is retried.
//
// Parameters:
//   - r: Where status lines are printed.
//   - opts: The parsed command line.
//
// Returns:
//   - error: The first error encountered, or nil on success.
func runConvert(r *ui.Reporter, opts options) error {
	// 1. Resolve the encoding settings before touching any file
	cfg := config.Config{Name: opts.name}
	if opts.bytesPerLine != "" {
		n, err := config.ParseBytesPerLine(opts.bytesPerLine)
		if err != nil {
			return err
		}
		cfg.BytesPerLine = n
	}
	config.ApplyDefaults(&cfg)
	if err := config.Validate(cfg); err != nil {
		return err
	}

	r.Info("Input file", opts.input)
	r.Info("Output file", opts.output)

	// 2. Read input
	data, err := fileio.ReadBinary(opts.input)
	if err != nil {
		return fmt.Errorf("couldn't read input file: %w", err)
	}
	slog.Debug("read input", "path", opts.input, "bytes", len(data))
	r.Info("Input size", fmt.Sprintf("0x%X", len(data)))
	if len(data) == 0 {
		r.Warning("Warning", "input file is empty, writing an empty array")
	}

	// 3. Encode
	r.Info("Generating", "file, please wait...")
	text, stats, err := header.Encode(data, cfg)
	if err != nil {
		return err
	}
	slog.Debug("encoded header",
		"bytes", stats.Bytes,
		"lines", stats.Lines,
		"bytes_per_line", cfg.BytesPerLine,
		"tokens", header.CountTokens(text))

	// 4. Write output
	if err := fileio.WriteText(opts.output, text); err != nil {
		return fmt.Errorf("couldn't write output file: %w", err)
	}
	slog.Info("wrote header", "path", opts.output, "size", len(text))

	r.Success("Success", fmt.Sprintf("%d bytes in %d lines written to %s", stats.Bytes, stats.Lines, opts.output))
	return nil
}
