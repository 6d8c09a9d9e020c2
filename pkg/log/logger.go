package log

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	mu sync.Mutex
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Init initializes the global logger.
// It configures the default slog logger to write to the specified path (or
// stderr, leaving stdout to the status output) at the specified level.
//
// path: Log file path. If empty, logs to stderr.
// level: Log level ("debug", "info", "warn", "error"). Defaults to "info".
//
// The returned closer releases the log file and must be called on exit.
func Init(path string, level string) (io.Closer, error) {
	mu.Lock()
	defer mu.Unlock()

	var w io.Writer = os.Stderr
	var c io.Closer = nopCloser{}
	if path != "" {
		dir := filepath.Dir(path)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, err
			}
		}

		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}
		w = f
		c = f
	}

	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
	}

	handler := slog.NewTextHandler(w, opts)
	slog.SetDefault(slog.New(handler))
	return c, nil
}

// ParseLevel maps a level name to a slog.Level. Unknown names map to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
