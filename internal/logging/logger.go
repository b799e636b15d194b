package logging

import (
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// New creates a configured application logger.
// It writes to Stderr (to separate diagnostics from Stdout recipe output).
// It standardizes common keys (e.g., "error" -> "err").
func New(level slog.Level) *slog.Logger {
	return slog.New(handler(os.Stderr, level))
}

// NewWithFile fans out to Stderr (text) and a log file (JSON lines).
func NewWithFile(level slog.Level, file io.Writer) *slog.Logger {
	return slog.New(slogmulti.Fanout(
		handler(os.Stderr, level),
		slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level}),
	))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func handler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Standardize 'error' key to 'err'
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	})
}
