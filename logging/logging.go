// Package logging builds the log facilities handed to routes as their first
// context value.
package logging

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// Format selects the slog handler.
type Format string

const (
	FormatAuto Format = ""
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Config holds logging configuration
type Config struct {
	// Output is where records are written. Default: os.Stderr
	Output io.Writer
	// Level is the minimum level logged. Default: slog.LevelInfo
	Level slog.Leveler
	// Format picks the handler. FormatAuto uses text on a terminal and
	// JSON otherwise.
	Format Format
}

// Facilities is the logging value routes receive.
type Facilities struct {
	Logger *slog.Logger
}

// New creates facilities writing to stderr with default settings.
func New() *Facilities {
	return NewWithConfig(Config{})
}

// NewWithConfig creates facilities from cfg.
func NewWithConfig(cfg Config) *Facilities {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	if cfg.Level == nil {
		cfg.Level = slog.LevelInfo
	}
	if cfg.Format == FormatAuto {
		cfg.Format = FormatJSON
		if IsTerminal(cfg.Output) {
			cfg.Format = FormatText
		}
	}

	opts := &slog.HandlerOptions{Level: cfg.Level}
	var h slog.Handler
	if cfg.Format == FormatText {
		h = slog.NewTextHandler(cfg.Output, opts)
	} else {
		h = slog.NewJSONHandler(cfg.Output, opts)
	}
	return &Facilities{Logger: slog.New(h)}
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// From returns the logger carried by v when v is *Facilities or
// *slog.Logger, and a logger that discards everything otherwise.
func From(v any) *slog.Logger {
	switch l := v.(type) {
	case *Facilities:
		if l != nil && l.Logger != nil {
			return l.Logger
		}
	case *slog.Logger:
		if l != nil {
			return l
		}
	}
	return slog.New(slog.DiscardHandler)
}
