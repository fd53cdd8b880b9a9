// Package logging builds the application's slog logger.
//
// Contact data is personal data: attributes named after phone or birthday
// fields, and any free-text value that looks like a 10-digit phone number,
// are redacted before they reach a handler.
package logging

import (
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/m-mizutani/masq"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// phonePattern matches 10-digit runs embedded in error messages and arguments.
var phonePattern = regexp.MustCompile(`\b[0-9]{10}\b`)

// New creates a configured *slog.Logger.
//
// Valid levels are "debug", "info", "warn" and "error"; anything else means
// info. Format "text" selects slog.NewTextHandler, any other value JSON.
// At debug level the source location is included.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	var handler slog.Handler
	if format == config.LogFormatText {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}

// ParseLevel converts a level string to slog.Level.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

// newRedactAttr returns a masq-powered ReplaceAttr function.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	return masq.New(
		masq.WithFieldName(config.LogKeyPhone),
		masq.WithFieldName(config.LogKeyBirthday),
		masq.WithRegex(phonePattern),
	)
}
