// Package log builds the slog handlers used by the spinchan command.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/log"
)

const (
	FormatJSON   = "json"
	FormatLogfmt = "logfmt"
	FormatText   = "text"
)

// CreateHandler creates a [slog.Handler] writing to w at the given level
// and format.
func CreateHandler(w io.Writer, logLevel, logFormat string) (slog.Handler, error) {
	level, err := GetLevel(logLevel)
	if err != nil {
		return nil, err
	}

	formatter, err := GetFormatter(logFormat)
	if err != nil {
		return nil, err
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: true,
	}), nil
}

// GetLevel parses a level name. An empty name means info.
func GetLevel(level string) (log.Level, error) {
	switch strings.ToLower(level) {
	case "":
		return log.InfoLevel, nil
	case "warning":
		return log.WarnLevel, nil
	case "trace":
		return log.DebugLevel, nil
	}

	l, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return l, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	return l, nil
}

// GetFormatter parses a format name. An empty name means text.
func GetFormatter(format string) (log.Formatter, error) {
	switch strings.ToLower(format) {
	case FormatJSON:
		return log.JSONFormatter, nil
	case FormatLogfmt:
		return log.LogfmtFormatter, nil
	case FormatText, "":
		return log.TextFormatter, nil
	}

	return log.TextFormatter, fmt.Errorf("unknown log format %q", format)
}
