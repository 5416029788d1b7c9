package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

// Level is a log level name accepted on the command line.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Format is a log output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func (l Level) slogLevel() (slog.Level, error) {
	switch Level(strings.ToLower(string(l))) {
	case LevelDebug:
		return slog.LevelDebug, nil
	case LevelInfo, "":
		return slog.LevelInfo, nil
	case LevelWarn, "warning":
		return slog.LevelWarn, nil
	case LevelError:
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", string(l))
	}
}

// New builds a logger writing to w. Timestamps use RFC 3339.
func New(w io.Writer, level Level, format Format) (*slog.Logger, error) {
	lvl, err := level.slogLevel()
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{
		Level: lvl,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.String(slog.TimeKey, a.Value.Time().Format(time.RFC3339))
			}

			return a
		},
	}

	var handler slog.Handler

	switch Format(strings.ToLower(string(format))) {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	case FormatText, "":
		handler = slog.NewTextHandler(w, opts)
	default:
		return nil, fmt.Errorf("unknown log format %q", string(format))
	}

	return slog.New(handler), nil
}

// InitLogger builds a logger with New and makes it the slog default.
func InitLogger(w io.Writer, level Level, format Format) (*slog.Logger, error) {
	logger, err := New(w, level, format)
	if err != nil {
		return nil, err
	}

	slog.SetDefault(logger)

	return logger, nil
}
