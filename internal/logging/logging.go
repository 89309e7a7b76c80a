package logging

import (
	"fmt"
	"io"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"
	"github.com/apex/log/handlers/json"
	"github.com/apex/log/handlers/text"
	"github.com/kdduha/vision-relay/internal/config"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

func New(cfg config.LogConfig, w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	var handler log.Handler
	switch cfg.Format {
	case FormatText, "":
		handler = text.New(w)
	case FormatJSON:
		handler = json.New(w)
	default:
		return nil, fmt.Errorf("unsupported log format %q", cfg.Format)
	}

	return &log.Logger{Handler: handler, Level: level}, nil
}

// Discard returns a logger that drops every entry.
func Discard() *log.Logger {
	return &log.Logger{Handler: discard.New(), Level: log.FatalLevel}
}
