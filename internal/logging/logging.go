package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global zerolog logger with the given level and format.
// If w is nil, os.Stderr is used. Format must be "console" or "json".
// An unknown level falls back to info.
func Init(level string, format string, w ...io.Writer) {
	var writer io.Writer = os.Stderr
	if len(w) > 0 && w[0] != nil {
		writer = w[0]
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339

	switch format {
	case "json":
		log.Logger = zerolog.New(writer).With().Timestamp().Logger()
	default:
		log.Logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        writer,
			TimeFormat: "2006-01-02 15:04:05",
			NoColor:    writer != os.Stderr && writer != os.Stdout,
		}).With().Timestamp().Logger()
	}
}

// New returns a logger with a "component" field for module-scoped logging.
func New(component string) zerolog.Logger {
	return log.Logger.With().Str("component", component).Logger()
}
