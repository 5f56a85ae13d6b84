// Package logger owns the process-wide zerolog logger for the catalog
// service. Call Init once from main; hand sub-loggers to components with
// Component so every line carries its origin.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options configures the root logger.
type Options struct {
	// Level names the minimum level to emit (trace, debug, info, warn,
	// error). Unknown or empty values fall back to info.
	Level string
	// Pretty switches from JSON lines to a coloured console writer,
	// intended for local development.
	Pretty bool
	// Output defaults to os.Stdout when nil.
	Output io.Writer
}

var (
	mu   sync.Mutex
	root zerolog.Logger
	set  bool
)

// Init builds the root logger and installs it as the package singleton.
// Repeated calls reconfigure it, which tests rely on.
func Init(opts Options) zerolog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	lvl := parseLevel(opts.Level)
	zerolog.SetGlobalLevel(lvl)

	l := zerolog.New(out).Level(lvl).With().Timestamp().Caller().Logger()

	mu.Lock()
	root = l
	set = true
	mu.Unlock()
	return l
}

// Get returns the root logger. Before Init it returns a no-op logger so
// library code never has to guard against an unconfigured singleton.
func Get() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if !set {
		return zerolog.Nop()
	}
	return root
}

// Component returns the root logger tagged with a component name.
func Component(name string) zerolog.Logger {
	return Get().With().Str("component", name).Logger()
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
