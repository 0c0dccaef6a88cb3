package logger

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"imagine-server/image-api/internal/config"
)

var (
	mu           sync.Mutex
	initialized  bool
	globalLogger zerolog.Logger
)

// New creates a zerolog.Logger configured for the image service and installs
// it as the global logger used by packages without an injected logger.
func New(cfg *config.Config) zerolog.Logger {
	level := parseLevel(cfg.LogLevel)

	var base zerolog.Logger
	if strings.EqualFold(cfg.LogFormat, "json") {
		base = zerolog.New(os.Stdout)
	} else {
		base = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	}

	built := base.With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Logger().
		Level(level)

	zerolog.SetGlobalLevel(level)

	mu.Lock()
	globalLogger = built
	initialized = true
	mu.Unlock()

	return built
}

// GetLogger returns the global logger, defaulting to console output at info
// level when New has not run yet.
func GetLogger() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if !initialized {
		consoleWriter := zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
		globalLogger = zerolog.New(consoleWriter).With().Timestamp().Logger().Level(zerolog.InfoLevel)
		initialized = true
	}
	return globalLogger
}

func parseLevel(raw string) zerolog.Level {
	if raw == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(strings.ToLower(raw))
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
