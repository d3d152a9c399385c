package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var log zerolog.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Init configures the package logger from LOG_LEVEL and LOG_FORMAT.
func Init() {
	var out io.Writer = os.Stdout
	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "console") {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	log = New(out, os.Getenv("LOG_LEVEL"))
}

// New builds a JSON logger writing to out. An empty or unknown level means info.
func New(out io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// SetOutput swaps the package logger, mostly for tests.
func SetOutput(l zerolog.Logger) {
	log = l
}

// Logger exposes the underlying zerolog logger.
func Logger() *zerolog.Logger {
	return &log
}

// Info logs msg with optional alternating key/value pairs.
func Info(msg string, kv ...interface{}) {
	withFields(log.Info(), kv).Msg(msg)
}

func Infof(format string, v ...interface{}) {
	log.Info().Msgf(format, v...)
}

func Warn(msg string, kv ...interface{}) {
	withFields(log.Warn(), kv).Msg(msg)
}

func Warnf(format string, v ...interface{}) {
	log.Warn().Msgf(format, v...)
}

func Error(msg string, kv ...interface{}) {
	withFields(log.Error(), kv).Msg(msg)
}

func Errorf(format string, v ...interface{}) {
	log.Error().Msgf(format, v...)
}

func Debug(msg string, kv ...interface{}) {
	withFields(log.Debug(), kv).Msg(msg)
}

func Debugf(format string, v ...interface{}) {
	log.Debug().Msgf(format, v...)
}

func Fatal(msg string, kv ...interface{}) {
	withFields(log.Fatal(), kv).Msg(msg)
}

func Fatalf(format string, v ...interface{}) {
	log.Fatal().Msgf(format, v...)
}

func withFields(e *zerolog.Event, kv []interface{}) *zerolog.Event {
	if len(kv) == 0 {
		return e
	}
	// A trailing key without a value is dropped by zerolog.
	return e.Fields(kv)
}
