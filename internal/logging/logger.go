package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/wizzomafizzo/hammer/internal/constants"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultMaxSizeMB  = 10
	defaultMaxBackups = 3
	defaultMaxAgeDays = 30
)

// Log levels - aliases for zerolog levels
const (
	ErrorLevel = zerolog.ErrorLevel
	WarnLevel  = zerolog.WarnLevel
	InfoLevel  = zerolog.InfoLevel
	DebugLevel = zerolog.DebugLevel
	TraceLevel = zerolog.TraceLevel
)

// Config defines the configuration for logger creation
type Config struct {
	Writer     io.Writer
	Path       string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Level      zerolog.Level
}

// DefaultPath returns the log file location under the XDG state directory.
// The log is kept out of the data directory so that only tracking files live there.
func DefaultPath() string {
	return filepath.Join(xdg.StateHome, constants.AppName, constants.LogFilename)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New creates a new context with a logger attached
// For production: provide fs, leave Writer nil for rotating file logging
// For tests: provide a custom Writer (like strings.Builder) for in-memory logging
// The returned closer releases the log file and must be closed by the caller.
func New(ctx context.Context, fs afero.Fs, config Config) (context.Context, io.Closer, error) {
	var writer io.Writer
	var closer io.Closer = nopCloser{}

	if config.Writer != nil {
		writer = config.Writer
	} else {
		if fs == nil {
			return nil, nil, errors.New("filesystem required when no writer provided")
		}

		logFile := config.Path
		if logFile == "" {
			logFile = DefaultPath()
		}

		logDir := filepath.Dir(logFile)
		if err := fs.MkdirAll(logDir, 0o750); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory %s: %w", logDir, err)
		}

		rotating := newRotatingWriter(logFile, config)
		writer = rotating
		closer = rotating
	}

	logger := zerolog.New(writer).With().
		Timestamp().
		Str("app", constants.AppName).
		Logger().
		Level(config.Level)

	return logger.WithContext(ctx), closer, nil
}

// NewFallback attaches a logger that writes warnings and above to w. It is
// used when the log file cannot be set up, so that logging never stops a run.
func NewFallback(ctx context.Context, w io.Writer) context.Context {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).With().
		Timestamp().
		Str("app", constants.AppName).
		Logger().
		Level(WarnLevel)

	return logger.WithContext(ctx)
}

func newRotatingWriter(logFile string, config Config) *lumberjack.Logger {
	w := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    config.MaxSize,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge,
	}
	if w.MaxSize <= 0 {
		w.MaxSize = defaultMaxSizeMB
	}
	if w.MaxBackups <= 0 {
		w.MaxBackups = defaultMaxBackups
	}
	if w.MaxAge <= 0 {
		w.MaxAge = defaultMaxAgeDays
	}
	return w
}

// Get retrieves the logger from the provided context
// Returns the logger associated with the context, or a disabled logger if none exists
func Get(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
