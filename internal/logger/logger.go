// Package logger provides named logrus loggers configured from the CLI
// settings: level, text or JSON formatting, and output to stderr, a rotating
// file, or both.
package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Output targets.
const (
	OutputStderr = "stderr"
	OutputFile   = "file"
	OutputBoth   = "both"
)

// Formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Logger names used across the module.
const (
	NameCLI   = "cli"
	NameStore = "store"
)

// ErrFileRequired is returned when file output is requested without a path.
var ErrFileRequired = errors.New("log file path required for file output")

// Config describes how loggers are built.
type Config struct {
	Level      string
	Format     string
	Output     string
	File       string
	MaxSize    int // megabytes before rotation
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// DefaultConfig logs info and above as text to stderr.
func DefaultConfig() Config {
	return Config{
		Level:      "info",
		Format:     FormatText,
		Output:     OutputStderr,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}
}

var (
	mu      sync.Mutex
	cfg     = DefaultConfig()
	loggers = make(map[string]*logrus.Logger)
	// files holds one rotating writer per log file, shared by every logger
	// writing to it. lumberjack tracks size per instance, so two instances
	// on one file would rotate it out from under each other.
	files = make(map[string]*lumberjack.Logger)
)

// Init replaces the logging configuration and drops loggers built with the
// previous one. Loggers already handed out keep their old settings.
func Init(c Config) error {
	if (c.Output == OutputFile || c.Output == OutputBoth) && c.File == "" {
		return ErrFileRequired
	}
	if c.File != "" {
		if err := os.MkdirAll(filepath.Dir(c.File), 0o755); err != nil {
			return fmt.Errorf("create log directory: %w", err)
		}
	}

	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	cfg = c
	loggers = make(map[string]*logrus.Logger)
	files = make(map[string]*lumberjack.Logger)
	return nil
}

// Get returns the logger with the given name, building it on first use.
func Get(name string) *logrus.Logger {
	mu.Lock()
	defer mu.Unlock()

	if l, ok := loggers[name]; ok {
		return l
	}
	l := newLogger(cfg)
	loggers[name] = l
	return l
}

// Close closes rotating file writers. Loggers already handed out reopen
// their file on the next write.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
}

func closeLocked() {
	for _, f := range files {
		_ = f.Close()
	}
}

// fileWriter returns the shared rotating writer for c.File. The caller must
// hold mu.
func fileWriter(c Config) *lumberjack.Logger {
	if fw, ok := files[c.File]; ok {
		return fw
	}
	fw := &lumberjack.Logger{
		Filename:   c.File,
		MaxSize:    c.MaxSize,
		MaxBackups: c.MaxBackups,
		MaxAge:     c.MaxAge,
		Compress:   c.Compress,
	}
	files[c.File] = fw
	return fw
}

// newLogger builds a logger for c. The caller must hold mu.
func newLogger(c Config) *logrus.Logger {
	l := logrus.New()

	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if c.Format == FormatJSON {
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05.000",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05.000",
		})
	}

	var writers []io.Writer
	if c.Output == OutputFile || c.Output == OutputBoth {
		writers = append(writers, fileWriter(c))
	}
	if c.Output != OutputFile {
		writers = append(writers, os.Stderr)
	}
	l.SetOutput(io.MultiWriter(writers...))

	return l
}

// Discard returns a logger that writes nothing, for tests and library
// callers that did not configure logging.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
