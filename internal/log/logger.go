package log

import (
	"io"
	"os"

	"flagren/internal/errors"

	"github.com/sirupsen/logrus"
)

var (
	isDebug = false
	logger  = NewLogger(WithLevel(logrus.WarnLevel))
)

// Field is a single structured key/value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// F is shorthand for building a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Option configures a Logger.
type Option func(*Logger)

// WithOutput sends log output to w.
func WithOutput(w io.Writer) Option {
	return func(l *Logger) {
		l.out = w
	}
}

// WithJSON switches to JSON formatted entries.
func WithJSON() Option {
	return func(l *Logger) {
		l.json = true
	}
}

// WithFile mirrors log output to the file at path, appending.
func WithFile(path string) Option {
	return func(l *Logger) {
		l.filePath = path
	}
}

// WithLevel sets the minimum level emitted when debug is off.
func WithLevel(level logrus.Level) Option {
	return func(l *Logger) {
		l.level = level
	}
}

// Logger wraps a logrus entry with the fields accumulated through With.
type Logger struct {
	entry    *logrus.Entry
	out      io.Writer
	json     bool
	level    logrus.Level
	filePath string
	file     *os.File
}

// NewLogger builds a Logger writing text entries to stderr at info level
// unless options say otherwise.
func NewLogger(opts ...Option) *Logger {
	l := &Logger{
		out:   os.Stderr,
		level: logrus.InfoLevel,
	}
	for _, opt := range opts {
		opt(l)
	}

	base := logrus.New()
	out := l.out
	if l.filePath != "" {
		f, err := os.OpenFile(l.filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			l.file = f
			out = io.MultiWriter(l.out, f)
		}
	}
	base.SetOutput(out)
	base.SetReportCaller(true)
	if l.json {
		base.SetFormatter(&logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyMsg:   "message",
				logrus.FieldKeyFunc:  "caller",
				logrus.FieldKeyLevel: "level",
			},
		})
	} else {
		base.SetFormatter(&logrus.TextFormatter{
			DisableColors:   true,
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}
	l.entry = logrus.NewEntry(base)
	l.applyLevel()
	return l
}

func (l *Logger) applyLevel() {
	if isDebug {
		l.entry.Logger.SetLevel(logrus.DebugLevel)
		return
	}
	l.entry.Logger.SetLevel(l.level)
}

// With returns a child logger carrying the given fields.
func (l *Logger) With(fields ...Field) *Logger {
	data := make(logrus.Fields, len(fields))
	for _, f := range fields {
		data[f.Key] = f.Value
	}
	child := *l
	child.entry = l.entry.WithFields(data)
	return &child
}

// WithError returns a child logger describing err. Application errors
// contribute their kind and, for file errors, their path.
func (l *Logger) WithError(err error) *Logger {
	if err == nil {
		return l.With(F(logrus.ErrorKey, "<nil>"))
	}
	fields := []Field{
		F(logrus.ErrorKey, err.Error()),
		F("error_kind", int(errors.KindOf(err))),
	}
	var fileErr *errors.FileError
	if errors.As(err, &fileErr) && fileErr.Path() != "" {
		fields = append(fields, F("path", fileErr.Path()))
	}
	var configErr *errors.ConfigError
	if errors.As(err, &configErr) && configErr.Param() != "" {
		fields = append(fields, F("param", configErr.Param()))
	}
	return l.With(fields...)
}

// Close releases the mirror log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

func (l *Logger) Debug(args ...interface{}) {
	l.entry.Debug(args...)
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

func (l *Logger) Info(args ...interface{}) {
	l.entry.Info(args...)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

func (l *Logger) Warn(args ...interface{}) {
	l.entry.Warn(args...)
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

func (l *Logger) Error(args ...interface{}) {
	l.entry.Error(args...)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

// Configure replaces the package logger. The previous logger's file, if
// any, is closed.
func Configure(opts ...Option) {
	prev := logger
	logger = NewLogger(opts...)
	if prev != nil {
		_ = prev.Close()
	}
}

// Default returns the package logger.
func Default() *Logger {
	return logger
}

// SetDebug toggles debug output on the package logger.
func SetDebug(debug bool) {
	isDebug = debug
	logger.applyLevel()
}

// LogWithFields returns the package logger carrying fields.
func LogWithFields(fields ...Field) *Logger {
	return logger.With(fields...)
}

// LogWithError returns the package logger describing err.
func LogWithError(err error) *Logger {
	return logger.WithError(err)
}

// Info logs a formatted message at info level
func Info(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// Debugf logs a formatted message when debug is on
func Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

