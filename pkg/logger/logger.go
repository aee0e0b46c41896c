package logger

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// LogFormat represents log output formats
type LogFormat string

const (
	JSONFormat LogFormat = "json"
	TextFormat LogFormat = "text"
)

// Config represents logger configuration
type Config struct {
	Level  string
	Format LogFormat
}

var (
	instance *logrus.Logger
	once     sync.Once
)

// Init initializes the global logger from LOG_LEVEL / LOG_FORMAT.
// Maintenance jobs default to text on stdout so reports stay readable.
func Init() {
	once.Do(func() {
		instance = New(configFromEnv())
	})
}

// New creates a logger instance with the given configuration.
func New(config Config) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if config.Format == JSONFormat {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	logger.SetOutput(os.Stdout)
	return logger
}

func configFromEnv() Config {
	config := Config{
		Level:  "info",
		Format: TextFormat,
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Level = strings.ToLower(level)
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		config.Format = LogFormat(strings.ToLower(format))
	}
	return config
}

// Global logger functions

func Debugf(format string, args ...interface{}) {
	if instance != nil {
		instance.Debugf(format, args...)
	}
}

func Infof(format string, args ...interface{}) {
	if instance != nil {
		instance.Infof(format, args...)
	}
}

func Warnf(format string, args ...interface{}) {
	if instance != nil {
		instance.Warnf(format, args...)
	}
}

func Errorf(format string, args ...interface{}) {
	if instance != nil {
		instance.Errorf(format, args...)
	}
}

// WithFields creates a logger entry with structured fields.
func WithFields(fields logrus.Fields) *logrus.Entry {
	if instance == nil {
		Init()
	}
	return instance.WithFields(fields)
}

// WithError creates a logger entry with an error field.
func WithError(err error) *logrus.Entry {
	if instance == nil {
		Init()
	}
	return instance.WithError(err)
}

// LogJobStep logs the start of a named job step.
func LogJobStep(job, step string) {
	WithFields(logrus.Fields{
		"job":  job,
		"step": step,
	}).Info("running step")
}

// LogJobResult logs a finished job with its tallies.
func LogJobResult(job string, counts map[string]int) {
	fields := logrus.Fields{"job": job}
	for k, v := range counts {
		fields[k] = v
	}
	WithFields(fields).Info("job finished")
}
