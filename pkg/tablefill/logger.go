package tablefill

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

type LogLevel int

const (
	LogDebug LogLevel = iota
	LogInfo
	LogWarn
	LogError
	LogOff
)

func (l LogLevel) String() string {
	switch l {
	case LogDebug:
		return "DEBUG"
	case LogInfo:
		return "INFO"
	case LogWarn:
		return "WARN"
	case LogError:
		return "ERROR"
	case LogOff:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

func (l LogLevel) logrusLevel() logrus.Level {
	switch l {
	case LogDebug:
		return logrus.DebugLevel
	case LogWarn:
		return logrus.WarnLevel
	case LogError:
		return logrus.ErrorLevel
	case LogOff:
		// nothing in this package logs at panic level
		return logrus.PanicLevel
	default:
		return logrus.InfoLevel
	}
}

type Fields map[string]interface{}

// Logger is a leveled logger with structured fields.
type Logger struct {
	entry *logrus.Entry
}

var (
	globalLogger     *Logger
	globalLoggerOnce sync.Once
	globalLoggerMu   sync.RWMutex
)

func initGlobalLogger() {
	globalLoggerOnce.Do(func() {
		config := GetGlobalConfig()
		logger := NewLoggerFromConfig(os.Stderr, config)
		globalLoggerMu.Lock()
		globalLogger = logger
		globalLoggerMu.Unlock()
	})
}

func parseLogLevel(levelStr string) LogLevel {
	switch levelStr {
	case "debug":
		return LogDebug
	case "info":
		return LogInfo
	case "warn":
		return LogWarn
	case "error":
		return LogError
	case "off":
		return LogOff
	default:
		return LogInfo
	}
}

// NewLogger creates a text logger writing to w.
func NewLogger(w io.Writer, level LogLevel) *Logger {
	return NewLoggerWithFormat(w, level, "text")
}

// NewLoggerWithFormat creates a logger writing to w in "text" or "json" format.
func NewLoggerWithFormat(w io.Writer, level LogLevel, format string) *Logger {
	if w == nil {
		w = io.Discard
	}
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level.logrusLevel())
	if format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02 15:04:05"})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			DisableColors:   true,
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}
	return &Logger{entry: logrus.NewEntry(l)}
}

// SetLevel changes the level of l and of every logger derived from it.
func (l *Logger) SetLevel(level LogLevel) {
	l.entry.Logger.SetLevel(level.logrusLevel())
}

func (l *Logger) IsDebugMode() bool {
	return l.entry.Logger.IsLevelEnabled(logrus.DebugLevel)
}

func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{entry: l.entry.WithField(key, value)}
}

func (l *Logger) WithFields(fields Fields) *Logger {
	return &Logger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

// Global logging functions
func SetLogger(logger *Logger) {
	initGlobalLogger()
	globalLoggerMu.Lock()
	globalLogger = logger
	globalLoggerMu.Unlock()
}

func GetLogger() *Logger {
	initGlobalLogger()
	globalLoggerMu.RLock()
	defer globalLoggerMu.RUnlock()
	return globalLogger
}

func Debug(format string, args ...interface{}) {
	GetLogger().Debug(format, args...)
}

func Info(format string, args ...interface{}) {
	GetLogger().Info(format, args...)
}

func Warn(format string, args ...interface{}) {
	GetLogger().Warn(format, args...)
}

func Error(format string, args ...interface{}) {
	GetLogger().Error(format, args...)
}

func WithField(key string, value interface{}) *Logger {
	return GetLogger().WithField(key, value)
}

func WithFields(fields Fields) *Logger {
	return GetLogger().WithFields(fields)
}

// UpdateLoggerFromConfig updates the global logger based on the current global configuration
func UpdateLoggerFromConfig() {
	config := GetGlobalConfig()
	GetLogger().SetLevel(parseLogLevel(config.LogLevel))
}

// NewLoggerFromConfig creates a logger writing to w with the level and format of config.
func NewLoggerFromConfig(w io.Writer, config *Config) *Logger {
	return NewLoggerWithFormat(w, parseLogLevel(config.LogLevel), config.LogFormat)
}
