// Package log wraps a zap sugared logger behind the small interface the
// command line tools use.
package log

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger logs structured key/value pairs at a fixed set of levels.
type Logger interface {
	Debugw(msg string, keyvals ...interface{})
	Infow(msg string, keyvals ...interface{})
	Warnw(msg string, keyvals ...interface{})
	Errorw(msg string, keyvals ...interface{})
	With(keyvals ...interface{}) Logger
	Named(name string) Logger
	Sync() error
}

type logger struct {
	*zap.SugaredLogger
}

func (l *logger) With(keyvals ...interface{}) Logger {
	return &logger{l.SugaredLogger.With(keyvals...)}
}

func (l *logger) Named(name string) Logger {
	return &logger{l.SugaredLogger.Named(name)}
}

const (
	DebugLevel = int(zapcore.DebugLevel)
	InfoLevel  = int(zapcore.InfoLevel)
	WarnLevel  = int(zapcore.WarnLevel)
	ErrorLevel = int(zapcore.ErrorLevel)
)

// DefaultLevel is used by DefaultLogger.
var DefaultLevel = InfoLevel

var (
	defaultOnce   sync.Once
	defaultLogger Logger
)

// DefaultLogger returns a process-wide console logger writing to stderr.
func DefaultLogger() Logger {
	defaultOnce.Do(func() {
		defaultLogger = New(nil, DefaultLevel, false)
	})
	return defaultLogger
}

// New returns a logger writing to output (stderr when nil) at level.
func New(output zapcore.WriteSyncer, level int, isJSON bool) Logger {
	if output == nil {
		output = os.Stderr
	}
	encoder := getConsoleEncoder()
	if isJSON {
		encoder = getJSONEncoder()
	}
	core := zapcore.NewCore(encoder, output, zapcore.Level(level))
	return &logger{zap.New(core).Sugar()}
}

// ParseLevel maps a level name to one of the level constants.
func ParseLevel(s string) (int, error) {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(s)))); err != nil {
		return 0, fmt.Errorf("unknown log level %q", s)
	}
	switch l {
	case zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel:
		return int(l), nil
	}
	return 0, fmt.Errorf("unsupported log level %q", s)
}

func getJSONEncoder() zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewJSONEncoder(encoderConfig)
}

func getConsoleEncoder() zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(encoderConfig)
}
