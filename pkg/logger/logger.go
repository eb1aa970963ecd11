package logger

import (
	"os"

	"github.com/rs/zerolog"
)

const (
	DEBUG int = iota
	INFO
	WARNING
	ERROR
	SILENCE
)

type Logger interface {
	Debugf(msg string, a ...any)
	Infof(msg string, a ...any)
	Warnf(msg string, a ...any)
	Errorf(msg string, a ...any)

	// With returns a child logger that attaches the given field to every
	// record it writes.
	With(key string, value any) Logger
}

type defaultLogger struct {
	zl zerolog.Logger
}

func NewLogger(level int) *defaultLogger {
	zl := zerolog.New(os.Stdout).Level(zerologLevel(level)).With().Timestamp().Logger()
	return &defaultLogger{zl: zl}
}

func zerologLevel(level int) zerolog.Level {
	switch level {
	case DEBUG:
		return zerolog.DebugLevel
	case INFO:
		return zerolog.InfoLevel
	case WARNING:
		return zerolog.WarnLevel
	case ERROR:
		return zerolog.ErrorLevel
	default:
		return zerolog.Disabled
	}
}

func (l *defaultLogger) Debugf(msg string, a ...any) {
	l.zl.Debug().Msgf(msg, a...)
}

func (l *defaultLogger) Infof(msg string, a ...any) {
	l.zl.Info().Msgf(msg, a...)
}

func (l *defaultLogger) Warnf(msg string, a ...any) {
	l.zl.Warn().Msgf(msg, a...)
}

func (l *defaultLogger) Errorf(msg string, a ...any) {
	l.zl.Error().Msgf(msg, a...)
}

func (l *defaultLogger) With(key string, value any) Logger {
	return &defaultLogger{zl: l.zl.With().Interface(key, value).Logger()}
}
