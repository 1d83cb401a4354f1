package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the sugared zap logger shared by the commands.
type Logger struct {
	*zap.SugaredLogger
}

// NewLogger writes console-encoded entries to stderr, at debug level when
// verbose is set and info level otherwise.
func NewLogger(verbose bool) *Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encoderCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(os.Stderr),
		zap.NewAtomicLevelAt(level),
	)

	return &Logger{SugaredLogger: zap.New(core).Sugar()}
}

// NewNop discards everything.
func NewNop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// Quiet returns a copy that only emits warnings and errors. Used while the
// terminal display owns the screen.
func (l *Logger) Quiet() *Logger {
	return &Logger{
		SugaredLogger: l.Desugar().
			WithOptions(zap.IncreaseLevel(zapcore.WarnLevel)).
			Sugar(),
	}
}
