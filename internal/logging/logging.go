package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// wraps zap for simple leveled logging across the app
type Logger struct {
	*zap.SugaredLogger
}

// NewLogger builds a console logger. Verbose enables debug output.
func NewLogger(verbose bool) *Logger {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	cfg.DisableStacktrace = true
	logger, err := cfg.Build()
	if err != nil {
		// zap's development config cannot fail to build with these
		// settings; fall back to a no-op rather than crash logging.
		return NewNop()
	}
	return &Logger{logger.Sugar()}
}

// NewNop returns a logger that discards everything. Used in tests and as
// the default when callers pass nil.
func NewNop() *Logger {
	return &Logger{zap.NewNop().Sugar()}
}
