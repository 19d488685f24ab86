package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the sugared subset the rest of the tree logs through.
type Logger interface {
	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)
	Sync() error
}

var _default Logger = zap.NewNop().Sugar()

// Set replaces the default logger. A nil logger is ignored.
func Set(logger Logger) {
	if logger != nil {
		_default = logger
	}
}

// New builds a stderr logger. Verbose turns on debug output in the
// development encoder; otherwise only warnings and errors are written.
func New(verbose bool) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

func Debugw(msg string, keysAndValues ...any) {
	_default.Debugw(msg, keysAndValues...)
}

func Infow(msg string, keysAndValues ...any) {
	_default.Infow(msg, keysAndValues...)
}

func Warnw(msg string, keysAndValues ...any) {
	_default.Warnw(msg, keysAndValues...)
}

func Errorw(msg string, keysAndValues ...any) {
	_default.Errorw(msg, keysAndValues...)
}
