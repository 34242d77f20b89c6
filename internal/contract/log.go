package contract

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	loggerMu sync.RWMutex
	logger   = mustLogger(DefaultLogLevel, DefaultLogFormat)
)

// NewLogger builds a zap logger that writes to w at the given level.
// Format is "console" or "json".
func NewLogger(level, format string, w zapcore.WriteSyncer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	var encoder zapcore.Encoder
	switch format {
	case "json":
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	case "console", "":
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.TimeKey = ""
		encoder = zapcore.NewConsoleEncoder(encCfg)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
	return zap.New(zapcore.NewCore(encoder, zapcore.Lock(w), lvl)), nil
}

func mustLogger(level, format string) *zap.Logger {
	l, err := NewLogger(level, format, os.Stderr)
	if err != nil {
		return zap.NewNop()
	}
	return l
}

// InitLogger replaces the process logger using validated config values.
func InitLogger(cfg *Config) error {
	l, err := NewLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		return err
	}
	SetLogger(l)
	return nil
}

// SetLogger swaps the process logger. Tests use it with zaptest or observer cores.
func SetLogger(l *zap.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = l
}

// Logger returns the process logger.
func Logger() *zap.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	l := Logger()
	l.Error(msg, zap.Error(err))
	_ = l.Sync()
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	Logger().Warn(msg, zap.Error(err))
}
