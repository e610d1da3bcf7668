package logger

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/academy/internal/config"
)

// Logger is a thin sugared wrapper so callers log with key/value pairs.
type Logger struct {
	SugaredLogger *zap.SugaredLogger
}

// New builds a file logger from cfg. When cfg.LogFile is empty the returned
// logger discards everything.
func New(cfg config.Config) (*Logger, error) {
	if cfg.LogFile == "" {
		return Nop(), nil
	}
	if err := config.EnsureDir(cfg.LogFile); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	var zcfg zap.Config
	switch cfg.LogMode {
	case config.LogModeProd:
		zcfg = zap.NewProductionConfig()
	default:
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	zcfg.OutputPaths = []string{cfg.LogFile}
	zcfg.ErrorOutputPaths = []string{cfg.LogFile}

	zapLogger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return &Logger{SugaredLogger: zapLogger.Sugar()}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

func (l *Logger) Sync() {
	_ = l.SugaredLogger.Sync()
}

func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Debugw(msg, keysAndValues...)
}
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Infow(msg, keysAndValues...)
}
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Warnw(msg, keysAndValues...)
}
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Errorw(msg, keysAndValues...)
}
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.With(keysAndValues...)}
}
