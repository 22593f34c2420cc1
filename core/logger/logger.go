package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var sugar *zap.SugaredLogger

func init() {
	// Default logger so packages can log before Init runs (e.g. config load)
	l, _ := zap.NewProduction(zap.AddCallerSkip(1))
	sugar = l.Sugar()
}

// Init replaces the default logger with one configured from the given level
// ("debug", "info", "warn", "error"). Unknown levels fall back to info.
func Init(level string) error {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}
	sugar = l.Sugar()
	return nil
}

func Debug(msg string, keysAndValues ...any) {
	sugar.Debugw(msg, normalize(keysAndValues)...)
}

func Info(msg string, keysAndValues ...any) {
	sugar.Infow(msg, normalize(keysAndValues)...)
}

func Warn(msg string, keysAndValues ...any) {
	sugar.Warnw(msg, normalize(keysAndValues)...)
}

func Error(msg string, keysAndValues ...any) {
	sugar.Errorw(msg, normalize(keysAndValues)...)
}

func Sync() {
	_ = sugar.Sync()
}

// normalize tolerates the `logger.Error("Tag", err)` call shape by keying a
// lone trailing value as "error".
func normalize(args []any) []any {
	if len(args)%2 == 0 {
		return args
	}
	return append([]any{"error"}, args...)
}
