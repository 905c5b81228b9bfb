package logger

import (
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/AsmaaWasel/Dashboard/env"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var current atomic.Pointer[zap.Logger]

// Init builds the process logger. Production logs JSON at info level, every other
// environment logs to the console at debug level. When LogsPath is set, errors are
// also appended to error.log there.
func Init(cfg *env.Env) error {

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	level := zapcore.DebugLevel
	encoder := zapcore.NewConsoleEncoder(encoderConfig)
	if cfg.IsProduction() {
		level = zapcore.InfoLevel
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level),
	}

	if cfg.App.LogsPath != "" {

		if err := os.MkdirAll(cfg.App.LogsPath, 0o755); err != nil {
			return err
		}

		errorFile, err := os.OpenFile(filepath.Join(cfg.App.LogsPath, "error.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}

		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(errorFile), zapcore.ErrorLevel))
	}

	Set(zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)))

	return nil
}

// Set replaces the process logger, e.g. with zaptest or an observer in tests.
func Set(l *zap.Logger) {
	current.Store(l)
}

// GetLogger returns the process logger, a no-op logger before Init.
func GetLogger() *zap.Logger {

	if l := current.Load(); l != nil {
		return l
	}

	return zap.NewNop()
}

func Sync() {
	_ = GetLogger().Sync()
}

func WithFields(fields ...zap.Field) *zap.Logger {
	return GetLogger().With(fields...)
}

// LogError logs err with the given message and fields.
func LogError(err error, message string, fields ...zap.Field) {
	GetLogger().Error(message, append([]zap.Field{zap.Error(err)}, fields...)...)
}

func LogRequest(method, path string, statusCode int, durationMs int64, clientIP, requestID string) {

	GetLogger().Info("HTTP Request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status_code", statusCode),
		zap.Int64("duration_ms", durationMs),
		zap.String("client_ip", clientIP),
		zap.String("request_id", requestID),
	)
}
