package observability

import (
	"context"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultLogLevel = "info"
	logBackups      = 2
)

// LoggerOptions configures NewLogger. Level uses the names shown in the admin settings
// (DEBUG, INFO, WARNING, ERROR) and also accepts zap's own names.
type LoggerOptions struct {
	Level string
	// File enables a size-rotated JSON file next to stdout when non-empty.
	File string
	// MaxBytesMB bounds the total size of the file and its backups.
	MaxBytesMB float64
}

// NewLogger constructs a zap logger emitting structured JSON. The returned AtomicLevel can be
// changed at runtime when the log_level setting is updated.
func NewLogger(opts LoggerOptions) (*zap.Logger, zap.AtomicLevel, error) {
	level := zap.NewAtomicLevel()
	lvl, ok := ParseLevel(opts.Level)
	if !ok {
		lvl, _ = ParseLevel(defaultLogLevel)
	}
	level.SetLevel(lvl)

	encoderCfg := zapcore.EncoderConfig{
		MessageKey: "message",
		TimeKey:    "timestamp",
		LevelKey:   "severity",
		EncodeTime: zapcore.RFC3339NanoTimeEncoder,
		EncodeLevel: func(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(strings.ToUpper(level.String()))
		},
		CallerKey:      "caller",
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		StacktraceKey:  "stacktrace",
	}
	encoder := zapcore.NewJSONEncoder(encoderCfg)

	cores := []zapcore.Core{zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level)}
	if file := strings.TrimSpace(opts.File); file != "" {
		rotator := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    fileMaxSizeMB(opts.MaxBytesMB),
			MaxBackups: logBackups,
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(rotator), level))
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.ErrorOutput(zapcore.Lock(os.Stderr)))
	return logger, level, nil
}

// ParseLevel maps a settings level name onto a zap level.
func ParseLevel(name string) (zapcore.Level, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "warning" {
		normalized = "warn"
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(normalized)); err != nil || normalized == "" {
		return zapcore.InfoLevel, false
	}
	return lvl, true
}

// fileMaxSizeMB splits the total budget across the active file and its backups.
func fileMaxSizeMB(totalMB float64) int {
	size := int(totalMB / float64(logBackups+1))
	if size < 1 {
		return 1
	}
	return size
}

type loggerKey struct{}

// WithLogger injects the logger into the provided context.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext retrieves the logger from context, defaulting to a no-op logger.
func FromContext(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return zap.NewNop()
	}
	if logger, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok && logger != nil {
		return logger
	}
	return zap.NewNop()
}
