package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the context-aware logging interface used across the service.
// Implementations are safe for concurrent use.
type Logger interface {
	Debug(ctx context.Context, args ...any)
	Debugf(ctx context.Context, template string, args ...any)
	Info(ctx context.Context, args ...any)
	Infof(ctx context.Context, template string, args ...any)
	Warn(ctx context.Context, args ...any)
	Warnf(ctx context.Context, template string, args ...any)
	Error(ctx context.Context, args ...any)
	Errorf(ctx context.Context, template string, args ...any)
	Fatal(ctx context.Context, args ...any)
	Fatalf(ctx context.Context, template string, args ...any)
	DPanic(ctx context.Context, args ...any)
	DPanicf(ctx context.Context, template string, args ...any)
	Panic(ctx context.Context, args ...any)
	Panicf(ctx context.Context, template string, args ...any)
}

// ZapConfig configures the zap-backed logger.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds the service logger from config.
func Init(cfg ZapConfig) Logger {
	level := zapcore.DebugLevel
	if err := level.Set(cfg.Level); err != nil {
		level = zapcore.DebugLevel
	}

	var zc zap.Config
	if cfg.Mode == "production" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}

	zc.Level = zap.NewAtomicLevelAt(level)
	if cfg.Encoding != "" {
		zc.Encoding = cfg.Encoding
	}
	if cfg.ColorEnabled && zc.Encoding == "console" {
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logger, err := zc.Build(zap.AddCallerSkip(1))
	if err != nil {
		logger = zap.NewNop()
	}

	return &zapLogger{sugar: logger.Sugar()}
}

// fields extracts structured fields carried by the context.
// Today this is only the request ID set by the middleware.
func (z *zapLogger) fields(ctx context.Context) []any {
	if ctx == nil {
		return nil
	}
	if reqID, ok := ctx.Value(RequestIDKey).(string); ok && reqID != "" {
		return []any{"request_id", reqID}
	}
	return nil
}

// ctxKey avoids collisions with other packages' context values.
type ctxKey string

// RequestIDKey is the context key carrying the inbound request ID.
const RequestIDKey ctxKey = "request_id"

func (z *zapLogger) Debug(ctx context.Context, args ...any) {
	z.sugar.With(z.fields(ctx)...).Debug(args...)
}

func (z *zapLogger) Debugf(ctx context.Context, template string, args ...any) {
	z.sugar.With(z.fields(ctx)...).Debugf(template, args...)
}

func (z *zapLogger) Info(ctx context.Context, args ...any) {
	z.sugar.With(z.fields(ctx)...).Info(args...)
}

func (z *zapLogger) Infof(ctx context.Context, template string, args ...any) {
	z.sugar.With(z.fields(ctx)...).Infof(template, args...)
}

func (z *zapLogger) Warn(ctx context.Context, args ...any) {
	z.sugar.With(z.fields(ctx)...).Warn(args...)
}

func (z *zapLogger) Warnf(ctx context.Context, template string, args ...any) {
	z.sugar.With(z.fields(ctx)...).Warnf(template, args...)
}

func (z *zapLogger) Error(ctx context.Context, args ...any) {
	z.sugar.With(z.fields(ctx)...).Error(args...)
}

func (z *zapLogger) Errorf(ctx context.Context, template string, args ...any) {
	z.sugar.With(z.fields(ctx)...).Errorf(template, args...)
}

func (z *zapLogger) Fatal(ctx context.Context, args ...any) {
	z.sugar.With(z.fields(ctx)...).Fatal(args...)
}

func (z *zapLogger) Fatalf(ctx context.Context, template string, args ...any) {
	z.sugar.With(z.fields(ctx)...).Fatalf(template, args...)
}

func (z *zapLogger) DPanic(ctx context.Context, args ...any) {
	z.sugar.With(z.fields(ctx)...).DPanic(args...)
}

func (z *zapLogger) DPanicf(ctx context.Context, template string, args ...any) {
	z.sugar.With(z.fields(ctx)...).DPanicf(template, args...)
}

func (z *zapLogger) Panic(ctx context.Context, args ...any) {
	z.sugar.With(z.fields(ctx)...).Panic(args...)
}

func (z *zapLogger) Panicf(ctx context.Context, template string, args ...any) {
	z.sugar.With(z.fields(ctx)...).Panicf(template, args...)
}
