package log

import (
	"context"

	"go.uber.org/zap"

	"github.com/LLLLLLs/timeskew/log/field"
	"github.com/LLLLLLs/timeskew/sign"
)

type Logger interface {
	With(fields ...field.Field) Logger
	Debug(msg string, fields ...field.Field)
	Info(msg string, fields ...field.Field)
	Warn(msg string, fields ...field.Field)
	Error(msg string, fields ...field.Field)
	Sync()
}

type simple struct {
	base *zap.Logger
	fs   []field.Field
}

func (l *simple) With(fields ...field.Field) Logger {
	return &simple{
		base: l.base,
		fs:   append(l.fs, fields...),
	}
}

func (l *simple) fields(f ...field.Field) []field.Field {
	if len(l.fs) != 0 {
		return append(f, l.fs...)
	}
	return f
}

func (l *simple) Debug(msg string, fields ...field.Field) {
	l.base.Debug(msg, l.fields(fields...)...)
}

func (l *simple) Info(msg string, fields ...field.Field) {
	l.base.Info(msg, l.fields(fields...)...)
}

func (l *simple) Warn(msg string, fields ...field.Field) {
	l.base.Warn(msg, l.fields(fields...)...)
}

func (l *simple) Error(msg string, fields ...field.Field) {
	l.base.Error(msg, l.fields(fields...)...)
}

func (l *simple) Sync() {
	_ = l.base.Sync()
}

// NewDefaultLogger builds a development console logger at debug level.
func NewDefaultLogger() Logger {
	base, _ := zap.NewDevelopment()
	return &simple{base: base.WithOptions(zap.AddCallerSkip(1))}
}

func NewNopLogger() Logger {
	return &simple{base: zap.NewNop()}
}

// IntoContext stashes lg in ctx under the logger sign.
func IntoContext(ctx context.Context, lg Logger) context.Context {
	return context.WithValue(ctx, sign.LOGGER, lg)
}

// FromContext returns the stashed logger, or the default one. A trace id
// stored with WithTraceID is attached as a field.
func FromContext(ctx context.Context) Logger {
	lg, ok := ctx.Value(sign.LOGGER).(Logger)
	if !ok {
		lg = NewDefaultLogger()
	}
	if id, ok := ctx.Value(sign.TRACE_ID).(string); ok && id != "" {
		lg = lg.With(field.String(sign.TRACE_ID.String(), id))
	}
	return lg
}

func WithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sign.TRACE_ID, id)
}
