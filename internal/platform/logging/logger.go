package logging

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level = zapcore.Level

const (
	LevelDebug = zapcore.DebugLevel
	LevelInfo  = zapcore.InfoLevel
	LevelWarn  = zapcore.WarnLevel
	LevelError = zapcore.ErrorLevel
)

// Logger is a thin zap wrapper with key/value call sites and optional trace
// correlation on the *Context variants.
type Logger struct {
	zap *zap.Logger
}

func NewJSON(level Level) *Logger {
	encoderCfg := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(os.Stdout),
		level,
	)

	return FromZap(zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)))
}

func NewNop() *Logger {
	return FromZap(zap.NewNop())
}

func FromZap(z *zap.Logger) *Logger {
	if z == nil {
		z = zap.NewNop()
	}
	return &Logger{zap: z}
}

func (l *Logger) Sync() error {
	if l == nil || l.zap == nil {
		return nil
	}
	return l.zap.Sync()
}

func (l *Logger) With(args ...any) *Logger {
	if l == nil {
		return NewNop()
	}
	return &Logger{zap: l.zap.With(zapFields(args)...)}
}

func (l *Logger) Debug(msg string, args ...any) {
	l.log(zap.DebugLevel, msg, zapFields(args))
}

func (l *Logger) Info(msg string, args ...any) {
	l.log(zap.InfoLevel, msg, zapFields(args))
}

func (l *Logger) Warn(msg string, args ...any) {
	l.log(zap.WarnLevel, msg, zapFields(args))
}

func (l *Logger) Error(msg string, args ...any) {
	l.log(zap.ErrorLevel, msg, zapFields(args))
}

func (l *Logger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.log(zap.DebugLevel, msg, append(zapFields(args), traceFields(ctx)...))
}

func (l *Logger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.log(zap.InfoLevel, msg, append(zapFields(args), traceFields(ctx)...))
}

func (l *Logger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.log(zap.WarnLevel, msg, append(zapFields(args), traceFields(ctx)...))
}

func (l *Logger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.log(zap.ErrorLevel, msg, append(zapFields(args), traceFields(ctx)...))
}

func (l *Logger) log(level zapcore.Level, msg string, fields []zap.Field) {
	if l == nil || l.zap == nil {
		return
	}
	if ce := l.zap.Check(level, msg); ce != nil {
		ce.Write(fields...)
	}
}

func traceFields(ctx context.Context) []zap.Field {
	if ctx == nil {
		return nil
	}
	spanCtx := trace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() {
		return nil
	}
	return []zap.Field{
		zap.String("trace_id", spanCtx.TraceID().String()),
		zap.String("span_id", spanCtx.SpanID().String()),
	}
}

func zapFields(args []any) []zap.Field {
	if len(args) == 0 {
		return nil
	}

	out := make([]zap.Field, 0, (len(args)+1)/2)
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok || key == "" {
			key = "arg"
		}

		if i+1 >= len(args) {
			out = append(out, zap.Any(key, nil))
			break
		}

		value := args[i+1]
		if err, ok := value.(error); ok {
			out = append(out, zap.NamedError(key, err))
			continue
		}
		out = append(out, zap.Any(key, value))
	}

	return out
}
