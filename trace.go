//go:build !notrace

package c14n

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"runtime"
	"time"
)

type traceLoggerKey struct{}
type spanIDKey struct{}

// the null logger is a logger that does nothing
var nullLogger = slog.New(slog.DiscardHandler)

// TracingEnabled reports whether span/event tracing does any work. It
// starts out true in a build without the notrace tag; SetTracingEnabled
// can turn it off at runtime, making the tracing calls no-ops.
var TracingEnabled = true

// Span is the upgrade path for future OpenTelemetry compatibility: today
// it just marks when a traced operation finished.
type Span interface {
	End()
}

// SpanInfo holds information about a tracing span.
type SpanInfo struct {
	ID       string
	ParentID string
	Name     string
	Start    time.Time
	Tags     map[string]string
}

type activeSpan struct {
	ctx  context.Context
	info *SpanInfo
}

func (s *activeSpan) End() {
	if !TracingEnabled {
		return
	}
	getTraceLogFromContext(s.ctx).Debug("span end",
		slog.String("span", s.info.Name),
		slog.String("span_id", s.info.ID),
		slog.Duration("elapsed", time.Since(s.info.Start)))
}

func generateSpanID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return ""
	}
	return hex.EncodeToString(b[:])
}

func WithTraceLogger(ctx context.Context, tlog *slog.Logger) context.Context {
	// If the context already has a trace logger, return the context as is
	if _, ok := ctx.Value(traceLoggerKey{}).(*slog.Logger); ok {
		return ctx
	}

	// Otherwise, create a new context with the trace logger
	return context.WithValue(ctx, traceLoggerKey{}, tlog)
}

// WithSpan generates a new span ID for a span called name and attaches it
// as the current span id in ctx, returning the derived context and the
// SpanInfo describing it.
func WithSpan(ctx context.Context, name string) (context.Context, *SpanInfo) {
	parent, _ := ctx.Value(spanIDKey{}).(string)
	info := &SpanInfo{
		ID:       generateSpanID(),
		ParentID: parent,
		Name:     name,
		Start:    time.Now(),
	}
	return context.WithValue(ctx, spanIDKey{}, info.ID), info
}

// StartSpan begins a span named spanName, logging its start through the
// context's trace logger, and returns a Span whose End logs its duration.
func StartSpan(ctx context.Context, spanName string) (context.Context, Span) {
	ctx, info := WithSpan(ctx, spanName)
	if TracingEnabled {
		getTraceLogFromContext(ctx).Debug("span start",
			slog.String("span", info.Name),
			slog.String("span_id", info.ID))
	}
	return ctx, &activeSpan{ctx: ctx, info: info}
}

// TraceEvent logs a structured event through ctx's trace logger.
func TraceEvent(ctx context.Context, msg string, attrs ...slog.Attr) {
	if !TracingEnabled {
		return
	}
	getTraceLogFromContext(ctx).LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}

// TraceError logs err alongside msg through ctx's trace logger.
func TraceError(ctx context.Context, err error, msg string, attrs ...slog.Attr) {
	if !TracingEnabled {
		return
	}
	attrs = append(attrs, slog.String("error", err.Error()))
	getTraceLogFromContext(ctx).LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

// SetTracingEnabled allows runtime control over whether span/event
// tracing does any work.
func SetTracingEnabled(enabled bool) {
	TracingEnabled = enabled
}

func getTraceLogFromContext(ctx context.Context) *slog.Logger {
	// If the context has a trace logger, use that
	if tlog, ok := ctx.Value(traceLoggerKey{}).(*slog.Logger); ok {
		// Retrieve the function name of the caller for tracing
		pc, _, _, ok := runtime.Caller(2)
		if ok {
			fn := runtime.FuncForPC(pc)
			if fn != nil {
				tlog = tlog.With(slog.String("fn", fn.Name()))
			}
		}

		return tlog
	}

	// Otherwise, return a null logger
	return nullLogger
}
