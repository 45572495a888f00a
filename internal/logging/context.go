package logging

import (
	"context"
)

type logDataKey struct{}

// LogDataContextKey is the context key under which a request's LogData is
// stored. Exposed so transport adapters can attach it to foreign context
// wrappers.
var LogDataContextKey = logDataKey{}

// WithLogData returns a context carrying the given LogData.
func WithLogData(ctx context.Context, logData *LogData) context.Context {
	return context.WithValue(ctx, LogDataContextKey, logData)
}

// GetLogData returns the LogData carried by the context, or nil when the
// request was not wrapped.
func GetLogData(ctx context.Context) *LogData {
	logData, _ := ctx.Value(LogDataContextKey).(*LogData)
	return logData
}
