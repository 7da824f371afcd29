package logging

import "context"

type logDataContextKey struct{}

// NewContext returns a context carrying the given LogData.
func NewContext(ctx context.Context, logData *LogData) context.Context {
	return context.WithValue(ctx, logDataContextKey{}, logData)
}

// GetLogData returns the LogData carried by the context, or nil when the
// request was not routed through the logging middleware.
func GetLogData(ctx context.Context) *LogData {
	logData, _ := ctx.Value(logDataContextKey{}).(*LogData)
	return logData
}
