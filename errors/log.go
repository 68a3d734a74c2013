package errors

import (
	"log/slog"
	"sort"
)

// LogValue implements slog.LogValuer so that an Error logged as an attribute
// renders as a group of its structured fields.
//
// Example:
//
//	logger.Error("webhook failed", "error", err)
func (e *Error) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("kind", string(e.kind)),
		slog.String("family", e.family.String()),
		slog.String("classification", string(e.classification)),
		slog.String("message", e.Message()),
	}

	if len(e.context) > 0 {
		keys := make([]string, 0, len(e.context))
		for k := range e.context {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		ctx := make([]any, 0, len(keys))
		for _, k := range keys {
			ctx = append(ctx, slog.Any(k, e.context[k]))
		}
		attrs = append(attrs, slog.Group("context", ctx...))
	}

	return slog.GroupValue(attrs...)
}
