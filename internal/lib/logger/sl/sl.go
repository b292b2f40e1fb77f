package sl

import "log/slog"

// Err returns a structured slog attribute carrying an error's message,
// the shape cmd/wordsquares/main.go and internal/progress expect when
// reporting a failure that doesn't warrant its own fields.
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
