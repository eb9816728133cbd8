package summarize

import "golang.org/x/exp/slog"

// bestEffort runs an operation whose failure must degrade to a declared
// fallback instead of aborting the request. The error is logged and goes no
// further.
func bestEffort[T any](logger *slog.Logger, operation string, fallback T, fn func() (T, error)) T {
	out, err := fn()
	if err != nil {
		logger.Error("best-effort operation failed, using fallback", err, slog.String("operation", operation))
		return fallback
	}
	return out
}
