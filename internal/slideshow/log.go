package slideshow

import (
	"io"
	"log/slog"
)

// NewLogger returns a text logger writing to w, or nil when w is nil.
func NewLogger(w io.Writer) *slog.Logger {
	if w == nil {
		return nil
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

// LogListener logs every transition to logger. A nil logger yields a nil
// listener, which OnChange ignores.
func LogListener(logger *slog.Logger) Listener {
	if logger == nil {
		return nil
	}
	return func(ch Change) {
		logger.Info("slide_change", "from", ch.From, "to", ch.To)
	}
}
