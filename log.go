package bjpeg

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

// ctxKey namespaces values stored in a context.Context by this package.
type ctxKey int

const jobIDKey ctxKey = 0

// NewLogger builds the structured logger every decode job shares: JSON
// records to w if json is true, human-readable text otherwise, filtered to
// level and above. A rotating *lumberjack.Logger is the usual w for
// long-running batch jobs; tests and one-shot CLI runs pass os.Stderr
// directly.
func NewLogger(w io.Writer, json bool, level slog.Leveler) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if json {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(&ctxHandler{Handler: h})
}

// NewRotatingLogger is NewLogger backed by a lumberjack.Logger, for the CLI's
// --log-file mode: logs rotate by size rather than growing a single file
// without bound across a long batch.
func NewRotatingLogger(path string, maxSizeMB, maxBackups int, json bool, level slog.Leveler) *slog.Logger {
	rot := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		Compress:   true,
	}
	return NewLogger(rot, json, level)
}

// WithJobID stamps ctx with a fresh correlation ID, logged as "job_id" on
// every record emitted through that context for the rest of a batch item's
// processing.
func WithJobID(ctx context.Context) context.Context {
	return context.WithValue(ctx, jobIDKey, uuid.NewString())
}

// ctxHandler appends attributes recorded via WithJobID (and future
// context-scoped fields) to every record, the way the rest of the
// retrieval pack's CLIs carry a request ID through slog without threading
// it explicitly into every log call.
type ctxHandler struct {
	slog.Handler
}

func (h *ctxHandler) Handle(ctx context.Context, r slog.Record) error {
	if id, ok := ctx.Value(jobIDKey).(string); ok {
		r.AddAttrs(slog.String("job_id", id))
	}
	return h.Handler.Handle(ctx, r)
}

func (h *ctxHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ctxHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *ctxHandler) WithGroup(name string) slog.Handler {
	return &ctxHandler{Handler: h.Handler.WithGroup(name)}
}
