package brushmask

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false, so disabled call
// sites never build their attributes.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var silent = slog.New(nopHandler{})

// active is read on every applicator creation and parallel run, possibly
// from many goroutines at once.
var active atomic.Pointer[slog.Logger]

func init() { active.Store(silent) }

// SetLogger routes brushmask diagnostics to l. Passing nil restores the
// default, which discards everything. It may be called at any time,
// including while other goroutines are rasterizing dabs.
//
// Records by level:
//   - [slog.LevelDebug]: every applicator created, and per ProcessParallel
//     call the band split plus the hit, miss and eviction counts of the
//     shared soft transfer table cache
//   - [slog.LevelInfo]: the implementation detected for the host, once
//   - [slog.LevelWarn]: a preset whose generator id was unknown and was
//     decoded as "default"
//
// A brush loader that only wants to hear about bad presets:
//
//	brushmask.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
//	    &slog.HandlerOptions{Level: slog.LevelWarn})))
//	g, err := brushmask.UnmarshalGenerator(preset)
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	active.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	return active.Load()
}
