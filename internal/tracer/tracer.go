// Package tracer adapts a zap.Logger to the fd.Observer interface, so the
// solving core can be watched from the CLI without pkg/fd importing a
// logging library itself.
package tracer

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Tracer implements fd.Observer by translating each event into a
// structured zap log line at debug level. Field values are passed through
// zap.Any, since an Observer event's fields are domain-shaped (VarIDs,
// domain sizes, error strings) rather than known ahead of time.
type Tracer struct {
	log *zap.Logger
}

// New wraps log. A nil log is accepted: Event on the resulting Tracer
// then does nothing.
func New(log *zap.Logger) *Tracer {
	return &Tracer{log: log}
}

// Event implements fd.Observer.
func (t *Tracer) Event(name string, fields map[string]any) {
	if t == nil || t.log == nil {
		return
	}
	zapFields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}
	t.log.Debug(name, zapFields...)
}

// NewLogger builds a production zap.Logger, switching to debug level when
// verbose is set. Grounded on the teacher corpus's CLI bootstrap
// convention of building a zap.NewProductionConfig and raising its level
// under a --verbose flag.
func NewLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}
