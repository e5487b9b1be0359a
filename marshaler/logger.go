package marshaler

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	logger atomic.Pointer[zap.Logger]
	nop    = zap.NewNop()
)

// Logger returns the marshaler package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return nop
}

// SetLogger configures the marshaler package's logger. A nil logger
// restores the no-op default.
// Registries and marshalers created afterwards use it unless given
// their own logger. It is safe to call concurrently with New.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}
