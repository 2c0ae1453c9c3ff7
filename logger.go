package xshape

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var loggerPtr atomic.Pointer[zap.Logger]

func init() {
	loggerPtr.Store(zap.NewNop())
}

// SetLogger sets the logger used by xshape. By default, nothing is
// logged. Passing nil restores the default.
//
// Only the construction of shapes that violate their documented
// invariants, such as an annulus whose inner radius exceeds its outer
// radius, is logged, at warn level. Queries and transforms never log.
//
// SetLogger is safe for concurrent use.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger currently used by xshape.
func Logger() *zap.Logger {
	return loggerPtr.Load()
}
