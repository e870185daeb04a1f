package yices

import "go.uber.org/zap"

// logger is a no-op by default; the binding stays silent unless the host
// application opts in.
var logger = zap.NewNop()

// SetLogger routes the binding's lifecycle and fault diagnostics to l.
// Passing nil restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
