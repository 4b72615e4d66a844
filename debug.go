package ryu

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// debugLogger holds the optional trace hook described in SPEC_FULL.md §8.
// It is an atomic.Value rather than a plain field so SetDebugLogger can be
// called concurrently with in-flight conversions without a data race; the
// core algorithm never blocks on it.
var debugLogger atomic.Value // holds *zap.SugaredLogger

// SetDebugLogger installs a logger that receives one Debugw call per
// floatToDecimal invocation, carrying the decimal result and the
// trailing-zero flags as they stand after digit removal.
// Passing nil (the default) disables tracing; the hot path never touches
// the logger when it is nil.
func SetDebugLogger(l *zap.SugaredLogger) {
	debugLogger.Store(&debugLoggerBox{l})
}

// debugLoggerBox lets us store a possibly-nil *zap.SugaredLogger in an
// atomic.Value, which requires every stored value to share a concrete type.
type debugLoggerBox struct {
	l *zap.SugaredLogger
}

func traceDecimal(mant, exp uint64, d decimal, vmTrailingZeros, vrTrailingZeros bool) {
	v, _ := debugLogger.Load().(*debugLoggerBox)
	if v == nil || v.l == nil {
		return
	}
	v.l.Debugw("ryu.floatToDecimal",
		"ieeeMantissa", mant,
		"ieeeExponent", exp,
		"mantissa", d.mantissa,
		"exponent", d.exponent,
		"vmTrailingZeros", vmTrailingZeros,
		"vrTrailingZeros", vrTrailingZeros,
	)
}
