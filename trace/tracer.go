package trace

import (
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"dataobject/types"
)

// Tracer logs evaluation steps for debugging
type Tracer struct {
	enabled bool
	filters []string
	log     *zap.Logger
}

var (
	mu           sync.RWMutex
	globalTracer *Tracer
)

// Init initializes the global tracer. A nil logger falls back to the
// global zap logger.
func Init(enabled bool, filters []string, logger *zap.Logger) {
	if logger == nil {
		logger = zap.L()
	}

	mu.Lock()
	defer mu.Unlock()
	globalTracer = &Tracer{
		enabled: enabled,
		filters: filters,
		log:     logger.Named("trace"),
	}
}

// IsEnabled returns whether tracing is enabled
func IsEnabled() bool {
	t := current()
	return t != nil && t.enabled
}

func current() *Tracer {
	mu.RLock()
	defer mu.RUnlock()
	return globalTracer
}

// matchesFilter checks if an operation name matches any of the filter patterns
func (t *Tracer) matchesFilter(name string) bool {
	if len(t.filters) == 0 {
		return true // No filters = trace everything
	}

	for _, pattern := range t.filters {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}

// Op logs a binary operation and its result. Unary operations pass
// types.Nothing as right.
func (t *Tracer) Op(op string, left, right, result types.Value) {
	if !t.enabled || !t.matchesFilter(op) {
		return
	}

	t.log.Debug(op,
		zap.Stringer("left", left),
		zap.String("left_type", left.TypeName()),
		zap.Stringer("right", right),
		zap.String("right_type", right.TypeName()),
		zap.Stringer("result", result),
		zap.String("result_type", result.TypeName()),
	)
}

// Assign logs a property write
func (t *Tracer) Assign(name string, value types.Value) {
	if !t.enabled || !t.matchesFilter("assign") {
		return
	}

	t.log.Debug("assign",
		zap.String("property", name),
		zap.Stringer("value", value),
		zap.String("type", value.TypeName()),
	)
}

// Failure logs an operation that returned an error
func (t *Tracer) Failure(op string, err error) {
	if !t.enabled || !t.matchesFilter(op) {
		return
	}

	t.log.Debug(op,
		zap.Stringer("code", types.CodeOf(err)),
		zap.Error(err),
	)
}

// Global convenience functions

// Op logs an operation using the global tracer
func Op(op string, left, right, result types.Value) {
	if t := current(); t != nil {
		t.Op(op, left, right, result)
	}
}

// Assign logs a property write using the global tracer
func Assign(name string, value types.Value) {
	if t := current(); t != nil {
		t.Assign(name, value)
	}
}

// Failure logs a failed operation using the global tracer
func Failure(op string, err error) {
	if t := current(); t != nil {
		t.Failure(op, err)
	}
}
