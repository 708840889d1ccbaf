package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Session metric keys
const (
	KeyTicks         = "ticks"
	KeyTurnsAccepted = "turns.accepted"
	KeyTurnsRejected = "turns.rejected"
	KeyFoodEaten     = "food.eaten"
	KeySpeedUps      = "speed.ups"
	KeySessionID     = "session.id"
	KeyEndReason     = "session.end"
)

// Registry is the session metrics facade
// Callers cache pointers once; hot paths write directly to atomics
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Strings.Count()
}

// String renders every metric as sorted key=value pairs, strings first
func (r *Registry) String() string {
	var b strings.Builder
	write := func(k, v string) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%s", k, v)
	}
	r.Strings.Range(func(k string, s *AtomicString) { write(k, s.Load()) })
	r.Ints.Range(func(k string, n *atomic.Int64) { write(k, fmt.Sprint(n.Load())) })
	return b.String()
}
