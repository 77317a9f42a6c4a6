// Package subscription keeps UI state in step with the catalog service.
//
// A subscription owns one FetchState. Changing its parameters starts a new
// generation and returns a request; the request runs anywhere (typically as
// an async command) and its result is handed back to Apply. Apply accepts a
// result only if it belongs to the newest generation and the subscription is
// still open, so the last request wins no matter the order responses arrive.
package subscription

import (
	"github.com/alexanderramin/folio/internal/catalog"
)

var (
	_ ProjectLister  = catalog.Client(nil)
	_ ProjectGetter  = catalog.Client(nil)
	_ CategoryLister = catalog.Client(nil)
)

// Phase is the lifecycle position of a FetchState.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseReady
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FetchState is exactly one of idle, loading, ready (with Value) or failed
// (with Message). Value is the zero value outside PhaseReady.
type FetchState[T any] struct {
	Phase   Phase
	Value   T
	Message string
}

func (s FetchState[T]) Loading() bool { return s.Phase == PhaseLoading }
func (s FetchState[T]) Ready() bool   { return s.Phase == PhaseReady }
func (s FetchState[T]) Failed() bool  { return s.Phase == PhaseFailed }

func loading[T any]() FetchState[T] {
	return FetchState[T]{Phase: PhaseLoading}
}

func ready[T any](v T) FetchState[T] {
	return FetchState[T]{Phase: PhaseReady, Value: v}
}

func failed[T any](err error) FetchState[T] {
	return FetchState[T]{Phase: PhaseFailed, Message: catalog.Message(err)}
}

// Ticket identifies the generation a request was issued for.
type Ticket struct {
	owner      *guard
	generation uint64
}

// Generation returns the ticket's generation number, starting at 1.
func (t Ticket) Generation() uint64 { return t.generation }

// guard is the staleness guard shared by all subscription kinds. Callers
// hold the owning subscription's mutex.
type guard struct {
	generation uint64
	settled    bool
	closed     bool
}

// next invalidates every outstanding ticket and returns a fresh one.
func (g *guard) next() Ticket {
	g.generation++
	g.settled = false
	return Ticket{owner: g, generation: g.generation}
}

// invalidate makes outstanding tickets stale without issuing a new one.
func (g *guard) invalidate() {
	g.generation++
	g.settled = true
}

// accept reports whether a result for t may be applied, and if so marks the
// generation as settled so it is applied at most once.
func (g *guard) accept(t Ticket) bool {
	if g.closed || g.settled || t.owner != g || t.generation != g.generation {
		return false
	}
	g.settled = true
	return true
}

// pending reports whether the current generation still awaits a result.
func (g *guard) pending() bool {
	return !g.closed && !g.settled && g.generation > 0
}
