package event

import mapset "github.com/deckarep/golang-set/v2"

// Listener is a notification without payload. Listeners are compared by
// identity: keep the pointer around to remove it later.
type Listener struct {
	fn func()
}

func NewListener(fn func()) *Listener {
	return &Listener{fn: fn}
}

// DataListener is a notification carrying the fired payload.
type DataListener[T any] struct {
	fn func(T)
}

func NewDataListener[T any](fn func(T)) *DataListener[T] {
	return &DataListener[T]{fn: fn}
}

// listenerSet is an insertion-ordered set. The order slice is copy-on-write:
// it is never modified in place, so a snapshot is the slice itself and stays
// valid after the set changes.
type listenerSet[L comparable] struct {
	members mapset.Set[L]
	order   []L
}

func (s *listenerSet[L]) add(l L) bool {
	if s.members == nil {
		s.members = mapset.NewThreadUnsafeSet[L]()
	}
	if !s.members.Add(l) {
		return false
	}
	next := make([]L, len(s.order), len(s.order)+1)
	copy(next, s.order)
	s.order = append(next, l)
	return true
}

func (s *listenerSet[L]) remove(l L) bool {
	if s.members == nil || !s.members.Contains(l) {
		return false
	}
	s.members.Remove(l)
	next := make([]L, 0, len(s.order)-1)
	for _, m := range s.order {
		if m != l {
			next = append(next, m)
		}
	}
	s.order = next
	return true
}

func (s *listenerSet[L]) snapshot() []L {
	return s.order
}

func (s *listenerSet[L]) len() int {
	return len(s.order)
}
