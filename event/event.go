// Package event provides the fan-out broadcaster the rest of the module is
// built on.
//
// An Event holds two insertion-ordered listener sets: plain listeners, which
// take no arguments, and data listeners, which receive the fired payload.
// Firing notifies the plain listeners first, then the data listeners, each
// exactly once, synchronously on the calling goroutine.
//
// Listeners run with no lock held, so a listener may add or remove listeners
// or fire other events, including the one currently notifying it. Nothing
// here guards against cycles: a listener that fires the event it listens to
// recurses until the stack runs out. Compositions that can form cycles must
// carry their own reentrancy guard.
//
// A listener that panics aborts the remainder of the fire pass; the panic
// propagates to whoever called Fire.
package event

import (
	"errors"
	"sync"
)

var ErrNilListener = errors.New("event: nil listener")

// Event broadcasts to its listeners. The zero value is ready to use.
type Event[T any] struct {
	mu            sync.Mutex
	listeners     listenerSet[*Listener]
	dataListeners listenerSet[*DataListener[T]]
	observer      *Observer[T]
}

func New[T any]() *Event[T] {
	return &Event[T]{}
}

// Fire notifies all listeners with the zero value of T as payload.
func (e *Event[T]) Fire() {
	var zero T
	e.FireWith(zero)
}

func (e *Event[T]) FireWith(data T) {
	e.mu.Lock()
	listeners := e.listeners.snapshot()
	dataListeners := e.dataListeners.snapshot()
	e.mu.Unlock()

	for _, l := range listeners {
		l.fn()
	}
	for _, l := range dataListeners {
		l.fn(data)
	}
}

// AddListener registers l. Adding a listener that is already registered does
// nothing.
func (e *Event[T]) AddListener(l *Listener) error {
	if l == nil || l.fn == nil {
		return ErrNilListener
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners.add(l)
	return nil
}

func (e *Event[T]) RemoveListener(l *Listener) {
	if l == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners.remove(l)
}

// AddDataListener registers l. Adding a listener that is already registered
// does nothing.
func (e *Event[T]) AddDataListener(l *DataListener[T]) error {
	if l == nil || l.fn == nil {
		return ErrNilListener
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.dataListeners.add(l)
	return nil
}

func (e *Event[T]) RemoveDataListener(l *DataListener[T]) {
	if l == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.dataListeners.remove(l)
}

// Observer returns the read-only view of e. The same observer is returned on
// every call.
func (e *Event[T]) Observer() *Observer[T] {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.observer == nil {
		e.observer = &Observer[T]{event: e}
	}
	return e.observer
}

// ListenerCount reports the number of registered plain and data listeners.
func (e *Event[T]) ListenerCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.listeners.len() + e.dataListeners.len()
}
