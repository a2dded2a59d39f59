// Package state provides observable boolean flags and their composition.
//
// A State is a flag that notifies its Observer on every transition. Every
// Observer has a reversed view reporting the negation. AggregateState derives
// a flag from other observers through AND or OR, and Group keeps at most one
// of its members active at a time.
//
// Change listeners run on the goroutine that caused the change, with no lock
// held. A listener may change the state it observes; nothing prevents such a
// listener from looping forever.
package state

import (
	"sync"

	"github.com/delaneyj/observe/event"
)

type State struct {
	mu       sync.Mutex
	active   bool
	observer *Observer
}

func New(active bool) *State {
	return &State{active: active}
}

func (s *State) IsActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// SetActive changes the flag, notifying the observer and its reversed view if
// the value actually changed.
func (s *State) SetActive(active bool) {
	s.mu.Lock()
	if s.active == active {
		s.mu.Unlock()
		return
	}
	s.active = active
	o := s.observer
	s.mu.Unlock()

	if o != nil {
		o.fire(active)
	}
}

// Toggle flips the flag and returns the new value.
func (s *State) Toggle() bool {
	s.mu.Lock()
	active := !s.active
	s.active = active
	o := s.observer
	s.mu.Unlock()

	if o != nil {
		o.fire(active)
	}
	return active
}

// Observer returns the read-only view of s, creating it on first use.
func (s *State) Observer() *Observer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.observer == nil {
		s.observer = newObserver(s.IsActive)
	}
	return s.observer
}

// ReversedObserver is shorthand for s.Observer().Reversed().
func (s *State) ReversedObserver() *Observer {
	return s.Observer().Reversed()
}

func (s *State) String() string {
	if s.IsActive() {
		return "active"
	}
	return "inactive"
}

// Observer is the read-only view of a flag. The embedded event observer
// delivers the new value of the flag on every transition.
type Observer struct {
	*event.Observer[bool]

	isActive func() bool
	changed  *event.Event[bool]

	mu       sync.Mutex
	reversed *Observer
	source   *Observer
}

func newObserver(isActive func() bool) *Observer {
	changed := event.New[bool]()
	return &Observer{
		Observer: changed.Observer(),
		isActive: isActive,
		changed:  changed,
	}
}

func (o *Observer) IsActive() bool {
	return o.isActive()
}

// Reversed returns an observer whose IsActive is always the negation of o's.
// It is created once and cached; reversing a reversed observer gives back the
// original.
func (o *Observer) Reversed() *Observer {
	if o.source != nil {
		return o.source
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.reversed == nil {
		r := newObserver(func() bool { return !o.isActive() })
		r.source = o
		o.reversed = r
	}
	return o.reversed
}

// Changed exposes the change event observer directly, for adapters that need
// the event type rather than the flag.
func (o *Observer) Changed() *event.Observer[bool] {
	return o.Observer
}

// fire notifies o, then its reversed view, that the flag is now active.
func (o *Observer) fire(active bool) {
	o.changed.FireWith(active)

	o.mu.Lock()
	r := o.reversed
	o.mu.Unlock()
	if r != nil {
		r.changed.FireWith(!active)
	}
}
