package state

import (
	"errors"
	"slices"
	"sync"

	"github.com/delaneyj/observe/event"
)

var ErrAggregateReadOnly = errors.New("state: aggregate state is derived from its members and cannot be set")

type Conjunction uint8

const (
	And Conjunction = iota
	Or
)

func (c Conjunction) String() string {
	switch c {
	case And:
		return "AND"
	case Or:
		return "OR"
	default:
		return "UNKNOWN"
	}
}

// AggregateState is a read-only flag combining its members with a
// conjunction. With no members an AND aggregate is active and an OR aggregate
// is not.
type AggregateState struct {
	mu          sync.Mutex
	conjunction Conjunction
	members     []*member
	observer    *Observer
}

type member struct {
	observer *Observer
	listener *event.DataListener[bool]
}

func NewAggregate(conjunction Conjunction, members ...*Observer) *AggregateState {
	a := &AggregateState{conjunction: conjunction}
	for _, m := range members {
		a.AddState(m)
	}
	return a
}

func NewAnd(members ...*Observer) *AggregateState {
	return NewAggregate(And, members...)
}

func NewOr(members ...*Observer) *AggregateState {
	return NewAggregate(Or, members...)
}

func (a *AggregateState) Conjunction() Conjunction {
	return a.conjunction
}

// IsActive evaluates the conjunction over the current member values.
func (a *AggregateState) IsActive() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.evaluate(nil, false)
}

// SetActive always fails: the value of an aggregate comes from its members.
func (a *AggregateState) SetActive(bool) error {
	return ErrAggregateReadOnly
}

func (a *AggregateState) Observer() *Observer {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.observer == nil {
		a.observer = newObserver(a.IsActive)
	}
	return a.observer
}

func (a *AggregateState) ReversedObserver() *Observer {
	return a.Observer().Reversed()
}

// States returns the members in the order they were added.
func (a *AggregateState) States() []*Observer {
	a.mu.Lock()
	defer a.mu.Unlock()
	states := make([]*Observer, len(a.members))
	for i, m := range a.members {
		states[i] = m.observer
	}
	return states
}

// AddState adds o as a member. Adding a member twice, or a nil observer, does
// nothing.
func (a *AggregateState) AddState(o *Observer) {
	if o == nil {
		return
	}

	a.mu.Lock()
	if a.indexOf(o) >= 0 {
		a.mu.Unlock()
		return
	}
	previous := a.evaluate(nil, false)
	m := &member{observer: o}
	m.listener = event.NewDataListener(func(active bool) {
		a.memberChanged(o, active)
	})
	if err := o.AddDataListener(m.listener); err != nil {
		a.mu.Unlock()
		panic(err)
	}
	a.members = append(a.members, m)
	current := a.evaluate(nil, false)
	obs := a.observer
	a.mu.Unlock()

	if obs != nil && previous != current {
		obs.fire(current)
	}
}

// RemoveState removes o from the members, detaching from it first.
func (a *AggregateState) RemoveState(o *Observer) {
	if o == nil {
		return
	}

	a.mu.Lock()
	i := a.indexOf(o)
	if i < 0 {
		a.mu.Unlock()
		return
	}
	o.RemoveDataListener(a.members[i].listener)
	previous := a.evaluate(nil, false)
	a.members = slices.Delete(slices.Clone(a.members), i, i+1)
	current := a.evaluate(nil, false)
	obs := a.observer
	a.mu.Unlock()

	if obs != nil && previous != current {
		obs.fire(current)
	}
}

// memberChanged runs on every transition of a member. The previous
// aggregate value is the conjunction with the member's prior value, !active,
// substituted, so listeners see the transition this member caused.
func (a *AggregateState) memberChanged(changed *Observer, active bool) {
	a.mu.Lock()
	if a.indexOf(changed) < 0 {
		a.mu.Unlock()
		return
	}
	previous := a.evaluate(changed, !active)
	current := a.evaluate(changed, active)
	obs := a.observer
	a.mu.Unlock()

	if obs != nil && previous != current {
		obs.fire(current)
	}
}

// evaluate applies the conjunction over the members, using substitute as the
// value of the member override if it is not nil. Must be called with a.mu
// held.
func (a *AggregateState) evaluate(override *Observer, substitute bool) bool {
	valueOf := func(m *member) bool {
		if m.observer == override {
			return substitute
		}
		return m.observer.IsActive()
	}

	switch a.conjunction {
	case Or:
		for _, m := range a.members {
			if valueOf(m) {
				return true
			}
		}
		return false
	default:
		for _, m := range a.members {
			if !valueOf(m) {
				return false
			}
		}
		return true
	}
}

func (a *AggregateState) indexOf(o *Observer) int {
	return slices.IndexFunc(a.members, func(m *member) bool {
		return m.observer == o
	})
}
