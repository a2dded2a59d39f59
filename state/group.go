package state

import (
	"sync"
	"weak"

	"github.com/delaneyj/observe/event"
)

// Group keeps at most one of its member states active: activating a member
// deactivates all the others.
//
// Membership does not keep a state alive. A member that is garbage collected
// leaves the group; its slot is pruned the next time the group enforces
// exclusion or lists its members.
type Group struct {
	mu      sync.Mutex
	members []groupMember
}

type groupMember struct {
	state    weak.Pointer[State]
	listener *event.DataListener[bool]
}

func NewGroup(states ...*State) *Group {
	g := &Group{}
	for _, s := range states {
		g.AddState(s)
	}
	return g
}

// AddState adds s to the group. If s is already active, every other member is
// deactivated. Adding a state twice does nothing.
func (g *Group) AddState(s *State) {
	if s == nil {
		return
	}
	ptr := weak.Make(s)

	g.mu.Lock()
	for _, m := range g.members {
		if m.state == ptr {
			g.mu.Unlock()
			return
		}
	}
	// The listener lives inside s and is also held by the group, so it must
	// only reach s through the weak pointer.
	listener := event.NewDataListener(func(active bool) {
		if active {
			g.activated(ptr)
		}
	})
	g.members = append(g.members, groupMember{state: ptr, listener: listener})
	g.mu.Unlock()

	if err := s.Observer().AddDataListener(listener); err != nil {
		panic(err)
	}
	if s.IsActive() {
		g.activated(ptr)
	}
}

// RemoveState detaches s from the group without changing its value.
func (g *Group) RemoveState(s *State) {
	if s == nil {
		return
	}
	ptr := weak.Make(s)

	g.mu.Lock()
	var listener *event.DataListener[bool]
	members := make([]groupMember, 0, len(g.members))
	for _, m := range g.members {
		if m.state == ptr {
			listener = m.listener
			continue
		}
		members = append(members, m)
	}
	g.members = members
	g.mu.Unlock()

	if listener != nil {
		s.Observer().RemoveDataListener(listener)
	}
}

// States returns the live members in the order they were added.
func (g *Group) States() []*State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.prune(nil)
}

// Active returns the active member, or nil when none is.
func (g *Group) Active() *State {
	for _, s := range g.States() {
		if s.IsActive() {
			return s
		}
	}
	return nil
}

// activated deactivates every live member other than the one behind ptr.
func (g *Group) activated(ptr weak.Pointer[State]) {
	g.mu.Lock()
	others := g.prune(func(m groupMember) bool {
		return m.state != ptr
	})
	g.mu.Unlock()

	for _, s := range others {
		s.SetActive(false)
	}
}

// prune drops members whose state has been collected and returns the live
// states accepted by keep, or all of them when keep is nil. Must be called
// with g.mu held.
func (g *Group) prune(keep func(groupMember) bool) []*State {
	live := make([]groupMember, 0, len(g.members))
	var states []*State
	for _, m := range g.members {
		s := m.state.Value()
		if s == nil {
			continue
		}
		live = append(live, m)
		if keep == nil || keep(m) {
			states = append(states, s)
		}
	}
	g.members = live
	return states
}
