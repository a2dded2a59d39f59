package scenario

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/delaneyj/observe/event"
	"github.com/delaneyj/observe/state"
	"github.com/delaneyj/observe/value"
)

// Graph is a built scenario. Step drives one iteration; every notification
// reaching a terminal listener is counted and folded into the checksum, so
// two runs of the same scenario can be compared for equivalence.
type Graph struct {
	step          func(i int)
	digest        *xxhash.Digest
	buf           [8]byte
	notifications int64
}

func (g *Graph) Step(i int) {
	g.step(i)
}

func (g *Graph) Notifications() int64 {
	return g.notifications
}

func (g *Graph) Checksum() uint64 {
	return g.digest.Sum64()
}

func (g *Graph) record(v uint64) {
	g.notifications++
	binary.LittleEndian.PutUint64(g.buf[:], v)
	g.digest.Write(g.buf[:])
}

func recordBool(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

func Build(s Scenario) (*Graph, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	g := &Graph{digest: xxhash.New()}

	var err error
	switch s.Kind {
	case KindFanout:
		err = g.buildFanout(s)
	case KindLinkChain:
		err = g.buildLinkChain(s)
	case KindAggregate:
		err = g.buildAggregate(s)
	case KindGroup:
		err = g.buildGroup(s)
	}
	if err != nil {
		return nil, fmt.Errorf("error while building %q: %w", s.Name, err)
	}
	return g, nil
}

// buildFanout chains Depth events; the first listener on each level fires the
// next level, and every listener on the last level records.
func (g *Graph) buildFanout(s Scenario) error {
	levels := make([]*event.Event[int], s.Depth)
	for i := range levels {
		levels[i] = event.New[int]()
	}
	for d, e := range levels {
		for w := 0; w < s.Width; w++ {
			var fn func(int)
			switch {
			case d == len(levels)-1:
				fn = func(v int) { g.record(uint64(v)) }
			case w == 0:
				next := levels[d+1]
				fn = func(v int) { next.FireWith(v + 1) }
			default:
				fn = func(int) {}
			}
			if err := e.AddDataListener(event.NewDataListener(fn)); err != nil {
				return err
			}
		}
	}

	head := levels[0]
	g.step = func(i int) {
		head.FireWith(i)
	}
	return nil
}

// buildLinkChain creates Width chains of Depth values, each linked two-way to
// the next. The tail of every chain records.
func (g *Graph) buildLinkChain(s Scenario) error {
	heads := make([]*value.Var[int], s.Width)
	for w := range heads {
		prev := value.NewVar(0)
		heads[w] = prev
		for d := 1; d < s.Depth; d++ {
			next := value.NewVar(0)
			if _, err := value.NewLink[int](prev, next); err != nil {
				return err
			}
			prev = next
		}
		prev.Observer().Subscribe(func(v int) { g.record(uint64(v)) })
	}

	g.step = func(i int) {
		for _, head := range heads {
			if err := head.Set(i + 1); err != nil {
				panic(err)
			}
		}
	}
	return nil
}

// buildAggregate ANDs Width members, then nests Depth-1 more aggregates,
// alternating OR with an inactive state and AND with an active one, so every
// level passes the value through.
func (g *Graph) buildAggregate(s Scenario) error {
	members := make([]*state.State, s.Width)
	observers := make([]*state.Observer, s.Width)
	for w := range members {
		members[w] = state.New(true)
		observers[w] = members[w].Observer()
	}

	top := state.NewAnd(observers...)
	for d := 1; d < s.Depth; d++ {
		if d%2 == 1 {
			top = state.NewOr(top.Observer(), state.New(false).Observer())
		} else {
			top = state.NewAnd(top.Observer(), state.New(true).Observer())
		}
	}
	top.Observer().Subscribe(func(active bool) { g.record(recordBool(active)) })

	g.step = func(i int) {
		members[i%len(members)].Toggle()
	}
	return nil
}

// buildGroup puts Width states in one group and activates them in turn.
// Every member records its transitions.
func (g *Graph) buildGroup(s Scenario) error {
	members := make([]*state.State, s.Width)
	for w := range members {
		members[w] = state.New(false)
	}
	group := state.NewGroup(members...)
	for w, m := range members {
		offset := uint64(w) << 1
		m.Observer().Subscribe(func(active bool) { g.record(offset | recordBool(active)) })
	}

	g.step = func(i int) {
		members[i%len(members)].SetActive(true)
	}
	if len(group.States()) != len(members) {
		return fmt.Errorf("group holds %d of %d members", len(group.States()), len(members))
	}
	return nil
}
