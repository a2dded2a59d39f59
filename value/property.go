package value

import (
	"sync"

	"github.com/delaneyj/observe/event"
)

type Access uint8

const (
	ReadOnly Access = iota
	ReadWrite
)

func (a Access) String() string {
	if a == ReadWrite {
		return "read-write"
	}
	return "read-only"
}

// Accessor reads a property from its owner.
type Accessor[V any] interface {
	Get() V
}

// MutableAccessor reads and writes a property on its owner.
type MutableAccessor[V any] interface {
	Accessor[V]
	Set(V) error
}

// Accessors builds an accessor from funcs. A nil set gives a read-only
// accessor; a nil get gives nil.
func Accessors[V any](get func() V, set func(V) error) Accessor[V] {
	if get == nil {
		return nil
	}
	if set == nil {
		return funcAccessor[V]{get: get}
	}
	return funcMutableAccessor[V]{funcAccessor: funcAccessor[V]{get: get}, set: set}
}

type funcAccessor[V any] struct {
	get func() V
}

func (a funcAccessor[V]) Get() V {
	return a.get()
}

type funcMutableAccessor[V any] struct {
	funcAccessor[V]
	set func(V) error
}

func (a funcMutableAccessor[V]) Set(v V) error {
	return a.set(v)
}

// Property is a value stored on an external owner and reached through an
// Accessor. It is ReadWrite when the accessor is also a MutableAccessor.
// Changes made to the owner directly are not observed.
type Property[V any] struct {
	name     string
	accessor Accessor[V]
	mutator  MutableAccessor[V]
	opts     options[V]

	mu       sync.Mutex
	changed  *event.Event[V]
	observer *Observer[V]
}

func NewProperty[V any](name string, accessor Accessor[V], opts ...Option[V]) (*Property[V], error) {
	if accessor == nil {
		return nil, &PropertyError{Property: name, Op: "bind", Err: ErrNilAccessor}
	}
	p := &Property[V]{
		name:     name,
		accessor: accessor,
		opts:     newOptions(opts),
	}
	if m, ok := accessor.(MutableAccessor[V]); ok {
		p.mutator = m
	}
	return p, nil
}

func (p *Property[V]) Name() string {
	return p.name
}

func (p *Property[V]) Access() Access {
	if p.mutator == nil {
		return ReadOnly
	}
	return ReadWrite
}

func (p *Property[V]) Get() V {
	x, _ := p.load()
	return x
}

func (p *Property[V]) IsNull() bool {
	_, null := p.load()
	return null
}

func (p *Property[V]) IsNullable() bool {
	return !p.opts.hasNullValue
}

// Set writes x through the accessor. It fails with ErrReadOnly when the
// property has no setter, and wraps any setter error in a PropertyError.
func (p *Property[V]) Set(x V) error {
	return p.store(x, isNil(x))
}

// SetNull writes the null value, or the zero value of V when none is
// configured.
func (p *Property[V]) SetNull() error {
	var zero V
	return p.store(zero, true)
}

func (p *Property[V]) store(x V, null bool) error {
	if p.mutator == nil {
		return &PropertyError{Property: p.name, Op: "set", Err: ErrReadOnly}
	}
	x, null = p.opts.substitute(x, null)
	if err := p.opts.validate(x); err != nil {
		return err
	}

	previous, wasNull := p.load()
	if wasNull == null && p.opts.equal(previous, x) {
		return nil
	}
	if err := p.mutator.Set(x); err != nil {
		return &PropertyError{Property: p.name, Op: "set", Err: err}
	}

	p.mu.Lock()
	changed := p.changed
	p.mu.Unlock()
	if changed != nil {
		changed.FireWith(x)
	}
	return nil
}

func (p *Property[V]) load() (V, bool) {
	x := p.accessor.Get()
	return p.opts.substitute(x, isNil(x))
}

func (p *Property[V]) Observer() *Observer[V] {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.observer == nil {
		p.changed = event.New[V]()
		p.observer = newObserver(p.changed, p.Get, p.IsNull)
	}
	return p.observer
}

func (p *Property[V]) String() string {
	x, null := p.load()
	return p.name + "=" + format(x, null)
}
