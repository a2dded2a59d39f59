// Package value provides observable single-value containers and links that
// keep two of them in sync.
//
// A value may be null: cleared with SetNull, or set to a nil pointer,
// interface, map, slice, func or chan. A value built WithNullValue stores
// that substitute instead of null, so it is never null and reports
// IsNullable false.
//
// Change listeners run synchronously on the goroutine that called Set, with
// no lock held, and only when the stored value actually changed. Two values
// updating each other from plain listeners loop forever; use Link, which
// guards both directions.
package value

import (
	"reflect"
	"sync"

	"github.com/delaneyj/observe/event"
)

// Value is the contract shared by every observable value in this package.
type Value[V any] interface {
	Get() V
	IsNull() bool
	IsNullable() bool
	Set(V) error
	SetNull() error
	Observer() *Observer[V]
}

var (
	_ Value[int]  = (*Var[int])(nil)
	_ Value[int]  = (*Property[int])(nil)
	_ Value[bool] = (*StateValue)(nil)
)

// Var is a value owned in memory.
type Var[V any] struct {
	opts options[V]

	mu       sync.Mutex
	value    V
	null     bool
	changed  *event.Event[V]
	observer *Observer[V]
}

func NewVar[V any](initial V, opts ...Option[V]) *Var[V] {
	v := &Var[V]{opts: newOptions(opts)}
	v.value, v.null = v.opts.substitute(initial, isNil(initial))
	return v
}

// NewNullVar returns a value that starts out null, or holds the null value
// if one is configured.
func NewNullVar[V any](opts ...Option[V]) *Var[V] {
	v := &Var[V]{opts: newOptions(opts)}
	var zero V
	v.value, v.null = v.opts.substitute(zero, true)
	return v
}

func (v *Var[V]) Get() V {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.value
}

func (v *Var[V]) IsNull() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.null
}

func (v *Var[V]) IsNullable() bool {
	return !v.opts.hasNullValue
}

// Set stores x, or the null value when x is nil. Listeners are notified with
// the stored value if it differs from the previous one. A validator error
// leaves the value unchanged.
func (v *Var[V]) Set(x V) error {
	return v.store(x, isNil(x))
}

func (v *Var[V]) SetNull() error {
	var zero V
	return v.store(zero, true)
}

func (v *Var[V]) store(x V, null bool) error {
	x, null = v.opts.substitute(x, null)
	if err := v.opts.validate(x); err != nil {
		return err
	}

	v.mu.Lock()
	if v.null == null && v.opts.equal(v.value, x) {
		v.mu.Unlock()
		return nil
	}
	v.value, v.null = x, null
	changed := v.changed
	v.mu.Unlock()

	if changed != nil {
		changed.FireWith(x)
	}
	return nil
}

func (v *Var[V]) Observer() *Observer[V] {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.observer == nil {
		v.changed = event.New[V]()
		v.observer = newObserver(v.changed, v.Get, v.IsNull)
	}
	return v.observer
}

func (v *Var[V]) String() string {
	return format(v.Get(), v.IsNull())
}

// isNil reports whether x is the nil value of a nillable kind.
func isNil[V any](x V) bool {
	rv := reflect.ValueOf(&x).Elem()
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
