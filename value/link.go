package value

import (
	"fmt"
	"sync/atomic"

	"github.com/delaneyj/observe/event"
)

type linkOptions struct {
	oneWay  bool
	onError func(error)
}

type LinkOption func(*linkOptions)

// OneWay makes the link propagate original to linked only.
func OneWay() LinkOption {
	return func(o *linkOptions) {
		o.oneWay = true
	}
}

// WithErrorHandler receives errors from propagation, such as a validator
// rejecting the value on the other side. By default such errors panic.
func WithErrorHandler(fn func(error)) LinkOption {
	return func(o *linkOptions) {
		if fn != nil {
			o.onError = fn
		}
	}
}

// Link keeps a linked value in sync with an original. Each direction has its
// own guard, so a change pushed one way is never pushed back.
type Link[V any] struct {
	original Value[V]
	linked   Value[V]
	onError  func(error)

	updatingOriginal atomic.Bool
	updatingLinked   atomic.Bool

	originalListener *event.Listener
	linkedListener   *event.Listener
}

// NewLink overwrites linked with the current value of original, then keeps
// them in sync.
func NewLink[V any](original, linked Value[V], opts ...LinkOption) (*Link[V], error) {
	if original == nil || linked == nil {
		return nil, ErrNilValue
	}
	o := linkOptions{
		onError: func(err error) {
			panic(err)
		},
	}
	for _, opt := range opts {
		opt(&o)
	}

	if err := copyValue(original, linked); err != nil {
		return nil, fmt.Errorf("value: initial link sync: %w", err)
	}

	l := &Link[V]{
		original: original,
		linked:   linked,
		onError:  o.onError,
	}
	l.originalListener = event.NewListener(l.updateLinked)
	if err := original.Observer().AddListener(l.originalListener); err != nil {
		return nil, err
	}
	if !o.oneWay {
		l.linkedListener = event.NewListener(l.updateOriginal)
		if err := linked.Observer().AddListener(l.linkedListener); err != nil {
			original.Observer().RemoveListener(l.originalListener)
			return nil, err
		}
	}
	return l, nil
}

func (l *Link[V]) IsOneWay() bool {
	return l.linkedListener == nil
}

// Unlink stops propagation in both directions. The values keep their
// current contents.
func (l *Link[V]) Unlink() {
	l.original.Observer().RemoveListener(l.originalListener)
	if l.linkedListener != nil {
		l.linked.Observer().RemoveListener(l.linkedListener)
	}
}

func (l *Link[V]) updateLinked() {
	if l.updatingOriginal.Load() {
		return
	}
	l.updatingLinked.Store(true)
	defer l.updatingLinked.Store(false)

	if err := copyValue(l.original, l.linked); err != nil {
		l.onError(fmt.Errorf("value: update linked: %w", err))
	}
}

func (l *Link[V]) updateOriginal() {
	if l.updatingLinked.Load() {
		return
	}
	l.updatingOriginal.Store(true)
	defer l.updatingOriginal.Store(false)

	if err := copyValue(l.linked, l.original); err != nil {
		l.onError(fmt.Errorf("value: update original: %w", err))
	}
}

func copyValue[V any](from, to Value[V]) error {
	if from.IsNull() {
		return to.SetNull()
	}
	return to.Set(from.Get())
}
