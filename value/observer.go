package value

import "github.com/delaneyj/observe/event"

// Observer is the read-only view of a value. The embedded event observer
// delivers the stored value after every change.
type Observer[V any] struct {
	*event.Observer[V]

	get    func() V
	isNull func() bool
}

func newObserver[V any](changed *event.Event[V], get func() V, isNull func() bool) *Observer[V] {
	return &Observer[V]{
		Observer: changed.Observer(),
		get:      get,
		isNull:   isNull,
	}
}

func (o *Observer[V]) Get() V {
	return o.get()
}

func (o *Observer[V]) IsNull() bool {
	return o.isNull()
}
