package event

// Observer is the subscribe-only view of an Event. It cannot fire.
type Observer[T any] struct {
	event *Event[T]
}

func (o *Observer[T]) AddListener(l *Listener) error {
	return o.event.AddListener(l)
}

func (o *Observer[T]) RemoveListener(l *Listener) {
	o.event.RemoveListener(l)
}

func (o *Observer[T]) AddDataListener(l *DataListener[T]) error {
	return o.event.AddDataListener(l)
}

func (o *Observer[T]) RemoveDataListener(l *DataListener[T]) {
	o.event.RemoveDataListener(l)
}

// OnFire registers fn as a plain listener and returns a func that removes it.
func (o *Observer[T]) OnFire(fn func()) (unsubscribe func()) {
	l := NewListener(fn)
	if err := o.AddListener(l); err != nil {
		panic(err)
	}
	return func() {
		o.RemoveListener(l)
	}
}

// Subscribe registers fn as a data listener and returns a func that removes
// it.
func (o *Observer[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	l := NewDataListener(fn)
	if err := o.AddDataListener(l); err != nil {
		panic(err)
	}
	return func() {
		o.RemoveDataListener(l)
	}
}
