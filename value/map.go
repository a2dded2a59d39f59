package value

// Map returns a read-only observer of fn applied to src. It is recomputed
// whenever src changes and notifies its own listeners only when the result
// changes.
func Map[S, V any](src *Observer[S], fn func(S) V, opts ...Option[V]) *Observer[V] {
	target := NewVar(fn(src.Get()), opts...)
	src.OnFire(func() {
		if err := target.Set(fn(src.Get())); err != nil {
			panic(err)
		}
	})
	return target.Observer()
}
