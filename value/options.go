package value

import (
	"fmt"
	"reflect"
)

type options[V any] struct {
	nullValue    V
	hasNullValue bool
	equal        func(a, b V) bool
	validators   []func(V) error
}

type Option[V any] func(*options[V])

// WithNullValue makes nv the value stored in place of null.
func WithNullValue[V any](nv V) Option[V] {
	return func(o *options[V]) {
		o.nullValue = nv
		o.hasNullValue = true
	}
}

// WithEqual replaces the default reflect.DeepEqual comparison used to decide
// whether a Set changed anything.
func WithEqual[V any](equal func(a, b V) bool) Option[V] {
	return func(o *options[V]) {
		if equal != nil {
			o.equal = equal
		}
	}
}

// WithValidator adds a check run against every value before it is stored.
// Validators see the value after null substitution.
func WithValidator[V any](validate func(V) error) Option[V] {
	return func(o *options[V]) {
		if validate != nil {
			o.validators = append(o.validators, validate)
		}
	}
}

func newOptions[V any](opts []Option[V]) options[V] {
	o := options[V]{
		equal: func(a, b V) bool {
			return reflect.DeepEqual(a, b)
		},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o *options[V]) substitute(x V, null bool) (V, bool) {
	if !null {
		return x, false
	}
	if o.hasNullValue {
		return o.nullValue, false
	}
	var zero V
	return zero, true
}

func (o *options[V]) validate(x V) error {
	for _, validate := range o.validators {
		if err := validate(x); err != nil {
			return &ValidationError{Value: x, Err: err}
		}
	}
	return nil
}

func format[V any](x V, null bool) string {
	if null {
		return "<null>"
	}
	return fmt.Sprint(x)
}
