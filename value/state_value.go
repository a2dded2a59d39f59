package value

import (
	"sync"

	"github.com/delaneyj/observe/state"
)

// StateValue exposes a state.State as a boolean value. Null is stored as
// false, and the observer is the state's own change event.
type StateValue struct {
	state *state.State

	once     sync.Once
	observer *Observer[bool]
}

func NewStateValue(s *state.State) (*StateValue, error) {
	if s == nil {
		return nil, ErrNilValue
	}
	return &StateValue{state: s}, nil
}

func (v *StateValue) Get() bool {
	return v.state.IsActive()
}

func (v *StateValue) IsNull() bool {
	return false
}

func (v *StateValue) IsNullable() bool {
	return false
}

func (v *StateValue) Set(active bool) error {
	v.state.SetActive(active)
	return nil
}

func (v *StateValue) SetNull() error {
	v.state.SetActive(false)
	return nil
}

func (v *StateValue) Observer() *Observer[bool] {
	v.once.Do(func() {
		v.observer = &Observer[bool]{
			Observer: v.state.Observer().Changed(),
			get:      v.state.IsActive,
			isNull:   func() bool { return false },
		}
	})
	return v.observer
}
