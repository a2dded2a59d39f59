package state_test

import (
	"testing"

	"github.com/delaneyj/observe/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetActiveIsIdempotent(t *testing.T) {
	s := state.New(false)

	callCount := 0
	s.Observer().OnFire(func() { callCount++ })

	s.SetActive(true)
	s.SetActive(true)
	assert.True(t, s.IsActive())
	assert.Equal(t, 1, callCount)

	s.SetActive(false)
	s.SetActive(false)
	assert.False(t, s.IsActive())
	assert.Equal(t, 2, callCount)
}

func TestInitialValue(t *testing.T) {
	assert.True(t, state.New(true).IsActive())
	assert.False(t, state.New(false).IsActive())
	assert.Equal(t, "active", state.New(true).String())
}

func TestObserverIsStable(t *testing.T) {
	s := state.New(false)
	assert.Same(t, s.Observer(), s.Observer())
	assert.Same(t, s.ReversedObserver(), s.ReversedObserver())
	assert.Same(t, s.Observer(), s.ReversedObserver().Reversed())
}

func TestObserverPayloadIsNewValue(t *testing.T) {
	s := state.New(false)
	var got []bool
	s.Observer().Subscribe(func(active bool) { got = append(got, active) })

	s.SetActive(true)
	s.SetActive(false)
	assert.Equal(t, []bool{true, false}, got)
}

func TestAddListenerTwiceFiresOnce(t *testing.T) {
	s := state.New(false)
	o := s.Observer()

	callCount := 0
	l := newCountingListener(&callCount)
	require.NoError(t, o.AddListener(l))
	require.NoError(t, o.AddListener(l))

	s.SetActive(true)
	assert.Equal(t, 1, callCount)
}

func TestReversedInvariant(t *testing.T) {
	s := state.New(false)
	reversed := s.ReversedObserver()

	var primaryEvents, reversedEvents []bool
	s.Observer().Subscribe(func(active bool) { primaryEvents = append(primaryEvents, active) })
	reversed.Subscribe(func(active bool) { reversedEvents = append(reversedEvents, active) })

	sequence := []bool{true, true, false, true, false, false, false, true}
	transitions := 0
	last := s.IsActive()
	for _, v := range sequence {
		s.SetActive(v)
		if v != last {
			transitions++
			last = v
		}
		assert.Equal(t, !s.IsActive(), reversed.IsActive())
		assert.Equal(t, !s.Observer().IsActive(), reversed.IsActive())
	}

	assert.Len(t, primaryEvents, transitions)
	assert.Len(t, reversedEvents, transitions)
	for i := range primaryEvents {
		assert.Equal(t, !primaryEvents[i], reversedEvents[i])
	}
}

func TestReversedFiresAfterPrimary(t *testing.T) {
	s := state.New(false)
	var order []string
	s.ReversedObserver().OnFire(func() { order = append(order, "reversed") })
	s.Observer().OnFire(func() { order = append(order, "primary") })

	s.SetActive(true)
	assert.Equal(t, []string{"primary", "reversed"}, order)
}

func TestToggle(t *testing.T) {
	s := state.New(false)
	callCount := 0
	s.Observer().OnFire(func() { callCount++ })

	assert.True(t, s.Toggle())
	assert.False(t, s.Toggle())
	assert.False(t, s.IsActive())
	assert.Equal(t, 2, callCount)
}

func TestListenerMaySetSameState(t *testing.T) {
	// A listener that pushes the state back is allowed; it settles because
	// SetActive is idempotent.
	s := state.New(false)
	var got []bool
	s.Observer().Subscribe(func(active bool) {
		got = append(got, active)
		if active {
			s.SetActive(false)
		}
	})

	s.SetActive(true)
	assert.False(t, s.IsActive())
	assert.Equal(t, []bool{true, false}, got)
}
