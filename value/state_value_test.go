package value_test

import (
	"testing"

	"github.com/delaneyj/observe/state"
	"github.com/delaneyj/observe/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateValue(t *testing.T) {
	s := state.New(false)
	v, err := value.NewStateValue(s)
	require.NoError(t, err)
	assert.False(t, v.IsNullable())

	var got []bool
	v.Observer().Subscribe(func(b bool) { got = append(got, b) })

	require.NoError(t, v.Set(true))
	assert.True(t, s.IsActive())

	s.SetActive(false)
	assert.False(t, v.Get())

	require.NoError(t, v.Set(true))
	require.NoError(t, v.SetNull())
	assert.False(t, v.Get())
	assert.False(t, v.IsNull())

	assert.Equal(t, []bool{true, false, true, false}, got)
}

func TestStateValueSharesStateObserver(t *testing.T) {
	s := state.New(false)
	v, err := value.NewStateValue(s)
	require.NoError(t, err)

	// a listener added through the value is a listener on the state
	callCount := 0
	v.Observer().OnFire(func() { callCount++ })
	s.SetActive(true)
	assert.Equal(t, 1, callCount)
	assert.True(t, v.Observer().Get())
}

func TestStateValueNilState(t *testing.T) {
	_, err := value.NewStateValue(nil)
	require.ErrorIs(t, err, value.ErrNilValue)
}

func TestStateValueLinkedToVar(t *testing.T) {
	s := state.New(false)
	sv, err := value.NewStateValue(s)
	require.NoError(t, err)
	checkbox := value.NewVar(true)

	_, err = value.NewLink[bool](sv, checkbox)
	require.NoError(t, err)
	assert.False(t, checkbox.Get())

	require.NoError(t, checkbox.Set(true))
	assert.True(t, s.IsActive())

	s.SetActive(false)
	assert.False(t, checkbox.Get())
}
