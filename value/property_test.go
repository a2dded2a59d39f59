package value_test

import (
	"errors"
	"testing"

	"github.com/delaneyj/observe/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type customer struct {
	name    string
	id      int
	failSet error
}

type customerName struct{ c *customer }

func (a customerName) Get() string { return a.c.name }
func (a customerName) Set(name string) error {
	if a.c.failSet != nil {
		return a.c.failSet
	}
	a.c.name = name
	return nil
}

type customerID struct{ c *customer }

func (a customerID) Get() int { return a.c.id }

func TestPropertyReadWrite(t *testing.T) {
	c := &customer{name: "alice"}
	p, err := value.NewProperty[string]("name", customerName{c})
	require.NoError(t, err)
	assert.Equal(t, value.ReadWrite, p.Access())
	assert.Equal(t, "name", p.Name())
	assert.Equal(t, "alice", p.Get())

	var got []string
	p.Observer().Subscribe(func(s string) { got = append(got, s) })

	require.NoError(t, p.Set("bob"))
	assert.Equal(t, "bob", c.name)
	assert.Equal(t, "bob", p.Get())

	require.NoError(t, p.Set("bob"))
	assert.Equal(t, []string{"bob"}, got)
	assert.Equal(t, "name=bob", p.String())
}

func TestPropertyReadsThroughOwner(t *testing.T) {
	c := &customer{name: "alice"}
	p, err := value.NewProperty[string]("name", customerName{c})
	require.NoError(t, err)

	c.name = "carol"
	assert.Equal(t, "carol", p.Get())
}

func TestPropertyWithoutSetterIsReadOnly(t *testing.T) {
	c := &customer{id: 42}
	p, err := value.NewProperty[int]("id", customerID{c})
	require.NoError(t, err)
	assert.Equal(t, value.ReadOnly, p.Access())
	assert.Equal(t, 42, p.Get())

	err = p.Set(7)
	require.ErrorIs(t, err, value.ErrReadOnly)
	require.ErrorIs(t, p.SetNull(), value.ErrReadOnly)
	assert.Equal(t, 42, c.id)
	assert.Equal(t, 42, p.Get())
}

func TestPropertySetterFailureWrapped(t *testing.T) {
	errStore := errors.New("store unavailable")
	c := &customer{name: "alice", failSet: errStore}
	p, err := value.NewProperty[string]("name", customerName{c})
	require.NoError(t, err)

	callCount := 0
	p.Observer().OnFire(func() { callCount++ })

	err = p.Set("bob")
	require.ErrorIs(t, err, errStore)
	var perr *value.PropertyError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "name", perr.Property)
	assert.Equal(t, "set", perr.Op)
	assert.Equal(t, 0, callCount)
	assert.Equal(t, "alice", p.Get())
}

func TestPropertyNilAccessor(t *testing.T) {
	_, err := value.NewProperty[string]("missing", nil)
	require.ErrorIs(t, err, value.ErrNilAccessor)

	_, err = value.NewProperty("missing", value.Accessors[string](nil, nil))
	require.ErrorIs(t, err, value.ErrNilAccessor)
}

func TestPropertyFromFuncs(t *testing.T) {
	var stored *int
	p, err := value.NewProperty("count", value.Accessors(
		func() *int { return stored },
		func(v *int) error { stored = v; return nil },
	), value.WithNullValue(new(int)))
	require.NoError(t, err)
	assert.False(t, p.IsNullable())
	assert.False(t, p.IsNull())
	assert.Equal(t, 0, *p.Get())

	three := 3
	require.NoError(t, p.Set(&three))
	assert.Same(t, &three, stored)

	require.NoError(t, p.SetNull())
	require.NotNil(t, stored)
	assert.Equal(t, 0, *stored)

	ro, err := value.NewProperty("count", value.Accessors(func() *int { return stored }, nil))
	require.NoError(t, err)
	assert.Equal(t, value.ReadOnly, ro.Access())
	assert.Equal(t, "read-only", ro.Access().String())
}
