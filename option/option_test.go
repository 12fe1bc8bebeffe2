package option

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSome(t *testing.T) {
	require := require.New(t)

	o := Some(42)
	require.True(o.IsPresent())

	v, ok := o.Get()
	require.True(ok)
	require.Equal(42, v)

	require.Equal(42, o.OrElse(7))
}

func TestNone(t *testing.T) {
	require := require.New(t)

	o := None[int]()
	require.False(o.IsPresent())

	v, ok := o.Get()
	require.False(ok)
	require.Equal(0, v)

	require.Equal(7, o.OrElse(7))
}

// Holding a zero or nil value is not the same as holding nothing.
func TestSomeZeroValue(t *testing.T) {
	require := require.New(t)

	o := Some[*int](nil)
	require.True(o.IsPresent())

	v, ok := o.Get()
	require.True(ok)
	require.Nil(v)
}

func TestZeroValueIsNone(t *testing.T) {
	require := require.New(t)

	var o Option[string]
	require.False(o.IsPresent())
	require.Equal(o, None[string]())
}
