package freelist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRingBasic(t *testing.T) {
	var ring Ring[int]
	ring.Reset(7)

	require.True(t, ring.Empty())
	require.False(t, ring.Full())
	require.Equal(t, 7, ring.Cap())

	_, ok := ring.Shift()
	require.False(t, ok)

	for round := 0; round < 2; round++ {
		for i := 11; i <= 17; i++ {
			require.True(t, ring.Push(i))
		}
		require.False(t, ring.Push(18))

		require.False(t, ring.Empty())
		require.True(t, ring.Full())
		require.Equal(t, 7, ring.Len())

		for i := 11; i <= 17; i++ {
			v, ok := ring.Shift()
			require.True(t, ok)
			require.Equal(t, i, v)
		}
		_, ok = ring.Shift()
		require.False(t, ok)
	}
}

func TestRingWrap(t *testing.T) {
	var ring Ring[int]
	ring.Reset(3)

	require.True(t, ring.Push(1))
	require.True(t, ring.Push(2))
	v, _ := ring.Shift()
	require.Equal(t, 1, v)
	require.True(t, ring.Push(3))
	require.True(t, ring.Push(4))
	require.False(t, ring.Push(5))

	for _, want := range []int{2, 3, 4} {
		v, ok := ring.Shift()
		require.True(t, ok)
		require.Equal(t, want, v)
	}
	require.True(t, ring.Empty())
}

func TestRingShiftClearsSlot(t *testing.T) {
	var ring Ring[*int]
	ring.Reset(2)

	x := 42
	require.True(t, ring.Push(&x))
	v, ok := ring.Shift()
	require.True(t, ok)
	require.Same(t, &x, v)
	for _, slot := range ring.buffer {
		require.Nil(t, slot)
	}
}

func TestRingZeroCapacity(t *testing.T) {
	var ring Ring[string]
	require.True(t, ring.Empty())
	require.True(t, ring.Full())
	require.False(t, ring.Push("a"))

	ring.Reset(-1)
	require.Equal(t, 0, ring.Cap())
	require.False(t, ring.Push("a"))
}
