package vec_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aureat/vec"
)

func TestIntoIter(t *testing.T) {
	v := buildVec(t, 1, 2, 3, 4, 5)
	it := v.IntoIter()

	// The source gives up its buffer and is left empty but usable.
	require.Equal(t, 0, v.Len())
	require.Equal(t, 0, v.Cap())
	v.Push(99)
	assert.Equal(t, []int{99}, v.Slice())

	for want := 1; want <= 5; want++ {
		require.Equal(t, 5-want+1, it.Remaining())
		got, ok := it.Next()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}

	require.Equal(t, 0, it.Remaining())
	_, ok := it.Next()
	assert.False(t, ok)

	// Exhausted iterators stay exhausted.
	_, ok = it.Next()
	assert.False(t, ok)
}

func TestIntoIterEmpty(t *testing.T) {
	v := vec.New[int]()
	it := v.IntoIter()

	assert.Equal(t, 0, it.Remaining())
	_, ok := it.Next()
	assert.False(t, ok)
}

func TestIntoIterPartialConsumption(t *testing.T) {
	v := buildVec(t, 1, 2, 3, 4)
	it := v.IntoIter()

	got, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, 1, got)
	assert.Equal(t, 3, it.Remaining())
	// Unyielded elements stay with the iterator; dropping it hands them
	// to the collector along with the buffer.
}

func TestIntoIterZeroSized(t *testing.T) {
	v := vec.New[struct{}]()
	for i := 0; i < 10; i++ {
		v.Push(struct{}{})
	}

	it := v.IntoIter()
	require.Equal(t, math.MaxInt, v.Cap())

	count := 0
	for {
		if _, ok := it.Next(); !ok {
			break
		}
		count++
	}
	assert.Equal(t, 10, count)
}
