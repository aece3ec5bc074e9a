package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPercent(t *testing.T) {
	assert.Equal(t, 0, ClampPercent(-10))
	assert.Equal(t, 0, ClampPercent(0))
	assert.Equal(t, 55, ClampPercent(55))
	assert.Equal(t, 100, ClampPercent(100))
	assert.Equal(t, 100, ClampPercent(240))
}

func TestSafeDereference(t *testing.T) {
	assert.Equal(t, "", SafeDereference(nil))
	assert.Equal(t, "value", SafeDereference(Ptr("value")))
}

func TestEmptyThenNil(t *testing.T) {
	assert.Nil(t, EmptyThenNil(""))
	assert.Equal(t, "x", *EmptyThenNil("x"))
}

func TestOrDefault(t *testing.T) {
	assert.Equal(t, 7, OrDefault[int](nil, 7))
	assert.Equal(t, 3, OrDefault(Ptr(3), 7))
}

func TestSliceHelpers(t *testing.T) {
	t.Run("Filter keeps matching elements", func(t *testing.T) {
		assert.Equal(t, []int{2, 4}, Filter([]int{1, 2, 3, 4}, func(v int) bool { return v%2 == 0 }))
	})

	t.Run("Map transforms elements", func(t *testing.T) {
		assert.Equal(t, []int{2, 4, 6}, Map([]int{1, 2, 3}, func(v int) int { return v * 2 }))
	})
}
