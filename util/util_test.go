package util

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSortedKeys(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]int{1, 3, 7}, GetSortedKeys(map[int]string{7: "a", 1: "b", 3: "c"}))
	assert.Empty(GetSortedKeys(map[string]int{}))
}

func TestClamp(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(-1, Clamp(-5, -1, 9))
	assert.Equal(9, Clamp(12, -1, 9))
	assert.Equal(4, Clamp(4, -1, 9))
}

func TestSum(t *testing.T) {
	assert.Equal(t, uint64(10), Sum([]uint8{1, 2, 3, 4}))
	assert.Equal(t, uint64(0), Sum([]int{}))
}

func TestMap(t *testing.T) {
	assert.Equal(t, []string{"1", "2"}, Map([]int{1, 2}, strconv.Itoa))
}
