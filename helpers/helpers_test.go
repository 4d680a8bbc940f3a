package helpers_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dora-network/batch-exchange-utils/helpers"
)

func TestToHex(t *testing.T) {
	assert.Equal(t, "0x", helpers.ToHex(nil))
	assert.Equal(t, "0x00ff", helpers.ToHex([]byte{0x00, 0xff}))
	assert.Equal(t, "0xab", helpers.NormalizeHex("ab"))
	assert.Equal(t, "0xab", helpers.NormalizeHex("0Xab"))
	assert.Equal(t, "0xab", helpers.NormalizeHex("0xab"))
}

func TestCountDuplicates(t *testing.T) {
	assert.Equal(t, map[int]int{1: 2, 2: 1, 3: 3}, helpers.CountDuplicates([]int{1, 3, 2, 3, 1, 3}))
	assert.Empty(t, helpers.CountDuplicates[string](nil))
}

func TestPartitionArray(t *testing.T) {
	t.Run(
		"Should leave a short last chunk", func(t *testing.T) {
			assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, helpers.PartitionArray([]int{1, 2, 3, 4, 5}, 2))
		},
	)

	t.Run(
		"Should return one chunk when size exceeds the input", func(t *testing.T) {
			assert.Equal(t, [][]string{{"a", "b"}}, helpers.PartitionArray([]string{"a", "b"}, 10))
		},
	)

	t.Run(
		"Should return no chunks for empty input or a non positive size", func(t *testing.T) {
			assert.Empty(t, helpers.PartitionArray([]int{}, 3))
			assert.Nil(t, helpers.PartitionArray([]int{1}, 0))
		},
	)

	t.Run(
		"Should not let appends to one chunk overwrite the next", func(t *testing.T) {
			parts := helpers.PartitionArray([]int{1, 2, 3, 4}, 2)
			_ = append(parts[0], 99)
			assert.Equal(t, [][]int{{1, 2}, {3, 4}}, parts)
		},
	)

	t.Run(
		"Should handle a size close to the int limit", func(t *testing.T) {
			assert.Equal(t, [][]int{{1, 2, 3}}, helpers.PartitionArray([]int{1, 2, 3}, math.MaxInt))
		},
	)
}
