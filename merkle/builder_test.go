package merkle_test

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dora-network/batch-exchange-utils/errors"
	"github.com/dora-network/batch-exchange-utils/merkle"
)

const (
	emptyLeafHash = "0x6e340b9cffb37a989ca544e6bb780a2c78901d3fb33738768511a30617afa01d"
	emptyRoot     = "0x39da249ab5f6f35898571f1351320f1042414ebfc22fa2666cfed72683d1e958"
	// root of {0: "x", 3: "y"}
	xyRoot = "0x226c6c39171028844dde804dd05b40f0508e6fb9ccc25b98cedaebc820deec73"
	// root of {5: sha256("x")}, the 32 byte value is hashed again
	prehashedRoot = "0x035ad7be9e57caeb57325d5c1dac4bca988b22384e9e45076d7454318e718ff4"
)

func sum(s string) merkle.Hash {
	return sha256.Sum256([]byte(s))
}

func TestBuild(t *testing.T) {
	b := merkle.NewBuilder(merkle.SHA256)

	t.Run(
		"Should fill an empty tree with the empty leaf hash", func(t *testing.T) {
			tree, err := b.Build()
			require.NoError(t, err)
			assert.Equal(t, emptyLeafHash, b.EmptyLeafHash().Hex())
			assert.Equal(t, emptyRoot, tree.Root().Hex())

			leaves := tree.Leaves()
			require.Len(t, leaves, merkle.Capacity)
			for _, l := range leaves {
				assert.Equal(t, emptyLeafHash, l.Hex())
			}
		},
	)

	t.Run(
		"Should hash populated values exactly once", func(t *testing.T) {
			tree, err := b.Build(merkle.Leaf{Index: 0, Value: []byte("x")}, merkle.Leaf{Index: 3, Value: []byte("y")})
			require.NoError(t, err)
			assert.Equal(t, xyRoot, tree.Root().Hex())

			leaf, err := tree.Leaf(3)
			require.NoError(t, err)
			assert.Equal(t, sum("y"), leaf)

			x := sum("x")
			tree, err = b.Build(merkle.Leaf{Index: 5, Value: x[:]})
			require.NoError(t, err)
			assert.Equal(t, prehashedRoot, tree.Root().Hex())
			leaf, err = tree.Leaf(5)
			require.NoError(t, err)
			assert.Equal(t, sha256.Sum256(x[:]), [32]byte(leaf))
		},
	)

	t.Run(
		"Should always have the fixed number of leaves and levels", func(t *testing.T) {
			for _, k := range []int{0, 1, 64, merkle.Capacity} {
				leaves := make([]merkle.Leaf, k)
				for i := range leaves {
					leaves[i] = merkle.Leaf{Index: i, Value: []byte{byte(i)}}
				}
				tree, err := b.Build(leaves...)
				require.NoError(t, err)
				assert.Len(t, tree.Leaves(), merkle.Capacity)
				for h := 0; h <= merkle.Height; h++ {
					assert.Len(t, tree.Level(h), merkle.Capacity>>h)
				}
				assert.Nil(t, tree.Level(merkle.Height+1))
				assert.Equal(t, tree.Level(merkle.Height)[0], tree.Root())
				for i, leaf := range tree.Leaves() {
					if i < k {
						assert.Equal(t, sum(string([]byte{byte(i)})), leaf, "slot %d", i)
					} else {
						assert.Equal(t, b.EmptyLeafHash(), leaf, "slot %d", i)
					}
				}
			}
		},
	)

	t.Run(
		"Should let the last write win", func(t *testing.T) {
			tree, err := b.Build(merkle.Leaf{Index: 5, Value: []byte("A")}, merkle.Leaf{Index: 5, Value: []byte("B")})
			require.NoError(t, err)
			leaf, err := tree.Leaf(5)
			require.NoError(t, err)
			assert.Equal(t, sum("B"), leaf)

			onlyB, err := b.Build(merkle.Leaf{Index: 5, Value: []byte("B")})
			require.NoError(t, err)
			assert.Equal(t, onlyB.Root(), tree.Root())
		},
	)

	t.Run(
		"Should reject indices outside the capacity", func(t *testing.T) {
			for _, i := range []int{merkle.Capacity, merkle.Capacity + 1, 1 << 20, -1} {
				tree, err := b.Build(merkle.Leaf{Index: 0, Value: []byte("x")}, merkle.Leaf{Index: i, Value: []byte("y")})
				require.Error(t, err)
				assert.Nil(t, tree)
				assert.Truef(t, errors.Is(err, errors.IndexOutOfRangeError), "index %d: %v", i, err)
			}
		},
	)

	t.Run(
		"Should be deterministic across builders", func(t *testing.T) {
			leaves := []merkle.Leaf{{Index: 9, Value: []byte("a")}, {Index: 100, Value: []byte("b")}}
			t1, err := merkle.NewBuilder(merkle.SHA256).Build(leaves...)
			require.NoError(t, err)
			t2, err := merkle.NewBuilder(nil).Build(leaves...)
			require.NoError(t, err)
			assert.Equal(t, t1.Root(), t2.Root())
			for i := 0; i < merkle.Capacity; i++ {
				p1, err := t1.Proof(i)
				require.NoError(t, err)
				p2, err := t2.Proof(i)
				require.NoError(t, err)
				assert.Equal(t, p1, p2)
			}
		},
	)

	t.Run(
		"Should give the same root for disjoint indices in any order", func(t *testing.T) {
			t1, err := b.BuildInterleaved(0, sum("x"), 3, sum("y"))
			require.NoError(t, err)
			t2, err := b.BuildInterleaved(3, sum("y"), 0, sum("x"))
			require.NoError(t, err)
			assert.Equal(t, t1.Root(), t2.Root())
		},
	)

	t.Run(
		"Should use the supplied hasher", func(t *testing.T) {
			keccak, err := merkle.NewBuilder(merkle.Keccak256).Build()
			require.NoError(t, err)
			assert.NotEqual(t, emptyRoot, keccak.Root().Hex())

			calls := 0
			counting := merkle.HasherFunc(func(data []byte) merkle.Hash {
				calls++
				return merkle.SHA256.Sum(data)
			})
			tree, err := merkle.NewBuilder(counting).Build(merkle.Leaf{Index: 1, Value: []byte("x")})
			require.NoError(t, err)
			assert.Equal(t, emptyLeafHash, tree.Leaves()[0].Hex())
			// empty leaf, one populated leaf, 127 inner nodes
			assert.Equal(t, 1+1+merkle.Capacity-1, calls)
		},
	)
}

func TestInterleaved(t *testing.T) {
	t.Run(
		"Should pair indices with values", func(t *testing.T) {
			leaves, err := merkle.Interleaved(int64(2), "a", uint8(7), []byte("b"), 127, sum("c"))
			require.NoError(t, err)
			c := sum("c")
			assert.Equal(t, []merkle.Leaf{
				{Index: 2, Value: []byte("a")},
				{Index: 7, Value: []byte("b")},
				{Index: 127, Value: c[:]},
			}, leaves)
		},
	)

	t.Run(
		"Should reject an odd number of arguments", func(t *testing.T) {
			for _, args := range [][]any{{1}, {1, "a", 2}} {
				_, err := merkle.Interleaved(args...)
				assert.True(t, errors.Is(err, errors.OddPairCountError))
			}

			_, err := merkle.NewBuilder(nil).BuildInterleaved(0, "a", 1)
			assert.True(t, errors.Is(err, errors.OddPairCountError))
		},
	)

	t.Run(
		"Should reject unsupported types", func(t *testing.T) {
			_, err := merkle.Interleaved("0", "a")
			assert.True(t, errors.Is(err, errors.InvalidInputError))
			_, err = merkle.Interleaved(0, 1.5)
			assert.True(t, errors.Is(err, errors.InvalidInputError))
		},
	)

	t.Run(
		"Should not wrap huge indices into range", func(t *testing.T) {
			_, err := merkle.NewBuilder(nil).BuildInterleaved(uint64(1<<64-1), "a")
			assert.True(t, errors.Is(err, errors.IndexOutOfRangeError))
		},
	)
}
