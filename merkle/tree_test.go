package merkle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dora-network/batch-exchange-utils/errors"
	"github.com/dora-network/batch-exchange-utils/merkle"
)

func TestProof(t *testing.T) {
	b := merkle.NewBuilder(merkle.SHA256)
	tree, err := b.BuildInterleaved(0, "x", 3, "y", 127, "z")
	require.NoError(t, err)

	t.Run(
		"Should verify a proof for every slot", func(t *testing.T) {
			for i := 0; i < merkle.Capacity; i++ {
				proof, err := tree.Proof(i)
				require.NoError(t, err)
				require.Len(t, proof, merkle.Height)

				leaf, err := tree.Leaf(i)
				require.NoError(t, err)
				assert.Truef(t, merkle.VerifyProof(b.Hasher(), tree.Root(), leaf, i, proof), "slot %d", i)
			}
		},
	)

	t.Run(
		"Should start with the direct sibling", func(t *testing.T) {
			proof, err := tree.Proof(3)
			require.NoError(t, err)
			sibling, err := tree.Leaf(2)
			require.NoError(t, err)
			assert.Equal(t, sibling, proof[0])
			assert.Equal(t, tree.Level(merkle.Height - 1)[1], proof[merkle.Height-1])
		},
	)

	t.Run(
		"Should not verify a proof against another leaf, index or root", func(t *testing.T) {
			proof, err := tree.Proof(3)
			require.NoError(t, err)
			leaf, err := tree.Leaf(3)
			require.NoError(t, err)

			assert.False(t, merkle.VerifyProof(b.Hasher(), tree.Root(), sum("y"), 3, proof))
			assert.False(t, merkle.VerifyProof(b.Hasher(), tree.Root(), leaf, 2, proof))
			assert.False(t, merkle.VerifyProof(b.Hasher(), b.EmptyLeafHash(), leaf, 3, proof))
			assert.False(t, merkle.VerifyProof(b.Hasher(), tree.Root(), leaf, 3, proof[1:]))
			assert.False(t, merkle.VerifyProof(b.Hasher(), tree.Root(), leaf, merkle.Capacity, proof))
		},
	)

	t.Run(
		"Should reject out of range proofs", func(t *testing.T) {
			_, err := tree.Proof(merkle.Capacity)
			assert.True(t, errors.Is(err, errors.IndexOutOfRangeError))
			_, err = tree.Leaf(-1)
			assert.True(t, errors.Is(err, errors.IndexOutOfRangeError))
		},
	)
}

func TestTreeBinary(t *testing.T) {
	tree, err := merkle.NewBuilder(nil).BuildInterleaved(0, "x", 3, "y")
	require.NoError(t, err)

	bs, err := tree.MarshalBinary()
	require.NoError(t, err)
	assert.Contains(t, string(bs), `"root":"`+xyRoot+`"`)

	got := new(merkle.Tree)
	require.NoError(t, got.UnmarshalBinary(bs))
	assert.Equal(t, tree.Root(), got.Root())
	assert.Equal(t, tree.Leaves(), got.Leaves())

	t.Run(
		"Should reject a tree with the wrong shape", func(t *testing.T) {
			err := new(merkle.Tree).UnmarshalBinary([]byte(`{"root":"` + xyRoot + `","levels":[]}`))
			assert.True(t, errors.Is(err, errors.InvalidDataErr))
		},
	)
	t.Run(
		"Should restore through UnmarshalTree", func(t *testing.T) {
			restored, err := merkle.UnmarshalTree(bs)
			require.NoError(t, err)
			assert.Equal(t, tree.Root(), restored.Root())

			_, err = merkle.UnmarshalTree([]byte(`{}`))
			assert.True(t, errors.Is(err, errors.InvalidDataErr))
		},
	)

	t.Run(
		"Should refuse to overwrite a populated tree", func(t *testing.T) {
			other, err := merkle.NewBuilder(nil).BuildInterleaved(1, "zzz")
			require.NoError(t, err)
			otherBytes, err := other.MarshalBinary()
			require.NoError(t, err)

			assert.ErrorIs(t, tree.UnmarshalBinary(otherBytes), errors.ErrTreePopulated)
			assert.Equal(t, xyRoot, tree.Root().Hex())
		},
	)
}

func TestZeroTree(t *testing.T) {
	var tree merkle.Tree

	assert.Equal(t, merkle.Hash{}, tree.Root())
	assert.Nil(t, tree.Leaves())

	_, err := tree.Leaf(0)
	assert.ErrorIs(t, err, errors.ErrEmptyTree)
	_, err = tree.Proof(0)
	assert.ErrorIs(t, err, errors.ErrEmptyTree)
	_, err = tree.MarshalBinary()
	assert.ErrorIs(t, err, errors.ErrEmptyTree)
	_, err = tree.Proof(merkle.Capacity)
	assert.True(t, errors.Is(err, errors.IndexOutOfRangeError))
}
