package merkle

import (
	"github.com/dora-network/batch-exchange-utils/errors"
)

const (
	// Height is the number of levels above the leaves. It never depends on the input.
	Height = 7
	// Capacity is the number of leaf slots of every tree.
	Capacity = 1 << Height
)

// EmptyLeaf is the payload of every slot that is not populated.
var EmptyLeaf = []byte{0x00}

// Builder builds fixed capacity commitment trees over sparse leaves.
type Builder struct {
	hasher Hasher
	empty  Hash
}

// NewBuilder returns a Builder hashing with hasher. A nil hasher selects SHA256.
func NewBuilder(hasher Hasher) *Builder {
	if hasher == nil {
		hasher = SHA256
	}
	return &Builder{
		hasher: hasher,
		empty:  hasher.Sum(EmptyLeaf),
	}
}

// Hasher returns the hashing primitive of the builder.
func (b *Builder) Hasher() Hasher {
	return b.hasher
}

// EmptyLeafHash is the hash stored in every unpopulated slot.
func (b *Builder) EmptyLeafHash() Hash {
	return b.empty
}

// Build hashes every leaf value once into its slot and builds the tree bottom up.
// Leaves are applied in order, so a later leaf replaces an earlier one with the same index.
func (b *Builder) Build(leaves ...Leaf) (*Tree, error) {
	for _, l := range leaves {
		if l.Index < 0 || l.Index >= Capacity {
			return nil, errors.OutOfRange(l.Index, Capacity)
		}
	}

	slots := make([]Hash, Capacity)
	for i := range slots {
		slots[i] = b.empty
	}
	for _, l := range leaves {
		slots[l.Index] = b.hasher.Sum(l.Value)
	}

	t := &Tree{}
	t.levels[0] = slots
	for h := 1; h <= Height; h++ {
		below := t.levels[h-1]
		level := make([]Hash, len(below)/2)
		for i := range level {
			level[i] = hashPair(b.hasher, below[2*i], below[2*i+1])
		}
		t.levels[h] = level
	}
	return t, nil
}

// BuildInterleaved builds a tree from a flat index, value, index, value... list.
func (b *Builder) BuildInterleaved(args ...any) (*Tree, error) {
	leaves, err := Interleaved(args...)
	if err != nil {
		return nil, err
	}
	return b.Build(leaves...)
}
