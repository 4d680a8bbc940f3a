package merkle

import (
	"github.com/goccy/go-json"

	"github.com/dora-network/batch-exchange-utils/errors"
)

// Tree is a complete binary tree of Capacity leaves. levels[0] holds the leaf hashes,
// levels[Height] the root. A tree is immutable once built or unmarshalled, so one value can be
// shared between callers.
type Tree struct {
	levels [Height + 1][]Hash
}

func (t *Tree) empty() bool {
	return len(t.levels[Height]) == 0
}

// Root is the commitment to every leaf of the tree. The zero Tree has the zero root.
func (t *Tree) Root() Hash {
	if t.empty() {
		return Hash{}
	}
	return t.levels[Height][0]
}

// Leaf returns the hash stored in slot i.
func (t *Tree) Leaf(i int) (Hash, error) {
	if i < 0 || i >= Capacity {
		return Hash{}, errors.OutOfRange(i, Capacity)
	}
	if t.empty() {
		return Hash{}, errors.ErrEmptyTree
	}
	return t.levels[0][i], nil
}

// Leaves returns a copy of the leaf level.
func (t *Tree) Leaves() []Hash {
	return t.Level(0)
}

// Level returns a copy of the nodes at height h, 0 being the leaves. It returns nil for unknown heights.
func (t *Tree) Level(h int) []Hash {
	if h < 0 || h > Height {
		return nil
	}
	return append([]Hash(nil), t.levels[h]...)
}

// Proof returns the sibling hashes on the path from leaf i to the root, lowest first.
func (t *Tree) Proof(i int) ([]Hash, error) {
	if i < 0 || i >= Capacity {
		return nil, errors.OutOfRange(i, Capacity)
	}
	if t.empty() {
		return nil, errors.ErrEmptyTree
	}
	proof := make([]Hash, 0, Height)
	for h := 0; h < Height; h++ {
		proof = append(proof, t.levels[h][i^1])
		i >>= 1
	}
	return proof, nil
}

// VerifyProof recomputes the root from leafHash at index and the sibling path proof.
func VerifyProof(hasher Hasher, root, leafHash Hash, index int, proof []Hash) bool {
	if index < 0 || index >= Capacity || len(proof) != Height {
		return false
	}
	node := leafHash
	for _, sibling := range proof {
		if index&1 == 0 {
			node = hashPair(hasher, node, sibling)
		} else {
			node = hashPair(hasher, sibling, node)
		}
		index >>= 1
	}
	return node == root
}

type jsonTree struct {
	Root   Hash     `json:"root"`
	Levels [][]Hash `json:"levels"`
}

func (t *Tree) MarshalBinary() ([]byte, error) {
	if t.empty() {
		return nil, errors.ErrEmptyTree
	}
	return json.Marshal(jsonTree{Root: t.Root(), Levels: t.levels[:]})
}

// UnmarshalTree restores a tree written by MarshalBinary.
func UnmarshalTree(data []byte) (*Tree, error) {
	t := new(Tree)
	if err := t.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return t, nil
}

// UnmarshalBinary restores a tree written by MarshalBinary into the zero Tree. Node hashes are
// not recomputed, only the shape of the tree and the root are checked. A populated tree is
// never overwritten.
func (t *Tree) UnmarshalBinary(data []byte) error {
	if !t.empty() {
		return errors.ErrTreePopulated
	}
	var j jsonTree
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	if len(j.Levels) != Height+1 {
		return errors.Data("tree must have %d levels, got %d", Height+1, len(j.Levels))
	}
	for h, level := range j.Levels {
		if want := Capacity >> h; len(level) != want {
			return errors.Data("tree level %d must have %d nodes, got %d", h, want, len(level))
		}
	}
	if j.Levels[Height][0] != j.Root {
		return errors.Data("tree root %s does not match its top level", j.Root)
	}
	copy(t.levels[:], j.Levels)
	return nil
}
