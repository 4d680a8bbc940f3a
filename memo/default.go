package memo

import (
	"sync"

	"github.com/dora-network/batch-exchange-utils/merkle"
)

var (
	defaultOnce sync.Once
	defaultMemo *Memoizer
)

// Default returns the process wide memoized SHA256 builder. It is created on first use and
// lives until the process exits.
func Default() *Memoizer {
	defaultOnce.Do(func() {
		defaultMemo = New(merkle.NewBuilder(merkle.SHA256))
	})
	return defaultMemo
}

// GenerateMerkleTree builds, or returns the cached, tree for a flat index, value, index, value... list.
func GenerateMerkleTree(args ...any) (*merkle.Tree, error) {
	return Default().BuildInterleaved(args...)
}

// ResetDefault empties the process wide cache. Meant for test isolation.
func ResetDefault() {
	Default().Reset()
}
