package memo

import (
	"encoding/binary"
	"strings"

	"github.com/dora-network/batch-exchange-utils/merkle"
)

// Key derives the cache key of a leaf sequence. Two sequences share a key only if they have
// the same length and are element-wise equal in the same order. Values are length prefixed,
// so no two distinct sequences collide.
func Key(leaves []merkle.Leaf) string {
	var sb strings.Builder
	var buf [8]byte

	binary.BigEndian.PutUint64(buf[:], uint64(len(leaves)))
	sb.Write(buf[:])
	for _, l := range leaves {
		binary.BigEndian.PutUint64(buf[:], uint64(int64(l.Index)))
		sb.Write(buf[:])
		binary.BigEndian.PutUint64(buf[:], uint64(len(l.Value)))
		sb.Write(buf[:])
		sb.Write(l.Value)
	}
	return sb.String()
}
