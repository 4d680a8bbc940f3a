// Package helpers holds small utilities shared by exchange tests and tooling.
package helpers

import (
	"encoding/hex"
	"strings"
)

// ToHex returns the 0x prefixed hex encoding of b.
func ToHex(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

// NormalizeHex prefixes s with 0x unless it already is.
func NormalizeHex(s string) string {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return "0x" + s[2:]
	}
	return "0x" + s
}

// CountDuplicates counts how often every value occurs in values.
func CountDuplicates[T comparable](values []T) map[T]int {
	counts := make(map[T]int, len(values))
	for _, v := range values {
		counts[v]++
	}
	return counts
}

// PartitionArray splits input into consecutive chunks of size elements. The last chunk may be shorter.
// A size below one yields no chunks. Chunks share memory with input but are capped, so appending
// to one never writes into the next.
func PartitionArray[T any](input []T, size int) [][]T {
	if size < 1 {
		return nil
	}
	output := make([][]T, 0, len(input)/size+1)
	for i := 0; i < len(input); {
		j := len(input)
		if size < j-i {
			j = i + size
		}
		output = append(output, input[i:j:j])
		i = j
	}
	return output
}
