package merkle

import (
	"math"

	"github.com/dora-network/batch-exchange-utils/errors"
)

// Leaf places Value at slot Index of the tree.
type Leaf struct {
	Index int
	Value []byte
}

// Interleaved converts a flat index, value, index, value... list into leaves.
// Indices may be any integer type; values may be []byte, Hash or string.
func Interleaved(args ...any) ([]Leaf, error) {
	if len(args)%2 != 0 {
		return nil, errors.Newf(errors.OddPairCountError, "%d arguments: %s", len(args), errors.ErrOddPairCount)
	}
	leaves := make([]Leaf, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		index, err := toIndex(args[i])
		if err != nil {
			return nil, err
		}
		value, err := toValue(args[i+1])
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, Leaf{Index: index, Value: value})
	}
	return leaves, nil
}

func toIndex(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int8:
		return int(n), nil
	case int16:
		return int(n), nil
	case int32:
		return int(n), nil
	case int64:
		if n < math.MinInt || n > math.MaxInt {
			return 0, errors.OutOfRange(-1, Capacity)
		}
		return int(n), nil
	case uint:
		return fromUint64(uint64(n))
	case uint8:
		return int(n), nil
	case uint16:
		return int(n), nil
	case uint32:
		return fromUint64(uint64(n))
	case uint64:
		return fromUint64(n)
	default:
		return 0, errors.Newf(errors.InvalidInputError, "leaf index must be an integer, got %T", v)
	}
}

func fromUint64(n uint64) (int, error) {
	if n > math.MaxInt {
		return 0, errors.OutOfRange(-1, Capacity)
	}
	return int(n), nil
}

func toValue(v any) ([]byte, error) {
	switch b := v.(type) {
	case []byte:
		return b, nil
	case Hash:
		return b[:], nil
	case string:
		return []byte(b), nil
	default:
		return nil, errors.Newf(errors.InvalidInputError, "leaf value must be []byte, Hash or string, got %T", v)
	}
}
