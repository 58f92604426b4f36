package tag

import (
	"math"
	"slices"
)

// Equal reports whether a and b are structurally identical.
//
// Floats compare by bit pattern, so NaN payloads survive a round trip check.
// Compound member order is not significant; list element order is.
func Equal(a, b Tag) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() {
		return false
	}

	switch av := a.(type) {
	case End:
		return true
	case Byte:
		return av == b.(Byte)
	case Short:
		return av == b.(Short)
	case Int:
		return av == b.(Int)
	case Long:
		return av == b.(Long)
	case Float:
		return math.Float32bits(float32(av)) == math.Float32bits(float32(b.(Float)))
	case Double:
		return math.Float64bits(float64(av)) == math.Float64bits(float64(b.(Double)))
	case ByteArray:
		return slices.Equal(av, b.(ByteArray))
	case String:
		return av == b.(String)
	case IntArray:
		return slices.Equal(av, b.(IntArray))
	case LongArray:
		return slices.Equal(av, b.(LongArray))
	case ShortArray:
		return slices.Equal(av, b.(ShortArray))
	case *List:
		bv := b.(*List)
		if av.elemType != bv.elemType || len(av.items) != len(bv.items) {
			return false
		}
		for i := range av.items {
			if !Equal(av.items[i], bv.items[i]) {
				return false
			}
		}

		return true
	case *Compound:
		bv := b.(*Compound)
		if av.Len() != bv.Len() {
			return false
		}
		for _, m := range av.members {
			other, ok := bv.Get(m.name)
			if !ok || !Equal(m.tag, other) {
				return false
			}
		}

		return true
	default:
		return false
	}
}
