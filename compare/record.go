package compare

import (
	"bytes"
	"math"

	"github.com/wippyai/ndkit/dtype"
)

// Compare orders two record buffers under the given sort order: a strict
// lexicographic multi-key comparison where field 0 is the primary key
// and each later field breaks ties on the ones before it. A field whose
// flag is descending contributes its reversed ordering; a field flagged
// byteswap has its bytes reversed before its native comparison.
//
// With zero fields every pair compares Equal. Overlapping field ranges
// are compared independently per field.
func Compare(a, b []byte, so *SortOrder) Ordering {
	for i := range so.flags {
		dt := so.descrs[i]
		off := so.offsets[i]

		ord := Elem(a[off:off+dt.Size], b[off:off+dt.Size], dt, so.flags[i].Byteswap())
		if ord == Equal {
			continue
		}
		if so.flags[i].Descending() {
			return ord.Reverse()
		}
		return ord
	}
	return Equal
}

// Elem orders two single elements of the given dtype, reversing their
// bytes first when swap is set. Numeric kinds use native ordinal
// comparison, string kinds bytewise lexicographic comparison honoring
// the dtype's rstrip policy, record kinds field-by-field ascending.
func Elem(a, b []byte, dt *dtype.DType, swap bool) Ordering {
	switch dt.Kind {
	case dtype.KindRecord:
		for _, f := range dt.Fields {
			// double correction cancels out
			fswap := swap != f.Type.Swapped
			ord := Elem(a[f.Offset:f.Offset+f.Type.Size], b[f.Offset:f.Offset+f.Type.Size], f.Type, fswap)
			if ord != Equal {
				return ord
			}
		}
		return Equal

	case dtype.KindString:
		return CompareStringsPad(a, b, dt.Size, dt.RstripEq, dt.PadByte)

	case dtype.KindBool, dtype.KindUint8:
		return orderUint64(uint64(a[0]), uint64(b[0]))
	case dtype.KindInt8:
		return orderInt64(int64(int8(a[0])), int64(int8(b[0])))

	default:
		av := dtype.LoadUint(a, dt.Size, swap)
		bv := dtype.LoadUint(b, dt.Size, swap)
		switch dt.Kind {
		case dtype.KindUint16, dtype.KindUint32, dtype.KindUint64:
			return orderUint64(av, bv)
		case dtype.KindInt16:
			return orderInt64(int64(int16(av)), int64(int16(bv)))
		case dtype.KindInt32:
			return orderInt64(int64(int32(av)), int64(int32(bv)))
		case dtype.KindInt64:
			return orderInt64(int64(av), int64(bv))
		case dtype.KindFloat32:
			return orderFloat64(float64(math.Float32frombits(uint32(av))), float64(math.Float32frombits(uint32(bv))))
		case dtype.KindFloat64:
			return orderFloat64(math.Float64frombits(av), math.Float64frombits(bv))
		}
		// unknown kinds fall back to raw bytes
		return Ordering(bytes.Compare(a[:dt.Size], b[:dt.Size]))
	}
}

func orderUint64(a, b uint64) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}

func orderInt64(a, b int64) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}

// orderFloat64 sorts NaN after every ordered value so that the record
// comparator stays a total order.
func orderFloat64(a, b float64) Ordering {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return Equal
	case aNaN:
		return Greater
	case bNaN:
		return Less
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}
