package ndarray

import (
	"encoding/binary"
	"math"

	"github.com/wippyai/ndkit/dtype"
)

// loadFloat64 decodes one numeric element as float64, reversing bytes
// first when the dtype is marked swapped.
func loadFloat64(buf []byte, dt *dtype.DType) float64 {
	u := dtype.LoadUint(buf, dt.Size, dt.Swapped)
	switch dt.Kind {
	case dtype.KindBool, dtype.KindUint8, dtype.KindUint16, dtype.KindUint32, dtype.KindUint64:
		return float64(u)
	case dtype.KindInt8:
		return float64(int8(u))
	case dtype.KindInt16:
		return float64(int16(u))
	case dtype.KindInt32:
		return float64(int32(u))
	case dtype.KindInt64:
		return float64(int64(u))
	case dtype.KindFloat32:
		return float64(math.Float32frombits(uint32(u)))
	case dtype.KindFloat64:
		return math.Float64frombits(u)
	}
	return 0
}

// storeFloat64 encodes a float64 into one numeric element in native
// order, then reverses bytes when the dtype is marked swapped.
func storeFloat64(buf []byte, dt *dtype.DType, v float64) {
	var u uint64
	switch dt.Kind {
	case dtype.KindBool:
		if v != 0 {
			u = 1
		}
	case dtype.KindInt8, dtype.KindInt16, dtype.KindInt32, dtype.KindInt64:
		u = uint64(int64(v))
	case dtype.KindUint8, dtype.KindUint16, dtype.KindUint32, dtype.KindUint64:
		u = uint64(v)
	case dtype.KindFloat32:
		u = uint64(math.Float32bits(float32(v)))
	case dtype.KindFloat64:
		u = math.Float64bits(v)
	}
	switch dt.Size {
	case 1:
		buf[0] = byte(u)
	case 2:
		binary.LittleEndian.PutUint16(buf, uint16(u))
	case 4:
		binary.LittleEndian.PutUint32(buf, uint32(u))
	case 8:
		binary.LittleEndian.PutUint64(buf, u)
	}
	if dt.Swapped {
		reverse(buf[:dt.Size])
	}
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
