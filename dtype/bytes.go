package dtype

import "encoding/binary"

// LoadUint reads a little-endian (native) value of the given width,
// reversing the bytes first when swap is set. Widths other than 2, 4
// and 8 read a single byte.
func LoadUint(buf []byte, width int, swap bool) uint64 {
	if swap {
		var tmp [8]byte
		for i := 0; i < width; i++ {
			tmp[i] = buf[width-1-i]
		}
		buf = tmp[:width]
	}
	switch width {
	case 2:
		return uint64(binary.LittleEndian.Uint16(buf))
	case 4:
		return uint64(binary.LittleEndian.Uint32(buf))
	case 8:
		return binary.LittleEndian.Uint64(buf)
	default:
		return uint64(buf[0])
	}
}
