package compare

import "bytes"

// CompareStrings orders two fixed-width string buffers of the same
// declared length. No null terminator is assumed: without rstrip the
// comparison examines exactly length bytes. With rstrip, a trailing run
// of the pad byte (0x00) in either buffer does not contribute to the
// ordering, so "ab\x00\x00" and "ab" padded to length 4 compare Equal.
func CompareStrings(a, b []byte, length int, rstrip bool) Ordering {
	return CompareStringsPad(a, b, length, rstrip, 0x00)
}

// CompareStringsPad is CompareStrings with an explicit pad byte.
func CompareStringsPad(a, b []byte, length int, rstrip bool, pad byte) Ordering {
	a = a[:length]
	b = b[:length]

	if !rstrip {
		return Ordering(bytes.Compare(a, b))
	}

	ea := effectiveLen(a, pad)
	eb := effectiveLen(b, pad)

	n := ea
	if eb < n {
		n = eb
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return Less
			}
			return Greater
		}
	}
	switch {
	case ea < eb:
		return Less
	case ea > eb:
		return Greater
	default:
		return Equal
	}
}

// effectiveLen is the buffer length with the trailing pad run trimmed.
func effectiveLen(buf []byte, pad byte) int {
	n := len(buf)
	for n > 0 && buf[n-1] == pad {
		n--
	}
	return n
}
