package ndarray

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/wippyai/ndkit/dtype"
)

// FormatOptions bounds the rendered size of an array.
type FormatOptions struct {
	// Threshold is the element count above which a dimension is
	// summarized with an ellipsis.
	Threshold int
	// EdgeItems is how many leading and trailing items each summarized
	// dimension keeps.
	EdgeItems int
}

// DefaultFormatOptions mirror the usual interactive defaults.
var DefaultFormatOptions = FormatOptions{
	Threshold: 1000,
	EdgeItems: 3,
}

// String renders the array with DefaultFormatOptions.
func (a *Array) String() string {
	return Format(a, DefaultFormatOptions)
}

// Format renders the array as nested bracketed rows, summarizing
// oversized dimensions with "...".
func Format(a *Array, opts FormatOptions) string {
	if a == nil {
		return "<nil>"
	}
	if opts.EdgeItems <= 0 {
		opts.EdgeItems = DefaultFormatOptions.EdgeItems
	}
	summarize := opts.Threshold > 0 && a.Size() > opts.Threshold

	var b strings.Builder
	idx := make([]int, 0, len(a.shape))
	formatDim(&b, a, idx, summarize, opts.EdgeItems)
	return b.String()
}

func formatDim(b *strings.Builder, a *Array, idx []int, summarize bool, edge int) {
	if len(idx) == len(a.shape) {
		off := 0
		for i, j := range idx {
			off += j * a.strides[i]
		}
		b.WriteString(formatElem(a.data[off:off+a.dt.Size], a.dt))
		return
	}

	dim := a.shape[len(idx)]
	sep := ", "
	if len(idx) < len(a.shape)-1 {
		sep = ",\n" + strings.Repeat(" ", len(idx)+1)
	}

	b.WriteByte('[')
	if summarize && dim > 2*edge {
		for i := 0; i < edge; i++ {
			if i > 0 {
				b.WriteString(sep)
			}
			formatDim(b, a, append(idx, i), summarize, edge)
		}
		b.WriteString(sep)
		b.WriteString("...")
		for i := dim - edge; i < dim; i++ {
			b.WriteString(sep)
			formatDim(b, a, append(idx, i), summarize, edge)
		}
	} else {
		for i := 0; i < dim; i++ {
			if i > 0 {
				b.WriteString(sep)
			}
			formatDim(b, a, append(idx, i), summarize, edge)
		}
	}
	b.WriteByte(']')
}

func formatElem(buf []byte, dt *dtype.DType) string {
	switch dt.Kind {
	case dtype.KindBool:
		if buf[0] != 0 {
			return "true"
		}
		return "false"
	case dtype.KindString:
		trimmed := bytes.TrimRight(buf[:dt.Size], string([]byte{dt.PadByte}))
		return strconv.Quote(string(trimmed))
	case dtype.KindRecord:
		var b strings.Builder
		b.WriteByte('(')
		for i, f := range dt.Fields {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(formatElem(buf[f.Offset:f.Offset+f.Type.Size], f.Type))
		}
		b.WriteByte(')')
		return b.String()
	case dtype.KindFloat32, dtype.KindFloat64:
		return strconv.FormatFloat(loadFloat64(buf, dt), 'g', -1, 64)
	case dtype.KindInt8, dtype.KindInt16, dtype.KindInt32, dtype.KindInt64:
		u := dtype.LoadUint(buf, dt.Size, dt.Swapped)
		return formatSigned(u, dt.Size)
	default:
		return strconv.FormatUint(dtype.LoadUint(buf, dt.Size, dt.Swapped), 10)
	}
}

func formatSigned(u uint64, width int) string {
	var v int64
	switch width {
	case 1:
		v = int64(int8(u))
	case 2:
		v = int64(int16(u))
	case 4:
		v = int64(int32(u))
	default:
		v = int64(u)
	}
	return fmt.Sprintf("%d", v)
}
