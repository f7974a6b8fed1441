package ndarray

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/wippyai/ndkit/dtype"
	"github.com/wippyai/ndkit/errors"
)

// Array is a homogeneous n-dimensional array over a flat byte buffer.
// Strides are in bytes. A view shares its base's buffer; readonly views
// reject writes, provisional views warn once before the first write.
type Array struct {
	data        []byte
	dt          *dtype.DType
	base        *Array
	shape       []int
	strides     []int
	readonly    bool
	provisional bool
}

// New allocates a zeroed C-contiguous array. No shape produces a 0-d
// (scalar) array holding one element.
func New(dt *dtype.DType, shape ...int) (*Array, error) {
	if dt == nil {
		return nil, errors.InvalidInput(errors.PhaseConstruct, "nil dtype")
	}
	n := 1
	for _, s := range shape {
		if s < 0 {
			return nil, errors.InvalidInput(errors.PhaseConstruct, fmt.Sprintf("negative dimension %d", s))
		}
		n *= s
	}
	return &Array{
		data:    make([]byte, n*dt.Size),
		dt:      dt,
		shape:   append([]int(nil), shape...),
		strides: contiguousStrides(shape, dt.Size),
	}, nil
}

// FromBytes wraps an existing element buffer without copying. The buffer
// length must match the shape's element count times the dtype itemsize.
func FromBytes(dt *dtype.DType, data []byte, shape ...int) (*Array, error) {
	if dt == nil {
		return nil, errors.InvalidInput(errors.PhaseConstruct, "nil dtype")
	}
	n := 1
	for _, s := range shape {
		if s < 0 {
			return nil, errors.InvalidInput(errors.PhaseConstruct, fmt.Sprintf("negative dimension %d", s))
		}
		n *= s
	}
	if len(data) != n*dt.Size {
		return nil, errors.New(errors.PhaseConstruct, errors.KindInvalidData).
			Detail("buffer is %d bytes, shape %v of %s needs %d", len(data), shape, dt.Name(), n*dt.Size).
			Build()
	}
	return &Array{
		data:    data,
		dt:      dt,
		shape:   append([]int(nil), shape...),
		strides: contiguousStrides(shape, dt.Size),
	}, nil
}

// FromFloat64s builds a float64 array from values in C order.
func FromFloat64s(vals []float64, shape ...int) (*Array, error) {
	buf := make([]byte, len(vals)*8)
	for i, v := range vals {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}
	return FromBytes(dtype.Float64(), buf, shape...)
}

// FromInt64s builds an int64 array from values in C order.
func FromInt64s(vals []int64, shape ...int) (*Array, error) {
	buf := make([]byte, len(vals)*8)
	for i, v := range vals {
		binary.LittleEndian.PutUint64(buf[i*8:], uint64(v))
	}
	return FromBytes(dtype.Int64(), buf, shape...)
}

// FromStrings builds a fixed-width string array, right-padding each
// value with the pad byte. Values longer than width are rejected.
func FromStrings(width int, vals []string, shape ...int) (*Array, error) {
	sdt, err := dtype.String(width)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, len(vals)*width)
	for i, v := range vals {
		if len(v) > width {
			return nil, errors.New(errors.PhaseConstruct, errors.KindInvalidData).
				Detail("value %q exceeds string width %d", v, width).
				Build()
		}
		copy(buf[i*width:(i+1)*width], v)
	}
	return FromBytes(sdt, buf, shape...)
}

func contiguousStrides(shape []int, itemsize int) []int {
	strides := make([]int, len(shape))
	acc := itemsize
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= shape[i]
	}
	return strides
}

// DType returns the element type descriptor.
func (a *Array) DType() *dtype.DType { return a.dt }

// Shape returns a copy of the array's shape.
func (a *Array) Shape() []int { return append([]int(nil), a.shape...) }

// Strides returns a copy of the array's byte strides.
func (a *Array) Strides() []int { return append([]int(nil), a.strides...) }

// NumDims returns the number of dimensions.
func (a *Array) NumDims() int { return len(a.shape) }

// Size returns the total element count.
func (a *Array) Size() int {
	n := 1
	for _, s := range a.shape {
		n *= s
	}
	return n
}

// Base returns the array this view shares bytes with, or nil.
func (a *Array) Base() *Array { return a.base }

// ReadOnly reports whether writes are rejected.
func (a *Array) ReadOnly() bool { return a.readonly }

func (a *Array) offsetOf(idx []int) (int, error) {
	if len(idx) != len(a.shape) {
		return 0, errors.InvalidInput(errors.PhaseConstruct,
			fmt.Sprintf("index has %d dims, array has %d", len(idx), len(a.shape)))
	}
	off := 0
	for i, j := range idx {
		if j < 0 || j >= a.shape[i] {
			return 0, errors.OutOfBounds(errors.PhaseConstruct, nil, j, a.shape[i])
		}
		off += j * a.strides[i]
	}
	return off, nil
}

// ElemBytes returns the raw bytes of one element. The slice aliases the
// array's buffer.
func (a *Array) ElemBytes(idx ...int) ([]byte, error) {
	off, err := a.offsetOf(idx)
	if err != nil {
		return nil, err
	}
	return a.data[off : off+a.dt.Size], nil
}

// SetBytes overwrites one element with raw bytes. This is a mutating
// operation: it checks writability and fires the provisional-view
// warning protocol first.
func (a *Array) SetBytes(p []byte, idx ...int) error {
	if a.readonly {
		return errors.ReadOnly("array is read-only")
	}
	if len(p) != a.dt.Size {
		return errors.InvalidInput(errors.PhaseConstruct,
			fmt.Sprintf("element is %d bytes, dtype %s needs %d", len(p), a.dt.Name(), a.dt.Size))
	}
	off, err := a.offsetOf(idx)
	if err != nil {
		return err
	}
	a.MightBeWritten()
	copy(a.data[off:off+a.dt.Size], p)
	return nil
}

// SetFloat64 writes a numeric element, encoding per the array's dtype.
func (a *Array) SetFloat64(v float64, idx ...int) error {
	if !a.dt.Kind.IsNumeric() {
		return errors.TypeMismatch(errors.PhaseConstruct, nil, a.dt.Name(), "numeric")
	}
	buf := make([]byte, a.dt.Size)
	storeFloat64(buf, a.dt, v)
	return a.SetBytes(buf, idx...)
}

// Float64At reads a numeric element as float64, honoring the dtype's
// stored byte order.
func (a *Array) Float64At(idx ...int) (float64, error) {
	if !a.dt.Kind.IsNumeric() {
		return 0, errors.TypeMismatch(errors.PhaseCompare, nil, a.dt.Name(), "numeric")
	}
	buf, err := a.ElemBytes(idx...)
	if err != nil {
		return 0, err
	}
	return loadFloat64(buf, a.dt), nil
}

// BoolAt reads one element of a bool array.
func (a *Array) BoolAt(idx ...int) (bool, error) {
	if a.dt.Kind != dtype.KindBool {
		return false, errors.TypeMismatch(errors.PhaseCompare, nil, a.dt.Name(), "bool")
	}
	buf, err := a.ElemBytes(idx...)
	if err != nil {
		return false, err
	}
	return buf[0] != 0, nil
}

// Bools flattens a bool array to a slice in C order.
func (a *Array) Bools() ([]bool, error) {
	if a.dt.Kind != dtype.KindBool {
		return nil, errors.TypeMismatch(errors.PhaseCompare, nil, a.dt.Name(), "bool")
	}
	out := make([]bool, a.Size())
	idx := make([]int, len(a.shape))
	for lin := range out {
		off := 0
		for i, j := range idx {
			off += j * a.strides[i]
		}
		out[lin] = a.data[off] != 0
		increment(idx, a.shape)
	}
	return out, nil
}

// Diagonal returns the main diagonal of a 2-d array as a bytes-sharing
// view. The view is provisional: the first write to it warns, since
// these views are slated to become deep copies.
func Diagonal(a *Array) (*Array, error) {
	if len(a.shape) != 2 {
		return nil, errors.InvalidInput(errors.PhaseConstruct,
			fmt.Sprintf("diagonal needs a 2-d array, got %d-d", len(a.shape)))
	}
	n := a.shape[0]
	if a.shape[1] < n {
		n = a.shape[1]
	}
	return &Array{
		data:        a.data,
		dt:          a.dt,
		base:        a,
		shape:       []int{n},
		strides:     []int{a.strides[0] + a.strides[1]},
		provisional: true,
	}, nil
}

// increment advances a multi-index odometer in C order.
func increment(idx, shape []int) {
	for i := len(idx) - 1; i >= 0; i-- {
		idx[i]++
		if idx[i] < shape[i] {
			return
		}
		idx[i] = 0
	}
}
