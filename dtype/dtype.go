package dtype

import (
	"fmt"

	"github.com/wippyai/ndkit/errors"
)

// DType describes the element type of an array: its kind, byte width,
// stored byte order, and, for record dtypes, the named sub-fields.
//
// DType values are immutable after construction and safe for concurrent
// read-only use. Comparators hold them as borrowed references; nothing
// in this library extends their lifetime.
type DType struct {
	Fields  []Field
	Size    int
	Kind    Kind
	Swapped bool // stored byte order differs from native
	PadByte byte // trailing fill for fixed-width strings

	// RstripEq is the dtype's comparison policy for fixed-width strings:
	// when set, equality-style comparisons ignore trailing pad bytes.
	RstripEq bool
}

// Field is one named sub-element of a record dtype. The offset locates
// the sub-element inside the record's byte buffer; fields may overlap.
type Field struct {
	Type   *DType
	Name   string
	Offset int
}

var (
	boolType    = &DType{Kind: KindBool, Size: 1}
	int8Type    = &DType{Kind: KindInt8, Size: 1}
	int16Type   = &DType{Kind: KindInt16, Size: 2}
	int32Type   = &DType{Kind: KindInt32, Size: 4}
	int64Type   = &DType{Kind: KindInt64, Size: 8}
	uint8Type   = &DType{Kind: KindUint8, Size: 1}
	uint16Type  = &DType{Kind: KindUint16, Size: 2}
	uint32Type  = &DType{Kind: KindUint32, Size: 4}
	uint64Type  = &DType{Kind: KindUint64, Size: 8}
	float32Type = &DType{Kind: KindFloat32, Size: 4}
	float64Type = &DType{Kind: KindFloat64, Size: 8}
)

func Bool() *DType    { return boolType }
func Int8() *DType    { return int8Type }
func Int16() *DType   { return int16Type }
func Int32() *DType   { return int32Type }
func Int64() *DType   { return int64Type }
func Uint8() *DType   { return uint8Type }
func Uint16() *DType  { return uint16Type }
func Uint32() *DType  { return uint32Type }
func Uint64() *DType  { return uint64Type }
func Float32() *DType { return float32Type }
func Float64() *DType { return float64Type }

// String returns a fixed-width byte string dtype of the given length.
// Comparison always examines exactly length bytes; no null terminator is
// assumed. The trailing fill byte is 0x00 and equality-style comparisons
// strip it by default.
func String(length int) (*DType, error) {
	if length < 0 {
		return nil, errors.InvalidInput(errors.PhaseConstruct, fmt.Sprintf("string length %d is negative", length))
	}
	return &DType{Kind: KindString, Size: length, RstripEq: true}, nil
}

// FieldSpec names one field of a record dtype under construction.
type FieldSpec struct {
	Type *DType
	Name string
}

// Record builds a record dtype from the given field specs, computing
// field offsets with natural alignment via the layout calculator.
func Record(specs ...FieldSpec) (*DType, error) {
	calc := NewCalculator()
	return calc.Record(specs...)
}

// RecordAt builds a record dtype from explicit field offsets and a total
// itemsize. Overlapping fields are legal; offsets beyond the itemsize
// are not.
func RecordAt(size int, fields ...Field) (*DType, error) {
	if size < 0 {
		return nil, errors.InvalidInput(errors.PhaseConstruct, fmt.Sprintf("itemsize %d is negative", size))
	}
	for _, f := range fields {
		if f.Type == nil {
			return nil, errors.InvalidData(errors.PhaseConstruct, []string{f.Name}, "nil field dtype")
		}
		if f.Offset < 0 || f.Offset+f.Type.Size > size {
			return nil, errors.New(errors.PhaseConstruct, errors.KindOutOfBounds).
				Path(f.Name).
				Detail("field at offset %d width %d exceeds itemsize %d", f.Offset, f.Type.Size, size).
				Build()
		}
	}
	return &DType{Kind: KindRecord, Size: size, Fields: fields}, nil
}

// WithSwapped returns a copy of the dtype whose stored byte order is
// marked as differing from native. Record fields keep their own order
// marks; the record-level mark is advisory only.
func (d *DType) WithSwapped() *DType {
	c := *d
	c.Swapped = true
	return &c
}

// WithRstrip returns a copy of a string dtype with the given rstrip
// comparison policy.
func (d *DType) WithRstrip(rstrip bool) *DType {
	c := *d
	c.RstripEq = rstrip
	return &c
}

// WithPad returns a copy of a string dtype with the given trailing fill
// byte, for data padded with something other than 0x00 (space-padded
// fixed-width fields, typically).
func (d *DType) WithPad(pad byte) *DType {
	c := *d
	c.PadByte = pad
	return &c
}

// NumFields returns the number of record fields, 0 for scalar dtypes.
func (d *DType) NumFields() int {
	return len(d.Fields)
}

// Name returns a short printable name: "int32", "S8", "record[3]".
func (d *DType) Name() string {
	switch d.Kind {
	case KindString:
		return fmt.Sprintf("S%d", d.Size)
	case KindRecord:
		return fmt.Sprintf("record[%d]", len(d.Fields))
	default:
		return d.Kind.String()
	}
}

// LayoutEqual reports whether two dtypes have interchangeable layouts:
// same kind and width, and for records the same field count with
// layout-equal fields at identical offsets. Field names do not matter;
// the byte layout does.
func LayoutEqual(a, b *DType) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind != b.Kind || a.Size != b.Size {
		return false
	}
	if len(a.Fields) != len(b.Fields) {
		return false
	}
	for i := range a.Fields {
		if a.Fields[i].Offset != b.Fields[i].Offset {
			return false
		}
		if !LayoutEqual(a.Fields[i].Type, b.Fields[i].Type) {
			return false
		}
	}
	return true
}
