package dtype

type Kind uint8

const (
	KindBool Kind = iota
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindString
	KindRecord
)

var kindNames = [...]string{
	KindBool:    "bool",
	KindInt8:    "int8",
	KindInt16:   "int16",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindUint8:   "uint8",
	KindUint16:  "uint16",
	KindUint32:  "uint32",
	KindUint64:  "uint64",
	KindFloat32: "float32",
	KindFloat64: "float64",
	KindString:  "string",
	KindRecord:  "record",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsNumeric reports whether the kind carries a native ordinal comparison.
func (k Kind) IsNumeric() bool {
	return k <= KindFloat64
}

// IsSigned reports whether the kind is a signed integer.
func (k Kind) IsSigned() bool {
	return k >= KindInt8 && k <= KindInt64
}

// IsFloat reports whether the kind is a floating-point number.
func (k Kind) IsFloat() bool {
	return k == KindFloat32 || k == KindFloat64
}

// Category groups kinds by comparability: two arrays are candidates for
// elementwise comparison only when their categories match.
type Category uint8

const (
	CategoryNumeric Category = iota
	CategoryString
	CategoryRecord
)

func (k Kind) Category() Category {
	switch k {
	case KindString:
		return CategoryString
	case KindRecord:
		return CategoryRecord
	default:
		return CategoryNumeric
	}
}

func (c Category) String() string {
	switch c {
	case CategoryNumeric:
		return "numeric"
	case CategoryString:
		return "string"
	case CategoryRecord:
		return "record"
	}
	return "unknown"
}
