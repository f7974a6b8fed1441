package compare

// Ordering is the result of a three-way comparison.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch {
	case o < 0:
		return "less"
	case o > 0:
		return "greater"
	default:
		return "equal"
	}
}

// Reverse flips Less and Greater, leaving Equal unchanged.
func (o Ordering) Reverse() Ordering {
	return -o
}

// FieldFlag encodes the per-field sort options of one record field:
// ordering direction and whether the stored byte order needs correction
// before comparing.
type FieldFlag uint8

const (
	// FlagDescending inverts the field's contribution to the ordering.
	FlagDescending FieldFlag = 1 << iota
	// FlagByteswap marks the field's stored byte order as differing from
	// native; its bytes are reversed before comparison.
	FlagByteswap
)

func (f FieldFlag) Descending() bool { return f&FlagDescending != 0 }
func (f FieldFlag) Byteswap() bool   { return f&FlagByteswap != 0 }
