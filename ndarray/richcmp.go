package ndarray

import (
	"github.com/wippyai/ndkit/compare"
	"github.com/wippyai/ndkit/dtype"
	"github.com/wippyai/ndkit/errors"
)

// Op is an elementwise comparison operator.
type Op uint8

const (
	OpEQ Op = iota
	OpNE
	OpLT
	OpLE
	OpGT
	OpGE
)

var opNames = [...]string{
	OpEQ: "==",
	OpNE: "!=",
	OpLT: "<",
	OpLE: "<=",
	OpGT: ">",
	OpGE: ">=",
}

func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return "??"
}

// isOrdering reports whether the operator needs more than equality.
func (op Op) isOrdering() bool {
	return op >= OpLT
}

// rstripApplies reports whether the operator participates in the
// strip-trailing-padding comparison mode.
func (op Op) rstripApplies() bool {
	switch op {
	case OpEQ, OpNE, OpLE, OpGE:
		return true
	}
	return false
}

// Result is the outcome of RichCompare: either a boolean mask of the
// broadcast shape, or "these operands are not comparable", which is not
// an error — the caller chooses the fallback (identity semantics for
// EQ/NE, or an alternate comparison path).
type Result struct {
	mask *Array
}

// Comparable returns the boolean mask, or ok == false when the operands
// were incomparable.
func (r Result) Comparable() (*Array, bool) {
	return r.mask, r.mask != nil
}

type cmpOptions struct {
	fieldFlags       []compare.FieldFlag
	rstrip           *bool
	defaultAscending bool
}

// Option configures RichCompare.
type Option func(*cmpOptions)

// WithDefaultAscending permits ordering comparisons on record dtypes
// whose fields carry no explicit direction, treating every unflagged
// field as ascending. Without it such comparisons report incomparable.
func WithDefaultAscending() Option {
	return func(o *cmpOptions) { o.defaultAscending = true }
}

// WithFieldFlags supplies explicit per-field sort flags for record
// comparisons, one per field of the common layout.
func WithFieldFlags(flags []compare.FieldFlag) Option {
	return func(o *cmpOptions) { o.fieldFlags = append([]compare.FieldFlag(nil), flags...) }
}

// WithRstrip overrides the dtype's rstrip comparison policy for string
// operands.
func WithRstrip(rstrip bool) Option {
	return func(o *cmpOptions) { o.rstrip = &rstrip }
}

// RichCompare applies the comparison operator elementwise over the
// broadcast of the two arrays, producing a boolean mask of the broadcast
// shape. Broadcast-incompatible shapes are a hard error. Incomparable
// dtypes (different categories, or record layouts that do not match)
// yield an incomparable Result, never a partial mask.
func RichCompare(a, b *Array, op Op, opts ...Option) (Result, error) {
	if a == nil || b == nil {
		return Result{}, errors.InvalidInput(errors.PhaseDispatch, "nil operand")
	}

	var o cmpOptions
	for _, opt := range opts {
		opt(&o)
	}

	shape, err := BroadcastShapes(a.shape, b.shape)
	if err != nil {
		return Result{}, err
	}

	if a.dt.Kind.Category() != b.dt.Kind.Category() {
		return Result{}, nil
	}

	switch a.dt.Kind.Category() {
	case dtype.CategoryRecord:
		return recordsCompare(a, b, op, shape, &o)
	case dtype.CategoryString:
		return stringsCompare(a, b, op, shape, &o)
	default:
		return numericCompare(a, b, op, shape)
	}
}

func recordsCompare(a, b *Array, op Op, shape []int, o *cmpOptions) (Result, error) {
	if !dtype.LayoutEqual(a.dt, b.dt) {
		return Result{}, nil
	}

	fields := a.dt.Fields
	if len(o.fieldFlags) > 0 && len(o.fieldFlags) != len(fields) {
		return Result{}, errors.InvalidInput(errors.PhaseDispatch,
			"field flag count does not match record field count")
	}
	// ordering needs a direction for every field; equality does not care
	if op.isOrdering() && len(o.fieldFlags) == 0 && !o.defaultAscending {
		return Result{}, nil
	}

	so, err := compare.NewSortOrder(len(fields))
	if err != nil {
		return Result{}, err
	}
	defer so.Free()

	for i, f := range fields {
		var flag compare.FieldFlag
		if len(o.fieldFlags) > 0 {
			flag = o.fieldFlags[i]
		}
		if f.Type.Swapped {
			flag |= compare.FlagByteswap
		}
		so.Set(i, flag, f.Offset, f.Type)
	}

	return elementwise(a, b, shape, func(ea, eb []byte) bool {
		return opHolds(compare.Compare(ea, eb, so), op)
	})
}

func stringsCompare(a, b *Array, op Op, shape []int, o *cmpOptions) (Result, error) {
	// the string comparator contract is two buffers of the same
	// declared width and trailing fill byte
	if a.dt.Size != b.dt.Size || a.dt.PadByte != b.dt.PadByte {
		return Result{}, nil
	}

	rstrip := op.rstripApplies() && a.dt.RstripEq && b.dt.RstripEq
	if o.rstrip != nil {
		rstrip = *o.rstrip
	}
	width := a.dt.Size
	pad := a.dt.PadByte

	return elementwise(a, b, shape, func(ea, eb []byte) bool {
		return opHolds(compare.CompareStringsPad(ea, eb, width, rstrip, pad), op)
	})
}

func numericCompare(a, b *Array, op Op, shape []int) (Result, error) {
	adt, bdt := a.dt, b.dt

	// Integers of one kind and one byte order compare exactly, with no
	// promotion. Floats always take the IEEE predicates, where NaN is
	// unequal to everything, itself included; the total-order NaN
	// handling belongs to the sort comparator alone.
	if adt.Kind == bdt.Kind && !adt.Kind.IsFloat() && adt.Swapped == bdt.Swapped {
		swap := adt.Swapped
		return elementwise(a, b, shape, func(ea, eb []byte) bool {
			return opHolds(compare.Elem(ea, eb, adt, swap), op)
		})
	}

	// mixed kinds or mixed byte order compare through float64
	// promotion, which corrects each side independently
	return elementwise(a, b, shape, func(ea, eb []byte) bool {
		return floatOpHolds(loadFloat64(ea, adt), loadFloat64(eb, bdt), op)
	})
}

// elementwise evaluates pred over every broadcast element pair and
// collects the boolean mask. The whole mask is materialized before
// returning; no partial results escape.
func elementwise(a, b *Array, shape []int, pred func(ea, eb []byte) bool) (Result, error) {
	strA, err := broadcastStrides(a, shape)
	if err != nil {
		return Result{}, err
	}
	strB, err := broadcastStrides(b, shape)
	if err != nil {
		return Result{}, err
	}

	out, err := New(dtype.Bool(), shape...)
	if err != nil {
		return Result{}, err
	}

	wa, wb := a.dt.Size, b.dt.Size
	idx := make([]int, len(shape))
	n := out.Size()
	for lin := 0; lin < n; lin++ {
		offA, offB := 0, 0
		for i, j := range idx {
			offA += j * strA[i]
			offB += j * strB[i]
		}
		if pred(a.data[offA:offA+wa], b.data[offB:offB+wb]) {
			out.data[lin] = 1
		}
		increment(idx, shape)
	}
	return Result{mask: out}, nil
}

func opHolds(ord compare.Ordering, op Op) bool {
	switch op {
	case OpEQ:
		return ord == compare.Equal
	case OpNE:
		return ord != compare.Equal
	case OpLT:
		return ord == compare.Less
	case OpLE:
		return ord != compare.Greater
	case OpGT:
		return ord == compare.Greater
	default:
		return ord != compare.Less
	}
}

func floatOpHolds(a, b float64, op Op) bool {
	switch op {
	case OpEQ:
		return a == b
	case OpNE:
		return a != b
	case OpLT:
		return a < b
	case OpLE:
		return a <= b
	case OpGT:
		return a > b
	default:
		return a >= b
	}
}
