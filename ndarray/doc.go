// Package ndarray provides array values and the array-level entry points
// of the comparison core: broadcasting, rich comparison dispatch, and
// the provisional-view write-warning protocol.
//
// # Rich Comparison
//
// RichCompare elementwise-applies an operator over the broadcast of two
// arrays and returns a boolean mask. Incomparable operand dtypes are not
// an error; they are the "not comparable" arm of the result, so callers
// can fall back to identity semantics for == and !=:
//
//	res, err := ndarray.RichCompare(a, b, ndarray.OpEQ)
//	if err != nil {
//	    return err // broadcast-incompatible shapes
//	}
//	mask, ok := res.Comparable()
//	if !ok {
//	    // structured vs plain, or mismatched layouts; choose a fallback
//	}
//
// Float operands follow IEEE semantics: NaN compares unequal to every
// value, itself included. The total order that sorts NaN last belongs
// to the compare package's sort comparators, not to elementwise masks.
//
// Record operands dispatch to the multi-field record comparator with a
// sort order built from the common field layout. Ordering operators on
// records require an explicit direction for every field (WithFieldFlags)
// or the WithDefaultAscending option. String operands dispatch to the
// rstrip-aware fixed-width comparator per the dtype's comparison policy.
//
// # Provisional Views
//
// Operations that return bytes-sharing views slated to become deep
// copies (Diagonal) mark the view provisional. The first mutating
// operation warns once through the package logger and clears the flag;
// the write proceeds. Install a logger to see the warnings:
//
//	ndarray.SetLogger(zapLogger)
package ndarray
