// Package compare implements the element-level comparators that array
// sorting and rich comparison are built on.
//
// # Sort-Order Auxiliary Data
//
// A SortOrder describes, per record field, the byte offset, the element
// dtype, and a flag choosing ascending or descending order and whether
// a byte-order correction is needed. It is built once per comparison
// context (typically one sort invocation):
//
//	so, err := compare.NewSortOrder(2)
//	if err != nil {
//	    return err
//	}
//	defer so.Free()
//	so.Set(0, 0, 0, dtype.Int64())
//	so.Set(1, compare.FlagDescending, 8, dtype.Float64())
//
// Comparison work fanned out across goroutines must not share a
// mutable SortOrder; Clone gives each worker a private copy while
// sharing the read-only dtype references:
//
//	mine, err := so.Clone()
//	if err != nil {
//	    return err
//	}
//	defer mine.Free()
//
// Every value, original or clone, must be freed exactly once; Free is
// not idempotent and double-freeing is undefined.
//
// # Comparators
//
// Compare orders two record byte buffers lexicographically by field
// with per-field direction. CompareStrings orders fixed-width string
// buffers with an optional "strip trailing padding" mode. Both are pure
// functions of their inputs and never fail on well-formed arguments;
// mismatched SortOrder/buffer preconditions are the caller's
// responsibility.
package compare
