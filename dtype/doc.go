// Package dtype defines element type descriptors for n-dimensional
// arrays.
//
// A DType names the kind, byte width, and stored byte order of one array
// element. Record dtypes additionally carry a field descriptor table:
// for each named field, a byte offset into the record buffer and the
// field's own element dtype. Fields may overlap (unions are legal).
//
// # Construction
//
// Scalar dtypes are shared singletons:
//
//	dtype.Int32()
//	dtype.Float64()
//
// Fixed-width strings and records are built per use:
//
//	s, _ := dtype.String(8)
//	rec, _ := dtype.Record(
//	    dtype.FieldSpec{Name: "id", Type: dtype.Int64()},
//	    dtype.FieldSpec{Name: "score", Type: dtype.Float32()},
//	)
//
// Record offsets are assigned with natural alignment by the layout
// Calculator; RecordAt accepts explicit (possibly overlapping) offsets.
//
// # Ownership
//
// DType values are immutable after construction. Comparison machinery
// borrows them for the duration of a call and never frees or mutates
// them.
package dtype
