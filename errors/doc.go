// Package errors provides structured error types for the ndkit library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: field path, dtype name, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDispatch, errors.KindTypeMismatch).
//		Path("pos", "x").
//		DType("float64").
//		Detail("operand dtypes differ in field count").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.ShapeMismatch(errors.PhaseBroadcast, []int{3, 1}, []int{2, 4})
//	err := errors.OutOfMemory(errors.PhaseAlloc, 8)
//
// All errors implement the standard error interface and support errors.Is/As.
//
// Note that incomparable operand dtypes are deliberately NOT an error kind:
// the rich-comparison dispatcher reports incomparability through its result
// type so callers can choose fallback semantics.
package errors
