package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseAlloc     Phase = "alloc"     // sort-order aux data lifecycle
	PhaseCompare   Phase = "compare"   // element comparison
	PhaseBroadcast Phase = "broadcast" // shape broadcasting
	PhaseDispatch  Phase = "dispatch"  // rich-comparison dispatch
	PhaseLayout    Phase = "layout"    // record field layout
	PhaseConstruct Phase = "construct" // array/dtype construction
)

// Kind categorizes the error
type Kind string

const (
	KindOutOfMemory   Kind = "out_of_memory"
	KindShapeMismatch Kind = "shape_mismatch"
	KindTypeMismatch  Kind = "type_mismatch"
	KindOutOfBounds   Kind = "out_of_bounds"
	KindInvalidData   Kind = "invalid_data"
	KindUnsupported   Kind = "unsupported"
	KindInvalidInput  Kind = "invalid_input"
	KindReadOnly      Kind = "read_only"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	DType  string
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.DType != "" {
		b.WriteString(": dtype ")
		b.WriteString(e.DType)
	}

	if e.Detail != "" {
		if e.DType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// DType sets the dtype name
func (b *Builder) DType(t string) *Builder {
	b.err.DType = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// OutOfMemory creates an allocation failure error
func OutOfMemory(phase Phase, nFields int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfMemory,
		Detail: fmt.Sprintf("failed to allocate aux data for %d fields", nFields),
		Value:  nFields,
	}
}

// ShapeMismatch creates a broadcast incompatibility error
func ShapeMismatch(phase Phase, a, b []int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindShapeMismatch,
		Detail: fmt.Sprintf("operands could not be broadcast together with shapes %v %v", a, b),
	}
}

// TypeMismatch creates a dtype mismatch error
func TypeMismatch(phase Phase, path []string, got, want string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTypeMismatch,
		Path:   path,
		DType:  got,
		Detail: fmt.Sprintf("expected %s", want),
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, path []string, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Path:   path,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
		Value:  index,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// ReadOnly creates a write-to-readonly-array error
func ReadOnly(detail string) *Error {
	return &Error{
		Phase:  PhaseConstruct,
		Kind:   KindReadOnly,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
