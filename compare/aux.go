package compare

import (
	"sync/atomic"

	"github.com/wippyai/ndkit/dtype"
	"github.com/wippyai/ndkit/errors"
)

// live tracks the number of SortOrder values that have been allocated
// and not yet freed, for resource accounting.
var live atomic.Int64

// allocGuard is a test seam for allocation failure: Go heap exhaustion
// is not locally observable, so tests inject failures here.
var allocGuard func(nFields int) error

// SortOrder is the per-comparison-context auxiliary data that drives the
// record comparator: for each field, a sort flag, a byte offset into the
// record buffer, and a borrowed element dtype.
//
// The three slices are always index-aligned and exactly nFields long.
// A SortOrder owns its flags and offsets storage; the dtypes are
// non-owning references valid for the duration of the enclosing
// comparison calls. After the fields are finalized the value is safe for
// concurrent read-only use; concurrent contexts that need to mutate
// flags must each own a Clone.
type SortOrder struct {
	flags   []FieldFlag
	offsets []int
	descrs  []*dtype.DType
}

// NewSortOrder allocates auxiliary data for nFields record fields.
// The caller fills every slot with Set before the first comparison.
// On failure no partially constructed value escapes.
func NewSortOrder(nFields int) (*SortOrder, error) {
	if nFields < 0 {
		return nil, errors.InvalidInput(errors.PhaseAlloc, "negative field count")
	}
	if allocGuard != nil {
		if err := allocGuard(nFields); err != nil {
			return nil, errors.Wrap(errors.PhaseAlloc, errors.KindOutOfMemory, err,
				"sort-order aux data allocation failed")
		}
	}

	so := &SortOrder{
		flags:   make([]FieldFlag, nFields),
		offsets: make([]int, nFields),
		descrs:  make([]*dtype.DType, nFields),
	}
	live.Add(1)
	return so, nil
}

// Clone produces an independently owned copy: flags and offsets are deep
// copied, the dtype references are duplicated without copying the
// referents. The source is left unmodified on failure. The clone carries
// its own exactly-once Free obligation.
func (so *SortOrder) Clone() (*SortOrder, error) {
	if allocGuard != nil {
		if err := allocGuard(len(so.flags)); err != nil {
			return nil, errors.Wrap(errors.PhaseAlloc, errors.KindOutOfMemory, err,
				"sort-order aux data clone failed")
		}
	}

	c := &SortOrder{
		flags:   make([]FieldFlag, len(so.flags)),
		offsets: make([]int, len(so.offsets)),
		descrs:  make([]*dtype.DType, len(so.descrs)),
	}
	copy(c.flags, so.flags)
	copy(c.offsets, so.offsets)
	copy(c.descrs, so.descrs)
	live.Add(1)
	return c, nil
}

// Free releases the flags and offsets storage and drops the dtype
// references without touching the referents. Every SortOrder, original
// or clone, must be freed exactly once by its owner; freeing the same
// value twice is undefined.
func (so *SortOrder) Free() {
	if so == nil {
		return
	}
	so.flags = nil
	so.offsets = nil
	so.descrs = nil
	live.Add(-1)
}

// Set fills the slot for field i. All slots must be set before the
// SortOrder is used for comparison.
func (so *SortOrder) Set(i int, flag FieldFlag, offset int, dt *dtype.DType) {
	so.flags[i] = flag
	so.offsets[i] = offset
	so.descrs[i] = dt
}

// SetFlag replaces only the sort flag of field i.
func (so *SortOrder) SetFlag(i int, flag FieldFlag) {
	so.flags[i] = flag
}

// Len returns the number of fields.
func (so *SortOrder) Len() int {
	return len(so.flags)
}

// Field returns the slot for field i.
func (so *SortOrder) Field(i int) (FieldFlag, int, *dtype.DType) {
	return so.flags[i], so.offsets[i], so.descrs[i]
}

// Outstanding reports the number of live SortOrder values. An
// allocate/clone/free discipline that is balanced leaves this unchanged.
func Outstanding() int64 {
	return live.Load()
}
