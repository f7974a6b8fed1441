package ndarray

import "go.uber.org/zap"

// MarkProvisional flags the array as a bytes-sharing view that is not
// yet safe to treat as an independent object. Operations that return
// such views (Diagonal) set this themselves; it is exported for external
// view producers.
func (a *Array) MarkProvisional() {
	a.provisional = true
}

// Provisional reports whether the warn-on-first-write flag is set.
func (a *Array) Provisional() bool {
	return a.provisional
}

// MightBeWritten must be called immediately before any mutating
// operation touches the array. If the array is provisional it emits a
// one-time warning and clears the flag, so later writes to the same
// array stay silent; the write itself is always allowed to proceed.
//
// Callers must serialize writes to the same array; this protocol assumes
// at most one writer per array at a time.
func (a *Array) MightBeWritten() {
	if !a.provisional {
		return
	}
	a.provisional = false
	Logger().Warn("writing to a provisional view-backed array; it is slated to become an independent copy, and this write may stop affecting the base array in a future release",
		zap.Ints("shape", a.shape),
		zap.String("dtype", a.dt.Name()),
	)
}
