package ndarray

import (
	"github.com/wippyai/ndkit/errors"
)

// BroadcastShapes aligns two shapes from their trailing edge and
// stretches size-1 dimensions, returning the common shape. Incompatible
// shapes are a hard error, distinct from dtype incomparability.
func BroadcastShapes(a, b []int) ([]int, error) {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]int, n)
	for i := 1; i <= n; i++ {
		da, db := 1, 1
		if i <= len(a) {
			da = a[len(a)-i]
		}
		if i <= len(b) {
			db = b[len(b)-i]
		}
		switch {
		case da == db:
			out[n-i] = da
		case da == 1:
			out[n-i] = db
		case db == 1:
			out[n-i] = da
		default:
			return nil, errors.ShapeMismatch(errors.PhaseBroadcast, a, b)
		}
	}
	return out, nil
}

// broadcastStrides maps an array's strides onto a broadcast shape:
// stretched dimensions get stride 0 so every index reads the same
// element.
func broadcastStrides(a *Array, shape []int) ([]int, error) {
	if len(a.shape) > len(shape) {
		return nil, errors.ShapeMismatch(errors.PhaseBroadcast, a.shape, shape)
	}
	out := make([]int, len(shape))
	for i := 1; i <= len(a.shape); i++ {
		dim := a.shape[len(a.shape)-i]
		want := shape[len(shape)-i]
		switch {
		case dim == want:
			out[len(shape)-i] = a.strides[len(a.shape)-i]
		case dim == 1:
			out[len(shape)-i] = 0
		default:
			return nil, errors.ShapeMismatch(errors.PhaseBroadcast, a.shape, shape)
		}
	}
	return out, nil
}

// BroadcastTo returns a readonly bytes-sharing view of the array
// stretched to the given shape. More than one element of the view may
// refer to the same memory location, which is why writes are rejected.
func BroadcastTo(a *Array, shape ...int) (*Array, error) {
	if len(shape) == 0 && len(a.shape) != 0 {
		return nil, errors.InvalidInput(errors.PhaseBroadcast,
			"cannot broadcast a non-scalar to a scalar array")
	}
	for _, s := range shape {
		if s < 0 {
			return nil, errors.InvalidInput(errors.PhaseBroadcast,
				"all elements of broadcast shape must be non-negative")
		}
	}
	strides, err := broadcastStrides(a, shape)
	if err != nil {
		return nil, err
	}
	return &Array{
		data:     a.data,
		dt:       a.dt,
		base:     a,
		shape:    append([]int(nil), shape...),
		strides:  strides,
		readonly: true,
	}, nil
}
