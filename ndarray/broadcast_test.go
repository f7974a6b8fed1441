package ndarray

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nderr "github.com/wippyai/ndkit/errors"
)

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want []int
	}{
		{"equal", []int{2, 3}, []int{2, 3}, []int{2, 3}},
		{"stretch_left", []int{3, 1}, []int{1, 4}, []int{3, 4}},
		{"rank_extend", []int{5, 4}, []int{4}, []int{5, 4}},
		{"scalar", []int{3, 2}, nil, []int{3, 2}},
		{"both_scalar", nil, nil, []int{}},
		{"zero_dim", []int{0}, []int{1}, []int{0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := BroadcastShapes(tc.a, tc.b)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBroadcastShapesMismatch(t *testing.T) {
	_, err := BroadcastShapes([]int{3, 2}, []int{4})
	require.Error(t, err)

	var e *nderr.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, nderr.KindShapeMismatch, e.Kind)
}

func TestBroadcastTo(t *testing.T) {
	a, err := FromFloat64s([]float64{1, 2, 3}, 3)
	require.NoError(t, err)

	v, err := BroadcastTo(a, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, v.Shape())
	assert.True(t, v.ReadOnly())
	assert.Same(t, a, v.Base())

	// both rows read the same memory
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			got, err := v.Float64At(i, j)
			require.NoError(t, err)
			assert.Equal(t, float64(j+1), got)
		}
	}

	// writes to the aliasing view are rejected
	err = v.SetFloat64(9, 0, 0)
	require.Error(t, err)
	var e *nderr.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, nderr.KindReadOnly, e.Kind)
}

func TestBroadcastToScalarTarget(t *testing.T) {
	a, err := FromFloat64s([]float64{1, 2}, 2)
	require.NoError(t, err)

	_, err = BroadcastTo(a)
	assert.Error(t, err, "non-scalar to scalar must fail")

	_, err = BroadcastTo(a, -1)
	assert.Error(t, err, "negative dims must fail")
}
