package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/ndkit/dtype"
)

func TestFormatVector(t *testing.T) {
	a, err := FromFloat64s([]float64{1, 2.5, 3}, 3)
	require.NoError(t, err)
	assert.Equal(t, "[1, 2.5, 3]", a.String())
}

func TestFormatMatrix(t *testing.T) {
	a, err := FromInt64s([]int64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, "[[1, 2],\n [3, 4]]", a.String())
}

func TestFormatSummarized(t *testing.T) {
	vals := make([]float64, 100)
	for i := range vals {
		vals[i] = float64(i)
	}
	a, err := FromFloat64s(vals, 100)
	require.NoError(t, err)

	got := Format(a, FormatOptions{Threshold: 10, EdgeItems: 2})
	assert.Equal(t, "[0, 1, ..., 98, 99]", got)
}

func TestFormatStringsAndBool(t *testing.T) {
	s, err := FromStrings(4, []string{"ab", "cd"}, 2)
	require.NoError(t, err)
	assert.Equal(t, `["ab", "cd"]`, s.String())

	b, err := New(dtype.Bool(), 2)
	require.NoError(t, err)
	require.NoError(t, b.SetFloat64(1, 0))
	assert.Equal(t, "[true, false]", b.String())
}

func TestFormatRecord(t *testing.T) {
	rec, err := dtype.Record(
		dtype.FieldSpec{Name: "x", Type: dtype.Int32()},
		dtype.FieldSpec{Name: "y", Type: dtype.Int32()},
	)
	require.NoError(t, err)

	a := recArray(t, rec, [2]int32{1, 2})
	assert.Equal(t, "[(1, 2)]", a.String())
}
