package compare

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/wippyai/ndkit/dtype"
)

// rec16 builds a 16-byte record: int32 id at offset 0, float64 score at
// offset 8.
func rec16(id int32, score float64) []byte {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint32(buf[0:], uint32(id))
	binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(score))
	return buf
}

func sortOrder16(t *testing.T, flag0, flag1 FieldFlag) *SortOrder {
	t.Helper()
	so, err := NewSortOrder(2)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(so.Free)
	so.Set(0, flag0, 0, dtype.Int32())
	so.Set(1, flag1, 8, dtype.Float64())
	return so
}

func TestCompareZeroFields(t *testing.T) {
	so, err := NewSortOrder(0)
	if err != nil {
		t.Fatal(err)
	}
	defer so.Free()

	if got := Compare(rec16(1, 2), rec16(3, 4), so); got != Equal {
		t.Errorf("zero fields: got %v, want equal", got)
	}
}

func TestCompareMultiKey(t *testing.T) {
	so := sortOrder16(t, 0, 0)

	tests := []struct {
		name string
		a, b []byte
		want Ordering
	}{
		{"primary_less", rec16(1, 9), rec16(2, 0), Less},
		{"primary_greater", rec16(5, 0), rec16(2, 9), Greater},
		{"tiebreak_less", rec16(3, 1.5), rec16(3, 2.5), Less},
		{"tiebreak_greater", rec16(3, 2.5), rec16(3, 1.5), Greater},
		{"all_equal", rec16(3, 2.5), rec16(3, 2.5), Equal},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Compare(tc.a, tc.b, so); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCompareDescending(t *testing.T) {
	asc := sortOrder16(t, 0, 0)
	desc1 := sortOrder16(t, 0, FlagDescending)

	// fields 0 equal, field 1 differs: flipping field 1 flips the result
	a, b := rec16(3, 1.0), rec16(3, 2.0)
	if got := Compare(a, b, asc); got != Less {
		t.Fatalf("ascending: got %v, want less", got)
	}
	if got := Compare(a, b, desc1); got != Greater {
		t.Errorf("descending tiebreak: got %v, want greater", got)
	}

	// field 0 decides: flipping field 1 changes nothing
	a, b = rec16(1, 9.0), rec16(2, 0.0)
	if Compare(a, b, asc) != Compare(a, b, desc1) {
		t.Error("field 1 direction leaked into a field-0-driven outcome")
	}

	// descending primary key
	desc0 := sortOrder16(t, FlagDescending, 0)
	if got := Compare(rec16(1, 0), rec16(2, 0), desc0); got != Greater {
		t.Errorf("descending primary: got %v, want greater", got)
	}
}

func TestCompareStrictWeakOrdering(t *testing.T) {
	so := sortOrder16(t, 0, FlagDescending)

	records := [][]byte{
		rec16(1, 1.0),
		rec16(1, 2.0),
		rec16(2, -3.5),
		rec16(2, -3.5),
		rec16(-7, 100),
		rec16(0, math.NaN()),
	}

	for i, a := range records {
		if got := Compare(a, a, so); got != Equal {
			t.Errorf("record %d not equal to itself", i)
		}
		for j, b := range records {
			ab := Compare(a, b, so)
			ba := Compare(b, a, so)
			if ab != ba.Reverse() {
				t.Errorf("antisymmetry violated for %d,%d: %v vs %v", i, j, ab, ba)
			}
			for k, c := range records {
				if ab == Less && Compare(b, c, so) == Less && Compare(a, c, so) != Less {
					t.Errorf("transitivity violated for %d,%d,%d", i, j, k)
				}
			}
		}
	}
}

func TestCompareByteswap(t *testing.T) {
	so, err := NewSortOrder(1)
	if err != nil {
		t.Fatal(err)
	}
	defer so.Free()
	so.Set(0, FlagByteswap, 0, dtype.Uint32())

	a := make([]byte, 4)
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(a, 256)
	binary.BigEndian.PutUint32(b, 2)

	if got := Compare(a, b, so); got != Greater {
		t.Errorf("big-endian 256 vs 2: got %v, want greater", got)
	}

	// without the flag the raw little-endian reads invert the order
	so.SetFlag(0, 0)
	if got := Compare(a, b, so); got != Less {
		t.Errorf("unswapped raw reads: got %v, want less", got)
	}
}

func TestCompareOverlappingFields(t *testing.T) {
	// both fields read offset 0, one ascending, one descending; the
	// ascending field always decides first
	so, err := NewSortOrder(2)
	if err != nil {
		t.Fatal(err)
	}
	defer so.Free()
	so.Set(0, 0, 0, dtype.Uint16())
	so.Set(1, FlagDescending, 0, dtype.Uint16())

	a := []byte{1, 0}
	b := []byte{2, 0}
	if got := Compare(a, b, so); got != Less {
		t.Errorf("got %v, want less", got)
	}
}

func TestCompareStringField(t *testing.T) {
	sdt, err := dtype.String(4)
	if err != nil {
		t.Fatal(err)
	}
	so, err := NewSortOrder(1)
	if err != nil {
		t.Fatal(err)
	}
	defer so.Free()
	so.Set(0, 0, 0, sdt)

	if got := Compare([]byte("ab\x00\x00"), []byte("ab\x00\x00"), so); got != Equal {
		t.Errorf("padded equal strings: got %v", got)
	}
	if got := Compare([]byte("ab\x00\x00"), []byte("abc\x00"), so); got != Less {
		t.Errorf("prefix: got %v, want less", got)
	}
}

func TestElemNestedRecord(t *testing.T) {
	inner, err := dtype.Record(
		dtype.FieldSpec{Name: "x", Type: dtype.Int16()},
		dtype.FieldSpec{Name: "y", Type: dtype.Int16()},
	)
	if err != nil {
		t.Fatal(err)
	}

	a := []byte{1, 0, 5, 0}
	b := []byte{1, 0, 6, 0}
	if got := Elem(a, b, inner, false); got != Less {
		t.Errorf("nested record: got %v, want less", got)
	}
	if got := Elem(a, a, inner, false); got != Equal {
		t.Errorf("nested record self: got %v, want equal", got)
	}
}

func TestOrderFloatNaN(t *testing.T) {
	so, err := NewSortOrder(1)
	if err != nil {
		t.Fatal(err)
	}
	defer so.Free()
	so.Set(0, 0, 0, dtype.Float64())

	nan := make([]byte, 8)
	binary.LittleEndian.PutUint64(nan, math.Float64bits(math.NaN()))
	one := make([]byte, 8)
	binary.LittleEndian.PutUint64(one, math.Float64bits(1.0))

	if got := Compare(nan, one, so); got != Greater {
		t.Errorf("NaN should sort after ordered values: got %v", got)
	}
	if got := Compare(one, nan, so); got != Less {
		t.Errorf("ordered vs NaN: got %v, want less", got)
	}
	if got := Compare(nan, nan, so); got != Equal {
		t.Errorf("NaN vs NaN: got %v, want equal", got)
	}
}
