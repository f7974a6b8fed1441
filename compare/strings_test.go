package compare

import "testing"

func TestCompareStrings(t *testing.T) {
	tests := []struct {
		name   string
		a, b   string
		length int
		rstrip bool
		want   Ordering
	}{
		{"rstrip_padded_equal", "ab\x00\x00", "ab\x00\x00", 4, true, Equal},
		{"rstrip_prefix_less", "ab\x00\x00", "abc\x00", 4, true, Less},
		{"rstrip_prefix_greater", "abc\x00", "ab\x00\x00", 4, true, Greater},
		{"rstrip_differs_before_pad", "abd\x00", "abc\x00", 4, true, Greater},
		{"rstrip_all_pad", "\x00\x00\x00\x00", "\x00\x00\x00\x00", 4, true, Equal},
		{"rstrip_one_all_pad", "\x00\x00\x00\x00", "a\x00\x00\x00", 4, true, Less},
		{"exact_equal", "ab\x00\x00", "ab\x00\x00", 4, false, Equal},
		{"exact_pad_significant", "ab\x00\x00", "ab\x00\x01", 4, false, Less},
		{"exact_lexicographic", "abcd", "abce", 4, false, Less},
		{"zero_length", "", "", 0, true, Equal},
		{"interior_pad_not_stripped", "a\x00b\x00", "a\x00\x00\x00", 4, true, Greater},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CompareStrings([]byte(tc.a), []byte(tc.b), tc.length, tc.rstrip)
			if got != tc.want {
				t.Errorf("CompareStrings(%q, %q, %d, %v): got %v, want %v",
					tc.a, tc.b, tc.length, tc.rstrip, got, tc.want)
			}
		})
	}
}

func TestCompareStringsPad(t *testing.T) {
	// space-padded fixed-width fields
	got := CompareStringsPad([]byte("ab  "), []byte("ab"), 2, true, ' ')
	if got != Equal {
		t.Errorf("space pad: got %v, want equal", got)
	}
	got = CompareStringsPad([]byte("ab  "), []byte("ab c"), 4, true, ' ')
	if got != Less {
		t.Errorf("space pad strict prefix: got %v, want less", got)
	}
}

func TestEffectiveLen(t *testing.T) {
	tests := []struct {
		buf  string
		pad  byte
		want int
	}{
		{"ab\x00\x00", 0, 2},
		{"abcd", 0, 4},
		{"\x00\x00", 0, 0},
		{"a\x00b\x00", 0, 3},
	}
	for _, tc := range tests {
		if got := effectiveLen([]byte(tc.buf), tc.pad); got != tc.want {
			t.Errorf("effectiveLen(%q): got %d, want %d", tc.buf, got, tc.want)
		}
	}
}

func TestOrderingString(t *testing.T) {
	if Less.String() != "less" || Equal.String() != "equal" || Greater.String() != "greater" {
		t.Error("ordering names")
	}
	if Less.Reverse() != Greater || Equal.Reverse() != Equal {
		t.Error("reverse")
	}
}
