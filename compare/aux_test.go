package compare

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/wippyai/ndkit/dtype"
	nderr "github.com/wippyai/ndkit/errors"
)

func TestSortOrderAccounting(t *testing.T) {
	for _, n := range []int{0, 1, 4, 17} {
		before := Outstanding()

		so, err := NewSortOrder(n)
		if err != nil {
			t.Fatalf("NewSortOrder(%d): %v", n, err)
		}
		if so.Len() != n {
			t.Errorf("Len: got %d, want %d", so.Len(), n)
		}
		if Outstanding() != before+1 {
			t.Errorf("outstanding after alloc: got %d, want %d", Outstanding(), before+1)
		}

		c, err := so.Clone()
		if err != nil {
			t.Fatalf("Clone: %v", err)
		}
		if Outstanding() != before+2 {
			t.Errorf("outstanding after clone: got %d, want %d", Outstanding(), before+2)
		}

		c.Free()
		so.Free()
		if Outstanding() != before {
			t.Errorf("outstanding after free: got %d, want %d", Outstanding(), before)
		}
	}
}

func TestNewSortOrderNegative(t *testing.T) {
	_, err := NewSortOrder(-1)
	if err == nil {
		t.Fatal("negative field count should fail")
	}
	var e *nderr.Error
	if !errors.As(err, &e) || e.Kind != nderr.KindInvalidInput {
		t.Errorf("got %v, want invalid_input", err)
	}
}

func TestAllocFailure(t *testing.T) {
	boom := errors.New("no memory")
	allocGuard = func(int) error { return boom }
	defer func() { allocGuard = nil }()

	before := Outstanding()

	if _, err := NewSortOrder(2); !errors.Is(err, boom) {
		t.Errorf("NewSortOrder: got %v, want wrapped guard error", err)
	}
	if Outstanding() != before {
		t.Error("failed allocation must not leak accounting")
	}

	allocGuard = nil
	so, err := NewSortOrder(2)
	if err != nil {
		t.Fatal(err)
	}
	defer so.Free()
	so.Set(0, 0, 0, dtype.Int32())
	so.Set(1, FlagDescending, 4, dtype.Int32())

	allocGuard = func(int) error { return boom }
	if _, err := so.Clone(); !errors.Is(err, boom) {
		t.Errorf("Clone: got %v, want wrapped guard error", err)
	}
	// source unmodified by the failed clone
	if f, off, dt := so.Field(1); f != FlagDescending || off != 4 || dt != dtype.Int32() {
		t.Error("failed clone modified the source")
	}
}

func TestCloneIndependence(t *testing.T) {
	so, err := NewSortOrder(1)
	if err != nil {
		t.Fatal(err)
	}
	defer so.Free()
	so.Set(0, 0, 0, dtype.Int32())

	c, err := so.Clone()
	if err != nil {
		t.Fatal(err)
	}
	defer c.Free()

	a := make([]byte, 4)
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(a, 1)
	binary.LittleEndian.PutUint32(b, 2)

	// identical behavior before mutation
	if Compare(a, b, so) != Compare(a, b, c) {
		t.Fatal("clone compares differently from source")
	}

	// flipping the clone's direction must not affect the source
	c.SetFlag(0, FlagDescending)
	if got := Compare(a, b, so); got != Less {
		t.Errorf("source after clone mutation: got %v, want less", got)
	}
	if got := Compare(a, b, c); got != Greater {
		t.Errorf("mutated clone: got %v, want greater", got)
	}
}
