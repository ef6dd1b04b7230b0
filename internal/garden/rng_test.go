package garden

import "testing"

func TestRandDeterminism(t *testing.T) {
	a := NewRand(1234)
	b := NewRand(1234)
	for i := 0; i < 1000; i++ {
		if va, vb := a.Next(), b.Next(); va != vb {
			t.Fatalf("streams diverged at call %d: %v != %v", i, va, vb)
		}
	}
}

func TestRandSeedsDiffer(t *testing.T) {
	a := NewRand(1)
	b := NewRand(2)
	same := 0
	for i := 0; i < 100; i++ {
		if a.Next() == b.Next() {
			same++
		}
	}
	if same > 5 {
		t.Errorf("different seeds produced %d/100 identical values", same)
	}
}

func TestRandBounds(t *testing.T) {
	r := NewRand(42)
	for i := 0; i < 10000; i++ {
		v := r.Next()
		if v < 0 || v >= 1 {
			t.Fatalf("Next() = %v, want [0, 1)", v)
		}
	}
}

// Seed 0x2062e6db makes the first mixed output land in the top 2^7 values
// of the 32-bit range. A naive full-word-over-2^32 conversion rounds that
// to exactly 1.0, so Intn(3) returns 3 and Pick indexes out of range.
func TestRandNextNeverReachesOne(t *testing.T) {
	r := NewRand(0x2062e6db)
	if v := r.Next(); v >= 1 {
		t.Fatalf("Next() = %v, want < 1", v)
	}

	r = NewRand(0x2062e6db)
	items := []string{"a", "b", "c"}
	for i := 0; i < 10; i++ {
		Pick(r, items) // must not panic
	}

	r = NewRand(0x2062e6db)
	if n := r.Intn(3); n < 0 || n > 2 {
		t.Fatalf("Intn(3) = %d, want [0, 3)", n)
	}
}

func TestRandRange(t *testing.T) {
	r := NewRand(7)
	for i := 0; i < 1000; i++ {
		v := r.Range(-3, 5)
		if v < -3 || v >= 5 {
			t.Fatalf("Range(-3, 5) = %v", v)
		}
	}
}

func TestPick(t *testing.T) {
	r := NewRand(9)
	items := []string{"a", "b", "c"}
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		seen[Pick(r, items)] = true
	}
	if len(seen) != 3 {
		t.Errorf("Pick over 100 draws hit %d/3 elements", len(seen))
	}
}
