package procgen

import (
	"errors"
	"testing"
)

func TestStreamKnownSequence(t *testing.T) {
	s := NewStream(42)
	want := []uint32{803958421, 1695576580, 3626008390, 3504102291}
	for i, w := range want {
		if got := s.NextU32(); got != w {
			t.Fatalf("draw %d = %d, want %d", i, got, w)
		}
	}
}

// TestStreamParity drives two equal-seeded streams through the same call
// sequence and expects identical output at every step.
func TestStreamParity(t *testing.T) {
	a := NewStream(12345)
	b := NewStream(12345)
	for i := 0; i < 16; i++ {
		if av, bv := a.NextU32(), b.NextU32(); av != bv {
			t.Fatalf("draw %d diverged: %d != %d", i, av, bv)
		}
	}

	c := NewStream(12345)
	d := NewStream(54321)
	same := true
	for i := 0; i < 3; i++ {
		if c.NextU32() != d.NextU32() {
			same = false
		}
	}
	if same {
		t.Fatal("different seeds produced identical first three draws")
	}
}

// TestStreamCallOrderMatters verifies each draw consumes exactly one state
// advance, so reordering calls changes the results even with the same total
// number of draws.
func TestStreamCallOrderMatters(t *testing.T) {
	a := NewStream(7)
	b := NewStream(7)

	aFirst := a.NextF01()
	a.NextU32()

	b.NextU32()
	bSecond := b.NextF01()

	if aFirst == bSecond {
		t.Fatal("reordered calls should observe different draws")
	}
}

func TestNextF01Bounds(t *testing.T) {
	s := NewStream(99)
	for i := 0; i < 10000; i++ {
		v := s.NextF01()
		if v < 0 || v >= 1 {
			t.Fatalf("NextF01() = %v, want [0,1)", v)
		}
	}
}

func TestRangeBounds(t *testing.T) {
	s := NewStream(7)
	for i := 0; i < 10000; i++ {
		v := s.Range(-3.5, 10.25)
		if v < -3.5 || v >= 10.25 {
			t.Fatalf("Range(-3.5, 10.25) = %v, out of bounds", v)
		}
	}
}

// TestRangeDegenerate checks the min == max case returns min exactly while
// still consuming a draw.
func TestRangeDegenerate(t *testing.T) {
	a := NewStream(11)
	b := NewStream(11)

	if v := a.Range(5, 5); v != 5 {
		t.Fatalf("Range(5,5) = %v, want exactly 5", v)
	}
	b.NextU32()

	if av, bv := a.NextU32(), b.NextU32(); av != bv {
		t.Fatalf("Range(5,5) should consume exactly one draw: next draws %d != %d", av, bv)
	}
}

func TestPickEmpty(t *testing.T) {
	s := NewStream(1)
	if _, err := Pick(s, []string{}); !errors.Is(err, ErrEmptyCollection) {
		t.Fatalf("Pick on empty slice error = %v, want %v", err, ErrEmptyCollection)
	}
}

func TestPickCoversAllElements(t *testing.T) {
	s := NewStream(2)
	items := []string{"alpha", "beta", "gamma"}
	counts := make(map[string]int)
	for i := 0; i < 3000; i++ {
		v, err := Pick(s, items)
		if err != nil {
			t.Fatalf("Pick returned error: %v", err)
		}
		counts[v]++
	}
	for _, item := range items {
		if counts[item] == 0 {
			t.Fatalf("uniform pick never selected %q over 3000 draws", item)
		}
	}
}

func TestWeightedPickRejectsInvalidWeights(t *testing.T) {
	s := NewStream(3)

	if _, err := WeightedPick(s, []Weighted[string]{}); !errors.Is(err, ErrInvalidWeight) {
		t.Fatalf("empty pairs error = %v, want %v", err, ErrInvalidWeight)
	}

	zeroed := []Weighted[string]{{Item: "a", Weight: 0}, {Item: "b", Weight: 0}}
	if _, err := WeightedPick(s, zeroed); !errors.Is(err, ErrInvalidWeight) {
		t.Fatalf("zero-weight pairs error = %v, want %v", err, ErrInvalidWeight)
	}
}

// TestWeightedPickDistribution samples a heavily skewed table and expects the
// observed counts to preserve the weight ordering.
func TestWeightedPickDistribution(t *testing.T) {
	s := NewStream(4)
	pairs := []Weighted[string]{
		{Item: "common", Weight: 80},
		{Item: "rare", Weight: 15},
		{Item: "legendary", Weight: 5},
	}

	counts := make(map[string]int)
	for i := 0; i < 1000; i++ {
		v, err := WeightedPick(s, pairs)
		if err != nil {
			t.Fatalf("WeightedPick returned error: %v", err)
		}
		counts[v]++
	}

	if !(counts["common"] > counts["rare"] && counts["rare"] > counts["legendary"]) {
		t.Fatalf("counts out of order: %v", counts)
	}
	if counts["legendary"] == 0 {
		t.Fatal("legendary was never selected over 1000 draws")
	}
}

// TestWeightedPickOrderSensitivity confirms pair order is part of the
// contract: the same draw can select different items when pairs are reordered.
func TestWeightedPickOrderSensitivity(t *testing.T) {
	forward := []Weighted[string]{{Item: "a", Weight: 1}, {Item: "b", Weight: 1}}
	reversed := []Weighted[string]{{Item: "b", Weight: 1}, {Item: "a", Weight: 1}}

	diverged := false
	for seed := uint64(0); seed < 32; seed++ {
		f, err := WeightedPick(NewStream(seed), forward)
		if err != nil {
			t.Fatalf("WeightedPick returned error: %v", err)
		}
		r, err := WeightedPick(NewStream(seed), reversed)
		if err != nil {
			t.Fatalf("WeightedPick returned error: %v", err)
		}
		if f != r {
			diverged = true
			break
		}
	}
	if !diverged {
		t.Fatal("reordering pairs never changed the selection across 32 seeds")
	}
}

func TestCosmeticStreamIsUsable(t *testing.T) {
	s, err := NewCosmeticStream()
	if err != nil {
		t.Fatalf("NewCosmeticStream returned error: %v", err)
	}
	for i := 0; i < 8; i++ {
		if v := s.NextF01(); v < 0 || v >= 1 {
			t.Fatalf("cosmetic draw %d = %v, want [0,1)", i, v)
		}
	}
}
