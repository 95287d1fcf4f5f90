package procgen

import "testing"

// TestSplitmix64KnownValues pins the exact mixing arithmetic. The constants
// were computed independently with arbitrary-precision integers masked to 64
// bits; any drift in the wraparound arithmetic shows up here.
func TestSplitmix64KnownValues(t *testing.T) {
	tcs := []struct {
		in   uint64
		want uint64
	}{
		{0, 16294208416658607535},
		{1, 10451216379200822465},
		{0xdeadbeef, 5395234354446855067},
	}

	for _, tc := range tcs {
		if got := Splitmix64(tc.in); got != tc.want {
			t.Fatalf("Splitmix64(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFnv1a64KnownValues(t *testing.T) {
	tcs := []struct {
		in   string
		want uint64
	}{
		{"", 14695981039346656037},
		{"a", 12638187200555641996},
		{"system", 13814046143737672956},
		{"campaign", 9108988341265390419},
	}

	for _, tc := range tcs {
		if got := Fnv1a64(tc.in); got != tc.want {
			t.Fatalf("Fnv1a64(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

// TestHash64FloatTruncation ensures float keys are floored toward zero before
// hashing, so fractional digits never influence the seed.
func TestHash64FloatTruncation(t *testing.T) {
	if Hash64(3.14) != Hash64(3.99) {
		t.Fatal("Hash64(3.14) and Hash64(3.99) should hash identically")
	}
	if Hash64(3.14) != Hash64(3) {
		t.Fatal("Hash64(3.14) and Hash64(3) should hash identically")
	}
	if got, want := Hash64(3.14), uint64(2092789425003139053); got != want {
		t.Fatalf("Hash64(3.14) = %d, want %d", got, want)
	}
}

// TestHash64SignedKeys ensures negative integer keys hash differently from
// their positive counterparts (two's-complement reinterpretation).
func TestHash64SignedKeys(t *testing.T) {
	if Hash64(-1) == Hash64(1) {
		t.Fatal("Hash64(-1) and Hash64(1) should differ")
	}
	if got, want := Hash64(-1), uint64(16490336266968443936); got != want {
		t.Fatalf("Hash64(-1) = %d, want %d", got, want)
	}
}

func TestHash64Empty(t *testing.T) {
	if got, want := Hash64(), Splitmix64(0); got != want {
		t.Fatalf("Hash64() = %d, want Splitmix64(0) = %d", got, want)
	}
}

func TestDeriveSeedNoKeysIsIdentity(t *testing.T) {
	seeds := []uint64{0, 1, 42, 0xffffffffffffffff}
	for _, seed := range seeds {
		if got := DeriveSeed(seed); got != seed {
			t.Fatalf("DeriveSeed(%d) = %d, want parent unchanged", seed, got)
		}
	}
}

func TestDeriveSeedDeterminism(t *testing.T) {
	seed := Hash64("campaign", "rebellion", "episode4")
	a := DeriveSeed(seed, "sector", 3, -2, 7)
	b := DeriveSeed(seed, "sector", 3, -2, 7)
	if a != b {
		t.Fatalf("DeriveSeed not deterministic: %d != %d", a, b)
	}
}

// TestDeriveSeedCollisionResistance checks that sibling keys and different
// parents produce distinct children.
func TestDeriveSeedCollisionResistance(t *testing.T) {
	parent := Hash64("collision")
	seen := make(map[uint64]int)
	for i := 0; i < 1000; i++ {
		child := DeriveSeed(parent, "x", i)
		if prev, ok := seen[child]; ok {
			t.Fatalf("DeriveSeed collision between indexes %d and %d", prev, i)
		}
		seen[child] = i
	}

	if DeriveSeed(1, "k") == DeriveSeed(2, "k") {
		t.Fatal("different parents with same key should derive different seeds")
	}
}

// TestCampaignScenario walks the end-to-end seed tree used by a campaign.
func TestCampaignScenario(t *testing.T) {
	root := Hash64("campaign", "rebellion", "episode4")
	if want := uint64(17490293653469507642); root != want {
		t.Fatalf("campaign root = %d, want %d", root, want)
	}

	tatooine := DeriveSeed(root, "planet", "tatooine", "terrain")
	if want := uint64(3890179362588321457); tatooine != want {
		t.Fatalf("tatooine seed = %d, want %d", tatooine, want)
	}
	if again := DeriveSeed(root, "planet", "tatooine", "terrain"); again != tatooine {
		t.Fatalf("recomputed tatooine seed = %d, want %d", again, tatooine)
	}

	hoth := DeriveSeed(root, "planet", "hoth", "terrain")
	if hoth == tatooine {
		t.Fatal("hoth and tatooine should derive different seeds")
	}
}

func TestSeedTextRoundTrip(t *testing.T) {
	seeds := []uint64{0, 1, 17490293653469507642, 0xffffffffffffffff}
	for _, seed := range seeds {
		parsed, err := ParseSeed(FormatSeed(seed))
		if err != nil {
			t.Fatalf("ParseSeed(FormatSeed(%d)) returned error: %v", seed, err)
		}
		if parsed != seed {
			t.Fatalf("round trip of %d produced %d", seed, parsed)
		}
	}

	if _, err := ParseSeed("not-a-seed"); err == nil {
		t.Fatal("ParseSeed should reject non-decimal input")
	}
	if _, err := ParseSeed("-1"); err == nil {
		t.Fatal("ParseSeed should reject negative input")
	}
}
