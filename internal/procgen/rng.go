package procgen

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrEmptyCollection indicates a pick was requested from zero elements.
var ErrEmptyCollection = errors.New("cannot pick from an empty collection")

// ErrInvalidWeight indicates a weighted pick whose total weight is not positive.
var ErrInvalidWeight = errors.New("total weight must be positive")

// Stream is a deterministic pseudo-random stream over a single 64-bit state
// word. Every draw advances the state exactly once, so two streams created
// from equal seeds and driven through the same call sequence produce identical
// results at every step. A stream is exclusively owned by the generation call
// that created it and must never be shared.
type Stream struct {
	state uint64
}

// NewStream creates a stream seeded from a 64-bit value.
func NewStream(seed uint64) *Stream {
	return &Stream{state: seed}
}

// NewCosmeticStream creates a stream seeded from crypto/rand for
// non-deterministic cosmetic use. The caller owns it explicitly; the
// deterministic generators never reference one.
func NewCosmeticStream() (*Stream, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return nil, fmt.Errorf("read cosmetic seed: %w", err)
	}
	return NewStream(binary.LittleEndian.Uint64(b[:])), nil
}

// NextU32 advances the state once and returns its low 32 bits.
func (s *Stream) NextU32() uint32 {
	s.state = Splitmix64(s.state)
	return uint32(s.state)
}

// NextF01 returns a float in [0,1) using one draw.
func (s *Stream) NextF01() float64 {
	return float64(s.NextU32()) / (1 << 32)
}

// Range returns min + (max-min)*NextF01(). When min == max the multiplier is
// zero and the result is exactly min, though a draw is still consumed.
func (s *Stream) Range(min, max float64) float64 {
	return min + (max-min)*s.NextF01()
}

// Pick selects a uniform element from items, consuming one draw. The computed
// index is clamped to the last element to guard against floating rounding
// reaching len(items).
func Pick[T any](s *Stream, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmptyCollection
	}
	i := int(s.NextF01() * float64(len(items)))
	if i >= len(items) {
		i = len(items) - 1
	}
	return items[i], nil
}

// Weighted pairs an item with its selection weight.
type Weighted[T any] struct {
	Item   T
	Weight float64
}

// WeightedPick selects one pair proportionally to its weight, consuming one
// draw. An empty pair list or a non-positive total weight fails with
// ErrInvalidWeight. Pairs are scanned in slice order, so the order of the
// input is part of the observable contract: callers must pass pairs in a
// canonical, stable order for reproducibility. If floating error keeps the
// running value from dropping to zero, the last pair is returned.
func WeightedPick[T any](s *Stream, pairs []Weighted[T]) (T, error) {
	var zero T
	total := 0.0
	for _, p := range pairs {
		total += p.Weight
	}
	if total <= 0 {
		return zero, ErrInvalidWeight
	}
	r := s.NextF01() * total
	for _, p := range pairs {
		r -= p.Weight
		if r <= 0 {
			return p.Item, nil
		}
	}
	return pairs[len(pairs)-1].Item, nil
}
