// Package procgen holds the deterministic seeding and sampling core: 64-bit
// avalanche mixing, string hashing, hierarchical seed derivation, and the
// pseudo-random stream built on top of them. Everything in this package is
// pure computation; given the same inputs it produces bit-identical results
// on every platform.
package procgen

import (
	"fmt"
	"math"
	"strconv"
	"unicode/utf16"
)

const (
	splitmixGamma uint64 = 0x9e3779b97f4a7c15
	splitmixMul1  uint64 = 0xbf58476d1ce4e5b9
	splitmixMul2  uint64 = 0x94d049bb133111eb

	fnvOffset uint64 = 0xcbf29ce484222325
	fnvPrime  uint64 = 0x100000001b3
)

// Splitmix64 applies one splitmix64 step to x and returns the mixed value.
// All arithmetic wraps modulo 2^64, which uint64 gives us natively.
func Splitmix64(x uint64) uint64 {
	x += splitmixGamma
	z := x
	z = (z ^ (z >> 30)) * splitmixMul1
	z = (z ^ (z >> 27)) * splitmixMul2
	return z ^ (z >> 31)
}

// Fnv1a64 hashes s with 64-bit FNV-1a over UTF-16 code units. Code-unit
// granularity is the cross-runtime contract for text keys; for ASCII input it
// is equivalent to byte-wise FNV-1a.
func Fnv1a64(s string) uint64 {
	h := fnvOffset
	for _, cu := range utf16.Encode([]rune(s)) {
		h ^= uint64(cu)
		h *= fnvPrime
	}
	return h
}

// HashKey normalizes a single heterogeneous key into a 64-bit value. Text is
// hashed with Fnv1a64. Integers are reinterpreted as two's-complement uint64,
// so negative keys hash differently from their positive counterparts. Floats
// are truncated toward zero before reinterpretation, so 3.14 and 3.99 hash
// identically. Any other type is a programming error and panics.
func HashKey(key any) uint64 {
	switch k := key.(type) {
	case string:
		return Fnv1a64(k)
	case uint64:
		return k
	case int64:
		return uint64(k)
	case int:
		return uint64(int64(k))
	case int32:
		return uint64(int64(k))
	case uint32:
		return uint64(k)
	case uint:
		return uint64(k)
	case float64:
		return uint64(int64(math.Trunc(k)))
	case float32:
		return uint64(int64(math.Trunc(float64(k))))
	default:
		panic(fmt.Sprintf("procgen: unsupported key type %T", key))
	}
}

// Hash64 folds a sequence of keys into a seed starting from a zero state:
// state = Splitmix64(state ^ HashKey(part)) per part. With no parts it
// returns Splitmix64(0).
func Hash64(parts ...any) uint64 {
	if len(parts) == 0 {
		return Splitmix64(0)
	}
	var state uint64
	for _, p := range parts {
		state = Splitmix64(state ^ HashKey(p))
	}
	return state
}

// DeriveSeed folds keys into a child seed starting from parent. This is the
// sole mechanism for building the hierarchical seed tree (campaign → sector →
// system → mission/encounter). With zero keys the fold runs zero times and
// parent is returned unchanged.
func DeriveSeed(parent uint64, parts ...any) uint64 {
	state := parent
	for _, p := range parts {
		state = Splitmix64(state ^ HashKey(p))
	}
	return state
}

// FormatSeed renders a seed as decimal text, the representation used for
// configuration and test inputs.
func FormatSeed(seed uint64) string {
	return strconv.FormatUint(seed, 10)
}

// ParseSeed parses the decimal text form produced by FormatSeed.
func ParseSeed(s string) (uint64, error) {
	seed, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid seed %q: %w", s, err)
	}
	return seed, nil
}
