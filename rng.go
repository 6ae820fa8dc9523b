package glyphweave

import "math"

// warmup is the number of outputs discarded after seeding, which moves the
// generator away from its correlated initial states.
const warmup = 15

// Rand is a small fast counting generator (sfc32). It is not suitable for
// cryptographic use. Its zero value is usable but every zero value yields
// the same stream; use [Seed.Rand] instead.
type Rand struct {
	a, b, c, d uint32
}

func newRand(state [4]uint32) *Rand {
	r := &Rand{state[0], state[1], state[2], state[3]}
	for range warmup {
		r.Uint32()
	}
	return r
}

// Uint32 returns the next 32 random bits.
func (r *Rand) Uint32() uint32 {
	t := r.a + r.b + r.d
	r.d++
	r.a = r.b ^ (r.b >> 9)
	r.b = r.c + (r.c << 3)
	r.c = (r.c<<21 | r.c>>11) + t
	return t
}

// Float64 returns a value in [0, 1).
func (r *Rand) Float64() float64 {
	return float64(r.Uint32()) / (1 << 32)
}

// IntRange returns an integer in [lo, hi], both bounds inclusive. Swapped
// bounds are accepted.
func (r *Rand) IntRange(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	n := float64(hi) - float64(lo) + 1
	v := lo + int(math.Floor(r.Float64()*n))
	return min(v, hi)
}

// Coin returns true with the given probability, expressed in percent.
func (r *Rand) Coin(percent float64) bool {
	return r.Float64()*100 < percent
}

// Int63 returns a non-negative 63-bit integer built from two draws.
func (r *Rand) Int63() int64 {
	return int64(uint64(r.Uint32())<<31 ^ uint64(r.Uint32()))
}
