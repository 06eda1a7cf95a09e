package shuffle

import "time"

// FastRand is a xorshift64 Source, deterministic for a given seed
type FastRand struct {
	state uint64
}

// NewFastRand creates a source; zero seed is remapped since xorshift sticks at zero
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

// NewTimeSeeded creates a source seeded from the wall clock
func NewTimeSeeded() *FastRand {
	return NewFastRand(uint64(time.Now().UnixNano()))
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Intn implements Source
func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}
