package game

// SeededRand is a linear congruential generator producing a deterministic
// sequence of values in [0,1) from an integer seed. Two generators built
// from the same seed yield identical sequences on every platform. It backs
// the deterministic shuffles only and is in no way cryptographic.
type SeededRand struct {
	state uint32
}

// NewSeededRand returns a generator positioned at the start of the sequence
// for seed.
func NewSeededRand(seed uint32) *SeededRand {
	return &SeededRand{state: seed}
}

// Next advances the generator and returns the next value in [0,1).
func (r *SeededRand) Next() float64 {
	r.state = r.state*1664525 + 1013904223
	return float64(r.state%2147483647) / 2147483647
}
