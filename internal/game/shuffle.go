package game

// Shuffle returns a new slice holding the elements of items in a
// seed-determined permutation. The input is never mutated. The permutation
// is Fisher-Yates driven by a fresh SeededRand, so the same (items, seed)
// pair always produces the same order.
func Shuffle[T any](items []T, seed uint32) []T {
	shuffled := make([]T, len(items))
	copy(shuffled, items)

	rng := NewSeededRand(seed)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := int(rng.Next() * float64(i+1))
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
