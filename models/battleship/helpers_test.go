package battleship

import "math/rand"

// scriptedRand replays vals in order and returns 0 once they run out.
type scriptedRand struct {
	vals  []int
	calls int
}

func (r *scriptedRand) Intn(n int) int {
	var v int
	if r.calls < len(r.vals) {
		v = r.vals[r.calls]
	}
	r.calls++
	return v % n
}

type countingRand struct {
	rng   *rand.Rand
	calls int
}

func newCountingRand(seed int64) *countingRand {
	return &countingRand{rng: rand.New(rand.NewSource(seed))}
}

func (r *countingRand) Intn(n int) int {
	r.calls++
	return r.rng.Intn(n)
}

// Small but crowded enough that every placement rule gets exercised.
func denseSettings() Settings {
	return Settings{
		GridRows: 10,
		GridCols: 10,
		Earths:   []int{3, 2},
		Towers:   2,
		Ships:    []int{3, 2, 2},
	}
}
