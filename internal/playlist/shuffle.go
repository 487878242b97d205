package playlist

import (
	"math/rand/v2"
	"time"
)

// Rand is the random source used for shuffling. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// NewRand returns a PCG generator seeded with seed. A zero seed is replaced
// by the current time.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>32|1)) //nolint:gosec // not used for security
}

// Shuffled returns every song exactly once in a random order drawn from r.
// The stored order is not modified. Returns ErrEmpty for an empty playlist.
func (p *Playlist) Shuffled(r Rand) ([]SongView, error) {
	if p.size == 0 {
		return nil, ErrEmpty
	}

	songs := p.List()
	order := Permutation(r, len(songs))
	result := make([]SongView, len(order))
	for i, pos := range order {
		result[i] = songs[pos]
	}
	return result, nil
}

// Permutation returns the positions [0, n) shuffled with Fisher-Yates:
// for i from n-1 down to 1, swap i with a uniform j in [0, i].
func Permutation(r Rand, n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		order[i], order[j] = order[j], order[i]
	}
	return order
}
