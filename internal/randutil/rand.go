// Package randutil builds the seeded random sources used to draw secrets.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed, so the same
// seed always draws the same sequence of secrets.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// ResolveSeed returns seed when it is non-zero, otherwise one derived from now.
// Zero means "not configured" in settings and flags.
func ResolveSeed(seed int64, now time.Time) int64 {
	if seed != 0 {
		return seed
	}
	derived := int64(mix(uint64(now.UnixNano())) >> 1)
	if derived == 0 {
		return 1
	}
	return derived
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
