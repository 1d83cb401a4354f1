// Package waveform fakes an audio level meter from a fixed set of random
// magnitudes.
package waveform

import (
	"math/rand/v2"
	"strings"
	"time"
)

const (
	DefaultSize      = 80
	DefaultMagnitude = 0.5 // samples fall in [0, DefaultMagnitude)
	BarScale         = 50  // bar cells for a sample of 1.0
)

type Samples []float64

// New draws n samples from rng, each in [0, magnitude).
func New(rng *rand.Rand, n int, magnitude float64) Samples {
	s := make(Samples, n)
	for i := range s {
		s[i] = rng.Float64() * magnitude
	}
	return s
}

// NewSeeded is New with the defaults and a PCG source built from seed.
func NewSeeded(seed uint64) Samples {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return New(rng, DefaultSize, DefaultMagnitude)
}

// BarLength maps elapsed time to a sample, spreading the samples evenly
// across the session. Never less than 1.
func (s Samples) BarLength(elapsed, total time.Duration) int {
	if len(s) == 0 || total <= 0 {
		return 1
	}
	idx := int(elapsed.Seconds()/total.Seconds()*float64(len(s))) % len(s)
	if idx < 0 {
		idx += len(s)
	}
	return max(1, int(s[idx]*BarScale))
}

// Bar draws n full blocks.
func Bar(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("█", n)
}
