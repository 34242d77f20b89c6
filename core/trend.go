package core

import (
	"math/rand/v2"
	"time"

	"github.com/huangsam/examtwin/schema"
)

// RandSource is the random source behind the synthetic momentum trend.
// *rand.Rand from math/rand/v2 satisfies it.
type RandSource interface {
	// IntN returns a value in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// NewRandSource returns a deterministic source for a non-zero seed and a
// time-seeded one otherwise.
func NewRandSource(seed uint64) RandSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// randomInt returns a value in [lo, hi], both inclusive.
func randomInt(rng RandSource, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}

// GenerateMomentumTrend backfills three synthetic weekly points before the current
// readiness. Each point is max(floor, current - drop) with drop drawn fresh from
// rng on every call; nothing is persisted. The last point is always current.
func GenerateMomentumTrend(current int, rng RandSource) []schema.TrendPoint {
	points := make([]schema.TrendPoint, 0, len(schema.TrendLabels))
	for i, step := range schema.TrendSteps {
		drop := randomInt(rng, step.MinDrop, step.MaxDrop)
		points = append(points, schema.TrendPoint{
			Label:     schema.TrendLabels[i],
			Readiness: max(step.Floor, current-drop),
		})
	}
	return append(points, schema.TrendPoint{
		Label:     schema.TrendLabels[len(schema.TrendLabels)-1],
		Readiness: current,
	})
}
