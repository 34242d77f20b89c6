package core

import (
	"github.com/huangsam/examtwin/schema"
)

// ProjectBand projects the overall band from the four section scores.
// The overall band is capped by the weakest section plus half a band, then
// rounded to one decimal place. Ties for the weakest section resolve to the first
// section in schema.SectionOrder.
func ProjectBand(scores schema.SectionScores) schema.ProjectionResult {
	values := scores.Values()

	var sum float64
	weakestIdx := 0
	for i, v := range values {
		sum += v
		if v < values[weakestIdx] {
			weakestIdx = i
		}
	}
	average := sum / float64(len(values))
	weakest := values[weakestIdx]

	return schema.ProjectionResult{
		ProjectedBand:  schema.RoundTenth(min(average, weakest+schema.WeakestAllowance)),
		Average:        average,
		WeakestScore:   weakest,
		WeakestSection: schema.SectionOrder[weakestIdx],
	}
}

// ComputeReadiness returns the readiness percent (0-100).
// Every factor is normalized to 0-100 and weighted; the sum is capped at 100 and
// truncated toward zero. No lower clamp is applied since valid inputs cannot go negative.
func ComputeReadiness(accuracy float64, consistency, mocksTaken int, average float64) int {
	// Explicit conversions keep each product rounded on its own, so no
	// platform fuses them into a multiply-add and shifts a truncation edge.
	raw := float64(accuracy*schema.WeightAccuracy) +
		float64(float64(consistency)/7*100*schema.WeightConsistency) +
		float64(float64(mocksTaken)/10*100*schema.WeightMocks) +
		float64(average/9*100*schema.WeightAverage)

	return int(min(float64(schema.MaxReadiness), raw))
}

// ClassifyZone buckets a readiness percent: <50 Risk, [50,75) Momentum, >=75 Safe.
func ClassifyZone(readiness int) schema.Zone {
	switch {
	case readiness < schema.MomentumThreshold:
		return schema.RiskZone
	case readiness < schema.SafeThreshold:
		return schema.MomentumZone
	default:
		return schema.SafeZone
	}
}
