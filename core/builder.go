package core

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/huangsam/examtwin/schema"
)

// Evaluate validates the inputs and derives every dashboard indicator from them.
// It returns an error wrapping schema.ErrInvalidInput when any field is out of range.
// The only non-deterministic part is the trend, which is drawn from rng.
func Evaluate(in schema.PreparationInputs, rng RandSource) (schema.Report, error) {
	if err := in.Validate(); err != nil {
		return schema.Report{}, err
	}

	projection := ProjectBand(in.Scores)
	readiness := ComputeReadiness(in.Accuracy, in.Consistency, in.MocksTaken, projection.Average)
	gap := BandGap(in.TargetBand, projection.ProjectedBand)

	return schema.Report{
		Inputs:         in,
		Projection:     projection,
		Readiness:      readiness,
		Zone:           ClassifyZone(readiness),
		BandGap:        gap,
		GapDisplay:     GapDisplay(gap),
		WeakestInsight: WeakestInsight(projection.WeakestSection),
		NextAction:     RecommendAction(readiness),
		Risk:           AssessRisk(gap, in.ExamDays),
		Countdown:      ExamCountdown(in.ExamDays),
		Confidence:     ConfidenceLevel(in.MocksTaken, in.Consistency),
		Caption:        schema.ConfidenceCaption,
		Trend:          GenerateMomentumTrend(readiness, rng),
		Gauge:          slices.Clone(schema.GaugeBands),
	}, nil
}

// stampReport gives a report its run identity. The run ID ties together the
// rows of a columnar export.
func stampReport(report schema.Report, now time.Time) schema.Report {
	report.RunID = uuid.NewString()
	report.GeneratedAt = now.UTC()
	return report
}
