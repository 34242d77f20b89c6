package schema

import (
	"math"
	"strconv"
)

// RoundTenth rounds to one decimal place, half away from zero.
// For the non-negative bands shown on the dashboard this is round half up (6.25 -> 6.3).
func RoundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// Validate checks every field against its range and step. It returns nil or an
// *InvalidInputError listing all violations.
func (in PreparationInputs) Validate() error {
	var violations []FieldViolation

	checkBand := func(field string, v, lo, hi float64) {
		switch {
		case math.IsNaN(v) || math.IsInf(v, 0):
			violations = append(violations, FieldViolation{Field: field, Value: formatFloat(v), Reason: "must be a finite number"})
		case v < lo || v > hi:
			violations = append(violations, FieldViolation{Field: field, Value: formatFloat(v), Reason: "must be between " + formatFloat(lo) + " and " + formatFloat(hi)})
		case !onStep(v, BandStep):
			violations = append(violations, FieldViolation{Field: field, Value: formatFloat(v), Reason: "must be a multiple of " + formatFloat(BandStep)})
		}
	}
	checkInt := func(field string, v, lo, hi int) {
		if v < lo || v > hi {
			violations = append(violations, FieldViolation{Field: field, Value: strconv.Itoa(v), Reason: "must be between " + strconv.Itoa(lo) + " and " + strconv.Itoa(hi)})
		}
	}

	checkBand("target_band", in.TargetBand, MinTargetBand, MaxTargetBand)
	checkInt("exam_days", in.ExamDays, MinExamDays, MaxExamDays)
	checkBand("listening", in.Scores.Listening, MinSectionBand, MaxSectionBand)
	checkBand("reading", in.Scores.Reading, MinSectionBand, MaxSectionBand)
	checkBand("writing", in.Scores.Writing, MinSectionBand, MaxSectionBand)
	checkBand("speaking", in.Scores.Speaking, MinSectionBand, MaxSectionBand)

	switch {
	case math.IsNaN(in.Accuracy) || math.IsInf(in.Accuracy, 0):
		violations = append(violations, FieldViolation{Field: "accuracy", Value: formatFloat(in.Accuracy), Reason: "must be a finite number"})
	case in.Accuracy < MinAccuracy || in.Accuracy > MaxAccuracy:
		violations = append(violations, FieldViolation{Field: "accuracy", Value: formatFloat(in.Accuracy), Reason: "must be between 0 and 100"})
	case in.Accuracy != math.Trunc(in.Accuracy):
		violations = append(violations, FieldViolation{Field: "accuracy", Value: formatFloat(in.Accuracy), Reason: "must be a whole percent"})
	}

	checkInt("consistency", in.Consistency, MinConsistency, MaxConsistency)
	checkInt("mocks_taken", in.MocksTaken, MinMocks, MaxMocks)

	if len(violations) > 0 {
		return &InvalidInputError{Violations: violations}
	}
	return nil
}

// onStep reports whether v is a whole multiple of step.
func onStep(v, step float64) bool {
	q := v / step
	return q == math.Trunc(q)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
