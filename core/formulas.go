package core

import (
	"fmt"

	"github.com/huangsam/examtwin/schema"
)

// BuildFormulasRenderModel describes every derived indicator, its weights and thresholds.
// This is a static model that does not depend on any input.
func BuildFormulasRenderModel() *schema.FormulasRenderModel {
	return &schema.FormulasRenderModel{
		Title:       "Exam Readiness Formulas",
		Description: "Readiness = weighted sum of factors normalized to 0-100",
		Rounding:    "Bands are rounded half away from zero to one decimal; readiness is truncated toward zero.",
		Definitions: []schema.FormulaDefinition{
			{
				Name:    "Projected Band",
				Purpose: "Overall band the current section scores support",
				Formula: fmt.Sprintf("round1(min(average, weakest + %.1f))", schema.WeakestAllowance),
				Rules: []string{
					"average = mean of listening, reading, writing and speaking",
					"weakest = lowest section; ties go to the earlier section",
				},
			},
			{
				Name:    "Readiness",
				Purpose: "How prepared you are to hit the target, as a percent",
				Formula: fmt.Sprintf("floor(min(%d, %.2f*accuracy + %.2f*consistency + %.2f*mocks + %.2f*average))",
					schema.MaxReadiness, schema.WeightAccuracy, schema.WeightConsistency, schema.WeightMocks, schema.WeightAverage),
				Factors: []schema.FormulaFactor{
					{Name: "accuracy", Weight: schema.WeightAccuracy, Normalizer: "percent as given"},
					{Name: "consistency", Weight: schema.WeightConsistency, Normalizer: fmt.Sprintf("days / %d * 100", schema.MaxConsistency)},
					{Name: "mocks", Weight: schema.WeightMocks, Normalizer: fmt.Sprintf("mocks / %d * 100", schema.MaxMocks)},
					{Name: "average", Weight: schema.WeightAverage, Normalizer: fmt.Sprintf("average / %.0f * 100", schema.MaxSectionBand)},
				},
			},
			{
				Name:    "Zone",
				Purpose: "Traffic-light bucket for readiness",
				Formula: "Risk | Momentum | Safe",
				Rules: []string{
					fmt.Sprintf("Risk: readiness < %d", schema.MomentumThreshold),
					fmt.Sprintf("Momentum: %d <= readiness < %d", schema.MomentumThreshold, schema.SafeThreshold),
					fmt.Sprintf("Safe: readiness >= %d", schema.SafeThreshold),
				},
			},
			{
				Name:    "Band Gap",
				Purpose: "Distance between the target and the projection",
				Formula: "round1(target - projected)",
				Rules:   []string{fmt.Sprintf("%q is shown once the gap is zero or negative", schema.GapAchieved)},
			},
			{
				Name:    "Risk",
				Purpose: "Flags a likely miss close to the exam",
				Formula: fmt.Sprintf("gap > 0 and examDays < %d", schema.RiskDaysThreshold),
			},
			{
				Name:    "Confidence",
				Purpose: "How much practice data backs the prediction",
				Formula: "High | Medium | Low",
				Rules: []string{
					fmt.Sprintf("High: mocks >= %d and consistency >= %d", schema.HighConfidenceMock, schema.HighConfidenceDays),
					fmt.Sprintf("Medium: mocks >= %d", schema.MedConfidenceMock),
					"Low: otherwise",
				},
			},
			{
				Name:    "Momentum Trend",
				Purpose: "Synthetic weekly backfill ending at the current readiness",
				Formula: "max(floor, current - drop), drop drawn uniformly per point",
				Rules:   trendRules(),
			},
		},
	}
}

func trendRules() []string {
	rules := make([]string, 0, len(schema.TrendSteps)+1)
	for i, step := range schema.TrendSteps {
		rules = append(rules, fmt.Sprintf("%s: floor %d, drop %d-%d", schema.TrendLabels[i], step.Floor, step.MinDrop, step.MaxDrop))
	}
	return append(rules, schema.TrendLabels[len(schema.TrendLabels)-1]+": current readiness")
}
