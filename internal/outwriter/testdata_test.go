package outwriter

import (
	"time"

	"github.com/huangsam/examtwin/internal/contract"
	"github.com/huangsam/examtwin/schema"
)

func sampleReport() schema.Report {
	return schema.Report{
		RunID:       "0b7e4c8a-2f4d-4b6e-9a51-2c3d4e5f6a7b",
		GeneratedAt: time.Date(2026, 5, 4, 8, 0, 0, 0, time.UTC),
		Inputs:      schema.DefaultInputs(),
		Projection: schema.ProjectionResult{
			ProjectedBand:  6.3,
			Average:        6.25,
			WeakestScore:   6,
			WeakestSection: schema.Writing,
		},
		Readiness:      56,
		Zone:           schema.MomentumZone,
		BandGap:        1.2,
		GapDisplay:     "1.2",
		WeakestInsight: "Your projected band is constrained by Writing. Improving this section by 1 band could significantly raise your overall score.",
		NextAction:     schema.Advice{Severity: schema.AdvisorySeverity, Message: schema.ActionAdvisory},
		Risk:           schema.Advice{Severity: schema.PositiveSeverity, Message: schema.RiskOnTrack},
		Countdown:      schema.Countdown{DaysRemaining: 45},
		Confidence:     schema.MediumConfidence,
		Caption:        schema.ConfidenceCaption,
		Trend: []schema.TrendPoint{
			{Label: "Week 1", Readiness: 41},
			{Label: "Week 2", Readiness: 47},
			{Label: "Week 3", Readiness: 53},
			{Label: "Current", Readiness: 56},
		},
		Gauge: schema.GaugeBands,
	}
}

func urgentReport() schema.Report {
	report := sampleReport()
	report.Countdown = schema.Countdown{DaysRemaining: 12, Urgent: true, Warning: schema.UrgencyWarning}
	report.Risk = schema.Advice{Severity: schema.CriticalSeverity, Message: "At current pace, you may miss your target by ~1.2 band."}
	return report
}

func testConfig(output schema.OutputMode, outputFile string) *contract.Config {
	return &contract.Config{
		Inputs:     schema.DefaultInputs(),
		Output:     output,
		OutputFile: outputFile,
		Width:      100,
		UseColors:  false,
	}
}
