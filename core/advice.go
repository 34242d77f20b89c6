package core

import (
	"fmt"

	"github.com/huangsam/examtwin/schema"
)

// RecommendAction returns the next best action for a readiness percent.
func RecommendAction(readiness int) schema.Advice {
	switch ClassifyZone(readiness) {
	case schema.RiskZone:
		return schema.Advice{Severity: schema.CriticalSeverity, Message: schema.ActionCritical}
	case schema.MomentumZone:
		return schema.Advice{Severity: schema.AdvisorySeverity, Message: schema.ActionAdvisory}
	default:
		return schema.Advice{Severity: schema.PositiveSeverity, Message: schema.ActionPositive}
	}
}

// BandGap returns target minus projected, rounded to one decimal. Positive means shortfall.
func BandGap(targetBand, projectedBand float64) float64 {
	return schema.RoundTenth(targetBand - projectedBand)
}

// AssessRisk flags a shortfall only when the gap is positive and the exam is
// less than schema.RiskDaysThreshold days away. Any other combination is on track.
func AssessRisk(bandGap float64, examDays int) schema.Advice {
	if bandGap > 0 && examDays < schema.RiskDaysThreshold {
		return schema.Advice{
			Severity: schema.CriticalSeverity,
			Message:  fmt.Sprintf(schema.RiskCriticalFormat, bandGap),
		}
	}
	return schema.Advice{Severity: schema.PositiveSeverity, Message: schema.RiskOnTrack}
}

// ConfidenceLevel rates how much data backs the prediction.
func ConfidenceLevel(mocksTaken, consistency int) schema.Confidence {
	switch {
	case mocksTaken >= schema.HighConfidenceMock && consistency >= schema.HighConfidenceDays:
		return schema.HighConfidence
	case mocksTaken >= schema.MedConfidenceMock:
		return schema.MediumConfidence
	default:
		return schema.LowConfidence
	}
}

// GapDisplay is what the gap tile shows: the gap itself, or "Achieved" once the target is met.
func GapDisplay(bandGap float64) string {
	if bandGap > 0 {
		return fmt.Sprintf("%.1f", bandGap)
	}
	return schema.GapAchieved
}

// WeakestInsight explains which section holds the projection back.
func WeakestInsight(section schema.Section) string {
	return fmt.Sprintf(schema.WeakestInsightFormat, section)
}

// ExamCountdown reports the days left and whether the urgency warning applies.
func ExamCountdown(examDays int) schema.Countdown {
	c := schema.Countdown{DaysRemaining: examDays}
	if examDays < schema.UrgentDaysCutoff {
		c.Urgent = true
		c.Warning = schema.UrgencyWarning
	}
	return c
}
