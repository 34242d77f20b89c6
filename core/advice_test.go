package core

import (
	"testing"

	"github.com/huangsam/examtwin/schema"
	"github.com/stretchr/testify/assert"
)

func TestRecommendAction(t *testing.T) {
	tests := []struct {
		readiness int
		severity  schema.Severity
		message   string
	}{
		{10, schema.CriticalSeverity, schema.ActionCritical},
		{49, schema.CriticalSeverity, schema.ActionCritical},
		{50, schema.AdvisorySeverity, schema.ActionAdvisory},
		{74, schema.AdvisorySeverity, schema.ActionAdvisory},
		{75, schema.PositiveSeverity, schema.ActionPositive},
		{100, schema.PositiveSeverity, schema.ActionPositive},
	}

	for _, tt := range tests {
		got := RecommendAction(tt.readiness)
		assert.Equal(t, tt.severity, got.Severity, "readiness %d", tt.readiness)
		assert.Equal(t, tt.message, got.Message)
	}
}

func TestBandGap(t *testing.T) {
	assert.Equal(t, 1.2, BandGap(7.5, 6.3))
	assert.Equal(t, 0.0, BandGap(6.5, 6.5))
	assert.Equal(t, -0.5, BandGap(6.0, 6.5))
}

func TestAssessRisk(t *testing.T) {
	tests := []struct {
		name     string
		gap      float64
		days     int
		severity schema.Severity
		contains string
	}{
		{"short on time with a gap", 1.0, 25, schema.CriticalSeverity, "1.0"},
		{"ample time despite a gap", 0.5, 40, schema.PositiveSeverity, schema.RiskOnTrack},
		{"boundary day is on track", 2.0, schema.RiskDaysThreshold, schema.PositiveSeverity, schema.RiskOnTrack},
		{"target already met", 0, 10, schema.PositiveSeverity, schema.RiskOnTrack},
		{"target exceeded", -0.5, 10, schema.PositiveSeverity, schema.RiskOnTrack},
		{"smallest gap", 0.1, 29, schema.CriticalSeverity, "~0.1 band"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AssessRisk(tt.gap, tt.days)
			assert.Equal(t, tt.severity, got.Severity)
			assert.Contains(t, got.Message, tt.contains)
		})
	}
}

func TestConfidenceLevel(t *testing.T) {
	tests := []struct {
		mocks, consistency int
		expected           schema.Confidence
	}{
		{6, 5, schema.HighConfidence},
		{5, 4, schema.HighConfidence},
		{5, 3, schema.MediumConfidence},
		{3, 1, schema.MediumConfidence},
		{2, 0, schema.MediumConfidence},
		{1, 0, schema.LowConfidence},
		{0, 7, schema.LowConfidence},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ConfidenceLevel(tt.mocks, tt.consistency), "mocks=%d consistency=%d", tt.mocks, tt.consistency)
	}
}

func TestGapDisplay(t *testing.T) {
	assert.Equal(t, "1.2", GapDisplay(1.2))
	assert.Equal(t, "0.5", GapDisplay(0.5))
	assert.Equal(t, schema.GapAchieved, GapDisplay(0))
	assert.Equal(t, schema.GapAchieved, GapDisplay(-1))
}

func TestWeakestInsight(t *testing.T) {
	msg := WeakestInsight(schema.Writing)
	assert.Contains(t, msg, "constrained by Writing")
}

func TestExamCountdown(t *testing.T) {
	calm := ExamCountdown(45)
	assert.Equal(t, 45, calm.DaysRemaining)
	assert.False(t, calm.Urgent)
	assert.Empty(t, calm.Warning)

	edge := ExamCountdown(schema.UrgentDaysCutoff)
	assert.False(t, edge.Urgent)

	urgent := ExamCountdown(schema.UrgentDaysCutoff - 1)
	assert.True(t, urgent.Urgent)
	assert.Equal(t, schema.UrgencyWarning, urgent.Warning)
}
