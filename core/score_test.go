package core

import (
	"testing"

	"github.com/huangsam/examtwin/schema"
	"github.com/stretchr/testify/assert"
)

func TestProjectBand(t *testing.T) {
	tests := []struct {
		name            string
		scores          schema.SectionScores
		expectedBand    float64
		expectedAverage float64
		weakestScore    float64
		weakestSection  schema.Section
	}{
		{
			name:            "default scores round half up",
			scores:          schema.SectionScores{Listening: 6.5, Reading: 6.5, Writing: 6.0, Speaking: 6.0},
			expectedBand:    6.3,
			expectedAverage: 6.25,
			weakestScore:    6.0,
			weakestSection:  schema.Writing,
		},
		{
			name:            "weakest section caps the average",
			scores:          schema.SectionScores{Listening: 9, Reading: 9, Writing: 9, Speaking: 4},
			expectedBand:    4.5,
			expectedAverage: 7.75,
			weakestScore:    4,
			weakestSection:  schema.Speaking,
		},
		{
			name:            "uniform scores",
			scores:          schema.SectionScores{Listening: 7, Reading: 7, Writing: 7, Speaking: 7},
			expectedBand:    7,
			expectedAverage: 7,
			weakestScore:    7,
			weakestSection:  schema.Listening,
		},
		{
			name:            "all zero",
			scores:          schema.SectionScores{},
			expectedBand:    0,
			expectedAverage: 0,
			weakestScore:    0,
			weakestSection:  schema.Listening,
		},
		{
			name:            "tie resolves to earlier section",
			scores:          schema.SectionScores{Listening: 8, Reading: 5.5, Writing: 5.5, Speaking: 8},
			expectedBand:    6,
			expectedAverage: 6.75,
			weakestScore:    5.5,
			weakestSection:  schema.Reading,
		},
		{
			name:            "average just above weakest allowance",
			scores:          schema.SectionScores{Listening: 5, Reading: 6, Writing: 6, Speaking: 6},
			expectedBand:    5.5,
			expectedAverage: 5.75,
			weakestScore:    5,
			weakestSection:  schema.Listening,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProjectBand(tt.scores)
			assert.InDelta(t, tt.expectedBand, got.ProjectedBand, 1e-9)
			assert.InDelta(t, tt.expectedAverage, got.Average, 1e-9)
			assert.Equal(t, tt.weakestScore, got.WeakestScore)
			assert.Equal(t, tt.weakestSection, got.WeakestSection)
		})
	}
}

// Rounding half up can lift the band above the raw average (6.25 -> 6.3),
// so the average bounds the band only after rounding.
func TestProjectBandBoundedByRoundedAverage(t *testing.T) {
	got := ProjectBand(schema.SectionScores{Listening: 6.5, Reading: 6.5, Writing: 6.0, Speaking: 6.0})

	assert.InDelta(t, 6.25, got.Average, 1e-9)
	assert.Greater(t, got.ProjectedBand, got.Average)
	assert.LessOrEqual(t, got.ProjectedBand, schema.RoundTenth(got.Average))
	assert.LessOrEqual(t, got.ProjectedBand, got.WeakestScore+schema.WeakestAllowance)
}

func TestComputeReadiness(t *testing.T) {
	tests := []struct {
		name        string
		accuracy    float64
		consistency int
		mocks       int
		average     float64
		expected    int
	}{
		{"default inputs", 65, 4, 3, 6.25, 56},
		{"nothing done yet", 0, 0, 0, 0, 0},
		{"every factor maxed", 100, 7, 10, 9, 100},
		{"out of range accuracy is capped", 250, 7, 10, 9, 100},
		{"only accuracy", 50, 0, 0, 0, 17},
		{"only consistency", 0, 7, 0, 0, 25},
		{"only mocks", 0, 0, 5, 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ComputeReadiness(tt.accuracy, tt.consistency, tt.mocks, tt.average))
		})
	}
}

func TestComputeReadinessMonotonic(t *testing.T) {
	// Raising any single factor never lowers readiness.
	prev := -1
	for acc := 0; acc <= 100; acc++ {
		r := ComputeReadiness(float64(acc), 3, 4, 6)
		assert.GreaterOrEqual(t, r, prev, "accuracy %d", acc)
		prev = r
	}
	prev = -1
	for days := schema.MinConsistency; days <= schema.MaxConsistency; days++ {
		r := ComputeReadiness(50, days, 4, 6)
		assert.GreaterOrEqual(t, r, prev, "consistency %d", days)
		prev = r
	}
	prev = -1
	for mocks := schema.MinMocks; mocks <= schema.MaxMocks; mocks++ {
		r := ComputeReadiness(50, 3, mocks, 6)
		assert.GreaterOrEqual(t, r, prev, "mocks %d", mocks)
		prev = r
	}
	prev = -1
	for avg := 0.0; avg <= 9.0; avg += 0.125 {
		r := ComputeReadiness(50, 3, 4, avg)
		assert.GreaterOrEqual(t, r, prev, "average %v", avg)
		prev = r
	}
}

func TestClassifyZone(t *testing.T) {
	tests := []struct {
		readiness int
		expected  schema.Zone
	}{
		{0, schema.RiskZone},
		{49, schema.RiskZone},
		{50, schema.MomentumZone},
		{74, schema.MomentumZone},
		{75, schema.SafeZone},
		{100, schema.SafeZone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ClassifyZone(tt.readiness), "readiness %d", tt.readiness)
	}
}

func TestClassifyZoneMatchesGauge(t *testing.T) {
	for r := 0; r <= schema.MaxReadiness; r++ {
		zone := ClassifyZone(r)
		matched := 0
		for i, band := range schema.GaugeBands {
			last := i == len(schema.GaugeBands)-1
			if r >= band.Start && (r < band.End || (last && r == band.End)) {
				matched++
				assert.Equal(t, band.Zone, zone, "readiness %d", r)
			}
		}
		assert.Equal(t, 1, matched, "readiness %d", r)
	}
}
