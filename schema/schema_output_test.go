package schema_test

import (
	"testing"

	"github.com/huangsam/examtwin/schema"
	"github.com/stretchr/testify/assert"
)

func TestZoneForSeverity(t *testing.T) {
	assert.Equal(t, schema.RiskZone, schema.ZoneForSeverity(schema.CriticalSeverity))
	assert.Equal(t, schema.MomentumZone, schema.ZoneForSeverity(schema.AdvisorySeverity))
	assert.Equal(t, schema.SafeZone, schema.ZoneForSeverity(schema.PositiveSeverity))
}

func TestZoneDisplay(t *testing.T) {
	assert.Equal(t, "Risk Zone", schema.ZoneTitle(schema.RiskZone))
	assert.Equal(t, "🟡", schema.ZoneEmoji(schema.MomentumZone))
	assert.Equal(t, "🟢", schema.ZoneEmoji(schema.SafeZone))
}

func TestGaugeBandsCoverRange(t *testing.T) {
	bands := schema.GaugeBands
	assert.Equal(t, 0, bands[0].Start)
	for i := 1; i < len(bands); i++ {
		assert.Equal(t, bands[i-1].End, bands[i].Start, "bands must be contiguous")
	}
	assert.Equal(t, schema.MaxReadiness, bands[len(bands)-1].End)
}

func TestSectionScoresValuesOrder(t *testing.T) {
	s := schema.SectionScores{Listening: 1, Reading: 2, Writing: 3, Speaking: 4}
	assert.Equal(t, []float64{1, 2, 3, 4}, s.Values())
	assert.Len(t, schema.SectionOrder, 4)
}
