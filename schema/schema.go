// Package schema has models, enums and input ranges for all parts of examtwin.
package schema

import "time"

// SectionScores holds the four IELTS section bands, each in [0,9].
type SectionScores struct {
	Listening float64 `json:"listening" yaml:"listening"`
	Reading   float64 `json:"reading" yaml:"reading"`
	Writing   float64 `json:"writing" yaml:"writing"`
	Speaking  float64 `json:"speaking" yaml:"speaking"`
}

// Values returns the scores in SectionOrder.
func (s SectionScores) Values() []float64 {
	return []float64{s.Listening, s.Reading, s.Writing, s.Speaking}
}

// PreparationInputs is the single immutable input record for one computation pass.
type PreparationInputs struct {
	TargetBand  float64       `json:"target_band" yaml:"target_band"`
	ExamDays    int           `json:"exam_days" yaml:"exam_days"`
	Scores      SectionScores `json:"scores" yaml:"scores"`
	Accuracy    float64       `json:"accuracy" yaml:"accuracy"`       // Practice accuracy percent (0-100)
	Consistency int           `json:"consistency" yaml:"consistency"` // Study days per week (0-7)
	MocksTaken  int           `json:"mocks_taken" yaml:"mocks_taken"` // Mock tests taken (0-10)
}

// DefaultInputs returns the inputs the dashboard starts from.
func DefaultInputs() PreparationInputs {
	return PreparationInputs{
		TargetBand: DefaultTargetBand,
		ExamDays:   DefaultExamDays,
		Scores: SectionScores{
			Listening: DefaultListening,
			Reading:   DefaultReading,
			Writing:   DefaultWriting,
			Speaking:  DefaultSpeaking,
		},
		Accuracy:    DefaultAccuracy,
		Consistency: DefaultConsistency,
		MocksTaken:  DefaultMocks,
	}
}

// ProjectionResult is the projected overall band and the statistics it was derived from.
// ProjectedBand never exceeds Average nor WeakestScore+WeakestAllowance.
type ProjectionResult struct {
	ProjectedBand  float64 `json:"projected_band" yaml:"projected_band"`
	Average        float64 `json:"average" yaml:"average"`
	WeakestScore   float64 `json:"weakest_score" yaml:"weakest_score"`
	WeakestSection Section `json:"weakest_section" yaml:"weakest_section"`
}

// Advice is a severity-tagged message, used for both the next action and the risk flag.
type Advice struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Message  string   `json:"message" yaml:"message"`
}

// TrendPoint is one point of the momentum trend.
type TrendPoint struct {
	Label     string `json:"label" yaml:"label"`
	Readiness int    `json:"readiness" yaml:"readiness"`
}

// GaugeBand is a colored range on the readiness gauge. Start is inclusive, End exclusive
// except for the last band which includes MaxReadiness.
type GaugeBand struct {
	Zone  Zone `json:"zone" yaml:"zone"`
	Start int  `json:"start" yaml:"start"`
	End   int  `json:"end" yaml:"end"`
}

// GaugeBands lists the zone ranges in ascending order.
var GaugeBands = []GaugeBand{
	{Zone: RiskZone, Start: 0, End: MomentumThreshold},
	{Zone: MomentumZone, Start: MomentumThreshold, End: SafeThreshold},
	{Zone: SafeZone, Start: SafeThreshold, End: MaxReadiness},
}

// Countdown describes the time left before the exam.
type Countdown struct {
	DaysRemaining int    `json:"days_remaining" yaml:"days_remaining"`
	Urgent        bool   `json:"urgent" yaml:"urgent"`
	Warning       string `json:"warning,omitempty" yaml:"warning,omitempty"`
}

// Report is everything the dashboard displays for one set of inputs.
// Renderers display its fields without further transformation.
type Report struct {
	RunID          string            `json:"run_id" yaml:"run_id"`
	GeneratedAt    time.Time         `json:"generated_at" yaml:"generated_at"`
	Inputs         PreparationInputs `json:"inputs" yaml:"inputs"`
	Projection     ProjectionResult  `json:"projection" yaml:"projection"`
	Readiness      int               `json:"readiness" yaml:"readiness"`
	Zone           Zone              `json:"zone" yaml:"zone"`
	BandGap        float64           `json:"band_gap" yaml:"band_gap"`
	GapDisplay     string            `json:"gap_display" yaml:"gap_display"`
	WeakestInsight string            `json:"weakest_insight" yaml:"weakest_insight"`
	NextAction     Advice            `json:"next_action" yaml:"next_action"`
	Risk           Advice            `json:"risk" yaml:"risk"`
	Countdown      Countdown         `json:"countdown" yaml:"countdown"`
	Confidence     Confidence        `json:"confidence" yaml:"confidence"`
	Caption        string            `json:"caption" yaml:"caption"`
	Trend          []TrendPoint      `json:"trend" yaml:"trend"`
	Gauge          []GaugeBand       `json:"gauge" yaml:"gauge"`
}

// TrendResult is the standalone output of the trend command.
type TrendResult struct {
	Current int          `json:"current" yaml:"current"`
	Points  []TrendPoint `json:"points" yaml:"points"`
}
