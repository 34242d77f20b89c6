package schema

// Custom string types for type safety.
type (
	// Zone represents the qualitative readiness bucket.
	Zone string

	// Severity represents how urgent an advice message is.
	Severity string

	// Confidence represents how much the prediction can be trusted.
	Confidence string

	// Section represents one of the four IELTS skills.
	Section string

	// OutputMode represents the format of the output.
	OutputMode string
)

// All readiness zones.
const (
	RiskZone     Zone = "Risk"
	MomentumZone Zone = "Momentum"
	SafeZone     Zone = "Safe"
)

// All advice severities.
const (
	CriticalSeverity Severity = "critical"
	AdvisorySeverity Severity = "advisory"
	PositiveSeverity Severity = "positive"
)

// All confidence levels.
const (
	HighConfidence   Confidence = "High"
	MediumConfidence Confidence = "Medium"
	LowConfidence    Confidence = "Low"
)

// All sections, in the fixed order used for the weakest-section lookup.
const (
	Listening Section = "Listening"
	Reading   Section = "Reading"
	Writing   Section = "Writing"
	Speaking  Section = "Speaking"
)

// SectionOrder is the order used to break ties for the weakest section.
var SectionOrder = []Section{Listening, Reading, Writing, Speaking}

// All output modes supported.
const (
	TextOut     OutputMode = "text" // default
	JSONOut     OutputMode = "json"
	CSVOut      OutputMode = "csv"
	YAMLOut     OutputMode = "yaml"
	MarkdownOut OutputMode = "markdown"
	HTMLOut     OutputMode = "html"
	ParquetOut  OutputMode = "parquet"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:     {},
	JSONOut:     {},
	CSVOut:      {},
	YAMLOut:     {},
	MarkdownOut: {},
	HTMLOut:     {},
	ParquetOut:  {},
}

// Readiness weights. Each factor is first normalized to a 0-100 scale.
const (
	WeightAccuracy    = 0.35
	WeightConsistency = 0.25
	WeightMocks       = 0.20
	WeightAverage     = 0.20
)

// Zone thresholds on the readiness percent. Lower bounds are inclusive.
const (
	MomentumThreshold = 50
	SafeThreshold     = 75
	MaxReadiness      = 100
)

// Projection and risk constants.
const (
	WeakestAllowance   = 0.5 // overall band may exceed the weakest section by at most this much
	RiskDaysThreshold  = 30  // a positive band gap is critical when fewer days remain
	UrgentDaysCutoff   = 20  // countdown turns urgent below this many days
	HighConfidenceMock = 5
	HighConfidenceDays = 4
	MedConfidenceMock  = 2
)

// Input ranges enforced before the calculator runs.
const (
	MinTargetBand  = 5.0
	MaxTargetBand  = 9.0
	MinSectionBand = 0.0
	MaxSectionBand = 9.0
	BandStep       = 0.5
	MinExamDays    = 7
	MaxExamDays    = 180
	MinAccuracy    = 0.0
	MaxAccuracy    = 100.0
	MinConsistency = 0
	MaxConsistency = 7
	MinMocks       = 0
	MaxMocks       = 10
)

// Default inputs, matching the starting slider positions of the dashboard.
const (
	DefaultTargetBand  = 7.5
	DefaultExamDays    = 45
	DefaultListening   = 6.5
	DefaultReading     = 6.5
	DefaultWriting     = 6.0
	DefaultSpeaking    = 6.0
	DefaultAccuracy    = 65.0
	DefaultConsistency = 4
	DefaultMocks       = 3
)

// Momentum trend labels, oldest first.
var TrendLabels = []string{"Week 1", "Week 2", "Week 3", "Current"}

// TrendStep describes how one synthetic trend point is derived from the current readiness:
// max(Floor, current - rand[MinDrop, MaxDrop]).
type TrendStep struct {
	Floor   int
	MinDrop int
	MaxDrop int
}

// TrendSteps holds the backfill rules for the three points before "Current".
var TrendSteps = []TrendStep{
	{Floor: 20, MinDrop: 10, MaxDrop: 20},
	{Floor: 30, MinDrop: 5, MaxDrop: 15},
	{Floor: 40, MinDrop: 0, MaxDrop: 10},
}

// Advice and caption text shown on the dashboard.
const (
	ActionCritical = "Increase study consistency to at least 4 days/week and take a mock test immediately."
	ActionAdvisory = "Focus on your weakest section and increase accuracy by ~10% to enter the safe zone."
	ActionPositive = "Maintain momentum and focus on advanced practice."

	RiskCriticalFormat = "At current pace, you may miss your target by ~%.1f band."
	RiskOnTrack        = "You are currently on track based on preparation velocity."

	WeakestInsightFormat = "Your projected band is constrained by %s. Improving this section by 1 band could significantly raise your overall score."
	UrgencyWarning       = "High urgency period. Daily preparation strongly recommended."
	ConfidenceCaption    = "Directional readiness indicator, not a guaranteed score."
	GapAchieved          = "Achieved"
)
