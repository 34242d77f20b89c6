// Package parquet provides data structures and functions for exporting readiness
// reports to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"time"

	"github.com/huangsam/examtwin/schema"
	"github.com/parquet-go/parquet-go"
)

// ReadinessRecord is one trend point of a readiness report, denormalized with
// the run summary so every row stands on its own in a columnar store.
type ReadinessRecord struct {
	// RunID ties together the rows of one report
	RunID string `parquet:"run_id,snappy"`

	// GeneratedAt is when the report was computed (stored as TIMESTAMP with nanosecond precision)
	GeneratedAt time.Time `parquet:"generated_at,snappy"`

	TargetBand  float64 `parquet:"target_band,snappy"`
	ExamDays    int32   `parquet:"exam_days,snappy"`
	Listening   float64 `parquet:"listening,snappy"`
	Reading     float64 `parquet:"reading,snappy"`
	Writing     float64 `parquet:"writing,snappy"`
	Speaking    float64 `parquet:"speaking,snappy"`
	Accuracy    float64 `parquet:"accuracy,snappy"`
	Consistency int32   `parquet:"consistency,snappy"`
	MocksTaken  int32   `parquet:"mocks_taken,snappy"`

	ProjectedBand  float64 `parquet:"projected_band,snappy"`
	AverageBand    float64 `parquet:"average_band,snappy"`
	WeakestSection string  `parquet:"weakest_section,snappy"`
	Readiness      int32   `parquet:"readiness,snappy"`
	Zone           string  `parquet:"zone,snappy"`
	BandGap        float64 `parquet:"band_gap,snappy"`
	Confidence     string  `parquet:"confidence,snappy"`
	RiskSeverity   string  `parquet:"risk_severity,snappy"`

	// UrgencyWarning is only set inside the urgency window (nullable)
	UrgencyWarning *string `parquet:"urgency_warning,optional,snappy"`

	// TrendIndex is the position of the point, 0 being the oldest week
	TrendIndex     int32  `parquet:"trend_index,snappy"`
	TrendLabel     string `parquet:"trend_label,snappy"`
	TrendReadiness int32  `parquet:"trend_readiness,snappy"`
}

// RecordsFromReport flattens a report into one record per trend point.
func RecordsFromReport(report schema.Report) []ReadinessRecord {
	base := ReadinessRecord{
		RunID:          report.RunID,
		GeneratedAt:    report.GeneratedAt,
		TargetBand:     report.Inputs.TargetBand,
		ExamDays:       int32(report.Inputs.ExamDays),
		Listening:      report.Inputs.Scores.Listening,
		Reading:        report.Inputs.Scores.Reading,
		Writing:        report.Inputs.Scores.Writing,
		Speaking:       report.Inputs.Scores.Speaking,
		Accuracy:       report.Inputs.Accuracy,
		Consistency:    int32(report.Inputs.Consistency),
		MocksTaken:     int32(report.Inputs.MocksTaken),
		ProjectedBand:  report.Projection.ProjectedBand,
		AverageBand:    report.Projection.Average,
		WeakestSection: string(report.Projection.WeakestSection),
		Readiness:      int32(report.Readiness),
		Zone:           string(report.Zone),
		BandGap:        report.BandGap,
		Confidence:     string(report.Confidence),
		RiskSeverity:   string(report.Risk.Severity),
	}
	if report.Countdown.Urgent {
		warning := report.Countdown.Warning
		base.UrgencyWarning = &warning
	}

	records := make([]ReadinessRecord, len(report.Trend))
	for i, point := range report.Trend {
		rec := base
		rec.TrendIndex = int32(i)
		rec.TrendLabel = point.Label
		rec.TrendReadiness = int32(point.Readiness)
		records[i] = rec
	}
	return records
}

// WriteReadinessParquet writes a slice of ReadinessRecord structs as one Parquet file to w.
func WriteReadinessParquet(w io.Writer, data []ReadinessRecord) error {
	// The schema is automatically derived from the ReadinessRecord struct tags
	writer := parquet.NewGenericWriter[ReadinessRecord](w)

	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	// Close flushes the row group and writes the footer
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}
