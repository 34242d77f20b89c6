package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/examtwin/internal/contract"
	"github.com/huangsam/examtwin/internal/parquet"
	"github.com/huangsam/examtwin/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

const reportTitle = "IELTS Readiness Dashboard"

// PrintReport outputs the readiness report, dispatching based on the output format configured.
func PrintReport(report schema.Report, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON")
	case schema.YAMLOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeYAML(w, report)
		}, "Wrote YAML")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportCSV(w, report)
		}, "Wrote CSV")
	case schema.MarkdownOut, schema.HTMLOut:
		return writeMarkdownOrHTML(cfg.OutputFile, cfg.Output == schema.HTMLOut, reportTitle, func() string {
			return buildReportMarkdown(report)
		})
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires an output file")
		}
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return parquet.WriteReadinessParquet(w, parquet.RecordsFromReport(report))
		}, "Wrote Parquet")
	default:
		// Default to the human-readable dashboard
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportText(w, report, cfg, duration)
		}, "Wrote text")
	}
}

// writeReportText renders the dashboard: tiles, gauge, insights and trend.
func writeReportText(w io.Writer, report schema.Report, cfg *contract.Config, duration time.Duration) error {
	if _, err := fmt.Fprintf(w, "🎯 %s\n%s\n\n", reportTitle, strings.Repeat("=", len(reportTitle)+3)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "⏳ %d days until your exam\n", report.Countdown.DaysRemaining); err != nil {
		return err
	}
	if report.Countdown.Urgent {
		warning := report.Countdown.Warning
		if cfg.UseColors {
			warning = contract.RiskColor.Sprint(warning)
		}
		if _, err := fmt.Fprintf(w, "⚠️  %s\n", warning); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	// 1. Tiles
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Projected Band", "Readiness", "Band Gap", "Zone", "Confidence"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	tiles := [][]string{{
		fmt.Sprintf("%.1f", report.Projection.ProjectedBand),
		fmt.Sprintf("%d%%", report.Readiness),
		report.GapDisplay,
		contract.GetColorZoneLabel(report.Zone, cfg.UseColors),
		string(report.Confidence),
	}}
	if err := table.Bulk(tiles); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// 2. Gauge
	if _, err := fmt.Fprintf(w, "\nReadiness\n%s\n%s\n\n",
		renderGauge(report.Readiness, report.Gauge, getGaugeWidth(cfg), cfg.UseColors),
		renderGaugeLegend(report.Gauge)); err != nil {
		return err
	}

	// 3. Insights
	lines := []string{
		"💡 " + report.WeakestInsight,
		"👉 Next action: " + contract.GetColorAdvice(report.NextAction, cfg.UseColors),
		"📉 Risk: " + contract.GetColorAdvice(report.Risk, cfg.UseColors),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	// 4. Trend
	if _, err := fmt.Fprintln(w, "Momentum Trend"); err != nil {
		return err
	}
	if err := writeTrendTable(w, report.Trend); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "%s\n", report.Caption); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Computed in %v. Run %s\n", duration, report.RunID); err != nil {
		return err
	}
	return nil
}

// writeReportCSV writes the report as field/value rows.
func writeReportCSV(w io.Writer, report schema.Report) error {
	return writeCSVWithHeader(w, []string{"field", "value"}, func(cw *csv.Writer) error {
		f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
		rows := [][]string{
			{"run_id", report.RunID},
			{"generated_at", report.GeneratedAt.Format(time.RFC3339)},
			{"target_band", f(report.Inputs.TargetBand)},
			{"exam_days", strconv.Itoa(report.Inputs.ExamDays)},
			{"listening", f(report.Inputs.Scores.Listening)},
			{"reading", f(report.Inputs.Scores.Reading)},
			{"writing", f(report.Inputs.Scores.Writing)},
			{"speaking", f(report.Inputs.Scores.Speaking)},
			{"accuracy", f(report.Inputs.Accuracy)},
			{"consistency", strconv.Itoa(report.Inputs.Consistency)},
			{"mocks_taken", strconv.Itoa(report.Inputs.MocksTaken)},
			{"projected_band", fmt.Sprintf("%.1f", report.Projection.ProjectedBand)},
			{"average_band", f(report.Projection.Average)},
			{"weakest_section", string(report.Projection.WeakestSection)},
			{"readiness", strconv.Itoa(report.Readiness)},
			{"zone", string(report.Zone)},
			{"band_gap", fmt.Sprintf("%.1f", report.BandGap)},
			{"gap_display", report.GapDisplay},
			{"confidence", string(report.Confidence)},
			{"next_action", report.NextAction.Message},
			{"risk_severity", string(report.Risk.Severity)},
			{"risk", report.Risk.Message},
			{"urgent", strconv.FormatBool(report.Countdown.Urgent)},
		}
		for _, p := range report.Trend {
			rows = append(rows, []string{"trend:" + p.Label, strconv.Itoa(p.Readiness)})
		}
		for _, row := range rows {
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

// buildReportMarkdown lays the dashboard out as a markdown document.
func buildReportMarkdown(report schema.Report) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# 🎯 %s\n\n", reportTitle)
	sb.WriteString("| Projected Band | Readiness | Band Gap | Zone | Confidence |\n")
	sb.WriteString("|---:|---:|---:|---|---|\n")
	fmt.Fprintf(&sb, "| %.1f | %d%% | %s | %s | %s |\n\n",
		report.Projection.ProjectedBand, report.Readiness, report.GapDisplay,
		contract.GetPlainZoneLabel(report.Zone), report.Confidence)

	fmt.Fprintf(&sb, "**Exam countdown:** %d days\n\n", report.Countdown.DaysRemaining)
	if report.Countdown.Urgent {
		fmt.Fprintf(&sb, "> ⚠️ %s\n\n", report.Countdown.Warning)
	}

	sb.WriteString("## Insights\n\n")
	fmt.Fprintf(&sb, "- **Weakest section:** %s\n", report.WeakestInsight)
	fmt.Fprintf(&sb, "- **Next action:** %s\n", report.NextAction.Message)
	fmt.Fprintf(&sb, "- **Risk:** %s\n\n", report.Risk.Message)

	sb.WriteString("## Momentum Trend\n\n")
	sb.WriteString(buildTrendMarkdownTable(report.Trend))
	fmt.Fprintf(&sb, "\n_%s_\n\n", report.Caption)
	fmt.Fprintf(&sb, "Run `%s` generated at %s\n", report.RunID, report.GeneratedAt.Format(time.RFC3339))
	return sb.String()
}
