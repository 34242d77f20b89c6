package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/huangsam/examtwin/internal/contract"
	"github.com/huangsam/examtwin/schema"
)

// PrintCheck outputs the readiness gate result, dispatching based on the output format configured.
func PrintCheck(result schema.CheckResult, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.YAMLOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeYAML(w, result)
		}, "Wrote YAML")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCheckCSV(w, result)
		}, "Wrote CSV")
	case schema.MarkdownOut, schema.HTMLOut:
		return writeMarkdownOrHTML(cfg.OutputFile, cfg.Output == schema.HTMLOut, "Readiness Check", func() string {
			return buildCheckMarkdown(result)
		})
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is only available for the report command")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCheckText(w, result, cfg.UseColors)
		}, "Wrote text")
	}
}

// writeCheckText prints the result in a concise format suitable for scripts.
func writeCheckText(w io.Writer, result schema.CheckResult, useColors bool) error {
	if _, err := fmt.Fprintln(w, "Readiness Check Results:"); err != nil {
		return err
	}

	labels := []string{"Readiness:", "Minimum:", "Zone:", "Risk:"}
	values := []string{
		fmt.Sprintf("%d%%", result.Readiness),
		fmt.Sprintf("%d%%", result.MinReadiness),
		contract.GetColorZoneLabel(result.Zone, useColors),
		contract.GetColorAdvice(result.Risk, useColors),
	}
	maxLabelLen := 0
	for _, label := range labels {
		maxLabelLen = max(maxLabelLen, len(label))
	}
	for i, label := range labels {
		if _, err := fmt.Fprintf(w, "  %-*s %s\n", maxLabelLen+1, label, values[i]); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	if result.Passed {
		msg := "✅ Readiness check passed"
		if useColors {
			msg = contract.SafeColor.Sprint(msg)
		}
		_, err := fmt.Fprintln(w, msg)
		return err
	}

	msg := "❌ Readiness check failed"
	if useColors {
		msg = contract.RiskColor.Sprint(msg)
	}
	if _, err := fmt.Fprintln(w, msg); err != nil {
		return err
	}
	for _, failure := range result.Failures {
		if _, err := fmt.Fprintf(w, "  - %s\n", failure); err != nil {
			return err
		}
	}
	return nil
}

func writeCheckCSV(w io.Writer, result schema.CheckResult) error {
	header := []string{"passed", "readiness", "min_readiness", "zone", "risk_severity", "failures"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		return cw.Write([]string{
			strconv.FormatBool(result.Passed),
			strconv.Itoa(result.Readiness),
			strconv.Itoa(result.MinReadiness),
			string(result.Zone),
			string(result.Risk.Severity),
			strings.Join(result.Failures, "|"),
		})
	})
}

func buildCheckMarkdown(result schema.CheckResult) string {
	var sb strings.Builder
	status := "✅ Passed"
	if !result.Passed {
		status = "❌ Failed"
	}
	fmt.Fprintf(&sb, "# Readiness Check: %s\n\n", status)
	sb.WriteString("| Readiness | Minimum | Zone |\n|---:|---:|---|\n")
	fmt.Fprintf(&sb, "| %d%% | %d%% | %s |\n\n", result.Readiness, result.MinReadiness, contract.GetPlainZoneLabel(result.Zone))
	fmt.Fprintf(&sb, "**Risk:** %s\n", result.Risk.Message)
	if len(result.Failures) > 0 {
		sb.WriteString("\n## Failures\n\n")
		for _, failure := range result.Failures {
			fmt.Fprintf(&sb, "- %s\n", failure)
		}
	}
	return sb.String()
}
