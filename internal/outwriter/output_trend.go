package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/huangsam/examtwin/internal/contract"
	"github.com/huangsam/examtwin/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

const trendTitle = "Momentum Trend"

// PrintTrend outputs the momentum trend, dispatching based on the output format configured.
func PrintTrend(result schema.TrendResult, cfg *contract.Config) error {
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
			return writeTrendCSV(w, result)
		}, "Wrote CSV")
	case schema.MarkdownOut, schema.HTMLOut:
		return writeMarkdownOrHTML(cfg.OutputFile, cfg.Output == schema.HTMLOut, trendTitle, func() string {
			return fmt.Sprintf("# 📈 %s\n\n%s", trendTitle, buildTrendMarkdownTable(result.Points))
		})
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is only available for the report command")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if _, err := fmt.Fprintf(w, "📈 %s (current readiness %d%%)\n", trendTitle, result.Current); err != nil {
				return err
			}
			return writeTrendTable(w, result.Points)
		}, "Wrote text")
	}
}

// writeTrendTable renders trend points as a table with a small bar per point.
func writeTrendTable(w io.Writer, points []schema.TrendPoint) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Week", "Readiness", "Bar"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	data := make([][]string, 0, len(points))
	for _, p := range points {
		data = append(data, []string{
			p.Label,
			fmt.Sprintf("%d%%", p.Readiness),
			strings.Repeat(gaugeFilled, p.Readiness/5),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeTrendCSV writes one row per trend point.
func writeTrendCSV(w io.Writer, result schema.TrendResult) error {
	return writeCSVWithHeader(w, []string{"index", "label", "readiness"}, func(cw *csv.Writer) error {
		for i, p := range result.Points {
			if err := cw.Write([]string{strconv.Itoa(i), p.Label, strconv.Itoa(p.Readiness)}); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

// buildTrendMarkdownTable renders trend points as a markdown table.
func buildTrendMarkdownTable(points []schema.TrendPoint) string {
	var sb strings.Builder
	sb.WriteString("| Week | Readiness |\n|---|---:|\n")
	for _, p := range points {
		fmt.Fprintf(&sb, "| %s | %d%% |\n", mdEscape(p.Label), p.Readiness)
	}
	return sb.String()
}
