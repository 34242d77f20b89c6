package outwriter

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/huangsam/examtwin/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTrend() schema.TrendResult {
	return schema.TrendResult{Current: 56, Points: sampleReport().Trend}
}

func sampleFormulas() *schema.FormulasRenderModel {
	return &schema.FormulasRenderModel{
		Title:       "Exam Readiness Formulas",
		Description: "Readiness = weighted sum of factors normalized to 0-100",
		Rounding:    "Bands are rounded half away from zero to one decimal.",
		Definitions: []schema.FormulaDefinition{
			{
				Name:    "Readiness",
				Purpose: "How prepared you are",
				Formula: "0.35*accuracy + 0.25*consistency",
				Factors: []schema.FormulaFactor{
					{Name: "accuracy", Weight: 0.35, Normalizer: "percent as given"},
					{Name: "consistency", Weight: 0.25, Normalizer: "days / 7 * 100"},
				},
			},
			{
				Name:    "Zone",
				Purpose: "Traffic-light bucket",
				Formula: "Risk | Momentum | Safe",
				Rules:   []string{"Risk: readiness < 50"},
			},
		},
	}
}

func TestPrintTrendFormats(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "trend.txt")
	require.NoError(t, PrintTrend(sampleTrend(), testConfig(schema.TextOut, path)))
	text := readOutput(t, path)
	assert.Contains(t, text, "current readiness 56%")
	assert.Contains(t, text, "Week 2")
	assert.Contains(t, text, strings.Repeat(gaugeFilled, 11))

	path = filepath.Join(dir, "trend.json")
	require.NoError(t, PrintTrend(sampleTrend(), testConfig(schema.JSONOut, path)))
	var decoded schema.TrendResult
	require.NoError(t, json.Unmarshal([]byte(readOutput(t, path)), &decoded))
	assert.Equal(t, sampleTrend(), decoded)

	path = filepath.Join(dir, "trend.csv")
	require.NoError(t, PrintTrend(sampleTrend(), testConfig(schema.CSVOut, path)))
	assert.Equal(t, "index,label,readiness\n0,Week 1,41\n1,Week 2,47\n2,Week 3,53\n3,Current,56\n", readOutput(t, path))

	path = filepath.Join(dir, "trend.md")
	require.NoError(t, PrintTrend(sampleTrend(), testConfig(schema.MarkdownOut, path)))
	assert.Contains(t, readOutput(t, path), "| Current | 56% |")

	assert.Error(t, PrintTrend(sampleTrend(), testConfig(schema.ParquetOut, filepath.Join(dir, "trend.parquet"))))
}

func TestWriteFormulasText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeFormulasText(&buf, sampleFormulas()))

	output := buf.String()
	assert.Contains(t, output, "Exam Readiness Formulas")
	assert.Contains(t, output, "READINESS: How prepared you are")
	assert.Contains(t, output, "Formula: 0.35*accuracy + 0.25*consistency")
	assert.Contains(t, output, "- accuracy (weight 0.35): percent as given")
	assert.Contains(t, output, "- Risk: readiness < 50")
}

func TestPrintFormulasFormats(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "formulas.json")
	require.NoError(t, PrintFormulas(sampleFormulas(), testConfig(schema.JSONOut, path)))
	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(readOutput(t, path)), &result))
	assert.Equal(t, "Exam Readiness Formulas", result["title"])
	assert.Contains(t, result, "definitions")

	path = filepath.Join(dir, "formulas.csv")
	require.NoError(t, PrintFormulas(sampleFormulas(), testConfig(schema.CSVOut, path)))
	csvOut := readOutput(t, path)
	assert.Contains(t, csvOut, "Name,Purpose,Formula,Factors,Rules")
	assert.Contains(t, csvOut, "accuracy=0.35|consistency=0.25")

	path = filepath.Join(dir, "formulas.html")
	require.NoError(t, PrintFormulas(sampleFormulas(), testConfig(schema.HTMLOut, path)))
	htmlOut := readOutput(t, path)
	assert.Contains(t, htmlOut, "<h2>Readiness</h2>")
	assert.Contains(t, htmlOut, "<table>")

	path = filepath.Join(dir, "formulas.yaml")
	require.NoError(t, PrintFormulas(sampleFormulas(), testConfig(schema.YAMLOut, path)))
	assert.Contains(t, readOutput(t, path), "title: Exam Readiness Formulas")
}

func TestWriteCheckText(t *testing.T) {
	passed := schema.CheckResult{
		Passed: true, Readiness: 56, MinReadiness: 50, Zone: schema.MomentumZone,
		Risk: schema.Advice{Severity: schema.PositiveSeverity, Message: schema.RiskOnTrack},
	}
	var buf bytes.Buffer
	require.NoError(t, writeCheckText(&buf, passed, false))
	assert.Contains(t, buf.String(), "Readiness Check Results:")
	assert.Regexp(t, `Readiness:\s+56%`, buf.String())
	assert.Contains(t, buf.String(), "✅ Readiness check passed")

	failed := passed
	failed.Passed = false
	failed.MinReadiness = 60
	failed.Failures = []string{"readiness 56% is below the minimum of 60%"}
	buf.Reset()
	require.NoError(t, writeCheckText(&buf, failed, true))
	assert.Contains(t, buf.String(), "Readiness check failed")
	assert.Contains(t, buf.String(), "  - readiness 56% is below the minimum of 60%")
}

func TestPrintCheckFormats(t *testing.T) {
	result := schema.CheckResult{
		Passed: false, Readiness: 40, MinReadiness: 50, Zone: schema.RiskZone,
		Risk:     schema.Advice{Severity: schema.CriticalSeverity, Message: "At current pace, you may miss your target by ~1.0 band."},
		Failures: []string{"readiness 40% is below the minimum of 50%", "At current pace, you may miss your target by ~1.0 band."},
	}
	dir := t.TempDir()

	path := filepath.Join(dir, "check.csv")
	require.NoError(t, PrintCheck(result, testConfig(schema.CSVOut, path)))
	assert.Contains(t, readOutput(t, path), "false,40,50,Risk,critical,")

	path = filepath.Join(dir, "check.md")
	require.NoError(t, PrintCheck(result, testConfig(schema.MarkdownOut, path)))
	md := readOutput(t, path)
	assert.Contains(t, md, "# Readiness Check: ❌ Failed")
	assert.Contains(t, md, "## Failures")

	path = filepath.Join(dir, "check.json")
	require.NoError(t, PrintCheck(result, testConfig(schema.JSONOut, path)))
	var decoded schema.CheckResult
	require.NoError(t, json.Unmarshal([]byte(readOutput(t, path)), &decoded))
	assert.Equal(t, result, decoded)
}
