package outwriter

import (
	"path/filepath"
	"testing"

	"github.com/huangsam/examtwin/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutWriterDelegates(t *testing.T) {
	ow := NewOutWriter()
	dir := t.TempDir()

	reportPath := filepath.Join(dir, "report.md")
	require.NoError(t, ow.WriteReport(sampleReport(), testConfig(schema.MarkdownOut, reportPath), 0))
	assert.Contains(t, readOutput(t, reportPath), "IELTS Readiness Dashboard")

	trendPath := filepath.Join(dir, "trend.csv")
	require.NoError(t, ow.WriteTrend(sampleTrend(), testConfig(schema.CSVOut, trendPath)))
	assert.Contains(t, readOutput(t, trendPath), "3,Current,56")

	formulasPath := filepath.Join(dir, "formulas.txt")
	require.NoError(t, ow.WriteFormulas(sampleFormulas(), testConfig(schema.TextOut, formulasPath)))
	assert.Contains(t, readOutput(t, formulasPath), "Exam Readiness Formulas")

	checkPath := filepath.Join(dir, "check.yaml")
	result := schema.CheckResult{Passed: true, Readiness: 80, MinReadiness: 50, Zone: schema.SafeZone}
	require.NoError(t, ow.WriteCheck(result, testConfig(schema.YAMLOut, checkPath)))
	assert.Contains(t, readOutput(t, checkPath), "passed: true")
}
