//go:build integration

// Package integration contains end-to-end tests for the examtwin binary.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags integration ./integration
package integration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reportJSON struct {
	Readiness  int     `json:"readiness"`
	Zone       string  `json:"zone"`
	BandGap    float64 `json:"band_gap"`
	Projection struct {
		ProjectedBand float64 `json:"projected_band"`
	} `json:"projection"`
	Trend []struct {
		Label     string `json:"label"`
		Readiness int    `json:"readiness"`
	} `json:"trend"`
}

func decodeReport(t *testing.T, out string) reportJSON {
	t.Helper()
	var r reportJSON
	require.NoError(t, json.Unmarshal([]byte(out), &r), out)
	return r
}

func TestReportDefaults(t *testing.T) {
	dir := t.TempDir()
	res := runExamtwin(t, dir, nil, "report", "--output", "json", "--seed", "7")
	require.Equal(t, 0, res.exitCode, res.stderr)

	r := decodeReport(t, res.stdout)
	assert.Equal(t, 56, r.Readiness)
	assert.Equal(t, "Momentum", r.Zone)
	assert.InDelta(t, 6.3, r.Projection.ProjectedBand, 1e-9)
	assert.InDelta(t, 1.2, r.BandGap, 1e-9)
	require.Len(t, r.Trend, 4)
	assert.Equal(t, 56, r.Trend[3].Readiness)
}

func TestReportIsDefaultCommand(t *testing.T) {
	dir := t.TempDir()
	res := runExamtwin(t, dir, nil, "--output", "json", "--seed", "7")
	require.Equal(t, 0, res.exitCode, res.stderr)
	assert.Equal(t, 56, decodeReport(t, res.stdout).Readiness)
}

func TestSeedIsReproducible(t *testing.T) {
	dir := t.TempDir()
	first := runExamtwin(t, dir, nil, "trend", "--output", "json", "--seed", "99")
	second := runExamtwin(t, dir, nil, "trend", "--output", "json", "--seed", "99")
	require.Equal(t, 0, first.exitCode, first.stderr)
	assert.JSONEq(t, first.stdout, second.stdout)
}

func TestInputFileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	profile := `{
  # all sections at 9
  listening: 9
  reading: 9
  writing: 9
  speaking: 9
  accuracy: 100
  consistency: 7
  mocks_taken: 10
}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "me.hjson"), []byte(profile), 0o644))

	res := runExamtwin(t, dir, []string{"EXAMTWIN_INPUT_FILE=me.hjson"}, "report", "--output", "json")
	require.Equal(t, 0, res.exitCode, res.stderr)

	r := decodeReport(t, res.stdout)
	assert.Equal(t, 100, r.Readiness)
	assert.Equal(t, "Safe", r.Zone)
}

func TestDotEnvIsLoaded(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("EXAMTWIN_ACCURACY=0\n"), 0o644))

	res := runExamtwin(t, dir, nil, "report", "--output", "json", "--seed", "1")
	require.Equal(t, 0, res.exitCode, res.stderr)
	// 56 with the default accuracy of 65, minus its 22.75 share
	assert.Equal(t, 34, decodeReport(t, res.stdout).Readiness)
}

func TestInvalidInputExitsWithError(t *testing.T) {
	dir := t.TempDir()
	res := runExamtwin(t, dir, nil, "report", "--listening", "6.3")
	assert.Equal(t, 1, res.exitCode)
	assert.Contains(t, res.stderr, "listening")
}

func TestCheckExitCodes(t *testing.T) {
	dir := t.TempDir()

	pass := runExamtwin(t, dir, nil, "check", "--output", "json")
	assert.Equal(t, 0, pass.exitCode, pass.stderr)

	// Positive band gap with fewer than 30 days left is critical
	fail := runExamtwin(t, dir, nil, "check", "--output", "json", "--exam-days", "14")
	assert.Equal(t, 2, fail.exitCode, fail.stderr)

	var result struct {
		Passed bool `json:"passed"`
	}
	require.NoError(t, json.Unmarshal([]byte(fail.stdout), &result))
	assert.False(t, result.Passed)
}

func TestMetricsFile(t *testing.T) {
	dir := t.TempDir()
	res := runExamtwin(t, dir, nil, "report", "--output", "json", "--metrics-file", "examtwin.prom")
	require.Equal(t, 0, res.exitCode, res.stderr)

	data, err := os.ReadFile(filepath.Join(dir, "examtwin.prom"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "examtwin_readiness_percent 56")
}

func TestParquetRequiresOutputFile(t *testing.T) {
	dir := t.TempDir()
	res := runExamtwin(t, dir, nil, "report", "--output", "parquet")
	assert.Equal(t, 1, res.exitCode)
	assert.Contains(t, res.stderr, "--output-file")
}
