// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"time"

	"github.com/huangsam/examtwin/schema"
)

// ResultWriter renders computed results in the configured output format.
// This allows the executors to be tested without touching stdout or files.
type ResultWriter interface {
	// WriteReport renders the full readiness dashboard.
	WriteReport(report schema.Report, cfg *Config, duration time.Duration) error

	// WriteTrend renders a momentum trend on its own.
	WriteTrend(result schema.TrendResult, cfg *Config) error

	// WriteFormulas renders the formula definitions.
	WriteFormulas(model *schema.FormulasRenderModel, cfg *Config) error

	// WriteCheck renders the outcome of a readiness gate.
	WriteCheck(result schema.CheckResult, cfg *Config) error
}
