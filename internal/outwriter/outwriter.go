// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/huangsam/examtwin/internal/contract"
	"github.com/huangsam/examtwin/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

var _ contract.ResultWriter = &OutWriter{} // Compile-time check

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteReport prints the readiness dashboard using the configured output format.
func (ow *OutWriter) WriteReport(report schema.Report, cfg *contract.Config, duration time.Duration) error {
	return PrintReport(report, cfg, duration)
}

// WriteTrend prints the momentum trend using the configured output format.
func (ow *OutWriter) WriteTrend(result schema.TrendResult, cfg *contract.Config) error {
	return PrintTrend(result, cfg)
}

// WriteFormulas prints the formula definitions using the configured output format.
func (ow *OutWriter) WriteFormulas(model *schema.FormulasRenderModel, cfg *contract.Config) error {
	return PrintFormulas(model, cfg)
}

// WriteCheck prints the readiness gate result using the configured output format.
func (ow *OutWriter) WriteCheck(result schema.CheckResult, cfg *contract.Config) error {
	return PrintCheck(result, cfg)
}
