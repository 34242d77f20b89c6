// Package core has core logic for band projection, readiness scoring and the momentum trend.
package core

import (
	"context"
	"strconv"
	"time"

	"github.com/huangsam/examtwin/internal/contract"
	"github.com/huangsam/examtwin/internal/promfile"
	"github.com/huangsam/examtwin/schema"
	"go.uber.org/zap"
)

// ExecutorFunc defines the function signature for executing the different commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, w contract.ResultWriter) error

// GetReadinessReport evaluates the configured inputs and gives the result a run identity.
// It is shared by the CLI executors and the MCP handlers.
func GetReadinessReport(ctx context.Context, cfg *contract.Config) (schema.Report, error) {
	report, err := Evaluate(cfg.Inputs, randSourceFrom(ctx, cfg.Seed))
	if err != nil {
		return schema.Report{}, err
	}
	report = stampReport(report, time.Now())

	if !shouldSuppressHeader(ctx) {
		contract.Logger().Info("Evaluated readiness",
			zap.String("run_id", report.RunID),
			zap.Int("readiness", report.Readiness),
			zap.String("zone", string(report.Zone)),
			zap.Float64("projected_band", report.Projection.ProjectedBand),
		)
	}
	return report, nil
}

// GetMomentumTrend generates the trend for an explicit readiness value.
func GetMomentumTrend(ctx context.Context, current int, seed uint64) (schema.TrendResult, error) {
	if current < 0 || current > schema.MaxReadiness {
		return schema.TrendResult{}, &schema.InvalidInputError{Violations: []schema.FieldViolation{{
			Field:  "readiness",
			Value:  strconv.Itoa(current),
			Reason: "must be between 0 and " + strconv.Itoa(schema.MaxReadiness),
		}}}
	}
	return schema.TrendResult{
		Current: current,
		Points:  GenerateMomentumTrend(current, randSourceFrom(ctx, seed)),
	}, nil
}

// ExecuteReport evaluates the inputs and prints the readiness dashboard.
// It serves as the main entry point for the 'report' command.
func ExecuteReport(ctx context.Context, cfg *contract.Config, w contract.ResultWriter) error {
	start := time.Now()
	report, err := GetReadinessReport(ctx, cfg)
	if err != nil {
		return err
	}
	if err := exportMetrics(cfg, report); err != nil {
		return err
	}
	return w.WriteReport(report, cfg, time.Since(start))
}

// ExecuteTrend evaluates the inputs and prints only the momentum trend.
func ExecuteTrend(ctx context.Context, cfg *contract.Config, w contract.ResultWriter) error {
	report, err := GetReadinessReport(ctx, cfg)
	if err != nil {
		return err
	}
	return w.WriteTrend(schema.TrendResult{Current: report.Readiness, Points: report.Trend}, cfg)
}

// ExecuteFormulas displays the definitions of every derived indicator.
// This is a static display that does not read the inputs.
func ExecuteFormulas(_ context.Context, cfg *contract.Config, w contract.ResultWriter) error {
	return w.WriteFormulas(BuildFormulasRenderModel(), cfg)
}

// exportMetrics writes the Prometheus textfile when one is configured.
func exportMetrics(cfg *contract.Config, report schema.Report) error {
	if cfg.MetricsFile == "" {
		return nil
	}
	if err := promfile.WriteReport(cfg.MetricsFile, report); err != nil {
		return err
	}
	contract.Logger().Debug("Wrote metrics file", zap.String("path", cfg.MetricsFile))
	return nil
}
