package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/huangsam/examtwin/internal/contract"
	"github.com/huangsam/examtwin/schema"
)

// ErrCheckFailed is returned when the readiness gate does not pass.
// The CLI maps it to a dedicated exit code.
var ErrCheckFailed = errors.New("readiness check failed")

// EvaluateCheck gates a report: it fails when readiness is below minReadiness
// or when the risk flag is critical.
func EvaluateCheck(report schema.Report, minReadiness int) schema.CheckResult {
	result := schema.CheckResult{
		Readiness:    report.Readiness,
		MinReadiness: minReadiness,
		Zone:         report.Zone,
		Risk:         report.Risk,
	}
	if report.Readiness < minReadiness {
		result.Failures = append(result.Failures,
			fmt.Sprintf("readiness %d%% is below the minimum of %d%%", report.Readiness, minReadiness))
	}
	if report.Risk.Severity == schema.CriticalSeverity {
		result.Failures = append(result.Failures, report.Risk.Message)
	}
	result.Passed = len(result.Failures) == 0
	return result
}

// ExecuteCheck runs the readiness gate for scripts and reminders.
// It writes the result and returns ErrCheckFailed when the gate does not pass.
func ExecuteCheck(ctx context.Context, cfg *contract.Config, w contract.ResultWriter) error {
	report, err := GetReadinessReport(ctx, cfg)
	if err != nil {
		return err
	}
	if err := exportMetrics(cfg, report); err != nil {
		return err
	}

	result := EvaluateCheck(report, cfg.MinReadiness)
	if err := w.WriteCheck(result, cfg); err != nil {
		return err
	}
	if !result.Passed {
		return fmt.Errorf("%w: %d violation(s) found", ErrCheckFailed, len(result.Failures))
	}
	return nil
}
