package cmd

import (
	"errors"
	"os"

	"github.com/huangsam/examtwin/core"
	"github.com/huangsam/examtwin/internal/contract"
	"github.com/huangsam/examtwin/internal/outwriter"
	"github.com/spf13/cobra"
)

// checkExitCode is returned when the gate fails, so scripts can tell it apart from errors.
const checkExitCode = 2

// checkCmd gates on readiness for scripts and reminders.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Fail when readiness is below a minimum or the exam is at risk",
	Long: `Evaluate the inputs and exit with code 2 when readiness is below
--min-readiness or when the risk flag is critical. Errors exit with code 1.

Examples:
  # Nightly reminder: fail below the momentum zone
  examtwin check --input-file me.hjson

  # Stricter gate
  examtwin check --input-file me.hjson --min-readiness 75`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		err := core.ExecuteCheck(rootCtx, cfg, outwriter.NewOutWriter())
		if errors.Is(err, core.ErrCheckFailed) {
			_ = stopProfiling()
			os.Exit(checkExitCode)
		}
		if err != nil {
			contract.LogFatal("Readiness check failed", err)
		}
	},
}
