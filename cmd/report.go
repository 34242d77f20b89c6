package cmd

import (
	"github.com/huangsam/examtwin/core"
	"github.com/huangsam/examtwin/internal/contract"
	"github.com/huangsam/examtwin/internal/outwriter"
	"github.com/spf13/cobra"
)

// reportCmd prints the full readiness dashboard.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the readiness dashboard",
	Long: `Project the overall band from the four section bands and combine it with
practice accuracy, study consistency and mock tests into a readiness percent.

The dashboard shows the projected band, readiness zone, band gap, next best
action, risk flag, confidence level, exam countdown and a momentum trend.

Examples:
  # Dashboard with the default inputs
  examtwin report

  # Your own numbers
  examtwin report --target-band 7 --exam-days 14 --listening 7 --reading 6.5 --writing 6 --speaking 6.5

  # Inputs from a profile file, exported as HTML
  examtwin report --input-file me.hjson --output html --output-file readiness.html

  # Stable trend for screenshots
  examtwin report --seed 42`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run:     runReport,
}

// runReport is shared by the root command and reportCmd.
func runReport(_ *cobra.Command, _ []string) {
	if err := core.ExecuteReport(rootCtx, cfg, outwriter.NewOutWriter()); err != nil {
		contract.LogFatal("Cannot run report", err)
	}
}
