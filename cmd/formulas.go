package cmd

import (
	"github.com/huangsam/examtwin/core"
	"github.com/huangsam/examtwin/internal/contract"
	"github.com/huangsam/examtwin/internal/outwriter"
	"github.com/spf13/cobra"
)

// formulasCmd describes how each indicator is computed.
var formulasCmd = &cobra.Command{
	Use:   "formulas",
	Short: "Show the formulas, weights and thresholds behind the dashboard",
	Long: `Display how the projected band, readiness percent, zones, risk flag,
confidence level and momentum trend are derived. The inputs are not read.`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteFormulas(rootCtx, cfg, outwriter.NewOutWriter()); err != nil {
			contract.LogFatal("Cannot display formulas", err)
		}
	},
}
