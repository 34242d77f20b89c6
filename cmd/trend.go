package cmd

import (
	"github.com/huangsam/examtwin/core"
	"github.com/huangsam/examtwin/internal/contract"
	"github.com/huangsam/examtwin/internal/outwriter"
	"github.com/spf13/cobra"
)

// trendCmd prints only the momentum trend.
var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Show the momentum trend leading up to the current readiness",
	Long: `Print the four-point momentum trend ending at the current readiness.

The earlier points are synthetic and drawn again on every run unless --seed is set.
Nothing is stored between runs.`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTrend(rootCtx, cfg, outwriter.NewOutWriter()); err != nil {
			contract.LogFatal("Cannot run trend", err)
		}
	},
}
