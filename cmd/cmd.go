// Package cmd defines the command-line interface for examtwin.
package cmd

import (
	"github.com/huangsam/examtwin/internal/contract"
	"github.com/huangsam/examtwin/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(trendCmd)
	rootCmd.AddCommand(formulasCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Preparation inputs
	rootCmd.PersistentFlags().Float64("target-band", schema.DefaultTargetBand, "Target overall band (5-9, step 0.5)")
	rootCmd.PersistentFlags().Int("exam-days", schema.DefaultExamDays, "Days until the exam (7-180)")
	rootCmd.PersistentFlags().Float64("listening", schema.DefaultListening, "Listening band (0-9, step 0.5)")
	rootCmd.PersistentFlags().Float64("reading", schema.DefaultReading, "Reading band (0-9, step 0.5)")
	rootCmd.PersistentFlags().Float64("writing", schema.DefaultWriting, "Writing band (0-9, step 0.5)")
	rootCmd.PersistentFlags().Float64("speaking", schema.DefaultSpeaking, "Speaking band (0-9, step 0.5)")
	rootCmd.PersistentFlags().Float64("accuracy", schema.DefaultAccuracy, "Practice accuracy percent (0-100)")
	rootCmd.PersistentFlags().Int("consistency", schema.DefaultConsistency, "Study days per week (0-7)")
	rootCmd.PersistentFlags().Int("mocks", schema.DefaultMocks, "Mock tests taken (0-10)")
	rootCmd.PersistentFlags().StringP("input-file", "i", "", "HJSON or JSON file with preparation inputs (overrides flags)")

	// Output and runtime
	rootCmd.PersistentFlags().StringP("output", "o", string(schema.TextOut), "Output format: text or json or csv or yaml or markdown or html or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Seed for the momentum trend (0 = fresh draw per run)")
	rootCmd.PersistentFlags().String("metrics-file", "", "Optional path to write Prometheus textfile gauges to")
	rootCmd.PersistentFlags().String("log-level", contract.DefaultLogLevel, "Log level: debug or info or warn or error")
	rootCmd.PersistentFlags().String("log-format", contract.DefaultLogFormat, "Log format: console or json")
	rootCmd.PersistentFlags().String("pprof", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of checkCmd to Viper
	checkCmd.Flags().Int("min-readiness", contract.DefaultMinReadiness, "Minimum readiness percent for the check to pass")
	if err := viper.BindPFlags(checkCmd.Flags()); err != nil {
		contract.LogFatal("Error binding check flags", err)
	}
}
