package contract

import (
	"fmt"
	"strings"

	"github.com/huangsam/examtwin/schema"
	"go.uber.org/zap/zapcore"
)

// Default values for configuration.
const (
	DefaultMinReadiness = schema.MomentumThreshold
	DefaultLogLevel     = "warn"
	DefaultLogFormat    = "console"
)

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// Config holds the runtime configuration.
// This struct is the "final, validated" config.
type Config struct {
	Inputs schema.PreparationInputs

	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool

	Seed         uint64 // Trend seed (0 = fresh draw per run)
	MinReadiness int    // Gate used by the check command
	MetricsFile  string // Optional Prometheus textfile path

	LogLevel  string
	LogFormat string
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Preparation inputs ---
	TargetBand  float64 `mapstructure:"target-band"`
	ExamDays    int     `mapstructure:"exam-days"`
	Listening   float64 `mapstructure:"listening"`
	Reading     float64 `mapstructure:"reading"`
	Writing     float64 `mapstructure:"writing"`
	Speaking    float64 `mapstructure:"speaking"`
	Accuracy    float64 `mapstructure:"accuracy"`
	Consistency int     `mapstructure:"consistency"`
	Mocks       int     `mapstructure:"mocks"`
	InputFile   string  `mapstructure:"input-file"`

	// --- Output and runtime ---
	Output       string `mapstructure:"output"`
	OutputFile   string `mapstructure:"output-file"`
	Width        int    `mapstructure:"width"`
	Color        string `mapstructure:"color"`
	Seed         uint64 `mapstructure:"seed"`
	MinReadiness int    `mapstructure:"min-readiness"`
	MetricsFile  string `mapstructure:"metrics-file"`
	LogLevel     string `mapstructure:"log-level"`
	LogFormat    string `mapstructure:"log-format"`
}

// Clone returns a copy of the Config struct. Config holds no reference types,
// so a shallow copy is a deep copy.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processPreparationInputs(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs covers output, logging and gate options.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.Output = schema.OutputMode(strings.ToLower(strings.TrimSpace(input.Output)))
	if cfg.Output == "" {
		cfg.Output = schema.TextOut
	}
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, json, csv, yaml, markdown, html or parquet", input.Output)
	}
	cfg.OutputFile = strings.TrimSpace(input.OutputFile)
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("--output-file is required for parquet output")
	}

	if input.Width < 0 {
		return fmt.Errorf("width must be non-negative, got %d", input.Width)
	}
	cfg.Width = input.Width

	color := input.Color
	if color == "" {
		color = "yes"
	}
	useColors, err := ParseBoolString(color)
	if err != nil {
		return fmt.Errorf("invalid color value: %w", err)
	}
	cfg.UseColors = useColors

	if input.MinReadiness < 0 || input.MinReadiness > schema.MaxReadiness {
		return fmt.Errorf("min-readiness must be between 0 and %d, got %d", schema.MaxReadiness, input.MinReadiness)
	}
	cfg.MinReadiness = input.MinReadiness

	cfg.Seed = input.Seed
	cfg.MetricsFile = strings.TrimSpace(input.MetricsFile)

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(input.LogLevel))
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log level '%s': %w", input.LogLevel, err)
	}
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(input.LogFormat))
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
	if cfg.LogFormat != "console" && cfg.LogFormat != "json" {
		return fmt.Errorf("invalid log format '%s'. must be console or json", input.LogFormat)
	}
	return nil
}

// processPreparationInputs builds the input record from flags, then applies the
// input file on top, then range-checks the result.
func processPreparationInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.Inputs = schema.PreparationInputs{
		TargetBand: input.TargetBand,
		ExamDays:   input.ExamDays,
		Scores: schema.SectionScores{
			Listening: input.Listening,
			Reading:   input.Reading,
			Writing:   input.Writing,
			Speaking:  input.Speaking,
		},
		Accuracy:    input.Accuracy,
		Consistency: input.Consistency,
		MocksTaken:  input.Mocks,
	}

	if path := strings.TrimSpace(input.InputFile); path != "" {
		doc, err := LoadInputFile(path)
		if err != nil {
			return err
		}
		seed, err := ApplyInputDocument(&cfg.Inputs, doc)
		if err != nil {
			return err
		}
		if seed != nil {
			cfg.Seed = *seed
		}
	}

	return cfg.Inputs.Validate()
}

// ProcessProfilingConfig enables profiling when a file prefix is given.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	profilePrefix = strings.TrimSpace(profilePrefix)
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}
