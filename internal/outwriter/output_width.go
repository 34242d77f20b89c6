package outwriter

import (
	"os"

	"github.com/huangsam/examtwin/internal/contract"
	"golang.org/x/term"
)

// Gauge sizing limits, in cells.
const (
	minGaugeWidth = 20
	maxGaugeWidth = 60
)

// getTermWidth returns the width override from flag/env, the detected terminal
// width, or a conservative default for pipes and CI.
func getTermWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		return 80
	}
	return detectedWidth
}

// getGaugeWidth sizes the readiness bar to the terminal, leaving room for the
// brackets and the percent suffix.
func getGaugeWidth(cfg *contract.Config) int {
	available := getTermWidth(cfg) - 10
	return max(minGaugeWidth, min(maxGaugeWidth, available))
}
