package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/examtwin/schema"
)

// Color variables for console output, one per zone.
var (
	RiskColor     = color.New(color.FgRed, color.Bold) // RiskColor represents standard danger.
	MomentumColor = color.New(color.FgYellow)          // MomentumColor represents standard caution, not bold.
	SafeColor     = color.New(color.FgGreen)           // SafeColor represents a healthy signal.
)

// GetPlainZoneLabel returns the zone title with its marker, e.g. "🟡 Momentum Zone".
// This is the core logic used for CSV, JSON, markdown and table printing.
func GetPlainZoneLabel(zone schema.Zone) string {
	return schema.ZoneEmoji(zone) + " " + schema.ZoneTitle(zone)
}

// GetZoneColor returns the color used for a zone.
func GetZoneColor(zone schema.Zone) *color.Color {
	switch zone {
	case schema.RiskZone:
		return RiskColor
	case schema.MomentumZone:
		return MomentumColor
	default:
		return SafeColor
	}
}

// GetColorZoneLabel returns a colored zone label for console output (table).
func GetColorZoneLabel(zone schema.Zone, useColors bool) string {
	text := GetPlainZoneLabel(zone)
	if !useColors {
		return text
	}
	return GetZoneColor(zone).Sprint(text)
}

// GetColorAdvice colors an advice message by its severity.
func GetColorAdvice(advice schema.Advice, useColors bool) string {
	if !useColors {
		return advice.Message
	}
	return GetZoneColor(schema.ZoneForSeverity(advice.Severity)).Sprint(advice.Message)
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path selects os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
