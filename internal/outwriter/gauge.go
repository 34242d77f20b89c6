package outwriter

import (
	"fmt"
	"strings"

	"github.com/huangsam/examtwin/internal/contract"
	"github.com/huangsam/examtwin/schema"
)

const (
	gaugeFilled = "█"
	gaugeEmpty  = "░"
)

// zoneAt returns the band zone that holds value.
func zoneAt(bands []schema.GaugeBand, value int) schema.Zone {
	for i, band := range bands {
		last := i == len(bands)-1
		if value >= band.Start && (value < band.End || last) {
			return band.Zone
		}
	}
	return schema.RiskZone
}

// renderGauge draws readiness as a bar of width cells. Each filled cell takes
// the color of the band its position falls in.
func renderGauge(readiness int, bands []schema.GaugeBand, width int, useColors bool) string {
	filled := readiness * width / schema.MaxReadiness

	var sb strings.Builder
	sb.WriteString("[")
	for i := range width {
		if i >= filled {
			sb.WriteString(gaugeEmpty)
			continue
		}
		cell := gaugeFilled
		if useColors {
			cell = contract.GetZoneColor(zoneAt(bands, i*schema.MaxReadiness/width)).Sprint(cell)
		}
		sb.WriteString(cell)
	}
	fmt.Fprintf(&sb, "] %d%%", readiness)
	return sb.String()
}

// renderGaugeLegend lists the band ranges under the bar.
func renderGaugeLegend(bands []schema.GaugeBand) string {
	parts := make([]string, 0, len(bands))
	for i, band := range bands {
		end := band.End - 1
		if i == len(bands)-1 {
			end = band.End
		}
		parts = append(parts, fmt.Sprintf("%s %s %d-%d", schema.ZoneEmoji(band.Zone), band.Zone, band.Start, end))
	}
	return strings.Join(parts, "   ")
}
