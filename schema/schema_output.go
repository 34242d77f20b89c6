package schema

// ZoneForSeverity maps an advice severity onto the zone whose color it shares.
func ZoneForSeverity(s Severity) Zone {
	switch s {
	case CriticalSeverity:
		return RiskZone
	case AdvisorySeverity:
		return MomentumZone
	default:
		return SafeZone
	}
}

// ZoneEmoji returns the marker the dashboard places next to a zone name.
func ZoneEmoji(z Zone) string {
	switch z {
	case RiskZone:
		return "🔴"
	case MomentumZone:
		return "🟡"
	default:
		return "🟢"
	}
}

// ZoneTitle returns the display title of a zone, e.g. "Momentum Zone".
func ZoneTitle(z Zone) string {
	return string(z) + " Zone"
}
