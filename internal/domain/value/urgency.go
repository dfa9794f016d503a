package value

// Urgency класс срочности сделки для бейджа.
type Urgency string

const (
	UrgencyNormal   Urgency = "normal"
	UrgencyExpired  Urgency = "expired"
	UrgencyCritical Urgency = "critical"
	UrgencyWarning  Urgency = "warning"
	UrgencyCaution  Urgency = "caution"
)

func (u Urgency) String() string {
	return string(u)
}

// Color цвет бейджа; для normal бейдж не рисуется.
func (u Urgency) Color() string {
	switch u {
	case UrgencyExpired:
		return "gray"
	case UrgencyCritical:
		return "red"
	case UrgencyWarning:
		return "amber"
	case UrgencyCaution:
		return "green"
	default:
		return ""
	}
}

// HasBadge false только для normal.
func (u Urgency) HasBadge() bool {
	return u != UrgencyNormal && u != ""
}
