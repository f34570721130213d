package domain

// RiskLevel grades a risk alert.
type RiskLevel string

const (
	RiskHigh   RiskLevel = "high"
	RiskMedium RiskLevel = "medium"
	RiskLow    RiskLevel = "low"
)

// IsValid returns true if the level is known.
func (l RiskLevel) IsValid() bool {
	switch l {
	case RiskHigh, RiskMedium, RiskLow:
		return true
	default:
		return false
	}
}

// Label returns the display label for the level.
func (l RiskLevel) Label() string {
	switch l {
	case RiskHigh:
		return "高风险"
	case RiskMedium:
		return "中风险"
	case RiskLow:
		return "低风险"
	default:
		return string(l)
	}
}

// RiskAlert is a dashboard warning with its four-part explanation.
type RiskAlert struct {
	ID          int
	Level       RiskLevel
	Title       string
	Description string

	// What happened, why it matters, how to respond and the impact if ignored.
	What   string
	Why    string
	How    string
	Impact string

	Time string
}
