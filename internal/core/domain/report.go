package domain

// HealthDimension is one axis of the tax-health radar.
type HealthDimension struct {
	Dimension string
	Score     int
	FullMark  int
}

// BenchmarkMetric compares the company against its industry average.
type BenchmarkMetric struct {
	Metric   string
	Self     float64
	Industry float64
}

// Delta returns Self minus Industry.
func (m BenchmarkMetric) Delta() float64 {
	return m.Self - m.Industry
}

// CreditReport summarises the credit standing derived from tax records.
type CreditReport struct {
	Grade      string
	MaxLoan    string
	Rate       string
	Highlights []string
}

// Priority ranks a tax-optimisation suggestion.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// IsValid returns true if the priority is known.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// Label returns the display label for the priority.
func (p Priority) Label() string {
	switch p {
	case PriorityHigh:
		return "高优先级"
	case PriorityMedium:
		return "中优先级"
	case PriorityLow:
		return "低优先级"
	default:
		return string(p)
	}
}

// TaxSuggestion is a tax-optimisation opportunity with its estimated saving.
type TaxSuggestion struct {
	ID          int
	Title       string
	Saving      string
	Description string
	Priority    Priority
}

// TaxReport is the financial health report.
type TaxReport struct {
	Radar       []HealthDimension
	Benchmark   []BenchmarkMetric
	Credit      CreditReport
	Suggestions []TaxSuggestion
}

// OverallScore returns the mean radar score, rounded down.
// It returns 0 when the radar is empty.
func (r TaxReport) OverallScore() int {
	if len(r.Radar) == 0 {
		return 0
	}
	total := 0
	for _, d := range r.Radar {
		total += d.Score
	}
	return total / len(r.Radar)
}
