package domain

// HealthScore is the overall tax-health grade shown on the dashboard.
type HealthScore struct {
	Score int
	Level string
}

// KPICard is one headline figure on the dashboard.
type KPICard struct {
	Label  string
	Value  string
	Change string

	// Up reports whether the change is an increase.
	Up bool
	// Warn marks a figure that needs attention.
	Warn bool
}

// RevenuePoint is one month of the revenue trend.
// Revenue is in 万元; TaxRate is a percentage.
type RevenuePoint struct {
	Month   string
	Revenue float64
	TaxRate float64
}

// Dashboard holds the headline figures of the risk dashboard.
type Dashboard struct {
	Health  HealthScore
	KPIs    []KPICard
	Revenue []RevenuePoint
}

// PeakRevenue returns the month with the highest revenue.
// It returns false when there is no trend data.
func (d Dashboard) PeakRevenue() (RevenuePoint, bool) {
	if len(d.Revenue) == 0 {
		return RevenuePoint{}, false
	}
	peak := d.Revenue[0]
	for _, p := range d.Revenue[1:] {
		if p.Revenue > peak.Revenue {
			peak = p
		}
	}
	return peak, true
}
