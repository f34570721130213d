package fixtures

import "github.com/custodia-labs/sentinel-cli/internal/core/domain"

func taxReport() domain.TaxReport {
	return domain.TaxReport{
		Radar: []domain.HealthDimension{
			{Dimension: "税务合规", Score: 88, FullMark: 100},
			{Dimension: "发票管理", Score: 75, FullMark: 100},
			{Dimension: "成本控制", Score: 82, FullMark: 100},
			{Dimension: "现金流", Score: 90, FullMark: 100},
			{Dimension: "风险防控", Score: 85, FullMark: 100},
		},
		Benchmark: []domain.BenchmarkMetric{
			{Metric: "税负率", Self: 3.82, Industry: 4.5},
			{Metric: "费用率", Self: 12.5, Industry: 15.2},
			{Metric: "利润率", Self: 18.3, Industry: 14.8},
			{Metric: "周转天数", Self: 45, Industry: 62},
			{Metric: "合规评分", Self: 88, Industry: 76},
		},
		Credit: domain.CreditReport{
			Grade:   "A+",
			MaxLoan: "500万",
			Rate:    "3.85%",
			Highlights: []string{
				"连续24个月纳税信用A级",
				"增值税申报零差错",
				"财务报表数据完整度98%",
				"无税务行政处罚记录",
			},
		},
		Suggestions: []domain.TaxSuggestion{
			{
				ID:          1,
				Title:       "研发费用加计扣除",
				Saving:      "¥23.4万/年",
				Description: "符合高新技术企业条件，研发费用可享受100%加计扣除",
				Priority:    domain.PriorityHigh,
			},
			{
				ID:          2,
				Title:       "小微企业所得税优惠",
				Saving:      "¥8.6万/年",
				Description: "年应纳税所得额不超过300万部分，实际税负5%",
				Priority:    domain.PriorityHigh,
			},
			{
				ID:          3,
				Title:       "固定资产加速折旧",
				Saving:      "¥5.2万/年",
				Description: "新购设备单价≤500万可一次性税前扣除",
				Priority:    domain.PriorityMedium,
			},
			{
				ID:          4,
				Title:       "增值税留抵退税",
				Saving:      "¥12.8万",
				Description: "增量留抵税额符合退税条件，建议申请退还",
				Priority:    domain.PriorityMedium,
			},
		},
	}
}
