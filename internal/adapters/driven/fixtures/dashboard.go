package fixtures

import "github.com/custodia-labs/sentinel-cli/internal/core/domain"

func riskAlerts() []domain.RiskAlert {
	return []domain.RiskAlert{
		{
			ID:          1,
			Level:       domain.RiskHigh,
			Title:       "进项发票集中作废预警",
			Description: "近30天内作废发票12张，金额合计¥86,400，超过行业均值3倍",
			What:        "本月作废发票数量和金额异常偏高",
			Why:         `集中作废可能触发税务局"虚开发票"风控模型`,
			How:         "建议立即核查作废原因，保留完整业务凭证链",
			Impact:      "若被税务稽查立案，可能面临补税+0.5‰/天滞纳金",
			Time:        "2分钟前",
		},
		{
			ID:          2,
			Level:       domain.RiskMedium,
			Title:       "增值税税负率偏低提醒",
			Description: "当前增值税税负率1.2%，低于行业均值2.8%",
			What:        "增值税实际税负率显著低于同行业平均水平",
			Why:         "税负率持续偏低是税务局重点监控指标之一",
			How:         "检查进项抵扣是否合规，评估是否存在提前认证情况",
			Impact:      "可能被列入税务异常名单，触发纳税评估",
			Time:        "15分钟前",
		},
		{
			ID:          3,
			Level:       domain.RiskLow,
			Title:       "企业所得税季度预缴提醒",
			Description: "距Q1预缴申报截止还有12天，预估应缴¥45,200",
			What:        "第一季度企业所得税预缴申报即将到期",
			Why:         "逾期申报将产生滞纳金并影响纳税信用等级",
			How:         "系统已自动生成预缴计算表，请确认后提交",
			Impact:      "按时申报可维持A级纳税信用评级",
			Time:        "1小时前",
		},
	}
}

func plans() []domain.Plan {
	return []domain.Plan{
		{
			Key:          "basic",
			Name:         "基础版",
			Features:     []string{"AI自动记账(50笔/月)", "OCR发票识别", "基础风险预警", "月度财税报告", "邮件支持"},
			MonthlyPrice: 99,
		},
		{
			Key:  "pro",
			Name: "专业版",
			Features: []string{
				"AI自动记账(不限量)", "OCR+NLP智能处理", "全量风险预警+四段式解释",
				"行业对标分析", "信贷赋能报告", "专属客服",
			},
			MonthlyPrice: 199,
		},
		{
			Key:  "enterprise",
			Name: "企业版",
			Features: []string{
				"全部专业版功能", "多主体管理", "API对接ERP/银行",
				"定制化规则引擎", "税务优化顾问", "7×24专属服务",
			},
			MonthlyPrice: 299,
		},
	}
}

func dashboard() domain.Dashboard {
	return domain.Dashboard{
		Health: domain.HealthScore{Score: 85, Level: "良好"},
		KPIs: []domain.KPICard{
			{Label: "本月营收", Value: "¥128.6万", Change: "+12.3%", Up: true},
			{Label: "综合税负率", Value: "3.82%", Change: "-0.15%"},
			{Label: "发票异常", Value: "3笔", Change: "+2笔", Up: true, Warn: true},
			{Label: "待处理任务", Value: "7项", Change: "-3项"},
		},
		Revenue: []domain.RevenuePoint{
			{Month: "3月", Revenue: 98, TaxRate: 3.7},
			{Month: "4月", Revenue: 105, TaxRate: 3.9},
			{Month: "5月", Revenue: 112, TaxRate: 4.1},
			{Month: "6月", Revenue: 95, TaxRate: 3.5},
			{Month: "7月", Revenue: 108, TaxRate: 3.8},
			{Month: "8月", Revenue: 115, TaxRate: 4.0},
			{Month: "9月", Revenue: 120, TaxRate: 3.9},
			{Month: "10月", Revenue: 110, TaxRate: 3.6},
			{Month: "11月", Revenue: 118, TaxRate: 3.8},
			{Month: "12月", Revenue: 125, TaxRate: 4.2},
			{Month: "1月", Revenue: 122, TaxRate: 3.9},
			{Month: "2月", Revenue: 128.6, TaxRate: 3.82},
		},
	}
}
