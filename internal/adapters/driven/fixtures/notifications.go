package fixtures

import "github.com/custodia-labs/sentinel-cli/internal/core/domain"

// Routes opened from the notification centre.
const (
	RouteDashboard = "/demo/dashboard"
	RouteAIEngine  = "/demo/ai-engine"
	RouteReports   = "/demo/reports"
)

// Icon names.
const (
	IconAlert   = "alert-triangle"
	IconBot     = "bot"
	IconInfo    = "info"
	IconSuccess = "check-circle"
)

func notifications() []domain.Notification {
	return []domain.Notification{
		{
			ID: 1, Category: domain.CategoryRisk, Severity: domain.SeverityHigh, Icon: IconAlert,
			Title: "高风险：进项发票集中作废", Description: "近30天作废12张，金额¥86,400",
			Time: "2分钟前", Read: false, Link: RouteDashboard,
		},
		{
			ID: 2, Category: domain.CategoryRisk, Severity: domain.SeverityMedium, Icon: IconAlert,
			Title: "中风险：增值税税负率偏低", Description: "当前1.2%，低于行业均值2.8%",
			Time: "15分钟前", Read: false, Link: RouteDashboard,
		},
		{
			ID: 3, Category: domain.CategoryAI, Severity: domain.SeverityInfo, Icon: IconBot,
			Title: "AI已完成12张发票处理", Description: "置信度均>95%，已自动生成凭证",
			Time: "30分钟前", Read: false, Link: RouteAIEngine,
		},
		{
			ID: 4, Category: domain.CategorySystem, Severity: domain.SeverityInfo, Icon: IconInfo,
			Title: "Q1预缴申报提醒", Description: "距截止日还有12天，预估应缴¥45,200",
			Time: "1小时前", Read: true, Link: RouteReports,
		},
		{
			ID: 5, Category: domain.CategoryAI, Severity: domain.SeverityInfo, Icon: IconBot,
			Title: "税务优化建议更新", Description: "发现新的加计扣除机会，预估节税¥5.2万",
			Time: "2小时前", Read: true, Link: RouteReports,
		},
		{
			ID: 6, Category: domain.CategorySystem, Severity: domain.SeveritySuccess, Icon: IconSuccess,
			Title: "月度报告已生成", Description: "2月财税健康报告可供下载",
			Time: "3小时前", Read: true, Link: RouteReports,
		},
	}
}
