package fixtures

import "github.com/custodia-labs/sentinel-cli/internal/core/domain"

func tasks() []domain.Task {
	return []domain.Task{
		{ID: "T-001", Title: "2月增值税专票批量录入(32张)", Status: domain.TaskDone, Handler: "AI", Time: "08:30", Confidence: 0.97},
		{ID: "T-002", Title: "差旅费报销凭证生成(8笔)", Status: domain.TaskDone, Handler: "AI", Time: "09:15", Confidence: 0.94},
		{ID: "T-003", Title: "固定资产折旧计提", Status: domain.TaskDone, Handler: "AI", Time: "09:45", Confidence: 0.99},
		{ID: "T-004", Title: "关联交易定价审核", Status: domain.TaskReview, Handler: "张会计", Time: "10:00", Confidence: 0.78},
		{ID: "T-005", Title: "研发费用加计扣除归集", Status: domain.TaskReview, Handler: "李主管", Time: "10:30", Confidence: 0.82},
		{ID: "T-006", Title: "跨期费用调整分录", Status: domain.TaskPending, Handler: "待分配", Time: "--", Confidence: 0.65},
		{ID: "T-007", Title: "税务优惠政策适用性判断", Status: domain.TaskPending, Handler: "待分配", Time: "--", Confidence: 0.71},
	}
}

func reviews() []domain.Review {
	return []domain.Review{
		{
			TaskID: "T-004",
			Title:  "关联交易定价审核",
			Voucher: domain.Voucher{
				Entries: []domain.VoucherEntry{
					{Direction: domain.Debit, Account: "主营业务成本-关联采购", Amount: 180000},
					{Direction: domain.Credit, Account: "应付账款-关联方A公司", Amount: 180000},
				},
			},
			AINote:         "AI提示：该交易价格较市场价高15%，建议补充独立交易原则说明文档",
			AccountantNote: "已核实转让定价报告，价格差异在合理范围内，同意入账。建议下月补充同期资料备查。",
			Reviewer:       "张会计",
			Status:         domain.ReviewApproved,
		},
	}
}

func workload() []domain.WorkloadShare {
	return []domain.WorkloadShare{
		{Name: "AI自动处理", Percent: 70},
		{Name: "人工审核", Percent: 30},
	}
}
