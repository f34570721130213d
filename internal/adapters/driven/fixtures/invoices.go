package fixtures

import "github.com/custodia-labs/sentinel-cli/internal/core/domain"

const buyer = "南京创新科技有限公司"

const deductibleTaxAccount = "2221 应交税费-应交增值税(进项税额)"

func invoices() []domain.Document {
	return []domain.Document{
		{
			ID:    "INV-2024-001",
			Name:  "增值税专用发票 — 办公设备采购",
			Label: "专票·办公设备",
			OCR: domain.OCRResult{
				InvoiceCode: "3200232130",
				InvoiceNo:   "08867234",
				Date:        "2024-02-15",
				Seller:      "苏州科技办公设备有限公司",
				Buyer:       buyer,
				Items: []domain.LineItem{
					{Name: "联想ThinkPad笔记本电脑", Qty: 5, Unit: "台", Price: 6800, Amount: 34000},
					{Name: "戴尔27寸显示器", Qty: 5, Unit: "台", Price: 2200, Amount: 11000},
				},
				TaxRate: "13%",
				Tax:     5850,
				Total:   50850,
			},
			NLP: domain.NLPResult{
				Category:         "固定资产-电子设备",
				SuggestedSubject: "固定资产",
				DebitAccount:     "1601 固定资产",
				CreditAccount:    "2202 应付账款",
				TaxAccount:       deductibleTaxAccount,
				Confidence:       0.96,
				Tags:             []string{"可抵扣", "固定资产", "电子设备"},
			},
			Voucher: domain.Voucher{
				Entries: []domain.VoucherEntry{
					{Direction: domain.Debit, Account: "固定资产-电子设备", Amount: 45000},
					{Direction: domain.Debit, Account: "应交税费-进项税额", Amount: 5850},
					{Direction: domain.Credit, Account: "应付账款-苏州科技", Amount: 50850},
				},
				Summary: "采购办公电子设备，取得增值税专用发票",
			},
		},
		{
			ID:    "INV-2024-002",
			Name:  "增值税普通发票 — 差旅费报销",
			Label: "普票·差旅费",
			OCR: domain.OCRResult{
				InvoiceCode: "032002100211",
				InvoiceNo:   "45892013",
				Date:        "2024-02-18",
				Seller:      "南京金陵大酒店",
				Buyer:       buyer,
				Items: []domain.LineItem{
					{Name: "商务标准间住宿费", Qty: 3, Unit: "晚", Price: 480, Amount: 1440},
				},
				TaxRate: "6%",
				Tax:     86.4,
				Total:   1526.4,
			},
			NLP: domain.NLPResult{
				Category:         "管理费用-差旅费",
				SuggestedSubject: "管理费用",
				DebitAccount:     "6602 管理费用-差旅费",
				CreditAccount:    "1001 库存现金",
				Confidence:       0.92,
				Tags:             []string{"费用报销", "差旅", "不可抵扣"},
			},
			Voucher: domain.Voucher{
				Entries: []domain.VoucherEntry{
					{Direction: domain.Debit, Account: "管理费用-差旅费", Amount: 1526.4},
					{Direction: domain.Credit, Account: "库存现金", Amount: 1526.4},
				},
				Summary: "报销出差住宿费用，普通发票不可抵扣",
			},
		},
		{
			ID:    "INV-2024-003",
			Name:  "增值税专用发票 — 原材料采购",
			Label: "专票·原材料",
			OCR: domain.OCRResult{
				InvoiceCode: "3200241130",
				InvoiceNo:   "12045678",
				Date:        "2024-02-20",
				Seller:      "上海华东化工材料有限公司",
				Buyer:       buyer,
				Items: []domain.LineItem{
					{Name: "工业级聚乙烯颗粒", Qty: 2000, Unit: "kg", Price: 12.5, Amount: 25000},
					{Name: "高纯度丙烯酸树脂", Qty: 500, Unit: "kg", Price: 38, Amount: 19000},
				},
				TaxRate: "13%",
				Tax:     5720,
				Total:   49720,
			},
			NLP: domain.NLPResult{
				Category:         "原材料-化工材料",
				SuggestedSubject: "原材料",
				DebitAccount:     "1403 原材料",
				CreditAccount:    "2202 应付账款",
				TaxAccount:       deductibleTaxAccount,
				Confidence:       0.98,
				Tags:             []string{"可抵扣", "原材料", "生产用"},
			},
			Voucher: domain.Voucher{
				Entries: []domain.VoucherEntry{
					{Direction: domain.Debit, Account: "原材料-化工材料", Amount: 44000},
					{Direction: domain.Debit, Account: "应交税费-进项税额", Amount: 5720},
					{Direction: domain.Credit, Account: "应付账款-上海华东", Amount: 49720},
				},
				Summary: "采购生产用化工原材料，取得增值税专用发票",
			},
		},
	}
}
