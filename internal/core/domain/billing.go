package domain

import (
	"math"
	"time"
)

// BillingCycle is how often a subscription is paid.
type BillingCycle string

const (
	BillingMonthly BillingCycle = "monthly"
	BillingYearly  BillingCycle = "yearly"
)

// YearlyDiscountRate is the share knocked off a yearly subscription.
const YearlyDiscountRate = 0.2

// DefaultPlanKey is used when a requested plan is unknown.
const DefaultPlanKey = "pro"

// DefaultPaymentDelay is the simulated payment processing time.
const DefaultPaymentDelay = 2 * time.Second

// PaymentMethod is how a checkout is paid.
type PaymentMethod string

const (
	PaymentAlipay  PaymentMethod = "alipay"
	PaymentWeChat  PaymentMethod = "wechat"
	PaymentCard    PaymentMethod = "card"
	PaymentInvoice PaymentMethod = "invoice"
)

// IsValid returns true if the method is accepted at checkout.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentAlipay, PaymentWeChat, PaymentCard, PaymentInvoice:
		return true
	default:
		return false
	}
}

// Label returns the display label for the method.
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentAlipay:
		return "支付宝"
	case PaymentWeChat:
		return "微信支付"
	case PaymentCard:
		return "银行卡"
	case PaymentInvoice:
		return "对公转账"
	default:
		return string(m)
	}
}

// AllPaymentMethods returns the accepted methods in display order.
func AllPaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentAlipay, PaymentWeChat, PaymentCard, PaymentInvoice}
}

// Plan is a subscription tier.
type Plan struct {
	Key          string
	Name         string
	Features     []string
	MonthlyPrice int
}

// Quote is the price of a plan for a billing cycle.
type Quote struct {
	Plan     Plan
	Cycle    BillingCycle
	Original int
	Discount int
	Final    int
}

// NewQuote prices a plan. Yearly billing is twelve months less the yearly discount,
// rounded to the nearest yuan.
func NewQuote(plan Plan, cycle BillingCycle) Quote {
	if cycle != BillingYearly {
		cycle = BillingMonthly
	}

	original := plan.MonthlyPrice
	discount := 0
	if cycle == BillingYearly {
		original = plan.MonthlyPrice * 12
		discount = int(math.Round(float64(original) * YearlyDiscountRate))
	}

	return Quote{
		Plan:     plan,
		Cycle:    cycle,
		Original: original,
		Discount: discount,
		Final:    original - discount,
	}
}

// Subscription is the record written after a successful checkout.
type Subscription struct {
	OrderID string        `json:"order_id"`
	PlanKey string        `json:"plan"`
	Cycle   BillingCycle  `json:"billing"`
	Method  PaymentMethod `json:"method"`
	Amount  int           `json:"amount"`
	PaidAt  time.Time     `json:"paid_at"`
}
