// Package plans provides the subscription plans and checkout view for the TUI.
package plans

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/sentinel-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/sentinel-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sentinel-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sentinel-cli/internal/core/domain"
	"github.com/custodia-labs/sentinel-cli/internal/core/ports/driving"
)

// View lists the plans and runs the simulated checkout.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	billing driving.BillingService

	plans    []domain.Plan
	selected int
	yearly   bool
	methods  []domain.PaymentMethod
	method   int

	subscription *domain.Subscription
	cancel       context.CancelFunc
	err          error

	width  int
	height int
	ready  bool
}

// NewView creates a new plans view.
func NewView(s *styles.Styles, billing driving.BillingService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:  s,
		keymap:  keymap.DefaultKeyMap(),
		billing: billing,
		methods: domain.AllPaymentMethods(),
		width:   80,
		height:  24,
	}
}

// Init loads the plans and the current subscription.
// The default plan is preselected.
func (v *View) Init() tea.Cmd {
	if v.billing == nil {
		return nil
	}
	v.plans = v.billing.Plans()
	v.subscription = v.billing.Subscription()
	if v.cancel == nil {
		v.err = nil
	}
	for i, p := range v.plans {
		if p.Key == domain.DefaultPlanKey {
			v.selected = i
		}
	}
	return nil
}

// Update handles messages for the plans view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.CheckoutCompleted:
		if v.cancel != nil {
			v.cancel()
			v.cancel = nil
		}
		v.err = msg.Err
		if msg.Err == nil {
			v.subscription = msg.Subscription
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}
	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.billing == nil || v.Paying() {
		return v, nil
	}

	k := msg.String()
	switch {
	case keymap.Matches(k, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
	case keymap.Matches(k, v.keymap.Down):
		if v.selected < len(v.plans)-1 {
			v.selected++
		}
	case keymap.Matches(k, v.keymap.Toggle):
		v.yearly = !v.yearly
	case keymap.Matches(k, v.keymap.Method):
		v.method = (v.method + 1) % len(v.methods)
	case keymap.Matches(k, v.keymap.Select):
		if len(v.plans) > 0 {
			return v, v.checkout()
		}
	}
	return v, nil
}

// checkout starts the payment. It runs until the payment delay elapses or
// Cancel is called.
func (v *View) checkout() tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	v.cancel = cancel
	v.err = nil

	billing := v.billing
	plan := v.plans[v.selected].Key
	cycle := v.Cycle()
	method := v.Method()
	return func() tea.Msg {
		sub, err := billing.Checkout(ctx, plan, cycle, method)
		return messages.CheckoutCompleted{Subscription: sub, Err: err}
	}
}

// Cancel abandons a payment in progress. Returns false if none was running.
func (v *View) Cancel() bool {
	if v.cancel == nil {
		return false
	}
	v.cancel()
	v.cancel = nil
	return true
}

// View renders the plans view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("套餐订阅"))
	b.WriteString("\n\n")

	if v.billing == nil {
		b.WriteString(v.styles.Error.Render("Billing not available"))
		return b.String()
	}

	for i, p := range v.plans {
		cursor := "  "
		name := v.styles.Normal.Render(p.Name)
		if i == v.selected {
			cursor = "> "
			name = v.styles.Selected.Render(p.Name)
		}
		fmt.Fprintf(&b, "%s%s  ¥%d/月\n", cursor, name, p.MonthlyPrice)
		if i == v.selected {
			for _, f := range p.Features {
				fmt.Fprintf(&b, "    %s\n", v.styles.Muted.Render("· "+f))
			}
		}
	}

	if len(v.plans) > 0 {
		b.WriteString("\n")
		b.WriteString(v.renderQuote())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case v.Paying():
		b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("正在通过%s支付...", v.Method().Label())))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
	case v.subscription != nil:
		b.WriteString(v.renderSubscription())
	}
	b.WriteString("\n\n")

	b.WriteString(v.styles.Help.Render("[j/k] plan  [y] yearly  [p] method  [enter] pay  [esc] back"))
	return b.String()
}

func (v *View) renderQuote() string {
	q := v.billing.Quote(v.plans[v.selected].Key, v.Cycle())

	cycle := "月付"
	if q.Cycle == domain.BillingYearly {
		cycle = "年付"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s · %s · %s\n", q.Plan.Name, cycle, v.Method().Label())
	fmt.Fprintf(&b, "原价 ¥%d\n", q.Original)
	if q.Discount > 0 {
		b.WriteString(v.styles.Success.Render(fmt.Sprintf("年付优惠 -¥%d", q.Discount)))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "应付 ¥%d", q.Final)
	return v.styles.Panel.Render(b.String())
}

func (v *View) renderSubscription() string {
	sub := v.subscription
	name := sub.PlanKey
	for _, p := range v.plans {
		if p.Key == sub.PlanKey {
			name = p.Name
		}
	}
	return v.styles.Success.Render(fmt.Sprintf("当前套餐 %s · ¥%d · 订单号 %s", name, sub.Amount, sub.OrderID))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Paying reports whether a checkout is in progress.
func (v *View) Paying() bool {
	return v.cancel != nil
}

// Cycle returns the selected billing cycle.
func (v *View) Cycle() domain.BillingCycle {
	if v.yearly {
		return domain.BillingYearly
	}
	return domain.BillingMonthly
}

// Method returns the selected payment method.
func (v *View) Method() domain.PaymentMethod {
	return v.methods[v.method]
}

// Selected returns the highlighted plan, or nil when none are loaded.
func (v *View) Selected() *domain.Plan {
	if v.selected >= len(v.plans) {
		return nil
	}
	return &v.plans[v.selected]
}

// Subscription returns the subscription shown by the view.
func (v *View) Subscription() *domain.Subscription {
	return v.subscription
}

// Err returns the last checkout error.
func (v *View) Err() error {
	return v.err
}
