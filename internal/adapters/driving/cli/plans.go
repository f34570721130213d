package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sentinel-cli/internal/core/domain"
)

var (
	plansYearly bool
	plansMethod string
)

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "Browse plans and subscribe",
	Long: `Browse the subscription plans and run the simulated checkout.

Yearly billing is charged for twelve months with a 20% discount.
No payment is ever taken.`,
}

var plansListCmd = &cobra.Command{
	Use:   "list",
	Short: "List subscription plans",
	Args:  cobra.NoArgs,
	RunE:  runPlansList,
}

var plansQuoteCmd = &cobra.Command{
	Use:   "quote [plan]",
	Short: "Price a plan",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlansQuote,
}

var plansCheckoutCmd = &cobra.Command{
	Use:   "checkout [plan]",
	Short: "Subscribe to a plan",
	Long: `Subscribe to a plan. The payment is simulated and always succeeds.

Payment methods: alipay, wechat, card, invoice`,
	Args: cobra.ExactArgs(1),
	RunE: runPlansCheckout,
}

var plansStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current subscription",
	Args:  cobra.NoArgs,
	RunE:  runPlansStatus,
}

func init() {
	plansQuoteCmd.Flags().BoolVar(&plansYearly, "yearly", false, "bill yearly")
	plansCheckoutCmd.Flags().BoolVar(&plansYearly, "yearly", false, "bill yearly")
	plansCheckoutCmd.Flags().StringVarP(&plansMethod, "method", "m", string(domain.PaymentAlipay), "payment method")
	plansCmd.AddCommand(plansListCmd)
	plansCmd.AddCommand(plansQuoteCmd)
	plansCmd.AddCommand(plansCheckoutCmd)
	plansCmd.AddCommand(plansStatusCmd)
	rootCmd.AddCommand(plansCmd)
}

func runPlansList(cmd *cobra.Command, _ []string) error {
	if billingService == nil {
		return errors.New("billing service not configured")
	}

	for i, p := range billingService.Plans() {
		if i > 0 {
			cmd.Println()
		}
		cmd.Printf("%-12s %s  ¥%d/月\n", p.Key, p.Name, p.MonthlyPrice)
		for _, f := range p.Features {
			cmd.Printf("  · %s\n", f)
		}
	}
	return nil
}

func runPlansQuote(cmd *cobra.Command, args []string) error {
	if billingService == nil {
		return errors.New("billing service not configured")
	}

	if _, err := billingService.Plan(args[0]); err != nil {
		return err
	}

	printQuote(cmd, billingService.Quote(args[0], selectedCycle()))
	return nil
}

func runPlansCheckout(cmd *cobra.Command, args []string) error {
	if billingService == nil {
		return errors.New("billing service not configured")
	}

	if _, err := billingService.Plan(args[0]); err != nil {
		return err
	}

	method := domain.PaymentMethod(strings.ToLower(plansMethod))
	if !method.IsValid() {
		return fmt.Errorf("unknown payment method %q (expected alipay, wechat, card or invoice)", plansMethod)
	}

	cycle := selectedCycle()
	printQuote(cmd, billingService.Quote(args[0], cycle))
	cmd.Printf("\n正在通过%s支付...\n", method.Label())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	sub, err := billingService.Checkout(ctx, args[0], cycle, method)
	if err != nil {
		return fmt.Errorf("checkout failed: %w", err)
	}

	cmd.Printf("支付成功! 订单号 %s\n", sub.OrderID)
	return nil
}

func runPlansStatus(cmd *cobra.Command, _ []string) error {
	if billingService == nil {
		return errors.New("billing service not configured")
	}

	sub := billingService.Subscription()
	if sub == nil {
		cmd.Println("No subscription.")
		return nil
	}

	name := sub.PlanKey
	if plan, err := billingService.Plan(sub.PlanKey); err == nil {
		name = plan.Name
	}
	cmd.Printf("%s (%s) · ¥%d · %s\n", name, sub.Cycle, sub.Amount, sub.Method.Label())
	cmd.Printf("订单号 %s · %s\n", sub.OrderID, sub.PaidAt.Format("2006-01-02 15:04"))
	return nil
}

func printQuote(cmd *cobra.Command, q domain.Quote) {
	cmd.Printf("%s · %s\n", q.Plan.Name, cycleLabel(q.Cycle))
	cmd.Printf("  原价 ¥%d\n", q.Original)
	if q.Discount > 0 {
		cmd.Printf("  年付优惠 -¥%d\n", q.Discount)
	}
	cmd.Printf("  应付 ¥%d\n", q.Final)
}

func selectedCycle() domain.BillingCycle {
	if plansYearly {
		return domain.BillingYearly
	}
	return domain.BillingMonthly
}

func cycleLabel(c domain.BillingCycle) string {
	if c == domain.BillingYearly {
		return "年付"
	}
	return "月付"
}
