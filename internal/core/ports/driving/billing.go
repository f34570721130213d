package driving

import (
	"context"

	"github.com/custodia-labs/sentinel-cli/internal/core/domain"
)

// BillingService prices plans and runs the simulated checkout.
type BillingService interface {
	// Plans returns the subscription plans.
	Plans() []domain.Plan

	// Plan returns a plan by key, or domain.ErrUnknownPlan.
	Plan(key string) (*domain.Plan, error)

	// Quote prices a plan. Unknown plans fall back to the default plan
	// and unknown cycles to monthly billing.
	Quote(planKey string, cycle domain.BillingCycle) domain.Quote

	// Checkout waits for the simulated payment and records the subscription.
	Checkout(ctx context.Context, planKey string, cycle domain.BillingCycle,
		method domain.PaymentMethod) (*domain.Subscription, error)

	// Subscription returns the last recorded subscription or nil.
	Subscription() *domain.Subscription
}
