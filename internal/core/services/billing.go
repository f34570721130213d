package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/sentinel-cli/internal/core/domain"
	"github.com/custodia-labs/sentinel-cli/internal/core/ports/driven"
	"github.com/custodia-labs/sentinel-cli/internal/core/ports/driving"
	"github.com/custodia-labs/sentinel-cli/internal/logger"
)

// Ensure BillingService implements the interface.
var _ driving.BillingService = (*BillingService)(nil)

// SubscriptionKey is the storage key holding the last subscription.
const SubscriptionKey = "sentinel_subscription"

// BillingService prices plans and runs the simulated checkout.
type BillingService struct {
	catalog driven.Catalog
	store   driven.KeyValueStore
	clock   driven.Clock
	delay   time.Duration
}

// NewBillingService creates a billing service.
func NewBillingService(
	catalog driven.Catalog,
	store driven.KeyValueStore,
	clock driven.Clock,
	settings domain.DemoSettings,
) *BillingService {
	return &BillingService{
		catalog: catalog,
		store:   store,
		clock:   clock,
		delay:   settings.PaymentDelay,
	}
}

// Plans returns the subscription plans.
func (s *BillingService) Plans() []domain.Plan {
	return s.catalog.Plans()
}

// Plan returns a plan by key.
func (s *BillingService) Plan(key string) (*domain.Plan, error) {
	for _, p := range s.catalog.Plans() {
		if p.Key == key {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("plan %q: %w", key, domain.ErrUnknownPlan)
}

// Quote prices a plan, falling back to the default plan for unknown keys.
func (s *BillingService) Quote(planKey string, cycle domain.BillingCycle) domain.Quote {
	plan, err := s.Plan(planKey)
	if err != nil {
		plan, err = s.Plan(domain.DefaultPlanKey)
		if err != nil {
			return domain.NewQuote(domain.Plan{Key: planKey}, cycle)
		}
	}
	return domain.NewQuote(*plan, cycle)
}

// Checkout waits for the simulated payment and records the subscription.
func (s *BillingService) Checkout(
	ctx context.Context,
	planKey string,
	cycle domain.BillingCycle,
	method domain.PaymentMethod,
) (*domain.Subscription, error) {
	if !method.IsValid() {
		return nil, fmt.Errorf("payment method %q: %w", method, domain.ErrInvalidInput)
	}

	quote := s.Quote(planKey, cycle)
	logger.Debug("billing: paying %d for %s (%s) via %s", quote.Final, quote.Plan.Key, quote.Cycle, method)

	paid := make(chan struct{})
	timer := s.clock.AfterFunc(s.delay, func() { close(paid) })
	select {
	case <-paid:
	case <-ctx.Done():
		timer.Stop()
		return nil, fmt.Errorf("%w: %w", domain.ErrCheckoutCancelled, ctx.Err())
	}

	sub := &domain.Subscription{
		OrderID: uuid.NewString(),
		PlanKey: quote.Plan.Key,
		Cycle:   quote.Cycle,
		Method:  method,
		Amount:  quote.Final,
		PaidAt:  s.clock.Now(),
	}

	data, err := json.Marshal(sub)
	if err != nil {
		return nil, fmt.Errorf("encoding subscription: %w", err)
	}
	if err := s.store.Set(SubscriptionKey, string(data)); err != nil {
		return nil, fmt.Errorf("saving subscription: %w", err)
	}
	return sub, nil
}

// Subscription returns the last recorded subscription or nil.
func (s *BillingService) Subscription() *domain.Subscription {
	raw, ok, err := s.store.Get(SubscriptionKey)
	if err != nil {
		logger.Warn("billing: reading subscription: %v", err)
		return nil
	}
	if !ok {
		return nil
	}

	var sub domain.Subscription
	if err := json.Unmarshal([]byte(raw), &sub); err != nil || sub.OrderID == "" {
		logger.Warn("billing: ignoring malformed subscription")
		return nil
	}
	return &sub
}
