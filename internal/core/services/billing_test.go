package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sentinel-cli/internal/adapters/driven/clock"
	"github.com/custodia-labs/sentinel-cli/internal/adapters/driven/fixtures"
	"github.com/custodia-labs/sentinel-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/sentinel-cli/internal/core/domain"
)

func newTestBilling(t *testing.T) (*BillingService, *clock.Manual, *memory.KeyValueStore) {
	t.Helper()
	clk := clock.NewManual(testEpoch)
	store := memory.NewKeyValueStore()
	return NewBillingService(fixtures.New(), store, clk, domain.DefaultDemoSettings()), clk, store
}

func TestBillingService_Plan(t *testing.T) {
	svc, _, _ := newTestBilling(t)

	plan, err := svc.Plan("enterprise")
	require.NoError(t, err)
	assert.Equal(t, 299, plan.MonthlyPrice)

	_, err = svc.Plan("platinum")
	assert.ErrorIs(t, err, domain.ErrUnknownPlan)
}

func TestBillingService_Quote(t *testing.T) {
	svc, _, _ := newTestBilling(t)

	q := svc.Quote("pro", domain.BillingYearly)
	assert.Equal(t, 2388, q.Original)
	assert.Equal(t, 478, q.Discount)
	assert.Equal(t, 1910, q.Final)

	q = svc.Quote("basic", domain.BillingMonthly)
	assert.Equal(t, 99, q.Final)
}

func TestBillingService_Quote_Fallbacks(t *testing.T) {
	svc, _, _ := newTestBilling(t)

	q := svc.Quote("platinum", "fortnightly")

	assert.Equal(t, "pro", q.Plan.Key)
	assert.Equal(t, domain.BillingMonthly, q.Cycle)
	assert.Equal(t, 199, q.Final)
}

func TestBillingService_Checkout(t *testing.T) {
	svc, clk, store := newTestBilling(t)

	type result struct {
		sub *domain.Subscription
		err error
	}
	done := make(chan result, 1)
	go func() {
		sub, err := svc.Checkout(context.Background(), "enterprise", domain.BillingYearly, domain.PaymentWeChat)
		done <- result{sub, err}
	}()

	require.Eventually(t, func() bool { return clk.Pending() == 1 }, time.Second, time.Millisecond)
	clk.Advance(domain.DefaultPaymentDelay)

	var r result
	select {
	case r = <-done:
	case <-time.After(time.Second):
		t.Fatal("checkout did not finish")
	}

	require.NoError(t, r.err)
	assert.NotEmpty(t, r.sub.OrderID)
	assert.Equal(t, "enterprise", r.sub.PlanKey)
	assert.Equal(t, domain.BillingYearly, r.sub.Cycle)
	assert.Equal(t, 2870, r.sub.Amount)
	assert.Equal(t, testEpoch.Add(domain.DefaultPaymentDelay), r.sub.PaidAt)

	raw, ok, err := store.Get(SubscriptionKey)
	require.NoError(t, err)
	require.True(t, ok)
	var stored domain.Subscription
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, r.sub.OrderID, stored.OrderID)

	got := svc.Subscription()
	require.NotNil(t, got)
	assert.Equal(t, r.sub.OrderID, got.OrderID)
}

func TestBillingService_Checkout_NotPaidBeforeDelay(t *testing.T) {
	svc, clk, store := newTestBilling(t)

	done := make(chan struct{})
	go func() {
		_, _ = svc.Checkout(context.Background(), "pro", domain.BillingMonthly, domain.PaymentAlipay)
		close(done)
	}()

	require.Eventually(t, func() bool { return clk.Pending() == 1 }, time.Second, time.Millisecond)
	clk.Advance(domain.DefaultPaymentDelay - time.Millisecond)

	select {
	case <-done:
		t.Fatal("checkout finished early")
	case <-time.After(20 * time.Millisecond):
	}
	assert.Equal(t, 0, store.Len())

	clk.Advance(time.Millisecond)
	<-done
	assert.Equal(t, 1, store.Len())
}

func TestBillingService_Checkout_Cancelled(t *testing.T) {
	svc, clk, store := newTestBilling(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sub, err := svc.Checkout(ctx, "pro", domain.BillingMonthly, domain.PaymentCard)

	assert.Nil(t, sub)
	assert.ErrorIs(t, err, domain.ErrCheckoutCancelled)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, clk.Pending())
	assert.Equal(t, 0, store.Len())
}

func TestBillingService_Checkout_InvalidMethod(t *testing.T) {
	svc, clk, _ := newTestBilling(t)

	_, err := svc.Checkout(context.Background(), "pro", domain.BillingMonthly, "cash")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, clk.Pending())
}

func TestBillingService_Checkout_StoreError(t *testing.T) {
	clk := clock.NewManual(testEpoch)
	store := newMockKVStore()
	store.setErr = errStorage
	settings := domain.DefaultDemoSettings()
	settings.PaymentDelay = 0
	svc := NewBillingService(fixtures.New(), store, clk, settings)

	errCh := make(chan error, 1)
	go func() {
		_, err := svc.Checkout(context.Background(), "pro", domain.BillingMonthly, domain.PaymentInvoice)
		errCh <- err
	}()
	require.Eventually(t, func() bool { return clk.Pending() == 1 }, time.Second, time.Millisecond)
	clk.Advance(0)

	assert.ErrorIs(t, <-errCh, errStorage)
}

func TestBillingService_Subscription_MissingOrMalformed(t *testing.T) {
	svc, _, store := newTestBilling(t)
	assert.Nil(t, svc.Subscription())

	require.NoError(t, store.Set(SubscriptionKey, "not json"))
	assert.Nil(t, svc.Subscription())

	require.NoError(t, store.Set(SubscriptionKey, "{}"))
	assert.Nil(t, svc.Subscription())
}
