package checkout

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"k2demo/models"
	"k2demo/services/catalog"
)

func testCheckoutCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]models.Product{
		{
			ID: "sku_pen", Title: "Pen Set", Price: 40, Currency: "SAR",
			Availability: models.Availability{InStock: true, StockLevel: 10},
		},
		{
			ID: "sku_book", Title: "Novel", Price: 59, Currency: "SAR",
			Availability: models.Availability{InStock: true, StockLevel: 5},
		},
		{
			ID: "sku_oos", Title: "Sold Out", Price: 10, Currency: "SAR",
			Availability: models.Availability{InStock: false},
		},
	})
	require.NoError(t, err)
	return c
}

// newTestService returns a service with a controllable clock.
func newTestService(t *testing.T) (*DefaultCheckoutService, *time.Time) {
	t.Helper()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := NewCheckoutService(NewSessionStore(), testCheckoutCatalog(t))
	svc.Now = func() time.Time { return now }
	return svc, &now
}

func strPtr(s string) *string { return &s }

func riyadhAddress() *models.ShippingAddress {
	return &models.ShippingAddress{Country: "SA", City: "Riyadh", AddressLine1: "Olaya St 12"}
}

func updateReq(email *string, addr *models.ShippingAddress) models.UpdateCheckoutRequest {
	var req models.UpdateCheckoutRequest
	if email != nil {
		req.Customer = &struct {
			Email *string `json:"email"`
		}{Email: email}
	}
	if addr != nil {
		req.Shipping = &struct {
			Address *models.ShippingAddress `json:"address"`
		}{Address: addr}
	}
	return req
}

func TestCreateAggregatesDuplicates(t *testing.T) {
	svc, _ := newTestService(t)

	session, warnings, err := svc.Create([]models.CheckoutItemInput{
		{ProductID: "sku_pen", Quantity: 1},
		{ProductID: "sku_pen", Quantity: 1},
	})
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, models.StatusIncomplete, session.Status)
	require.Len(t, session.LineItems, 1)
	assert.Equal(t, 2, session.LineItems[0].Quantity)
	assert.Equal(t, 80.0, session.LineItems[0].Total)
	assert.Equal(t, []string{"customer.email", "shipping.address"}, session.MissingFields())

	// VAT on subtotal only; no shipping yet.
	assert.Equal(t, 80.0, session.Totals.Subtotal)
	assert.Equal(t, 12.0, session.Totals.VAT)
	assert.Equal(t, 92.0, session.Totals.Total)
}

func TestCreateHardFailures(t *testing.T) {
	svc, _ := newTestService(t)

	_, _, err := svc.Create(nil)
	requireCheckoutStatus(t, err, 400)

	big := make([]models.CheckoutItemInput, MaxItems+1)
	for i := range big {
		big[i] = models.CheckoutItemInput{ProductID: "sku_pen", Quantity: 1}
	}
	_, _, err = svc.Create(big)
	requireCheckoutStatus(t, err, 400)

	// All items invalid: hard failure too.
	_, _, err = svc.Create([]models.CheckoutItemInput{{ProductID: "sku_ghost", Quantity: 1}})
	requireCheckoutStatus(t, err, 400)
}

func TestCreatePerItemWarnings(t *testing.T) {
	svc, _ := newTestService(t)

	session, warnings, err := svc.Create([]models.CheckoutItemInput{
		{ProductID: "sku_pen", Quantity: 0},
		{ProductID: "sku_book", Quantity: 1.5},
		{ProductID: "sku_oos", Quantity: 1},
		{ProductID: "sku_ghost", Quantity: 2},
		{ProductID: "sku_book", Quantity: 1},
	})
	require.NoError(t, err)
	assert.Len(t, warnings, 4)
	require.Len(t, session.LineItems, 1)
	assert.Equal(t, "sku_book", session.LineItems[0].ProductID)
}

func TestUpdateRiyadhShipping(t *testing.T) {
	svc, _ := newTestService(t)
	session, _, err := svc.Create([]models.CheckoutItemInput{{ProductID: "sku_pen", Quantity: 2}})
	require.NoError(t, err)

	updated, err := svc.Update(session.ID, updateReq(strPtr("shopper@example.com"), riyadhAddress()))
	require.NoError(t, err)

	assert.Equal(t, models.StatusReadyForComplete, updated.Status)
	assert.Equal(t, 10.0, updated.Shipping.Fee)
	require.NotNil(t, updated.Delivery.Promise)
	assert.Contains(t, strings.ToLower(*updated.Delivery.Promise), "tomorrow")

	// VAT recomputed on subtotal + shipping: (80 + 10) * 0.15 = 13.5
	assert.Equal(t, 13.5, updated.Totals.VAT)
	assert.Equal(t, 103.5, updated.Totals.Total)
}

func TestUpdateOtherCityShipping(t *testing.T) {
	svc, _ := newTestService(t)
	session, _, err := svc.Create([]models.CheckoutItemInput{{ProductID: "sku_pen", Quantity: 2}})
	require.NoError(t, err)

	addr := riyadhAddress()
	addr.City = "Jeddah"
	updated, err := svc.Update(session.ID, updateReq(nil, addr))
	require.NoError(t, err)

	assert.Equal(t, 20.0, updated.Shipping.Fee)
	assert.Equal(t, 15.0, updated.Totals.VAT) // (80+20)*0.15
	assert.Equal(t, 115.0, updated.Totals.Total)
	// Email still missing, so no status flip.
	assert.Equal(t, models.StatusIncomplete, updated.Status)
}

func TestUpdateValidation(t *testing.T) {
	svc, _ := newTestService(t)
	session, _, err := svc.Create([]models.CheckoutItemInput{{ProductID: "sku_pen", Quantity: 1}})
	require.NoError(t, err)

	_, err = svc.Update(session.ID, updateReq(strPtr("not-an-email"), nil))
	requireCheckoutStatus(t, err, 400)

	addr := riyadhAddress()
	addr.Country = "AE"
	_, err = svc.Update(session.ID, updateReq(nil, addr))
	requireCheckoutStatus(t, err, 400)

	addr = riyadhAddress()
	addr.AddressLine1 = ""
	_, err = svc.Update(session.ID, updateReq(nil, addr))
	requireCheckoutStatus(t, err, 400)
}

func TestCompleteLifecycle(t *testing.T) {
	svc, now := newTestService(t)
	session, _, err := svc.Create([]models.CheckoutItemInput{{ProductID: "sku_pen", Quantity: 1}})
	require.NoError(t, err)
	_, err = svc.Update(session.ID, updateReq(strPtr("shopper@example.com"), riyadhAddress()))
	require.NoError(t, err)

	completed, started, err := svc.Complete(session.ID, "mada")
	require.NoError(t, err)
	assert.True(t, started)
	assert.Equal(t, models.StatusCompleteInProgress, completed.Status)
	require.NotNil(t, completed.Completion)
	require.NotNil(t, completed.Completion.ReadyAt)
	require.NotNil(t, completed.Order)
	require.NotNil(t, completed.Order.ID)
	assert.True(t, strings.HasPrefix(*completed.Order.ID, "ORD-"))
	firstOrderID := *completed.Order.ID

	readyAt, err := time.Parse(time.RFC3339, *completed.Completion.ReadyAt)
	require.NoError(t, err)
	assert.Equal(t, CompletionDelay, readyAt.Sub(*now))

	// Idempotent re-entry: no error, no second order minted.
	again, started, err := svc.Complete(session.ID, "mada")
	require.NoError(t, err)
	assert.False(t, started)
	assert.Equal(t, firstOrderID, *again.Order.ID)

	// Before the delay elapses the status holds.
	*now = now.Add(2 * time.Second)
	mid, err := svc.Get(session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleteInProgress, mid.Status)

	// After the delay the read flips the session to completed.
	*now = now.Add(4 * time.Second)
	done, err := svc.Get(session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, done.Status)
	assert.Nil(t, done.Completion.ReadyAt)
	assert.Equal(t, firstOrderID, *done.Order.ID)

	// Completed sessions reject further completes and updates.
	_, _, err = svc.Complete(session.ID, "mada")
	requireCheckoutStatus(t, err, 409)
	_, err = svc.Update(session.ID, updateReq(strPtr("new@example.com"), nil))
	requireCheckoutStatus(t, err, 409)
}

func TestCompleteGuards(t *testing.T) {
	svc, _ := newTestService(t)

	_, _, err := svc.Complete("cs_unknown", "mada")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	session, _, err := svc.Create([]models.CheckoutItemInput{{ProductID: "sku_pen", Quantity: 1}})
	require.NoError(t, err)

	// Not ready yet.
	_, _, err = svc.Complete(session.ID, "mada")
	requireCheckoutStatus(t, err, 409)

	_, err = svc.Update(session.ID, updateReq(strPtr("shopper@example.com"), riyadhAddress()))
	require.NoError(t, err)

	// Wrong payment method.
	_, _, err = svc.Complete(session.ID, "visa")
	requireCheckoutStatus(t, err, 400)
}

func TestSessionExpiry(t *testing.T) {
	svc, now := newTestService(t)
	session, _, err := svc.Create([]models.CheckoutItemInput{{ProductID: "sku_pen", Quantity: 1}})
	require.NoError(t, err)

	*now = now.Add(SessionTTL - time.Minute)
	_, err = svc.Get(session.ID)
	require.NoError(t, err)

	*now = now.Add(2 * time.Minute)
	_, err = svc.Get(session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// Expired sessions are gone for every operation.
	_, err = svc.Update(session.ID, updateReq(strPtr("a@b.c"), nil))
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestReconcile(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	readyAt := now.Add(5 * time.Second).Format(time.RFC3339)
	session := &models.CheckoutSession{
		Status:     models.StatusCompleteInProgress,
		Completion: &models.SessionCompletion{ReadyAt: &readyAt},
	}

	assert.False(t, reconcile(session, now))
	assert.Equal(t, models.StatusCompleteInProgress, session.Status)

	assert.True(t, reconcile(session, now.Add(6*time.Second)))
	assert.Equal(t, models.StatusCompleted, session.Status)
	assert.Nil(t, session.Completion.ReadyAt)

	// Already completed: nothing to do.
	assert.False(t, reconcile(session, now.Add(10*time.Second)))
}

func requireCheckoutStatus(t *testing.T, err error, status int) {
	t.Helper()
	var ce *Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, status, ce.Status)
}
