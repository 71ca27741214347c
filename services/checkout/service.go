package checkout

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"k2demo/models"
	"k2demo/services/catalog"
	"k2demo/utils"
)

const (
	// VATRate is the Saudi standard VAT rate applied to subtotal + shipping.
	VATRate = 0.15

	// SessionTTL is how long a session stays readable after creation.
	SessionTTL = 6 * time.Hour

	// CompletionDelay simulates the payment/fulfillment handshake; the flip
	// to completed is observed lazily on read, never scheduled.
	CompletionDelay = 5 * time.Second

	// MaxItems bounds the aggregated line-item count of a create request.
	MaxItems = 50

	// PaymentMethodMada is the single payment method the demo accepts.
	PaymentMethodMada = "mada"

	supportedCountry = "SA"
	currencySAR      = "SAR"

	riyadhShippingFee = 10.0
	riyadhPromise     = "Deliver tomorrow in Riyadh"
	otherShippingFee  = 20.0
	otherPromise      = "Deliver in 2-3 days"
)

// DefaultCheckoutService drives checkout sessions through their state
// machine against an in-memory store.
type DefaultCheckoutService struct {
	mu      sync.Mutex
	store   *SessionStore
	catalog *catalog.Catalog
	logger  *zap.Logger

	// Now is swappable for tests.
	Now func() time.Time
}

func NewCheckoutService(store *SessionStore, cat *catalog.Catalog) *DefaultCheckoutService {
	return &DefaultCheckoutService{
		store:   store,
		catalog: cat,
		logger:  utils.GetLogger(),
		Now:     time.Now,
	}
}

// Create validates and resolves the requested items and opens a session in
// status incomplete. Individual bad items degrade into warnings; the request
// hard-fails only when the items array itself is invalid or nothing survives
// resolution.
func (s *DefaultCheckoutService) Create(items []models.CheckoutItemInput) (*models.CheckoutSession, []string, error) {
	if len(items) == 0 {
		return nil, nil, validationError("items array must not be empty")
	}
	if len(items) > MaxItems {
		return nil, nil, validationError(fmt.Sprintf("items array exceeds the maximum of %d entries", MaxItems))
	}

	var warnings []string

	// Aggregate duplicate product ids, preserving first-seen order.
	quantities := make(map[string]int, len(items))
	order := make([]string, 0, len(items))
	for _, in := range items {
		if in.Quantity <= 0 || in.Quantity != math.Trunc(in.Quantity) {
			warnings = append(warnings, fmt.Sprintf("item %s: quantity must be a positive integer", in.ProductID))
			continue
		}
		if _, seen := quantities[in.ProductID]; !seen {
			order = append(order, in.ProductID)
		}
		quantities[in.ProductID] += int(in.Quantity)
	}

	lineItems := make([]models.LineItem, 0, len(order))
	subtotal := 0.0
	for _, id := range order {
		p, ok := s.catalog.Get(id)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("item %s: product not found", id))
			continue
		}
		if !p.Availability.InStock {
			warnings = append(warnings, fmt.Sprintf("item %s: product is out of stock", id))
			continue
		}
		qty := quantities[id]
		total := utils.Round2(p.Price * float64(qty))
		lineItems = append(lineItems, models.LineItem{
			ProductID: p.ID,
			Title:     p.Title,
			Quantity:  qty,
			UnitPrice: p.Price,
			Total:     total,
		})
		subtotal = utils.Round2(subtotal + total)
	}

	if len(lineItems) == 0 {
		return nil, warnings, validationError("no valid items to check out")
	}

	now := s.Now()
	vat := utils.Round2(subtotal * VATRate)
	session := &models.CheckoutSession{
		ID:        "cs_" + uuid.NewString(),
		Status:    models.StatusIncomplete,
		Currency:  currencySAR,
		LineItems: lineItems,
		Totals: models.SessionTotals{
			Subtotal: subtotal,
			VAT:      vat,
			VATRate:  VATRate,
			Total:    utils.Round2(subtotal + vat),
		},
		CreatedAt: now.UTC().Format(time.RFC3339),
		ExpiresAt: now.Add(SessionTTL).UTC().Format(time.RFC3339),
		UpdatedAt: now.UTC().Format(time.RFC3339),
	}

	s.mu.Lock()
	s.store.Put(session)
	s.mu.Unlock()

	s.logger.Info("checkout session created",
		zap.String("session_id", session.ID),
		zap.Int("line_items", len(lineItems)),
		zap.Float64("total", session.Totals.Total))
	return session, warnings, nil
}

// Update applies an email and/or shipping address patch, recomputes shipping
// and totals, and flips incomplete sessions to ready_for_complete once both
// fields are present. The flip never regresses.
func (s *DefaultCheckoutService) Update(id string, req models.UpdateCheckoutRequest) (*models.CheckoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.load(id)
	if err != nil {
		return nil, err
	}
	if session.Status.Terminal() {
		return nil, conflictError(fmt.Sprintf("session cannot be updated in status %q", session.Status))
	}

	if req.Customer != nil && req.Customer.Email != nil {
		email := strings.TrimSpace(*req.Customer.Email)
		if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
			return nil, validationError("invalid email address")
		}
		session.Customer.Email = &email
	}

	if req.Shipping != nil && req.Shipping.Address != nil {
		addr := *req.Shipping.Address
		if strings.TrimSpace(addr.Country) == "" || strings.TrimSpace(addr.City) == "" || strings.TrimSpace(addr.AddressLine1) == "" {
			return nil, validationError("address requires country, city and address_line1")
		}
		if !strings.EqualFold(strings.TrimSpace(addr.Country), supportedCountry) {
			return nil, validationError(fmt.Sprintf("only %s addresses are supported", supportedCountry))
		}

		session.Shipping.Address = &addr
		fee, promise := shippingForCity(addr.City)
		session.Shipping.Fee = fee
		session.Delivery.Promise = &promise
	}

	recomputeTotals(session)

	if session.Status == models.StatusIncomplete && session.Customer.Email != nil && session.Shipping.Address != nil {
		session.Status = models.StatusReadyForComplete
	}

	session.UpdatedAt = s.Now().UTC().Format(time.RFC3339)
	s.store.Put(session)
	return session, nil
}

// Complete starts the simulated asynchronous completion. Calling it again
// while completion is in flight is not an error; the caller is told it is
// already in progress and no second order is minted.
func (s *DefaultCheckoutService) Complete(id, paymentMethod string) (*models.CheckoutSession, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.load(id)
	if err != nil {
		return nil, false, err
	}

	switch session.Status {
	case models.StatusCompleted:
		return nil, false, conflictError("session is already completed")
	case models.StatusCompleteInProgress:
		return session, false, nil
	case models.StatusReadyForComplete:
		// proceed
	default:
		return nil, false, conflictError(fmt.Sprintf("session cannot be completed in status %q", session.Status))
	}

	if session.Customer.Email == nil || session.Shipping.Address == nil {
		return nil, false, validationError("session is missing customer email or shipping address")
	}
	if paymentMethod != PaymentMethodMada {
		return nil, false, validationError(fmt.Sprintf("unsupported payment method %q; only %q is accepted", paymentMethod, PaymentMethodMada))
	}

	now := s.Now()
	startedAt := now.UTC().Format(time.RFC3339)
	readyAt := now.Add(CompletionDelay).UTC().Format(time.RFC3339)
	orderID := generateOrderID()
	session.Status = models.StatusCompleteInProgress
	session.Completion = &models.SessionCompletion{StartedAt: startedAt, ReadyAt: &readyAt}
	session.Order = &models.SessionOrder{ID: &orderID, CreatedAt: &startedAt}
	session.Payment = &models.SessionPayment{Method: paymentMethod}
	session.UpdatedAt = startedAt
	s.store.Put(session)

	s.logger.Info("checkout completion started",
		zap.String("session_id", session.ID),
		zap.String("order_id", orderID))
	return session, true, nil
}

// Get returns the session after expiry and completion reconciliation.
func (s *DefaultCheckoutService) Get(id string) (*models.CheckoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(id)
}

// load fetches a session, enforcing expiry and lazily flipping completion.
// Callers must hold s.mu.
func (s *DefaultCheckoutService) load(id string) (*models.CheckoutSession, error) {
	session, ok := s.store.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}

	now := s.Now()
	if expiresAt, err := time.Parse(time.RFC3339, session.ExpiresAt); err == nil && now.After(expiresAt) {
		s.store.Delete(id)
		return nil, ErrSessionNotFound
	}

	if reconcile(session, now) {
		session.UpdatedAt = now.UTC().Format(time.RFC3339)
		s.store.Put(session)
	}
	return session, nil
}

// reconcile flips complete_in_progress to completed once the recorded
// ready_at has passed. Completion is observed on read, not scheduled; a
// session nobody reads never visibly completes.
func reconcile(session *models.CheckoutSession, now time.Time) bool {
	if session.Status != models.StatusCompleteInProgress || session.Completion == nil || session.Completion.ReadyAt == nil {
		return false
	}
	readyAt, err := time.Parse(time.RFC3339, *session.Completion.ReadyAt)
	if err != nil || now.Before(readyAt) {
		return false
	}
	session.Status = models.StatusCompleted
	session.Completion.ReadyAt = nil
	return true
}

func recomputeTotals(session *models.CheckoutSession) {
	subtotal := 0.0
	for _, li := range session.LineItems {
		subtotal = utils.Round2(subtotal + li.Total)
	}
	vat := utils.Round2((subtotal + session.Shipping.Fee) * VATRate)
	session.Totals = models.SessionTotals{
		Subtotal: subtotal,
		VAT:      vat,
		VATRate:  VATRate,
		Total:    utils.Round2(subtotal + session.Shipping.Fee + vat),
	}
}

func shippingForCity(city string) (float64, string) {
	if utils.NormalizeText(city) == "riyadh" || strings.Contains(city, "الرياض") {
		return riyadhShippingFee, riyadhPromise
	}
	return otherShippingFee, otherPromise
}

func generateOrderID() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "ORD-" + raw[:8]
}
