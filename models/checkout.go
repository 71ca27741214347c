package models

// SessionStatus is the checkout session state machine's status enum.
// canceled and requires_escalation are reserved absorbing states: nothing in
// the demo transitions into them, but they block further mutation if set.
type SessionStatus string

const (
	StatusIncomplete         SessionStatus = "incomplete"
	StatusRequiresEscalation SessionStatus = "requires_escalation"
	StatusReadyForComplete   SessionStatus = "ready_for_complete"
	StatusCompleteInProgress SessionStatus = "complete_in_progress"
	StatusCompleted          SessionStatus = "completed"
	StatusCanceled           SessionStatus = "canceled"
)

// Terminal reports whether the status blocks any further mutation.
func (s SessionStatus) Terminal() bool {
	switch s {
	case StatusCompleted, StatusCanceled, StatusCompleteInProgress, StatusRequiresEscalation:
		return true
	}
	return false
}

type LineItem struct {
	ProductID string  `json:"product_id"`
	Title     string  `json:"title"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

type ShippingAddress struct {
	Country      string `json:"country"`
	City         string `json:"city"`
	District     string `json:"district,omitempty"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	Postcode     string `json:"postcode,omitempty"`
	Phone        string `json:"phone,omitempty"`
}

type SessionCustomer struct {
	Email *string `json:"email"`
}

type SessionShipping struct {
	Address *ShippingAddress `json:"address"`
	Fee     float64          `json:"fee"`
}

type SessionTotals struct {
	Subtotal float64 `json:"subtotal"`
	VAT      float64 `json:"vat"`
	VATRate  float64 `json:"vat_rate"`
	Total    float64 `json:"total"`
}

type SessionDelivery struct {
	Promise    *string `json:"promise"`
	ETAMinutes *int    `json:"eta_minutes"`
}

type SessionCompletion struct {
	StartedAt string  `json:"started_at"`
	ReadyAt   *string `json:"ready_at"`
}

type SessionOrder struct {
	ID        *string `json:"id"`
	CreatedAt *string `json:"created_at"`
}

type SessionPayment struct {
	Method string `json:"method"`
}

// CheckoutSession is the full in-memory session record. Timestamps are ISO
// 8601 strings on the wire, matching the checkout API contract.
type CheckoutSession struct {
	ID         string             `json:"id"`
	Status     SessionStatus      `json:"status"`
	Currency   string             `json:"currency"`
	LineItems  []LineItem         `json:"line_items"`
	Customer   SessionCustomer    `json:"customer"`
	Shipping   SessionShipping    `json:"shipping"`
	Totals     SessionTotals      `json:"totals"`
	Delivery   SessionDelivery    `json:"delivery"`
	Completion *SessionCompletion `json:"completion,omitempty"`
	Order      *SessionOrder      `json:"order,omitempty"`
	Payment    *SessionPayment    `json:"payment,omitempty"`
	CreatedAt  string             `json:"created_at"`
	ExpiresAt  string             `json:"expires_at"`
	UpdatedAt  string             `json:"updated_at"`
}

// MissingFields lists the fields still required before completion.
func (s *CheckoutSession) MissingFields() []string {
	missing := []string{}
	if s.Customer.Email == nil {
		missing = append(missing, "customer.email")
	}
	if s.Shipping.Address == nil {
		missing = append(missing, "shipping.address")
	}
	return missing
}

// CheckoutItemInput is one requested line in a create-session call.
type CheckoutItemInput struct {
	ProductID string  `json:"product_id"`
	Quantity  float64 `json:"quantity"`
}

type CreateCheckoutRequest struct {
	Items []CheckoutItemInput `json:"items"`
}

type UpdateCheckoutRequest struct {
	Customer *struct {
		Email *string `json:"email"`
	} `json:"customer"`
	Shipping *struct {
		Address *ShippingAddress `json:"address"`
	} `json:"shipping"`
}

type CompleteCheckoutRequest struct {
	PaymentMethod string `json:"payment_method"`
}
