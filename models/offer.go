package models

// PerkType enumerates the perk types that may appear in API responses.
type PerkType string

const (
	PerkPickup        PerkType = "pickup"
	PerkDelivery      PerkType = "delivery"
	PerkAssembly      PerkType = "assembly"
	PerkLoyalty       PerkType = "loyalty"
	PerkRaffle        PerkType = "raffle"
	PerkEventInvite   PerkType = "event_invite"
	PerkVariantOption PerkType = "variant_option"

	// PerkPickupOptionalPaid is an authoring-time convenience only. The
	// compiler translates it to PerkPickup with paid details; it must never
	// reach the wire.
	PerkPickupOptionalPaid PerkType = "pickup_optional_paid"
)

// IsPublic reports whether the perk type may be serialized to shoppers.
func (t PerkType) IsPublic() bool {
	switch t {
	case PerkPickup, PerkDelivery, PerkAssembly, PerkLoyalty, PerkRaffle, PerkEventInvite, PerkVariantOption:
		return true
	}
	return false
}

// Perk is the public perk shape. Type is always one of the public enum values.
type Perk struct {
	Type    PerkType       `json:"type"`
	Title   string         `json:"title"`
	Details map[string]any `json:"details"`
}

// InternalPerk is the authoring-time perk shape; it may carry internal-only
// types and details that the compiler sanitizes before exposure.
type InternalPerk struct {
	Type    PerkType       `json:"type"`
	Title   string         `json:"title"`
	Details map[string]any `json:"details"`
}

// IncludedItemMeta describes a bundled item inside an offer.
type IncludedItemMeta struct {
	SkuID       string  `json:"sku_id"`
	Title       string  `json:"title"`
	Brand       string  `json:"brand"`
	RetailValue float64 `json:"retail_value"`
	Currency    string  `json:"currency"`
	ImageURL    string  `json:"image_url"`
}

// PriceBreakdown is the monetary summary of an offer. DiscountTotal is always
// zero and TotalPrice always equals the primary item's retail price; offers add
// value through included items and perks, never through price cuts.
type PriceBreakdown struct {
	ItemsSubtotal float64 `json:"items_subtotal"`
	IncludedValue float64 `json:"included_value"`
	DiscountTotal float64 `json:"discount_total"`
	TotalPrice    float64 `json:"total_price"`
	Currency      string  `json:"currency"`
}

type OfferUI struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Badges   []string `json:"badges"`
}

// RankedOffer is part of the API response contract sent to the shopping agent.
// It must never carry reasoning, confidence, economics, or KPI metadata.
type RankedOffer struct {
	OfferID        string             `json:"offer_id"`
	Rank           int                `json:"rank"`
	UI             OfferUI            `json:"ui"`
	IncludedItems  []IncludedItemMeta `json:"included_items"`
	Perks          []Perk             `json:"perks"`
	PriceBreakdown PriceBreakdown     `json:"price_breakdown"`
}

// ResponseItem is the canonical item shape for both baseline and K2 responses.
// RankedOffers is empty on the baseline path.
type ResponseItem struct {
	PublicProduct
	ItemID       string        `json:"item_id"`
	Rank         int           `json:"rank"`
	RankedOffers []RankedOffer `json:"ranked_offers"`
}

// UCPMeta is the capability/version envelope echoed on search responses.
type UCPMeta struct {
	Version      string   `json:"version"`
	Capabilities []string `json:"capabilities"`
}

// DefaultUCPMeta matches the discovery profile advertised at /.well-known/ucp.
func DefaultUCPMeta() UCPMeta {
	return UCPMeta{
		Version:      "2025-04-25",
		Capabilities: []string{"com.jarir.shopping.discovery"},
	}
}

// Recommended identifies the top pick of a K2 response.
type Recommended struct {
	ItemID  string  `json:"item_id"`
	OfferID *string `json:"offer_id"`
}

// K2ResponseBody is the scenario-engine search response.
type K2ResponseBody struct {
	UCP           UCPMeta        `json:"ucp"`
	Query         string         `json:"query"`
	Items         []ResponseItem `json:"items"`
	Recommended   *Recommended   `json:"recommended"`
	CorrelationID string         `json:"correlation_id"`
}

// BaselineResponseBody is the plain relevance-ranked search response.
type BaselineResponseBody struct {
	UCP               UCPMeta        `json:"ucp"`
	Query             string         `json:"query"`
	Items             []ResponseItem `json:"items"`
	RecommendedItemID *string        `json:"recommended_item_id"`
	CorrelationID     string         `json:"correlation_id"`
}
