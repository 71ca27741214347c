package models

// DataSource names an upstream feed an offer's reasoning was derived from.
type DataSource struct {
	Name             string `json:"name"`
	FreshnessMinutes int    `json:"freshness_minutes"`
}

// OfferInternal is the merchant-confidential block attached to every authored
// offer. It exists only for the debug/audit trail and must never be serialized
// into a shopper-facing response.
type OfferInternal struct {
	Reasoning             string             `json:"reasoning"`
	Confidence            float64            `json:"confidence"`
	ConfidenceExplanation string             `json:"confidence_explanation"`
	KPINumbers            map[string]float64 `json:"kpi_numbers"`
	DataSources           []DataSource       `json:"data_sources"`
}

// RankedOfferDef is the authoring-time offer definition. It is compiled into a
// public RankedOffer; it is never sent to clients as-is.
type RankedOfferDef struct {
	Rank          int
	IncludedItems []string
	Perks         []InternalPerk
	UI            OfferUI

	// IdentityGated offers only expose their included items when shopper
	// identity is present. Without identity the UI is swapped for
	// IdentityAbsentUI, or sanitized as a last resort.
	IdentityGated    bool
	IdentityAbsentUI *OfferUI

	Internal OfferInternal
}

// ScenarioItem places a SKU at a merchant-defined rank, optionally with offers.
type ScenarioItem struct {
	SkuID        string
	Rank         int
	RankedOffers []RankedOfferDef
}

// Scenario is one hand-authored merchandising play: trigger phrases matched as
// normalized substrings, ranked items, and a debug-only narrative.
type Scenario struct {
	ID        string
	Name      string
	Triggers  []string
	Items     []ScenarioItem
	Narrative string
}
