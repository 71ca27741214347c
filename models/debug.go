package models

// Removal reason classification for the debug trail.
const (
	RemovalReasonOOS     = "oos"
	RemovalReasonMissing = "missing"
	RemovalReasonPolicy  = "policy"
)

// ItemRemoval records an item or included item dropped during compilation.
type ItemRemoval struct {
	SkuID      string `json:"sku_id"`
	Type       string `json:"type"` // "item" or "included_item"
	ReasonType string `json:"reason_type"`
	Reason     string `json:"reason"`
}

// CandidateEntry is one scenario item in the candidate pool, whether or not it
// survived compilation.
type CandidateEntry struct {
	SkuID   string `json:"sku_id"`
	Title   string `json:"title"`
	InStock bool   `json:"in_stock"`
}

// AppliedOffer is the audit record for an offer that made it into the final
// response, including the internal reasoning the public shape must not carry.
type AppliedOffer struct {
	SkuID                 string             `json:"sku_id"`
	OfferID               string             `json:"offer_id"`
	ItemRank              int                `json:"item_rank"`
	OfferRank             int                `json:"offer_rank"`
	OfferSummary          string             `json:"offer_summary"`
	Reasoning             string             `json:"reasoning"`
	Confidence            float64            `json:"confidence"`
	ConfidenceExplanation string             `json:"confidence_explanation"`
	KPINumbers            map[string]float64 `json:"kpi_numbers"`
	DataSources           []DataSource       `json:"data_sources"`
	GatedWithoutIdentity  bool               `json:"gated_without_identity"`
}

type KPIDeltas struct {
	InventoryRiskDelta float64 `json:"inventory_risk_delta"`
	AttachRate         float64 `json:"attach_rate"`
	BundleValueAdded   float64 `json:"bundle_value_added"`
}

type GuardrailCheck struct {
	Rule   string `json:"rule"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

// DebugLog is the internal compiler trace stored per correlation id. It is
// retrievable only through the diagnostic lookup endpoint, never inline in a
// shopper-facing response.
type DebugLog struct {
	CorrelationID    string           `json:"correlation_id"`
	Timestamp        string           `json:"timestamp"`
	DetectedScenario string           `json:"detected_scenario"`
	CandidatePool    []CandidateEntry `json:"candidate_pool"`
	RankingRationale string           `json:"ranking_rationale"`
	AppliedOffers    []AppliedOffer   `json:"applied_offers"`
	ItemRemovals     []ItemRemoval    `json:"item_removals"`
	KPIDeltas        KPIDeltas        `json:"kpi_deltas"`
	GuardrailChecks  []GuardrailCheck `json:"guardrail_checks"`
	Narrative        string           `json:"narrative"`
}
