package k2

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"k2demo/models"
	"k2demo/services/catalog"
	"k2demo/utils"
)

// bundlingInventoryRiskDelta is the fixed risk adjustment reported whenever a
// response carries at least one bundled item.
const bundlingInventoryRiskDelta = -0.15

// Engine matches free-text queries against the merchandising playbook and
// compiles matched scenarios into public responses plus internal audit logs.
type Engine struct {
	scenarios []models.Scenario
	triggers  [][]string // normalized once at construction, parallel to scenarios
	catalog   *catalog.Catalog
	logger    *zap.Logger

	// Now is swappable for tests.
	Now func() time.Time
}

func NewEngine(cat *catalog.Catalog, scenarios []models.Scenario) *Engine {
	e := &Engine{
		scenarios: scenarios,
		triggers:  make([][]string, len(scenarios)),
		catalog:   cat,
		logger:    utils.GetLogger(),
		Now:       time.Now,
	}
	for i, sc := range scenarios {
		norm := make([]string, 0, len(sc.Triggers))
		for _, t := range sc.Triggers {
			if n := utils.NormalizeText(t); n != "" {
				norm = append(norm, n)
			}
		}
		e.triggers[i] = norm
	}
	return e
}

// Match returns the first scenario, in authoring order, with any trigger that
// is a substring of the normalized query. First match wins; there is no
// best-match scoring.
func (e *Engine) Match(query string) (*models.Scenario, bool) {
	q := utils.NormalizeText(query)
	if q == "" {
		return nil, false
	}
	for i := range e.scenarios {
		for _, t := range e.triggers[i] {
			if strings.Contains(q, t) {
				return &e.scenarios[i], true
			}
		}
	}
	return nil, false
}

// CompileInput carries everything one compilation needs. MaxItems <= 0 means
// no truncation.
type CompileInput struct {
	Scenario      *models.Scenario
	Query         string
	CorrelationID string
	HasIdentity   bool
	MaxItems      int
}

// CompileResult pairs the public response fragment with the internal audit
// trail. The two must stay strictly separated downstream.
type CompileResult struct {
	Items       []models.ResponseItem
	Recommended *models.Recommended
	Debug       *models.DebugLog
}

// compileState accumulates the debug trail across compilation phases.
type compileState struct {
	removals   []models.ItemRemoval
	violations []models.GuardrailCheck
}

// Compile runs the five-phase compilation: per-item assembly, rank sort and
// truncation, bundle-exclusion against the post-truncation item set,
// recommendation, and debug-log assembly. Anomalies never fail the
// compilation; they degrade into removals or guardrail entries.
func (e *Engine) Compile(in CompileInput) CompileResult {
	sc := in.Scenario
	st := &compileState{}

	// Phase 1: compile items in ascending rank order. A SKU authored at more
	// than one rank collapses into a single item with the offers merged.
	ordered := append([]models.ScenarioItem(nil), sc.Items...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Rank < ordered[j].Rank })

	items := make([]models.ResponseItem, 0, len(ordered))
	itemIndex := make(map[string]int, len(ordered))
	pool := make([]models.CandidateEntry, 0, len(ordered))
	audits := make(map[string]models.AppliedOffer, len(ordered))

	for _, si := range ordered {
		p, ok := e.catalog.Get(si.SkuID)
		entry := models.CandidateEntry{SkuID: si.SkuID}
		if ok {
			entry.Title = p.Title
			entry.InStock = p.Availability.InStock
		}
		pool = append(pool, entry)

		if !ok {
			st.removals = append(st.removals, models.ItemRemoval{
				SkuID:      si.SkuID,
				Type:       "item",
				ReasonType: models.RemovalReasonMissing,
				Reason:     "sku not found in catalog",
			})
			continue
		}
		if !p.Availability.InStock {
			st.removals = append(st.removals, models.ItemRemoval{
				SkuID:      si.SkuID,
				Type:       "item",
				ReasonType: models.RemovalReasonOOS,
				Reason:     "sku is out of stock",
			})
			continue
		}

		offers := make([]models.RankedOffer, 0, len(si.RankedOffers))
		for _, def := range si.RankedOffers {
			offer, audit := e.compileOffer(p, si.Rank, def, in.HasIdentity, st)
			offers = append(offers, offer)
			audits[offer.OfferID] = audit
		}

		if idx, dup := itemIndex[si.SkuID]; dup {
			items[idx].RankedOffers = append(items[idx].RankedOffers, offers...)
			sortOffers(items[idx].RankedOffers)
			continue
		}

		item := models.ResponseItem{
			PublicProduct: p.ToPublic(),
			ItemID:        si.SkuID,
			Rank:          si.Rank,
			RankedOffers:  offers,
		}
		sortOffers(item.RankedOffers)
		itemIndex[si.SkuID] = len(items)
		items = append(items, item)
	}

	// Promotion runs after the duplicate merge so a delivery perk arriving
	// via a later occurrence of the same SKU still counts.
	for i := range items {
		promoteDeliveryPromise(&items[i])
	}

	// Phase 2: sort by rank and truncate. Truncation follows the sort so it
	// always drops the lowest-priority items.
	sort.SliceStable(items, func(i, j int) bool { return items[i].Rank < items[j].Rank })
	if in.MaxItems > 0 && len(items) > in.MaxItems {
		items = items[:in.MaxItems]
	}

	// Phase 3: bundle exclusion against the post-truncation top-level set.
	// Included items matching a truncated-away item are deliberately allowed.
	topLevel := make(map[string]bool, len(items))
	for _, it := range items {
		topLevel[it.ItemID] = true
	}
	for i := range items {
		for j := range items[i].RankedOffers {
			offer := &items[i].RankedOffers[j]
			kept := make([]models.IncludedItemMeta, 0, len(offer.IncludedItems))
			removed := false
			for _, inc := range offer.IncludedItems {
				if topLevel[inc.SkuID] {
					removed = true
					st.removals = append(st.removals, models.ItemRemoval{
						SkuID:      inc.SkuID,
						Type:       "included_item",
						ReasonType: models.RemovalReasonPolicy,
						Reason:     fmt.Sprintf("bundle exclusion: %s is a top-level item in this response", inc.SkuID),
					})
					continue
				}
				kept = append(kept, inc)
			}
			if removed {
				offer.IncludedItems = kept
				value := 0.0
				for _, inc := range kept {
					value = utils.Round2(value + inc.RetailValue)
				}
				offer.PriceBreakdown.IncludedValue = value
			}
		}
	}

	// Phase 4: the top-ranked item is the recommendation, with its
	// lowest-rank offer when it has one.
	var recommended *models.Recommended
	if len(items) > 0 {
		rec := models.Recommended{ItemID: items[0].ItemID}
		if len(items[0].RankedOffers) > 0 {
			rec.OfferID = &items[0].RankedOffers[0].OfferID
		}
		recommended = &rec
	}

	// Phase 5: assemble the audit trail from what actually survived.
	applied := make([]models.AppliedOffer, 0, len(audits))
	itemsWithBundle := 0
	bundleValue := 0.0
	for _, it := range items {
		hasBundle := false
		for _, offer := range it.RankedOffers {
			if audit, ok := audits[offer.OfferID]; ok {
				applied = append(applied, audit)
			}
			if len(offer.IncludedItems) > 0 {
				hasBundle = true
				bundleValue = utils.Round2(bundleValue + offer.PriceBreakdown.IncludedValue)
			}
		}
		if hasBundle {
			itemsWithBundle++
		}
	}

	deltas := models.KPIDeltas{BundleValueAdded: bundleValue}
	if len(items) > 0 {
		deltas.AttachRate = float64(itemsWithBundle) / float64(len(items))
	}
	if itemsWithBundle > 0 {
		deltas.InventoryRiskDelta = bundlingInventoryRiskDelta
	}

	checks := []models.GuardrailCheck{
		{Rule: "discount_total_zero", Passed: true, Detail: "all offers priced with discount_total = 0"},
		{Rule: "total_price_equals_item_price", Passed: true, Detail: "all offers keep total_price at the item retail price"},
		{Rule: "bundle_exclusion", Passed: true, Detail: "no included item duplicates a final top-level item"},
	}
	checks = append(checks, st.violations...)

	debug := &models.DebugLog{
		CorrelationID:    in.CorrelationID,
		Timestamp:        e.Now().UTC().Format(time.RFC3339),
		DetectedScenario: sc.ID,
		CandidatePool:    pool,
		RankingRationale: fmt.Sprintf("merchant-authored ranking for scenario %q; items ordered by authored rank, offers by offer rank", sc.Name),
		AppliedOffers:    applied,
		ItemRemovals:     st.removals,
		KPIDeltas:        deltas,
		GuardrailChecks:  checks,
		Narrative:        sc.Narrative,
	}

	return CompileResult{Items: items, Recommended: recommended, Debug: debug}
}

// compileOffer maps one authored offer definition into its public shape and
// the matching audit record. Identity gating, perk sanitization, and included
// item resolution all happen here.
func (e *Engine) compileOffer(p *models.Product, itemRank int, def models.RankedOfferDef, hasIdentity bool, st *compileState) (models.RankedOffer, models.AppliedOffer) {
	offerID := fmt.Sprintf("%s_offer_%d", p.ID, def.Rank)

	gated := def.IdentityGated && !hasIdentity
	includedSKUs := def.IncludedItems
	ui := def.UI
	if gated {
		includedSKUs = nil
		if def.IdentityAbsentUI != nil {
			ui = *def.IdentityAbsentUI
		} else {
			ui = sanitizeUI(def.UI)
			st.violations = append(st.violations, models.GuardrailCheck{
				Rule:   "identity_fallback_authored",
				Passed: false,
				Detail: fmt.Sprintf("offer %s is identity gated without an authored identity_absent_ui; pattern-based sanitization applied", offerID),
			})
			e.logger.Warn("identity-gated offer has no authored fallback UI",
				zap.String("offer_id", offerID),
				zap.String("sku_id", p.ID))
		}
	}

	included := make([]models.IncludedItemMeta, 0, len(includedSKUs))
	includedValue := 0.0
	for _, sku := range includedSKUs {
		inc, ok := e.catalog.Get(sku)
		if !ok {
			st.removals = append(st.removals, models.ItemRemoval{
				SkuID:      sku,
				Type:       "included_item",
				ReasonType: models.RemovalReasonMissing,
				Reason:     "included item not found in catalog",
			})
			continue
		}
		if !inc.Availability.InStock {
			st.removals = append(st.removals, models.ItemRemoval{
				SkuID:      sku,
				Type:       "included_item",
				ReasonType: models.RemovalReasonOOS,
				Reason:     "included item is out of stock",
			})
			continue
		}
		included = append(included, models.IncludedItemMeta{
			SkuID:       inc.ID,
			Title:       inc.Title,
			Brand:       inc.Brand,
			RetailValue: inc.Price,
			Currency:    inc.Currency,
			ImageURL:    inc.ImageURL,
		})
		includedValue = utils.Round2(includedValue + inc.Price)
	}

	perks := make([]models.Perk, 0, len(def.Perks))
	for _, ip := range def.Perks {
		switch {
		case ip.Type == models.PerkPickupOptionalPaid:
			details := cloneDetails(ip.Details)
			details["paid"] = true
			perks = append(perks, models.Perk{Type: models.PerkPickup, Title: ip.Title, Details: details})

		case ip.Type == models.PerkPickup:
			details := cloneDetails(ip.Details)
			if paid, _ := details["paid"].(bool); paid || detailPrice(details) != 0 {
				st.violations = append(st.violations, models.GuardrailCheck{
					Rule:   "perk_pickup_forced_free",
					Passed: false,
					Detail: fmt.Sprintf("offer %s authored a paid pickup perk as public pickup; forced free", offerID),
				})
				e.logger.Warn("pickup perk authored with payment details; forcing free",
					zap.String("offer_id", offerID))
			}
			details["paid"] = false
			details["price_sar"] = 0
			perks = append(perks, models.Perk{Type: models.PerkPickup, Title: ip.Title, Details: details})

		case ip.Type.IsPublic():
			perks = append(perks, models.Perk{Type: ip.Type, Title: ip.Title, Details: cloneDetails(ip.Details)})

		default:
			st.violations = append(st.violations, models.GuardrailCheck{
				Rule:   "perk_type_public",
				Passed: false,
				Detail: fmt.Sprintf("offer %s authored unknown perk type %q; dropped", offerID, ip.Type),
			})
			e.logger.Warn("dropping perk with non-public type",
				zap.String("offer_id", offerID),
				zap.String("perk_type", string(ip.Type)))
		}
	}

	offer := models.RankedOffer{
		OfferID:       offerID,
		Rank:          def.Rank,
		UI:            ui,
		IncludedItems: included,
		Perks:         perks,
		PriceBreakdown: models.PriceBreakdown{
			ItemsSubtotal: p.Price,
			IncludedValue: includedValue,
			DiscountTotal: 0,
			TotalPrice:    p.Price,
			Currency:      p.Currency,
		},
	}

	audit := models.AppliedOffer{
		SkuID:                 p.ID,
		OfferID:               offerID,
		ItemRank:              itemRank,
		OfferRank:             def.Rank,
		OfferSummary:          strings.TrimSuffix(ui.Title+": "+ui.Subtitle, ": "),
		Reasoning:             def.Internal.Reasoning,
		Confidence:            def.Internal.Confidence,
		ConfidenceExplanation: def.Internal.ConfidenceExplanation,
		KPINumbers:            def.Internal.KPINumbers,
		DataSources:           def.Internal.DataSources,
		GatedWithoutIdentity:  gated,
	}
	return offer, audit
}

func sortOffers(offers []models.RankedOffer) {
	sort.SliceStable(offers, func(i, j int) bool { return offers[i].Rank < offers[j].Rank })
}

// promoteDeliveryPromise lifts the first delivery perk's promise into the
// item's own delivery field, so list views reflect the offer's upgraded
// promise without opening the offer. Once promoted, delivery perks are
// stripped from every offer on the item; the promise lives in one place.
func promoteDeliveryPromise(item *models.ResponseItem) {
	for _, offer := range item.RankedOffers {
		for _, perk := range offer.Perks {
			if perk.Type != models.PerkDelivery {
				continue
			}
			promise := perk.Title
			if p, ok := perk.Details["promise"].(string); ok && p != "" {
				promise = p
			}
			item.Delivery.DefaultPromise = promise
			stripDeliveryPerks(item)
			return
		}
	}
}

func stripDeliveryPerks(item *models.ResponseItem) {
	for i := range item.RankedOffers {
		offer := &item.RankedOffers[i]
		kept := make([]models.Perk, 0, len(offer.Perks))
		for _, perk := range offer.Perks {
			if perk.Type == models.PerkDelivery {
				continue
			}
			kept = append(kept, perk)
		}
		offer.Perks = kept
	}
}

func cloneDetails(details map[string]any) map[string]any {
	out := make(map[string]any, len(details)+2)
	for k, v := range details {
		out[k] = v
	}
	return out
}

func detailPrice(details map[string]any) float64 {
	switch v := details["price_sar"].(type) {
	case int:
		return float64(v)
	case float64:
		return v
	}
	return 0
}
