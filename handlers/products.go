package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"k2demo/models"
	"k2demo/services/catalog"
	"k2demo/services/demolog"
	"k2demo/services/k2"
	"k2demo/utils"
)

// Request headers consumed by the search endpoint.
const (
	HeaderK2Mode          = "X-K2-Mode"
	HeaderShopperIdentity = "X-Shopper-Identity"
	HeaderCorrelationID   = "X-K2-Correlation-Id"
)

// SearchProducts serves /api/products/search. When K2 is enabled and a
// scenario matches, the response carries merchant-curated ranked offers;
// otherwise it falls back to baseline relevance search.
func (hb *HandlerBundle) SearchProducts(c *gin.Context) {
	query := c.Query("q")
	limit := catalog.DefaultLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid limit parameter", raw)
			return
		}
		limit = parsed
	}
	limit = catalog.ClampLimit(limit)
	includeOOS := c.Query("include_oos") == "1" || c.Query("include_oos") == "true"

	correlationID := c.GetHeader(HeaderCorrelationID)
	if correlationID == "" {
		correlationID = demolog.NewCorrelationID()
	}
	c.Header(HeaderCorrelationID, correlationID)

	k2Enabled := hb.Settings.K2Enabled(c.GetHeader(HeaderK2Mode))
	hasIdentity := hb.Settings.IdentityFor(c.GetHeader(HeaderShopperIdentity))

	if k2Enabled {
		if scenario, ok := hb.Engine.Match(query); ok {
			hb.serveK2(c, scenario, query, correlationID, hasIdentity, limit)
			return
		}
		hb.Bus.Publish(demolog.Emit{
			Category: models.LogCategoryK2,
			Event:    "scenario_miss",
			Message:  "no scenario matched; falling back to baseline search",
			Payload:  map[string]any{"query": query, "correlation_id": correlationID},
		})
	}

	hb.serveBaseline(c, query, correlationID, limit, includeOOS)
}

func (hb *HandlerBundle) serveK2(c *gin.Context, scenario *models.Scenario, query, correlationID string, hasIdentity bool, limit int) {
	result := hb.Engine.Compile(k2.CompileInput{
		Scenario:      scenario,
		Query:         query,
		CorrelationID: correlationID,
		HasIdentity:   hasIdentity,
		MaxItems:      limit,
	})
	hb.DebugLogs.Put(result.Debug)

	hb.Bus.Publish(demolog.Emit{
		Category: models.LogCategoryK2,
		Event:    "scenario_compiled",
		Message:  "K2 scenario compiled into ranked response",
		Payload: map[string]any{
			"scenario_id":    scenario.ID,
			"correlation_id": correlationID,
			"items":          len(result.Items),
			"has_identity":   hasIdentity,
		},
	})

	c.JSON(http.StatusOK, models.K2ResponseBody{
		UCP:           models.DefaultUCPMeta(),
		Query:         query,
		Items:         result.Items,
		Recommended:   result.Recommended,
		CorrelationID: correlationID,
	})
}

func (hb *HandlerBundle) serveBaseline(c *gin.Context, query, correlationID string, limit int, includeOOS bool) {
	products := hb.Catalog.Search(catalog.SearchOptions{Query: query, Limit: limit, IncludeOOS: includeOOS})

	items := make([]models.ResponseItem, 0, len(products))
	for i := range products {
		items = append(items, models.ResponseItem{
			PublicProduct: products[i].ToPublic(),
			ItemID:        products[i].ID,
			Rank:          i + 1,
			RankedOffers:  []models.RankedOffer{},
		})
	}
	var recommended *string
	if len(items) > 0 {
		recommended = &items[0].ItemID
	}

	hb.Bus.Publish(demolog.Emit{
		Category: models.LogCategoryMerchant,
		Event:    "baseline_search",
		Message:  "baseline relevance search served",
		Payload:  map[string]any{"query": query, "correlation_id": correlationID, "items": len(items)},
	})

	c.JSON(http.StatusOK, models.BaselineResponseBody{
		UCP:               models.DefaultUCPMeta(),
		Query:             query,
		Items:             items,
		RecommendedItemID: recommended,
		CorrelationID:     correlationID,
	})
}

// GetProduct serves /api/products/:id with the public product shape.
func (hb *HandlerBundle) GetProduct(c *gin.Context) {
	p, ok := hb.Catalog.Get(c.Param("id"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "product not found", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, p.ToPublic())
}
