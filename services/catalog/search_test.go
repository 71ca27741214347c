package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"k2demo/models"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := New([]models.Product{
		{
			ID: "sku_chair_exec", Title: "Executive Office Chair", Brand: "Royal Falcon",
			Category: "office_furniture", Price: 499, Currency: "SAR",
			Availability: models.Availability{InStock: true, StockLevel: 5},
		},
		{
			ID: "sku_chair_student", Title: "Student Chair", Brand: "Generic",
			Category: "office_furniture", Price: 149, Currency: "SAR",
			Availability: models.Availability{InStock: true, StockLevel: 20},
		},
		{
			ID: "sku_chair_oos", Title: "Gaming Chair", Brand: "Generic",
			Category: "office_furniture", Price: 899, Currency: "SAR",
			Availability: models.Availability{InStock: false, StockLevel: 0},
		},
		{
			ID: "sku_marker", Title: "Jumbo Felt Tip Marker", Brand: "Carioca",
			Category: "art_supplies", Price: 25, Currency: "SAR",
			Availability: models.Availability{InStock: true, StockLevel: 100},
		},
	})
	require.NoError(t, err)
	return c
}

func TestNewRejectsDuplicateSKU(t *testing.T) {
	_, err := New([]models.Product{{ID: "dup"}, {ID: "dup"}})
	assert.Error(t, err)
}

func TestSearchFiltersOutOfStock(t *testing.T) {
	c := testCatalog(t)

	results := c.Search(SearchOptions{Query: "chair"})
	ids := make([]string, 0, len(results))
	for _, p := range results {
		ids = append(ids, p.ID)
	}
	assert.NotContains(t, ids, "sku_chair_oos")

	withOOS := c.Search(SearchOptions{Query: "chair", IncludeOOS: true})
	oosIDs := make([]string, 0, len(withOOS))
	for _, p := range withOOS {
		oosIDs = append(oosIDs, p.ID)
	}
	assert.Contains(t, oosIDs, "sku_chair_oos")
}

func TestSearchBrandOutweighsTitle(t *testing.T) {
	c := testCatalog(t)

	// "royal" hits only the brand of the executive chair.
	results := c.Search(SearchOptions{Query: "royal chair"})
	require.NotEmpty(t, results)
	assert.Equal(t, "sku_chair_exec", results[0].ID)
}

func TestSearchCategoryUnderscoreMatch(t *testing.T) {
	c := testCatalog(t)

	// Category "office_furniture" must match the space-separated query.
	results := c.Search(SearchOptions{Query: "office furniture"})
	require.Len(t, results, 2)
}

func TestSearchNoMatchReturnsEmpty(t *testing.T) {
	c := testCatalog(t)
	assert.Empty(t, c.Search(SearchOptions{Query: "smartphone"}))
}

func TestSearchEmptyQueryReturnsCatalogOrder(t *testing.T) {
	c := testCatalog(t)
	results := c.Search(SearchOptions{Query: ""})
	require.Len(t, results, 3) // OOS filtered
	assert.Equal(t, "sku_chair_exec", results[0].ID)
}

func TestSearchTruncatesToLimit(t *testing.T) {
	c := testCatalog(t)
	results := c.Search(SearchOptions{Query: "chair", Limit: 1})
	assert.Len(t, results, 1)
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, ClampLimit(0))
	assert.Equal(t, DefaultLimit, ClampLimit(-3))
	assert.Equal(t, 7, ClampLimit(7))
	assert.Equal(t, MaxLimit, ClampLimit(500))
}
