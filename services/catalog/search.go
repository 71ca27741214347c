package catalog

import (
	"sort"
	"strings"

	"k2demo/models"
	"k2demo/utils"
)

const (
	DefaultLimit = 20
	MaxLimit     = 50
)

// Per-field token weights for baseline relevance scoring.
const (
	brandWeight    = 3
	titleWeight    = 2
	categoryWeight = 1
)

// SearchOptions controls the baseline search.
type SearchOptions struct {
	Query      string
	Limit      int
	IncludeOOS bool
}

// ClampLimit applies the default and maximum result-count bounds.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

func scoreProduct(p *models.Product, tokens []string) int {
	score := 0
	title := utils.NormalizeText(p.Title)
	brand := utils.NormalizeText(p.Brand)
	category := utils.NormalizeText(strings.ReplaceAll(p.Category, "_", " "))

	for _, token := range tokens {
		if strings.Contains(brand, token) {
			score += brandWeight
		}
		if strings.Contains(title, token) {
			score += titleWeight
		}
		if strings.Contains(category, token) {
			score += categoryWeight
		}
	}
	return score
}

// Search runs token-overlap relevance scoring over brand/title/category.
// Out-of-stock items are filtered unless IncludeOOS is set; results sort by
// descending score with ties left in catalog order; the list is truncated to
// the clamped limit. An empty query returns the catalog in order.
func (c *Catalog) Search(opts SearchOptions) []models.Product {
	limit := ClampLimit(opts.Limit)

	base := make([]models.Product, 0, len(c.products))
	for _, p := range c.products {
		if !opts.IncludeOOS && !p.Availability.InStock {
			continue
		}
		base = append(base, p)
	}

	tokens := utils.Tokenize(opts.Query)
	if len(tokens) > 0 {
		type scored struct {
			product models.Product
			score   int
		}
		matches := make([]scored, 0, len(base))
		for _, p := range base {
			if s := scoreProduct(&p, tokens); s > 0 {
				matches = append(matches, scored{product: p, score: s})
			}
		}
		sort.SliceStable(matches, func(i, j int) bool {
			return matches[i].score > matches[j].score
		})
		base = base[:0]
		for _, m := range matches {
			base = append(base, m.product)
		}
	}

	if len(base) > limit {
		base = base[:limit]
	}
	return base
}
