package models

// Velocity classifies how fast a SKU sells.
type Velocity string

const (
	VelocityFast      Velocity = "fast"
	VelocityNormal    Velocity = "normal"
	VelocitySlow      Velocity = "slow"
	VelocityOverstock Velocity = "overstock"
)

// LifecycleStage classifies where a SKU sits in its merchandising lifecycle.
type LifecycleStage string

const (
	LifecycleCore     LifecycleStage = "core"
	LifecycleNew      LifecycleStage = "new"
	LifecycleSeasonal LifecycleStage = "seasonal"
	LifecycleAging    LifecycleStage = "aging"
)

type Availability struct {
	InStock    bool `json:"in_stock"`
	StockLevel int  `json:"stock_level"`
}

type Delivery struct {
	DefaultPromise string `json:"default_promise"`
}

// Product is the full catalog entry. Monetary fields are SAR decimals.
// Fields past the public set (margin, costs, velocity, lifecycle) are
// merchant-confidential and must never be serialized to shoppers.
type Product struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Brand           string         `json:"brand"`
	Category        string         `json:"category"`
	Price           float64        `json:"price"`
	Currency        string         `json:"currency"`
	MarginBps       int            `json:"margin_bps"`
	UnitCost        float64        `json:"unit_cost"`
	FulfillmentCost float64        `json:"fulfillment_cost"`
	Velocity        Velocity       `json:"velocity"`
	LifecycleStage  LifecycleStage `json:"lifecycle_stage"`
	ImageURL        string         `json:"image_url"`
	Attributes      map[string]any `json:"attributes"`
	Availability    Availability   `json:"availability"`
	Delivery        Delivery       `json:"delivery"`
}

// PublicProduct is the consumer-facing shape with confidential fields stripped.
type PublicProduct struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Brand        string         `json:"brand"`
	Category     string         `json:"category"`
	Price        float64        `json:"price"`
	Currency     string         `json:"currency"`
	ImageURL     string         `json:"image_url"`
	Attributes   map[string]any `json:"attributes"`
	Availability Availability   `json:"availability"`
	Delivery     Delivery       `json:"delivery"`
}

// ToPublic copies the product into its consumer-facing shape.
func (p *Product) ToPublic() PublicProduct {
	attrs := make(map[string]any, len(p.Attributes))
	for k, v := range p.Attributes {
		attrs[k] = v
	}
	return PublicProduct{
		ID:           p.ID,
		Title:        p.Title,
		Brand:        p.Brand,
		Category:     p.Category,
		Price:        p.Price,
		Currency:     p.Currency,
		ImageURL:     p.ImageURL,
		Attributes:   attrs,
		Availability: p.Availability,
		Delivery:     p.Delivery,
	}
}
