package catalog

import "k2demo/models"

// DefaultProducts is the demo catalog: a curated slice of the Jarir
// assortment covering every SKU the merchandising scenarios reference. The
// Silver 256GB iPhone is deliberately out of stock to exercise the
// competitive-substitution scenario.
var DefaultProducts = []models.Product{
	// ── Arts & crafts ────────────────────────────────────────────────
	{
		ID: "jarir_faber_castell_connector_pen_carry_case_handle", Title: "Faber-Castell Connector Pen Set, Carry Case with Handle, 60 Pieces",
		Brand: "Faber-Castell", Category: "arts_crafts", Price: 89, Currency: "SAR",
		MarginBps: 2400, UnitCost: 52, FulfillmentCost: 6,
		Velocity: models.VelocityNormal, LifecycleStage: models.LifecycleCore,
		ImageURL:     "/images/faber_castell_connector_pen_case.jpg",
		Attributes:   map[string]any{"pieces": 60, "washable": true, "age_range": "4+"},
		Availability: models.Availability{InStock: true, StockLevel: 140},
		Delivery:     models.Delivery{DefaultPromise: "Deliver tomorrow in Riyadh"},
	},
	{
		ID: "jarir_carioca_jumbo_felt_tip_marker", Title: "Carioca Jumbo Felt Tip Markers, 24 Colors",
		Brand: "Carioca", Category: "arts_crafts", Price: 35, Currency: "SAR",
		MarginBps: 2200, UnitCost: 19, FulfillmentCost: 4,
		Velocity: models.VelocityFast, LifecycleStage: models.LifecycleCore,
		ImageURL:     "/images/carioca_jumbo_felt_tip.jpg",
		Attributes:   map[string]any{"colors": 24, "washable": true},
		Availability: models.Availability{InStock: true, StockLevel: 320},
		Delivery:     models.Delivery{DefaultPromise: "Deliver tomorrow in Riyadh"},
	},
	{
		ID: "jarir_ooly_make_no_mistake_washable_marker", Title: "OOLY Make No Mistake Erasable Washable Markers, 12 Pack",
		Brand: "OOLY", Category: "arts_crafts", Price: 49, Currency: "SAR",
		MarginBps: 2600, UnitCost: 26, FulfillmentCost: 4,
		Velocity: models.VelocityNormal, LifecycleStage: models.LifecycleNew,
		ImageURL:     "/images/ooly_make_no_mistake.jpg",
		Attributes:   map[string]any{"colors": 12, "erasable": true, "washable": true},
		Availability: models.Availability{InStock: true, StockLevel: 95},
		Delivery:     models.Delivery{DefaultPromise: "Deliver in 2-3 days"},
	},
	{
		ID: "jarir_carioca_birello_felt_tip_marker", Title: "Carioca Birello Dual-Tip Felt Markers, 12 Colors",
		Brand: "Carioca", Category: "arts_crafts", Price: 19, Currency: "SAR",
		MarginBps: 2100, UnitCost: 11, FulfillmentCost: 3,
		Velocity: models.VelocityNormal, LifecycleStage: models.LifecycleCore,
		ImageURL:     "/images/carioca_birello.jpg",
		Attributes:   map[string]any{"colors": 12, "dual_tip": true},
		Availability: models.Availability{InStock: true, StockLevel: 260},
		Delivery:     models.Delivery{DefaultPromise: "Deliver in 2-3 days"},
	},
	{
		ID: "jarir_arabic_book_babronat_redaa", Title: "بابرونات رضا — قصة أطفال مصورة",
		Brand: "Jarir Publishing", Category: "arabic_books", Price: 29, Currency: "SAR",
		MarginBps: 2400, UnitCost: 8, FulfillmentCost: 2,
		Velocity: models.VelocitySlow, LifecycleStage: models.LifecycleAging,
		ImageURL:     "/images/babronat_redaa.jpg",
		Attributes:   map[string]any{"language": "ar", "age_range": "3-7"},
		Availability: models.Availability{InStock: true, StockLevel: 410},
		Delivery:     models.Delivery{DefaultPromise: "Deliver in 2-3 days"},
	},

	// ── School supplies / backpacks ──────────────────────────────────
	{
		ID: "jarir_atrium_classic_backpack_with_accessory", Title: "Atrium Classic School Backpack with Accessory Pouch",
		Brand: "Atrium", Category: "school_supplies", Price: 129, Currency: "SAR",
		MarginBps: 3200, UnitCost: 62, FulfillmentCost: 8,
		Velocity: models.VelocityFast, LifecycleStage: models.LifecycleSeasonal,
		ImageURL:     "/images/atrium_classic_backpack.jpg",
		Attributes:   map[string]any{"capacity_l": 22, "laptop_sleeve": true},
		Availability: models.Availability{InStock: true, StockLevel: 85},
		Delivery:     models.Delivery{DefaultPromise: "Deliver tomorrow in Riyadh"},
	},
	{
		ID: "jarir_roco_water_colors_blended_backpack_with_accessory", Title: "Roco Water Colors Blended Backpack with Accessory Set",
		Brand: "Roco", Category: "school_supplies", Price: 99, Currency: "SAR",
		MarginBps: 2800, UnitCost: 48, FulfillmentCost: 7,
		Velocity: models.VelocityNormal, LifecycleStage: models.LifecycleSeasonal,
		ImageURL:     "/images/roco_water_colors_backpack.jpg",
		Attributes:   map[string]any{"capacity_l": 20},
		Availability: models.Availability{InStock: true, StockLevel: 120},
		Delivery:     models.Delivery{DefaultPromise: "Deliver tomorrow in Riyadh"},
	},
	{
		ID: "jarir_royal_falcon_basic_classic_backpack_with_accessory", Title: "Royal Falcon Basic Classic Backpack with Accessory",
		Brand: "Royal Falcon", Category: "school_supplies", Price: 59, Currency: "SAR",
		MarginBps: 2600, UnitCost: 28, FulfillmentCost: 6,
		Velocity: models.VelocityNormal, LifecycleStage: models.LifecycleCore,
		ImageURL:     "/images/royal_falcon_basic_backpack.jpg",
		Attributes:   map[string]any{"capacity_l": 18},
		Availability: models.Availability{InStock: true, StockLevel: 200},
		Delivery:     models.Delivery{DefaultPromise: "Deliver in 2-3 days"},
	},
	{
		ID: "jarir_roco_unicorn_3in1_purple_value_set_backpack_with_accessory", Title: "Roco Unicorn 3-in-1 Purple Value Set Backpack with Accessory",
		Brand: "Roco", Category: "school_supplies", Price: 79, Currency: "SAR",
		MarginBps: 2400, UnitCost: 40, FulfillmentCost: 7,
		Velocity: models.VelocityFast, LifecycleStage: models.LifecycleSeasonal,
		ImageURL:     "/images/roco_unicorn_value_set.jpg",
		Attributes:   map[string]any{"pieces": 3, "color": "purple"},
		Availability: models.Availability{InStock: true, StockLevel: 150},
		Delivery:     models.Delivery{DefaultPromise: "Deliver tomorrow in Riyadh"},
	},
	{
		ID: "jarir_pencil_case_soft_glitter", Title: "Soft Glitter Pencil Case",
		Brand: "Jarir", Category: "school_supplies", Price: 25, Currency: "SAR",
		MarginBps: 3000, UnitCost: 4, FulfillmentCost: 1,
		Velocity: models.VelocityOverstock, LifecycleStage: models.LifecycleAging,
		ImageURL:     "/images/pencil_case_soft_glitter.jpg",
		Attributes:   map[string]any{"color": "pink"},
		Availability: models.Availability{InStock: true, StockLevel: 450},
		Delivery:     models.Delivery{DefaultPromise: "Deliver in 2-3 days"},
	},
	{
		ID: "jarir_roco_ruler", Title: "Roco 30cm Ruler",
		Brand: "Roco", Category: "school_supplies", Price: 8, Currency: "SAR",
		MarginBps: 3500, UnitCost: 2, FulfillmentCost: 1,
		Velocity: models.VelocityOverstock, LifecycleStage: models.LifecycleCore,
		ImageURL:     "/images/roco_ruler.jpg",
		Attributes:   map[string]any{"length_cm": 30},
		Availability: models.Availability{InStock: true, StockLevel: 380},
		Delivery:     models.Delivery{DefaultPromise: "Deliver in 2-3 days"},
	},
	{
		ID: "jarir_roco_name_labels", Title: "Roco Self-Adhesive Name Labels, 48 Pack",
		Brand: "Roco", Category: "school_supplies", Price: 15, Currency: "SAR",
		MarginBps: 4200, UnitCost: 3, FulfillmentCost: 1,
		Velocity: models.VelocitySlow, LifecycleStage: models.LifecycleCore,
		ImageURL:     "/images/roco_name_labels.jpg",
		Attributes:   map[string]any{"count": 48},
		Availability: models.Availability{InStock: true, StockLevel: 290},
		Delivery:     models.Delivery{DefaultPromise: "Deliver in 2-3 days"},
	},
	{
		ID: "jarir_roco_sheet_book_cover", Title: "Roco Sheet Book Covers, 10 Pack",
		Brand: "Roco", Category: "school_supplies", Price: 8, Currency: "SAR",
		MarginBps: 2400, UnitCost: 2, FulfillmentCost: 1,
		Velocity: models.VelocitySlow, LifecycleStage: models.LifecycleAging,
		ImageURL:     "/images/roco_book_covers.jpg",
		Attributes:   map[string]any{"count": 10},
		Availability: models.Availability{InStock: true, StockLevel: 220},
		Delivery:     models.Delivery{DefaultPromise: "Deliver in 2-3 days"},
	},

	// ── Office furniture ─────────────────────────────────────────────
	{
		ID: "jarir_executive_chair_brown_594617", Title: "Executive Office Chair, High Back, Brown",
		Brand: "Jarir Home", Category: "home_office", Price: 549, Currency: "SAR",
		MarginBps: 3400, UnitCost: 310, FulfillmentCost: 45,
		Velocity: models.VelocityNormal, LifecycleStage: models.LifecycleCore,
		ImageURL:     "/images/executive_chair_brown.jpg",
		Attributes:   map[string]any{"color": "brown", "adjustable": true},
		Availability: models.Availability{InStock: true, StockLevel: 18},
		Delivery:     models.Delivery{DefaultPromise: "Deliver in 2-3 days"},
	},
	{
		ID: "jarir_executive_chair_black_594618", Title: "Executive Office Chair, High Back, Black",
		Brand: "Jarir Home", Category: "home_office", Price: 549, Currency: "SAR",
		MarginBps: 3400, UnitCost: 310, FulfillmentCost: 45,
		Velocity: models.VelocityFast, LifecycleStage: models.LifecycleCore,
		ImageURL:     "/images/executive_chair_black.jpg",
		Attributes:   map[string]any{"color": "black", "adjustable": true},
		Availability: models.Availability{InStock: true, StockLevel: 4},
		Delivery:     models.Delivery{DefaultPromise: "Deliver in 2-3 days"},
	},
	{
		ID: "jarir_royal_falcon_executive_chair_black_634340", Title: "Royal Falcon Executive Chair, Ergonomic, Black",
		Brand: "Royal Falcon", Category: "home_office", Price: 449, Currency: "SAR",
		MarginBps: 3100, UnitCost: 260, FulfillmentCost: 40,
		Velocity: models.VelocityNormal, LifecycleStage: models.LifecycleCore,
		ImageURL:     "/images/royal_falcon_executive_chair.jpg",
		Attributes:   map[string]any{"color": "black", "ergonomic": true},
		Availability: models.Availability{InStock: true, StockLevel: 7},
		Delivery:     models.Delivery{DefaultPromise: "Deliver in 2-3 days"},
	},
	{
		ID: "jarir_student_chair_black_634342", Title: "Student Desk Chair, Black",
		Brand: "Jarir Home", Category: "home_office", Price: 179, Currency: "SAR",
		MarginBps: 1800, UnitCost: 120, FulfillmentCost: 25,
		Velocity: models.VelocityNormal, LifecycleStage: models.LifecycleCore,
		ImageURL:     "/images/student_chair_black.jpg",
		Attributes:   map[string]any{"color": "black"},
		Availability: models.Availability{InStock: true, StockLevel: 25},
		Delivery:     models.Delivery{DefaultPromise: "Deliver in 2-3 days"},
	},

	// ── Gaming ───────────────────────────────────────────────────────
	{
		ID: "jarir_sony_ps5_pro_digital_669128", Title: "Sony PlayStation 5 Pro Digital Edition, 2TB",
		Brand: "Sony", Category: "gaming_consoles", Price: 3399, Currency: "SAR",
		MarginBps: 1200, UnitCost: 2950, FulfillmentCost: 30,
		Velocity: models.VelocityFast, LifecycleStage: models.LifecycleNew,
		ImageURL:     "/images/ps5_pro_digital.jpg",
		Attributes:   map[string]any{"storage_tb": 2, "edition": "digital"},
		Availability: models.Availability{InStock: true, StockLevel: 22},
		Delivery:     models.Delivery{DefaultPromise: "Deliver tomorrow in Riyadh"},
	},
	{
		ID: "jarir_sony_ps5_slim_digital_664089", Title: "Sony PlayStation 5 Slim Digital Edition, 1TB",
		Brand: "Sony", Category: "gaming_consoles", Price: 1899, Currency: "SAR",
		MarginBps: 1100, UnitCost: 1660, FulfillmentCost: 25,
		Velocity: models.VelocityFast, LifecycleStage: models.LifecycleCore,
		ImageURL:     "/images/ps5_slim_digital.jpg",
		Attributes:   map[string]any{"storage_tb": 1, "edition": "digital"},
		Availability: models.Availability{InStock: true, StockLevel: 35},
		Delivery:     models.Delivery{DefaultPromise: "Deliver tomorrow in Riyadh"},
	},
	{
		ID: "jarir_sony_ps5_slim_dig_1tb_627671", Title: "Sony PlayStation 5 Slim Digital, 1TB (Standalone)",
		Brand: "Sony", Category: "gaming_consoles", Price: 1799, Currency: "SAR",
		MarginBps: 1000, UnitCost: 1590, FulfillmentCost: 25,
		Velocity: models.VelocityNormal, LifecycleStage: models.LifecycleCore,
		ImageURL:     "/images/ps5_slim_1tb.jpg",
		Attributes:   map[string]any{"storage_tb": 1, "edition": "digital"},
		Availability: models.Availability{InStock: true, StockLevel: 12},
		Delivery:     models.Delivery{DefaultPromise: "Deliver in 2-3 days"},
	},
	{
		ID: "jarir_turtle_beach_victrix_pro_reloaded_664614", Title: "Turtle Beach Victrix Pro BFG Reloaded Controller",
		Brand: "Turtle Beach", Category: "gaming_accessories", Price: 499, Currency: "SAR",
		MarginBps: 2800, UnitCost: 180, FulfillmentCost: 10,
		Velocity: models.VelocitySlow, LifecycleStage: models.LifecycleCore,
		ImageURL:     "/images/victrix_pro_reloaded.jpg",
		Attributes:   map[string]any{"platform": "ps5"},
		Availability: models.Availability{InStock: true, StockLevel: 32},
		Delivery:     models.Delivery{DefaultPromise: "Deliver in 2-3 days"},
	},

	// ── Arabic books ─────────────────────────────────────────────────
	{
		ID: "jarir_arabic_books_536880_al_dawaer_al_khams", Title: "الدوائر الخمس — أسامة المسلم",
		Brand: "دار الكتب", Category: "arabic_books", Price: 45, Currency: "SAR",
		MarginBps: 4200, UnitCost: 14, FulfillmentCost: 2,
		Velocity: models.VelocityFast, LifecycleStage: models.LifecycleNew,
		ImageURL:     "/images/al_dawaer_al_khams.jpg",
		Attributes:   map[string]any{"language": "ar", "author": "أسامة المسلم"},
		Availability: models.Availability{InStock: true, StockLevel: 180},
		Delivery:     models.Delivery{DefaultPromise: "Deliver tomorrow in Riyadh"},
	},
	{
		ID: "jarir_arabic_books_568335_hatha_ma_hadath_maei", Title: "هذا ما حدث معي — أسامة المسلم",
		Brand: "دار الكتب", Category: "arabic_books", Price: 42, Currency: "SAR",
		MarginBps: 4000, UnitCost: 13, FulfillmentCost: 2,
		Velocity: models.VelocityNormal, LifecycleStage: models.LifecycleCore,
		ImageURL:     "/images/hatha_ma_hadath_maei.jpg",
		Attributes:   map[string]any{"language": "ar", "author": "أسامة المسلم"},
		Availability: models.Availability{InStock: true, StockLevel: 95},
		Delivery:     models.Delivery{DefaultPromise: "Deliver in 2-3 days"},
	},
	{
		ID: "jarir_arabic_books_566546_jaheem_al_aabireen", Title: "جحيم العابرين — أسامة المسلم",
		Brand: "دار الكتب", Category: "arabic_books", Price: 48, Currency: "SAR",
		MarginBps: 4100, UnitCost: 15, FulfillmentCost: 2,
		Velocity: models.VelocityNormal, LifecycleStage: models.LifecycleCore,
		ImageURL:     "/images/jaheem_al_aabireen.jpg",
		Attributes:   map[string]any{"language": "ar", "author": "أسامة المسلم"},
		Availability: models.Availability{InStock: true, StockLevel: 110},
		Delivery:     models.Delivery{DefaultPromise: "Deliver in 2-3 days"},
	},
	{
		ID: "jarir_pan_books_590401_next_installment", Title: "Pan Books Series — Part 2",
		Brand: "Pan Books", Category: "english_books", Price: 59, Currency: "SAR",
		MarginBps: 4200, UnitCost: 28, FulfillmentCost: 2,
		Velocity: models.VelocityNormal, LifecycleStage: models.LifecycleCore,
		ImageURL:     "/images/pan_books_part2.jpg",
		Attributes:   map[string]any{"language": "en", "series_part": 2},
		Availability: models.Availability{InStock: true, StockLevel: 64},
		Delivery:     models.Delivery{DefaultPromise: "Deliver in 2-3 days"},
	},

	// ── Smartphones ──────────────────────────────────────────────────
	{
		ID: "jarir_apple_iphone_17_pro_256_blue_esim", Title: "Apple iPhone 17 Pro, 256GB, Blue, eSIM",
		Brand: "Apple", Category: "smartphones", Price: 5199, Currency: "SAR",
		MarginBps: 900, UnitCost: 4720, FulfillmentCost: 15,
		Velocity: models.VelocityFast, LifecycleStage: models.LifecycleNew,
		ImageURL:     "/images/iphone_17_pro_blue.jpg",
		Attributes:   map[string]any{"storage_gb": 256, "color": "blue"},
		Availability: models.Availability{InStock: true, StockLevel: 18},
		Delivery:     models.Delivery{DefaultPromise: "Deliver tomorrow in Riyadh"},
	},
	{
		ID: "jarir_apple_iphone_17_pro_256_silver_esim", Title: "Apple iPhone 17 Pro, 256GB, Silver, eSIM",
		Brand: "Apple", Category: "smartphones", Price: 5199, Currency: "SAR",
		MarginBps: 900, UnitCost: 4720, FulfillmentCost: 15,
		Velocity: models.VelocityFast, LifecycleStage: models.LifecycleNew,
		ImageURL:     "/images/iphone_17_pro_silver.jpg",
		Attributes:   map[string]any{"storage_gb": 256, "color": "silver"},
		Availability: models.Availability{InStock: false, StockLevel: 0},
		Delivery:     models.Delivery{DefaultPromise: "Deliver tomorrow in Riyadh"},
	},
	{
		ID: "jarir_apple_iphone_17_pro_1tb_silver_esim", Title: "Apple iPhone 17 Pro, 1TB, Silver, eSIM",
		Brand: "Apple", Category: "smartphones", Price: 6799, Currency: "SAR",
		MarginBps: 1000, UnitCost: 6080, FulfillmentCost: 15,
		Velocity: models.VelocityNormal, LifecycleStage: models.LifecycleNew,
		ImageURL:     "/images/iphone_17_pro_1tb_silver.jpg",
		Attributes:   map[string]any{"storage_gb": 1024, "color": "silver"},
		Availability: models.Availability{InStock: true, StockLevel: 6},
		Delivery:     models.Delivery{DefaultPromise: "Deliver tomorrow in Riyadh"},
	},
	{
		ID: "jarir_apple_iphone_17_pro_max_256_silver_esim", Title: "Apple iPhone 17 Pro Max, 256GB, Silver, eSIM",
		Brand: "Apple", Category: "smartphones", Price: 5699, Currency: "SAR",
		MarginBps: 950, UnitCost: 5130, FulfillmentCost: 15,
		Velocity: models.VelocityNormal, LifecycleStage: models.LifecycleNew,
		ImageURL:     "/images/iphone_17_pro_max_silver.jpg",
		Attributes:   map[string]any{"storage_gb": 256, "color": "silver"},
		Availability: models.Availability{InStock: true, StockLevel: 9},
		Delivery:     models.Delivery{DefaultPromise: "Deliver tomorrow in Riyadh"},
	},
}
