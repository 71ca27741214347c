package k2

import "k2demo/models"

// DefaultScenarios is the hand-authored merchandising playbook. Order matters:
// the matcher returns the first scenario with a trigger hit, so broader
// triggers ("bag", "console") deliberately sit inside the scenario that should
// own them.
var DefaultScenarios = []models.Scenario{
	// ── Scenario 1: Children's Art Supplies ──────────────────────────
	{
		ID:   "childrens_art_supplies",
		Name: "Children's Art Supplies",
		Triggers: []string{
			"marker", "markers", "markerz", "markrs",
			"coloring", "colouring", "colring", "color", "colour", "colors", "colours",
			"art", "arts", "art supplies", "arts and crafts", "craft", "crafts",
			"kids art", "kids", "children", "child", "childrens",
			"felt tip", "felt-tip", "felttip", "felt tips",
			"pen set", "pen sets", "pens",
			"crayons", "crayon",
			"drawing", "draw",
			"washable", "washable markers",
		},
		Items: []models.ScenarioItem{
			{
				SkuID: "jarir_faber_castell_connector_pen_carry_case_handle",
				Rank:  1,
				RankedOffers: []models.RankedOfferDef{
					{
						Rank:          1,
						IncludedItems: []string{"jarir_arabic_book_babronat_redaa"},
						Perks: []models.InternalPerk{
							{
								Type:  models.PerkEventInvite,
								Title: "Free painting event for kids",
								Details: map[string]any{
									"event_name": "Jarir Kids Painting Workshop",
									"location":   "Jarir Mega Store, Riyadh",
									"date":       "2026-02-14",
								},
							},
						},
						UI: models.OfferUI{
							Title:    "Art Starter Bundle",
							Subtitle: "Connector Pen Case + free Arabic book + painting event invite",
							Badges:   []string{"Best Value", "Event Invite"},
						},
						Internal: models.OfferInternal{
							Reasoning:             "Arabic children's book 'Babronat Redaa' is aging inventory (lifecycle: aging, velocity: slow). Bundling at zero discount clears stock while adding perceived value. Painting workshop drives foot traffic to the Riyadh mega store.",
							Confidence:            0.91,
							ConfidenceExplanation: "High confidence: book inventory data is fresh, workshop conversion rates based on 6 months of Jarir event data.",
							KPINumbers: map[string]float64{
								"book_retail_value_sar":            29,
								"book_unit_cost_sar":               8,
								"margin_preserved_bps":             2400,
								"workshop_conversion_rate":         0.34,
								"expected_incremental_revenue_sar": 45,
							},
							DataSources: []models.DataSource{
								{Name: "jarir_inventory_api", FreshnessMinutes: 15},
								{Name: "jarir_event_analytics", FreshnessMinutes: 1440},
							},
						},
					},
				},
			},
			{SkuID: "jarir_carioca_jumbo_felt_tip_marker", Rank: 2},
			{SkuID: "jarir_ooly_make_no_mistake_washable_marker", Rank: 3},
			{
				SkuID: "jarir_carioca_birello_felt_tip_marker",
				Rank:  4,
				RankedOffers: []models.RankedOfferDef{
					{
						Rank: 1,
						Perks: []models.InternalPerk{
							{
								Type:    models.PerkLoyalty,
								Title:   "Double loyalty points",
								Details: map[string]any{"multiplier": 2},
							},
						},
						UI: models.OfferUI{
							Title:    "Loyalty Bonus",
							Subtitle: "Earn 2× loyalty points on this purchase",
							Badges:   []string{"2× Points"},
						},
						Internal: models.OfferInternal{
							Reasoning:             "Budget item with healthy margin (2100 bps). Double loyalty points costs ~SAR 1.2 in liability but drives 22% higher repeat purchase rate within 30 days.",
							Confidence:            0.78,
							ConfidenceExplanation: "Moderate-high confidence: loyalty program data is reliable but repeat purchase attribution has 30-day lag.",
							KPINumbers: map[string]float64{
								"loyalty_cost_sar":            1.2,
								"margin_bps":                  2100,
								"repeat_purchase_rate_uplift": 0.22,
								"expected_ltv_increase_sar":   18,
							},
							DataSources: []models.DataSource{
								{Name: "jarir_loyalty_program", FreshnessMinutes: 60},
								{Name: "jarir_cohort_analytics", FreshnessMinutes: 4320},
							},
						},
					},
				},
			},
		},
		Narrative: "Lead with premium Faber-Castell carry case bundled with an overstock Arabic children's book (clears aging inventory at zero discount). Painting event invite adds experiential value. Budget option at rank 4 gets loyalty perk to drive repeat purchase.",
	},

	// ── Scenario 2: Back to School Backpacks ─────────────────────────
	{
		ID:   "back_to_school_backpacks",
		Name: "Back to School Backpacks",
		Triggers: []string{
			"backpack", "backpacks", "backpak", "bakpack", "back pack",
			"school bag", "school bags", "schoolbag", "schoolbags",
			"bag", "bags",
			"rucksack", "rucksacks", "knapsack", "knapsacks",
			"book bag", "bookbag", "satchel", "satchels",
			"back to school", "school", "school supplies",
			"kids bag", "kids backpack", "childrens backpack",
		},
		Items: []models.ScenarioItem{
			{
				SkuID: "jarir_atrium_classic_backpack_with_accessory",
				Rank:  1,
				RankedOffers: []models.RankedOfferDef{
					{
						Rank:          1,
						IncludedItems: []string{"jarir_pencil_case_soft_glitter", "jarir_roco_ruler"},
						Perks: []models.InternalPerk{
							{
								Type:    models.PerkPickup,
								Title:   "Pickup available today before 12pm in Riyadh",
								Details: map[string]any{"city": "Riyadh", "cutoff_time_local": "12:00"},
							},
							{
								Type:    models.PerkDelivery,
								Title:   "Free delivery tomorrow",
								Details: map[string]any{"promise": "Deliver tomorrow in Riyadh"},
							},
						},
						UI: models.OfferUI{
							Title:    "Back-to-School Starter Kit",
							Subtitle: "Backpack + free pencil case + ruler + pickup today or delivery tomorrow",
							Badges:   []string{"Best Value", "Free Extras"},
						},
						Internal: models.OfferInternal{
							Reasoning:             "Pencil case (overstock, 450 units) and ruler (overstock, 380 units) are low-cost accessories with near-zero marginal fulfillment cost when co-packed. Bundling clears overstock without discounting the backpack.",
							Confidence:            0.93,
							ConfidenceExplanation: "High confidence: inventory levels verified, co-packing cost model validated with warehouse ops team.",
							KPINumbers: map[string]float64{
								"pencil_case_unit_cost_sar": 4,
								"ruler_unit_cost_sar":       2,
								"bundle_cost_sar":           6,
								"backpack_margin_bps":       3200,
								"effective_margin_bps":      2850,
								"overstock_units_cleared":   2,
							},
							DataSources: []models.DataSource{
								{Name: "jarir_inventory_api", FreshnessMinutes: 15},
								{Name: "jarir_warehouse_ops", FreshnessMinutes: 120},
							},
						},
					},
				},
			},
			{
				SkuID: "jarir_roco_water_colors_blended_backpack_with_accessory",
				Rank:  2,
				RankedOffers: []models.RankedOfferDef{
					{
						Rank:          1,
						IncludedItems: []string{"jarir_roco_name_labels"},
						Perks: []models.InternalPerk{
							{
								Type:    models.PerkDelivery,
								Title:   "Free delivery tomorrow",
								Details: map[string]any{"promise": "Deliver tomorrow in Riyadh"},
							},
						},
						UI: models.OfferUI{
							Title:    "Creative Pack",
							Subtitle: "Water Colors backpack + free name labels + free delivery",
							Badges:   []string{"Free Labels"},
						},
						Internal: models.OfferInternal{
							Reasoning:             "Name labels are high-margin (4200 bps) but slow-moving. Including them adds practical value for back-to-school shoppers while clearing slow inventory.",
							Confidence:            0.85,
							ConfidenceExplanation: "Good confidence: name label inventory is reliable, delivery cost model is stable for Riyadh zone.",
							KPINumbers: map[string]float64{
								"name_labels_unit_cost_sar":    3,
								"name_labels_retail_value_sar": 15,
								"delivery_cost_sar":            12,
								"backpack_margin_bps":          2800,
								"effective_margin_bps":         2200,
							},
							DataSources: []models.DataSource{
								{Name: "jarir_inventory_api", FreshnessMinutes: 15},
								{Name: "jarir_delivery_rates", FreshnessMinutes: 60},
							},
						},
					},
				},
			},
			{
				SkuID: "jarir_royal_falcon_basic_classic_backpack_with_accessory",
				Rank:  3,
				RankedOffers: []models.RankedOfferDef{
					{
						Rank: 1,
						Perks: []models.InternalPerk{
							{
								Type:    models.PerkLoyalty,
								Title:   "Double loyalty points",
								Details: map[string]any{"multiplier": 2},
							},
							{
								Type:    models.PerkPickupOptionalPaid,
								Title:   "Same-day pickup available",
								Details: map[string]any{"price": 10, "currency": "SAR", "city": "Riyadh", "cutoff_time_local": "12:00"},
							},
						},
						UI: models.OfferUI{
							Title:    "Budget Pick",
							Subtitle: "Classic backpack with 2× loyalty points + optional paid same-day pickup",
							Badges:   []string{"2× Points"},
						},
						Internal: models.OfferInternal{
							Reasoning:             "Budget-tier backpack with healthy margin (2600 bps). Double loyalty incentivizes repeat purchase. Paid pickup (SAR 10) generates incremental revenue while offering convenience.",
							Confidence:            0.8,
							ConfidenceExplanation: "Moderate-high confidence: loyalty uplift from historical cohorts, pickup demand from Riyadh store traffic patterns.",
							KPINumbers: map[string]float64{
								"loyalty_cost_sar":       1.8,
								"pickup_revenue_sar":     10,
								"margin_bps":             2600,
								"repeat_purchase_uplift": 0.19,
							},
							DataSources: []models.DataSource{
								{Name: "jarir_loyalty_program", FreshnessMinutes: 60},
								{Name: "jarir_store_traffic", FreshnessMinutes: 720},
							},
						},
					},
				},
			},
			{
				SkuID: "jarir_roco_unicorn_3in1_purple_value_set_backpack_with_accessory",
				Rank:  4,
				RankedOffers: []models.RankedOfferDef{
					{
						Rank:          1,
						IncludedItems: []string{"jarir_roco_sheet_book_cover"},
						Perks: []models.InternalPerk{
							{
								Type:    models.PerkPickup,
								Title:   "Pickup available today before 12pm in Riyadh",
								Details: map[string]any{"city": "Riyadh", "cutoff_time_local": "12:00"},
							},
						},
						UI: models.OfferUI{
							Title:    "Unicorn Set",
							Subtitle: "3-in-1 value set + free book cover + pickup today",
							Badges:   []string{"Free Pickup"},
						},
						Internal: models.OfferInternal{
							Reasoning:             "Book covers are aging inventory (220 units). Bundling with the popular unicorn set moves aging stock. Same-day pickup available on Riyadh warehouse stock confirmation.",
							Confidence:            0.82,
							ConfidenceExplanation: "Good confidence: book cover inventory confirmed, unicorn set is a consistent back-to-school seller.",
							KPINumbers: map[string]float64{
								"book_cover_unit_cost_sar":    2,
								"book_cover_retail_value_sar": 8,
								"margin_bps":                  2400,
								"aging_units_cleared":         1,
							},
							DataSources: []models.DataSource{
								{Name: "jarir_inventory_api", FreshnessMinutes: 15},
								{Name: "jarir_warehouse_ops", FreshnessMinutes: 120},
							},
						},
					},
				},
			},
		},
		Narrative: "Premium Atrium backpack leads with pencil case + ruler bundle (clears overstock accessories). Rank 1 and 4 offer same-day pickup in Riyadh before 12pm. Rank 3 has paid pickup option. Budget unicorn set clears aging book covers.",
	},

	// ── Scenario 3: Office Chairs ────────────────────────────────────
	{
		ID:   "office_chairs",
		Name: "Office Chairs",
		Triggers: []string{
			"office chair", "office chairs", "officechair",
			"desk chair", "desk chairs", "deskchair",
			"executive chair", "executive chairs",
			"chair", "chairs",
			"office chiar", "desk chiar", "chiar",
			"office seat", "desk seat", "work chair", "work chairs",
			"computer chair", "computer chairs",
			"swivel chair", "swivel chairs",
			"ergonomic chair", "ergonomic chairs", "ergonomic",
			"home office", "office furniture",
			"student chair", "student chairs", "study chair",
		},
		Items: []models.ScenarioItem{
			{
				SkuID: "jarir_executive_chair_brown_594617",
				Rank:  1,
				RankedOffers: []models.RankedOfferDef{
					{
						Rank: 1,
						Perks: []models.InternalPerk{
							{
								Type:    models.PerkDelivery,
								Title:   "Faster delivery than other colors",
								Details: map[string]any{"promise": "Same-day delivery in Riyadh", "speed": "express"},
							},
							{
								Type:    models.PerkAssembly,
								Title:   "Free delivery and assembly",
								Details: map[string]any{"provider": "Jarir Home Services"},
							},
						},
						UI: models.OfferUI{
							Title:    "Premium Office Setup",
							Subtitle: "Executive chair (brown) + faster delivery + free assembly",
							Badges:   []string{"Faster Delivery", "Free Assembly"},
						},
						Internal: models.OfferInternal{
							Reasoning:             "Brown variant has 18 units in the Riyadh warehouse vs 4 for black. Higher stock enables a same-day delivery promise. Free assembly (SAR 35 cost) absorbed by healthy margin. Steering toward brown clears the overstock color variant without discounting.",
							Confidence:            0.89,
							ConfidenceExplanation: "High confidence: warehouse stock verified in real time, assembly cost is a fixed-rate contract.",
							KPINumbers: map[string]float64{
								"brown_stock_riyadh":   18,
								"black_stock_riyadh":   4,
								"assembly_cost_sar":    35,
								"margin_bps":           3400,
								"effective_margin_bps": 2900,
							},
							DataSources: []models.DataSource{
								{Name: "jarir_inventory_api", FreshnessMinutes: 15},
								{Name: "jarir_home_services_rates", FreshnessMinutes: 10080},
							},
						},
					},
				},
			},
			{
				SkuID: "jarir_executive_chair_black_594618",
				Rank:  2,
				RankedOffers: []models.RankedOfferDef{
					{
						Rank: 1,
						Perks: []models.InternalPerk{
							{
								Type:    models.PerkDelivery,
								Title:   "Standard next day delivery",
								Details: map[string]any{"promise": "Deliver tomorrow in Riyadh", "speed": "standard"},
							},
							{
								Type:    models.PerkAssembly,
								Title:   "Free delivery and assembly",
								Details: map[string]any{"provider": "Jarir Home Services"},
							},
						},
						UI: models.OfferUI{
							Title:    "Executive Setup",
							Subtitle: "Executive chair (black) + next day delivery + free assembly",
							Badges:   []string{"Free Assembly"},
						},
						Internal: models.OfferInternal{
							Reasoning:             "Black variant is lower stock (4 units Riyadh). Standard next-day delivery is the safe promise. Free assembly matches the rank 1 value proposition without the express premium.",
							Confidence:            0.87,
							ConfidenceExplanation: "High confidence: standard next-day SLA is well-established for the Riyadh zone.",
							KPINumbers: map[string]float64{
								"black_stock_riyadh":   4,
								"assembly_cost_sar":    35,
								"margin_bps":           3400,
								"effective_margin_bps": 2900,
							},
							DataSources: []models.DataSource{
								{Name: "jarir_inventory_api", FreshnessMinutes: 15},
								{Name: "jarir_home_services_rates", FreshnessMinutes: 10080},
							},
						},
					},
				},
			},
			{
				SkuID: "jarir_royal_falcon_executive_chair_black_634340",
				Rank:  3,
				RankedOffers: []models.RankedOfferDef{
					{
						Rank: 1,
						Perks: []models.InternalPerk{
							{
								Type:    models.PerkDelivery,
								Title:   "Standard next day delivery",
								Details: map[string]any{"promise": "Deliver tomorrow in Riyadh", "speed": "standard"},
							},
							{
								Type:    models.PerkAssembly,
								Title:   "Free delivery and assembly",
								Details: map[string]any{"provider": "Jarir Home Services"},
							},
						},
						UI: models.OfferUI{
							Title:    "Royal Falcon Setup",
							Subtitle: "Premium Royal Falcon chair + next day delivery + free assembly",
							Badges:   []string{"Free Assembly"},
						},
						Internal: models.OfferInternal{
							Reasoning:             "Royal Falcon is a premium alternative. Assembly included to keep a consistent value proposition across the executive tier. Standard delivery due to moderate stock.",
							Confidence:            0.84,
							ConfidenceExplanation: "Good confidence: consistent delivery and assembly model, moderate stock certainty.",
							KPINumbers: map[string]float64{
								"stock_riyadh":         7,
								"assembly_cost_sar":    35,
								"margin_bps":           3100,
								"effective_margin_bps": 2600,
							},
							DataSources: []models.DataSource{
								{Name: "jarir_inventory_api", FreshnessMinutes: 15},
								{Name: "jarir_home_services_rates", FreshnessMinutes: 10080},
							},
						},
					},
				},
			},
			{
				SkuID: "jarir_student_chair_black_634342",
				Rank:  4,
				RankedOffers: []models.RankedOfferDef{
					{
						Rank: 1,
						Perks: []models.InternalPerk{
							{
								Type:    models.PerkDelivery,
								Title:   "Standard delivery",
								Details: map[string]any{"promise": "Deliver tomorrow in Riyadh", "speed": "standard"},
							},
						},
						UI: models.OfferUI{
							Title:    "Student Chair",
							Subtitle: "Affordable student chair with standard delivery",
							Badges:   []string{"Budget Option"},
						},
						Internal: models.OfferInternal{
							Reasoning:             "Budget tier. No assembly included to preserve thin margin (1800 bps). Serves the price-sensitive segment without eroding executive tier positioning.",
							Confidence:            0.9,
							ConfidenceExplanation: "High confidence: simple offer with no bundled costs, delivery SLA is reliable.",
							KPINumbers: map[string]float64{
								"stock_riyadh":         25,
								"margin_bps":           1800,
								"effective_margin_bps": 1800,
							},
							DataSources: []models.DataSource{
								{Name: "jarir_inventory_api", FreshnessMinutes: 15},
							},
						},
					},
				},
			},
		},
		Narrative: "Rank 1 brown chair gets faster delivery than other colors + free assembly. Ranks 2-3 get standard next day delivery + free assembly. Budget student chair at rank 4 gets standard delivery only.",
	},

	// ── Scenario 4: Gaming Console (PS5) ─────────────────────────────
	{
		ID:   "gaming_console_ps5",
		Name: "Gaming Console (PS5)",
		Triggers: []string{
			"ps5", "ps 5", "ps-5",
			"playstation", "playstation 5", "playstation5",
			"play station", "play station 5",
			"playstaton", "playsation", "playstaion", "plastation",
			"playstatoin", "playstion",
			"sony console", "sony playstation", "sony ps5",
			"gaming console", "gaming consoles", "game console", "game consoles",
			"console", "consoles",
			"gaming", "video game", "video games", "videogame",
			"ps5 pro", "ps5 slim", "playstation pro", "playstation slim",
		},
		Items: []models.ScenarioItem{
			{
				SkuID: "jarir_sony_ps5_pro_digital_669128",
				Rank:  1,
				RankedOffers: []models.RankedOfferDef{
					{
						Rank: 1,
						Perks: []models.InternalPerk{
							{
								Type:  models.PerkRaffle,
								Title: "Esports World Cup ticket raffle entry",
								Details: map[string]any{
									"event":     "Esports World Cup 2025",
									"location":  "Riyadh",
									"draw_date": "2026-07-01",
								},
							},
						},
						UI: models.OfferUI{
							Title:    "PS5 Pro — Esports Edition",
							Subtitle: "PS5 Pro Digital + entry to Esports World Cup ticket raffle",
							Badges:   []string{"Raffle Entry", "Pro"},
						},
						Internal: models.OfferInternal{
							Reasoning:             "Esports World Cup raffle costs SAR 0 per entry (Jarir is event sponsor). Creates urgency and exclusivity. PS5 Pro margin is thin; raffle adds perceived value without margin erosion.",
							Confidence:            0.88,
							ConfidenceExplanation: "High confidence: raffle allocation confirmed by marketing, zero incremental cost validated.",
							KPINumbers: map[string]float64{
								"raffle_cost_per_entry_sar":   0,
								"margin_bps":                  1200,
								"effective_margin_bps":        1200,
								"estimated_conversion_uplift": 0.15,
							},
							DataSources: []models.DataSource{
								{Name: "jarir_marketing_promotions", FreshnessMinutes: 1440},
								{Name: "jarir_inventory_api", FreshnessMinutes: 15},
							},
						},
					},
				},
			},
			{
				SkuID: "jarir_sony_ps5_slim_digital_664089",
				Rank:  2,
				RankedOffers: []models.RankedOfferDef{
					{
						Rank:          1,
						IncludedItems: []string{"jarir_turtle_beach_victrix_pro_reloaded_664614"},
						UI: models.OfferUI{
							Title:    "PS5 Slim + Pro Controller",
							Subtitle: "PS5 Slim Digital + Victrix Pro Reloaded controller included",
							Badges:   []string{"Controller Included"},
						},
						Internal: models.OfferInternal{
							Reasoning:             "Victrix Pro controller is a slow-moving accessory (32 units). Bundling with the popular PS5 Slim clears controller inventory and creates a compelling alternative to the PS5 Pro.",
							Confidence:            0.83,
							ConfidenceExplanation: "Good confidence: controller inventory confirmed; premium-controller attach rate estimated from category data.",
							KPINumbers: map[string]float64{
								"controller_unit_cost_sar":    180,
								"controller_retail_value_sar": 499,
								"ps5_margin_bps":              1100,
								"combined_margin_bps":         900,
								"controller_stock":            32,
							},
							DataSources: []models.DataSource{
								{Name: "jarir_inventory_api", FreshnessMinutes: 15},
								{Name: "jarir_gaming_category_analytics", FreshnessMinutes: 4320},
							},
						},
					},
				},
			},
			{SkuID: "jarir_sony_ps5_slim_dig_1tb_627671", Rank: 3},
		},
		Narrative: "PS5 Pro leads with zero-cost esports raffle perk. Rank 2 PS5 Slim bundles slow-moving premium controller. Budget 1TB Slim at rank 3 has no offer.",
	},

	// ── Scenario 5: Arabic Novel ─────────────────────────────────────
	{
		ID:   "arabic_novel",
		Name: "Arabic Novel",
		Triggers: []string{
			"أسامة المسلم", "اسامة المسلم", "أسامة", "اسامه",
			"osama almuslim", "osama al-muslim", "usama almuslim", "osama muslim",
			"الدوائر الخمس", "الدوائر", "دوائر", "الخمس",
			"رواية", "روايات", "كتاب", "كتب", "كتاب عربي",
			"arabic novel", "arabic novels", "arabic book", "arabic books",
			"novel", "novels",
			"arabic fiction", "fiction", "arabic literature",
			"novle", "novles", "arabic novle",
		},
		Items: []models.ScenarioItem{
			{
				SkuID: "jarir_arabic_books_536880_al_dawaer_al_khams",
				Rank:  1,
				RankedOffers: []models.RankedOfferDef{
					{
						Rank: 1,
						Perks: []models.InternalPerk{
							{
								Type:  models.PerkEventInvite,
								Title: "Author reading event invitation",
								Details: map[string]any{
									"event_name": "أسامة المسلم — قراءة وتوقيع",
									"author":     "أسامة المسلم",
									"location":   "Jarir Bookstore, Riyadh Park",
									"date":       "2026-06-15",
								},
							},
						},
						UI: models.OfferUI{
							Title:    "الدوائر الخمس — نسخة الحدث",
							Subtitle: "الرواية + دعوة لحفل قراءة وتوقيع المؤلف",
							Badges:   []string{"حدث حصري", "توقيع المؤلف"},
						},
						Internal: models.OfferInternal{
							Reasoning:             "Author signing events drive 4× footfall to the hosting store. Event invite is zero marginal cost (venue already booked). Exclusive badge creates urgency; the novel is a current bestseller, no discount needed.",
							Confidence:            0.92,
							ConfidenceExplanation: "High confidence: event confirmed, author availability locked in, footfall multiplier from previous events.",
							KPINumbers: map[string]float64{
								"event_cost_per_invite_sar":             0,
								"footfall_multiplier":                   4,
								"margin_bps":                            4200,
								"avg_additional_spend_per_attendee_sar": 85,
							},
							DataSources: []models.DataSource{
								{Name: "jarir_events_calendar", FreshnessMinutes: 1440},
								{Name: "jarir_author_events_analytics", FreshnessMinutes: 10080},
							},
						},
					},
					{
						Rank: 2,
						Perks: []models.InternalPerk{
							{
								Type:  models.PerkEventInvite,
								Title: "Author reading event invitation",
								Details: map[string]any{
									"event_name": "أسامة المسلم — قراءة وتوقيع",
									"author":     "أسامة المسلم",
									"location":   "Jarir Bookstore, Riyadh Park",
									"date":       "2026-06-15",
								},
							},
						},
						UI: models.OfferUI{
							Title:    "الدوائر الخمس",
							Subtitle: "رواية أسامة المسلم + دعوة حفل القراءة",
							Badges:   []string{"حدث القراءة"},
						},
						Internal: models.OfferInternal{
							Reasoning:             "Same event perk with softer UI framing and no 'exclusive' badge. Fallback if rank 1 framing feels too aggressive to the shopping agent. Identical economics.",
							Confidence:            0.92,
							ConfidenceExplanation: "Same data as rank 1 offer.",
							KPINumbers: map[string]float64{
								"event_cost_per_invite_sar":             0,
								"footfall_multiplier":                   4,
								"margin_bps":                            4200,
								"avg_additional_spend_per_attendee_sar": 85,
							},
							DataSources: []models.DataSource{
								{Name: "jarir_events_calendar", FreshnessMinutes: 1440},
								{Name: "jarir_author_events_analytics", FreshnessMinutes: 10080},
							},
						},
					},
				},
			},
			{SkuID: "jarir_arabic_books_568335_hatha_ma_hadath_maei", Rank: 3},
			{SkuID: "jarir_arabic_books_566546_jaheem_al_aabireen", Rank: 4},
		},
		Narrative: "Same novel at rank 1 with two offer variants: rank 1 offer has exclusive event framing, rank 2 offer is a softer fallback. Remaining novels by the same author fill ranks 3-4 without offers.",
	},

	// ── Scenario 6: iPhone 17 Pro (Competitive Substitution) ─────────
	{
		ID:   "iphone_17_pro_competitive",
		Name: "iPhone 17 Pro (Competitive Substitution)",
		Triggers: []string{
			"iphone", "iphone 17", "iphone 17 pro", "iphone17", "iphone17pro",
			"17 pro", "iphone pro", "iphone pro 256", "iphone 256",
			"iphone 256 silver", "iphone silver",
			"apple iphone", "apple iphone 17", "apple phone",
			"iphon", "iphne", "iphome", "iphoone",
			"smartphone", "apple smartphone",
		},
		Items: []models.ScenarioItem{
			{
				SkuID: "jarir_apple_iphone_17_pro_256_blue_esim",
				Rank:  1,
				RankedOffers: []models.RankedOfferDef{
					{
						Rank:          1,
						IncludedItems: []string{"jarir_pan_books_590401_next_installment"},
						IdentityGated: true,
						Perks: []models.InternalPerk{
							{
								Type:    models.PerkPickup,
								Title:   "Pickup in 1 hour in Riyadh (free)",
								Details: map[string]any{"city": "Riyadh", "wait_minutes": 60, "price_sar": 0},
							},
							{
								Type:    models.PerkDelivery,
								Title:   "Same-day delivery in Riyadh for 29 SAR",
								Details: map[string]any{"city": "Riyadh", "promise": "Same-day", "price_sar": 29},
							},
						},
						UI: models.OfferUI{
							Title:    "iPhone 17 Pro 256GB Blue — Personalized",
							Subtitle: "iPhone 17 Pro Blue + free book gift (next in your series) + pickup in 1 hour",
							Badges:   []string{"Personalized", "Free Gift"},
						},
						IdentityAbsentUI: &models.OfferUI{
							Title:    "iPhone 17 Pro 256GB Blue",
							Subtitle: "iPhone 17 Pro Blue + pickup in 1 hour or same-day delivery",
							Badges:   []string{"In Stock", "Fast Pickup"},
						},
						Internal: models.OfferInternal{
							Reasoning:             "Shopper requested Silver 256GB which is out of stock. Blue 256GB is the closest in-stock variant at the same price point. Identity detected: purchase history includes Pan Books series Part 1; including Part 2 as a gift costs SAR 28 but series readers have 67% probability of returning for Part 3. Book gift is funded from book margin.",
							Confidence:            0.94,
							ConfidenceExplanation: "High confidence: stock verified in real time, purchase history match confirmed, series continuation rate from reading analytics.",
							KPINumbers: map[string]float64{
								"silver_stock":               0,
								"blue_stock":                 18,
								"book_gift_unit_cost_sar":    28,
								"book_gift_retail_value_sar": 59,
								"iphone_margin_bps":          900,
								"book_margin_bps":            4200,
								"series_return_probability":  0.67,
								"expected_ltv_increase_sar":  120,
							},
							DataSources: []models.DataSource{
								{Name: "jarir_inventory_api", FreshnessMinutes: 5},
								{Name: "jarir_shopper_profile", FreshnessMinutes: 0},
								{Name: "jarir_reading_analytics", FreshnessMinutes: 1440},
							},
						},
					},
					{
						Rank: 2,
						Perks: []models.InternalPerk{
							{
								Type:  models.PerkVariantOption,
								Title: "Silver available in iPhone 17 Pro 1TB (SAR 6,799)",
								Details: map[string]any{
									"sku_id":      "jarir_apple_iphone_17_pro_1tb_silver_esim",
									"model":       "iPhone 17 Pro",
									"storage_gb":  1024,
									"color":       "silver",
									"price_sar":   6799,
									"stock_level": 6,
								},
							},
						},
						UI: models.OfferUI{
							Title:    "Want Silver? Upgrade to 1TB",
							Subtitle: "iPhone 17 Pro 1TB Silver is in stock — same model, more storage",
							Badges:   []string{"Silver Available"},
						},
						Internal: models.OfferInternal{
							Reasoning:             "Shopper specifically requested silver. 1TB Silver variant is in stock at SAR 6,799 — a SAR 1,600 upsell with better margin. Presented as a variant option to keep the response focused.",
							Confidence:            0.86,
							ConfidenceExplanation: "Good confidence: stock confirmed; color-driven upsell conversion estimated from category data.",
							KPINumbers: map[string]float64{
								"price_delta_sar":             1600,
								"stock_1tb_silver":            6,
								"margin_bps_1tb":              1000,
								"estimated_upsell_conversion": 0.12,
							},
							DataSources: []models.DataSource{
								{Name: "jarir_inventory_api", FreshnessMinutes: 5},
								{Name: "jarir_smartphone_analytics", FreshnessMinutes: 4320},
							},
						},
					},
					{
						Rank: 3,
						Perks: []models.InternalPerk{
							{
								Type:  models.PerkVariantOption,
								Title: "Silver available in iPhone 17 Pro Max 256GB (SAR 5,699)",
								Details: map[string]any{
									"sku_id":      "jarir_apple_iphone_17_pro_max_256_silver_esim",
									"model":       "iPhone 17 Pro Max",
									"storage_gb":  256,
									"color":       "silver",
									"price_sar":   5699,
									"stock_level": 9,
								},
							},
						},
						UI: models.OfferUI{
							Title:    "Want Silver? Go Pro Max",
							Subtitle: "iPhone 17 Pro Max 256GB Silver is in stock — bigger screen, same storage",
							Badges:   []string{"Silver Available", "Pro Max"},
						},
						Internal: models.OfferInternal{
							Reasoning:             "Pro Max 256GB Silver is in stock at SAR 5,699 — a SAR 500 premium over Pro. Model upgrade path for shoppers who prioritize color over exact model.",
							Confidence:            0.82,
							ConfidenceExplanation: "Moderate-high confidence: stock confirmed; model upgrade conversion estimated from cross-sell data.",
							KPINumbers: map[string]float64{
								"price_delta_sar":              500,
								"stock_pro_max_silver":         9,
								"margin_bps_pro_max":           950,
								"estimated_upgrade_conversion": 0.08,
							},
							DataSources: []models.DataSource{
								{Name: "jarir_inventory_api", FreshnessMinutes: 5},
								{Name: "jarir_smartphone_analytics", FreshnessMinutes: 4320},
							},
						},
					},
					{
						Rank: 4,
						Perks: []models.InternalPerk{
							{
								Type:    models.PerkLoyalty,
								Title:   "2× loyalty points on this purchase",
								Details: map[string]any{"multiplier": 2, "estimated_points": 520},
							},
						},
						UI: models.OfferUI{
							Title:    "Loyalty Bonus",
							Subtitle: "Earn 2× loyalty points (520 pts) on iPhone 17 Pro Blue",
							Badges:   []string{"2× Points"},
						},
						Internal: models.OfferInternal{
							Reasoning:             "Fallback offer for shoppers who accept the Blue variant. Double loyalty points is near-zero cost on a SAR 5,199 item and drives 18% higher 90-day return rate.",
							Confidence:            0.88,
							ConfidenceExplanation: "High confidence: loyalty cost model is well-established, return rate from 12-month electronics cohort.",
							KPINumbers: map[string]float64{
								"loyalty_cost_sar":       5.2,
								"estimated_points":       520,
								"margin_bps":             900,
								"return_rate_uplift_90d": 0.18,
							},
							DataSources: []models.DataSource{
								{Name: "jarir_loyalty_program", FreshnessMinutes: 60},
								{Name: "jarir_electronics_cohort", FreshnessMinutes: 10080},
							},
						},
					},
				},
			},
		},
		Narrative: "Shopper wants iPhone 17 Pro 256GB Silver but it's out of stock. K2 returns the closest in-stock variant (Blue) as the primary item with 4 ranked offers: (1) personalized gift if identity is present, (2) Silver in 1TB upsell path, (3) Silver in Pro Max upgrade path, (4) loyalty bonus on the Blue variant.",
	},
}
