package catalog

// defaultProducts is the bundled catalog shown whenever the API cannot
// supply one.
var defaultProducts = []Product{
	{
		ID:           "1",
		Name:         "Radiance Glow Serum",
		Description:  "A lightweight vitamin C serum that brightens dull skin and evens out tone.",
		Category:     "Serums",
		Price:        18500,
		Image:        "/images/radiance-glow-serum.jpg",
		Benefits:     "Brightens, fades dark spots, boosts collagen.",
		Ingredients:  "Vitamin C, Hyaluronic Acid, Niacinamide, Aloe Vera.",
		HowToUse:     "Apply 3-4 drops to clean skin morning and night before moisturizer.",
		InStock:      Bool(true),
		CountInStock: Int(25),
	},
	{
		ID:           "2",
		Name:         "Shea Butter Body Cream",
		Description:  "Rich whipped shea cream for deep, long-lasting moisture.",
		Category:     "Body Care",
		Price:        12000,
		Image:        "/images/shea-body-cream.jpg",
		Benefits:     "Softens rough patches, locks in hydration.",
		Ingredients:  "Raw Shea Butter, Cocoa Butter, Sweet Almond Oil, Vitamin E.",
		HowToUse:     "Massage generously onto skin after bathing.",
		InStock:      Bool(true),
		CountInStock: Int(40),
	},
	{
		ID:           "3",
		Name:         "Gentle Foaming Cleanser",
		Description:  "A pH-balanced daily cleanser that removes impurities without stripping.",
		Category:     "Cleansers",
		Price:        9500,
		Image:        "/images/foaming-cleanser.jpg",
		Benefits:     "Unclogs pores, calms irritation.",
		Ingredients:  "Green Tea Extract, Glycerin, Chamomile.",
		HowToUse:     "Lather with warm water, massage onto face, rinse.",
		InStock:      Bool(true),
		CountInStock: Int(30),
	},
	{
		ID:           "4",
		Name:         "Black Soap Clarifying Bar",
		Description:  "Traditional African black soap for blemish-prone skin.",
		Category:     "Cleansers",
		Price:        6000,
		Image:        "/images/black-soap.jpg",
		Benefits:     "Clears breakouts, exfoliates gently.",
		Ingredients:  "Plantain Skin Ash, Palm Kernel Oil, Shea Butter.",
		HowToUse:     "Lather between palms and apply to damp skin; rinse thoroughly.",
		InStock:      Bool(true),
		CountInStock: Int(60),
	},
	{
		ID:           "5",
		Name:         "Hydra Silk Moisturizer",
		Description:  "An oil-free gel moisturizer for all-day hydration.",
		Category:     "Moisturizers",
		Price:        15000,
		Image:        "/images/hydra-silk.jpg",
		Benefits:     "Hydrates, plumps, leaves a matte finish.",
		Ingredients:  "Hyaluronic Acid, Ceramides, Cucumber Extract.",
		HowToUse:     "Smooth over face and neck after serum.",
		InStock:      Bool(true),
		CountInStock: Int(18),
	},
	{
		ID:           "6",
		Name:         "Sun Shield SPF 50",
		Description:  "Broad-spectrum sunscreen with no white cast.",
		Category:     "Sun Care",
		Price:        14000,
		Image:        "/images/sun-shield.jpg",
		Benefits:     "Protects against UVA/UVB, prevents hyperpigmentation.",
		Ingredients:  "Zinc Oxide, Titanium Dioxide, Vitamin E.",
		HowToUse:     "Apply liberally 15 minutes before sun exposure; reapply every 2 hours.",
		InStock:      Bool(true),
		CountInStock: Int(22),
	},
}

// Defaults returns a fresh copy of the bundled catalog.
func Defaults() []Product {
	out := make([]Product, len(defaultProducts))
	copy(out, defaultProducts)
	return out
}
