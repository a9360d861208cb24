package fixtures

import "toxiscope/models"

var scanProducts = []models.ScanProduct{
	{
		ID:               "1",
		Name:             "Non-stick pan",
		Category:         "Cookware",
		RiskLevel:        models.RiskHigh,
		Concerns:         []string{"PFOA/PTFE", "Perfluorinated compounds"},
		SaferAlternative: "Ceramic-coated skillet",
		DetectedKeywords: []string{"pan", "skillet", "frying pan", "non-stick", "teflon"},
	},
	{
		ID:               "2",
		Name:             "Plastic baby bottle",
		Category:         "Baby products",
		RiskLevel:        models.RiskVeryHigh,
		Concerns:         []string{"BPA", "Phthalates", "Microplastics"},
		SaferAlternative: "Borosilicate glass bottle",
		DetectedKeywords: []string{"bottle", "baby bottle", "plastic bottle"},
	},
	{
		ID:               "3",
		Name:             "Fragrance hand soap",
		Category:         "Personal care",
		RiskLevel:        models.RiskMedium,
		Concerns:         []string{"Phthalates", "Synthetic fragrances", "Parabens"},
		SaferAlternative: "Unscented EWG-verified soap",
		DetectedKeywords: []string{"soap", "hand soap", "fragrance", "hand wash"},
	},
	{
		ID:               "4",
		Name:             "Synthetic rug",
		Category:         "Home furnishings",
		RiskLevel:        models.RiskMedium,
		Concerns:         []string{"VOCs", "Flame retardants", "Formaldehyde"},
		SaferAlternative: "Wool or organic cotton rug",
		DetectedKeywords: []string{"rug", "carpet", "mat"},
	},
	{
		ID:               "5",
		Name:             "Plastic food storage",
		Category:         "Kitchenware",
		RiskLevel:        models.RiskMedium,
		Concerns:         []string{"BPA", "Phthalates"},
		SaferAlternative: "Glass or stainless steel containers",
		DetectedKeywords: []string{"container", "tupperware", "storage", "plastic container"},
	},
}

// ScanProducts liefert die Tabelle, gegen die Scans simuliert werden.
func ScanProducts() []models.ScanProduct {
	return scanProducts
}
