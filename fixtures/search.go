package fixtures

import "toxiscope/models"

// Stichwortindex; leere ID-Listen sind Begriffe, für die es noch kein Produkt gibt.
var searchIndex = []models.SearchIndexEntry{
	{Keyword: "teflon", ProductIDs: []string{"1"}},
	{Keyword: "pan", ProductIDs: []string{"1"}},
	{Keyword: "non-stick", ProductIDs: []string{"1"}},
	{Keyword: "nonstick", ProductIDs: []string{"1"}},
	{Keyword: "pfoa", ProductIDs: []string{"1"}},
	{Keyword: "ptfe", ProductIDs: []string{"1"}},
	{Keyword: "cookware", ProductIDs: []string{"1"}},
	{Keyword: "baby", ProductIDs: []string{"2"}},
	{Keyword: "bottle", ProductIDs: []string{"2"}},
	{Keyword: "plastic", ProductIDs: []string{"2"}},
	{Keyword: "bpa", ProductIDs: []string{"2"}},
	{Keyword: "shampoo", ProductIDs: []string{}},
	{Keyword: "rug", ProductIDs: []string{}},
	{Keyword: "rugs", ProductIDs: []string{}},
	{Keyword: "soap", ProductIDs: []string{}},
	{Keyword: "hand soap", ProductIDs: []string{}},
}

var productMetadata = []models.ProductSummary{
	{
		ID:           "1",
		Name:         "Pots and Pans",
		Category:     "Cookware",
		Keywords:     []string{"pots", "pans", "cookware", "teflon", "pan", "non-stick", "nonstick", "pfoa", "ptfe", "skillet", "frying pan", "cookware set", "pots and pans"},
		RiskLevel:    models.RiskHigh,
		OverallScore: 78,
	},
	{
		ID:           "2",
		Name:         "Baby Bottles",
		Category:     "Baby Products",
		Keywords:     []string{"baby", "bottle", "baby bottles", "plastic", "bpa", "baby bottle", "infant bottle", "feeding bottle"},
		RiskLevel:    models.RiskVeryHigh,
		OverallScore: 82,
	},
}

// SearchIndex liefert den Stichwortindex in fester Reihenfolge.
func SearchIndex() []models.SearchIndexEntry {
	return searchIndex
}

// ProductMetadata liefert die durchsuchbaren Produkte in fester Reihenfolge.
func ProductMetadata() []models.ProductSummary {
	return productMetadata
}
