package models

// ProductSummary sind die Metadaten eines Produkts für die Stichwortsuche.
type ProductSummary struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Keywords     []string  `json:"keywords"`
	RiskLevel    RiskLevel `json:"riskLevel"`
	OverallScore int       `json:"overallScore"`
}

// SearchIndexEntry bildet ein Stichwort auf Produkt-IDs ab. Die Reihenfolge
// der Einträge im Index bestimmt die Reihenfolge beim Durchsuchen.
type SearchIndexEntry struct {
	Keyword    string   `json:"keyword"`
	ProductIDs []string `json:"productIds"`
}

// SearchResult ist ein Treffer der Produktsuche samt akkumuliertem Score.
type SearchResult struct {
	ProductSummary
	MatchScore int `json:"matchScore"`
}
