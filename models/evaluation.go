package models

// RiskLevel ist die qualitative Risikostufe eines Produkts oder einer Dimension.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskVeryHigh RiskLevel = "very-high"
)

// Citation ist eine Literaturangabe an einer Dimension. Handgepflegte Zitate
// tragen nur die Basisfelder, aus dem Katalog übernommene zusätzlich die
// erweiterten Felder.
type Citation struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Authors        []string `json:"authors"`
	Journal        string   `json:"journal"`
	Year           int      `json:"year"`
	DOI            string   `json:"doi,omitempty"`
	PMID           string   `json:"pmid,omitempty"`
	KeyFindings    string   `json:"keyFindings"`
	RelevanceScore int      `json:"relevanceScore"`

	StudyType               StudyType `json:"studyType,omitempty"`
	Chemicals               []string  `json:"chemicals,omitempty"`
	ToxicologicalDimensions []string  `json:"toxicologicalDimensions,omitempty"`
	ImpactScore             *int      `json:"impactScore,omitempty"`
	IsSeminal               bool      `json:"isSeminal,omitempty"`
	MethodologicalQuality   Quality   `json:"methodologicalQuality,omitempty"`
	RegulatoryImpact        []string  `json:"regulatoryImpact,omitempty"`
}

// RankScore ist der Sortierschlüssel: Impact-Score, sonst Relevance-Score.
func (c Citation) RankScore() int {
	if c.ImpactScore != nil {
		return *c.ImpactScore
	}
	return c.RelevanceScore
}

// Evidence fasst die Studienlage einer Dimension zusammen.
type Evidence struct {
	Summary          string   `json:"summary"`
	Studies          int      `json:"studies"`
	RegulatoryStatus string   `json:"regulatoryStatus"`
	KeyFindings      []string `json:"keyFindings"`
}

// ChemicalExposure ist eine in einer Dimension belastete Chemikalie.
type ChemicalExposure struct {
	Name          string    `json:"name"`
	Concentration string    `json:"concentration"`
	RiskLevel     RiskLevel `json:"riskLevel"`
}

// ToxicologicalDimension ist eine Risikoachse (z.B. Carcinogenicity) eines Produkts.
type ToxicologicalDimension struct {
	Dimension string             `json:"dimension"`
	Score     int                `json:"score"`
	Level     RiskLevel          `json:"level"`
	Evidence  Evidence           `json:"evidence"`
	Chemicals []ChemicalExposure `json:"chemicals"`
	Citations []Citation         `json:"citations"`
}

// AlternativeProduct ist ein empfohlenes, sichereres Ersatzprodukt.
type AlternativeProduct struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Score        int      `json:"score"`
	Improvement  int      `json:"improvement"`
	KeyBenefits  []string `json:"keyBenefits"`
	Verified     bool     `json:"verified"`
	PriceRange   string   `json:"priceRange"`
	Availability string   `json:"availability"`
}

// DimensionComparison vergleicht den Score einer Dimension vor/nach dem Wechsel.
type DimensionComparison struct {
	Dimension        string `json:"dimension"`
	CurrentScore     int    `json:"currentScore"`
	RecommendedScore int    `json:"recommendedScore"`
}

// Recommendation verknüpft ein Alternativprodukt mit Begründung und Vergleich.
type Recommendation struct {
	ID                  string                `json:"id"`
	Product             AlternativeProduct    `json:"product"`
	Reason              string                `json:"reason"`
	DimensionComparison []DimensionComparison `json:"dimensionComparison"`
}

// ProductEvaluation ist die statische toxikologische Bewertung eines Produkts.
type ProductEvaluation struct {
	ID              string                   `json:"id"`
	Name            string                   `json:"name"`
	Category        string                   `json:"category"`
	OverallScore    int                      `json:"overallScore"`
	RiskLevel       RiskLevel                `json:"riskLevel"`
	Summary         string                   `json:"summary"`
	Dimensions      []ToxicologicalDimension `json:"dimensions"`
	Recommendations []Recommendation         `json:"recommendations"`
}

// ResearchLibraryStats sind die Kennzahlen über die Research Library.
type ResearchLibraryStats struct {
	TotalStudies      int      `json:"totalStudies"`
	SeminalStudies    int      `json:"seminalStudies"`
	HighImpactStudies int      `json:"highImpactStudies"`
	ChemicalsCovered  []string `json:"chemicalsCovered"`
	DimensionsCovered []string `json:"dimensionsCovered"`
}

// EnrichedEvaluation ist die pro Request angereicherte Bewertung. Eine Studie in
// ResearchLibrary erscheint nie zugleich in den Citations einer Dimension.
type EnrichedEvaluation struct {
	ProductEvaluation
	ResearchLibrary      []Citation           `json:"researchLibrary"`
	ResearchLibraryStats ResearchLibraryStats `json:"researchLibraryStats"`
}
