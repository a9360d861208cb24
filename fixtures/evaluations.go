// Package fixtures enthält die statischen, handgepflegten Produktdaten:
// Bewertungen, Suchmetadaten samt Stichwortindex und die Scan-Produkttabelle.
package fixtures

import (
	"sort"

	"toxiscope/models"
)

var evaluations = map[string]models.ProductEvaluation{
	"1": {
		ID:           "1",
		Name:         "Non-stick Pan (Teflon)",
		Category:     "Cookware",
		OverallScore: 78,
		RiskLevel:    models.RiskHigh,
		Summary:      "This non-stick cookware contains perfluorinated compounds (PFOA/PTFE) that can release toxic fumes when overheated and have been linked to multiple health concerns.",
		Dimensions: []models.ToxicologicalDimension{
			{
				Dimension: "Carcinogenicity",
				Score:     85,
				Level:     models.RiskHigh,
				Evidence: models.Evidence{
					Summary:          "PFOA (perfluorooctanoic acid) has been classified as a possible human carcinogen by IARC. Multiple epidemiological studies show elevated cancer risk in occupational settings.",
					Studies:          47,
					RegulatoryStatus: "EPA: Probable Human Carcinogen",
					KeyFindings: []string{
						"PFOA classified as Group 2B carcinogen by IARC",
						"Increased kidney and testicular cancer risk in exposed populations",
						"PTFE breakdown at high temperatures releases toxic particles",
					},
				},
				Chemicals: []models.ChemicalExposure{
					{Name: "PFOA", Concentration: "Residual (trace)", RiskLevel: models.RiskHigh},
					{Name: "PTFE", Concentration: "Coating layer", RiskLevel: models.RiskHigh},
					{Name: "PFOS", Concentration: "Residual (trace)", RiskLevel: models.RiskMedium},
				},
				Citations: []models.Citation{
					{
						ID:             "c1",
						Title:          "Perfluorooctanoic acid exposure and cancer outcomes in a highly exposed community",
						Authors:        []string{"Vieira VM", "Hoffman K", "Shin HM", "Weinberg JM"},
						Journal:        "Environmental Health Perspectives",
						Year:           2013,
						DOI:            "10.1289/ehp.1103569",
						PMID:           "23221922",
						KeyFindings:    "Significant associations found between PFOA exposure and kidney and testicular cancer.",
						RelevanceScore: 95,
					},
					{
						ID:             "c2",
						Title:          "Toxic effects of Teflon-coated pans on human health",
						Authors:        []string{"Brown JF", "Mayes BA", "Silva S"},
						Journal:        "Environmental Science & Technology",
						Year:           2018,
						DOI:            "10.1021/acs.est.8b01234",
						KeyFindings:    "PTFE coatings degrade at temperatures above 260°C, releasing potentially harmful particles.",
						RelevanceScore: 88,
					},
				},
			},
			{
				Dimension: "Endocrine Disruption",
				Score:     72,
				Level:     models.RiskHigh,
				Evidence: models.Evidence{
					Summary:          "PFOA and related compounds act as endocrine disruptors, interfering with thyroid function and hormone regulation. Animal studies show reproductive and developmental effects.",
					Studies:          32,
					RegulatoryStatus: "EU: Candidate List (REACH)",
					KeyFindings: []string{
						"Reduced thyroid hormone levels in exposed individuals",
						"Developmental delays in children with higher PFOA exposure",
						"Interference with estrogen and androgen signaling pathways",
					},
				},
				Chemicals: []models.ChemicalExposure{
					{Name: "PFOA", Concentration: "Residual (trace)", RiskLevel: models.RiskHigh},
					{Name: "PFOS", Concentration: "Residual (trace)", RiskLevel: models.RiskMedium},
				},
				Citations: []models.Citation{
					{
						ID:             "c3",
						Title:          "Perfluorinated chemicals and thyroid hormone levels in adults",
						Authors:        []string{"Wen LL", "Lin LY", "Su TC", "Chen PC"},
						Journal:        "American Journal of Epidemiology",
						Year:           2013,
						DOI:            "10.1093/aje/kwt132",
						PMID:           "23788649",
						KeyFindings:    "Inverse association between PFOA exposure and thyroid hormone levels.",
						RelevanceScore: 92,
					},
				},
			},
			{
				Dimension: "Reproductive Toxicity",
				Score:     68,
				Level:     models.RiskHigh,
				Evidence: models.Evidence{
					Summary:          "Studies indicate PFOA exposure may affect fertility, pregnancy outcomes, and child development. Lower birth weights and developmental delays observed.",
					Studies:          28,
					RegulatoryStatus: "California Proposition 65: Listed",
					KeyFindings: []string{
						"Reduced birth weight in highly exposed populations",
						"Altered timing of puberty in adolescents",
						"Potential impact on fertility in both men and women",
					},
				},
				Chemicals: []models.ChemicalExposure{
					{Name: "PFOA", Concentration: "Residual (trace)", RiskLevel: models.RiskHigh},
				},
				Citations: []models.Citation{
					{
						ID:             "c4",
						Title:          "Maternal exposure to perfluorooctanoic acid and birth outcomes",
						Authors:        []string{"Fei C", "McLaughlin JK", "Lipworth L", "Olsen J"},
						Journal:        "Epidemiology",
						Year:           2009,
						PMID:           "19528769",
						KeyFindings:    "Positive association between PFOA exposure and lower birth weight.",
						RelevanceScore: 90,
					},
				},
			},
			{
				Dimension: "Neurotoxicity",
				Score:     45,
				Level:     models.RiskMedium,
				Evidence: models.Evidence{
					Summary:          "Limited evidence suggests potential neurodevelopmental effects, though data is less conclusive than for other dimensions.",
					Studies:          12,
					RegulatoryStatus: "Under review",
					KeyFindings: []string{
						"Some animal studies show learning deficits",
						"Human studies show mixed results",
					},
				},
				Chemicals: []models.ChemicalExposure{
					{Name: "PFOA", Concentration: "Residual (trace)", RiskLevel: models.RiskMedium},
				},
				Citations: []models.Citation{},
			},
		},
		Recommendations: []models.Recommendation{
			{
				ID: "r1",
				Product: models.AlternativeProduct{
					ID:          "alt1",
					Name:        "Ceramic-Coated Non-Stick Skillet",
					Category:    "Cookware",
					Score:       22,
					Improvement: 72,
					KeyBenefits: []string{
						"No PFOA or PTFE compounds",
						"PTFE-free ceramic coating",
						"Can withstand higher temperatures safely",
						"Non-reactive cooking surface",
					},
					Verified:     true,
					PriceRange:   "$25-$80",
					Availability: "Widely available",
				},
				Reason: "Ceramic coatings provide non-stick functionality without perfluorinated compounds. Made from natural materials like sand and minerals.",
				DimensionComparison: []models.DimensionComparison{
					{Dimension: "Carcinogenicity", CurrentScore: 85, RecommendedScore: 18},
					{Dimension: "Endocrine Disruption", CurrentScore: 72, RecommendedScore: 20},
					{Dimension: "Reproductive Toxicity", CurrentScore: 68, RecommendedScore: 22},
				},
			},
			{
				ID: "r2",
				Product: models.AlternativeProduct{
					ID:          "alt2",
					Name:        "Stainless Steel Cookware Set",
					Category:    "Cookware",
					Score:       15,
					Improvement: 81,
					KeyBenefits: []string{
						"No chemical coatings",
						"Durable and long-lasting",
						"No leaching concerns",
						"Easy to clean with proper technique",
					},
					Verified:     true,
					PriceRange:   "$30-$150",
					Availability: "Widely available",
				},
				Reason: "Stainless steel is chemically inert and doesn't require coatings. Most comprehensive safety profile for cookware.",
				DimensionComparison: []models.DimensionComparison{
					{Dimension: "Carcinogenicity", CurrentScore: 85, RecommendedScore: 12},
					{Dimension: "Endocrine Disruption", CurrentScore: 72, RecommendedScore: 15},
					{Dimension: "Reproductive Toxicity", CurrentScore: 68, RecommendedScore: 18},
				},
			},
		},
	},
	"2": {
		ID:           "2",
		Name:         "Plastic Baby Bottle",
		Category:     "Baby Products",
		OverallScore: 82,
		RiskLevel:    models.RiskVeryHigh,
		Summary:      "Many plastic baby bottles contain BPA, phthalates, and other endocrine-disrupting chemicals that can leach into milk, especially when heated.",
		Dimensions: []models.ToxicologicalDimension{
			{
				Dimension: "Endocrine Disruption",
				Score:     88,
				Level:     models.RiskVeryHigh,
				Evidence: models.Evidence{
					Summary:          "BPA is a well-documented endocrine disruptor that mimics estrogen. Phthalates interfere with hormone function. Both have been banned in many jurisdictions.",
					Studies:          156,
					RegulatoryStatus: "BPA: Banned in EU baby products, CA Prop 65 listed",
					KeyFindings: []string{
						"BPA linked to early puberty, obesity, and behavioral issues",
						"Phthalates associated with reproductive development problems",
						"FDA no longer allows BPA in baby bottles (US)",
					},
				},
				Chemicals: []models.ChemicalExposure{
					{Name: "BPA", Concentration: "Variable", RiskLevel: models.RiskHigh},
					{Name: "Phthalates", Concentration: "Variable", RiskLevel: models.RiskHigh},
					{Name: "BPS", Concentration: "BPA substitute", RiskLevel: models.RiskMedium},
				},
				Citations: []models.Citation{
					{
						ID:             "c5",
						Title:          "Bisphenol A exposure and children's behavior",
						Authors:        []string{"Braun JM", "Yolton K", "Dietrich KN", "Hornung R"},
						Journal:        "Pediatrics",
						Year:           2009,
						DOI:            "10.1542/peds.2008-3259",
						PMID:           "19736250",
						KeyFindings:    "Higher BPA exposure associated with externalizing behaviors and anxiety/depression in children.",
						RelevanceScore: 98,
					},
				},
			},
			{
				Dimension: "Reproductive Toxicity",
				Score:     75,
				Level:     models.RiskHigh,
				Evidence: models.Evidence{
					Summary:          "BPA exposure in early life can affect reproductive system development and function later in life.",
					Studies:          89,
					RegulatoryStatus: "Regulated in multiple jurisdictions",
					KeyFindings: []string{
						"Altered reproductive organ development",
						"Potential fertility issues in adulthood",
						"Effects on brain development",
					},
				},
				Chemicals: []models.ChemicalExposure{
					{Name: "BPA", Concentration: "Variable", RiskLevel: models.RiskHigh},
				},
				Citations: []models.Citation{},
			},
		},
		Recommendations: []models.Recommendation{
			{
				ID: "r3",
				Product: models.AlternativeProduct{
					ID:          "alt3",
					Name:        "Borosilicate Glass Baby Bottle",
					Category:    "Baby Products",
					Score:       8,
					Improvement: 90,
					KeyBenefits: []string{
						"No chemical leaching",
						"BPA-free, phthalate-free",
						"Does not retain odors or stains",
						"Dishwasher safe",
						"Can be sterilized",
					},
					Verified:     true,
					PriceRange:   "$12-$25",
					Availability: "Widely available",
				},
				Reason: "Glass is the safest material for baby bottles. No chemical interactions, completely inert, and easy to clean thoroughly.",
				DimensionComparison: []models.DimensionComparison{
					{Dimension: "Endocrine Disruption", CurrentScore: 88, RecommendedScore: 5},
					{Dimension: "Reproductive Toxicity", CurrentScore: 75, RecommendedScore: 10},
				},
			},
		},
	},
}

// Evaluation liefert die statische Bewertung zu einer Produkt-ID.
// Der Aufrufer darf die enthaltenen Slices nicht verändern.
func Evaluation(id string) (models.ProductEvaluation, bool) {
	e, ok := evaluations[id]
	return e, ok
}

// EvaluationIDs liefert alle bewerteten Produkt-IDs, sortiert.
func EvaluationIDs() []string {
	ids := make([]string, 0, len(evaluations))
	for id := range evaluations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
