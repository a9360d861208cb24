package services

import (
	"toxiscope/catalogue"
	"toxiscope/models"
)

// StudyFilter bündelt die Filter von GET /api/studies. Leere Felder filtern nicht.
type StudyFilter struct {
	Chemical        string
	Category        string
	Dimension       string
	Search          string
	Seminal         bool
	HighImpact      bool
	ImpactThreshold int // 0 = models.HighImpactThreshold
}

// StudyQueryResult ist die gefilterte, nach Impact sortierte Studienliste.
type StudyQueryResult struct {
	Studies []models.ChemicalStudy `json:"studies"`
	Count   int                    `json:"count"`
	Total   int                    `json:"total"`
}

// QueryStudies wendet alle gesetzten Filter als Schnittmenge an und sortiert
// absteigend nach Impact-Score (stabil).
func QueryStudies(cat *catalogue.Catalogue, f StudyFilter) StudyQueryResult {
	studies := cat.All()

	if f.Chemical != "" {
		studies = intersect(studies, cat.ByChemical(f.Chemical))
	}
	if f.Category != "" {
		studies = intersect(studies, cat.ByCategory(f.Category))
	}
	if f.Dimension != "" {
		studies = intersect(studies, cat.ByDimension(f.Dimension))
	}
	if f.Search != "" {
		studies = intersect(studies, cat.Search(f.Search))
	}
	if f.Seminal {
		studies = intersect(studies, cat.Seminal())
	}
	if f.HighImpact {
		threshold := f.ImpactThreshold
		if threshold == 0 {
			threshold = models.HighImpactThreshold
		}
		studies = intersect(studies, cat.HighImpact(threshold))
	}

	sortByImpact(studies)
	if studies == nil {
		studies = []models.ChemicalStudy{}
	}
	return StudyQueryResult{Studies: studies, Count: len(studies), Total: cat.Len()}
}

func intersect(studies, keep []models.ChemicalStudy) []models.ChemicalStudy {
	ids := make(map[string]struct{}, len(keep))
	for _, s := range keep {
		ids[s.ID] = struct{}{}
	}
	out := studies[:0:0]
	for _, s := range studies {
		if _, ok := ids[s.ID]; ok {
			out = append(out, s)
		}
	}
	return out
}
