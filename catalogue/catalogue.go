// Package catalogue hält den statischen Studienkatalog und die Abfragen darauf.
// Der Katalog wird beim Start gebaut und danach nur noch gelesen.
package catalogue

import (
	"errors"
	"sort"
	"strings"

	"toxiscope/models"
)

// ErrStudyNotFound wird von ByID gemeldet, wenn keine Studie die ID trägt.
var ErrStudyNotFound = errors.New("study not found")

// Catalogue ist eine unveränderliche Liste von Studien in Quellreihenfolge.
type Catalogue struct {
	studies []models.ChemicalStudy
	byID    map[string]int
}

// Stats sind Kennzahlen über den gesamten Katalog.
type Stats struct {
	TotalStudies       int            `json:"totalStudies"`
	SeminalStudies     int            `json:"seminalStudies"`
	HighImpactStudies  int            `json:"highImpactStudies"`
	AverageImpactScore float64        `json:"averageImpactScore"`
	ByStudyType        map[string]int `json:"byStudyType"`
	ByQuality          map[string]int `json:"byQuality"`
	Chemicals          int            `json:"chemicals"`
	ProductCategories  int            `json:"productCategories"`
	Dimensions         int            `json:"dimensions"`
	EarliestYear       int            `json:"earliestYear"`
	LatestYear         int            `json:"latestYear"`
}

var defaultCatalogue = New(academicStudies)

// Default liefert den eingebauten Katalog.
func Default() *Catalogue {
	return defaultCatalogue
}

// New baut einen Katalog aus den übergebenen Studien. Bei doppelten IDs gewinnt
// der erste Eintrag für ByID.
func New(studies []models.ChemicalStudy) *Catalogue {
	c := &Catalogue{
		studies: append([]models.ChemicalStudy(nil), studies...),
		byID:    make(map[string]int, len(studies)),
	}
	for i, s := range c.studies {
		if _, ok := c.byID[s.ID]; !ok {
			c.byID[s.ID] = i
		}
	}
	return c
}

// Len ist die Anzahl der Studien.
func (c *Catalogue) Len() int { return len(c.studies) }

// All liefert alle Studien in Quellreihenfolge (Kopie).
func (c *Catalogue) All() []models.ChemicalStudy {
	return append([]models.ChemicalStudy(nil), c.studies...)
}

// ByID sucht eine Studie anhand ihrer ID.
func (c *Catalogue) ByID(id string) (models.ChemicalStudy, error) {
	i, ok := c.byID[id]
	if !ok {
		return models.ChemicalStudy{}, ErrStudyNotFound
	}
	return c.studies[i], nil
}

// ByChemical liefert Studien, deren Chemikalien-Tags den Namen enthalten
// (Groß-/Kleinschreibung egal).
func (c *Catalogue) ByChemical(name string) []models.ChemicalStudy {
	return c.filter(func(s models.ChemicalStudy) bool { return anyContains(s.Chemicals, name) })
}

// ByCategory liefert Studien zu einer Produktkategorie.
func (c *Catalogue) ByCategory(category string) []models.ChemicalStudy {
	return c.filter(func(s models.ChemicalStudy) bool { return anyContains(s.ProductCategories, category) })
}

// ByDimension liefert Studien zu einer toxikologischen Dimension.
func (c *Catalogue) ByDimension(dimension string) []models.ChemicalStudy {
	return c.filter(func(s models.ChemicalStudy) bool { return anyContains(s.ToxicologicalDimensions, dimension) })
}

// Seminal liefert alle als grundlegend markierten Studien.
func (c *Catalogue) Seminal() []models.ChemicalStudy {
	return c.filter(func(s models.ChemicalStudy) bool { return s.IsSeminal })
}

// HighImpact liefert Studien mit ImpactScore >= threshold.
func (c *Catalogue) HighImpact(threshold int) []models.ChemicalStudy {
	return c.filter(func(s models.ChemicalStudy) bool { return s.ImpactScore >= threshold })
}

// Search durchsucht Titel, Autoren, Journal, Kernaussagen und Chemikalien.
func (c *Catalogue) Search(term string) []models.ChemicalStudy {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}
	return c.filter(func(s models.ChemicalStudy) bool {
		return containsFold(s.Title, term) ||
			anyContains(s.Authors, term) ||
			containsFold(s.Journal, term) ||
			containsFold(s.KeyFindings, term) ||
			anyContains(s.Chemicals, term)
	})
}

// Chemicals liefert alle im Katalog vorkommenden Chemikalien, alphabetisch.
func (c *Catalogue) Chemicals() []string {
	return c.distinct(func(s models.ChemicalStudy) []string { return s.Chemicals })
}

// Categories liefert alle Produktkategorien, alphabetisch.
func (c *Catalogue) Categories() []string {
	return c.distinct(func(s models.ChemicalStudy) []string { return s.ProductCategories })
}

// Dimensions liefert alle toxikologischen Dimensionen, alphabetisch.
func (c *Catalogue) Dimensions() []string {
	return c.distinct(func(s models.ChemicalStudy) []string { return s.ToxicologicalDimensions })
}

// Stats berechnet die Katalog-Kennzahlen.
func (c *Catalogue) Stats() Stats {
	st := Stats{
		TotalStudies:      len(c.studies),
		ByStudyType:       map[string]int{},
		ByQuality:         map[string]int{},
		Chemicals:         len(c.Chemicals()),
		ProductCategories: len(c.Categories()),
		Dimensions:        len(c.Dimensions()),
	}
	if len(c.studies) == 0 {
		return st
	}
	total := 0
	st.EarliestYear, st.LatestYear = c.studies[0].Year, c.studies[0].Year
	for _, s := range c.studies {
		if s.IsSeminal {
			st.SeminalStudies++
		}
		if s.IsHighImpact() {
			st.HighImpactStudies++
		}
		st.ByStudyType[string(s.StudyType)]++
		st.ByQuality[string(s.MethodologicalQuality)]++
		total += s.ImpactScore
		if s.Year < st.EarliestYear {
			st.EarliestYear = s.Year
		}
		if s.Year > st.LatestYear {
			st.LatestYear = s.Year
		}
	}
	st.AverageImpactScore = float64(total) / float64(len(c.studies))
	return st
}

func (c *Catalogue) filter(keep func(models.ChemicalStudy) bool) []models.ChemicalStudy {
	var out []models.ChemicalStudy
	for _, s := range c.studies {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

func (c *Catalogue) distinct(tags func(models.ChemicalStudy) []string) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, s := range c.studies {
		for _, t := range tags(s) {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	sort.Strings(out)
	return out
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func anyContains(tags []string, sub string) bool {
	if sub == "" {
		return false
	}
	for _, t := range tags {
		if containsFold(t, sub) {
			return true
		}
	}
	return false
}
