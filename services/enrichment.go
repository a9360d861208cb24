package services

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"toxiscope/catalogue"
	"toxiscope/models"
)

const (
	// minDimensionCitations ist die Zielzahl an Zitaten, bis zu der aus dem Katalog aufgefüllt wird.
	minDimensionCitations = 3
	// maxResearchLibrary begrenzt die Research Library.
	maxResearchLibrary = 20
	// defaultManualScore gilt für Handzitate ohne Score.
	defaultManualScore = 75
)

// StudyMatcher reichert Produktbewertungen mit Studien aus dem Katalog an.
type StudyMatcher struct {
	catalogue *catalogue.Catalogue
	logger    *zap.Logger
}

func NewStudyMatcher(cat *catalogue.Catalogue, logger *zap.Logger) *StudyMatcher {
	return &StudyMatcher{catalogue: cat, logger: logger}
}

// shownSet merkt sich, welche Publikationen bereits als Dimensions-Zitat erscheinen.
type shownSet struct {
	ids   map[string]struct{}
	dois  map[string]struct{}
	pmids map[string]struct{}
}

func newShownSet() *shownSet {
	return &shownSet{ids: map[string]struct{}{}, dois: map[string]struct{}{}, pmids: map[string]struct{}{}}
}

func (s *shownSet) add(id, doi, pmid string) {
	s.ids[id] = struct{}{}
	if d := NormalizeDOI(doi); d != "" {
		s.dois[d] = struct{}{}
	}
	if p := NormalizePMID(pmid); p != "" {
		s.pmids[p] = struct{}{}
	}
}

func (s *shownSet) has(id, doi, pmid string) bool {
	if _, ok := s.ids[id]; ok {
		return true
	}
	if d := NormalizeDOI(doi); d != "" {
		if _, ok := s.dois[d]; ok {
			return true
		}
	}
	if p := NormalizePMID(pmid); p != "" {
		if _, ok := s.pmids[p]; ok {
			return true
		}
	}
	return false
}

// Enrich liefert eine neue, angereicherte Bewertung. Die Eingabe bleibt unverändert.
func (m *StudyMatcher) Enrich(eval models.ProductEvaluation) models.EnrichedEvaluation {
	out := models.EnrichedEvaluation{ProductEvaluation: eval}
	out.Dimensions = make([]models.ToxicologicalDimension, len(eval.Dimensions))
	for i, dim := range eval.Dimensions {
		out.Dimensions[i] = m.enrichDimension(dim)
	}

	out.ResearchLibrary = m.researchLibrary(out.Category, out.Dimensions)
	out.ResearchLibraryStats = libraryStats(out.ResearchLibrary)

	m.logger.Debug("Bewertung angereichert",
		zap.String("product_id", eval.ID),
		zap.Int("dimensions", len(out.Dimensions)),
		zap.Int("research_library", len(out.ResearchLibrary)))
	return out
}

func (m *StudyMatcher) enrichDimension(dim models.ToxicologicalDimension) models.ToxicologicalDimension {
	seen := map[string]struct{}{}
	for _, c := range dim.Citations {
		seen[c.ID] = struct{}{}
	}

	candidates := m.dimensionCandidates(dim)
	used := make([]bool, len(candidates))

	citations := make([]models.Citation, 0, max(len(dim.Citations), minDimensionCitations))
	placed := map[string]struct{}{}
	for _, manual := range dim.Citations {
		idx := -1
		for i, s := range candidates {
			if sameWork(manual.ID, manual.DOI, manual.PMID, s.ID, s.DOI, s.PMID) {
				idx = i
				break
			}
		}
		if idx < 0 {
			citations = append(citations, defaultManualCitation(manual))
			continue
		}
		study := candidates[idx]
		used[idx] = true
		seen[study.ID] = struct{}{}
		if _, dup := placed[study.ID]; dup {
			continue
		}
		placed[study.ID] = struct{}{}
		citations = append(citations, study.ToCitation())
	}

	var remaining []models.ChemicalStudy
	for i, s := range candidates {
		if used[i] {
			continue
		}
		if _, ok := seen[s.ID]; ok {
			continue
		}
		remaining = append(remaining, s)
	}
	sortByImpact(remaining)
	for _, s := range remaining {
		if len(citations) >= minDimensionCitations {
			break
		}
		citations = append(citations, s.ToCitation())
	}

	sort.SliceStable(citations, func(i, j int) bool {
		return citations[i].RankScore() > citations[j].RankScore()
	})

	dim.Citations = citations
	return dim
}

// dimensionCandidates vereinigt Studien mit passendem Dimensions-Tag und Studien
// zu den Chemikalien der Dimension, die dieselbe Dimension tragen. Erster Treffer gewinnt.
func (m *StudyMatcher) dimensionCandidates(dim models.ToxicologicalDimension) []models.ChemicalStudy {
	var out []models.ChemicalStudy
	seen := map[string]struct{}{}
	add := func(s models.ChemicalStudy) {
		if _, ok := seen[s.ID]; ok {
			return
		}
		seen[s.ID] = struct{}{}
		out = append(out, s)
	}

	for _, s := range m.catalogue.ByDimension(dim.Dimension) {
		add(s)
	}
	for _, chem := range dim.Chemicals {
		for _, s := range m.catalogue.ByChemical(chem.Name) {
			if hasTagFold(s.ToxicologicalDimensions, dim.Dimension) {
				add(s)
			}
		}
	}
	return out
}

func (m *StudyMatcher) researchLibrary(category string, dims []models.ToxicologicalDimension) []models.Citation {
	shown := newShownSet()
	var chemicals, dimensions []string
	chemSeen, dimSeen := map[string]struct{}{}, map[string]struct{}{}
	for _, d := range dims {
		for _, c := range d.Citations {
			shown.add(c.ID, c.DOI, c.PMID)
		}
		if _, ok := dimSeen[d.Dimension]; !ok {
			dimSeen[d.Dimension] = struct{}{}
			dimensions = append(dimensions, d.Dimension)
		}
		for _, ch := range d.Chemicals {
			if _, ok := chemSeen[ch.Name]; !ok {
				chemSeen[ch.Name] = struct{}{}
				chemicals = append(chemicals, ch.Name)
			}
		}
	}

	var candidates []models.ChemicalStudy
	seen := map[string]struct{}{}
	collect := func(studies []models.ChemicalStudy) {
		for _, s := range studies {
			if _, ok := seen[s.ID]; ok {
				continue
			}
			seen[s.ID] = struct{}{}
			if shown.has(s.ID, s.DOI, s.PMID) {
				continue
			}
			candidates = append(candidates, s)
		}
	}
	for _, ch := range chemicals {
		collect(m.catalogue.ByChemical(ch))
	}
	collect(m.catalogue.ByCategory(category))
	for _, d := range dimensions {
		collect(m.catalogue.ByDimension(d))
	}

	sortByImpact(candidates)
	if len(candidates) > maxResearchLibrary {
		candidates = candidates[:maxResearchLibrary]
	}
	library := make([]models.Citation, 0, len(candidates))
	for _, s := range candidates {
		library = append(library, s.ToCitation())
	}
	return library
}

func libraryStats(library []models.Citation) models.ResearchLibraryStats {
	st := models.ResearchLibraryStats{
		TotalStudies:      len(library),
		ChemicalsCovered:  []string{},
		DimensionsCovered: []string{},
	}
	chemSeen, dimSeen := map[string]struct{}{}, map[string]struct{}{}
	for _, c := range library {
		if c.IsSeminal {
			st.SeminalStudies++
		}
		if c.RankScore() >= models.HighImpactThreshold {
			st.HighImpactStudies++
		}
		for _, ch := range c.Chemicals {
			if _, ok := chemSeen[ch]; !ok {
				chemSeen[ch] = struct{}{}
				st.ChemicalsCovered = append(st.ChemicalsCovered, ch)
			}
		}
		for _, d := range c.ToxicologicalDimensions {
			if _, ok := dimSeen[d]; !ok {
				dimSeen[d] = struct{}{}
				st.DimensionsCovered = append(st.DimensionsCovered, d)
			}
		}
	}
	return st
}

// defaultManualCitation kopiert ein Handzitat und setzt fehlende Scores auf 75.
func defaultManualCitation(c models.Citation) models.Citation {
	c.Authors = append([]string(nil), c.Authors...)
	if c.RelevanceScore == 0 {
		c.RelevanceScore = defaultManualScore
	}
	if c.ImpactScore == nil {
		impact := c.RelevanceScore
		c.ImpactScore = &impact
	}
	return c
}

func sortByImpact(studies []models.ChemicalStudy) {
	sort.SliceStable(studies, func(i, j int) bool {
		return studies[i].ImpactScore > studies[j].ImpactScore
	})
}

func hasTagFold(tags []string, want string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, want) {
			return true
		}
	}
	return false
}
