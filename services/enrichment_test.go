package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"toxiscope/catalogue"
	"toxiscope/fixtures"
	"toxiscope/models"
)

func smallCatalogue() *catalogue.Catalogue {
	return catalogue.New([]models.ChemicalStudy{
		{ID: "s1", DOI: "10.1/x", ImpactScore: 95, Chemicals: []string{"PFOA"},
			ToxicologicalDimensions: []string{"Carcinogenicity"}, ProductCategories: []string{"Cookware"}},
		{ID: "s2", PMID: "123", ImpactScore: 80, Chemicals: []string{"PTFE"},
			ToxicologicalDimensions: []string{"Carcinogenicity"}},
		{ID: "s3", ImpactScore: 70, Chemicals: []string{"PFOA"},
			ToxicologicalDimensions: []string{"Carcinogenicity"}},
		{ID: "s4", ImpactScore: 91, IsSeminal: true, Chemicals: []string{"PFOA"},
			ToxicologicalDimensions: []string{"Endocrine Disruption"}, ProductCategories: []string{"Cookware"}},
		{ID: "s5", ImpactScore: 60, Chemicals: []string{"BPA"},
			ToxicologicalDimensions: []string{"Neurotoxicity"}, ProductCategories: []string{"Baby Products"}},
		{ID: "s6", PMID: "PMID: 555", ImpactScore: 85, Chemicals: []string{"PFOA"},
			ToxicologicalDimensions: []string{"Respiratory Toxicity"}},
	})
}

func smallEvaluation() models.ProductEvaluation {
	return models.ProductEvaluation{
		ID:       "p",
		Category: "Cookware",
		Dimensions: []models.ToxicologicalDimension{
			{
				Dimension: "Carcinogenicity",
				Chemicals: []models.ChemicalExposure{{Name: "PFOA"}},
				Citations: []models.Citation{
					{ID: "m1", DOI: "https://doi.org/10.1/X", RelevanceScore: 90},
					{ID: "m2"},
				},
			},
			{
				Dimension: "Endocrine Disruption",
				Chemicals: []models.ChemicalExposure{{Name: "PFOA"}},
				Citations: []models.Citation{{ID: "m3", PMID: "555"}},
			},
		},
	}
}

func citationIDs(cs []models.Citation) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.ID)
	}
	return out
}

func TestEnrichMergesAndBackfills(t *testing.T) {
	m := NewStudyMatcher(smallCatalogue(), zap.NewNop())
	in := smallEvaluation()

	out := m.Enrich(in)

	carc := out.Dimensions[0]
	assert.Equal(t, []string{"s1", "s2", "m2"}, citationIDs(carc.Citations))
	require.NotNil(t, carc.Citations[2].ImpactScore)
	assert.Equal(t, 75, *carc.Citations[2].ImpactScore)
	assert.Equal(t, 75, carc.Citations[2].RelevanceScore)
	assert.Equal(t, 95, carc.Citations[0].RelevanceScore)

	endo := out.Dimensions[1]
	assert.Equal(t, []string{"s4", "m3"}, citationIDs(endo.Citations))

	// s6 beschreibt dieselbe PMID wie m3 und darf nicht in der Library auftauchen.
	assert.Equal(t, []string{"s3"}, citationIDs(out.ResearchLibrary))
	assert.Equal(t, models.ResearchLibraryStats{
		TotalStudies:      1,
		ChemicalsCovered:  []string{"PFOA"},
		DimensionsCovered: []string{"Carcinogenicity"},
	}, out.ResearchLibraryStats)

	// Eingabe bleibt unverändert
	assert.Equal(t, "m1", in.Dimensions[0].Citations[0].ID)
	assert.Equal(t, 0, in.Dimensions[0].Citations[1].RelevanceScore)
	assert.Nil(t, in.Dimensions[0].Citations[1].ImpactScore)
}

func TestEnrichDimensionWithoutCandidates(t *testing.T) {
	m := NewStudyMatcher(smallCatalogue(), zap.NewNop())
	out := m.Enrich(models.ProductEvaluation{
		ID: "x",
		Dimensions: []models.ToxicologicalDimension{
			{Dimension: "Dermal Sensitisation", Citations: []models.Citation{{ID: "k", RelevanceScore: 40}}},
			{Dimension: "Dermal Sensitisation II"},
		},
	})

	require.Len(t, out.Dimensions[0].Citations, 1)
	assert.Equal(t, 40, *out.Dimensions[0].Citations[0].ImpactScore)
	assert.Empty(t, out.Dimensions[1].Citations)
	assert.NotNil(t, out.Dimensions[1].Citations)
	assert.Empty(t, out.ResearchLibrary)
	assert.Equal(t, 0, out.ResearchLibraryStats.TotalStudies)
}

func TestEnrichResearchLibraryCap(t *testing.T) {
	var studies []models.ChemicalStudy
	for i := 0; i < 30; i++ {
		studies = append(studies, models.ChemicalStudy{
			ID:                      string(rune('A'+i%26)) + string(rune('a'+i/26)),
			ImpactScore:             50 + i,
			Chemicals:               []string{"BPA"},
			ToxicologicalDimensions: []string{"Other"},
		})
	}
	m := NewStudyMatcher(catalogue.New(studies), zap.NewNop())
	out := m.Enrich(models.ProductEvaluation{
		Dimensions: []models.ToxicologicalDimension{{Dimension: "Endocrine Disruption", Chemicals: []models.ChemicalExposure{{Name: "BPA"}}}},
	})

	require.Len(t, out.ResearchLibrary, maxResearchLibrary)
	assert.Equal(t, 79, out.ResearchLibrary[0].RelevanceScore)
	assert.Equal(t, 60, out.ResearchLibrary[19].RelevanceScore)
}

func TestEnrichFixtureInvariants(t *testing.T) {
	m := NewStudyMatcher(catalogue.Default(), zap.NewNop())

	for _, id := range fixtures.EvaluationIDs() {
		t.Run(id, func(t *testing.T) {
			in, ok := fixtures.Evaluation(id)
			require.True(t, ok)
			out := m.Enrich(in)

			shown := map[string]bool{}
			for i, dim := range out.Dimensions {
				manual := len(in.Dimensions[i].Citations)
				assert.LessOrEqual(t, len(dim.Citations), max(manual, minDimensionCitations), dim.Dimension)
				for j := 1; j < len(dim.Citations); j++ {
					assert.GreaterOrEqual(t, dim.Citations[j-1].RankScore(), dim.Citations[j].RankScore(), dim.Dimension)
				}
				for _, c := range dim.Citations {
					shown[c.ID] = true
				}
			}

			assert.LessOrEqual(t, len(out.ResearchLibrary), maxResearchLibrary)
			for j, c := range out.ResearchLibrary {
				assert.False(t, shown[c.ID], "study %s in dimension citations and research library", c.ID)
				if j > 0 {
					assert.GreaterOrEqual(t, out.ResearchLibrary[j-1].RankScore(), c.RankScore())
				}
			}

			again := m.Enrich(in)
			assert.Equal(t, out, again)
		})
	}
}

func TestEnrichReplacesManualCitationsFromCatalogue(t *testing.T) {
	m := NewStudyMatcher(catalogue.Default(), zap.NewNop())
	in, _ := fixtures.Evaluation("1")
	out := m.Enrich(in)

	carc := citationIDs(out.Dimensions[0].Citations)
	assert.Contains(t, carc, "pfoa-vieira-2013")
	assert.Contains(t, carc, "c2")
	assert.NotContains(t, carc, "c1")

	repro := citationIDs(out.Dimensions[2].Citations)
	assert.Contains(t, repro, "pfoa-fei-2009")
	assert.NotContains(t, repro, "c4")

	// Fixture selbst bleibt unberührt
	fresh, _ := fixtures.Evaluation("1")
	assert.Equal(t, "c1", fresh.Dimensions[0].Citations[0].ID)
}
