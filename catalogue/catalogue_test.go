package catalogue

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toxiscope/models"
)

func testCatalogue() *Catalogue {
	return New([]models.ChemicalStudy{
		{ID: "a", Title: "PFOA and kidney cancer", Authors: []string{"Barry V"}, Journal: "EHP", Year: 2013,
			ImpactScore: 93, IsSeminal: true, Chemicals: []string{"PFOA"},
			ToxicologicalDimensions: []string{DimCarcinogenicity}, ProductCategories: []string{CatCookware},
			StudyType: models.StudyCohort, MethodologicalQuality: models.QualityHigh},
		{ID: "b", Title: "BPA in bottles", Authors: []string{"Vandenberg LN"}, Journal: "Reprod Tox", Year: 2007,
			ImpactScore: 80, Chemicals: []string{"BPA"},
			ToxicologicalDimensions: []string{DimEndocrineDisruption}, ProductCategories: []string{CatBabyProducts},
			StudyType: models.StudyReview, MethodologicalQuality: models.QualityMedium},
		{ID: "c", Title: "Phthalates (DEHP) and AGD", Authors: []string{"Swan SH"}, Journal: "EHP", Year: 2005,
			ImpactScore: 97, IsSeminal: true, Chemicals: []string{"Phthalates (DEHP)"},
			ToxicologicalDimensions: []string{DimReproductiveToxicity}, ProductCategories: []string{CatBabyProducts, CatPersonalCare},
			StudyType: models.StudyCohort, MethodologicalQuality: models.QualityHigh},
	})
}

func ids(studies []models.ChemicalStudy) []string {
	out := make([]string, 0, len(studies))
	for _, s := range studies {
		out = append(out, s.ID)
	}
	return out
}

func TestLookups(t *testing.T) {
	c := testCatalogue()

	assert.Equal(t, []string{"a"}, ids(c.ByChemical("pfoa")))
	assert.Equal(t, []string{"c"}, ids(c.ByChemical("phthalates")))
	assert.Equal(t, []string{"b", "c"}, ids(c.ByCategory("baby")))
	assert.Equal(t, []string{"b"}, ids(c.ByDimension("endocrine disruption")))
	assert.Equal(t, []string{"a", "c"}, ids(c.Seminal()))
	assert.Equal(t, []string{"a", "c"}, ids(c.HighImpact(90)))
	assert.Equal(t, []string{"a", "b", "c"}, ids(c.HighImpact(0)))
	assert.Empty(t, c.ByChemical(""))
}

func TestSearch(t *testing.T) {
	c := testCatalogue()

	assert.Equal(t, []string{"b"}, ids(c.Search("bottles")))
	assert.Equal(t, []string{"c"}, ids(c.Search("swan")))
	assert.Equal(t, []string{"a", "c"}, ids(c.Search("EHP")))
	assert.Empty(t, c.Search("   "))
}

func TestByID(t *testing.T) {
	c := testCatalogue()

	s, err := c.ByID("b")
	require.NoError(t, err)
	assert.Equal(t, "BPA in bottles", s.Title)

	_, err = c.ByID("missing")
	assert.ErrorIs(t, err, ErrStudyNotFound)
}

func TestDistinctAndStats(t *testing.T) {
	c := testCatalogue()

	assert.Equal(t, []string{"BPA", "PFOA", "Phthalates (DEHP)"}, c.Chemicals())
	assert.Equal(t, []string{CatBabyProducts, CatCookware, CatPersonalCare}, c.Categories())

	st := c.Stats()
	assert.Equal(t, 3, st.TotalStudies)
	assert.Equal(t, 2, st.SeminalStudies)
	assert.Equal(t, 2, st.HighImpactStudies)
	assert.Equal(t, 2, st.ByStudyType["cohort"])
	assert.Equal(t, 1, st.ByQuality["medium"])
	assert.InDelta(t, 90.0, st.AverageImpactScore, 0.001)
	assert.Equal(t, 2005, st.EarliestYear)
	assert.Equal(t, 2013, st.LatestYear)
}

func TestDefaultCatalogueIntegrity(t *testing.T) {
	c := Default()
	require.Greater(t, c.Len(), 20)

	seen := map[string]bool{}
	for _, s := range c.All() {
		assert.False(t, seen[s.ID], "duplicate id %s", s.ID)
		seen[s.ID] = true
		assert.NotEmpty(t, s.Title, s.ID)
		assert.NotEmpty(t, s.Chemicals, s.ID)
		assert.NotEmpty(t, s.ToxicologicalDimensions, s.ID)
		assert.NotEmpty(t, s.ProductCategories, s.ID)
		assert.True(t, s.ImpactScore > 0 && s.ImpactScore <= 100, s.ID)
	}
	assert.True(t, sort.StringsAreSorted(c.Chemicals()))
}
