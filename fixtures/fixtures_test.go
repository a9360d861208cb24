package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluationLookup(t *testing.T) {
	e, ok := Evaluation("1")
	require.True(t, ok)
	assert.Equal(t, "Cookware", e.Category)
	assert.Len(t, e.Dimensions, 4)

	_, ok = Evaluation("999")
	assert.False(t, ok)

	assert.Equal(t, []string{"1", "2"}, EvaluationIDs())
}

func TestSearchFixturesConsistent(t *testing.T) {
	known := map[string]bool{}
	for _, p := range ProductMetadata() {
		known[p.ID] = true
		assert.NotEmpty(t, p.Keywords, p.ID)
	}
	for _, e := range SearchIndex() {
		for _, id := range e.ProductIDs {
			assert.True(t, known[id], "index keyword %q points to unknown product %s", e.Keyword, id)
		}
	}
}

func TestScanProducts(t *testing.T) {
	ps := ScanProducts()
	require.Len(t, ps, 5)
	for _, p := range ps {
		assert.NotEmpty(t, p.Concerns, p.ID)
		assert.NotEmpty(t, p.SaferAlternative, p.ID)
	}
}
