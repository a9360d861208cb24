package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"toxiscope/catalogue"
	"toxiscope/fixtures"
)

func newProductService(delay time.Duration) *ProductService {
	return NewProductService(fixtures.Evaluation, NewStudyMatcher(catalogue.Default(), zap.NewNop()), delay, zap.NewNop())
}

func TestProductEvaluate(t *testing.T) {
	svc := newProductService(0)

	out, err := svc.Evaluate(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "Plastic Baby Bottle", out.Name)
	assert.NotEmpty(t, out.ResearchLibrary)

	_, err = svc.Evaluate(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductEvaluateCancelledDuringDelay(t *testing.T) {
	svc := newProductService(time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := svc.Evaluate(ctx, "1")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestProductBibliography(t *testing.T) {
	svc := newProductService(0)

	refs, _, err := svc.Bibliography(context.Background(), "1")
	require.NoError(t, err)
	require.NotEmpty(t, refs)
	assert.Equal(t, 1, refs[0].Number)

	seen := map[string]bool{}
	for _, r := range refs {
		assert.False(t, seen[r.CitationID], r.CitationID)
		seen[r.CitationID] = true
	}

	_, _, err = svc.Bibliography(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrProductNotFound)
}
