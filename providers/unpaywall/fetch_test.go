package unpaywall

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"toxiscope/providers"
)

func TestLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/10.1289/ehp.1103569", r.URL.Path)
		assert.Equal(t, "dev@example.com", r.URL.Query().Get("email"))
		_, _ = w.Write([]byte(`{
			"doi": "10.1289/ehp.1103569",
			"title": "Perfluorooctanoic acid exposure and cancer outcomes",
			"year": 2013,
			"journal_name": "Environmental Health Perspectives",
			"is_oa": true,
			"z_authors": [{"given": "Verónica M.", "family": "Vieira"}, {"given": "", "family": "Hoffman"}],
			"best_oa_location": {"url": "https://example.org", "url_for_pdf": "https://example.org/ehp.pdf"}
		}`))
	}))
	defer srv.Close()

	f := NewFetcher(srv.URL, "dev@example.com", zap.NewNop())
	rec, err := f.Lookup(context.Background(), "23221922", "10.1289/ehp.1103569")
	require.NoError(t, err)

	assert.Equal(t, "unpaywall", rec.Source)
	assert.Equal(t, 2013, rec.Year)
	assert.True(t, rec.IsOpenAccess)
	assert.Equal(t, []string{"Vieira Verónica M.", "Hoffman"}, rec.Authors)
	assert.Equal(t, "https://example.org/ehp.pdf", rec.PDFURL)
}

func TestLookupNotFoundAndConfig(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewFetcher(srv.URL, "dev@example.com", zap.NewNop())
	_, err := f.Lookup(context.Background(), "", "10.1/missing")
	assert.ErrorIs(t, err, providers.ErrNotFound)

	_, err = f.Lookup(context.Background(), "123", "")
	assert.ErrorIs(t, err, providers.ErrNotFound)

	_, err = NewFetcher(srv.URL, "", zap.NewNop()).Lookup(context.Background(), "", "10.1/x")
	assert.ErrorContains(t, err, "email")
}
