package europepmc

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

const braunResponse = `{
  "hitCount": 1,
  "resultList": {"result": [{
    "id": "19736250", "source": "MED", "pmid": "19736250", "doi": "10.1542/peds.2008-3259",
    "title": "Prenatal bisphenol A exposure and early childhood behavior.",
    "authorString": "Braun JM, Yolton K, Dietrich KN, Hornung R, Ye X, Calafat AM, Lanphear BP.",
    "pubYear": "2009",
    "journalInfo": {"journal": {"title": "Environmental health perspectives"}},
    "isOpenAccess": "Y",
    "fullTextUrlList": {"fullTextUrl": [
      {"availabilityCode": "S", "documentStyle": "html", "url": "https://example.org/html"},
      {"availabilityCode": "OA", "documentStyle": "pdf", "url": "https://example.org/paper.pdf"}
    ]}
  }]}
}`

func TestLookupByPMID(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "toxiscope-catalogue-check/1.0", r.Header.Get("User-Agent"))
		gotQuery = r.URL.Query().Get("query")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(braunResponse))
	}))
	defer srv.Close()

	f := NewFetcher(srv.URL, zap.NewNop())
	rec, err := f.Lookup(context.Background(), "19736250", "")
	require.NoError(t, err)

	assert.Equal(t, "EXT_ID:19736250 AND SRC:MED", gotQuery)
	assert.Equal(t, "europepmc", rec.Source)
	assert.Equal(t, 2009, rec.Year)
	assert.Equal(t, "10.1542/peds.2008-3259", rec.DOI)
	assert.Len(t, rec.Authors, 7)
	assert.Equal(t, "Braun JM", rec.Authors[0])
	assert.Equal(t, "Lanphear BP", rec.Authors[6])
	assert.True(t, rec.IsOpenAccess)
	assert.Equal(t, "https://example.org/paper.pdf", rec.PDFURL)
	assert.Equal(t, "https://europepmc.org/article/MED/19736250", rec.PublicURL)
}

func TestLookupByDOIAndNotFound(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		_, _ = w.Write([]byte(`{"hitCount":0,"resultList":{"result":[]}}`))
	}))
	defer srv.Close()

	f := NewFetcher(srv.URL, zap.NewNop())
	_, err := f.Lookup(context.Background(), "", "10.1/x")
	assert.ErrorIs(t, err, providers.ErrNotFound)
	assert.Equal(t, `DOI:"10.1/x"`, gotQuery)
}

func TestLookupErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	f := NewFetcher(srv.URL, zap.NewNop())
	_, err := f.Lookup(context.Background(), "1", "")
	assert.ErrorContains(t, err, "503")

	_, err = f.Lookup(context.Background(), "", "")
	assert.Error(t, err)
}

func TestArticleYearFallback(t *testing.T) {
	a := Article{FirstPublicationDate: "2013-01-15"}
	assert.Equal(t, 2013, a.year())
	assert.Equal(t, 0, (&Article{}).year())
}
