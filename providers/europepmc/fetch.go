package europepmc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"toxiscope/models"
	"toxiscope/providers"
)

// DefaultBaseURL ist der REST-Endpunkt von Europe PMC.
const DefaultBaseURL = "https://www.ebi.ac.uk/europepmc/webservices/rest"

// Fetcher implementiert das Provider-Interface für Europe PMC.
type Fetcher struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *zap.Logger
}

// NewFetcher erstellt einen neuen Europe PMC Fetcher. Europe PMC erlaubt
// großzügige Raten, wir bleiben trotzdem bei 5 Anfragen pro Sekunde.
func NewFetcher(baseURL string, logger *zap.Logger) *Fetcher {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Fetcher{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: providers.NewHTTPClient(60 * time.Second),
		limiter:    rate.NewLimiter(rate.Limit(5), 1),
		logger:     logger,
	}
}

// Name gibt den Namen des Providers zurück.
func (f *Fetcher) Name() string {
	return "europepmc"
}

// Lookup sucht den Artikel per PMID (bevorzugt) oder DOI.
func (f *Fetcher) Lookup(ctx context.Context, pmid, doi string) (*models.PublicationRecord, error) {
	var query string
	switch {
	case pmid != "":
		query = fmt.Sprintf("EXT_ID:%s AND SRC:MED", pmid)
	case doi != "":
		query = fmt.Sprintf("DOI:%q", doi)
	default:
		return nil, fmt.Errorf("europepmc: pmid or doi required")
	}

	log := f.logger.With(zap.String("query", query))
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	searchURL := fmt.Sprintf("%s/search?query=%s&format=json&resultType=core&pageSize=1", f.baseURL, url.QueryEscape(query))
	log.Debug("Rufe Europe PMC API auf", zap.String("url", searchURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("europepmc request failed with status: %d", resp.StatusCode)
	}

	var searchResponse SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResponse); err != nil {
		return nil, err
	}
	if len(searchResponse.ResultList.Result) == 0 {
		log.Debug("Kein Treffer auf Europe PMC.")
		return nil, providers.ErrNotFound
	}

	return mapArticleToRecord(&searchResponse.ResultList.Result[0]), nil
}

// mapArticleToRecord konvertiert ein Europe PMC Article-Objekt in unser internes Modell.
func mapArticleToRecord(article *Article) *models.PublicationRecord {
	rec := &models.PublicationRecord{
		Source:       "europepmc",
		PMID:         article.PMID,
		DOI:          article.DOI,
		Title:        strings.TrimSpace(article.Title),
		Journal:      article.JournalInfo.Journal.Title,
		Year:         article.year(),
		Authors:      article.authors(),
		IsOpenAccess: article.IsOpenAccess == "Y",
	}
	if article.PMID != "" {
		rec.PublicURL = fmt.Sprintf("https://europepmc.org/article/MED/%s", article.PMID)
	}

	// Finde den besten PDF-Link
	for _, u := range article.FullTextURLList.FullTextURL {
		if u.DocumentStyle == "pdf" && u.AvailabilityCode == "OA" {
			rec.PDFURL = u.URL
			break
		}
	}
	return rec
}
