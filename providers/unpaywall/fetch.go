package unpaywall

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

// DefaultBaseURL ist der REST-Endpunkt von Unpaywall.
const DefaultBaseURL = "https://api.unpaywall.org/v2"

// Response repräsentiert die JSON-Antwort der Unpaywall-API.
type Response struct {
	DOI         string `json:"doi"`
	Title       string `json:"title"`
	Year        int    `json:"year"`
	JournalName string `json:"journal_name"`
	IsOA        bool   `json:"is_oa"`
	Authors     []struct {
		Given  string `json:"given"`
		Family string `json:"family"`
	} `json:"z_authors"`
	BestOALocation *struct {
		URL       string `json:"url"`
		URLForPDF string `json:"url_for_pdf"`
	} `json:"best_oa_location"`
}

// Fetcher kapselt die Logik für Unpaywall. Unpaywall kennt nur DOIs.
type Fetcher struct {
	baseURL    string
	email      string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *zap.Logger
}

// NewFetcher erstellt einen neuen Unpaywall-Fetcher. Die API verlangt eine
// Kontakt-E-Mail pro Anfrage.
func NewFetcher(baseURL, email string, logger *zap.Logger) *Fetcher {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Fetcher{
		baseURL:    strings.TrimRight(baseURL, "/"),
		email:      email,
		httpClient: providers.NewHTTPClient(30 * time.Second),
		limiter:    rate.NewLimiter(rate.Limit(10), 1),
		logger:     logger,
	}
}

// Name gibt den Namen des Providers zurück.
func (f *Fetcher) Name() string {
	return "unpaywall"
}

// Lookup holt Metadaten und Open-Access-Status anhand der DOI. Die PMID wird ignoriert.
func (f *Fetcher) Lookup(ctx context.Context, _ string, doi string) (*models.PublicationRecord, error) {
	if f.email == "" {
		return nil, fmt.Errorf("unpaywall email ist nicht konfiguriert")
	}
	if doi == "" {
		return nil, providers.ErrNotFound
	}
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	reqURL := fmt.Sprintf("%s/%s?email=%s", f.baseURL, url.PathEscape(doi), url.QueryEscape(f.email))
	log := f.logger.With(zap.String("doi", doi))
	log.Debug("Rufe Unpaywall API auf.")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, providers.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unpaywall request failed with status: %d", resp.StatusCode)
	}

	var ur Response
	if err := json.NewDecoder(resp.Body).Decode(&ur); err != nil {
		return nil, err
	}

	rec := &models.PublicationRecord{
		Source:       "unpaywall",
		DOI:          ur.DOI,
		Title:        strings.TrimSpace(ur.Title),
		Journal:      ur.JournalName,
		Year:         ur.Year,
		IsOpenAccess: ur.IsOA,
		PublicURL:    "https://doi.org/" + ur.DOI,
	}
	for _, a := range ur.Authors {
		if name := strings.TrimSpace(a.Family + " " + a.Given); name != "" {
			rec.Authors = append(rec.Authors, name)
		}
	}
	if ur.BestOALocation != nil {
		rec.PDFURL = ur.BestOALocation.URLForPDF
		if rec.PDFURL != "" {
			log.Info("PDF-Link über Unpaywall gefunden.")
		}
	}
	return rec, nil
}
