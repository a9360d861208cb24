package europepmc

import (
	"strconv"
	"strings"
	"time"
)

// SearchResponse ist die Top-Level-Struktur der Europe PMC API-Antwort.
type SearchResponse struct {
	HitCount   int `json:"hitCount"`
	ResultList struct {
		Result []Article `json:"result"`
	} `json:"resultList"`
}

// Article repräsentiert einen einzelnen Artikel in der API-Antwort (resultType=core).
type Article struct {
	ID                   string `json:"id"`
	Source               string `json:"source"`
	PMID                 string `json:"pmid"`
	DOI                  string `json:"doi"`
	Title                string `json:"title"`
	AuthorString         string `json:"authorString"`
	PubYear              string `json:"pubYear"`
	FirstPublicationDate string `json:"firstPublicationDate"`
	JournalInfo          struct {
		Journal struct {
			Title string `json:"title"`
		} `json:"journal"`
	} `json:"journalInfo"`
	FullTextURLList struct {
		FullTextURL []FullTextURL `json:"fullTextUrl"`
	} `json:"fullTextUrlList"`
	IsOpenAccess string `json:"isOpenAccess"`
}

// FullTextURL repräsentiert einen einzelnen Volltext-Link.
type FullTextURL struct {
	AvailabilityCode string `json:"availabilityCode"`
	DocumentStyle    string `json:"documentStyle"`
	URL              string `json:"url"`
}

// year bevorzugt pubYear und fällt auf das Erstveröffentlichungsdatum zurück.
func (a *Article) year() int {
	if y, err := strconv.Atoi(strings.TrimSpace(a.PubYear)); err == nil {
		return y
	}
	if t := parseEuroDate(a.FirstPublicationDate); t != nil {
		return t.Year()
	}
	return 0
}

// authors zerlegt den authorString ("Braun JM, Yolton K, Dietrich KN.").
func (a *Article) authors() []string {
	s := strings.TrimSuffix(strings.TrimSpace(a.AuthorString), ".")
	if s == "" {
		return nil
	}
	var out []string
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// Hilfsfunktion zum sicheren Parsen von Daten.
func parseEuroDate(dateStr string) *time.Time {
	layouts := []string{"2006-01-02", "2006-01", "2006"}
	for _, layout := range layouts {
		t, err := time.Parse(layout, dateStr)
		if err == nil {
			return &t
		}
	}
	return nil
}
