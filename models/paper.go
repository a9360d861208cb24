package models

// PublicationRecord sind die bibliographischen Metadaten einer Studie, wie sie
// ein externer Dienst (Europe PMC, Unpaywall) liefert.
type PublicationRecord struct {
	Source       string   `json:"source"`
	PMID         string   `json:"pmid,omitempty"`
	DOI          string   `json:"doi,omitempty"`
	Title        string   `json:"title"`
	Journal      string   `json:"journal,omitempty"`
	Year         int      `json:"year,omitempty"`
	Authors      []string `json:"authors,omitempty"`
	IsOpenAccess bool     `json:"isOpenAccess"`
	PDFURL       string   `json:"pdfUrl,omitempty"`
	PublicURL    string   `json:"publicUrl,omitempty"`
}
