package services

import (
	"fmt"
	"strings"

	"toxiscope/models"
)

const maxReferenceAuthors = 6

// Reference ist ein nummerierter Eintrag im Literaturverzeichnis einer Bewertung.
type Reference struct {
	Number     int    `json:"number"`
	CitationID string `json:"citationId"`
	Text       string `json:"text"`
	DOI        string `json:"doi,omitempty"`
	PMID       string `json:"pmid,omitempty"`
}

// BuildBibliography nummeriert alle Zitate einer angereicherten Bewertung in
// Reihenfolge des ersten Auftretens: erst Dimensionen, dann Research Library.
// Doppelte Publikationen (ID, DOI oder PMID) erscheinen nur einmal. Warnungen
// nennen Zitate ohne DOI und PMID.
func BuildBibliography(eval models.EnrichedEvaluation) (refs []Reference, warnings []string) {
	shown := newShownSet()
	add := func(c models.Citation) {
		if shown.has(c.ID, c.DOI, c.PMID) {
			return
		}
		shown.add(c.ID, c.DOI, c.PMID)
		if c.DOI == "" && c.PMID == "" {
			warnings = append(warnings, fmt.Sprintf("citation %s has neither doi nor pmid", c.ID))
		}
		refs = append(refs, Reference{
			Number:     len(refs) + 1,
			CitationID: c.ID,
			Text:       formatReference(c.Authors, c.Year, c.Title, c.Journal, c.DOI, c.PMID),
			DOI:        c.DOI,
			PMID:       c.PMID,
		})
	}
	for _, d := range eval.Dimensions {
		for _, c := range d.Citations {
			add(c)
		}
	}
	for _, c := range eval.ResearchLibrary {
		add(c)
	}
	if refs == nil {
		refs = []Reference{}
	}
	return refs, warnings
}

// FormatReference rendert eine Katalogstudie als kompakte Literaturangabe.
func FormatReference(s models.ChemicalStudy) string {
	return formatReference(s.Authors, s.Year, s.Title, s.Journal, s.DOI, s.PMID)
}

func formatReference(authorList []string, yearNum int, title, journal, doi, pmid string) string {
	// Autoren: max. 6, danach et al.
	names := authorList
	if len(names) > maxReferenceAuthors {
		names = names[:maxReferenceAuthors]
	}
	authors := strings.Join(names, ", ")
	if len(authorList) > maxReferenceAuthors {
		authors += ", et al."
	}
	if authors == "" {
		authors = "Unknown Authors"
	}
	year := "n.d."
	if yearNum > 0 {
		year = fmt.Sprintf("%d", yearNum)
	}
	var tail []string
	if doi != "" {
		tail = append(tail, fmt.Sprintf("doi:%s", doi))
	}
	if pmid != "" {
		tail = append(tail, fmt.Sprintf("pmid:%s", pmid))
	}
	tailStr := strings.Join(tail, " ")
	if tailStr != "" {
		tailStr = " " + tailStr
	}
	if title == "" {
		title = "Untitled"
	}
	if journal != "" {
		return fmt.Sprintf("%s (%s). %s. %s.%s", authors, year, title, journal, tailStr)
	}
	return fmt.Sprintf("%s (%s). %s.%s", authors, year, title, tailStr)
}
