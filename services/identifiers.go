package services

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeDOI vereinheitlicht eine DOI für Vergleiche: NFKC, klein, ohne
// URL- oder "doi:"-Präfix.
func NormalizeDOI(s string) string {
	s = strings.TrimSpace(strings.ToLower(norm.NFKC.String(s)))
	// Entferne URL-Präfixe
	s = strings.TrimPrefix(s, "https://doi.org/")
	s = strings.TrimPrefix(s, "http://doi.org/")
	s = strings.TrimPrefix(s, "https://dx.doi.org/")
	s = strings.TrimPrefix(s, "http://dx.doi.org/")
	s = strings.TrimPrefix(s, "doi:")
	return strings.TrimSpace(s)
}

// NormalizePMID behält nur die Ziffern einer PMID.
func NormalizePMID(s string) string {
	var out strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			out.WriteRune(r)
		}
	}
	return out.String()
}

// sameWork meldet, ob zwei Einträge dieselbe Publikation bezeichnen: gleiche ID,
// sonst gleiche DOI (wenn beide eine haben), sonst gleiche PMID.
func sameWork(aID, aDOI, aPMID, bID, bDOI, bPMID string) bool {
	if aID != "" && aID == bID {
		return true
	}
	if d1, d2 := NormalizeDOI(aDOI), NormalizeDOI(bDOI); d1 != "" && d1 == d2 {
		return true
	}
	if p1, p2 := NormalizePMID(aPMID), NormalizePMID(bPMID); p1 != "" && p1 == p2 {
		return true
	}
	return false
}
