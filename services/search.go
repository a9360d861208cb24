package services

import (
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"toxiscope/models"
)

// SearchIndex bewertet Produkte anhand von Stichworttreffern. Index und
// Metadaten werden nur gelesen.
type SearchIndex struct {
	products []models.ProductSummary
	index    []models.SearchIndexEntry
	logger   *zap.Logger
}

func NewSearchIndex(products []models.ProductSummary, index []models.SearchIndexEntry, logger *zap.Logger) *SearchIndex {
	return &SearchIndex{products: products, index: index, logger: logger}
}

// NormalizeQuery bringt eine Suchanfrage in die Vergleichsform (NFKC, klein, getrimmt).
func NormalizeQuery(q string) string {
	return strings.TrimSpace(strings.ToLower(norm.NFKC.String(q)))
}

// Search liefert die getroffenen Produkte absteigend nach Trefferzahl. Bei
// gleichem Score entscheidet die Reihenfolge des ersten Treffers.
func (s *SearchIndex) Search(query string) []models.SearchResult {
	q := NormalizeQuery(query)
	if q == "" {
		return []models.SearchResult{}
	}

	scores := map[string]int{}
	var order []string
	hit := func(id string) {
		if _, ok := scores[id]; !ok {
			order = append(order, id)
		}
		scores[id]++
	}

	for _, word := range strings.Fields(q) {
		for _, p := range s.products {
			for _, kw := range p.Keywords {
				if matchesKeyword(word, kw) {
					hit(p.ID)
				}
			}
		}
		for _, e := range s.index {
			if matchesKeyword(word, e.Keyword) {
				for _, id := range e.ProductIDs {
					hit(id)
				}
			}
		}
	}

	byID := make(map[string]models.ProductSummary, len(s.products))
	for _, p := range s.products {
		byID[p.ID] = p
	}
	results := make([]models.SearchResult, 0, len(order))
	for _, id := range order {
		p, ok := byID[id]
		if !ok {
			s.logger.Debug("Index verweist auf unbekanntes Produkt", zap.String("product_id", id))
			continue
		}
		results = append(results, models.SearchResult{ProductSummary: p, MatchScore: scores[id]})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})
	return results
}

// matchesKeyword: Teilstring in beide Richtungen.
func matchesKeyword(word, keyword string) bool {
	keyword = strings.ToLower(keyword)
	return strings.Contains(keyword, word) || strings.Contains(word, keyword)
}
