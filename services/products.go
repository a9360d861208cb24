package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"toxiscope/models"
)

// ErrProductNotFound: keine Bewertung zur Produkt-ID.
var ErrProductNotFound = errors.New("product evaluation not found")

// EvaluationLookup liefert die statische Bewertung zu einer ID.
type EvaluationLookup func(id string) (models.ProductEvaluation, bool)

// ProductService liefert angereicherte Produktbewertungen.
type ProductService struct {
	lookup  EvaluationLookup
	matcher *StudyMatcher
	delay   time.Duration
	logger  *zap.Logger
}

func NewProductService(lookup EvaluationLookup, matcher *StudyMatcher, delay time.Duration, logger *zap.Logger) *ProductService {
	return &ProductService{lookup: lookup, matcher: matcher, delay: delay, logger: logger}
}

// Evaluate sucht die Bewertung und reichert sie pro Aufruf neu an.
func (s *ProductService) Evaluate(ctx context.Context, id string) (models.EnrichedEvaluation, error) {
	if err := sleepCtx(ctx, s.delay); err != nil {
		return models.EnrichedEvaluation{}, err
	}
	eval, ok := s.lookup(id)
	if !ok {
		s.logger.Debug("Produktbewertung nicht gefunden", zap.String("product_id", id))
		return models.EnrichedEvaluation{}, ErrProductNotFound
	}
	return s.matcher.Enrich(eval), nil
}

// Bibliography liefert das nummerierte Literaturverzeichnis einer Bewertung.
func (s *ProductService) Bibliography(ctx context.Context, id string) ([]Reference, []string, error) {
	eval, ok := s.lookup(id)
	if !ok {
		return nil, nil, ErrProductNotFound
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	refs, warnings := BuildBibliography(s.matcher.Enrich(eval))
	return refs, warnings, nil
}
