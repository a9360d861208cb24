package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"toxiscope/models"
)

// ErrNotFound meldet ein Provider, wenn er zur PMID/DOI keinen Datensatz kennt.
var ErrNotFound = errors.New("publication not found")

// Provider ist das Interface, das jeder Metadaten-Dienst (z.B. Europe PMC, Unpaywall) implementieren muss.
type Provider interface {
	// Lookup löst eine Studie über PMID oder DOI auf. Mindestens eins von beiden muss gesetzt sein.
	Lookup(ctx context.Context, pmid, doi string) (*models.PublicationRecord, error)

	// Name gibt den eindeutigen Namen des Providers zurück (z.B. "europepmc").
	Name() string
}

const userAgent = "toxiscope-catalogue-check/1.0"

// userAgentTransport fügt jeder Anfrage einen User-Agent-Header hinzu.
type userAgentTransport struct {
	Transport http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", userAgent)
	return t.Transport.RoundTrip(req)
}

// NewHTTPClient ist der gemeinsame HTTP-Client der Provider.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: &userAgentTransport{Transport: http.DefaultTransport},
	}
}

type guarded struct {
	Provider
	breaker *gobreaker.CircuitBreaker
}

// WithBreaker schützt einen Provider mit einem Circuit Breaker. ErrNotFound
// zählt nicht als Fehler.
func WithBreaker(p Provider, failureThreshold uint32, logger *zap.Logger) Provider {
	if failureThreshold == 0 {
		failureThreshold = 5
	}
	settings := gobreaker.Settings{
		Name:        p.Name(),
		MaxRequests: 1,
		Interval:    30 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failureThreshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				zap.String("provider", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	}
	return &guarded{Provider: p, breaker: gobreaker.NewCircuitBreaker(settings)}
}

func (g *guarded) Lookup(ctx context.Context, pmid, doi string) (*models.PublicationRecord, error) {
	res, err := g.breaker.Execute(func() (interface{}, error) {
		return g.Provider.Lookup(ctx, pmid, doi)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%s: %w", g.Name(), err)
		}
		return nil, err
	}
	return res.(*models.PublicationRecord), nil
}
