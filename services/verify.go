package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"

	"toxiscope/models"
	"toxiscope/providers"
)

// VerificationStatus ist das Ergebnis eines Abgleichs Katalog gegen Provider.
type VerificationStatus string

const (
	VerificationOK       VerificationStatus = "ok"
	VerificationMismatch VerificationStatus = "mismatch"
	VerificationNotFound VerificationStatus = "not_found"
	VerificationError    VerificationStatus = "error"
	VerificationSkipped  VerificationStatus = "skipped"
)

// VerificationFinding ist das Ergebnis für eine Studie bei einem Provider.
type VerificationFinding struct {
	StudyID  string                    `json:"studyId"`
	Provider string                    `json:"provider,omitempty"`
	Status   VerificationStatus        `json:"status"`
	Issues   []string                  `json:"issues,omitempty"`
	Record   *models.PublicationRecord `json:"record,omitempty"`
}

// CatalogueVerifier gleicht Katalogeinträge mit externen Metadaten-Diensten ab.
type CatalogueVerifier struct {
	providers   []providers.Provider
	concurrency int
	logger      *zap.Logger
}

// NewCatalogueVerifier erstellt den Verifier. concurrency <= 0 bedeutet 4.
func NewCatalogueVerifier(logger *zap.Logger, concurrency int, ps ...providers.Provider) *CatalogueVerifier {
	if concurrency <= 0 {
		concurrency = 4
	}
	return &CatalogueVerifier{providers: ps, concurrency: concurrency, logger: logger}
}

// Verify prüft alle Studien gegen alle Provider. Die Reihenfolge der Findings
// folgt Studien- und Provider-Reihenfolge.
func (v *CatalogueVerifier) Verify(ctx context.Context, studies []models.ChemicalStudy) ([]VerificationFinding, error) {
	perStudy := make([][]VerificationFinding, len(studies))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(v.concurrency)
	for i, s := range studies {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			perStudy[i] = v.verifyStudy(gctx, s)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []VerificationFinding
	for _, f := range perStudy {
		out = append(out, f...)
	}
	return out, nil
}

func (v *CatalogueVerifier) verifyStudy(ctx context.Context, s models.ChemicalStudy) []VerificationFinding {
	pmid, doi := NormalizePMID(s.PMID), NormalizeDOI(s.DOI)
	if pmid == "" && doi == "" {
		return []VerificationFinding{{StudyID: s.ID, Status: VerificationSkipped, Issues: []string{"no pmid or doi"}}}
	}

	out := make([]VerificationFinding, 0, len(v.providers))
	for _, p := range v.providers {
		log := v.logger.With(zap.String("study", s.ID), zap.String("provider", p.Name()))
		rec, err := p.Lookup(ctx, pmid, doi)
		switch {
		case errors.Is(err, providers.ErrNotFound):
			out = append(out, VerificationFinding{StudyID: s.ID, Provider: p.Name(), Status: VerificationNotFound})
		case err != nil:
			log.Warn("Provider-Abfrage fehlgeschlagen", zap.Error(err))
			out = append(out, VerificationFinding{StudyID: s.ID, Provider: p.Name(), Status: VerificationError, Issues: []string{err.Error()}})
		default:
			issues := compareRecord(s, rec)
			status := VerificationOK
			if len(issues) > 0 {
				status = VerificationMismatch
				log.Info("Abweichung gefunden", zap.Strings("issues", issues))
			}
			out = append(out, VerificationFinding{StudyID: s.ID, Provider: p.Name(), Status: status, Issues: issues, Record: rec})
		}
	}
	return out
}

// compareRecord listet Abweichungen zwischen Katalogeintrag und Provider-Datensatz.
func compareRecord(s models.ChemicalStudy, rec *models.PublicationRecord) []string {
	var issues []string
	if rec.Title != "" && !similarTitle(s.Title, rec.Title) {
		issues = append(issues, fmt.Sprintf("title differs: %q", rec.Title))
	}
	if rec.Year != 0 && s.Year != 0 && rec.Year != s.Year {
		issues = append(issues, fmt.Sprintf("year differs: catalogue %d, provider %d", s.Year, rec.Year))
	}
	if d1, d2 := NormalizeDOI(s.DOI), NormalizeDOI(rec.DOI); d1 != "" && d2 != "" && d1 != d2 {
		issues = append(issues, fmt.Sprintf("doi differs: %s", rec.DOI))
	}
	if p1, p2 := NormalizePMID(s.PMID), NormalizePMID(rec.PMID); p1 != "" && p2 != "" && p1 != p2 {
		issues = append(issues, fmt.Sprintf("pmid differs: %s", rec.PMID))
	}
	return issues
}

// similarTitle vergleicht Titel ohne Satzzeichen und Groß-/Kleinschreibung.
// Gekürzte Katalogtitel gelten als gleich, solange sie im Provider-Titel enthalten sind.
func similarTitle(a, b string) bool {
	na, nb := titleKey(a), titleKey(b)
	if na == "" || nb == "" {
		return true
	}
	return na == nb || strings.Contains(nb, na) || strings.Contains(na, nb)
}

func titleKey(s string) string {
	s = strings.ToLower(norm.NFKC.String(s))
	var b strings.Builder
	space := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			space = false
		case !space && b.Len() > 0:
			b.WriteByte(' ')
			space = true
		}
	}
	return strings.TrimSpace(b.String())
}

// SummarizeFindings zählt Findings pro Status.
func SummarizeFindings(findings []VerificationFinding) map[VerificationStatus]int {
	out := map[VerificationStatus]int{}
	for _, f := range findings {
		out[f.Status]++
	}
	return out
}
