package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"toxiscope/models"
	"toxiscope/providers"
)

type mapProvider struct {
	name    string
	records map[string]*models.PublicationRecord
	err     error
}

func (m *mapProvider) Name() string { return m.name }

func (m *mapProvider) Lookup(_ context.Context, pmid, doi string) (*models.PublicationRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	if rec, ok := m.records[pmid]; ok && pmid != "" {
		return rec, nil
	}
	if rec, ok := m.records[doi]; ok && doi != "" {
		return rec, nil
	}
	return nil, providers.ErrNotFound
}

func TestCatalogueVerifier(t *testing.T) {
	studies := []models.ChemicalStudy{
		{ID: "ok", Title: "Prenatal bisphenol A exposure and early childhood behavior", Year: 2009, PMID: "19736250", DOI: "10.1542/peds.2008-3259"},
		{ID: "off", Title: "Something else entirely", Year: 2010, DOI: "https://doi.org/10.1/X"},
		{ID: "gone", Title: "Missing", PMID: "1"},
		{ID: "bare", Title: "No identifiers"},
	}
	epmc := &mapProvider{name: "europepmc", records: map[string]*models.PublicationRecord{
		"19736250": {Title: "Prenatal Bisphenol A Exposure and Early Childhood Behavior.", Year: 2009, PMID: "19736250", DOI: "10.1542/PEDS.2008-3259"},
		"10.1/x":   {Title: "A different paper", Year: 2012, DOI: "10.1/x"},
	}}

	v := NewCatalogueVerifier(zap.NewNop(), 2, epmc)
	findings, err := v.Verify(context.Background(), studies)
	require.NoError(t, err)
	require.Len(t, findings, 4)

	assert.Equal(t, VerificationOK, findings[0].Status)
	assert.Empty(t, findings[0].Issues)

	assert.Equal(t, "off", findings[1].StudyID)
	assert.Equal(t, VerificationMismatch, findings[1].Status)
	assert.Len(t, findings[1].Issues, 2)

	assert.Equal(t, VerificationNotFound, findings[2].Status)
	assert.Equal(t, VerificationSkipped, findings[3].Status)
	assert.Empty(t, findings[3].Provider)

	summary := SummarizeFindings(findings)
	assert.Equal(t, 1, summary[VerificationOK])
	assert.Equal(t, 1, summary[VerificationMismatch])
}

func TestCatalogueVerifierProviderError(t *testing.T) {
	v := NewCatalogueVerifier(zap.NewNop(), 0, &mapProvider{name: "down", err: errors.New("timeout")})
	findings, err := v.Verify(context.Background(), []models.ChemicalStudy{{ID: "x", PMID: "5"}})
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, VerificationError, findings[0].Status)
	assert.Equal(t, []string{"timeout"}, findings[0].Issues)
}

func TestCatalogueVerifierCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	v := NewCatalogueVerifier(zap.NewNop(), 1, &mapProvider{name: "p"})
	_, err := v.Verify(ctx, []models.ChemicalStudy{{ID: "x", PMID: "5"}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSimilarTitle(t *testing.T) {
	assert.True(t, similarTitle("PFOA and kidney cancer", "PFOA and Kidney-Cancer."))
	assert.True(t, similarTitle("Kidney cancer", "PFOA and kidney cancer in the C8 cohort"))
	assert.False(t, similarTitle("PFOA and kidney cancer", "BPA and obesity"))
	assert.True(t, similarTitle("", "anything"))
}
