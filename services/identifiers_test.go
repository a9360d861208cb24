package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDOI(t *testing.T) {
	tests := []struct{ in, want string }{
		{"10.1289/EHP.1103569", "10.1289/ehp.1103569"},
		{" https://doi.org/10.1289/ehp.1103569", "10.1289/ehp.1103569"},
		{"http://dx.doi.org/10.1/ABC", "10.1/abc"},
		{"doi:10.1/abc", "10.1/abc"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeDOI(tt.in), tt.in)
	}
}

func TestNormalizePMID(t *testing.T) {
	assert.Equal(t, "23221922", NormalizePMID("PMID: 23221922"))
	assert.Equal(t, "", NormalizePMID("n/a"))
}

func TestSameWork(t *testing.T) {
	assert.True(t, sameWork("a", "", "", "a", "", ""))
	assert.True(t, sameWork("a", "10.1/X", "", "b", "https://doi.org/10.1/x", ""))
	assert.True(t, sameWork("a", "", "123", "b", "", "PMID 123"))
	assert.False(t, sameWork("", "", "", "", "", ""))
	assert.False(t, sameWork("a", "10.1/x", "1", "b", "10.1/y", "2"))
}
