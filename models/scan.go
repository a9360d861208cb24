package models

// ScanProduct ist ein Eintrag der Produkttabelle, gegen die Scans simuliert werden.
type ScanProduct struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	RiskLevel        RiskLevel `json:"riskLevel"`
	Concerns         []string  `json:"concerns"`
	SaferAlternative string    `json:"saferAlternative"`
	DetectedKeywords []string  `json:"detectedKeywords,omitempty"`
}

// DetectedProduct ist ein im Scan erkanntes Produkt für den Home-Katalog.
type DetectedProduct struct {
	ScanProduct
	AddedAt string `json:"addedAt"`
	ScanID  string `json:"scanId"`
}

// ScanResult ist die Antwort eines (simulierten) Scans.
type ScanResult struct {
	Success          bool              `json:"success"`
	DetectedProducts []DetectedProduct `json:"detectedProducts"`
	ScanID           string            `json:"scanId"`
	Timestamp        string            `json:"timestamp"`
}

// HomeProduct ist ein Produkt im Inventar des Nutzers. Die Persistenz liegt
// vorerst im localStorage des Clients.
type HomeProduct struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	RiskLevel        RiskLevel `json:"riskLevel"`
	Concerns         []string  `json:"concerns"`
	SaferAlternative string    `json:"saferAlternative"`
	DetectedKeywords []string  `json:"detectedKeywords,omitempty"`
	AddedAt          string    `json:"addedAt"`
	ScanID           string    `json:"scanId,omitempty"`
}
