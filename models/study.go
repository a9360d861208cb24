package models

// StudyType klassifiziert das Studiendesign eines Katalogeintrags.
type StudyType string

const (
	StudyEpidemiological StudyType = "epidemiological"
	StudyExperimental    StudyType = "experimental"
	StudyMetaAnalysis    StudyType = "meta-analysis"
	StudyReview          StudyType = "review"
	StudyCaseControl     StudyType = "case-control"
	StudyCohort          StudyType = "cohort"
)

// Quality ist die methodische Qualität einer Studie.
type Quality string

const (
	QualityHigh   Quality = "high"
	QualityMedium Quality = "medium"
	QualityLow    Quality = "low"
)

// HighImpactThreshold ist die Grenze, ab der eine Studie als "high impact" zählt.
const HighImpactThreshold = 90

// ChemicalStudy repräsentiert eine wissenschaftliche Studie im statischen Katalog.
// Einträge werden beim Start geladen und danach nie verändert.
type ChemicalStudy struct {
	ID                      string    `json:"id"`
	Title                   string    `json:"title"`
	Authors                 []string  `json:"authors"`
	Journal                 string    `json:"journal"`
	Year                    int       `json:"year"`
	DOI                     string    `json:"doi,omitempty"`
	PMID                    string    `json:"pmid,omitempty"`
	KeyFindings             string    `json:"keyFindings"`
	ImpactScore             int       `json:"impactScore"`
	StudyType               StudyType `json:"studyType"`
	Chemicals               []string  `json:"chemicals"`
	ToxicologicalDimensions []string  `json:"toxicologicalDimensions"`
	ProductCategories       []string  `json:"productCategories"`
	IsSeminal               bool      `json:"isSeminal"`
	MethodologicalQuality   Quality   `json:"methodologicalQuality"`
	RegulatoryImpact        []string  `json:"regulatoryImpact"`
}

// IsHighImpact meldet, ob die Studie die High-Impact-Schwelle erreicht.
func (s ChemicalStudy) IsHighImpact() bool {
	return s.ImpactScore >= HighImpactThreshold
}

// ToCitation konvertiert einen Katalogeintrag in die Citation-Form inkl. erweiterter Felder.
func (s ChemicalStudy) ToCitation() Citation {
	impact := s.ImpactScore
	return Citation{
		ID:                      s.ID,
		Title:                   s.Title,
		Authors:                 append([]string(nil), s.Authors...),
		Journal:                 s.Journal,
		Year:                    s.Year,
		DOI:                     s.DOI,
		PMID:                    s.PMID,
		KeyFindings:             s.KeyFindings,
		RelevanceScore:          s.ImpactScore,
		StudyType:               s.StudyType,
		Chemicals:               append([]string(nil), s.Chemicals...),
		ToxicologicalDimensions: append([]string(nil), s.ToxicologicalDimensions...),
		ImpactScore:             &impact,
		IsSeminal:               s.IsSeminal,
		MethodologicalQuality:   s.MethodologicalQuality,
		RegulatoryImpact:        append([]string(nil), s.RegulatoryImpact...),
	}
}
