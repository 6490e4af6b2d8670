package models

// ParityReport compares the content identifiers of two locales.
// JSON keys keep the historic tr/en names whatever the configured locales are.
type ParityReport struct {
	Locales   [2]string `json:"-"`
	TR        int       `json:"tr"`
	EN        int       `json:"en"`
	BothCount int       `json:"-"`
	Both      []string  `json:"both"`
	OnlyTR    []string  `json:"onlyTr"`
	OnlyEN    []string  `json:"onlyEn"`
}

// InParity reports whether both locales carry the same identifiers
func (p ParityReport) InParity() bool {
	return len(p.OnlyTR) == 0 && len(p.OnlyEN) == 0
}
