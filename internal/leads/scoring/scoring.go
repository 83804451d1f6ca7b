// Package scoring decides whether a lead is sales-qualified from its
// website flag and enrichment record. It is pure: no I/O, no state.
package scoring

import (
	"regexp"
	"strconv"
	"strings"

	"lead_scoring_backend/internal/enrichment/domain"
)

const (
	pointsHasWebsite = 10

	pointsSize11To50  = 20
	pointsSize51To200 = 15
	pointsSize201Plus = 10

	pointsTargetCountry = 10

	penaltyMissingField = -5

	// QualificationThreshold is the minimum score of a qualified lead.
	QualificationThreshold = 25
)

var targetCountries = map[string]struct{}{
	"US": {},
	"UK": {},
	"CA": {},
}

var digitRun = regexp.MustCompile(`\d+`)

// Result is the outcome of scoring a lead.
type Result struct {
	Score     int  `json:"score"`
	Qualified bool `json:"qualified"`
}

// Breakdown holds the points contributed by each signal. Its Total may be
// negative; Calculate floors it at zero.
type Breakdown struct {
	Website     int `json:"website"`
	CompanySize int `json:"companySize"`
	Country     int `json:"country"`
	CompanyName int `json:"companyName"`
	Industry    int `json:"industry"`
}

// Total sums every signal.
func (b Breakdown) Total() int {
	return b.Website + b.CompanySize + b.Country + b.CompanyName + b.Industry
}

// Calculate scores a lead. It is defined for every input, including an
// empty record.
func Calculate(hasWebsite bool, rec domain.Record) Result {
	score := max(Explain(hasWebsite, rec).Total(), 0)
	return Result{
		Score:     score,
		Qualified: score >= QualificationThreshold,
	}
}

// Explain returns the per-signal points behind Calculate.
func Explain(hasWebsite bool, rec domain.Record) Breakdown {
	var b Breakdown
	if hasWebsite {
		b.Website = pointsHasWebsite
	}
	b.CompanySize = companySizePoints(rec.CompanySize)
	b.Country = countryPoints(rec.Country)
	if domain.Value(rec.CompanyName) == "" {
		b.CompanyName = penaltyMissingField
	}
	if domain.Value(rec.Industry) == "" {
		b.Industry = penaltyMissingField
	}
	return b
}

// companySizePoints bands a size bucket by its first number, e.g. "51-200" -> 51.
func companySizePoints(size *string) int {
	lower, ok := LeadingNumber(domain.Value(size))
	if !ok {
		return penaltyMissingField
	}

	switch {
	case lower >= 201:
		return pointsSize201Plus
	case lower >= 51:
		return pointsSize51To200
	case lower >= 11:
		return pointsSize11To50
	default:
		return 0
	}
}

func countryPoints(country *string) int {
	code := strings.ToUpper(domain.Value(country))
	if code == "" {
		return penaltyMissingField
	}
	if _, ok := targetCountries[code]; ok {
		return pointsTargetCountry
	}
	return 0
}

// LeadingNumber extracts the first run of ASCII digits in s. A run too
// large for int saturates, so it still lands in the top band.
func LeadingNumber(s string) (int, bool) {
	run := digitRun.FindString(s)
	if run == "" {
		return 0, false
	}
	n, err := strconv.Atoi(run)
	if err != nil {
		return int(^uint(0) >> 1), true
	}
	return n, true
}
