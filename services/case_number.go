package services

import "fmt"

// CaseNumberComponents contains the positional parts of a case number.
// Case number format (9 characters):
// YY + JJ + TT + SSS = year(2) + jurisdiction(2) + case type(2) + sequence(3)
// Example: 24MH01001 = year 24, jurisdiction MH, type 01, sequence 001
type CaseNumberComponents struct {
	Year         string // 2 chars (positions 0-1), must be numeric
	Jurisdiction string // 2 chars (positions 2-3)
	CaseType     string // 2 chars (positions 4-5)
	Sequence     string // 3 chars (positions 6-8), must be numeric
}

// ParseCaseNumber splits a case number into its positional components
func ParseCaseNumber(caseNo string) (*CaseNumberComponents, error) {
	if len(caseNo) < 7 {
		return nil, fmt.Errorf("case number must be at least 7 characters, got %d", len(caseNo))
	}

	return &CaseNumberComponents{
		Year:         caseNo[0:2],
		Jurisdiction: caseNo[2:4],
		CaseType:     caseNo[4:6],
		Sequence:     caseNo[6:],
	}, nil
}

// ValidateCaseNumber reports whether a case number is well formed: the
// year segment numeric and the sequence segment exactly 3 numeric digits.
// Jurisdiction and case-type segments are extracted but not checked
// against a code table; no authoritative list exists, so they stay
// permissive.
func ValidateCaseNumber(caseNo string) bool {
	components, err := ParseCaseNumber(caseNo)
	if err != nil {
		return false
	}

	if !IsDigits(components.Year) {
		return false
	}
	if len(components.Sequence) != 3 || !IsDigits(components.Sequence) {
		return false
	}

	return true
}
