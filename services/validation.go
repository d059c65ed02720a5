package services

import (
	"fmt"
	"net/mail"
	"strings"

	"court_records_go/models"
)

// Digit counts for identifier-like fields
const (
	AadharDigits   = 12
	PhoneDigits    = 10
	PostcodeDigits = 6
	FIRDigits      = 4
)

// IsDigits reports whether s is non-empty and consists only of decimal digits
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// MissingField builds the violation for a required field that is absent
func MissingField(field string) *Violation {
	return &Violation{Field: field, Message: fmt.Sprintf("%s field is missing", field)}
}

// DigitField validates an identifier-like value that must be exactly the
// given number of decimal digits. Returns nil when valid.
func DigitField(field, value string, digits int) *Violation {
	if !IsDigits(value) || len(value) != digits {
		return &Violation{
			Field:   field,
			Message: fmt.Sprintf("%s field length should be exactly %d digits", field, digits),
		}
	}
	return nil
}

// NormalizeEnum maps raw enumeration input to its stored form: trimmed
// and upper-cased. Validation always runs on the normalized value.
func NormalizeEnum(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// EnumField checks a normalized value against a closed set of allowed values
func EnumField(field, value string, allowed []string) *Violation {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return &Violation{
		Field:   field,
		Message: fmt.Sprintf("%s should be one of these: %s", field, strings.Join(allowed, ", ")),
	}
}

// EmailField validates address syntax with the standard library parser
func EmailField(field, value string) *Violation {
	if _, err := mail.ParseAddress(value); err != nil {
		return &Violation{Field: field, Message: fmt.Sprintf("%s is not valid", field)}
	}
	return nil
}

// ValidateAddress applies the all-or-nothing rule for address value
// objects: postcode (6 digits), line_1, district and state must all be
// present or the whole address is rejected. The prefix names the address
// position in the payload (e.g. "address", "court.address").
func ValidateAddress(prefix string, addr *models.Address) []Violation {
	var violations []Violation

	if addr.Postcode == "" {
		violations = append(violations, *MissingField(prefix+".postcode"))
	} else if v := DigitField(prefix+".postcode", addr.Postcode, PostcodeDigits); v != nil {
		violations = append(violations, *v)
	}

	if addr.Line1 == "" {
		violations = append(violations, *MissingField(prefix+".line_1"))
	}
	if addr.District == "" {
		violations = append(violations, *MissingField(prefix+".district"))
	}
	if addr.State == "" {
		violations = append(violations, *MissingField(prefix+".state"))
	}

	return violations
}

// ValidateCourt checks a procedure court: name and type are required,
// the type must be a known court level, and a nested address follows the
// all-or-nothing address rule. The court type is normalized in place.
func ValidateCourt(prefix string, court *models.Court) []Violation {
	var violations []Violation

	if court.Name == "" {
		violations = append(violations, *MissingField(prefix+".name"))
	}

	court.Type = NormalizeEnum(court.Type)
	if court.Type == "" {
		violations = append(violations, *MissingField(prefix+".type"))
	} else if v := EnumField(prefix+".type", court.Type, models.CourtTypes); v != nil {
		violations = append(violations, *v)
	}

	if court.Address != nil {
		violations = append(violations, ValidateAddress(prefix+".address", court.Address)...)
	}

	return violations
}
