package services

import (
	"errors"
	"time"

	"court_records_go/models"

	"gorm.io/gorm"
)

// CasePayload is the create/update request body for cases. On update
// only fir_no is merge-eligible; every other field of a stored case is
// immutable by design, not by omission.
type CasePayload struct {
	CaseNo             string    `json:"case_no"`
	PetitionerName     string    `json:"petitioner_name"`
	PetitionerAadharID string    `json:"petitioner_aadhar_id"`
	RespondentName     string    `json:"respondent_name"`
	RespondentAadharID string    `json:"respondent_aadhar_id"`
	FIRNo              string    `json:"fir_no"`
	DateOfFiling       time.Time `json:"date_of_filing"`
}

// FindCaseByNo returns the case with the given case number, or nil when
// no such case exists.
func FindCaseByNo(db *gorm.DB, caseNo string) (*models.Case, error) {
	var courtCase models.Case
	err := db.First(&courtCase, "case_no = ?", caseNo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &courtCase, nil
}

func validateCaseNo(caseNo string, violations []Violation) []Violation {
	if caseNo == "" {
		return append(violations, *MissingField("case_no"))
	}
	if !ValidateCaseNumber(caseNo) {
		return append(violations, Violation{Field: "case_no", Message: "case_no is not valid"})
	}
	return violations
}

// CreateCase registers a new case. The case number is the natural key
// and a duplicate is a hard rejection.
func CreateCase(db *gorm.DB, payload CasePayload) (*Result, error) {
	var violations []Violation

	violations = validateCaseNo(payload.CaseNo, violations)

	if payload.PetitionerName == "" {
		violations = append(violations, *MissingField("petitioner_name"))
	}
	if payload.PetitionerAadharID == "" {
		violations = append(violations, *MissingField("petitioner_aadhar_id"))
	} else if v := DigitField("petitioner_aadhar_id", payload.PetitionerAadharID, AadharDigits); v != nil {
		violations = append(violations, *v)
	}

	if payload.RespondentName == "" {
		violations = append(violations, *MissingField("respondent_name"))
	}
	if payload.RespondentAadharID == "" {
		violations = append(violations, *MissingField("respondent_aadhar_id"))
	} else if v := DigitField("respondent_aadhar_id", payload.RespondentAadharID, AadharDigits); v != nil {
		violations = append(violations, *v)
	}

	if payload.FIRNo != "" {
		if v := DigitField("fir_no", payload.FIRNo, FIRDigits); v != nil {
			violations = append(violations, *v)
		}
	}

	if len(violations) > 0 {
		return failedValidation(violations), nil
	}

	existing, err := FindCaseByNo(db, payload.CaseNo)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &Result{Outcome: OutcomeAlreadyExists}, nil
	}

	courtCase := models.Case{
		CaseNo:             payload.CaseNo,
		PetitionerName:     payload.PetitionerName,
		PetitionerAadharID: payload.PetitionerAadharID,
		RespondentName:     payload.RespondentName,
		RespondentAadharID: payload.RespondentAadharID,
		FIRNo:              payload.FIRNo,
		DateOfFiling:       payload.DateOfFiling, // zero value defaults to now in BeforeCreate
	}

	if err := db.Create(&courtCase).Error; err != nil {
		return nil, err
	}

	return &Result{Outcome: OutcomeCreated, Record: &courtCase}, nil
}

// UpdateCase applies a partial update keyed by case number. Only the FIR
// number is merge-eligible; a payload without it is a no-op update.
func UpdateCase(db *gorm.DB, payload CasePayload) (*Result, error) {
	var violations []Violation
	totalUpdates := 0

	violations = validateCaseNo(payload.CaseNo, violations)

	if payload.FIRNo != "" {
		if v := DigitField("fir_no", payload.FIRNo, FIRDigits); v != nil {
			violations = append(violations, *v)
		} else {
			totalUpdates++
		}
	}

	if len(violations) > 0 {
		return failedValidation(violations), nil
	}
	if totalUpdates == 0 {
		return noEffectiveChange(), nil
	}

	existing, err := FindCaseByNo(db, payload.CaseNo)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return notFound(), nil
	}

	// fir_no is the only mutable case field
	existing.FIRNo = payload.FIRNo

	if err := db.Save(existing).Error; err != nil {
		return nil, err
	}

	return &Result{Outcome: OutcomeUpdated, Record: existing}, nil
}

// ShowCase validates and fetches a case by number, returning it encoded
// as an opaque blob.
func ShowCase(db *gorm.DB, caseNo string) (*Result, error) {
	violations := validateCaseNo(caseNo, nil)
	if len(violations) > 0 {
		return failedValidation(violations), nil
	}

	existing, err := FindCaseByNo(db, caseNo)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return notFound(), nil
	}

	encoded, err := EncodeRecord(existing)
	if err != nil {
		return nil, err
	}

	return &Result{Outcome: OutcomeFound, Record: encoded}, nil
}
