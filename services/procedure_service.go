package services

import (
	"errors"
	"time"

	"court_records_go/models"

	"gorm.io/gorm"
)

// ProcedurePayload is the create/update request body for procedures. On
// update the procedure is addressed by (case_no, id).
type ProcedurePayload struct {
	CaseNo              string        `json:"case_no"`
	SeqNo               int           `json:"id"`
	Court               *models.Court `json:"court"`
	Motive              string        `json:"motive"`
	ScheduledDate       time.Time     `json:"scheduled_date"`
	Status              string        `json:"status"`
	PetAdvocateAadharID string        `json:"pet_advocate_aadhar_id"`
	ResAdvocateAadharID string        `json:"res_advocate_aadhar_id"`
}

// ProcedureListQuery resolves the case to list procedures for. When
// case_no is absent the case is looked up by the petitioner's aadhar id
// first, then the respondent's.
type ProcedureListQuery struct {
	CaseNo             string `query:"case_no" json:"case_no"`
	PetitionerAadharID string `query:"petitioner_aadhar_id" json:"petitioner_aadhar_id"`
	RespondentAadharID string `query:"respondent_aadhar_id" json:"respondent_aadhar_id"`
}

// FindProcedure returns the procedure keyed by (case_no, seq_no), or nil
// when no such procedure exists.
func FindProcedure(db *gorm.DB, caseNo string, seqNo int) (*models.Procedure, error) {
	var procedure models.Procedure
	err := db.First(&procedure, "case_no = ? AND seq_no = ?", caseNo, seqNo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &procedure, nil
}

// nextProcedureSeq assigns the next sequence number within one case. The
// composite unique index on (case_no, seq_no) turns a concurrent
// assignment of the same number into a constraint failure instead of a
// silent duplicate.
func nextProcedureSeq(db *gorm.DB, caseNo string) (int, error) {
	var maxSeq int
	err := db.Model(&models.Procedure{}).
		Where("case_no = ?", caseNo).
		Select("COALESCE(MAX(seq_no), 0)").
		Scan(&maxSeq).Error
	if err != nil {
		return 0, err
	}
	return maxSeq + 1, nil
}

// CreateProcedure schedules a new procedure against an existing case.
// The referenced case must exist before anything is written.
func CreateProcedure(db *gorm.DB, payload ProcedurePayload) (*Result, error) {
	payload.Motive = NormalizeEnum(payload.Motive)
	payload.Status = NormalizeEnum(payload.Status)

	var violations []Violation

	violations = validateCaseNo(payload.CaseNo, violations)

	if payload.Court == nil {
		violations = append(violations, *MissingField("court"))
	} else {
		violations = append(violations, ValidateCourt("court", payload.Court)...)
	}

	if payload.Motive == "" {
		violations = append(violations, *MissingField("motive"))
	} else if v := EnumField("motive", payload.Motive, models.ProcedureMotives); v != nil {
		violations = append(violations, *v)
	}

	if payload.Status != "" {
		if v := EnumField("status", payload.Status, models.ProcedureStatuses); v != nil {
			violations = append(violations, *v)
		}
	}

	if payload.ScheduledDate.IsZero() {
		violations = append(violations, *MissingField("scheduled_date"))
	}

	if payload.PetAdvocateAadharID == "" {
		violations = append(violations, *MissingField("pet_advocate_aadhar_id"))
	} else if v := DigitField("pet_advocate_aadhar_id", payload.PetAdvocateAadharID, AadharDigits); v != nil {
		violations = append(violations, *v)
	}

	if payload.ResAdvocateAadharID == "" {
		violations = append(violations, *MissingField("res_advocate_aadhar_id"))
	} else if v := DigitField("res_advocate_aadhar_id", payload.ResAdvocateAadharID, AadharDigits); v != nil {
		violations = append(violations, *v)
	}

	if len(violations) > 0 {
		return failedValidation(violations), nil
	}

	referencedCase, err := FindCaseByNo(db, payload.CaseNo)
	if err != nil {
		return nil, err
	}
	if referencedCase == nil {
		return notFound(), nil
	}

	seqNo, err := nextProcedureSeq(db, payload.CaseNo)
	if err != nil {
		return nil, err
	}

	procedure := models.Procedure{
		CaseNo:              payload.CaseNo,
		SeqNo:               seqNo,
		Court:               payload.Court,
		Motive:              payload.Motive,
		ScheduledDate:       payload.ScheduledDate,
		Status:              payload.Status,
		PetAdvocateAadharID: payload.PetAdvocateAadharID,
		ResAdvocateAadharID: payload.ResAdvocateAadharID,
	}
	if procedure.Status == "" {
		procedure.Status = models.ProcedureStatusScheduled
	}

	if err := db.Create(&procedure).Error; err != nil {
		return nil, err
	}

	return &Result{Outcome: OutcomeCreated, Record: &procedure}, nil
}

// UpdateProcedure applies a partial update keyed by (case_no, id).
func UpdateProcedure(db *gorm.DB, payload ProcedurePayload) (*Result, error) {
	payload.Motive = NormalizeEnum(payload.Motive)
	payload.Status = NormalizeEnum(payload.Status)

	var violations []Violation
	totalUpdates := 0

	violations = validateCaseNo(payload.CaseNo, violations)

	if payload.SeqNo <= 0 {
		violations = append(violations, *MissingField("id"))
	}

	courtValid := false
	if payload.Court != nil {
		if courtViolations := ValidateCourt("court", payload.Court); len(courtViolations) > 0 {
			violations = append(violations, courtViolations...)
		} else {
			courtValid = true
			totalUpdates++
		}
	}

	if payload.Motive != "" {
		if v := EnumField("motive", payload.Motive, models.ProcedureMotives); v != nil {
			violations = append(violations, *v)
		} else {
			totalUpdates++
		}
	}

	if payload.Status != "" {
		if v := EnumField("status", payload.Status, models.ProcedureStatuses); v != nil {
			violations = append(violations, *v)
		} else {
			totalUpdates++
		}
	}

	if !payload.ScheduledDate.IsZero() {
		totalUpdates++
	}

	if payload.PetAdvocateAadharID != "" {
		if v := DigitField("pet_advocate_aadhar_id", payload.PetAdvocateAadharID, AadharDigits); v != nil {
			violations = append(violations, *v)
		} else {
			totalUpdates++
		}
	}

	if payload.ResAdvocateAadharID != "" {
		if v := DigitField("res_advocate_aadhar_id", payload.ResAdvocateAadharID, AadharDigits); v != nil {
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

	existing, err := FindProcedure(db, payload.CaseNo, payload.SeqNo)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return notFound(), nil
	}

	mergeProcedure(existing, payload, courtValid)

	if err := db.Save(existing).Error; err != nil {
		return nil, err
	}

	return &Result{Outcome: OutcomeUpdated, Record: existing}, nil
}

// mergeProcedure overlays present payload fields onto the stored
// procedure. Must stay in step with the counter in UpdateProcedure.
func mergeProcedure(existing *models.Procedure, payload ProcedurePayload, courtValid bool) {
	if courtValid {
		existing.Court = payload.Court
	}
	if payload.Motive != "" {
		existing.Motive = payload.Motive
	}
	if payload.Status != "" {
		existing.Status = payload.Status
	}
	if !payload.ScheduledDate.IsZero() {
		existing.ScheduledDate = payload.ScheduledDate
	}
	if payload.PetAdvocateAadharID != "" {
		existing.PetAdvocateAadharID = payload.PetAdvocateAadharID
	}
	if payload.ResAdvocateAadharID != "" {
		existing.ResAdvocateAadharID = payload.ResAdvocateAadharID
	}
}

// ListProcedures returns every procedure of one case, encoded as an
// opaque blob. When no case number is supplied the case is resolved from
// the petitioner's aadhar id, falling back to the respondent's only when
// no case matches the petitioner.
func ListProcedures(db *gorm.DB, query ProcedureListQuery) (*Result, error) {
	caseNo := query.CaseNo

	if caseNo == "" && query.PetitionerAadharID != "" {
		var petitionerCase models.Case
		err := db.First(&petitionerCase, "petitioner_aadhar_id = ?", query.PetitionerAadharID).Error
		if err == nil {
			caseNo = petitionerCase.CaseNo
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if caseNo == "" && query.RespondentAadharID != "" {
		var respondentCase models.Case
		err := db.First(&respondentCase, "respondent_aadhar_id = ?", query.RespondentAadharID).Error
		if err == nil {
			caseNo = respondentCase.CaseNo
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if caseNo == "" {
		return notFound(), nil
	}

	var procedures []models.Procedure
	if err := db.Where("case_no = ?", caseNo).Order("seq_no asc").Find(&procedures).Error; err != nil {
		return nil, err
	}

	encoded, err := EncodeRecord(procedures)
	if err != nil {
		return nil, err
	}

	return &Result{Outcome: OutcomeFound, Record: encoded}, nil
}
