package services

import (
	"errors"

	"court_records_go/models"

	"gorm.io/gorm"
)

// AdvocatePayload is the create/update request body for advocates. The
// enumeration fields accept any casing and are normalized before
// validation.
type AdvocatePayload struct {
	AadharID   string `json:"aadhar_id"`
	Type       string `json:"type"`
	RegNo      string `json:"reg_no"`
	Status     string `json:"status"`
	WorkStatus string `json:"work_status"`
}

// FindAdvocateByAadhar returns the advocate with the given aadhar id, or
// nil when no such advocate exists.
func FindAdvocateByAadhar(db *gorm.DB, aadharID string) (*models.Advocate, error) {
	var advocate models.Advocate
	err := db.First(&advocate, "aadhar_id = ?", aadharID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &advocate, nil
}

// CreateAdvocate registers a new advocate. Unlike user signup, an
// existing aadhar id is a hard rejection.
func CreateAdvocate(db *gorm.DB, payload AdvocatePayload) (*Result, error) {
	payload.Type = NormalizeEnum(payload.Type)
	payload.Status = NormalizeEnum(payload.Status)
	payload.WorkStatus = NormalizeEnum(payload.WorkStatus)

	var violations []Violation

	if payload.AadharID == "" {
		violations = append(violations, *MissingField("aadhar_id"))
	} else if v := DigitField("aadhar_id", payload.AadharID, AadharDigits); v != nil {
		violations = append(violations, *v)
	}

	if payload.Type == "" {
		violations = append(violations, *MissingField("type"))
	} else if v := EnumField("type", payload.Type, models.CourtTypes); v != nil {
		violations = append(violations, *v)
	}

	if payload.RegNo == "" {
		violations = append(violations, *MissingField("reg_no"))
	}

	if payload.Status != "" {
		if v := EnumField("status", payload.Status, models.AdvocateStatuses); v != nil {
			violations = append(violations, *v)
		}
	}

	if payload.WorkStatus != "" {
		if v := EnumField("work_status", payload.WorkStatus, models.AdvocateWorkStatuses); v != nil {
			violations = append(violations, *v)
		}
	}

	if len(violations) > 0 {
		return failedValidation(violations), nil
	}

	existing, err := FindAdvocateByAadhar(db, payload.AadharID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &Result{Outcome: OutcomeAlreadyExists}, nil
	}

	advocate := models.Advocate{
		AadharID:   payload.AadharID,
		Type:       payload.Type,
		RegNo:      payload.RegNo,
		Status:     payload.Status,
		WorkStatus: payload.WorkStatus,
	}
	if advocate.Status == "" {
		advocate.Status = models.AdvocateStatusPending
	}
	if advocate.WorkStatus == "" {
		advocate.WorkStatus = models.AdvocateWorkActive
	}

	if err := db.Create(&advocate).Error; err != nil {
		return nil, err
	}

	return &Result{Outcome: OutcomeCreated, Record: &advocate}, nil
}

// UpdateAdvocate applies a partial update keyed by aadhar id. Status is
// freely settable; approval order is not enforced here.
func UpdateAdvocate(db *gorm.DB, payload AdvocatePayload) (*Result, error) {
	payload.Type = NormalizeEnum(payload.Type)
	payload.Status = NormalizeEnum(payload.Status)
	payload.WorkStatus = NormalizeEnum(payload.WorkStatus)

	var violations []Violation
	totalUpdates := 0

	if payload.AadharID == "" {
		violations = append(violations, *MissingField("aadhar_id"))
	} else if v := DigitField("aadhar_id", payload.AadharID, AadharDigits); v != nil {
		violations = append(violations, *v)
	}

	if payload.Type != "" {
		if v := EnumField("type", payload.Type, models.CourtTypes); v != nil {
			violations = append(violations, *v)
		} else {
			totalUpdates++
		}
	}

	if payload.RegNo != "" {
		totalUpdates++
	}

	if payload.Status != "" {
		if v := EnumField("status", payload.Status, models.AdvocateStatuses); v != nil {
			violations = append(violations, *v)
		} else {
			totalUpdates++
		}
	}

	if payload.WorkStatus != "" {
		if v := EnumField("work_status", payload.WorkStatus, models.AdvocateWorkStatuses); v != nil {
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

	existing, err := FindAdvocateByAadhar(db, payload.AadharID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return notFound(), nil
	}

	mergeAdvocate(existing, payload)

	if err := db.Save(existing).Error; err != nil {
		return nil, err
	}

	return &Result{Outcome: OutcomeUpdated, Record: existing}, nil
}

// mergeAdvocate overlays present payload fields onto the stored
// advocate. Must stay in step with the counter in UpdateAdvocate.
func mergeAdvocate(existing *models.Advocate, payload AdvocatePayload) {
	if payload.Type != "" {
		existing.Type = payload.Type
	}
	if payload.RegNo != "" {
		existing.RegNo = payload.RegNo
	}
	if payload.Status != "" {
		existing.Status = payload.Status
	}
	if payload.WorkStatus != "" {
		existing.WorkStatus = payload.WorkStatus
	}
}

// ListPendingAdvocates returns every advocate awaiting approval, encoded
// as an opaque blob for the transport layer.
func ListPendingAdvocates(db *gorm.DB) (string, error) {
	var advocates []models.Advocate
	if err := db.Where("status = ?", models.AdvocateStatusPending).Find(&advocates).Error; err != nil {
		return "", err
	}

	return EncodeRecord(advocates)
}
