package services

import (
	"errors"

	"court_records_go/models"

	"gorm.io/gorm"
)

// UserPayload is the create/update request body for users. Empty strings
// mean "absent"; the booleans use pointers so that absent and false stay
// distinguishable on update.
type UserPayload struct {
	AadharID   string          `json:"aadhar_id"`
	Name       string          `json:"name"`
	Phone      string          `json:"phone"`
	Email      string          `json:"email"`
	Address    *models.Address `json:"address"`
	IsAdmin    *bool           `json:"is_admin"`
	IsAdvocate *bool           `json:"is_advocate"`
}

// FindUserByAadhar returns the user with the given aadhar id, or nil when
// no such user exists. Store failures propagate as errors.
func FindUserByAadhar(db *gorm.DB, aadharID string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "aadhar_id = ?", aadharID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SignupUser registers a new user. An aadhar id that is already
// registered is not an error: the existing record is returned with an
// AlreadyExists outcome, which the transport treats as a returning user.
func SignupUser(db *gorm.DB, payload UserPayload) (*Result, error) {
	var violations []Violation

	if payload.Name == "" {
		violations = append(violations, *MissingField("name"))
	}

	if payload.AadharID == "" {
		violations = append(violations, *MissingField("aadhar_id"))
	} else if v := DigitField("aadhar_id", payload.AadharID, AadharDigits); v != nil {
		violations = append(violations, *v)
	}

	if payload.Phone != "" {
		if v := DigitField("phone", payload.Phone, PhoneDigits); v != nil {
			violations = append(violations, *v)
		}
	}

	if payload.Email != "" {
		if v := EmailField("email", payload.Email); v != nil {
			violations = append(violations, *v)
		}
	}

	if payload.Address != nil {
		violations = append(violations, ValidateAddress("address", payload.Address)...)
	}

	if len(violations) > 0 {
		return failedValidation(violations), nil
	}

	existing, err := FindUserByAadhar(db, payload.AadharID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &Result{Outcome: OutcomeAlreadyExists, Record: existing}, nil
	}

	user := models.User{
		AadharID: payload.AadharID,
		Name:     payload.Name,
		Phone:    payload.Phone,
		Email:    payload.Email,
		Address:  payload.Address,
		// Privilege flags are never taken from the signup payload
		IsAdmin:    false,
		IsAdvocate: false,
	}

	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}

	return &Result{Outcome: OutcomeCreated, Record: &user}, nil
}

// UpdateUser applies a partial update keyed by aadhar id. A field is
// validated only when present; at least one present-and-valid field is
// required or the request is rejected as a no-op.
func UpdateUser(db *gorm.DB, payload UserPayload) (*Result, error) {
	var violations []Violation
	totalUpdates := 0

	if payload.AadharID == "" {
		violations = append(violations, *MissingField("aadhar_id"))
	} else if v := DigitField("aadhar_id", payload.AadharID, AadharDigits); v != nil {
		violations = append(violations, *v)
	}

	if payload.Name != "" {
		totalUpdates++
	}

	if payload.Phone != "" {
		if v := DigitField("phone", payload.Phone, PhoneDigits); v != nil {
			violations = append(violations, *v)
		} else {
			totalUpdates++
		}
	}

	if payload.Email != "" {
		if v := EmailField("email", payload.Email); v != nil {
			violations = append(violations, *v)
		} else {
			totalUpdates++
		}
	}

	if payload.Address != nil {
		if addressViolations := ValidateAddress("address", payload.Address); len(addressViolations) > 0 {
			violations = append(violations, addressViolations...)
		} else {
			totalUpdates++
		}
	}

	if payload.IsAdmin != nil {
		totalUpdates++
	}
	if payload.IsAdvocate != nil {
		totalUpdates++
	}

	if len(violations) > 0 {
		return failedValidation(violations), nil
	}
	if totalUpdates == 0 {
		return noEffectiveChange(), nil
	}

	existing, err := FindUserByAadhar(db, payload.AadharID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return notFound(), nil
	}

	mergeUser(existing, payload)

	if err := db.Save(existing).Error; err != nil {
		return nil, err
	}

	return &Result{Outcome: OutcomeUpdated, Record: existing}, nil
}

// mergeUser overlays present payload fields onto the stored user. The
// presence tests here must stay in step with the effective-change counter
// in UpdateUser: a field counts iff it is merged. Absent fields never
// null out stored values.
func mergeUser(existing *models.User, payload UserPayload) {
	if payload.Name != "" {
		existing.Name = payload.Name
	}
	if payload.Phone != "" {
		existing.Phone = payload.Phone
	}
	if payload.Email != "" {
		existing.Email = payload.Email
	}
	if payload.Address != nil {
		existing.Address = payload.Address
	}
	if payload.IsAdmin != nil {
		existing.IsAdmin = *payload.IsAdmin
	}
	if payload.IsAdvocate != nil {
		existing.IsAdvocate = *payload.IsAdvocate
	}
}
