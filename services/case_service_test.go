package services

import (
	"os"
	"testing"
	"time"

	"court_records_go/models"

	"github.com/stretchr/testify/assert"
)

func validCasePayload() CasePayload {
	return CasePayload{
		CaseNo:             "24MH01001",
		PetitionerName:     "Ravi Kumar",
		PetitionerAadharID: "111122223333",
		RespondentName:     "Suresh Rao",
		RespondentAadharID: "444455556666",
	}
}

func TestCreateCase(t *testing.T) {
	t.Run("Creates with filing date defaulted", func(t *testing.T) {
		db := setupTestDB(t)

		before := time.Now()
		result, err := CreateCase(db, validCasePayload())
		assert.NoError(t, err)
		assert.Equal(t, OutcomeCreated, result.Outcome)

		courtCase := result.Record.(*models.Case)
		assert.False(t, courtCase.DateOfFiling.Before(before.Add(-time.Second)))
	})

	t.Run("Duplicate case number is a hard rejection", func(t *testing.T) {
		db := setupTestDB(t)

		_, err := CreateCase(db, validCasePayload())
		assert.NoError(t, err)

		result, err := CreateCase(db, validCasePayload())
		assert.NoError(t, err)
		assert.Equal(t, OutcomeAlreadyExists, result.Outcome)
	})

	t.Run("Malformed case number rejected", func(t *testing.T) {
		db := setupTestDB(t)

		payload := validCasePayload()
		payload.CaseNo = "24MH0101" // sequence only 2 digits

		result, err := CreateCase(db, payload)
		assert.NoError(t, err)
		assert.Equal(t, OutcomeValidationFailed, result.Outcome)
		assert.Equal(t, "case_no", result.Violations[0].Field)
	})

	t.Run("FIR number must be 4 digits when present", func(t *testing.T) {
		db := setupTestDB(t)

		payload := validCasePayload()
		payload.FIRNo = "12345"

		result, err := CreateCase(db, payload)
		assert.NoError(t, err)
		assert.Equal(t, OutcomeValidationFailed, result.Outcome)
	})
}

func TestUpdateCase(t *testing.T) {
	t.Run("Only fir_no is merge-eligible", func(t *testing.T) {
		db := setupTestDB(t)
		_, err := CreateCase(db, validCasePayload())
		assert.NoError(t, err)

		result, err := UpdateCase(db, CasePayload{
			CaseNo: "24MH01001",
			FIRNo:  "1234",
			// present but immutable, must be ignored
			PetitionerName: "Someone Else",
		})
		assert.NoError(t, err)
		assert.Equal(t, OutcomeUpdated, result.Outcome)

		stored, err := FindCaseByNo(db, "24MH01001")
		assert.NoError(t, err)
		assert.Equal(t, "1234", stored.FIRNo)
		assert.Equal(t, "Ravi Kumar", stored.PetitionerName)
	})

	t.Run("Payload without fir_no is a no-op", func(t *testing.T) {
		db := setupTestDB(t)
		_, err := CreateCase(db, validCasePayload())
		assert.NoError(t, err)

		result, err := UpdateCase(db, CasePayload{
			CaseNo:         "24MH01001",
			PetitionerName: "Someone Else",
		})
		assert.NoError(t, err)
		assert.Equal(t, OutcomeNoEffectiveChange, result.Outcome)
	})

	t.Run("Missing target", func(t *testing.T) {
		db := setupTestDB(t)

		result, err := UpdateCase(db, CasePayload{CaseNo: "24MH01999", FIRNo: "1234"})
		assert.NoError(t, err)
		assert.Equal(t, OutcomeNotFound, result.Outcome)
	})
}

func TestShowCase(t *testing.T) {
	testKey, err := GenerateEncryptionKey()
	assert.NoError(t, err)
	os.Setenv("DATA_ENCRYPTION_KEY", testKey)
	defer os.Unsetenv("DATA_ENCRYPTION_KEY")

	t.Run("Returns the case as an encoded blob", func(t *testing.T) {
		db := setupTestDB(t)
		_, err := CreateCase(db, validCasePayload())
		assert.NoError(t, err)

		result, err := ShowCase(db, "24MH01001")
		assert.NoError(t, err)
		assert.Equal(t, OutcomeFound, result.Outcome)

		var decoded models.Case
		err = DecodeRecord(result.Record.(string), &decoded)
		assert.NoError(t, err)
		assert.Equal(t, "24MH01001", decoded.CaseNo)
	})

	t.Run("Unknown case", func(t *testing.T) {
		db := setupTestDB(t)

		result, err := ShowCase(db, "24MH01999")
		assert.NoError(t, err)
		assert.Equal(t, OutcomeNotFound, result.Outcome)
	})

	t.Run("Malformed case number", func(t *testing.T) {
		db := setupTestDB(t)

		result, err := ShowCase(db, "bogus")
		assert.NoError(t, err)
		assert.Equal(t, OutcomeValidationFailed, result.Outcome)
	})
}
