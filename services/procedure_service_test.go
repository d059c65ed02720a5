package services

import (
	"os"
	"testing"
	"time"

	"court_records_go/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func validProcedurePayload(caseNo string) ProcedurePayload {
	return ProcedurePayload{
		CaseNo: caseNo,
		Court: &models.Court{
			Name: "City Civil Court",
			Type: "SESSION",
		},
		Motive:              "HEARING",
		ScheduledDate:       time.Date(2026, 9, 14, 10, 30, 0, 0, time.UTC),
		PetAdvocateAadharID: "210987654321",
		ResAdvocateAadharID: "109876543210",
	}
}

func seedCase(t *testing.T, db *gorm.DB, payload CasePayload) {
	result, err := CreateCase(db, payload)
	assert.NoError(t, err)
	assert.Equal(t, OutcomeCreated, result.Outcome)
}

func TestCreateProcedure(t *testing.T) {
	t.Run("Requires the referenced case to exist", func(t *testing.T) {
		db := setupTestDB(t)

		result, err := CreateProcedure(db, validProcedurePayload("24MH01001"))
		assert.NoError(t, err)
		assert.Equal(t, OutcomeNotFound, result.Outcome)

		var count int64
		db.Model(&models.Procedure{}).Count(&count)
		assert.Equal(t, int64(0), count)
	})

	t.Run("Creates with defaults and per-case sequence", func(t *testing.T) {
		db := setupTestDB(t)
		seedCase(t, db, validCasePayload())

		result, err := CreateProcedure(db, validProcedurePayload("24MH01001"))
		assert.NoError(t, err)
		assert.Equal(t, OutcomeCreated, result.Outcome)

		procedure := result.Record.(*models.Procedure)
		assert.Equal(t, 1, procedure.SeqNo)
		assert.Equal(t, models.ProcedureStatusScheduled, procedure.Status)
	})

	t.Run("Sequence is scoped per case", func(t *testing.T) {
		db := setupTestDB(t)
		seedCase(t, db, validCasePayload())

		other := validCasePayload()
		other.CaseNo = "24DL02001"
		other.PetitionerAadharID = "777788889999"
		other.RespondentAadharID = "888899990000"
		seedCase(t, db, other)

		first, err := CreateProcedure(db, validProcedurePayload("24MH01001"))
		assert.NoError(t, err)
		second, err := CreateProcedure(db, validProcedurePayload("24MH01001"))
		assert.NoError(t, err)
		otherCase, err := CreateProcedure(db, validProcedurePayload("24DL02001"))
		assert.NoError(t, err)

		assert.Equal(t, 1, first.Record.(*models.Procedure).SeqNo)
		assert.Equal(t, 2, second.Record.(*models.Procedure).SeqNo)
		assert.Equal(t, 1, otherCase.Record.(*models.Procedure).SeqNo)
	})

	t.Run("Motive normalized and validated", func(t *testing.T) {
		db := setupTestDB(t)
		seedCase(t, db, validCasePayload())

		payload := validProcedurePayload("24MH01001")
		payload.Motive = " arguments "

		result, err := CreateProcedure(db, payload)
		assert.NoError(t, err)
		assert.Equal(t, OutcomeCreated, result.Outcome)
		assert.Equal(t, models.MotiveArguments, result.Record.(*models.Procedure).Motive)
	})

	t.Run("Missing court and scheduled date both reported", func(t *testing.T) {
		db := setupTestDB(t)
		seedCase(t, db, validCasePayload())

		payload := validProcedurePayload("24MH01001")
		payload.Court = nil
		payload.ScheduledDate = time.Time{}

		result, err := CreateProcedure(db, payload)
		assert.NoError(t, err)
		assert.Equal(t, OutcomeValidationFailed, result.Outcome)
		assert.Len(t, result.Violations, 2)
	})
}

func TestUpdateProcedure(t *testing.T) {
	t.Run("Merges present fields", func(t *testing.T) {
		db := setupTestDB(t)
		seedCase(t, db, validCasePayload())
		created, err := CreateProcedure(db, validProcedurePayload("24MH01001"))
		assert.NoError(t, err)
		seqNo := created.Record.(*models.Procedure).SeqNo

		result, err := UpdateProcedure(db, ProcedurePayload{
			CaseNo: "24MH01001",
			SeqNo:  seqNo,
			Status: "completed",
		})
		assert.NoError(t, err)
		assert.Equal(t, OutcomeUpdated, result.Outcome)

		stored, err := FindProcedure(db, "24MH01001", seqNo)
		assert.NoError(t, err)
		assert.Equal(t, models.ProcedureStatusCompleted, stored.Status)
		assert.Equal(t, models.MotiveHearing, stored.Motive)
		assert.Equal(t, "City Civil Court", stored.Court.Name)
	})

	t.Run("No recognized field is a no-op", func(t *testing.T) {
		db := setupTestDB(t)

		result, err := UpdateProcedure(db, ProcedurePayload{CaseNo: "24MH01001", SeqNo: 1})
		assert.NoError(t, err)
		assert.Equal(t, OutcomeNoEffectiveChange, result.Outcome)
	})

	t.Run("Missing target", func(t *testing.T) {
		db := setupTestDB(t)
		seedCase(t, db, validCasePayload())

		result, err := UpdateProcedure(db, ProcedurePayload{CaseNo: "24MH01001", SeqNo: 7, Status: "CANCELED"})
		assert.NoError(t, err)
		assert.Equal(t, OutcomeNotFound, result.Outcome)
	})

	t.Run("Partial court leaves stored court untouched", func(t *testing.T) {
		db := setupTestDB(t)
		seedCase(t, db, validCasePayload())
		created, err := CreateProcedure(db, validProcedurePayload("24MH01001"))
		assert.NoError(t, err)
		seqNo := created.Record.(*models.Procedure).SeqNo

		result, err := UpdateProcedure(db, ProcedurePayload{
			CaseNo: "24MH01001",
			SeqNo:  seqNo,
			Court:  &models.Court{Name: "High Court"}, // type missing
		})
		assert.NoError(t, err)
		assert.Equal(t, OutcomeValidationFailed, result.Outcome)

		stored, err := FindProcedure(db, "24MH01001", seqNo)
		assert.NoError(t, err)
		assert.Equal(t, "City Civil Court", stored.Court.Name)
	})
}

func TestMergeProcedureIdempotent(t *testing.T) {
	existing := models.Procedure{
		CaseNo:              "24MH01001",
		SeqNo:               1,
		Court:               &models.Court{Name: "City Civil Court", Type: models.CourtTypeSession},
		Motive:              models.MotiveHearing,
		ScheduledDate:       time.Date(2026, 9, 14, 10, 30, 0, 0, time.UTC),
		Status:              models.ProcedureStatusScheduled,
		PetAdvocateAadharID: "210987654321",
		ResAdvocateAadharID: "109876543210",
	}
	merged := existing

	mergeProcedure(&merged, ProcedurePayload{CaseNo: existing.CaseNo, SeqNo: existing.SeqNo}, false)
	assert.Equal(t, existing, merged)
}

func TestListProcedures(t *testing.T) {
	testKey, err := GenerateEncryptionKey()
	assert.NoError(t, err)
	os.Setenv("DATA_ENCRYPTION_KEY", testKey)
	defer os.Unsetenv("DATA_ENCRYPTION_KEY")

	setup := func(t *testing.T) *gorm.DB {
		db := setupTestDB(t)
		seedCase(t, db, validCasePayload())
		_, err := CreateProcedure(db, validProcedurePayload("24MH01001"))
		assert.NoError(t, err)
		_, err = CreateProcedure(db, validProcedurePayload("24MH01001"))
		assert.NoError(t, err)
		return db
	}

	decode := func(t *testing.T, result *Result) []models.Procedure {
		var procedures []models.Procedure
		err := DecodeRecord(result.Record.(string), &procedures)
		assert.NoError(t, err)
		return procedures
	}

	t.Run("By case number", func(t *testing.T) {
		db := setup(t)

		result, err := ListProcedures(db, ProcedureListQuery{CaseNo: "24MH01001"})
		assert.NoError(t, err)
		assert.Equal(t, OutcomeFound, result.Outcome)
		assert.Len(t, decode(t, result), 2)
	})

	t.Run("Resolved from petitioner aadhar id", func(t *testing.T) {
		db := setup(t)

		result, err := ListProcedures(db, ProcedureListQuery{PetitionerAadharID: "111122223333"})
		assert.NoError(t, err)
		assert.Equal(t, OutcomeFound, result.Outcome)
		assert.Len(t, decode(t, result), 2)
	})

	t.Run("Falls back to respondent when petitioner matches nothing", func(t *testing.T) {
		db := setup(t)

		result, err := ListProcedures(db, ProcedureListQuery{
			PetitionerAadharID: "000000000000",
			RespondentAadharID: "444455556666",
		})
		assert.NoError(t, err)
		assert.Equal(t, OutcomeFound, result.Outcome)
		assert.Len(t, decode(t, result), 2)
	})

	t.Run("Unresolvable case", func(t *testing.T) {
		db := setup(t)

		result, err := ListProcedures(db, ProcedureListQuery{PetitionerAadharID: "000000000000"})
		assert.NoError(t, err)
		assert.Equal(t, OutcomeNotFound, result.Outcome)
	})
}
