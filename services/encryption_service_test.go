package services

import (
	"os"
	"testing"

	"court_records_go/models"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeRecord(t *testing.T) {
	testKey, err := GenerateEncryptionKey()
	assert.NoError(t, err)
	assert.NotEmpty(t, testKey)

	os.Setenv("DATA_ENCRYPTION_KEY", testKey)
	defer os.Unsetenv("DATA_ENCRYPTION_KEY")

	t.Run("Round trip", func(t *testing.T) {
		original := models.Case{
			CaseNo:             "24MH01001",
			PetitionerName:     "Ravi Kumar",
			PetitionerAadharID: "111122223333",
			RespondentName:     "Suresh Rao",
			RespondentAadharID: "444455556666",
		}

		encoded, err := EncodeRecord(original)
		assert.NoError(t, err)
		assert.NotEmpty(t, encoded)

		var decoded models.Case
		err = DecodeRecord(encoded, &decoded)
		assert.NoError(t, err)
		assert.Equal(t, original.CaseNo, decoded.CaseNo)
		assert.Equal(t, original.PetitionerName, decoded.PetitionerName)
	})

	t.Run("Different blobs for same record", func(t *testing.T) {
		record := map[string]string{"case_no": "24MH01001"}
		encoded1, _ := EncodeRecord(record)
		encoded2, _ := EncodeRecord(record)
		// Random nonce, blobs should differ
		assert.NotEqual(t, encoded1, encoded2)
	})

	t.Run("Empty slice encodes fine", func(t *testing.T) {
		encoded, err := EncodeRecord([]models.Procedure{})
		assert.NoError(t, err)

		var decoded []models.Procedure
		err = DecodeRecord(encoded, &decoded)
		assert.NoError(t, err)
		assert.Empty(t, decoded)
	})
}

func TestEncodeWithoutKey(t *testing.T) {
	os.Unsetenv("DATA_ENCRYPTION_KEY")

	_, err := EncodeRecord(map[string]string{"k": "v"})
	assert.ErrorIs(t, err, ErrEncryptionKeyNotSet)

	err = DecodeRecord("blob", &map[string]string{})
	assert.ErrorIs(t, err, ErrEncryptionKeyNotSet)
}

func TestDecodeInvalidBlob(t *testing.T) {
	testKey, _ := GenerateEncryptionKey()
	os.Setenv("DATA_ENCRYPTION_KEY", testKey)
	defer os.Unsetenv("DATA_ENCRYPTION_KEY")

	var out map[string]string

	// Invalid base64
	err := DecodeRecord("not-valid-base64!!!", &out)
	assert.Error(t, err)

	// Too short (less than nonce size)
	err = DecodeRecord("YWJj", &out)
	assert.ErrorIs(t, err, ErrInvalidBlob)
}

func TestGenerateEncryptionKey(t *testing.T) {
	key1, err := GenerateEncryptionKey()
	assert.NoError(t, err)
	assert.NotEmpty(t, key1)

	key2, err := GenerateEncryptionKey()
	assert.NoError(t, err)
	assert.NotEqual(t, key1, key2)
}
