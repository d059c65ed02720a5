package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Case represents a court case keyed by its structured case number.
// The case number and both parties are immutable after creation; only
// the FIR number can change through an update.
type Case struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"-"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CaseNo string `gorm:"size:20;not null;uniqueIndex" json:"case_no"`

	PetitionerName     string `gorm:"not null" json:"petitioner_name"`
	PetitionerAadharID string `gorm:"size:12;not null;index" json:"petitioner_aadhar_id"`
	RespondentName     string `gorm:"not null" json:"respondent_name"`
	RespondentAadharID string `gorm:"size:12;not null;index" json:"respondent_aadhar_id"`

	FIRNo        string    `gorm:"size:4" json:"fir_no,omitempty"`
	DateOfFiling time.Time `gorm:"not null" json:"date_of_filing"`
}

// BeforeCreate hook to generate UUID and default the filing date
func (c *Case) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.DateOfFiling.IsZero() {
		c.DateOfFiling = time.Now()
	}
	return nil
}

// TableName specifies the table name for Case model
func (Case) TableName() string {
	return "cases"
}
