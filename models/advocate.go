package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Advocate approval status constants
const (
	AdvocateStatusPending  = "PENDING"
	AdvocateStatusApproved = "APPROVED"
	AdvocateStatusDenied   = "DENIED"
)

// Advocate work status constants
const (
	AdvocateWorkActive  = "ACTIVE"
	AdvocateWorkRetired = "RETIRED"
	AdvocateWorkOnBreak = "ON BREAK"
)

// Court type constants, shared with procedure courts
const (
	CourtTypeSession = "SESSION"
	CourtTypeHigh    = "HIGH"
	CourtTypeSupreme = "SUPREME"
)

// AdvocateStatuses lists the accepted approval states
var AdvocateStatuses = []string{AdvocateStatusPending, AdvocateStatusApproved, AdvocateStatusDenied}

// AdvocateWorkStatuses lists the accepted work states
var AdvocateWorkStatuses = []string{AdvocateWorkActive, AdvocateWorkRetired, AdvocateWorkOnBreak}

// CourtTypes lists the court levels an advocate can practice in
var CourtTypes = []string{CourtTypeSession, CourtTypeHigh, CourtTypeSupreme}

// Advocate represents a registered advocate keyed by aadhar id.
// New advocates start as PENDING until approved through the bulk
// approval flow.
type Advocate struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"-"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	AadharID   string `gorm:"size:12;not null;uniqueIndex" json:"aadhar_id"`
	Type       string `gorm:"not null" json:"type"`
	RegNo      string `gorm:"not null" json:"reg_no"`
	Status     string `gorm:"not null;default:PENDING;index" json:"status"`
	WorkStatus string `gorm:"not null;default:ACTIVE" json:"work_status"`
}

// BeforeCreate hook to generate UUID
func (a *Advocate) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Advocate model
func (Advocate) TableName() string {
	return "advocates"
}
