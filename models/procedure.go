package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Procedure motive constants
const (
	MotiveSummons    = "SUMMONS"
	MotiveHearing    = "HEARING"
	MotiveProduce    = "PRODUCE"
	MotiveSettlement = "SETTLEMENT"
	MotiveArguments  = "ARGUMENTS"
	MotiveTrials     = "TRIALS"
)

// Procedure status constants
const (
	ProcedureStatusScheduled = "SCHEDULED"
	ProcedureStatusCompleted = "COMPLETED"
	ProcedureStatusCanceled  = "CANCELED"
)

// ProcedureMotives lists the accepted procedure motives
var ProcedureMotives = []string{
	MotiveSummons, MotiveHearing, MotiveProduce,
	MotiveSettlement, MotiveArguments, MotiveTrials,
}

// ProcedureStatuses lists the accepted procedure states
var ProcedureStatuses = []string{
	ProcedureStatusScheduled, ProcedureStatusCompleted, ProcedureStatusCanceled,
}

// Court describes where a procedure takes place. Name and type are
// required; the address follows the same all-or-nothing rule as user
// addresses.
type Court struct {
	Name    string   `json:"name"`
	Type    string   `json:"type"`
	Address *Address `json:"address,omitempty"`
}

// Procedure represents one scheduled step of a case. Its natural key is
// (case_no, seq_no); seq_no is assigned per case at creation time and the
// composite unique index backs the check-then-insert sequence.
type Procedure struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"-"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CaseNo string `gorm:"size:20;not null;uniqueIndex:idx_procedure_case_seq" json:"case_no"`
	SeqNo  int    `gorm:"not null;uniqueIndex:idx_procedure_case_seq" json:"id"`

	Court         *Court    `gorm:"serializer:json" json:"court"`
	Motive        string    `gorm:"not null" json:"motive"`
	ScheduledDate time.Time `gorm:"not null" json:"scheduled_date"`
	Status        string    `gorm:"not null;default:SCHEDULED" json:"status"`

	PetAdvocateAadharID string `gorm:"size:12;not null" json:"pet_advocate_aadhar_id"`
	ResAdvocateAadharID string `gorm:"size:12;not null" json:"res_advocate_aadhar_id"`
}

// BeforeCreate hook to generate UUID
func (p *Procedure) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Procedure model
func (Procedure) TableName() string {
	return "procedures"
}
