package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Address is a value object embedded in users and procedure courts.
// It is persisted as a whole or not at all: postcode, line_1, district
// and state are all required before an address is accepted.
type Address struct {
	Postcode string `json:"postcode"`
	Line1    string `json:"line_1"`
	Line2    string `json:"line_2,omitempty"`
	District string `json:"district"`
	State    string `json:"state"`
}

// User represents a citizen identified by a 12-digit aadhar id
type User struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"-"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	AadharID string   `gorm:"size:12;not null;uniqueIndex" json:"aadhar_id"`
	Name     string   `gorm:"not null" json:"name"`
	Phone    string   `gorm:"size:10" json:"phone,omitempty"`
	Email    string   `json:"email,omitempty"`
	Address  *Address `gorm:"serializer:json" json:"address,omitempty"`

	IsAdmin    bool `gorm:"not null;default:false" json:"is_admin"`
	IsAdvocate bool `gorm:"not null;default:false" json:"is_advocate"`
}

// BeforeCreate hook to generate UUID
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}
