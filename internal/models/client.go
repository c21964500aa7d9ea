package models

import "time"

// Client represents a referred client and their case record
type Client struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	HospitalNumber string      `gorm:"uniqueIndex;not null" json:"hospital_number"`
	FirstName      string      `gorm:"not null" json:"first_name"`
	LastName       string      `gorm:"not null" json:"last_name"`
	DOB            time.Time   `gorm:"column:dob;not null" json:"dob"`
	Address        *string     `json:"address"`
	Phone          *string     `json:"phone"`
	Email          *string     `json:"email"`
	SessionDay     *SessionDay `gorm:"type:text" json:"session_day"`
	SessionTime    *string     `json:"session_time"`
	IsClosed       bool        `gorm:"default:false" json:"is_closed"`
	PreScore       *float64    `json:"pre_score"`
	PostScore      *float64    `json:"post_score"`
	Outcome        *Outcome    `gorm:"type:text" json:"outcome"`
	Notes          *string     `json:"notes"`

	// Relationships
	TherapistID uint       `gorm:"not null" json:"therapist_id"`
	Therapist   *Therapist `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"therapist,omitempty"`
}
