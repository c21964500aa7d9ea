package models

import "time"

// Therapist represents a clinician who owns client caseloads
type Therapist struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	FirstName string `gorm:"not null" json:"first_name"`
	LastName  string `gorm:"not null" json:"last_name"`
	IsAdmin   bool   `gorm:"default:false" json:"is_admin"`
}
