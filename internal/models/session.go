package models

import "time"

// Session represents a single scheduled or held therapy session
type Session struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ScheduledAt    time.Time      `gorm:"not null" json:"scheduled_at"`
	OccurredAt     *time.Time     `json:"occurred_at"`
	Status         SessionStatus  `gorm:"type:text;not null" json:"status"`
	SessionType    SessionType    `gorm:"type:text;not null" json:"session_type"`
	DeliveryMethod DeliveryMethod `gorm:"type:text;not null" json:"delivery_method"`
	MissedReason   *MissedReason  `gorm:"type:text" json:"missed_reason"`
	Notes          *string        `json:"notes"`

	// Relationships
	ClientID    uint       `gorm:"not null" json:"client_id"`
	TherapistID uint       `gorm:"not null" json:"therapist_id"`
	Client      *Client    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"client,omitempty"`
	Therapist   *Therapist `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"therapist,omitempty"`
}
