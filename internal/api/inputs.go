package api

import (
	"encoding/json"
	"time"

	"github.com/sgrubb/therapy-log/internal/ipc"
	"github.com/sgrubb/therapy-log/internal/models"
)

// Create inputs marshal directly: every field appears in the payload and
// the server-side create schemas validate them. Update inputs use
// ipc.Optional so a field can be omitted (leave unchanged), set to null
// (clear), or given a value. A plain pointer cannot carry all three
// states across JSON.

// CreateTherapist is the input for Client.CreateTherapist.
type CreateTherapist struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsAdmin   *bool  `json:"is_admin,omitempty"`
}

// UpdateTherapist is the partial-update input for Client.UpdateTherapist.
type UpdateTherapist struct {
	FirstName ipc.Optional[string]
	LastName  ipc.Optional[string]
	IsAdmin   ipc.Optional[bool]
}

func (u UpdateTherapist) MarshalJSON() ([]byte, error) {
	p := patch{}
	addOpt(p, "first_name", u.FirstName)
	addOpt(p, "last_name", u.LastName)
	addOpt(p, "is_admin", u.IsAdmin)
	return json.Marshal(p)
}

// CreateClient is the input for Client.CreateClient.
type CreateClient struct {
	HospitalNumber string             `json:"hospital_number"`
	FirstName      string             `json:"first_name"`
	LastName       string             `json:"last_name"`
	DOB            time.Time          `json:"dob"`
	Address        *string            `json:"address,omitempty"`
	Phone          *string            `json:"phone,omitempty"`
	Email          *string            `json:"email,omitempty"`
	SessionDay     *models.SessionDay `json:"session_day,omitempty"`
	SessionTime    *string            `json:"session_time,omitempty"`
	TherapistID    uint               `json:"therapist_id"`
	IsClosed       *bool              `json:"is_closed,omitempty"`
	PreScore       *float64           `json:"pre_score,omitempty"`
	PostScore      *float64           `json:"post_score,omitempty"`
	Outcome        *models.Outcome    `json:"outcome,omitempty"`
	Notes          *string            `json:"notes,omitempty"`
}

// UpdateClient is the partial-update input for Client.UpdateClient.
type UpdateClient struct {
	HospitalNumber ipc.Optional[string]
	FirstName      ipc.Optional[string]
	LastName       ipc.Optional[string]
	DOB            ipc.Optional[time.Time]
	Address        ipc.Optional[string]
	Phone          ipc.Optional[string]
	Email          ipc.Optional[string]
	SessionDay     ipc.Optional[models.SessionDay]
	SessionTime    ipc.Optional[string]
	TherapistID    ipc.Optional[uint]
	IsClosed       ipc.Optional[bool]
	PreScore       ipc.Optional[float64]
	PostScore      ipc.Optional[float64]
	Outcome        ipc.Optional[models.Outcome]
	Notes          ipc.Optional[string]
}

func (u UpdateClient) MarshalJSON() ([]byte, error) {
	p := patch{}
	addOpt(p, "hospital_number", u.HospitalNumber)
	addOpt(p, "first_name", u.FirstName)
	addOpt(p, "last_name", u.LastName)
	addOpt(p, "dob", u.DOB)
	addOpt(p, "address", u.Address)
	addOpt(p, "phone", u.Phone)
	addOpt(p, "email", u.Email)
	addOpt(p, "session_day", u.SessionDay)
	addOpt(p, "session_time", u.SessionTime)
	addOpt(p, "therapist_id", u.TherapistID)
	addOpt(p, "is_closed", u.IsClosed)
	addOpt(p, "pre_score", u.PreScore)
	addOpt(p, "post_score", u.PostScore)
	addOpt(p, "outcome", u.Outcome)
	addOpt(p, "notes", u.Notes)
	return json.Marshal(p)
}

// CreateSession is the input for Client.CreateSession.
type CreateSession struct {
	ClientID       uint                  `json:"client_id"`
	TherapistID    uint                  `json:"therapist_id"`
	ScheduledAt    time.Time             `json:"scheduled_at"`
	OccurredAt     *time.Time            `json:"occurred_at,omitempty"`
	Status         models.SessionStatus  `json:"status"`
	SessionType    models.SessionType    `json:"session_type"`
	DeliveryMethod models.DeliveryMethod `json:"delivery_method"`
	MissedReason   *models.MissedReason  `json:"missed_reason,omitempty"`
	Notes          *string               `json:"notes,omitempty"`
}

// UpdateSession is the partial-update input for Client.UpdateSession.
type UpdateSession struct {
	ClientID       ipc.Optional[uint]
	TherapistID    ipc.Optional[uint]
	ScheduledAt    ipc.Optional[time.Time]
	OccurredAt     ipc.Optional[time.Time]
	Status         ipc.Optional[models.SessionStatus]
	SessionType    ipc.Optional[models.SessionType]
	DeliveryMethod ipc.Optional[models.DeliveryMethod]
	MissedReason   ipc.Optional[models.MissedReason]
	Notes          ipc.Optional[string]
}

func (u UpdateSession) MarshalJSON() ([]byte, error) {
	p := patch{}
	addOpt(p, "client_id", u.ClientID)
	addOpt(p, "therapist_id", u.TherapistID)
	addOpt(p, "scheduled_at", u.ScheduledAt)
	addOpt(p, "occurred_at", u.OccurredAt)
	addOpt(p, "status", u.Status)
	addOpt(p, "session_type", u.SessionType)
	addOpt(p, "delivery_method", u.DeliveryMethod)
	addOpt(p, "missed_reason", u.MissedReason)
	addOpt(p, "notes", u.Notes)
	return json.Marshal(p)
}

// patch is an outgoing partial-update body: only the keys a caller
// actually set, with explicit nulls preserved.
type patch map[string]any

func addOpt[T any](p patch, key string, o ipc.Optional[T]) {
	if !o.Set {
		return
	}
	if o.Null {
		p[key] = nil
		return
	}
	p[key] = o.Value
}
