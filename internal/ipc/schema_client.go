package ipc

import (
	"encoding/json"

	"github.com/sgrubb/therapy-log/internal/models"
)

// ClientCreate is the write schema for client:create.
type ClientCreate struct {
	HospitalNumber string             `json:"hospital_number"`
	FirstName      string             `json:"first_name"`
	LastName       string             `json:"last_name"`
	DOB            *DateTime          `json:"dob"`
	Address        *string            `json:"address"`
	Phone          *string            `json:"phone"`
	Email          *string            `json:"email"`
	SessionDay     *models.SessionDay `json:"session_day"`
	SessionTime    *string            `json:"session_time"`
	TherapistID    uint               `json:"therapist_id"`
	IsClosed       *bool              `json:"is_closed"`
	PreScore       *float64           `json:"pre_score"`
	PostScore      *float64           `json:"post_score"`
	Outcome        *models.Outcome    `json:"outcome"`
	Notes          *string            `json:"notes"`
}

// DecodeClientCreate validates a create payload and returns the
// normalized model ready for storage.
func DecodeClientCreate(raw json.RawMessage) (*models.Client, error) {
	var p ClientCreate
	if err := decodePayload(raw, &p); err != nil {
		return nil, err
	}

	errs := FieldErrors{}
	if p.HospitalNumber == "" {
		errs["hospital_number"] = msgRequired
	}
	if p.FirstName == "" {
		errs["first_name"] = msgRequired
	}
	if p.LastName == "" {
		errs["last_name"] = msgRequired
	}
	switch {
	case p.DOB == nil:
		errs["dob"] = msgRequired
	case p.DOB.Malformed:
		errs["dob"] = msgInvalidDate
	}
	if p.TherapistID == 0 {
		errs["therapist_id"] = msgPositiveID
	}
	if p.SessionDay != nil && !p.SessionDay.Valid() {
		errs["session_day"] = msgInvalidValue
	}
	if p.Outcome != nil && !p.Outcome.Valid() {
		errs["outcome"] = msgInvalidValue
	}
	if len(errs) > 0 {
		return nil, errs
	}

	client := &models.Client{
		HospitalNumber: p.HospitalNumber,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		DOB:            p.DOB.Time,
		Address:        p.Address,
		Phone:          p.Phone,
		Email:          p.Email,
		SessionDay:     p.SessionDay,
		SessionTime:    p.SessionTime,
		TherapistID:    p.TherapistID,
		PreScore:       p.PreScore,
		PostScore:      p.PostScore,
		Outcome:        p.Outcome,
		Notes:          p.Notes,
	}
	if p.IsClosed != nil {
		client.IsClosed = *p.IsClosed
	}
	return client, nil
}

// ClientUpdate is the write schema for client:update.
type ClientUpdate struct {
	HospitalNumber Optional[string]            `json:"hospital_number"`
	FirstName      Optional[string]            `json:"first_name"`
	LastName       Optional[string]            `json:"last_name"`
	DOB            Optional[DateTime]          `json:"dob"`
	Address        Optional[string]            `json:"address"`
	Phone          Optional[string]            `json:"phone"`
	Email          Optional[string]            `json:"email"`
	SessionDay     Optional[models.SessionDay] `json:"session_day"`
	SessionTime    Optional[string]            `json:"session_time"`
	TherapistID    Optional[uint]              `json:"therapist_id"`
	IsClosed       Optional[bool]              `json:"is_closed"`
	PreScore       Optional[float64]           `json:"pre_score"`
	PostScore      Optional[float64]           `json:"post_score"`
	Outcome        Optional[models.Outcome]    `json:"outcome"`
	Notes          Optional[string]            `json:"notes"`
}

// DecodeClientUpdate validates a partial update payload and returns the
// column changes to apply.
func DecodeClientUpdate(raw json.RawMessage) (map[string]any, error) {
	var p ClientUpdate
	if err := decodePayload(raw, &p); err != nil {
		return nil, err
	}

	errs := FieldErrors{}
	changes := map[string]any{}

	requiredString(errs, changes, "hospital_number", p.HospitalNumber)
	requiredString(errs, changes, "first_name", p.FirstName)
	requiredString(errs, changes, "last_name", p.LastName)

	if p.DOB.Set {
		switch {
		case !p.DOB.HasValue() || p.DOB.Value.Malformed:
			errs["dob"] = msgInvalidDate
		default:
			changes["dob"] = p.DOB.Value.Time
		}
	}

	nullableString(errs, changes, "address", p.Address)
	nullableString(errs, changes, "phone", p.Phone)
	nullableString(errs, changes, "email", p.Email)
	nullableString(errs, changes, "session_time", p.SessionTime)
	nullableString(errs, changes, "notes", p.Notes)

	nullableEnum(errs, changes, "session_day", p.SessionDay, models.SessionDay.Valid)
	nullableEnum(errs, changes, "outcome", p.Outcome, models.Outcome.Valid)

	if p.TherapistID.Set {
		if !p.TherapistID.HasValue() || p.TherapistID.Value == 0 {
			errs["therapist_id"] = msgPositiveID
		} else {
			changes["therapist_id"] = p.TherapistID.Value
		}
	}
	if p.IsClosed.Set {
		if !p.IsClosed.HasValue() {
			errs["is_closed"] = msgInvalidValue
		} else {
			changes["is_closed"] = p.IsClosed.Value
		}
	}

	nullableNumber(errs, changes, "pre_score", p.PreScore)
	nullableNumber(errs, changes, "post_score", p.PostScore)

	if len(errs) > 0 {
		return nil, errs
	}
	return changes, nil
}

// nullableString folds a nullable free-text field into changes: null
// clears the column, a value replaces it, omitted is skipped.
func nullableString(errs FieldErrors, changes map[string]any, field string, o Optional[string]) {
	if !o.Set {
		return
	}
	if o.Null {
		changes[field] = nil
		return
	}
	if o.Malformed {
		errs[field] = msgInvalidValue
		return
	}
	changes[field] = o.Value
}

// nullableEnum folds a nullable enum field into changes, rejecting values
// outside the enum's domain.
func nullableEnum[T ~string](errs FieldErrors, changes map[string]any, field string, o Optional[T], valid func(T) bool) {
	if !o.Set {
		return
	}
	if o.Null {
		changes[field] = nil
		return
	}
	if o.Malformed || !valid(o.Value) {
		errs[field] = msgInvalidValue
		return
	}
	changes[field] = string(o.Value)
}

// nullableNumber folds a nullable numeric field into changes.
func nullableNumber(errs FieldErrors, changes map[string]any, field string, o Optional[float64]) {
	if !o.Set {
		return
	}
	if o.Null {
		changes[field] = nil
		return
	}
	if o.Malformed {
		errs[field] = msgInvalidValue
		return
	}
	changes[field] = o.Value
}
