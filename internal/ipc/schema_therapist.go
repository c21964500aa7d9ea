package ipc

import (
	"encoding/json"

	"github.com/sgrubb/therapy-log/internal/models"
)

// TherapistCreate is the write schema for therapist:create.
type TherapistCreate struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsAdmin   *bool  `json:"is_admin"`
}

// DecodeTherapistCreate validates a create payload and returns the
// normalized model ready for storage.
func DecodeTherapistCreate(raw json.RawMessage) (*models.Therapist, error) {
	var p TherapistCreate
	if err := decodePayload(raw, &p); err != nil {
		return nil, err
	}

	errs := FieldErrors{}
	if p.FirstName == "" {
		errs["first_name"] = msgRequired
	}
	if p.LastName == "" {
		errs["last_name"] = msgRequired
	}
	if len(errs) > 0 {
		return nil, errs
	}

	therapist := &models.Therapist{
		FirstName: p.FirstName,
		LastName:  p.LastName,
	}
	if p.IsAdmin != nil {
		therapist.IsAdmin = *p.IsAdmin
	}
	return therapist, nil
}

// TherapistUpdate is the write schema for therapist:update. Every field
// is tri-state: omitted fields leave the stored value unchanged.
type TherapistUpdate struct {
	FirstName Optional[string] `json:"first_name"`
	LastName  Optional[string] `json:"last_name"`
	IsAdmin   Optional[bool]   `json:"is_admin"`
}

// DecodeTherapistUpdate validates a partial update payload and returns
// the column changes to apply.
func DecodeTherapistUpdate(raw json.RawMessage) (map[string]any, error) {
	var p TherapistUpdate
	if err := decodePayload(raw, &p); err != nil {
		return nil, err
	}

	errs := FieldErrors{}
	changes := map[string]any{}

	requiredString(errs, changes, "first_name", p.FirstName)
	requiredString(errs, changes, "last_name", p.LastName)

	if p.IsAdmin.Set {
		if !p.IsAdmin.HasValue() {
			errs["is_admin"] = msgInvalidValue
		} else {
			changes["is_admin"] = p.IsAdmin.Value
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return changes, nil
}

// requiredString folds a non-nullable string field of an update schema
// into changes: present and non-empty records the change, null or empty
// is a violation, a non-string value is a type error, omitted is skipped.
func requiredString(errs FieldErrors, changes map[string]any, field string, o Optional[string]) {
	if !o.Set {
		return
	}
	if o.Malformed {
		errs[field] = msgInvalidValue
		return
	}
	if o.Null || o.Value == "" {
		errs[field] = msgEmpty
		return
	}
	changes[field] = o.Value
}
