package ipc

import (
	"encoding/json"

	"github.com/sgrubb/therapy-log/internal/models"
)

// msgMissedReason is the field-scoped message for the cross-field rule:
// any non-attended status needs an explanation.
const msgMissedReason = "is required when the session was not attended"

// SessionCreate is the write schema for session:create.
type SessionCreate struct {
	ClientID       uint                  `json:"client_id"`
	TherapistID    uint                  `json:"therapist_id"`
	ScheduledAt    *DateTime             `json:"scheduled_at"`
	OccurredAt     *DateTime             `json:"occurred_at"`
	Status         models.SessionStatus  `json:"status"`
	SessionType    models.SessionType    `json:"session_type"`
	DeliveryMethod models.DeliveryMethod `json:"delivery_method"`
	MissedReason   *models.MissedReason  `json:"missed_reason"`
	Notes          *string               `json:"notes"`
}

// DecodeSessionCreate validates a create payload and returns the
// normalized model ready for storage.
//
// The missed-reason rule is enforced here, at the channel boundary,
// rather than only in UI form code: it is a data invariant, and this is
// the one place every caller passes through.
func DecodeSessionCreate(raw json.RawMessage) (*models.Session, error) {
	var p SessionCreate
	if err := decodePayload(raw, &p); err != nil {
		return nil, err
	}

	errs := FieldErrors{}
	if p.ClientID == 0 {
		errs["client_id"] = msgPositiveID
	}
	if p.TherapistID == 0 {
		errs["therapist_id"] = msgPositiveID
	}
	switch {
	case p.ScheduledAt == nil:
		errs["scheduled_at"] = msgRequired
	case p.ScheduledAt.Malformed:
		errs["scheduled_at"] = msgInvalidDate
	}
	if p.OccurredAt != nil && p.OccurredAt.Malformed {
		errs["occurred_at"] = msgInvalidDate
	}
	switch {
	case p.Status == "":
		errs["status"] = msgRequired
	case !p.Status.Valid():
		errs["status"] = msgInvalidValue
	}
	switch {
	case p.SessionType == "":
		errs["session_type"] = msgRequired
	case !p.SessionType.Valid():
		errs["session_type"] = msgInvalidValue
	}
	switch {
	case p.DeliveryMethod == "":
		errs["delivery_method"] = msgRequired
	case !p.DeliveryMethod.Valid():
		errs["delivery_method"] = msgInvalidValue
	}
	if p.MissedReason != nil && !p.MissedReason.Valid() {
		errs["missed_reason"] = msgInvalidValue
	}
	if p.Status.Valid() && p.Status != models.StatusAttended && p.Status != models.StatusScheduled && p.MissedReason == nil {
		errs["missed_reason"] = msgMissedReason
	}
	if len(errs) > 0 {
		return nil, errs
	}

	session := &models.Session{
		ClientID:       p.ClientID,
		TherapistID:    p.TherapistID,
		ScheduledAt:    p.ScheduledAt.Time,
		Status:         p.Status,
		SessionType:    p.SessionType,
		DeliveryMethod: p.DeliveryMethod,
		MissedReason:   p.MissedReason,
		Notes:          p.Notes,
	}
	if p.OccurredAt != nil {
		session.OccurredAt = &p.OccurredAt.Time
	}
	return session, nil
}

// SessionUpdate is the write schema for session:update.
type SessionUpdate struct {
	ClientID       Optional[uint]                  `json:"client_id"`
	TherapistID    Optional[uint]                  `json:"therapist_id"`
	ScheduledAt    Optional[DateTime]              `json:"scheduled_at"`
	OccurredAt     Optional[DateTime]              `json:"occurred_at"`
	Status         Optional[models.SessionStatus]  `json:"status"`
	SessionType    Optional[models.SessionType]    `json:"session_type"`
	DeliveryMethod Optional[models.DeliveryMethod] `json:"delivery_method"`
	MissedReason   Optional[models.MissedReason]   `json:"missed_reason"`
	Notes          Optional[string]                `json:"notes"`
}

// DecodeSessionUpdate validates a partial update payload and returns the
// column changes to apply.
func DecodeSessionUpdate(raw json.RawMessage) (map[string]any, error) {
	var p SessionUpdate
	if err := decodePayload(raw, &p); err != nil {
		return nil, err
	}

	errs := FieldErrors{}
	changes := map[string]any{}

	requiredID(errs, changes, "client_id", p.ClientID)
	requiredID(errs, changes, "therapist_id", p.TherapistID)

	if p.ScheduledAt.Set {
		switch {
		case !p.ScheduledAt.HasValue() || p.ScheduledAt.Value.Malformed:
			errs["scheduled_at"] = msgInvalidDate
		default:
			changes["scheduled_at"] = p.ScheduledAt.Value.Time
		}
	}
	if p.OccurredAt.Set {
		switch {
		case p.OccurredAt.Null:
			changes["occurred_at"] = nil
		case p.OccurredAt.Malformed || p.OccurredAt.Value.Malformed:
			errs["occurred_at"] = msgInvalidDate
		default:
			changes["occurred_at"] = p.OccurredAt.Value.Time
		}
	}

	requiredEnum(errs, changes, "status", p.Status, models.SessionStatus.Valid)
	requiredEnum(errs, changes, "session_type", p.SessionType, models.SessionType.Valid)
	requiredEnum(errs, changes, "delivery_method", p.DeliveryMethod, models.DeliveryMethod.Valid)
	nullableEnum(errs, changes, "missed_reason", p.MissedReason, models.MissedReason.Valid)
	nullableString(errs, changes, "notes", p.Notes)

	// Cross-field rule: switching to a non-attended status must carry a
	// reason in the same patch.
	if p.Status.HasValue() && p.Status.Value.Valid() &&
		p.Status.Value != models.StatusAttended && p.Status.Value != models.StatusScheduled &&
		!p.MissedReason.HasValue() {
		if _, already := errs["missed_reason"]; !already {
			errs["missed_reason"] = msgMissedReason
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return changes, nil
}

// requiredID folds a non-nullable foreign-key field into changes.
func requiredID(errs FieldErrors, changes map[string]any, field string, o Optional[uint]) {
	if !o.Set {
		return
	}
	if !o.HasValue() || o.Value == 0 {
		errs[field] = msgPositiveID
		return
	}
	changes[field] = o.Value
}

// requiredEnum folds a non-nullable enum field into changes.
func requiredEnum[T ~string](errs FieldErrors, changes map[string]any, field string, o Optional[T], valid func(T) bool) {
	if !o.Set {
		return
	}
	if !o.HasValue() || !valid(o.Value) {
		errs[field] = msgInvalidValue
		return
	}
	changes[field] = string(o.Value)
}
