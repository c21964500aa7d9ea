package api

import (
	"fmt"

	"github.com/sgrubb/therapy-log/internal/models"
)

// Read-side shape checks. Data that crosses the channel boundary is
// re-validated before it reaches UI code: serialization can silently
// drift (a date becoming a string, a dropped join), and a loud failure
// here beats a rendering bug later.

func checkTherapist(t *models.Therapist) error {
	if t.ID == 0 {
		return fmt.Errorf("therapist missing id")
	}
	if t.FirstName == "" || t.LastName == "" {
		return fmt.Errorf("therapist %d missing name", t.ID)
	}
	return nil
}

// checkClient verifies a client record; withTherapist additionally
// requires the eager-joined therapist to be present and well formed.
func checkClient(c *models.Client, withTherapist bool) error {
	if c.ID == 0 {
		return fmt.Errorf("client missing id")
	}
	if c.HospitalNumber == "" {
		return fmt.Errorf("client %d missing hospital number", c.ID)
	}
	if c.FirstName == "" || c.LastName == "" {
		return fmt.Errorf("client %d missing name", c.ID)
	}
	if c.DOB.IsZero() {
		return fmt.Errorf("client %d missing date of birth", c.ID)
	}
	if c.TherapistID == 0 {
		return fmt.Errorf("client %d missing therapist id", c.ID)
	}
	if c.SessionDay != nil && !c.SessionDay.Valid() {
		return fmt.Errorf("client %d has invalid session day %q", c.ID, *c.SessionDay)
	}
	if c.Outcome != nil && !c.Outcome.Valid() {
		return fmt.Errorf("client %d has invalid outcome %q", c.ID, *c.Outcome)
	}
	if withTherapist {
		if c.Therapist == nil {
			return fmt.Errorf("client %d missing therapist relation", c.ID)
		}
		if err := checkTherapist(c.Therapist); err != nil {
			return err
		}
	}
	return nil
}

// checkSession verifies a session record; withRelations additionally
// requires both eager-joined relations.
func checkSession(s *models.Session, withRelations bool) error {
	if s.ID == 0 {
		return fmt.Errorf("session missing id")
	}
	if s.ClientID == 0 || s.TherapistID == 0 {
		return fmt.Errorf("session %d missing relation ids", s.ID)
	}
	if s.ScheduledAt.IsZero() {
		return fmt.Errorf("session %d missing scheduled time", s.ID)
	}
	if !s.Status.Valid() {
		return fmt.Errorf("session %d has invalid status %q", s.ID, s.Status)
	}
	if !s.SessionType.Valid() {
		return fmt.Errorf("session %d has invalid type %q", s.ID, s.SessionType)
	}
	if !s.DeliveryMethod.Valid() {
		return fmt.Errorf("session %d has invalid delivery method %q", s.ID, s.DeliveryMethod)
	}
	if s.MissedReason != nil && !s.MissedReason.Valid() {
		return fmt.Errorf("session %d has invalid missed reason %q", s.ID, *s.MissedReason)
	}
	if withRelations {
		if s.Client == nil {
			return fmt.Errorf("session %d missing client relation", s.ID)
		}
		if err := checkClient(s.Client, false); err != nil {
			return err
		}
		if s.Therapist == nil {
			return fmt.Errorf("session %d missing therapist relation", s.ID)
		}
		if err := checkTherapist(s.Therapist); err != nil {
			return err
		}
	}
	return nil
}
