// Package seed loads a small realistic dataset for development and
// demos. It goes through the typed facade rather than the store so the
// sample data is subject to the same validation as any other caller.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/sgrubb/therapy-log/internal/api"
	"github.com/sgrubb/therapy-log/internal/models"
)

func ptr[T any](v T) *T { return &v }

// Run inserts the sample therapists, clients and sessions. Seeding an
// already-seeded database fails on the first duplicate hospital number.
func Run(ctx context.Context, c *api.Client) error {
	// Therapists
	alice, err := c.CreateTherapist(ctx, api.CreateTherapist{
		FirstName: "Alice", LastName: "Morgan", IsAdmin: ptr(true),
	})
	if err != nil {
		return fmt.Errorf("seeding therapists: %w", err)
	}
	bob, err := c.CreateTherapist(ctx, api.CreateTherapist{
		FirstName: "Bob", LastName: "Chen",
	})
	if err != nil {
		return fmt.Errorf("seeding therapists: %w", err)
	}

	// Clients
	charlie, err := c.CreateClient(ctx, api.CreateClient{
		HospitalNumber: "H-1001",
		FirstName:      "Charlie",
		LastName:       "Davis",
		DOB:            date(2012, 3, 15),
		SessionDay:     ptr(models.Tuesday),
		SessionTime:    ptr("10:00"),
		TherapistID:    alice.ID,
		PreScore:       ptr(28.5),
	})
	if err != nil {
		return fmt.Errorf("seeding clients: %w", err)
	}
	dana, err := c.CreateClient(ctx, api.CreateClient{
		HospitalNumber: "H-1002",
		FirstName:      "Dana",
		LastName:       "Evans",
		DOB:            date(2014, 7, 22),
		SessionDay:     ptr(models.Thursday),
		SessionTime:    ptr("14:00"),
		TherapistID:    alice.ID,
	})
	if err != nil {
		return fmt.Errorf("seeding clients: %w", err)
	}
	if _, err := c.CreateClient(ctx, api.CreateClient{
		HospitalNumber: "H-1003",
		FirstName:      "Eli",
		LastName:       "Foster",
		DOB:            date(2010, 11, 5),
		SessionDay:     ptr(models.Wednesday),
		SessionTime:    ptr("11:00"),
		TherapistID:    bob.ID,
		PreScore:       ptr(32.0),
		PostScore:      ptr(18.0),
		Outcome:        ptr(models.OutcomeImproved),
		IsClosed:       ptr(true),
	}); err != nil {
		return fmt.Errorf("seeding clients: %w", err)
	}

	// Sessions
	sessions := []api.CreateSession{
		{
			ClientID:       charlie.ID,
			TherapistID:    alice.ID,
			ScheduledAt:    time.Date(2026, 2, 4, 10, 0, 0, 0, time.UTC),
			OccurredAt:     ptr(time.Date(2026, 2, 4, 10, 5, 0, 0, time.UTC)),
			Status:         models.StatusAttended,
			SessionType:    models.TypeAssessmentChild,
			DeliveryMethod: models.DeliveryFaceToFace,
			Notes:          ptr("Initial assessment completed."),
		},
		{
			ClientID:       charlie.ID,
			TherapistID:    alice.ID,
			ScheduledAt:    time.Date(2026, 2, 11, 10, 0, 0, 0, time.UTC),
			Status:         models.StatusDNA,
			SessionType:    models.TypeChild,
			DeliveryMethod: models.DeliveryFaceToFace,
			MissedReason:   ptr(models.MissedIllness),
		},
		{
			ClientID:       dana.ID,
			TherapistID:    alice.ID,
			ScheduledAt:    time.Date(2026, 2, 12, 14, 0, 0, 0, time.UTC),
			Status:         models.StatusScheduled,
			SessionType:    models.TypeParent,
			DeliveryMethod: models.DeliveryOnline,
		},
	}
	for _, s := range sessions {
		if _, err := c.CreateSession(ctx, s); err != nil {
			return fmt.Errorf("seeding sessions: %w", err)
		}
	}

	return nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
