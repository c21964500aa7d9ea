package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sgrubb/therapy-log/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func seedTherapist(t *testing.T, st *Store) *models.Therapist {
	t.Helper()
	therapist := &models.Therapist{FirstName: "Alice", LastName: "Morgan"}
	require.NoError(t, st.CreateTherapist(context.Background(), therapist))
	require.NotZero(t, therapist.ID)
	return therapist
}

func seedClient(t *testing.T, st *Store, hospital string, therapistID uint) *models.Client {
	t.Helper()
	client := &models.Client{
		HospitalNumber: hospital,
		FirstName:      "Charlie",
		LastName:       "Davis",
		DOB:            time.Date(2012, 3, 15, 0, 0, 0, 0, time.UTC),
		TherapistID:    therapistID,
	}
	require.NoError(t, st.CreateClient(context.Background(), client))
	return client
}

func TestOpenOnDisk(t *testing.T) {
	path := t.TempDir() + "/nested/dir/records.db"
	st, err := Open(path)
	require.NoError(t, err, "missing parent directories are created")
	defer st.Close()

	_, err = st.ListTherapists(context.Background())
	assert.NoError(t, err)
}

func TestDuplicateHospitalNumberIsTranslated(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	therapist := seedTherapist(t, st)
	seedClient(t, st, "H-1001", therapist.ID)

	dup := &models.Client{
		HospitalNumber: "H-1001",
		FirstName:      "Other",
		LastName:       "Person",
		DOB:            time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC),
		TherapistID:    therapist.ID,
	}
	err := st.CreateClient(ctx, dup)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	clients, lerr := st.ListClients(ctx)
	require.NoError(t, lerr)
	assert.Len(t, clients, 1, "failed insert leaves nothing behind")
}

func TestUpdateToDuplicateHospitalNumberIsTranslated(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	therapist := seedTherapist(t, st)
	seedClient(t, st, "H-1001", therapist.ID)
	second := seedClient(t, st, "H-1002", therapist.ID)

	_, err := st.UpdateClient(ctx, second.ID, map[string]any{"hospital_number": "H-1001"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	fetched, gerr := st.GetClient(ctx, second.ID)
	require.NoError(t, gerr)
	assert.Equal(t, "H-1002", fetched.HospitalNumber, "failed write did not persist")
}

func TestForeignKeysAreEnforced(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	client := &models.Client{
		HospitalNumber: "H-1",
		FirstName:      "A",
		LastName:       "B",
		DOB:            time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC),
		TherapistID:    42,
	}
	assert.ErrorIs(t, st.CreateClient(ctx, client), gorm.ErrForeignKeyViolated)

	therapist := seedTherapist(t, st)
	session := &models.Session{
		ClientID:       42,
		TherapistID:    therapist.ID,
		ScheduledAt:    time.Now().UTC(),
		Status:         models.StatusScheduled,
		SessionType:    models.TypeChild,
		DeliveryMethod: models.DeliveryOnline,
	}
	assert.ErrorIs(t, st.CreateSession(ctx, session), gorm.ErrForeignKeyViolated)
}

func TestGetMissingRecord(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	_, err := st.GetTherapist(ctx, 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = st.GetClient(ctx, 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = st.GetSession(ctx, 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateFetchesBeforeWriting(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	_, err := st.UpdateTherapist(ctx, 999, map[string]any{"first_name": "Ghost"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateAppliesOnlyGivenColumns(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	therapist := seedTherapist(t, st)
	client := seedClient(t, st, "H-1", therapist.ID)

	notes := "initial notes"
	_, err := st.UpdateClient(ctx, client.ID, map[string]any{"notes": notes})
	require.NoError(t, err)

	updated, err := st.UpdateClient(ctx, client.ID, map[string]any{
		"is_closed":  true,
		"post_score": 18.0,
	})
	require.NoError(t, err)
	assert.True(t, updated.IsClosed)
	require.NotNil(t, updated.PostScore)
	assert.InDelta(t, 18.0, *updated.PostScore, 0.001)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, notes, *updated.Notes, "columns outside the patch are untouched")
}

func TestUpdateClearsColumnWithExplicitNull(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	therapist := seedTherapist(t, st)
	client := seedClient(t, st, "H-1", therapist.ID)

	_, err := st.UpdateClient(ctx, client.ID, map[string]any{"phone": "01234 567890"})
	require.NoError(t, err)

	updated, err := st.UpdateClient(ctx, client.ID, map[string]any{"phone": nil})
	require.NoError(t, err)
	assert.Nil(t, updated.Phone)
}

func TestUpdateWithEmptyChangesIsARead(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	therapist := seedTherapist(t, st)

	got, err := st.UpdateTherapist(ctx, therapist.ID, map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, therapist.ID, got.ID)
	assert.Equal(t, "Alice", got.FirstName)
}

func TestListPreloadsRelations(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	therapist := seedTherapist(t, st)
	client := seedClient(t, st, "H-1", therapist.ID)

	session := &models.Session{
		ClientID:       client.ID,
		TherapistID:    therapist.ID,
		ScheduledAt:    time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC),
		Status:         models.StatusScheduled,
		SessionType:    models.TypeChild,
		DeliveryMethod: models.DeliveryOnline,
	}
	require.NoError(t, st.CreateSession(ctx, session))

	clients, err := st.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	require.NotNil(t, clients[0].Therapist)
	assert.Equal(t, "Alice", clients[0].Therapist.FirstName)

	sessions, err := st.ListSessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	require.NotNil(t, sessions[0].Client)
	require.NotNil(t, sessions[0].Therapist)
	assert.Equal(t, "H-1", sessions[0].Client.HospitalNumber)

	fetched, err := st.GetSession(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.Client)
	assert.Equal(t, client.ID, fetched.Client.ID)
}

func TestEnumsRoundTripThroughStorage(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	therapist := seedTherapist(t, st)
	client := seedClient(t, st, "H-1", therapist.ID)

	reason := models.MissedIllness
	session := &models.Session{
		ClientID:       client.ID,
		TherapistID:    therapist.ID,
		ScheduledAt:    time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC),
		Status:         models.StatusDNA,
		SessionType:    models.TypeCheckIn,
		DeliveryMethod: models.DeliveryTelephone,
		MissedReason:   &reason,
	}
	require.NoError(t, st.CreateSession(ctx, session))

	fetched, err := st.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDNA, fetched.Status)
	assert.Equal(t, models.TypeCheckIn, fetched.SessionType)
	require.NotNil(t, fetched.MissedReason)
	assert.Equal(t, models.MissedIllness, *fetched.MissedReason)
}
