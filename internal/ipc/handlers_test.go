package ipc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgrubb/therapy-log/internal/models"
	"github.com/sgrubb/therapy-log/internal/store"
)

// newTestSurface builds a dispatcher with the full channel set over an
// in-memory database.
func newTestSurface(t *testing.T) *Dispatcher {
	t.Helper()
	st, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	d := NewDispatcher(slog.New(slog.NewTextHandler(io.Discard, nil)))
	RegisterHandlers(d, st, "1.2.3-test")
	return d
}

// call invokes a channel with args marshalled to JSON and returns the
// decoded envelope.
func call(t *testing.T, d *Dispatcher, channel string, args any) Response {
	t.Helper()
	var payload json.RawMessage
	if args != nil {
		b, err := json.Marshal(args)
		require.NoError(t, err)
		payload = b
	}
	return decode(t, d.Invoke(context.Background(), channel, payload))
}

// callOK invokes a channel and unmarshals the success data into out.
func callOK(t *testing.T, d *Dispatcher, channel string, args, out any) {
	t.Helper()
	resp := call(t, d, channel, args)
	if !resp.Success {
		t.Fatalf("%s failed: %+v", channel, resp.Error)
	}
	if out != nil {
		require.NoError(t, json.Unmarshal(resp.Data, out))
	}
}

// callFail invokes a channel and asserts it failed with the given code.
func callFail(t *testing.T, d *Dispatcher, channel string, args any, want Code) *ErrorInfo {
	t.Helper()
	resp := call(t, d, channel, args)
	require.False(t, resp.Success, "%s should have failed", channel)
	require.NotNil(t, resp.Error)
	assert.Equal(t, want, resp.Error.Code)
	return resp.Error
}

func mkTherapist(t *testing.T, d *Dispatcher, first, last string) models.Therapist {
	t.Helper()
	var therapist models.Therapist
	callOK(t, d, "therapist:create", map[string]any{
		"first_name": first,
		"last_name":  last,
	}, &therapist)
	return therapist
}

func mkClient(t *testing.T, d *Dispatcher, hospital string, therapistID uint) models.Client {
	t.Helper()
	var client models.Client
	callOK(t, d, "client:create", map[string]any{
		"hospital_number": hospital,
		"first_name":      "Test",
		"last_name":       "Client",
		"dob":             "2012-03-15",
		"therapist_id":    therapistID,
	}, &client)
	return client
}

func TestAppVersionChannel(t *testing.T) {
	d := newTestSurface(t)
	var version string
	callOK(t, d, "app:version", nil, &version)
	assert.Equal(t, "1.2.3-test", version)
}

func TestChannelSetIsComplete(t *testing.T) {
	d := newTestSurface(t)
	// list/get/create/update per entity plus app:version
	assert.Equal(t, 13, d.Channels())
}

func TestTherapistRoundTrip(t *testing.T) {
	d := newTestSurface(t)

	created := mkTherapist(t, d, "Alice", "Morgan")
	assert.NotZero(t, created.ID)
	assert.False(t, created.IsAdmin)

	var fetched models.Therapist
	callOK(t, d, "therapist:get", created.ID, &fetched)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "Alice", fetched.FirstName)

	var updated models.Therapist
	callOK(t, d, "therapist:update", map[string]any{
		"id":   created.ID,
		"data": map[string]any{"is_admin": true},
	}, &updated)
	assert.True(t, updated.IsAdmin)
	assert.Equal(t, "Alice", updated.FirstName, "untouched fields survive a patch")
}

func TestGetAbsentRecordIsNotFound(t *testing.T) {
	d := newTestSurface(t)
	callFail(t, d, "therapist:get", 999, CodeNotFound)
	callFail(t, d, "client:get", 999, CodeNotFound)
	callFail(t, d, "session:get", 999, CodeNotFound)
}

func TestUpdateAbsentRecordIsNotFound(t *testing.T) {
	d := newTestSurface(t)
	callFail(t, d, "client:update", map[string]any{
		"id":   999,
		"data": map[string]any{"notes": "hello"},
	}, CodeNotFound)
}

func TestCreateValidationNamesTheField(t *testing.T) {
	d := newTestSurface(t)
	info := callFail(t, d, "therapist:create", map[string]any{"first_name": "Only"}, CodeValidation)
	assert.Contains(t, info.Fields, "last_name")
	assert.NotContains(t, info.Fields, "first_name")
}

func TestDuplicateHospitalNumber(t *testing.T) {
	d := newTestSurface(t)
	therapist := mkTherapist(t, d, "Alice", "Morgan")
	mkClient(t, d, "H-1001", therapist.ID)

	payload := map[string]any{
		"hospital_number": "H-1001",
		"first_name":      "Other",
		"last_name":       "Person",
		"dob":             "2010-01-01",
		"therapist_id":    therapist.ID,
	}
	callFail(t, d, "client:create", payload, CodeUniqueConstraint)

	// The failure is repeatable and leaves no partial record behind.
	callFail(t, d, "client:create", payload, CodeUniqueConstraint)
	var clients []models.Client
	callOK(t, d, "client:list", nil, &clients)
	assert.Len(t, clients, 1)
}

func TestUpdateToDuplicateHospitalNumber(t *testing.T) {
	d := newTestSurface(t)
	therapist := mkTherapist(t, d, "Alice", "Morgan")
	mkClient(t, d, "H-1001", therapist.ID)
	second := mkClient(t, d, "H-1002", therapist.ID)

	callFail(t, d, "client:update", map[string]any{
		"id":   second.ID,
		"data": map[string]any{"hospital_number": "H-1001"},
	}, CodeUniqueConstraint)

	// The failed write did not persist.
	var fetched models.Client
	callOK(t, d, "client:get", second.ID, &fetched)
	assert.Equal(t, "H-1002", fetched.HospitalNumber)
}

func TestCreateIDsKeepIncreasingAfterFailures(t *testing.T) {
	d := newTestSurface(t)
	therapist := mkTherapist(t, d, "Alice", "Morgan")

	first := mkClient(t, d, "H-1", therapist.ID)
	callFail(t, d, "client:create", map[string]any{
		"hospital_number": "H-1",
		"first_name":      "Dup",
		"last_name":       "Dup",
		"dob":             "2010-01-01",
		"therapist_id":    therapist.ID,
	}, CodeUniqueConstraint)
	second := mkClient(t, d, "H-2", therapist.ID)

	assert.Greater(t, second.ID, first.ID)
}

func TestClientWithUnknownTherapist(t *testing.T) {
	d := newTestSurface(t)
	callFail(t, d, "client:create", map[string]any{
		"hospital_number": "H-1",
		"first_name":      "A",
		"last_name":       "B",
		"dob":             "2010-01-01",
		"therapist_id":    42,
	}, CodeForeignKey)
}

func TestClientListEagerLoadsTherapist(t *testing.T) {
	d := newTestSurface(t)
	therapist := mkTherapist(t, d, "Alice", "Morgan")
	mkClient(t, d, "H-1", therapist.ID)

	var clients []models.Client
	callOK(t, d, "client:list", nil, &clients)
	require.Len(t, clients, 1)
	require.NotNil(t, clients[0].Therapist)
	assert.Equal(t, "Alice", clients[0].Therapist.FirstName)

	var fetched models.Client
	callOK(t, d, "client:get", clients[0].ID, &fetched)
	require.NotNil(t, fetched.Therapist)
	assert.Equal(t, therapist.ID, fetched.Therapist.ID)
}

func TestClientCreateGetRoundTrip(t *testing.T) {
	d := newTestSurface(t)
	therapist := mkTherapist(t, d, "Alice", "Morgan")

	var created models.Client
	callOK(t, d, "client:create", map[string]any{
		"hospital_number": "H-1001",
		"first_name":      "Charlie",
		"last_name":       "Davis",
		"dob":             "2012-03-15",
		"therapist_id":    therapist.ID,
		"session_day":     "Tuesday",
		"session_time":    "10:00",
		"pre_score":       28.5,
	}, &created)

	var fetched models.Client
	callOK(t, d, "client:get", created.ID, &fetched)

	assert.Equal(t, "H-1001", fetched.HospitalNumber)
	assert.Equal(t, "Charlie", fetched.FirstName)
	assert.Equal(t, "Davis", fetched.LastName)
	assert.True(t, fetched.DOB.Equal(created.DOB))
	require.NotNil(t, fetched.SessionDay)
	assert.Equal(t, models.Tuesday, *fetched.SessionDay)
	require.NotNil(t, fetched.SessionTime)
	assert.Equal(t, "10:00", *fetched.SessionTime)
	require.NotNil(t, fetched.PreScore)
	assert.InDelta(t, 28.5, *fetched.PreScore, 0.001)

	// Fields the payload never mentioned come back at their defaults.
	assert.False(t, fetched.IsClosed)
	assert.Nil(t, fetched.Phone)
	assert.Nil(t, fetched.Outcome)
	assert.Nil(t, fetched.PostScore)
}

func TestSessionLifecycle(t *testing.T) {
	d := newTestSurface(t)
	therapist := mkTherapist(t, d, "Alice", "Morgan")
	client := mkClient(t, d, "H-1", therapist.ID)

	var session models.Session
	callOK(t, d, "session:create", map[string]any{
		"client_id":       client.ID,
		"therapist_id":    therapist.ID,
		"scheduled_at":    "2025-06-10T10:00:00Z",
		"status":          "Scheduled",
		"session_type":    "Child",
		"delivery_method": "Online",
	}, &session)
	assert.Equal(t, models.StatusScheduled, session.Status)

	// The appointment is missed: status change must carry a reason.
	callFail(t, d, "session:update", map[string]any{
		"id":   session.ID,
		"data": map[string]any{"status": "DNA"},
	}, CodeValidation)

	var updated models.Session
	callOK(t, d, "session:update", map[string]any{
		"id": session.ID,
		"data": map[string]any{
			"status":        "DNA",
			"missed_reason": "Illness",
		},
	}, &updated)
	assert.Equal(t, models.StatusDNA, updated.Status)
	require.NotNil(t, updated.MissedReason)
	assert.Equal(t, models.MissedIllness, *updated.MissedReason)

	var sessions []models.Session
	callOK(t, d, "session:list", nil, &sessions)
	require.Len(t, sessions, 1)
	require.NotNil(t, sessions[0].Client)
	require.NotNil(t, sessions[0].Therapist)
	assert.Equal(t, "H-1", sessions[0].Client.HospitalNumber)
}

func TestSessionWithUnknownClient(t *testing.T) {
	d := newTestSurface(t)
	therapist := mkTherapist(t, d, "Alice", "Morgan")

	callFail(t, d, "session:create", map[string]any{
		"client_id":       42,
		"therapist_id":    therapist.ID,
		"scheduled_at":    "2025-06-10T10:00:00Z",
		"status":          "Scheduled",
		"session_type":    "Child",
		"delivery_method": "Online",
	}, CodeForeignKey)
}

func TestMalformedPayloadNeverCrashes(t *testing.T) {
	d := newTestSurface(t)
	for _, raw := range []string{``, `not json`, `[1,2,3]`, `"strings"`, `{"unterminated`} {
		for _, channel := range []string{"therapist:create", "client:update", "session:get"} {
			resp := decode(t, d.Invoke(context.Background(), channel, json.RawMessage(raw)))
			assert.False(t, resp.Success, "channel %s payload %q", channel, raw)
			assert.Equal(t, CodeValidation, resp.Error.Code)
		}
	}
}

func TestFullScenario(t *testing.T) {
	d := newTestSurface(t)

	alice := mkTherapist(t, d, "Alice", "Morgan")
	client := mkClient(t, d, "H-1001", alice.ID)

	// Book a future session, no reason required.
	var session models.Session
	callOK(t, d, "session:create", map[string]any{
		"client_id":       client.ID,
		"therapist_id":    alice.ID,
		"scheduled_at":    "2025-07-01T14:00:00Z",
		"status":          "Scheduled",
		"session_type":    "Parent",
		"delivery_method": "Online",
	}, &session)

	// The session happens.
	callOK(t, d, "session:update", map[string]any{
		"id": session.ID,
		"data": map[string]any{
			"status":      "Attended",
			"occurred_at": "2025-07-01T14:05:00Z",
		},
	}, nil)

	// Treatment completes.
	var closed models.Client
	callOK(t, d, "client:update", map[string]any{
		"id": client.ID,
		"data": map[string]any{
			"is_closed":  true,
			"post_score": 18.0,
			"outcome":    "Improved",
		},
	}, &closed)
	assert.True(t, closed.IsClosed)
	require.NotNil(t, closed.Outcome)
	assert.Equal(t, models.OutcomeImproved, *closed.Outcome)
	require.NotNil(t, closed.PostScore)
	assert.InDelta(t, 18.0, *closed.PostScore, 0.001)
}

func TestHandlerNamesStayStable(t *testing.T) {
	d := newTestSurface(t)
	for _, entity := range []string{"therapist", "client", "session"} {
		for _, op := range []string{"list", "get", "create", "update"} {
			channel := fmt.Sprintf("%s:%s", entity, op)
			resp := decode(t, d.Invoke(context.Background(), channel, json.RawMessage(`{}`)))
			if !resp.Success {
				// A registered channel classifies its own failures; only
				// an unregistered one comes back UNKNOWN with no handler.
				assert.NotEqual(t, CodeUnknown, resp.Error.Code, "channel %s looks unregistered", channel)
			}
		}
	}
}
