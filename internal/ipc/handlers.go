package ipc

import (
	"context"
	"encoding/json"

	"github.com/sgrubb/therapy-log/internal/store"
)

// RegisterHandlers binds every channel to its handler. The channel set is
// fixed: list/get/create/update per entity plus app:version. Create and
// update handlers validate before any storage call; list and get pass
// straight through to the store, whose fetch-or-fail reads surface
// missing ids as NOT_FOUND.
func RegisterHandlers(d *Dispatcher, st *store.Store, version string) {
	// App
	d.Register("app:version", func(ctx context.Context, _ json.RawMessage) (any, error) {
		return version, nil
	})

	// Therapists
	d.Register("therapist:list", func(ctx context.Context, _ json.RawMessage) (any, error) {
		return st.ListTherapists(ctx)
	})

	d.Register("therapist:get", func(ctx context.Context, raw json.RawMessage) (any, error) {
		id, err := decodeID(raw)
		if err != nil {
			return nil, err
		}
		return st.GetTherapist(ctx, id)
	})

	d.Register("therapist:create", func(ctx context.Context, raw json.RawMessage) (any, error) {
		therapist, err := DecodeTherapistCreate(raw)
		if err != nil {
			return nil, err
		}
		if err := st.CreateTherapist(ctx, therapist); err != nil {
			return nil, err
		}
		return therapist, nil
	})

	d.Register("therapist:update", func(ctx context.Context, raw json.RawMessage) (any, error) {
		id, data, err := decodeUpdate(raw)
		if err != nil {
			return nil, err
		}
		changes, err := DecodeTherapistUpdate(data)
		if err != nil {
			return nil, err
		}
		return st.UpdateTherapist(ctx, id, changes)
	})

	// Clients
	d.Register("client:list", func(ctx context.Context, _ json.RawMessage) (any, error) {
		return st.ListClients(ctx)
	})

	d.Register("client:get", func(ctx context.Context, raw json.RawMessage) (any, error) {
		id, err := decodeID(raw)
		if err != nil {
			return nil, err
		}
		return st.GetClient(ctx, id)
	})

	d.Register("client:create", func(ctx context.Context, raw json.RawMessage) (any, error) {
		client, err := DecodeClientCreate(raw)
		if err != nil {
			return nil, err
		}
		if err := st.CreateClient(ctx, client); err != nil {
			return nil, err
		}
		return client, nil
	})

	d.Register("client:update", func(ctx context.Context, raw json.RawMessage) (any, error) {
		id, data, err := decodeUpdate(raw)
		if err != nil {
			return nil, err
		}
		changes, err := DecodeClientUpdate(data)
		if err != nil {
			return nil, err
		}
		return st.UpdateClient(ctx, id, changes)
	})

	// Sessions
	d.Register("session:list", func(ctx context.Context, _ json.RawMessage) (any, error) {
		return st.ListSessions(ctx)
	})

	d.Register("session:get", func(ctx context.Context, raw json.RawMessage) (any, error) {
		id, err := decodeID(raw)
		if err != nil {
			return nil, err
		}
		return st.GetSession(ctx, id)
	})

	d.Register("session:create", func(ctx context.Context, raw json.RawMessage) (any, error) {
		session, err := DecodeSessionCreate(raw)
		if err != nil {
			return nil, err
		}
		if err := st.CreateSession(ctx, session); err != nil {
			return nil, err
		}
		return session, nil
	})

	d.Register("session:update", func(ctx context.Context, raw json.RawMessage) (any, error) {
		id, data, err := decodeUpdate(raw)
		if err != nil {
			return nil, err
		}
		changes, err := DecodeSessionUpdate(data)
		if err != nil {
			return nil, err
		}
		return st.UpdateSession(ctx, id, changes)
	})
}
