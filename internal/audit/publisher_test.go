package audit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"credmgr/pkg/requestcontext"
)

func TestPublisher_Sync(t *testing.T) {
	store := NewInMemoryStore()
	p := NewPublisher(store)
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	ctx := requestcontext.WithRequestID(requestcontext.WithTime(context.Background(), now), "req-9")

	require.NoError(t, p.Emit(ctx, Event{Action: ActionAdminRegistered, CompanyShortName: "acme", UserID: "u1"}))
	require.NoError(t, p.Emit(ctx, Event{Action: ActionLoginFailed, CompanyShortName: "other"}))

	events, err := p.List(ctx, "acme")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, now, events[0].Timestamp)
	assert.Equal(t, "req-9", events[0].RequestID)
	assert.Equal(t, ActionAdminRegistered, events[0].Action)
}

func TestPublisher_AsyncDrainsOnClose(t *testing.T) {
	store := NewInMemoryStore()
	p := NewPublisher(store, WithAsyncBuffer(16))

	for range 10 {
		require.NoError(t, p.Emit(context.Background(), Event{Action: ActionLoginSucceeded, CompanyShortName: "acme"}))
	}
	p.Close()

	events, err := store.ListByCompany(context.Background(), "acme")
	require.NoError(t, err)
	assert.Len(t, events, 10)
}
