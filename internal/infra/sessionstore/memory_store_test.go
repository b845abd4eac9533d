package sessionstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/weather-companion/internal/domain/chat"
	"github.com/yanqian/weather-companion/internal/domain/conversation"
	"github.com/yanqian/weather-companion/internal/domain/weather"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	offset := int64(-18000)
	sess := conversation.Session{
		ID:       "abc",
		Messages: []chat.Message{chat.User("Boston"), chat.Bot("Weather in Boston: 21°C, clear sky.")},
		Weather:  &weather.Record{City: "Boston", Temperature: 21, TimezoneOffset: &offset},
	}

	require.NoError(t, store.Save(ctx, sess, time.Hour))
	got, ok, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, sess.Messages, got.Messages)
	require.Equal(t, int64(-18000), *got.Weather.TimezoneOffset)

	// Mutating the returned copy must not leak into the store.
	got.Messages[0].Text = "changed"
	again, _, _ := store.Get(ctx, "abc")
	require.Equal(t, "Boston", again.Messages[0].Text)
}

func TestMemoryStoreMissing(t *testing.T) {
	_, ok, err := NewMemoryStore().Get(context.Background(), "nope")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryStoreExpires(t *testing.T) {
	store := NewMemoryStore()
	now := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, conversation.Session{ID: "short"}, time.Minute))
	require.NoError(t, store.Save(ctx, conversation.Session{ID: "forever"}, 0))
	require.Equal(t, 2, store.Len())

	now = now.Add(2 * time.Minute)
	_, ok, err := store.Get(ctx, "short")
	require.NoError(t, err)
	require.False(t, ok)
	_, ok, _ = store.Get(ctx, "forever")
	require.True(t, ok)
	require.Equal(t, 1, store.Len())
}

func TestValkeySessionKey(t *testing.T) {
	require.Equal(t, "companion:session:abc", NewValkeyStore(nil, "").sessionKey("abc"))
	require.Equal(t, "wc:session:abc", NewValkeyStore(nil, "wc").sessionKey("abc"))
}
