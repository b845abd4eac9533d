package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/valkey-io/valkey-go/mock"
	"go.uber.org/mock/gomock"

	"github.com/yanqian/weather-companion/internal/domain/chat"
	"github.com/yanqian/weather-companion/internal/domain/conversation"
)

func TestValkeyStoreGetMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewClient(ctrl)
	client.EXPECT().Do(gomock.Any(), mock.Match("GET", "companion:session:s-1")).Return(mock.Result(mock.ValkeyNil()))

	_, ok, err := NewValkeyStore(client, "").Get(context.Background(), "s-1")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestValkeyStoreGetDecodes(t *testing.T) {
	stored := conversation.Session{ID: "s-1", Messages: []chat.Message{chat.User("Paris")}, Activities: []string{"Walk"}}
	payload, err := json.Marshal(stored)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	client := mock.NewClient(ctrl)
	client.EXPECT().Do(gomock.Any(), mock.Match("GET", "weather:session:s-1")).Return(mock.Result(mock.ValkeyString(string(payload))))

	got, ok, err := NewValkeyStore(client, "weather").Get(context.Background(), "s-1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, stored.Messages, got.Messages)
	require.Equal(t, stored.Activities, got.Activities)
}

func TestValkeyStoreGetError(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewClient(ctrl)
	client.EXPECT().Do(gomock.Any(), gomock.Any()).Return(mock.ErrorResult(errors.New("connection reset")))

	_, ok, err := NewValkeyStore(client, "").Get(context.Background(), "s-1")
	require.Error(t, err)
	require.False(t, ok)
}

func TestValkeyStoreSaveSetsExpiry(t *testing.T) {
	cases := []struct {
		name string
		ttl  time.Duration
		want []string
	}{
		{name: "hours", ttl: 2 * time.Hour, want: []string{"EX", "7200"}},
		{name: "clamped to one second", ttl: 200 * time.Millisecond, want: []string{"EX", "1"}},
		{name: "no expiry", ttl: 0, want: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var sent []string
			ctrl := gomock.NewController(t)
			client := mock.NewClient(ctrl)
			client.EXPECT().Do(gomock.Any(), mock.MatchFn(func(cmd []string) bool {
				sent = cmd
				return true
			})).Return(mock.Result(mock.ValkeyString("OK")))

			err := NewValkeyStore(client, "").Save(context.Background(), conversation.Session{ID: "s-1"}, tc.ttl)
			require.NoError(t, err)
			require.GreaterOrEqual(t, len(sent), 3)
			require.Equal(t, []string{"SET", "companion:session:s-1"}, sent[:2])

			var decoded conversation.Session
			require.NoError(t, json.Unmarshal([]byte(sent[2]), &decoded))
			require.Equal(t, "s-1", decoded.ID)
			if tc.want == nil {
				require.Len(t, sent, 3)
				return
			}
			require.Equal(t, tc.want, sent[3:])
		})
	}
}
