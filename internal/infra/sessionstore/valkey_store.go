package sessionstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/weather-companion/internal/domain/conversation"
)

// ValkeyStore shares sessions between replicas through a Valkey-compatible server.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "companion"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

func (s *ValkeyStore) Get(ctx context.Context, id string) (conversation.Session, bool, error) {
	cmd := s.client.B().Get().Key(s.sessionKey(id)).Build()
	payload, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return conversation.Session{}, false, nil
		}
		return conversation.Session{}, false, err
	}
	var sess conversation.Session
	if err := json.Unmarshal([]byte(payload), &sess); err != nil {
		return conversation.Session{}, false, err
	}
	return sess, true, nil
}

func (s *ValkeyStore) Save(ctx context.Context, sess conversation.Session, ttl time.Duration) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	builder := s.client.B().Set().Key(s.sessionKey(sess.ID)).Value(string(payload))
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) sessionKey(id string) string {
	return fmt.Sprintf("%s:session:%s", s.prefix, id)
}

var _ conversation.Store = (*ValkeyStore)(nil)
