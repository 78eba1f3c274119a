package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"StylistAI/app/common/consts/biz"

	"github.com/zeromicro/go-zero/core/stores/redis"
)

var (
	_ SessionModel = (*redisSessionModel)(nil)
	_ SessionModel = (*MemorySessionModel)(nil)
)

type SessionModel interface {
	FindOne(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}

type redisSessionModel struct {
	rds *redis.Redis
	ttl time.Duration
}

// NewRedisSessionModel stores sessions as JSON documents that expire after ttl
// without activity.
func NewRedisSessionModel(rds *redis.Redis, ttl time.Duration) SessionModel {
	if ttl <= 0 {
		ttl = biz.SessionIdleTTL
	}
	return &redisSessionModel{rds: rds, ttl: ttl}
}

func sessionKey(id string) string {
	return biz.SESSION_KEY_PREFIX + id
}

func (m *redisSessionModel) FindOne(ctx context.Context, id string) (*Session, error) {
	raw, err := m.rds.GetCtx(ctx, sessionKey(id))
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, ErrNotFound
	}

	var s Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	return &s, nil
}

func (m *redisSessionModel) Save(ctx context.Context, s *Session) error {
	if s == nil || s.Id == "" {
		return fmt.Errorf("session id is required")
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", s.Id, err)
	}
	return m.rds.SetexCtx(ctx, sessionKey(s.Id), string(raw), int(m.ttl/time.Second))
}

func (m *redisSessionModel) Delete(ctx context.Context, id string) error {
	n, err := m.rds.DelCtx(ctx, sessionKey(id))
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// MemorySessionModel keeps sessions in process. Expiry is driven by the
// session:expire task, not by the model.
type MemorySessionModel struct {
	mu       sync.RWMutex
	sessions map[string][]byte
}

func NewMemorySessionModel() *MemorySessionModel {
	return &MemorySessionModel{sessions: make(map[string][]byte)}
}

func (m *MemorySessionModel) FindOne(_ context.Context, id string) (*Session, error) {
	m.mu.RLock()
	raw, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}

	// stored encoded so callers never share the live value
	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	return &s, nil
}

func (m *MemorySessionModel) Save(_ context.Context, s *Session) error {
	if s == nil || s.Id == "" {
		return fmt.Errorf("session id is required")
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", s.Id, err)
	}
	m.mu.Lock()
	m.sessions[s.Id] = raw
	m.mu.Unlock()
	return nil
}

func (m *MemorySessionModel) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(m.sessions, id)
	return nil
}
