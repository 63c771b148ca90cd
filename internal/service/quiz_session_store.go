package service

import (
	"context"
	"skill_manager_backend/internal/config"
	"skill_manager_backend/internal/model"
	"skill_manager_backend/internal/util"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// QuizSessionStore 按技能名保存最近一次生成的测验，每个技能同时只有一个有效会话。
// 同一技能重复生成会覆盖旧会话（后写者生效），不同调用方之间不做隔离。
type QuizSessionStore interface {
	Put(ctx context.Context, session *model.QuizSession) error
	// Take 取出并删除会话，不存在或已过期时返回 util.ErrQuizSessionNotFound
	Take(ctx context.Context, skill string) (*model.QuizSession, error)
	// Restore 放回取出的会话：该技能已有新会话时不覆盖，过期时间按 CreatedAt 计算不续期
	Restore(ctx context.Context, session *model.QuizSession) error
}

type memorySession struct {
	session   *model.QuizSession
	expiresAt time.Time
}

// MemoryQuizSessionStore 进程内会话存储，适合单实例部署
type MemoryQuizSessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]memorySession
}

func NewMemoryQuizSessionStore(ttl time.Duration) *MemoryQuizSessionStore {
	return &MemoryQuizSessionStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]memorySession),
	}
}

func (s *MemoryQuizSessionStore) Put(_ context.Context, session *model.QuizSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	// 顺带清理过期会话
	for skill, entry := range s.sessions {
		if !now.Before(entry.expiresAt) {
			delete(s.sessions, skill)
		}
	}

	s.sessions[session.Skill] = memorySession{
		session:   session,
		expiresAt: now.Add(s.ttl),
	}
	return nil
}

func (s *MemoryQuizSessionStore) Take(_ context.Context, skill string) (*model.QuizSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[skill]
	if !ok {
		return nil, util.ErrQuizSessionNotFound
	}
	delete(s.sessions, skill)

	if !s.now().Before(entry.expiresAt) {
		return nil, util.ErrQuizSessionNotFound
	}
	return entry.session, nil
}

func (s *MemoryQuizSessionStore) Restore(_ context.Context, session *model.QuizSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if entry, ok := s.sessions[session.Skill]; ok && now.Before(entry.expiresAt) {
		return nil
	}

	expiresAt := session.CreatedAt.Add(s.ttl)
	if !now.Before(expiresAt) {
		return nil
	}
	s.sessions[session.Skill] = memorySession{session: session, expiresAt: expiresAt}
	return nil
}

// Len 当前保存的会话数（含未清理的过期会话）
func (s *MemoryQuizSessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// NewQuizSessionStore 按配置选择会话存储实现
func NewQuizSessionStore(kind string, ttl time.Duration, rdb *redis.Client) QuizSessionStore {
	if kind == config.SessionStoreRedis && rdb != nil {
		return NewRedisQuizSessionStore(rdb, ttl)
	}
	return NewMemoryQuizSessionStore(ttl)
}
