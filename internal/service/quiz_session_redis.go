package service

import (
	"context"
	"encoding/json"
	"errors"
	"skill_manager_backend/internal/model"
	"skill_manager_backend/internal/util"
	"time"

	"github.com/go-redis/redis/v8"
)

const quizSessionKeyPrefix = "quiz:session:"

// RedisQuizSessionStore 多实例部署时共享测验会话，依赖 Redis 过期时间回收
type RedisQuizSessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisQuizSessionStore(rdb *redis.Client, ttl time.Duration) *RedisQuizSessionStore {
	return &RedisQuizSessionStore{rdb: rdb, ttl: ttl}
}

func (s *RedisQuizSessionStore) key(skill string) string {
	return quizSessionKeyPrefix + skill
}

func (s *RedisQuizSessionStore) Put(ctx context.Context, session *model.QuizSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, s.key(session.Skill), data, s.ttl).Err()
}

// Restore 使用 SETNX，剩余有效期沿用原会话
func (s *RedisQuizSessionStore) Restore(ctx context.Context, session *model.QuizSession) error {
	remaining := time.Until(session.CreatedAt.Add(s.ttl))
	if remaining <= 0 {
		return nil
	}

	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.rdb.SetNX(ctx, s.key(session.Skill), data, remaining).Err()
}

func (s *RedisQuizSessionStore) Take(ctx context.Context, skill string) (*model.QuizSession, error) {
	// GETDEL 保证同一会话只能被取出一次
	data, err := s.rdb.GetDel(ctx, s.key(skill)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, util.ErrQuizSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var session model.QuizSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}
