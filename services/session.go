package services

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionTTL = 24 * time.Hour

// SessionState carries the per-customer selections that outlive a
// single screen: the caterer being browsed and the default delivery
// date. A zero caterer id / empty date means "unset".
type SessionState interface {
	SelectedCaterer(ctx context.Context, customerID uint) (uint, error)
	SetSelectedCaterer(ctx context.Context, customerID, catererID uint) error
	DeliveryDate(ctx context.Context, customerID uint) (string, error)
	SetDeliveryDate(ctx context.Context, customerID uint, date string) error
	Clear(ctx context.Context, customerID uint) error
}

// RedisSession keeps session state in Redis so it survives restarts.
type RedisSession struct {
	Client *redis.Client
}

func NewRedisSession(client *redis.Client) *RedisSession {
	return &RedisSession{Client: client}
}

func sessionKey(customerID uint) string {
	return fmt.Sprintf("session:%d", customerID)
}

func (s *RedisSession) SelectedCaterer(ctx context.Context, customerID uint) (uint, error) {
	val, err := s.Client.HGet(ctx, sessionKey(customerID), "caterer_id").Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, nil
	}
	return uint(id), nil
}

func (s *RedisSession) SetSelectedCaterer(ctx context.Context, customerID, catererID uint) error {
	key := sessionKey(customerID)
	if err := s.Client.HSet(ctx, key, "caterer_id", strconv.FormatUint(uint64(catererID), 10)).Err(); err != nil {
		return err
	}
	return s.Client.Expire(ctx, key, sessionTTL).Err()
}

func (s *RedisSession) DeliveryDate(ctx context.Context, customerID uint) (string, error) {
	val, err := s.Client.HGet(ctx, sessionKey(customerID), "delivery_date").Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (s *RedisSession) SetDeliveryDate(ctx context.Context, customerID uint, date string) error {
	key := sessionKey(customerID)
	if err := s.Client.HSet(ctx, key, "delivery_date", date).Err(); err != nil {
		return err
	}
	return s.Client.Expire(ctx, key, sessionTTL).Err()
}

func (s *RedisSession) Clear(ctx context.Context, customerID uint) error {
	return s.Client.Del(ctx, sessionKey(customerID)).Err()
}

// MemorySession is the in-process fallback used when Redis is not
// configured, and in tests.
type MemorySession struct {
	mu       sync.Mutex
	caterers map[uint]uint
	dates    map[uint]string
}

func NewMemorySession() *MemorySession {
	return &MemorySession{
		caterers: make(map[uint]uint),
		dates:    make(map[uint]string),
	}
}

func (s *MemorySession) SelectedCaterer(_ context.Context, customerID uint) (uint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.caterers[customerID], nil
}

func (s *MemorySession) SetSelectedCaterer(_ context.Context, customerID, catererID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.caterers[customerID] = catererID
	return nil
}

func (s *MemorySession) DeliveryDate(_ context.Context, customerID uint) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dates[customerID], nil
}

func (s *MemorySession) SetDeliveryDate(_ context.Context, customerID uint, date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dates[customerID] = date
	return nil
}

func (s *MemorySession) Clear(_ context.Context, customerID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.caterers, customerID)
	delete(s.dates, customerID)
	return nil
}
