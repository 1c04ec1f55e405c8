package store

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrNoSession is returned when neither session key exists for an id.
var ErrNoSession = errors.New("store: no persisted session")

// SessionStore persists the client session under two well-known keys per
// session id: the raw bearer token and the serialized session object. It is
// the only thing the storefront persists; all domain state stays upstream.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionStore(addr, password string, db int, ttl time.Duration) *SessionStore {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	// Test connection
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		return nil
	}

	log.Println("Connected to Redis successfully")
	return &SessionStore{client: client, ttl: ttl}
}

func tokenKey(id string) string { return "session:" + id + ":token" }
func authKey(id string) string  { return "session:" + id + ":auth" }

// Save writes both session keys. value is the serialized session object the
// upstream login returned; token is stored separately so the gateway can read
// it without deserializing the whole object.
func (s *SessionStore) Save(ctx context.Context, id, token string, value interface{}) error {
	jsonData, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, tokenKey(id), token, s.ttl).Err(); err != nil {
		return err
	}
	return s.client.Set(ctx, authKey(id), jsonData, s.ttl).Err()
}

func (s *SessionStore) LoadToken(ctx context.Context, id string) (string, error) {
	token, err := s.client.Get(ctx, tokenKey(id)).Result()
	if err == redis.Nil {
		return "", ErrNoSession
	}
	return token, err
}

func (s *SessionStore) LoadAuth(ctx context.Context, id string, dest interface{}) error {
	val, err := s.client.Get(ctx, authKey(id)).Result()
	if err == redis.Nil {
		return ErrNoSession
	}
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

// Clear removes both keys; clearing an absent session is a no-op.
func (s *SessionStore) Clear(ctx context.Context, id string) error {
	return s.client.Del(ctx, tokenKey(id), authKey(id)).Err()
}

func (s *SessionStore) Close() error {
	return s.client.Close()
}
