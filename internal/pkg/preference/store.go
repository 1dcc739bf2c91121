package preference

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ijalalfrz/flight-explorer/internal/app/dto"
	"github.com/redis/go-redis/v9"
)

// ErrPreferenceNotFound is returned when a client never stored a preference
// or it expired.
var ErrPreferenceNotFound = errors.New("preference not found")

type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// Store keeps the UI preferences of each client as JSON in redis.
type Store struct {
	redis RedisClient
}

func NewStore(redis RedisClient) *Store {
	return &Store{
		redis: redis,
	}
}

func (s *Store) GetKey(clientID string) string {
	return fmt.Sprintf("preference:ui:%s", clientID)
}

func (s *Store) SetPreference(ctx context.Context,
	clientID string,
	preference dto.Preference,
	expiration time.Duration,
) error {
	data, err := json.Marshal(preference)
	if err != nil {
		return fmt.Errorf("failed to marshal preference: %w", err)
	}

	err = s.redis.Set(ctx, s.GetKey(clientID), data, expiration).Err()
	if err != nil {
		return fmt.Errorf("failed to set preference: %w", err)
	}

	return nil
}

func (s *Store) GetPreference(ctx context.Context, clientID string) (dto.Preference, error) {
	data, err := s.redis.Get(ctx, s.GetKey(clientID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return dto.Preference{}, ErrPreferenceNotFound
	}

	if err != nil {
		return dto.Preference{}, fmt.Errorf("failed to get preference: %w", err)
	}

	var preference dto.Preference
	if err := json.Unmarshal(data, &preference); err != nil {
		return dto.Preference{}, fmt.Errorf("failed to unmarshal preference: %w", err)
	}

	return preference, nil
}
