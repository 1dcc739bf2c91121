package preference

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/ijalalfrz/flight-explorer/internal/app/dto"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestStore_GetKey_Closure(t *testing.T) {
	getKeyRequest := func(clientID string, want string) func(t *testing.T) {
		return func(t *testing.T) {
			s := &Store{}
			got := s.GetKey(clientID)
			if got != want {
				t.Fatalf("expected %s, got %s", want, got)
			}
		}
	}

	t.Run("basic_key", getKeyRequest("client-1", "preference:ui:client-1"))
}

func TestStore_SetPreference_Closure(t *testing.T) {
	setPreferenceRequest := func(clientID string, pref dto.Preference, exp time.Duration,
		mockSetup func(m *MockRedisClient), wantErr bool) func(t *testing.T) {
		return func(t *testing.T) {
			m := NewMockRedisClient(t)
			mockSetup(m)
			s := NewStore(m)

			err := s.SetPreference(context.Background(), clientID, pref, exp)
			if (err != nil) != wantErr {
				t.Fatalf("SetPreference error = %v, wantErr %v", err, wantErr)
			}
		}
	}

	t.Run("success", setPreferenceRequest("client-1", dto.Preference{Theme: dto.ThemeDark}, 24*time.Hour,
		func(m *MockRedisClient) {
			m.On("Set", mock.Anything, "preference:ui:client-1", []byte(`{"theme":"dark"}`), 24*time.Hour).
				Return(redis.NewStatusResult("OK", nil))
		}, false))

	t.Run("redis_down", setPreferenceRequest("client-1", dto.Preference{Theme: dto.ThemeLight}, time.Hour,
		func(m *MockRedisClient) {
			m.On("Set", mock.Anything, "preference:ui:client-1", mock.Anything, time.Hour).
				Return(redis.NewStatusResult("", errors.New("connection refused")))
		}, true))
}

func TestStore_GetPreference_Closure(t *testing.T) {
	getPreferenceRequest := func(clientID string, mockSetup func(m *MockRedisClient),
		want dto.Preference, wantErr error) func(t *testing.T) {
		return func(t *testing.T) {
			m := NewMockRedisClient(t)
			mockSetup(m)
			s := NewStore(m)

			got, err := s.GetPreference(context.Background(), clientID)
			if wantErr != nil {
				assert.ErrorIs(t, err, wantErr)
				return
			}

			assert.NoError(t, err)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("GetPreference mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("success", getPreferenceRequest("client-1", func(m *MockRedisClient) {
		m.On("Get", mock.Anything, "preference:ui:client-1").Return(redis.NewStringResult(`{"theme":"dark"}`, nil))
	}, dto.Preference{Theme: dto.ThemeDark}, nil))

	t.Run("not_found", getPreferenceRequest("client-2", func(m *MockRedisClient) {
		m.On("Get", mock.Anything, "preference:ui:client-2").Return(redis.NewStringResult("", redis.Nil))
	}, dto.Preference{}, ErrPreferenceNotFound))
}
