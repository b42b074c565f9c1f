// Package session resolves session tokens written to Redis by the auth
// system. Sessions are never created here.
package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/vickyalvandob/task/internal/core/domain"
	"github.com/vickyalvandob/task/internal/core/ports"
)

const sessionKeyPrefix = "session:"

type Store struct {
	rdb redis.Cmdable
}

var _ ports.IdentityProvider = (*Store)(nil)

func NewStore(rdb redis.Cmdable) *Store {
	return &Store{rdb: rdb}
}

// UserID returns domain.ErrUnauthenticated for unknown tokens and for
// sessions that do not hold a valid user id.
func (s *Store) UserID(ctx context.Context, token string) (uint64, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, domain.ErrUnauthenticated
	}

	raw, err := s.rdb.Get(ctx, sessionKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return 0, domain.ErrUnauthenticated
	}
	if err != nil {
		return 0, fmt.Errorf("session lookup: %w", err)
	}

	userID, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || userID == 0 {
		return 0, domain.ErrUnauthenticated
	}
	return userID, nil
}
