package repo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/ChristianRende22/Web-proyecto/app/model"
)

// SessionRepository caches the authenticated employee profile between
// requests so the role gate never has to hit Postgres on every call.
type SessionRepository interface {
	Save(ctx context.Context, session model.Session, ttl time.Duration) error
	Find(ctx context.Context, userID uuid.UUID) (*model.Session, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

type SessionRepo struct {
	client *redis.Client
}

func NewSessionRepo(client *redis.Client) *SessionRepo {
	return &SessionRepo{client: client}
}

func sessionKey(userID uuid.UUID) string {
	return "session:" + userID.String()
}

func (r *SessionRepo) Save(ctx context.Context, session model.Session, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, sessionKey(session.UserID), data, ttl).Err()
}

func (r *SessionRepo) Find(ctx context.Context, userID uuid.UUID) (*model.Session, error) {
	data, err := r.client.Get(ctx, sessionKey(userID)).Bytes()
	if err != nil {
		return nil, err
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Delete is a no-op when no session exists.
func (r *SessionRepo) Delete(ctx context.Context, userID uuid.UUID) error {
	return r.client.Del(ctx, sessionKey(userID)).Err()
}
