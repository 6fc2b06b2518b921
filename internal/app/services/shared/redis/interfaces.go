package redis

import (
	"cardioflow-service/internal/app/models"
	"context"
	"time"
)

type RedisRepository interface {
	CreateSession(ctx context.Context, session *models.Session, exp time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}
