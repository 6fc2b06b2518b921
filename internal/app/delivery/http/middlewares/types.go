package middlewares

import (
	"cardioflow-service/internal/app/config"
	"cardioflow-service/internal/app/services/shared/redis"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log             *zap.Logger
	RedisRepository redis.RedisRepository
	InternalConfig  *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, redisRepository redis.RedisRepository, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:             logger,
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
	}
}
