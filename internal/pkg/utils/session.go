package utils

import (
	"cardioflow-service/internal/app/models"
	"cardioflow-service/internal/pkg/exceptions"
	"context"

	"cardioflow-service/internal/pkg/constvars"
)

func GetSessionFromContext(ctx context.Context) (*models.Session, error) {
	session, ok := ctx.Value(constvars.ContextSessionDataKey).(*models.Session)
	if !ok || session == nil {
		return nil, exceptions.ErrInvalidSession(nil)
	}
	return session, nil
}
