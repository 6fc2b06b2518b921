package auth

import (
	"cardioflow-service/internal/app/models"
	"cardioflow-service/internal/pkg/dto/requests"
	"cardioflow-service/internal/pkg/dto/responses"
	"context"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, callerSession *models.Session) error
}
