package audit

import (
	"cardioflow-service/internal/app/models"
	"context"
)

type AuditPublisher interface {
	Publish(ctx context.Context, event *models.AuditEvent) error
}
