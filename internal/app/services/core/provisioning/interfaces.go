package provisioning

import (
	"cardioflow-service/internal/app/models"
	"cardioflow-service/internal/pkg/dto/requests"
	"cardioflow-service/internal/pkg/dto/responses"
	"context"
)

// ProvisioningUsecase coordinates creation of the identity, clinic and
// membership triple. On any reported failure nothing of the triple persists,
// except when a compensating delete itself fails; that is logged only.
type ProvisioningUsecase interface {
	ProvisionClinicWithAdmin(ctx context.Context, callerSession *models.Session, request *requests.ProvisionClinicWithAdmin) (*responses.ProvisionClinicWithAdmin, error)
}
