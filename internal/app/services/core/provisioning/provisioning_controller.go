package provisioning

import (
	"cardioflow-service/internal/pkg/constvars"
	"cardioflow-service/internal/pkg/dto/requests"
	"cardioflow-service/internal/pkg/exceptions"
	"cardioflow-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ProvisioningController struct {
	Log                 *zap.Logger
	ProvisioningUsecase ProvisioningUsecase
}

func NewProvisioningController(logger *zap.Logger, provisioningUsecase ProvisioningUsecase) *ProvisioningController {
	return &ProvisioningController{
		Log:                 logger,
		ProvisioningUsecase: provisioningUsecase,
	}
}

func (ctrl *ProvisioningController) ProvisionClinicWithAdmin(w http.ResponseWriter, r *http.Request) {
	session, err := utils.GetSessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.ProvisionClinicWithAdmin)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	// The profile wait alone can take the full attempt budget, so the
	// handler deadline leaves room for it plus the store calls.
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	result, err := ctrl.ProvisioningUsecase.ProvisionClinicWithAdmin(ctx, session, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ClinicProvisionedSuccess, result)
}
