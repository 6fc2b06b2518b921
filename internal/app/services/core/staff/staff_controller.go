package staff

import (
	"cardioflow-service/internal/pkg/constvars"
	"cardioflow-service/internal/pkg/dto/requests"
	"cardioflow-service/internal/pkg/exceptions"
	"cardioflow-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type StaffController struct {
	Log          *zap.Logger
	StaffUsecase StaffUsecase
}

func NewStaffController(logger *zap.Logger, staffUsecase StaffUsecase) *StaffController {
	return &StaffController{
		Log:          logger,
		StaffUsecase: staffUsecase,
	}
}

func (ctrl *StaffController) AssociateStaff(w http.ResponseWriter, r *http.Request) {
	session, err := utils.GetSessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.AssociateStaff)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.ClinicID = chi.URLParam(r, constvars.URLParamClinicID)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	// A fresh identity may need the full profile wait before the membership
	// can be written.
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	result, err := ctrl.StaffUsecase.AssociateStaff(ctx, session, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	message := constvars.StaffAssociatedSuccess
	if result.Reactivated {
		message = constvars.StaffReactivatedSuccess
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, result)
}

func (ctrl *StaffController) FindActiveStaffByClinic(w http.ResponseWriter, r *http.Request) {
	session, err := utils.GetSessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	clinicID := chi.URLParam(r, constvars.URLParamClinicID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.StaffUsecase.FindActiveStaffByClinic(ctx, session, clinicID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetStaffSuccess, result)
}

func (ctrl *StaffController) DeactivateStaff(w http.ResponseWriter, r *http.Request) {
	session, err := utils.GetSessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	clinicID := chi.URLParam(r, constvars.URLParamClinicID)
	profileID := chi.URLParam(r, constvars.URLParamUserID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.StaffUsecase.DeactivateStaff(ctx, session, clinicID, profileID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.StaffDeactivatedSuccess, nil)
}
