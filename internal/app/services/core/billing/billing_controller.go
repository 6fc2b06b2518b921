package billing

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

type BillingController struct {
	Log            *zap.Logger
	BillingUsecase BillingUsecase
}

func NewBillingController(logger *zap.Logger, billingUsecase BillingUsecase) *BillingController {
	return &BillingController{
		Log:            logger,
		BillingUsecase: billingUsecase,
	}
}

func (ctrl *BillingController) CreateTussCode(w http.ResponseWriter, r *http.Request) {
	session, err := utils.GetSessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	clinicID := chi.URLParam(r, constvars.URLParamClinicID)

	request := new(requests.CreateTussCode)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.BillingUsecase.CreateTussCode(ctx, session, clinicID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.TussCodeCreatedSuccess, result)
}

func (ctrl *BillingController) FindActiveByClinic(w http.ResponseWriter, r *http.Request) {
	session, err := utils.GetSessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	clinicID := chi.URLParam(r, constvars.URLParamClinicID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.BillingUsecase.FindActiveByClinic(ctx, session, clinicID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTussCodesSuccess, result)
}

func (ctrl *BillingController) DeactivateTussCode(w http.ResponseWriter, r *http.Request) {
	session, err := utils.GetSessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	clinicID := chi.URLParam(r, constvars.URLParamClinicID)
	tussCodeID := chi.URLParam(r, constvars.URLParamTussID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.BillingUsecase.DeactivateTussCode(ctx, session, clinicID, tussCodeID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TussCodeDeletedSuccess, nil)
}
