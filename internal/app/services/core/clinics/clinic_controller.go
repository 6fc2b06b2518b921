package clinics

import (
	"cardioflow-service/internal/app/models"
	"cardioflow-service/internal/pkg/constvars"
	"cardioflow-service/internal/pkg/dto/responses"
	"cardioflow-service/internal/pkg/utils"
	"net/http"
	"time"

	"context"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ClinicController struct {
	Log           *zap.Logger
	ClinicUsecase ClinicUsecase
}

func NewClinicController(logger *zap.Logger, clinicUsecase ClinicUsecase) *ClinicController {
	return &ClinicController{
		Log:           logger,
		ClinicUsecase: clinicUsecase,
	}
}

func (ctrl *ClinicController) FindAll(w http.ResponseWriter, r *http.Request) {
	session, err := utils.GetSessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ClinicUsecase.FindAllForCaller(ctx, session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetClinicsSuccess, buildClinicResponses(result))
}

func (ctrl *ClinicController) FindByID(w http.ResponseWriter, r *http.Request) {
	session, err := utils.GetSessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	clinicID := chi.URLParam(r, constvars.URLParamClinicID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	clinic, err := ctrl.ClinicUsecase.FindByID(ctx, session, clinicID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetClinicSuccess, buildClinicResponse(clinic))
}

func buildClinicResponse(clinic *models.Clinic) responses.Clinic {
	return responses.Clinic{
		ID:          clinic.ID,
		Name:        clinic.Name,
		TradingName: clinic.TradingName,
		CNPJ:        clinic.CNPJ,
		City:        clinic.City,
		Address:     clinic.Address,
		Phone:       clinic.Phone,
		Email:       clinic.Email,
	}
}

func buildClinicResponses(clinics []models.Clinic) []responses.Clinic {
	result := make([]responses.Clinic, len(clinics))
	for i := range clinics {
		result[i] = buildClinicResponse(&clinics[i])
	}
	return result
}
