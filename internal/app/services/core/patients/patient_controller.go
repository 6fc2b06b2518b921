package patients

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

type PatientController struct {
	Log            *zap.Logger
	PatientUsecase PatientUsecase
}

func NewPatientController(logger *zap.Logger, patientUsecase PatientUsecase) *PatientController {
	return &PatientController{
		Log:            logger,
		PatientUsecase: patientUsecase,
	}
}

func (ctrl *PatientController) CreatePatient(w http.ResponseWriter, r *http.Request) {
	session, err := utils.GetSessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	clinicID := chi.URLParam(r, constvars.URLParamClinicID)

	request := new(requests.CreatePatient)
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

	result, err := ctrl.PatientUsecase.CreatePatient(ctx, session, clinicID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.PatientCreatedSuccess, result)
}

func (ctrl *PatientController) FindByID(w http.ResponseWriter, r *http.Request) {
	session, err := utils.GetSessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	clinicID := chi.URLParam(r, constvars.URLParamClinicID)
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.PatientUsecase.FindByID(ctx, session, clinicID, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientSuccess, result)
}

func (ctrl *PatientController) FindAllByClinic(w http.ResponseWriter, r *http.Request) {
	session, err := utils.GetSessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	clinicID := chi.URLParam(r, constvars.URLParamClinicID)
	search := r.URL.Query().Get(constvars.URLQueryParamSearch)
	pagination := utils.BuildPaginationRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, total, err := ctrl.PatientUsecase.FindAllByClinic(ctx, session, clinicID, search, pagination)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	paginationResponse := utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetPatientsSuccess, paginationResponse, result)
}

func (ctrl *PatientController) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	session, err := utils.GetSessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	clinicID := chi.URLParam(r, constvars.URLParamClinicID)
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	request := new(requests.UpdatePatient)
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

	result, err := ctrl.PatientUsecase.UpdatePatient(ctx, session, clinicID, patientID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientUpdatedSuccess, result)
}

func (ctrl *PatientController) DeletePatient(w http.ResponseWriter, r *http.Request) {
	session, err := utils.GetSessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	clinicID := chi.URLParam(r, constvars.URLParamClinicID)
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.PatientUsecase.DeletePatient(ctx, session, clinicID, patientID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientDeletedSuccess, nil)
}
