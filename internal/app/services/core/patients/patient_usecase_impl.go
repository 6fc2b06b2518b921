package patients

import (
	"cardioflow-service/internal/app/models"
	"cardioflow-service/internal/app/services/core/staff"
	"cardioflow-service/internal/pkg/constvars"
	"cardioflow-service/internal/pkg/dto/requests"
	"cardioflow-service/internal/pkg/dto/responses"
	"cardioflow-service/internal/pkg/exceptions"
	"cardioflow-service/internal/pkg/utils"
	"context"
	"time"

	"go.uber.org/zap"
)

const birthDateLayout = "2006-01-02"

type patientUsecase struct {
	Log                   *zap.Logger
	PatientRepository     PatientRepository
	ClinicStaffRepository staff.ClinicStaffRepository
}

func NewPatientUsecase(
	logger *zap.Logger,
	patientRepository PatientRepository,
	clinicStaffRepository staff.ClinicStaffRepository,
) PatientUsecase {
	return &patientUsecase{
		Log:                   logger,
		PatientRepository:     patientRepository,
		ClinicStaffRepository: clinicStaffRepository,
	}
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, callerSession *models.Session, clinicID string, request *requests.CreatePatient) (*responses.Patient, error) {
	if err := uc.authorizeClinicMember(ctx, callerSession, clinicID); err != nil {
		return nil, err
	}

	birthDate, err := time.Parse(birthDateLayout, request.BirthDate)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	patient := &models.Patient{
		ClinicID:          clinicID,
		FirstName:         request.FirstName,
		LastName:          request.LastName,
		BirthDate:         birthDate,
		Sex:               request.Sex,
		Phone:             request.Phone,
		Email:             request.Email,
		InsuranceProvider: request.InsuranceProvider,
		InsuranceNumber:   request.InsuranceNumber,
		CreatedBy:         callerSession.ProfileID,
	}

	patientID, err := uc.PatientRepository.CreatePatient(ctx, patient)
	if err != nil {
		return nil, err
	}
	patient.ID = patientID

	return buildPatientResponse(patient), nil
}

func (uc *patientUsecase) FindByID(ctx context.Context, callerSession *models.Session, clinicID, patientID string) (*responses.Patient, error) {
	if err := uc.authorizeClinicMember(ctx, callerSession, clinicID); err != nil {
		return nil, err
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID, clinicID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	return buildPatientResponse(patient), nil
}

func (uc *patientUsecase) FindAllByClinic(ctx context.Context, callerSession *models.Session, clinicID, search string, pagination *requests.Pagination) ([]responses.Patient, int, error) {
	if err := uc.authorizeClinicMember(ctx, callerSession, clinicID); err != nil {
		return nil, 0, err
	}

	total, err := uc.PatientRepository.CountByClinic(ctx, clinicID, search)
	if err != nil {
		return nil, 0, err
	}

	patients, err := uc.PatientRepository.FindAllByClinic(ctx, clinicID, search, pagination)
	if err != nil {
		return nil, 0, err
	}

	result := make([]responses.Patient, len(patients))
	for i := range patients {
		result[i] = *buildPatientResponse(&patients[i])
	}

	return result, total, nil
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, callerSession *models.Session, clinicID, patientID string, request *requests.UpdatePatient) (*responses.Patient, error) {
	if err := uc.authorizeClinicMember(ctx, callerSession, clinicID); err != nil {
		return nil, err
	}

	existing, err := uc.PatientRepository.FindByID(ctx, patientID, clinicID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	birthDate, err := time.Parse(birthDateLayout, request.BirthDate)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	existing.FirstName = request.FirstName
	existing.LastName = request.LastName
	existing.BirthDate = birthDate
	existing.Sex = request.Sex
	existing.Phone = request.Phone
	existing.Email = request.Email
	existing.InsuranceProvider = request.InsuranceProvider
	existing.InsuranceNumber = request.InsuranceNumber

	if err := uc.PatientRepository.UpdatePatient(ctx, existing); err != nil {
		return nil, err
	}

	return buildPatientResponse(existing), nil
}

func (uc *patientUsecase) DeletePatient(ctx context.Context, callerSession *models.Session, clinicID, patientID string) error {
	if err := uc.authorizeClinicMember(ctx, callerSession, clinicID); err != nil {
		return err
	}
	return uc.PatientRepository.DeletePatient(ctx, patientID, clinicID)
}

func (uc *patientUsecase) authorizeClinicMember(ctx context.Context, callerSession *models.Session, clinicID string) error {
	if callerSession == nil {
		return exceptions.ErrNotAuthorized(nil)
	}
	if callerSession.Role == constvars.RoleSuperAdmin {
		return nil
	}

	membership, err := uc.ClinicStaffRepository.FindMembership(ctx, callerSession.ProfileID, clinicID)
	if err != nil {
		return err
	}
	if membership == nil || !membership.Active {
		return exceptions.ErrNotAuthorized(nil)
	}
	return nil
}

func buildPatientResponse(patient *models.Patient) *responses.Patient {
	return &responses.Patient{
		ID:                patient.ID,
		ClinicID:          patient.ClinicID,
		FirstName:         patient.FirstName,
		LastName:          patient.LastName,
		BirthDate:         patient.BirthDate.Format(birthDateLayout),
		Age:               utils.CalculateAge(patient.BirthDate, time.Now()),
		Sex:               patient.Sex,
		Phone:             patient.Phone,
		Email:             patient.Email,
		InsuranceProvider: patient.InsuranceProvider,
		InsuranceNumber:   patient.InsuranceNumber,
	}
}
