package reports

import (
	"cardioflow-service/internal/app/models"
	"cardioflow-service/internal/app/services/core/patients"
	"cardioflow-service/internal/app/services/core/staff"
	"cardioflow-service/internal/pkg/constvars"
	"cardioflow-service/internal/pkg/dto/requests"
	"cardioflow-service/internal/pkg/dto/responses"
	"cardioflow-service/internal/pkg/exceptions"
	"context"
	"time"

	"go.uber.org/zap"
)

const examDateLayout = "2006-01-02"

type reportUsecase struct {
	Log                   *zap.Logger
	ReportRepository      ReportRepository
	PatientRepository     patients.PatientRepository
	ClinicStaffRepository staff.ClinicStaffRepository
}

func NewReportUsecase(
	logger *zap.Logger,
	reportRepository ReportRepository,
	patientRepository patients.PatientRepository,
	clinicStaffRepository staff.ClinicStaffRepository,
) ReportUsecase {
	return &reportUsecase{
		Log:                   logger,
		ReportRepository:      reportRepository,
		PatientRepository:     patientRepository,
		ClinicStaffRepository: clinicStaffRepository,
	}
}

func (uc *reportUsecase) CreateReport(ctx context.Context, callerSession *models.Session, clinicID string, request *requests.CreateReport) (*responses.Report, error) {
	if err := uc.authorizeClinicMember(ctx, callerSession, clinicID); err != nil {
		return nil, err
	}

	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID, clinicID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	examDate, err := time.Parse(examDateLayout, request.ExamDate)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	findings := make([]models.VesselFinding, len(request.Findings))
	for i, finding := range request.Findings {
		findings[i] = models.VesselFinding{
			Vessel:          finding.Vessel,
			StenosisPercent: finding.StenosisPercent,
			LesionType:      finding.LesionType,
			StentPlaced:     finding.StentPlaced,
			StentType:       finding.StentType,
		}
	}

	report := &models.Report{
		ClinicID:    clinicID,
		PatientID:   request.PatientID,
		ExamType:    request.ExamType,
		ExamDate:    examDate,
		Indication:  request.Indication,
		AccessRoute: request.AccessRoute,
		Findings:    findings,
		Conclusion:  GenerateConclusion(request.ExamType, findings),
		CreatedBy:   callerSession.ProfileID,
		CreatedAt:   time.Now(),
	}

	reportID, err := uc.ReportRepository.CreateReport(ctx, report)
	if err != nil {
		return nil, err
	}

	return buildReportResponse(reportID, report), nil
}

func (uc *reportUsecase) FindByID(ctx context.Context, callerSession *models.Session, clinicID, reportID string) (*responses.Report, error) {
	if err := uc.authorizeClinicMember(ctx, callerSession, clinicID); err != nil {
		return nil, err
	}

	report, err := uc.ReportRepository.FindByID(ctx, reportID, clinicID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, exceptions.ErrReportNotFound(nil)
	}

	return buildReportResponse(report.ID.Hex(), report), nil
}

func (uc *reportUsecase) FindAllByPatient(ctx context.Context, callerSession *models.Session, clinicID, patientID string) ([]responses.Report, error) {
	if err := uc.authorizeClinicMember(ctx, callerSession, clinicID); err != nil {
		return nil, err
	}

	reports, err := uc.ReportRepository.FindAllByPatient(ctx, clinicID, patientID)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Report, len(reports))
	for i := range reports {
		result[i] = *buildReportResponse(reports[i].ID.Hex(), &reports[i])
	}

	return result, nil
}

func (uc *reportUsecase) authorizeClinicMember(ctx context.Context, callerSession *models.Session, clinicID string) error {
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

func buildReportResponse(reportID string, report *models.Report) *responses.Report {
	findings := make([]responses.VesselFinding, len(report.Findings))
	for i, finding := range report.Findings {
		findings[i] = responses.VesselFinding{
			Vessel:          finding.Vessel,
			StenosisPercent: finding.StenosisPercent,
			LesionType:      finding.LesionType,
			StentPlaced:     finding.StentPlaced,
			StentType:       finding.StentType,
		}
	}

	return &responses.Report{
		ID:          reportID,
		ClinicID:    report.ClinicID,
		PatientID:   report.PatientID,
		ExamType:    report.ExamType,
		ExamDate:    report.ExamDate.Format(examDateLayout),
		Indication:  report.Indication,
		AccessRoute: report.AccessRoute,
		Findings:    findings,
		Conclusion:  report.Conclusion,
		CreatedBy:   report.CreatedBy,
		CreatedAt:   report.CreatedAt.Format(time.RFC3339),
	}
}
