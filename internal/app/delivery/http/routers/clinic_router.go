package routers

import (
	"cardioflow-service/internal/app/delivery/http/middlewares"
	"cardioflow-service/internal/app/services/core/billing"
	"cardioflow-service/internal/app/services/core/clinics"
	"cardioflow-service/internal/app/services/core/patients"
	"cardioflow-service/internal/app/services/core/reports"
	"cardioflow-service/internal/app/services/core/staff"

	"github.com/go-chi/chi/v5"
)

func attachClinicRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	clinicController *clinics.ClinicController,
	staffController *staff.StaffController,
	patientController *patients.PatientController,
	reportController *reports.ReportController,
	billingController *billing.BillingController,
) {
	router.With(middlewares.Authenticate).Get("/", clinicController.FindAll)
	router.With(middlewares.Authenticate).Get("/{clinic_id}", clinicController.FindByID)

	router.With(middlewares.Authenticate).Post("/{clinic_id}/staff", staffController.AssociateStaff)
	router.With(middlewares.Authenticate).Get("/{clinic_id}/staff", staffController.FindActiveStaffByClinic)
	router.With(middlewares.Authenticate).Delete("/{clinic_id}/staff/{user_id}", staffController.DeactivateStaff)

	router.With(middlewares.Authenticate).Post("/{clinic_id}/patients", patientController.CreatePatient)
	router.With(middlewares.Authenticate).Get("/{clinic_id}/patients", patientController.FindAllByClinic)
	router.With(middlewares.Authenticate).Get("/{clinic_id}/patients/{patient_id}", patientController.FindByID)
	router.With(middlewares.Authenticate).Put("/{clinic_id}/patients/{patient_id}", patientController.UpdatePatient)
	router.With(middlewares.Authenticate).Delete("/{clinic_id}/patients/{patient_id}", patientController.DeletePatient)

	router.With(middlewares.Authenticate).Post("/{clinic_id}/reports", reportController.CreateReport)
	router.With(middlewares.Authenticate).Get("/{clinic_id}/reports/{report_id}", reportController.FindByID)
	router.With(middlewares.Authenticate).Get("/{clinic_id}/patients/{patient_id}/reports", reportController.FindAllByPatient)

	router.With(middlewares.Authenticate).Post("/{clinic_id}/tuss-codes", billingController.CreateTussCode)
	router.With(middlewares.Authenticate).Get("/{clinic_id}/tuss-codes", billingController.FindActiveByClinic)
	router.With(middlewares.Authenticate).Delete("/{clinic_id}/tuss-codes/{tuss_id}", billingController.DeactivateTussCode)
}
