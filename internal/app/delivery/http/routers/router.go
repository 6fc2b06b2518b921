package routers

import (
	"cardioflow-service/internal/app/config"
	"cardioflow-service/internal/app/delivery/http/middlewares"
	"cardioflow-service/internal/app/services/core/auth"
	"cardioflow-service/internal/app/services/core/billing"
	"cardioflow-service/internal/app/services/core/clinics"
	"cardioflow-service/internal/app/services/core/patients"
	"cardioflow-service/internal/app/services/core/provisioning"
	"cardioflow-service/internal/app/services/core/reports"
	"cardioflow-service/internal/app/services/core/staff"
	"fmt"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	provisioningController *provisioning.ProvisioningController,
	clinicController *clinics.ClinicController,
	staffController *staff.StaffController,
	patientController *patients.PatientController,
	reportController *reports.ReportController,
	billingController *billing.BillingController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.Recover)
	router.Use(middlewares.RequestLogger)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/provisioning", func(r chi.Router) {
				attachProvisioningRoutes(r, middlewares, provisioningController)
			})

			r.Route("/clinics", func(r chi.Router) {
				attachClinicRoutes(r, middlewares, clinicController, staffController, patientController, reportController, billingController)
			})
		})
	})
}
