package routers

import (
	"cardioflow-service/internal/app/delivery/http/middlewares"
	"cardioflow-service/internal/app/services/core/provisioning"

	"github.com/go-chi/chi/v5"
)

func attachProvisioningRoutes(router chi.Router, middlewares *middlewares.Middlewares, provisioningController *provisioning.ProvisioningController) {
	router.With(middlewares.Authenticate).Post("/clinics", provisioningController.ProvisionClinicWithAdmin)
}
