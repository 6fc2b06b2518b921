package main

import (
	"cardioflow-service/internal/app/config"
	"cardioflow-service/internal/app/delivery/http/middlewares"
	"cardioflow-service/internal/app/delivery/http/routers"
	"cardioflow-service/internal/app/drivers/database"
	"cardioflow-service/internal/app/drivers/logger"
	"cardioflow-service/internal/app/drivers/messaging"
	"cardioflow-service/internal/app/services/core/auth"
	"cardioflow-service/internal/app/services/core/billing"
	"cardioflow-service/internal/app/services/core/clinics"
	"cardioflow-service/internal/app/services/core/patients"
	"cardioflow-service/internal/app/services/core/profiles"
	"cardioflow-service/internal/app/services/core/provisioning"
	"cardioflow-service/internal/app/services/core/reports"
	"cardioflow-service/internal/app/services/core/staff"
	"cardioflow-service/internal/app/services/shared/audit"
	"cardioflow-service/internal/app/services/shared/identity"
	sharedredis "cardioflow-service/internal/app/services/shared/redis"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	postgresDB := database.NewPostgresDB(driverConfig)
	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		PostgresDB:     postgresDB,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	mongoDatabase := bootstrap.MongoDB.Database(bootstrap.DriverConfig.MongoDB.DbName)

	// Shared
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	identityProviderClient := identity.NewIdentityProviderClient(bootstrap.InternalConfig)
	auditPublisher := audit.NewRabbitMQPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig.Provisioning.AuditQueue)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, redisRepository, bootstrap.InternalConfig)

	// Profiles
	profileRepository := profiles.NewProfilePostgresRepository(bootstrap.PostgresDB)

	// Enrollment
	enroller := identity.NewEnroller(bootstrap.Logger, identityProviderClient, profileRepository, bootstrap.InternalConfig)

	// Auth
	authUsecase := auth.NewAuthUsecase(bootstrap.Logger, identityProviderClient, profileRepository, redisRepository, bootstrap.InternalConfig)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase)

	// Clinics
	clinicRepository := clinics.NewClinicPostgresRepository(bootstrap.PostgresDB)
	clinicStaffRepository := staff.NewClinicStaffPostgresRepository(bootstrap.PostgresDB)
	clinicUsecase := clinics.NewClinicUsecase(clinicRepository, clinicStaffRepository)
	clinicController := clinics.NewClinicController(bootstrap.Logger, clinicUsecase)

	// Staff
	staffUsecase := staff.NewStaffUsecase(
		bootstrap.Logger,
		profileRepository,
		clinicRepository,
		clinicStaffRepository,
		identityProviderClient,
		enroller,
		auditPublisher,
		bootstrap.InternalConfig,
	)
	staffController := staff.NewStaffController(bootstrap.Logger, staffUsecase)

	// Provisioning
	provisioningUsecase := provisioning.NewProvisioningUsecase(
		bootstrap.Logger,
		profileRepository,
		clinicRepository,
		clinicStaffRepository,
		identityProviderClient,
		enroller,
		auditPublisher,
		bootstrap.InternalConfig,
	)
	provisioningController := provisioning.NewProvisioningController(bootstrap.Logger, provisioningUsecase)

	// Patients
	patientRepository := patients.NewPatientPostgresRepository(bootstrap.PostgresDB)
	patientUsecase := patients.NewPatientUsecase(bootstrap.Logger, patientRepository, clinicStaffRepository)
	patientController := patients.NewPatientController(bootstrap.Logger, patientUsecase)

	// Reports
	reportRepository := reports.NewReportMongoRepository(mongoDatabase)
	reportUsecase := reports.NewReportUsecase(bootstrap.Logger, reportRepository, patientRepository, clinicStaffRepository)
	reportController := reports.NewReportController(bootstrap.Logger, reportUsecase)

	// Billing
	tussCodeRepository := billing.NewTussPostgresRepository(bootstrap.PostgresDB)
	billingUsecase := billing.NewBillingUsecase(bootstrap.Logger, tussCodeRepository, clinicStaffRepository)
	billingController := billing.NewBillingController(bootstrap.Logger, billingUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		provisioningController,
		clinicController,
		staffController,
		patientController,
		reportController,
		billingController,
	)
}
