package config

import (
	"cardioflow-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		PostgresDB: PostgresDB{
			Host:     utils.GetEnvString("POSTGRES_HOST", "localhost"),
			Port:     utils.GetEnvString("POSTGRES_PORT", "5432"),
			DBName:   utils.GetEnvString("POSTGRES_DB_NAME", "cardioflow"),
			Username: utils.GetEnvString("POSTGRES_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("POSTGRES_PASSWORD", "defaultPassword"),
		},
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "cardioflow"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:             utils.GetEnvString("APP_ENV", "development"),
			Port:            utils.GetEnvString("APP_PORT", ":8080"),
			Version:         utils.GetEnvString("APP_VERSION", "v1"),
			BaseUrl:         utils.GetEnvString("APP_BASE_URL", "http://localhost:8080"),
			Timezone:        utils.GetEnvString("APP_TIMEZONE", "America/Sao_Paulo"),
			EndpointPrefix:  utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:     utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 8),
		},
		IdentityProvider: IdentityProvider{
			BaseUrl:           utils.GetEnvString("IDENTITY_PROVIDER_BASE_URL", "http://localhost:9999"),
			ServiceKey:        utils.GetEnvString("IDENTITY_PROVIDER_SERVICE_KEY", ""),
			RequestsPerSecond: utils.GetEnvInt("IDENTITY_PROVIDER_REQUESTS_PER_SECOND", 10),
		},
		Provisioning: Provisioning{
			DefaultPassword:         utils.GetEnvString("PROVISIONING_DEFAULT_PASSWORD", ""),
			GeneratedPasswordLength: utils.GetEnvInt("PROVISIONING_GENERATED_PASSWORD_LENGTH", 12),
			ProfileWaitAttempts:     utils.GetEnvInt("PROVISIONING_PROFILE_WAIT_ATTEMPTS", 15),
			ProfileWaitIntervalMs:   utils.GetEnvInt("PROVISIONING_PROFILE_WAIT_INTERVAL_MS", 1000),
			AuditQueue:              utils.GetEnvString("PROVISIONING_AUDIT_QUEUE", "cardioflow.provisioning.audit"),
		},
	}
}
