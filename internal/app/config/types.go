package config

import (
	"database/sql"

	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		PostgresDB     *sql.DB
		MongoDB        *mongo.Client
		Redis          *redis.Client
		RabbitMQ       *amqp091.Connection
		Logger         *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	InternalConfig struct {
		App              App
		JWT              JWT
		IdentityProvider IdentityProvider
		Provisioning     Provisioning
	}

	DriverConfig struct {
		PostgresDB PostgresDB
		MongoDB    MongoDB
		Redis      Redis
		RabbitMQ   RabbitMQ
		Logger     Logger
	}

	App struct {
		Env             string
		Port            string
		Version         string
		BaseUrl         string
		Timezone        string
		EndpointPrefix  string
		MaxRequests     int
		ShutdownTimeout int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	// IdentityProvider points at the auth provider's admin API.
	IdentityProvider struct {
		BaseUrl           string
		ServiceKey        string
		RequestsPerSecond int
	}

	Provisioning struct {
		// DefaultPassword, when set, is issued to every provisioned user and
		// must be changed on first login. Empty means generate one per call.
		DefaultPassword         string
		GeneratedPasswordLength int
		ProfileWaitAttempts     int
		ProfileWaitIntervalMs   int
		AuditQueue              string
	}

	PostgresDB struct {
		Host     string
		Port     string
		DBName   string
		Username string
		Password string
	}
	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
