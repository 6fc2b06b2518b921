package database

import (
	"cardioflow-service/internal/app/config"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"
)

// NewPostgresDB opens the relational store holding profiles, clinics,
// memberships, patients and billing codes. Startup aborts when the database
// is unreachable.
func NewPostgresDB(driverConfig *config.DriverConfig) *sql.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		driverConfig.PostgresDB.Host,
		driverConfig.PostgresDB.Port,
		driverConfig.PostgresDB.Username,
		driverConfig.PostgresDB.Password,
		driverConfig.PostgresDB.DBName)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("postgres open failed: %s", err.Error())
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Fatalf("postgres unreachable: %s", err.Error())
	}

	log.Println("connected to postgres")
	return db
}
