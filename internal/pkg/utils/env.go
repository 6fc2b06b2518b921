package utils

import (
	"log"
	"os"
	"strconv"
)

func GetEnvString(key, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	return value
}

func GetEnvInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("invalid integer in %s: %v, using default value", key, err)
		return defaultValue
	}
	return parsed
}
