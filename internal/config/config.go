package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	MongoURI       string
	DBName         string
	JWTSecret      string
	AccessTokenTTL time.Duration

	// StorageProvider selects the blob storage backend: "bunny" or "cloudinary".
	StorageProvider string
	UploadTimeout   time.Duration

	BunnyStorageHost string
	BunnyStorageZone string
	BunnyAccessKey   string
	BunnyPullZone    string

	CloudinaryCloudName    string
	CloudinaryUploadPreset string
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		MongoURI:       getEnvOrDefault("MONGO_URI", ""),
		DBName:         getEnvOrDefault("DB_NAME", "nexkart"),
		JWTSecret:      getEnvOrDefault("JWT_SECRET", ""),
		AccessTokenTTL: getDurationEnv("ACCESS_TOKEN_TTL", 20, time.Minute),

		StorageProvider: getEnvOrDefault("STORAGE_PROVIDER", "bunny"),
		UploadTimeout:   getDurationEnv("UPLOAD_TIMEOUT", 15, time.Second),

		BunnyStorageHost: getEnvOrDefault("BUNNY_STORAGE_HOST", "sg.storage.bunnycdn.com"),
		BunnyStorageZone: getEnvOrDefault("BUNNY_STORAGE_ZONE", "nexkart-storage"),
		BunnyAccessKey:   getEnvOrDefault("BUNNY_ACCESS_KEY", ""),
		BunnyPullZone:    getEnvOrDefault("BUNNY_PULL_ZONE", "https://nexkart-storage.b-cdn.net"),

		CloudinaryCloudName:    getEnvOrDefault("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryUploadPreset: getEnvOrDefault("CLOUDINARY_UPLOAD_PRESET", ""),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}
