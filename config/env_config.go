package config

import (
	"os"
	"strconv"
	"strings"
)

type EnvConfig struct {
	Postgres struct {
		Host     string
		Database string
		Username string
		Password string
		Port     string
	}
	JWT struct {
		SecretKey string
		Expire    int
	}
	CORS struct {
		AllowDomains string
	}
	Redis struct {
		Password string
		Database int
		Host     string
		Port     string
	}
	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}
	Minio struct {
		Endpoint     string
		RootUser     string
		RootPassword string
		UseSSL       bool
	}
	Photo struct {
		Bucket            string
		PerPage           int
		MaxUploadBytes    int64
		AllowedExtensions []string
	}
	Grafana struct {
		OTLPEndpoint string
		ServiceName  string
	}
	Environment struct {
		Mode string
	}
}

func LoadEnvConfig() *EnvConfig {
	var config EnvConfig

	// Postgres
	config.Postgres.Host = os.Getenv("PGPOOL_HOST")
	config.Postgres.Database = os.Getenv("PGPOOL_DB")
	config.Postgres.Username = os.Getenv("PGPOOL_USER")
	config.Postgres.Password = os.Getenv("PGPOOL_PASSWORD")
	config.Postgres.Port = os.Getenv("PGPOOL_PORT")
	if config.Postgres.Port == "" {
		config.Postgres.Port = "5432"
	}

	// JWT
	config.JWT.SecretKey = os.Getenv("JWT_SECRET_KEY")
	if val := os.Getenv("JWT_EXPIRE"); val != "" {
		config.JWT.Expire, _ = strconv.Atoi(val)
	}
	if config.JWT.Expire == 0 {
		config.JWT.Expire = 3600 * 24 * 7
	}

	config.CORS.AllowDomains = os.Getenv("ALLOWED_DOMAINS")

	// Redis
	config.Redis.Password = os.Getenv("REDIS_PASSWORD")
	config.Redis.Database, _ = strconv.Atoi(os.Getenv("REDIS_DB"))
	config.Redis.Host = os.Getenv("REDIS_HOST")
	config.Redis.Port = os.Getenv("REDIS_PORT")
	if config.Redis.Port == "" {
		config.Redis.Port = "6379"
	}

	// RabbitMQ
	config.RabbitMQ.Host = os.Getenv("RABBITMQ_HOST")
	if config.RabbitMQ.Host == "" {
		config.RabbitMQ.Host = "localhost"
	}
	config.RabbitMQ.Port = os.Getenv("RABBITMQ_PORT")
	if config.RabbitMQ.Port == "" {
		config.RabbitMQ.Port = "5672"
	}
	config.RabbitMQ.Username = os.Getenv("RABBITMQ_USER")
	if config.RabbitMQ.Username == "" {
		config.RabbitMQ.Username = "guest"
	}
	config.RabbitMQ.Password = os.Getenv("RABBITMQ_PASSWORD")
	if config.RabbitMQ.Password == "" {
		config.RabbitMQ.Password = "guest"
	}

	// MinIO
	config.Minio.Endpoint = os.Getenv("MINIO_ENDPOINT")
	config.Minio.RootUser = os.Getenv("MINIO_ROOT_USER")
	config.Minio.RootPassword = os.Getenv("MINIO_ROOT_PASSWORD")
	config.Minio.UseSSL = os.Getenv("MINIO_USE_SSL") == "true"

	// Photo storage
	config.Photo.Bucket = os.Getenv("PHOTO_BUCKET")
	if config.Photo.Bucket == "" {
		config.Photo.Bucket = "photos"
	}
	config.Photo.PerPage, _ = strconv.Atoi(os.Getenv("PHOTO_PER_PAGE"))
	if config.Photo.PerPage == 0 {
		config.Photo.PerPage = 15
	}
	if val := os.Getenv("PHOTO_MAX_UPLOAD_BYTES"); val != "" {
		config.Photo.MaxUploadBytes, _ = strconv.ParseInt(val, 10, 64)
	}
	if config.Photo.MaxUploadBytes == 0 {
		config.Photo.MaxUploadBytes = 10 * 1024 * 1024 // 10MB
	}
	if val := os.Getenv("PHOTO_ALLOWED_EXTENSIONS"); val != "" {
		for _, ext := range strings.Split(val, ",") {
			ext = strings.ToLower(strings.TrimSpace(ext))
			if ext != "" {
				config.Photo.AllowedExtensions = append(config.Photo.AllowedExtensions, ext)
			}
		}
	} else {
		config.Photo.AllowedExtensions = []string{"jpg", "jpeg", "png", "gif"}
	}

	// Telemetry
	config.Grafana.OTLPEndpoint = os.Getenv("OTLP_ENDPOINT")
	config.Grafana.ServiceName = os.Getenv("OTLP_SERVICE_NAME")
	if config.Grafana.ServiceName == "" {
		config.Grafana.ServiceName = "gau-photo-service"
	}

	config.Environment.Mode = os.Getenv("ENVIRONMENT_MODE")
	if config.Environment.Mode == "" {
		config.Environment.Mode = "development"
	}

	return &config
}
