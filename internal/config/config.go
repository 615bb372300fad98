package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	MongoDB   MongoDBConfig
	Firestore FirestoreConfig
	Redis     RedisConfig
	RabbitMQ  RabbitMQConfig
	Consul    ConsulConfig
	MinIO     MinIOConfig
	Images    ImageConfig
	Admin     AdminConfig
	LLM       LLMConfig
}

type ServerConfig struct {
	Port           string
	Host           string
	ServiceName    string
	ServiceAddress string
	ServiceID      string
	LogDir         string
	AllowOrigins   []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

// StoreConfig selects the document store backend: mongo, firestore or memory.
type StoreConfig struct {
	Driver string
}

type MongoDBConfig struct {
	URI      string
	Database string
	PoolSize uint64
	Timeout  time.Duration
}

type FirestoreConfig struct {
	ProjectID       string
	CredentialsFile string
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
	PageTTL  time.Duration
}

type RabbitMQConfig struct {
	URI         string
	Exchange    string
	QueuePrefix string
}

type ConsulConfig struct {
	ConsulAddress string
}

type MinIOConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	UseSSL          bool
	Region          string
	ResumeBucket    string
	PublicURL       string
	MaxResumeSize   int64
}

type ImageConfig struct {
	PlaceholderBaseURL string
	PlaceholderHost    string
	MaxUploadBytes     int64
	ProfileFallback    string
}

// LLMConfig points at an OpenAI compatible chat completions API. An empty
// BaseURL disables summary generation.
type LLMConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

type AdminConfig struct {
	Username     string
	Password     string
	PasswordHash string
	JWTSecret    string
	TokenTTL     time.Duration
	CookieSecure bool
}

func Load() *Config {
	serviceName := getEnv("PORTFOLIO_SERVICE_NAME", "portfolio-service")
	return &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "9400"),
			Host:           getEnv("HOST", "0.0.0.0"),
			ServiceName:    serviceName,
			ServiceAddress: getEnv("PORTFOLIO_SERVICE_ADDRESS", serviceName),
			ServiceID:      serviceName + "-" + getEnv("HOSTNAME", "portfolio"),
			LogDir:         getEnv("LOG_DIR", ""),
			AllowOrigins:   getEnvAsSlice("CORS_ALLOW_ORIGINS", []string{"*"}),
			ReadTimeout:    getEnvAsDuration("READ_TIMEOUT", 15*time.Second),
			WriteTimeout:   getEnvAsDuration("WRITE_TIMEOUT", 15*time.Second),
		},
		Store: StoreConfig{
			Driver: strings.ToLower(getEnv("STORE_DRIVER", "mongo")),
		},
		MongoDB: MongoDBConfig{
			URI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGODB_DATABASE", "portfolio"),
			PoolSize: getEnvAsUint64("MONGODB_POOL_SIZE", 100),
			Timeout:  getEnvAsDuration("MONGODB_TIMEOUT", 10*time.Second),
		},
		Firestore: FirestoreConfig{
			ProjectID:       getEnv("FIRESTORE_PROJECT_ID", ""),
			CredentialsFile: getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		},
		Redis: RedisConfig{
			Address:  getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			PageTTL:  getEnvAsDuration("PAGE_CACHE_TTL", 10*time.Minute),
		},
		RabbitMQ: RabbitMQConfig{
			URI:         getEnv("RABBITMQ_URI", ""),
			Exchange:    getEnv("RABBITMQ_EXCHANGE", "portfolio.events"),
			QueuePrefix: getEnv("RABBITMQ_QUEUE_PREFIX", "portfolio-revalidate"),
		},
		Consul: ConsulConfig{
			ConsulAddress: getEnv("CONSUL_ADDRESS", ""),
		},
		MinIO: MinIOConfig{
			Endpoint:        getEnv("MINIO_ENDPOINT", ""),
			AccessKeyID:     getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretAccessKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			UseSSL:          getEnvAsBool("MINIO_USE_SSL", false),
			Region:          getEnv("MINIO_REGION", "us-east-1"),
			ResumeBucket:    getEnv("MINIO_RESUME_BUCKET", "resumes"),
			PublicURL:       getEnv("MINIO_PUBLIC_URL", ""),
			MaxResumeSize:   getEnvAsInt64("MAX_RESUME_SIZE", 5*1024*1024),
		},
		Images: ImageConfig{
			PlaceholderBaseURL: strings.TrimSuffix(getEnv("PLACEHOLDER_BASE_URL", "https://picsum.photos"), "/"),
			PlaceholderHost:    getEnv("PLACEHOLDER_HOST", "picsum.photos"),
			MaxUploadBytes:     getEnvAsInt64("MAX_IMAGE_SIZE", 1024*1024),
			ProfileFallback:    getEnv("PROFILE_FALLBACK_URL", ""),
		},
		Admin: AdminConfig{
			Username:     getEnv("ADMIN_USERNAME", "admin"),
			Password:     getEnv("ADMIN_PASSWORD", ""),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
			JWTSecret:    getEnv("JWT_SECRET", ""),
			TokenTTL:     getEnvAsDuration("ADMIN_TOKEN_TTL", 24*time.Hour),
			CookieSecure: getEnvAsBool("ADMIN_COOKIE_SECURE", false),
		},
		LLM: LLMConfig{
			BaseURL: strings.TrimSuffix(getEnv("LLM_BASE_URL", ""), "/"),
			APIKey:  getEnv("LLM_API_KEY", ""),
			Model:   getEnv("LLM_MODEL", "qwen3:1.7b"),
			Timeout: getEnvAsDuration("LLM_TIMEOUT", 60*time.Second),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		intVal, err := strconv.Atoi(value)
		if err != nil {
			log.Printf("error retrieve int env var %s: %s", key, err)
			return defaultValue
		}
		return intVal
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			log.Printf("error retrieve int64 env var %s: %s", key, err)
			return defaultValue
		}
		return intVal
	}
	return defaultValue
}

func getEnvAsUint64(key string, defaultValue uint64) uint64 {
	if value, exists := os.LookupEnv(key); exists {
		uintVal, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			log.Printf("error retrieve uint64 env var %s: %s", key, err)
			return defaultValue
		}
		return uintVal
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		duration, err := time.ParseDuration(value)
		if err != nil {
			log.Printf("error retrieve duration env var %s: %s", key, err)
			return defaultValue
		}
		return duration
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			log.Printf("error retrieve bool env var %s: %s", key, err)
			return defaultValue
		}
		return boolVal
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}
