package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Invite   InviteConfig
	SMTP     SMTPConfig
	Storage  StorageConfig
	Notifier NotifierConfig
	Seed     SeedConfig
}

type AppConfig struct {
	Port        string
	Env         string
	LogLevel    string
	CORSOrigins []string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	TimeZone string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
	InviteExpiry  time.Duration
}

// InviteConfig controls the link embedded in invitation emails.
type InviteConfig struct {
	BaseURL string
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// StorageConfig points at the S3 compatible object store (MinIO).
type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type NotifierConfig struct {
	// Backend is "memory" or "rabbitmq".
	Backend   string
	Workers   int
	QueueSize int
	RabbitMQ  RabbitMQConfig
}

type RabbitMQConfig struct {
	User     string
	Password string
	Host     string
	Port     string
}

type SeedConfig struct {
	Pacientes        int
	ImageCatalogURL  string
	ImageBatchSize   int
	DocumentURLs     []string
	HTTPTimeout      time.Duration
	MaxLesoes        int
	MaxImagensLesao  int
	DefaultRandomKey uint64
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "" || c.App.Env == "development"
}

func setDefaults() {
	viper.SetDefault("APP_PORT", "8000")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CORS_ORIGINS", "*")

	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "America/Sao_Paulo")

	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("INVITE_BASE_URL", "sitebonito.com/completar-cadastro")

	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_FROM", "nao-responda@dermatriagem.com.br")

	viper.SetDefault("MINIO_ENDPOINT", "localhost:9000")
	viper.SetDefault("MINIO_BUCKET", "dermatriagem")
	viper.SetDefault("MINIO_USE_SSL", false)

	viper.SetDefault("NOTIFIER_BACKEND", "memory")
	viper.SetDefault("NOTIFIER_WORKERS", 2)
	viper.SetDefault("NOTIFIER_QUEUE_SIZE", 100)
	viper.SetDefault("RABBITMQ_HOST", "localhost")
	viper.SetDefault("RABBITMQ_PORT", "5672")

	viper.SetDefault("SEED_PACIENTES", 100)
	viper.SetDefault("SEED_IMAGE_CATALOG_URL", "https://api.isic-archive.com/api/v2")
	viper.SetDefault("SEED_IMAGE_BATCH_SIZE", 100)
	viper.SetDefault("SEED_DOCUMENT_URLS", strings.Join([]string{
		"https://picsum.photos/800/600?random=1",
		"https://picsum.photos/800/600?random=2",
		"https://picsum.photos/800/600?random=3",
		"https://picsum.photos/800/600?random=4",
		"https://picsum.photos/800/600?random=5",
	}, ","))
	viper.SetDefault("SEED_HTTP_TIMEOUT", "30s")
	viper.SetDefault("SEED_MAX_LESOES", 3)
	viper.SetDefault("SEED_MAX_IMAGENS_LESAO", 2)
	viper.SetDefault("SEED_RANDOM_KEY", 0)
}

func LoadConfig() (*Config, error) {
	// A missing .env is fine: the environment may already carry everything.
	_ = godotenv.Load()

	setDefaults()
	viper.AutomaticEnv()

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	inviteExpiry, err := time.ParseDuration(viper.GetString("INVITE_TOKEN_EXPIRY"))
	if err != nil {
		inviteExpiry = 48 * time.Hour
	}

	seedTimeout, err := time.ParseDuration(viper.GetString("SEED_HTTP_TIMEOUT"))
	if err != nil {
		seedTimeout = 30 * time.Second
	}

	config := &Config{
		App: AppConfig{
			Port:        viper.GetString("APP_PORT"),
			Env:         viper.GetString("APP_ENV"),
			LogLevel:    viper.GetString("LOG_LEVEL"),
			CORSOrigins: splitList(viper.GetString("CORS_ORIGINS")),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
			SSLMode:  viper.GetString("DB_SSLMODE"),
			TimeZone: viper.GetString("DB_TIMEZONE"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
			InviteExpiry:  inviteExpiry,
		},
		Invite: InviteConfig{
			BaseURL: viper.GetString("INVITE_BASE_URL"),
		},
		SMTP: SMTPConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			User:     viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASSWORD"),
			From:     viper.GetString("SMTP_FROM"),
		},
		Storage: StorageConfig{
			Endpoint:  viper.GetString("MINIO_ENDPOINT"),
			AccessKey: viper.GetString("MINIO_ACCESS_KEY"),
			SecretKey: viper.GetString("MINIO_SECRET_KEY"),
			Bucket:    viper.GetString("MINIO_BUCKET"),
			UseSSL:    viper.GetBool("MINIO_USE_SSL"),
		},
		Notifier: NotifierConfig{
			Backend:   viper.GetString("NOTIFIER_BACKEND"),
			Workers:   viper.GetInt("NOTIFIER_WORKERS"),
			QueueSize: viper.GetInt("NOTIFIER_QUEUE_SIZE"),
			RabbitMQ: RabbitMQConfig{
				User:     viper.GetString("RABBITMQ_USER"),
				Password: viper.GetString("RABBITMQ_PASSWORD"),
				Host:     viper.GetString("RABBITMQ_HOST"),
				Port:     viper.GetString("RABBITMQ_PORT"),
			},
		},
		Seed: SeedConfig{
			Pacientes:        viper.GetInt("SEED_PACIENTES"),
			ImageCatalogURL:  viper.GetString("SEED_IMAGE_CATALOG_URL"),
			ImageBatchSize:   viper.GetInt("SEED_IMAGE_BATCH_SIZE"),
			DocumentURLs:     splitList(viper.GetString("SEED_DOCUMENT_URLS")),
			HTTPTimeout:      seedTimeout,
			MaxLesoes:        viper.GetInt("SEED_MAX_LESOES"),
			MaxImagensLesao:  viper.GetInt("SEED_MAX_IMAGENS_LESAO"),
			DefaultRandomKey: viper.GetUint64("SEED_RANDOM_KEY"),
		},
	}

	return config, nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
