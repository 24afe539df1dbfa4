package config

import (
	"log"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyLogger  = key("logger")
	KeyMetrics = key("metrics")
)

type Config struct {
	Service  Service
	Postgres Postgres
	Logger   Logger
	Metrics  Metrics
	Kafka    Kafka
	Live     Live
	Platform Platform
}

type Service struct {
	Port string `env:"CHAT_SERVICE_PORT" env-default:"8080"`
	Name string `env:"CHAT_SERVICE_NAME" env-default:"chat-service"`
}

type Postgres struct {
	User     string `env:"CHAT_SERVICE_POSTGRES_USER"`
	Password string `env:"CHAT_SERVICE_POSTGRES_PASSWORD"`
	Database string `env:"CHAT_SERVICE_POSTGRES_DB"`
	Host     string `env:"CHAT_SERVICE_POSTGRES_HOST"`
	Port     string `env:"CHAT_SERVICE_POSTGRES_PORT"`
}

type Logger struct {
	Host string `env:"LOGGER_SERVICE_HOST"`
	Port string `env:"LOGGER_SERVICE_PORT"`
}

type Metrics struct {
	Host string `env:"GRAFANA_HOST"`
	Port int    `env:"GRAFANA_PORT"`
}

type Kafka struct {
	Host        string `env:"KAFKA_HOST"`
	Port        string `env:"KAFKA_PORT"`
	MemberTopic string `env:"KAFKA_MEMBER_TOPIC" env-default:"club.members"`
}

// Live configures the websocket channel: connect tokens are minted with
// JWTSecret and verified at upgrade time.
type Live struct {
	JWTSecret string `env:"CHAT_SERVICE_LIVE_JWT_SECRET"`
}

type Platform struct {
	Env string `env:"ENV" env-default:"dev"`
}

func MustLoad() *Config {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read env variables: %v", err)
	}
	return cfg
}
