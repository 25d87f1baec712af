package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type JobsConfig struct {
	Env               string `yaml:"env"`
	HTTPServer        `yaml:"http_server"`
	JobsDB            `yaml:"jobs_db"`
	LogConfig         `yaml:"log_config"`
	KafkaService      `yaml:"kafka-service"`
	NotifierService   `yaml:"notifier-service"`
	CommissionService `yaml:"commission-service"`
	Lifecycle         `yaml:"lifecycle"`
}

type HTTPServer struct {
	Host        string        `yaml:"host"`
	Port        string        `yaml:"port"`
	Timeout     time.Duration `yaml:"timeout" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type JobsDB struct {
	Dsn string `yaml:"dsn"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type KafkaService struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type NotifierService struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type CommissionService struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
	// DefaultRate is used only when the service address is left empty, for
	// local development without the rule service.
	DefaultRate float64 `yaml:"default_rate" env-default:"0.05"`
}

type Lifecycle struct {
	MaxReposts          int           `yaml:"max_reposts" env-default:"3"`
	RecirculationLimit  int           `yaml:"recirculation_limit" env-default:"5"`
	SoftLockTTL         time.Duration `yaml:"soft_lock_ttl" env-default:"15m"`
	NegotiationWindow   time.Duration `yaml:"negotiation_window" env-default:"24h"`
	PaymentWindow       time.Duration `yaml:"payment_window" env-default:"24h"`
	DefaultWarrantyDays int           `yaml:"default_warranty_days" env-default:"30"`
	DisputeReviewTTL    time.Duration `yaml:"dispute_review_ttl" env-default:"72h"`
	SweepInterval       time.Duration `yaml:"sweep_interval" env-default:"1m"`
}

func MustLoad() *JobsConfig {

	// Processing env config variable and file
	configPath := os.Getenv("JOBS_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("JOBS_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg JobsConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
