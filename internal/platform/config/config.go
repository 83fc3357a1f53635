package config

import (
	"os"
	"strings"
	"time"
)

// Config captures process-level configuration. Empty persistence URLs mean
// in-memory stores, which keeps local development and tests dependency-free.
type Config struct {
	Addr            string
	PostgresURL     string
	Redis           RedisConfig
	Kafka           KafkaConfig
	ProofSigningKey string
	ShutdownTimeout time.Duration
}

// RedisConfig captures Redis connection settings.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig captures the notification publisher settings.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	addr := os.Getenv("FUNDCORE_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	topic := os.Getenv("FUNDCORE_EVENTS_TOPIC")
	if topic == "" {
		topic = "fundcore.events"
	}

	var brokers []string
	if raw := os.Getenv("FUNDCORE_KAFKA_BROKERS"); raw != "" {
		brokers = strings.Split(raw, ",")
	}

	proofKey := os.Getenv("FUNDCORE_PROOF_SIGNING_KEY")
	if proofKey == "" {
		// Dev default; production deployments must override.
		proofKey = "dev-proof-key-change-in-production"
	}

	return Config{
		Addr:        addr,
		PostgresURL: os.Getenv("FUNDCORE_POSTGRES_URL"),
		Redis: RedisConfig{
			URL:          os.Getenv("FUNDCORE_REDIS_URL"),
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		Kafka: KafkaConfig{
			Brokers: brokers,
			Topic:   topic,
		},
		ProofSigningKey: proofKey,
		ShutdownTimeout: 10 * time.Second,
	}
}
