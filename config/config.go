package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig     `mapstructure:"server"`
	Storage   StorageConfig    `mapstructure:"storage"`
	Database  DatabaseConfig   `mapstructure:"database"`
	Redis     RedisConfig      `mapstructure:"redis"`
	JWT       JWTConfig        `mapstructure:"jwt"`
	Log       LogConfig        `mapstructure:"log"`
	Protocol  ProtocolConfig   `mapstructure:"protocol"`
	Kafka     KafkaConfig      `mapstructure:"kafka"`
	Metrics   MetricsConfig    `mapstructure:"metrics"`
	Merchants []MerchantConfig `mapstructure:"merchants"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // debug, release, test
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// StorageConfig selects where ledgers keep records and merchant state.
type StorageConfig struct {
	Driver string `mapstructure:"driver"` // memory, postgres
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	Host      string        `mapstructure:"host"`
	Port      int           `mapstructure:"port"`
	Password  string        `mapstructure:"password"`
	DB        int           `mapstructure:"db"`
	ReplayTTL time.Duration `mapstructure:"replay_ttl"` // how long a consumed handshake stays blocked
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// ProtocolConfig holds protocol-wide constants shared by every ledger.
type ProtocolConfig struct {
	BeneficiaryA              string `mapstructure:"beneficiary_a"`
	BeneficiaryB              string `mapstructure:"beneficiary_b"`
	DefaultFeeRateBasisPoints uint32 `mapstructure:"default_fee_rate_bps"`
}

type KafkaConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	Brokers      []string      `mapstructure:"brokers"`
	Topic        string        `mapstructure:"topic"`
	ClientID     string        `mapstructure:"client_id"`
	FlushTimeout time.Duration `mapstructure:"flush_timeout"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// MerchantConfig seeds a merchant ledger at startup when it is not already persisted.
// A missing fee_rate_bps selects the protocol default.
type MerchantConfig struct {
	ID                 string  `mapstructure:"id"`
	Name               string  `mapstructure:"name"`
	Admin              string  `mapstructure:"admin"`
	FeeRateBasisPoints *uint32 `mapstructure:"fee_rate_bps"`
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: PUSHPAY_.
// Nested keys use underscore: PUSHPAY_DATABASE_HOST, PUSHPAY_JWT_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("storage.driver", "memory")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "pushpay")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.replay_ttl", "24h")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "1h")
	v.SetDefault("jwt.issuer", "pushpay")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("protocol.beneficiary_a", "beneficiary-a")
	v.SetDefault("protocol.beneficiary_b", "beneficiary-b")
	v.SetDefault("protocol.default_fee_rate_bps", 200)
	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "pushpay.events")
	v.SetDefault("kafka.client_id", "pushpay")
	v.SetDefault("kafka.flush_timeout", "5s")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: PUSHPAY_DATABASE_HOST -> database.host
	v.SetEnvPrefix("PUSHPAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file is optional; env vars can suffice.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects configurations the service cannot start with.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case "memory", "postgres":
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.Protocol.BeneficiaryA == "" || c.Protocol.BeneficiaryB == "" {
		return fmt.Errorf("protocol beneficiaries must both be set")
	}
	if c.Protocol.BeneficiaryA == c.Protocol.BeneficiaryB {
		return fmt.Errorf("protocol beneficiaries must differ")
	}
	seen := make(map[string]bool, len(c.Merchants))
	for _, m := range c.Merchants {
		if m.ID == "" || m.Admin == "" {
			return fmt.Errorf("merchant seed requires id and admin")
		}
		if seen[m.ID] {
			return fmt.Errorf("duplicate merchant seed %q", m.ID)
		}
		seen[m.ID] = true
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka enabled without brokers")
	}
	return nil
}
