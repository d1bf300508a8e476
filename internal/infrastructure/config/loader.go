package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads configs/config.yaml, merges configs/config.<APP_ENVIRONMENT>.yaml
// when present and lets environment variables override any key
// (app.port -> APP_PORT).
func Load() (*Config, error) {
	loadEnvFile()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../../configs")
	v.AddConfigPath(".")

	if root := findProjectRoot(); root != "" {
		v.AddConfigPath(filepath.Join(root, "configs"))
	}

	return load(v, true)
}

// LoadFromFile reads one explicit YAML file; environment overrides still apply.
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	return load(v, false)
}

func load(v *viper.Viper, mergeEnvFile bool) (*Config, error) {
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	if env := os.Getenv("APP_ENVIRONMENT"); mergeEnvFile && env != "" && v.ConfigFileUsed() != "" {
		v.SetConfigName("config." + env)
		_ = v.MergeInConfig()
	}

	expandEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// setDefaults registers every env-overridable key so AutomaticEnv sees it
// even when the YAML file omits the key.
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "solar-portal")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.port", 8080)
	v.SetDefault("app.base_url", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("storage.driver", StorageDynamoDB)
	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.access_key_id", "local")
	v.SetDefault("aws.secret_access_key", "local")
	v.SetDefault("dynamodb.endpoint", "")
	v.SetDefault("postgres.enabled", false)
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.database", "solar_portal")
	v.SetDefault("postgres.user", "")
	v.SetDefault("postgres.password", "")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("email.enabled", false)
	v.SetDefault("email.from_email", "")
	v.SetDefault("events.enabled", false)
	v.SetDefault("events.topic_arn", "")
	v.SetDefault("payments.mercadopago_access_token", "")
	v.SetDefault("payments.mock", false)
	v.SetDefault("commission.default_rate", 0.10)
}

func loadEnvFile() {
	paths := []string{".env", "../.env", "../../.env"}
	if root := findProjectRoot(); root != "" {
		paths = append(paths, filepath.Join(root, ".env"))
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// expandEnvVars resolves ${VAR} placeholders left in string values.
func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		s, ok := v.Get(key).(string)
		if !ok || !strings.Contains(s, "$") {
			continue
		}
		if expanded := os.ExpandEnv(s); expanded != s && expanded != "" {
			v.Set(key, expanded)
		}
	}
}

// overrideEmptyConfig picks up conventional variable names that do not follow
// the key-path mapping (MERCADOPAGO_ACCESS_TOKEN rather than
// PAYMENTS_MERCADOPAGO_ACCESS_TOKEN).
func overrideEmptyConfig(cfg *Config) {
	override := func(dst *string, keys ...string) {
		if *dst != "" {
			return
		}
		for _, k := range keys {
			if val := os.Getenv(k); val != "" {
				*dst = val
				return
			}
		}
	}

	override(&cfg.Payments.MercadoPagoAccessToken, "MERCADOPAGO_ACCESS_TOKEN")
	override(&cfg.Postgres.User, "DB_USER")
	override(&cfg.Postgres.Password, "DB_PASSWORD")

	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			cfg.Payments.Mock = true
		}
	}
}

func applyDefaults(cfg *Config) {
	if cfg.App.Port == 0 {
		cfg.App.Port = 8080
	}
	if len(cfg.App.CORSOrigins) == 0 && cfg.App.BaseURL != "" {
		cfg.App.CORSOrigins = []string{cfg.App.BaseURL}
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = StorageDynamoDB
	}

	t := &cfg.DynamoDB.Tables
	for dst, def := range map[*string]string{
		&t.Projects:           "projects",
		&t.FinancialRecords:   "financial_records",
		&t.CommissionPayments: "commission_payments",
		&t.Notifications:      "notifications",
		&t.Users:              "users",
		&t.Settings:           "settings",
	} {
		if *dst == "" {
			*dst = def
		}
	}

	if cfg.Postgres.MaxConnections == 0 {
		cfg.Postgres.MaxConnections = 25
	}
	if cfg.Postgres.MaxIdle == 0 {
		cfg.Postgres.MaxIdle = 5
	}
	if cfg.Postgres.SSLMode == "" {
		cfg.Postgres.SSLMode = "disable"
	}
	if cfg.Email.FromName == "" {
		cfg.Email.FromName = "Solar Portal"
	}
	if cfg.Payments.PayerEmailDomain == "" {
		cfg.Payments.PayerEmailDomain = "testuser.com"
	}
	if cfg.Commission.DefaultRate == 0 {
		cfg.Commission.DefaultRate = 0.10
	}
}

func validateConfig(cfg *Config) error {
	switch cfg.Storage.Driver {
	case StorageDynamoDB, StorageMemory:
	default:
		return fmt.Errorf("storage.driver must be %q or %q, got %q", StorageDynamoDB, StorageMemory, cfg.Storage.Driver)
	}
	if cfg.Commission.DefaultRate <= 0 || cfg.Commission.DefaultRate >= 1 {
		return fmt.Errorf("commission.default_rate must be between 0 and 1")
	}
	if cfg.Postgres.Enabled {
		if cfg.Postgres.Host == "" {
			return fmt.Errorf("postgres.host is required")
		}
		if cfg.Postgres.Database == "" {
			return fmt.Errorf("postgres.database is required")
		}
		if cfg.Postgres.User == "" {
			return fmt.Errorf("postgres.user is required")
		}
	}
	if cfg.Redis.Enabled && cfg.Redis.Address == "" {
		return fmt.Errorf("redis.address is required")
	}
	if cfg.Email.Enabled && cfg.Email.FromEmail == "" {
		return fmt.Errorf("email.from_email is required")
	}
	if cfg.Events.Enabled && cfg.Events.TopicARN == "" {
		return fmt.Errorf("events.topic_arn is required")
	}
	for _, u := range cfg.SeedUsers {
		if u.ID == "" || u.Role == "" {
			return fmt.Errorf("seed_users entries need id and role")
		}
	}
	return nil
}
