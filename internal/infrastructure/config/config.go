package config

import "fmt"

type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Storage    StorageConfig    `mapstructure:"storage"`
	AWS        AWSConfig        `mapstructure:"aws"`
	DynamoDB   DynamoDBConfig   `mapstructure:"dynamodb"`
	Postgres   PostgresConfig   `mapstructure:"postgres"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Email      EmailConfig      `mapstructure:"email"`
	Events     EventsConfig     `mapstructure:"events"`
	Payments   PaymentsConfig   `mapstructure:"payments"`
	Commission CommissionConfig `mapstructure:"commission"`
	Catalog    CatalogConfig    `mapstructure:"catalog"`
	SeedUsers  []SeedUser       `mapstructure:"seed_users"`
}

type AppConfig struct {
	Name        string   `mapstructure:"name"`
	Environment string   `mapstructure:"environment"`
	Port        int      `mapstructure:"port"`
	BaseURL     string   `mapstructure:"base_url"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// StorageConfig selects the project store: "dynamodb" or "memory".
type StorageConfig struct {
	Driver string `mapstructure:"driver"`
}

const (
	StorageDynamoDB = "dynamodb"
	StorageMemory   = "memory"
)

type AWSConfig struct {
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

type DynamoDBConfig struct {
	Endpoint string       `mapstructure:"endpoint"`
	Tables   DynamoTables `mapstructure:"tables"`
}

type DynamoTables struct {
	Projects           string `mapstructure:"projects"`
	FinancialRecords   string `mapstructure:"financial_records"`
	CommissionPayments string `mapstructure:"commission_payments"`
	Notifications      string `mapstructure:"notifications"`
	Users              string `mapstructure:"users"`
	Settings           string `mapstructure:"settings"`
}

type PostgresConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	SSLMode        string `mapstructure:"sslmode"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
}

func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// URL is the golang-migrate form of the connection string.
func (p PostgresConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User, p.Password, p.Host, p.Port, p.Database, p.SSLMode)
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type EmailConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	FromEmail string `mapstructure:"from_email"`
	FromName  string `mapstructure:"from_name"`
	Endpoint  string `mapstructure:"endpoint"`
}

type EventsConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	TopicARN string `mapstructure:"topic_arn"`
	Endpoint string `mapstructure:"endpoint"`
}

type PaymentsConfig struct {
	MercadoPagoAccessToken string `mapstructure:"mercadopago_access_token"`
	Mock                   bool   `mapstructure:"mock"`
	PayerEmailDomain       string `mapstructure:"payer_email_domain"`
}

type CommissionConfig struct {
	DefaultRate float64 `mapstructure:"default_rate"`
}

type CatalogItem struct {
	ID   string `mapstructure:"id"`
	Name string `mapstructure:"name"`
}

type CatalogConfig struct {
	RoofTypes      []CatalogItem `mapstructure:"roof_types"`
	PanelModels    []CatalogItem `mapstructure:"panel_models"`
	InverterModels []CatalogItem `mapstructure:"inverter_models"`
	BatteryModels  []CatalogItem `mapstructure:"battery_models"`
}

// SeedUser is loaded into the user directory at startup when it is empty.
type SeedUser struct {
	ID                 string   `mapstructure:"id"`
	Name               string   `mapstructure:"name"`
	Role               string   `mapstructure:"role"`
	Email              string   `mapstructure:"email"`
	Phone              string   `mapstructure:"phone"`
	ServiceCounties    []string `mapstructure:"service_counties"`
	RegistrationNumber string   `mapstructure:"registration_number"`
}
