package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
app:
  name: solar-portal
  port: 9090
storage:
  driver: memory
postgres:
  enabled: true
  host: db
  user: ${SOLAR_TEST_DB_USER}
catalog:
  roof_types:
    - id: roof-shingle
      name: Asphalt shingle
seed_users:
  - id: admin-1
    name: Ops
    role: admin
    email: ops@example.com
  - id: inst-1
    name: SunCo
    role: installer
    service_counties: [Travis, Hays]
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFromFile(t *testing.T) {
	t.Setenv("SOLAR_TEST_DB_USER", "solar")
	t.Setenv("LOGGING_LEVEL", "debug")

	cfg, err := LoadFromFile(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Empty(t, cfg.App.CORSOrigins)
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "solar", cfg.Postgres.User)
	assert.Equal(t, "disable", cfg.Postgres.SSLMode)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.Equal(t, "projects", cfg.DynamoDB.Tables.Projects)
	assert.Equal(t, 0.10, cfg.Commission.DefaultRate)
	require.Len(t, cfg.Catalog.RoofTypes, 1)
	assert.Equal(t, "roof-shingle", cfg.Catalog.RoofTypes[0].ID)
	require.Len(t, cfg.SeedUsers, 2)
	assert.Equal(t, []string{"Travis", "Hays"}, cfg.SeedUsers[1].ServiceCounties)
}

func TestLoadFromFile_Overrides(t *testing.T) {
	t.Setenv("SOLAR_TEST_DB_USER", "solar")
	t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "TEST-123")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "yes")
	t.Setenv("APP_PORT", "7070")

	cfg, err := LoadFromFile(writeConfig(t, sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, "TEST-123", cfg.Payments.MercadoPagoAccessToken)
	assert.True(t, cfg.Payments.Mock)
	assert.Equal(t, 7070, cfg.App.Port)
}

func TestLoadFromFile_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unknown driver", body: "storage:\n  driver: sqlite\n"},
		{name: "postgres without user", body: "storage:\n  driver: memory\npostgres:\n  enabled: true\n"},
		{name: "bad rate", body: "storage:\n  driver: memory\ncommission:\n  default_rate: 1.5\n"},
		{name: "events without topic", body: "storage:\n  driver: memory\nevents:\n  enabled: true\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromFile(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestPostgresConfig_URL(t *testing.T) {
	p := PostgresConfig{Host: "db", Port: 5432, User: "u", Password: "p", Database: "solar", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@db:5432/solar?sslmode=disable", p.URL())
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=solar sslmode=disable", p.DSN())
}
