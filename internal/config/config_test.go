package config_test

import (
	"testing"

	"panelboard/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SECRET_KEY", "s3cret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test ,")

	cfg := config.Load()

	assert.Equal(t, config.DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "s3cret", cfg.SecretKey)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "9090", cfg.ServerPort)
}

func TestValidate(t *testing.T) {
	cfg := &config.Config{DBDriver: config.DriverPostgres, SecretKey: "key"}
	assert.NoError(t, cfg.Validate())

	cfg.SecretKey = ""
	assert.EqualError(t, cfg.Validate(), "SECRET_KEY must be set")

	cfg.SecretKey = "key"
	cfg.DBDriver = "mysql"
	assert.EqualError(t, cfg.Validate(), `unsupported DB_DRIVER "mysql"`)
}

func TestDSN(t *testing.T) {
	pg := &config.Config{
		DBDriver:   config.DriverPostgres,
		DBHost:     "db",
		DBPort:     "5432",
		DBUser:     "u",
		DBPassword: "p",
		DBName:     "n",
		DBSSLMode:  "disable",
	}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", pg.DSN())
	assert.Equal(t, "pgx5://u:p@db:5432/n?sslmode=disable", pg.MigrationURL())

	lite := &config.Config{DBDriver: config.DriverSQLite, SQLitePath: "/tmp/x.db"}
	assert.Equal(t, "file:/tmp/x.db?_foreign_keys=on&_busy_timeout=5000", lite.DSN())
}
