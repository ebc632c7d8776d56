package config

import (
	"boerenbridge-server/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("BB_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("BB_PG_DSN", "postgres://override@localhost:5432/postgres")
	defer clear2()

	a := assert.New(t)
	cfg := Instance()
	a.Equal("debug", cfg.Log.Level)
	a.Equal("./testdata/migrations", cfg.MigrationsPath)
	a.Equal("postgres://override@localhost:5432/postgres", cfg.PGDSN)

	// ensure that it's only loaded once
	clear3 := util.SetEnv("BB_PG_DSN", "postgres://other@localhost:5432/postgres")
	defer clear3()
	// ensure we aren't using a pointer
	cfg.PGDSN = "bad"
	cfg = Instance()
	a.Equal("postgres://override@localhost:5432/postgres", cfg.PGDSN)
}

func TestDefaults(t *testing.T) {
	clear := util.SetEnv("BB_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer clear()

	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, "./sql", cfg.MigrationsPath)
	assert.Equal(t, "postgres://postgres@localhost:5432/postgres?sslmode=disable", cfg.PGDSN)
	assert.False(t, cfg.Log.DisableAccessLogs)
}
