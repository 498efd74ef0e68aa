package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "tat_social.db", cfg.DBPath)
	assert.Empty(t, cfg.AdminKey)
	assert.NotEmpty(t, cfg.ArticlesURL)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("TAT_SOCIAL_DB", "/tmp/test.db")
	t.Setenv("TAT_ADMIN_KEY", "k")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
	assert.Equal(t, "k", cfg.AdminKey)
}

func TestParseFlags(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg, []string{"-a", ":7070", "-d", "/tmp/flags.db"})

	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, "/tmp/flags.db", cfg.DBPath)
}

func TestParseFlags_KeepsDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg, nil)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "tat_social.db", cfg.DBPath)
}
