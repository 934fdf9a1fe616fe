package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "crawl:\n  start_page: 7\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 7, cfg.Crawl.StartPage)
	// End page defaults to the start page: a one-page crawl.
	assert.Equal(t, 7, cfg.Crawl.EndPage)
	assert.Equal(t, 15*time.Second, cfg.Crawl.Timeout)
	assert.Equal(t, 500*time.Millisecond, cfg.Crawl.ArticleDelay)
	assert.Equal(t, time.Second, cfg.Crawl.PageDelay)
	assert.Zero(t, cfg.Crawl.Interval)
	assert.Contains(t, cfg.Crawl.UserAgent, "Mozilla/5.0")
	assert.Equal(t, "https://www.hespress.com", cfg.Crawl.BaseURL)
	assert.Empty(t, cfg.RabbitMQ.URL)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("DB_PASSWORD", "s3cret")

	path := writeConfig(t, `
database:
  user: admin
  password: ${DB_PASSWORD}
  dbname: hespress
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, "admin", cfg.Database.User)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db.local",
		Port:     5433,
		User:     "admin",
		Password: "pw",
		DBName:   "hespress",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=db.local port=5433 user=admin password=pw dbname=hespress sslmode=disable",
		d.DSN(),
	)
}

func TestLoad_CrawlRange(t *testing.T) {
	path := writeConfig(t, `
crawl:
  start_page: 40167
  end_page: 35000
  article_delay: 250ms
  page_delay: 2s
  interval: 1h
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 40167, cfg.Crawl.StartPage)
	assert.Equal(t, 35000, cfg.Crawl.EndPage)
	assert.Equal(t, 250*time.Millisecond, cfg.Crawl.ArticleDelay)
	assert.Equal(t, 2*time.Second, cfg.Crawl.PageDelay)
	assert.Equal(t, time.Hour, cfg.Crawl.Interval)
}
