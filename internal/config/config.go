package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
	Crawl    CrawlConfig    `yaml:"crawl"`
	LogLevel string         `yaml:"log_level"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// RabbitMQConfig configures the optional publisher. An empty URL disables
// publishing entirely.
type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

type CrawlConfig struct {
	BaseURL      string        `yaml:"base_url"`
	StartPage    int           `yaml:"start_page"`
	EndPage      int           `yaml:"end_page"`
	Timeout      time.Duration `yaml:"timeout"`
	UserAgent    string        `yaml:"user_agent"`
	ArticleDelay time.Duration `yaml:"article_delay"`
	PageDelay    time.Duration `yaml:"page_delay"`
	// Interval between full re-crawls of the page range. Zero means run
	// once and exit; re-crawls rely on the dedup gate for cheap skips.
	Interval time.Duration `yaml:"interval"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Database.Host == "" {
		c.Database.Host = "127.0.0.1"
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = "hespress_harvester"
	}
	if c.RabbitMQ.RoutingKey == "" {
		c.RabbitMQ.RoutingKey = "articles"
	}
	if c.RabbitMQ.QueueName == "" {
		c.RabbitMQ.QueueName = "hespress_articles"
	}
	if c.Crawl.BaseURL == "" {
		c.Crawl.BaseURL = "https://www.hespress.com"
	}
	if c.Crawl.StartPage == 0 {
		c.Crawl.StartPage = 1
	}
	if c.Crawl.EndPage == 0 {
		c.Crawl.EndPage = c.Crawl.StartPage
	}
	if c.Crawl.Timeout == 0 {
		c.Crawl.Timeout = 15 * time.Second
	}
	if c.Crawl.UserAgent == "" {
		c.Crawl.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
			"(like Gecko) Chrome/86.0.4240.183 Safari/537.36"
	}
	if c.Crawl.ArticleDelay == 0 {
		c.Crawl.ArticleDelay = 500 * time.Millisecond
	}
	if c.Crawl.PageDelay == 0 {
		c.Crawl.PageDelay = time.Second
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
