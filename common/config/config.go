package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

func getEnv(key, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	return value
}

func loadEnvString(key string, result *string) {
	s, ok := os.LookupEnv(key)

	if !ok {
		return
	}
	*result = s
}

func loadEnvUint(key string, result *uint) {
	s, ok := os.LookupEnv(key)

	if !ok {
		return
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return
	}
	*result = uint(n)
}

func loadEnvInt(key string, result *int) {
	s, ok := os.LookupEnv(key)

	if !ok {
		return
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return
	}
	*result = n
}

func loadEnvBool(key string, result *bool) {
	s, ok := os.LookupEnv(key)
	if !ok {
		return
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return
	}
	*result = b
}

/* Configuration */

/* PgSQL Configuration */
type pgSqlConfig struct {
	Host     string `json:"host"`
	Port     uint   `json:"port"`
	Database string `json:"database"`
	SslMode  string `json:"ssl_mode"`
	User     string `json:"user"`
	Password string `json:"password"`
}

func (p pgSqlConfig) ConnStr() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s database=%s sslmode=%s", p.Host, p.Port, p.User, p.Password, p.Database, p.SslMode)
}

func defaultPgSql() pgSqlConfig {
	return pgSqlConfig{
		Host:     "localhost",
		Port:     5432,
		Database: "jobportal",
		User:     "postgres",
		Password: "",
		SslMode:  "disable",
	}
}

func (p *pgSqlConfig) loadFromEnv() {
	loadEnvString("DB_HOST", &p.Host)
	loadEnvUint("DB_PORT", &p.Port)
	loadEnvString("DB_NAME", &p.Database)
	loadEnvString("DB_SSLMODE", &p.SslMode)
	loadEnvString("DB_USER", &p.User)
	loadEnvString("DB_PASSWORD", &p.Password)
}

/* Listen Configuration */

type listenConfig struct {
	Host string `json:"host"`
	Port uint   `json:"port"`
}

func (l listenConfig) Addr() string {
	return fmt.Sprintf("%s:%d", l.Host, l.Port)
}

func defaultListenConfig() listenConfig {
	return listenConfig{
		Host: "127.0.0.1",
		Port: 8080,
	}
}

func (l *listenConfig) loadFromEnv() {
	loadEnvString("LISTEN_HOST", &l.Host)
	loadEnvUint("LISTEN_PORT", &l.Port)
}

/* Logging Configuration */

type logConfig struct {
	Level  string `json:"level"`
	Pretty bool   `json:"pretty"`
}

func defaultLogConfig() logConfig {
	return logConfig{
		Level:  "info",
		Pretty: false,
	}
}

func (l *logConfig) loadFromEnv() {
	loadEnvString("LOG_LEVEL", &l.Level)
	loadEnvBool("LOG_PRETTY", &l.Pretty)
}

/* NATS Configuration */

// natsConfig configures the event broker. An empty Host disables it;
// mutations then skip publishing.
type natsConfig struct {
	Host     string
	Port     uint
	Username string
	Password string
}

func (c *natsConfig) loadFromEnv() {
	c.Host = getEnv("NATS_HOST", "")

	if portStr := getEnv("NATS_PORT", "4222"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			c.Port = uint(port)
		} else {
			c.Port = 4222
		}
	} else {
		c.Port = 4222
	}

	c.Username = getEnv("NATS_USER", "")
	c.Password = getEnv("NATS_PASSWORD", "")
}

func (c natsConfig) Enabled() bool {
	return c.Host != ""
}

func (c natsConfig) URL() string {
	return fmt.Sprintf("nats://%s:%d", c.Host, c.Port)
}

func defaultNatsConfig() natsConfig {
	return natsConfig{
		Host: "",
		Port: 4222,
	}
}

/* Redis Configuration */

// redisConfig configures the seen-fingerprint cache used by the ingestion
// client. An empty Host disables it.
type redisConfig struct {
	Host     string `json:"host"`
	Port     uint   `json:"port"`
	Password string `json:"password"`
	DB       int    `json:"db"`
}

func (r redisConfig) Enabled() bool {
	return r.Host != ""
}

func (r redisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

func (r *redisConfig) loadFromEnv() {
	loadEnvString("REDIS_HOST", &r.Host)
	loadEnvUint("REDIS_PORT", &r.Port)
	loadEnvString("REDIS_PASSWORD", &r.Password)
	loadEnvInt("REDIS_DB", &r.DB)
}

func defaultRedisConfig() redisConfig {
	return redisConfig{
		Host:     "",
		Port:     6379,
		Password: "",
		DB:       0,
	}
}

/* GCS Configuration */

// GCSConfig configures raw page snapshot archiving. An empty Bucket
// disables it.
type GCSConfig struct {
	ProjectID       string
	CredentialsFile string
	Bucket          string
}

func (g GCSConfig) Enabled() bool {
	return g.Bucket != ""
}

func (g *GCSConfig) loadFromEnv() {
	g.ProjectID = getEnv("GCS_PROJECT_ID", "")
	g.CredentialsFile = getEnv("GCS_CREDENTIALS_FILE", "")
	g.Bucket = getEnv("GCS_STORAGE_BUCKET", "")
}

func defaultGcsConfig() GCSConfig {
	return GCSConfig{
		ProjectID:       "",
		CredentialsFile: "",
		Bucket:          "",
	}
}

/* Scraper Configuration */

type ScraperConfig struct {
	TargetURL     string
	APIURL        string
	MaxJobs       int
	MaxScrolls    int
	RetryAttempts int
	ScrollDelay   time.Duration
	RetryDelay    time.Duration
	WaitAfterLoad time.Duration
	Headless      bool
}

func defaultScraperConfig() ScraperConfig {
	return ScraperConfig{
		TargetURL:     "https://www.actuarylist.com",
		APIURL:        "http://127.0.0.1:8080/api/jobs",
		MaxJobs:       0,
		MaxScrolls:    40,
		RetryAttempts: 3,
		ScrollDelay:   2 * time.Second,
		RetryDelay:    time.Second,
		WaitAfterLoad: 2 * time.Second,
		Headless:      true,
	}
}

func (s *ScraperConfig) loadFromEnv() {
	loadEnvString("SCRAPER_TARGET_URL", &s.TargetURL)
	loadEnvString("SCRAPER_API_URL", &s.APIURL)
	loadEnvInt("SCRAPER_MAX_JOBS", &s.MaxJobs)
	loadEnvInt("SCRAPER_MAX_SCROLLS", &s.MaxScrolls)
	loadEnvInt("SCRAPER_RETRY_ATTEMPTS", &s.RetryAttempts)
	loadEnvBool("SCRAPER_HEADLESS", &s.Headless)

	scrollDelay := int(s.ScrollDelay / time.Millisecond)
	retryDelay := int(s.RetryDelay / time.Millisecond)
	waitAfterLoad := int(s.WaitAfterLoad / time.Millisecond)
	loadEnvInt("SCRAPER_SCROLL_DELAY_MS", &scrollDelay)
	loadEnvInt("SCRAPER_RETRY_DELAY_MS", &retryDelay)
	loadEnvInt("SCRAPER_WAIT_AFTER_LOAD_MS", &waitAfterLoad)
	s.ScrollDelay = time.Duration(scrollDelay) * time.Millisecond
	s.RetryDelay = time.Duration(retryDelay) * time.Millisecond
	s.WaitAfterLoad = time.Duration(waitAfterLoad) * time.Millisecond
}

type Config struct {
	Listen  listenConfig
	PgSql   pgSqlConfig
	Log     logConfig
	Nats    natsConfig
	Redis   redisConfig
	GCS     GCSConfig
	Scraper ScraperConfig
}

func (c *Config) LoadFromEnv() {
	c.Listen.loadFromEnv()
	c.PgSql.loadFromEnv()
	c.Log.loadFromEnv()
	c.Nats.loadFromEnv()
	c.Redis.loadFromEnv()
	c.GCS.loadFromEnv()
	c.Scraper.loadFromEnv()
}

func DefaultConfig() Config {
	return Config{
		Listen:  defaultListenConfig(),
		PgSql:   defaultPgSql(),
		Log:     defaultLogConfig(),
		Nats:    defaultNatsConfig(),
		Redis:   defaultRedisConfig(),
		GCS:     defaultGcsConfig(),
		Scraper: defaultScraperConfig(),
	}
}
