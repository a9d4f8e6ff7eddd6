package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// the discovery pipeline, mailbox verification, and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"leadhunter" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Hunter configures the discovery pipeline.
	Hunter struct {
		// MaxAttempts is the maximum number of attempts the background worker
		// makes when processing a scan job before marking it failed.
		MaxAttempts int `env:"HUNTER_MAX_ATTEMPTS" env-default:"3" yaml:"maxAttempts"`
		// MaxWorkers bounds how many scans may run concurrently. Each running
		// scan owns one isolated browser context for its full duration.
		MaxWorkers int `env:"HUNTER_MAX_WORKERS" env-default:"4" yaml:"maxWorkers"`
		// PageTimeout bounds a single page fetch during the crawl phase.
		PageTimeout time.Duration `env:"HUNTER_PAGE_TIMEOUT" env-default:"12s" yaml:"pageTimeout"`
		// MaxContactPages caps how many internal contact/about/team pages the
		// crawler visits beyond the home page.
		MaxContactPages int `env:"HUNTER_MAX_CONTACT_PAGES" env-default:"5" yaml:"maxContactPages"`
		// ProfileFloor is the minimum number of profile-linked leads expected
		// from the primary engine; below it the orchestrator escalates to the
		// fallback engine.
		ProfileFloor int `env:"HUNTER_PROFILE_FLOOR" env-default:"3" yaml:"profileFloor"`
		// ProfileCeiling is the hard ceiling of profile-linked leads; querying
		// stops early once reached, regardless of engine.
		ProfileCeiling int `env:"HUNTER_PROFILE_CEILING" env-default:"15" yaml:"profileCeiling"`
		// QueryInterval is the pacing delay between search-engine navigations.
		// Scraped engines apply automation countermeasures sensitive to bursts.
		QueryInterval time.Duration `env:"HUNTER_QUERY_INTERVAL" env-default:"5s" yaml:"queryInterval"`
		// ShortPermutations additionally generates first@host next to
		// first.last@host (higher recall, lower precision).
		ShortPermutations bool `env:"HUNTER_SHORT_PERMUTATIONS" env-default:"false" yaml:"shortPermutations"`
		// ResultCacheTTL is the duration during which a completed scan of a
		// domain makes new scan requests for the same domain reuse that result
		// instead of enqueueing a duplicate job.
		ResultCacheTTL time.Duration `env:"HUNTER_RESULT_CACHE_TTL" env-default:"24h" yaml:"resultCacheTTL"`
	} `yaml:"hunter"`

	// Verifier configures mailbox verification.
	Verifier struct {
		// SessionTimeout bounds the whole mail-transport session for one probe.
		SessionTimeout time.Duration `env:"VERIFIER_SESSION_TIMEOUT" env-default:"3s" yaml:"sessionTimeout"`
		// HelloName is the identity announced in the transport greeting.
		HelloName string `env:"VERIFIER_HELLO_NAME" env-default:"leadhunter.local" yaml:"helloName"`
		// FromEmail is the null/test sender used in MAIL FROM.
		FromEmail string `env:"VERIFIER_FROM_EMAIL" env-default:"probe@leadhunter.local" yaml:"fromEmail"`
		// VerifyShortPermutations controls whether first@host permutations get
		// the full transport probe; when false they stop after the MX check.
		VerifyShortPermutations bool `env:"VERIFIER_VERIFY_SHORT_PERMUTATIONS" env-default:"true" yaml:"verifyShortPermutations"` //nolint: lll
	} `yaml:"verifier"`

	// Browser configures the shared headless browser.
	Browser struct {
		// Headless disables the visible browser window. Keep it on outside of
		// local captcha debugging.
		Headless bool `env:"BROWSER_HEADLESS" env-default:"true" yaml:"headless"`
		// UserAgent is sent on every navigation.
		UserAgent string `env:"BROWSER_USER_AGENT" env-default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36" yaml:"userAgent"` //nolint: lll
	} `yaml:"browser"`

	// JWT configures the bearer-token auth surface.
	JWT struct {
		// PrivateKey is the PEM-encoded RSA key used to sign tokens.
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
		// PublicKey is the PEM-encoded RSA key used to validate tokens.
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
	} `yaml:"jwt"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
