package config

import (
	"errors"
	"flag"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	logger "github.com/sirupsen/logrus"
)

/*
address to listen on: RUN_ADDRESS or -a;
backend REST API base url: BACKEND_URL or -b;
cookie signing secret: SECRET or -s;
Postgres session store: DATABASE_URI or -d;
Redis session store: REDIS_ADDR or -r;
log level: LOG_LEVEL or -l.
Environment wins over flags. Variables from a .env file in the working directory are
loaded first and never override the real environment.
*/

const (
	DefaultRequestTimeout = 10 * time.Second
	DefaultSessionTTL     = 24 * time.Hour
)

type ServerConfig struct {
	RunAddress     string        `env:"RUN_ADDRESS"`
	BackendURL     string        `env:"BACKEND_URL"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	Secret         string        `env:"SECRET"`
	SessionTTL     time.Duration `env:"SESSION_TTL"`
	DatabaseDSN    string        `env:"DATABASE_URI"`
	RedisAddr      string        `env:"REDIS_ADDR"`
	RedisPassword  string        `env:"REDIS_PASSWORD"`
	RedisDB        int           `env:"REDIS_DB"`
	LogLevel       string        `env:"LOG_LEVEL"`
	LogFormat      string        `env:"LOG_FORMAT"`
}

func NewConfig() (*ServerConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return parse(os.Args[1:])
}

func parse(args []string) (*ServerConfig, error) {
	var params ServerConfig
	err := env.Parse(&params)
	if err != nil {
		return nil, err
	}

	var commandLineParams ServerConfig

	flags := flag.NewFlagSet("washboard", flag.ContinueOnError)
	flags.StringVar(&commandLineParams.RunAddress, "a", "localhost:8080", "Base address to listen on")
	flags.StringVar(&commandLineParams.BackendURL, "b", "http://localhost:5000/api", "Backend API base url")
	flags.DurationVar(&commandLineParams.RequestTimeout, "t", DefaultRequestTimeout, "Backend request timeout")
	flags.StringVar(&commandLineParams.Secret, "s", "", "Session cookie signing secret")
	flags.DurationVar(&commandLineParams.SessionTTL, "ttl", DefaultSessionTTL, "Session lifetime")
	flags.StringVar(&commandLineParams.DatabaseDSN, "d", "", "Database DSN for the session store")
	flags.StringVar(&commandLineParams.RedisAddr, "r", "", "Redis address for the session store")
	flags.StringVar(&commandLineParams.LogLevel, "l", "info", "Log level")
	flags.StringVar(&commandLineParams.LogFormat, "f", "text", "Log format, text or json")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	if params.RunAddress == "" {
		params.RunAddress = commandLineParams.RunAddress
	}
	if params.BackendURL == "" {
		params.BackendURL = commandLineParams.BackendURL
	}
	if params.RequestTimeout <= 0 {
		params.RequestTimeout = commandLineParams.RequestTimeout
	}
	if params.Secret == "" {
		params.Secret = commandLineParams.Secret
	}
	if params.SessionTTL <= 0 {
		params.SessionTTL = commandLineParams.SessionTTL
	}
	if params.DatabaseDSN == "" {
		params.DatabaseDSN = commandLineParams.DatabaseDSN
	}
	if params.RedisAddr == "" {
		params.RedisAddr = commandLineParams.RedisAddr
	}
	if params.LogLevel == "" {
		params.LogLevel = commandLineParams.LogLevel
	}
	if params.LogFormat == "" {
		params.LogFormat = commandLineParams.LogFormat
	}

	if params.Secret == "" {
		logger.Warn("No SECRET configured, generating one: sessions will not survive a restart")
		params.Secret = uuid.NewString()
	}

	return &params, nil
}

func (c *ServerConfig) SecretKey() []byte {
	return []byte(c.Secret)
}

type StoreKind string

const (
	RedisStore    StoreKind = "redis"
	PostgresStore StoreKind = "postgres"
	MemoryStore   StoreKind = "memory"
)

// Store picks the session backend: Redis first, then Postgres, then memory.
func (c *ServerConfig) Store() StoreKind {
	switch {
	case c.RedisAddr != "":
		return RedisStore
	case c.DatabaseDSN != "":
		return PostgresStore
	default:
		return MemoryStore
	}
}
