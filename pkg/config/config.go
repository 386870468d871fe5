package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Scryfall     ScryfallConfig
	Importer     ImporterConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"CARDVAULT_APP_ENV" default:"dev"`
	LogLevel     string `envconfig:"CARDVAULT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"CARDVAULT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"CARDVAULT_DB_DSN"`
	Driver string `envconfig:"CARDVAULT_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"CARDVAULT_DB_HOST" default:"localhost"`
	LegacyPort     int    `envconfig:"CARDVAULT_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"CARDVAULT_DB_USER" default:"cardvault"`
	LegacyPassword string `envconfig:"CARDVAULT_DB_PASSWORD"`
	LegacyName     string `envconfig:"CARDVAULT_DB_NAME" default:"cardvault"`
	LegacySSLMode  string `envconfig:"CARDVAULT_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"CARDVAULT_DB_MAX_OPEN_CONNS" default:"5"`
	MaxIdleConns    int           `envconfig:"CARDVAULT_DB_MAX_IDLE_CONNS" default:"2"`
	ConnMaxLifetime time.Duration `envconfig:"CARDVAULT_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"CARDVAULT_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type ScryfallConfig struct {
	BaseURL        string        `envconfig:"CARDVAULT_SCRYFALL_BASE_URL" default:"https://api.scryfall.com"`
	UserAgent      string        `envconfig:"CARDVAULT_SCRYFALL_USER_AGENT" default:"cardvault-importer/1.0"`
	RequestTimeout time.Duration `envconfig:"CARDVAULT_SCRYFALL_TIMEOUT" default:"30s"`
}

type ImporterConfig struct {
	CSVPath    string        `envconfig:"CARDVAULT_CSV_PATH" default:"./collection.csv"`
	BatchSize  int           `envconfig:"CARDVAULT_BATCH_SIZE" default:"75"`
	BatchPause time.Duration `envconfig:"CARDVAULT_BATCH_PAUSE" default:"100ms"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool   `envconfig:"CARDVAULT_USE_SQLITE" default:"false"`
	SQLitePath  string `envconfig:"CARDVAULT_SQLITE_PATH" default:"./cardvault.db"`
	AutoMigrate bool   `envconfig:"CARDVAULT_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
