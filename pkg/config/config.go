package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every environment variable read by this service.
const EnvPrefix = "ABDOUPERF"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "ABDOUPERF_DB_DSN"
	EnvDBHost = "ABDOUPERF_DB_HOST"
	EnvDBUser = "ABDOUPERF_DB_USER"
	EnvDBName = "ABDOUPERF_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Password     PasswordConfig
	Cart         CartConfig
	Booking      BookingConfig
	Payment      PaymentConfig
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
	Env          string `envconfig:"ABDOUPERF_APP_ENV" required:"true"`
	Port         string `envconfig:"ABDOUPERF_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"ABDOUPERF_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"ABDOUPERF_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"ABDOUPERF_DB_DSN"`
	Driver string `envconfig:"ABDOUPERF_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"ABDOUPERF_DB_HOST"`
	LegacyPort     int    `envconfig:"ABDOUPERF_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"ABDOUPERF_DB_USER"`
	LegacyPassword string `envconfig:"ABDOUPERF_DB_PASSWORD"`
	LegacyName     string `envconfig:"ABDOUPERF_DB_NAME"`
	LegacySSLMode  string `envconfig:"ABDOUPERF_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"ABDOUPERF_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"ABDOUPERF_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"ABDOUPERF_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"ABDOUPERF_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"ABDOUPERF_REDIS_URL" required:"true"`
	Address      string        `envconfig:"ABDOUPERF_REDIS_ADDR"`
	Password     string        `envconfig:"ABDOUPERF_REDIS_PASSWORD"`
	DB           int           `envconfig:"ABDOUPERF_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"ABDOUPERF_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"ABDOUPERF_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"ABDOUPERF_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"ABDOUPERF_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"ABDOUPERF_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"ABDOUPERF_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"ABDOUPERF_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"ABDOUPERF_JWT_EXPIRATION_MINUTES" required:"true"`
	SessionTTLMinutes int    `envconfig:"ABDOUPERF_SESSION_TTL_MINUTES" default:"720"`
}

// SessionTTL returns the admin session TTL configured in minutes.
func (j JWTConfig) SessionTTL() time.Duration {
	if j.SessionTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.SessionTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"ABDOUPERF_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"ABDOUPERF_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"ABDOUPERF_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"ABDOUPERF_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"ABDOUPERF_ARGON_KEY_LEN" default:"32"`
}

type CartConfig struct {
	TTL time.Duration `envconfig:"ABDOUPERF_CART_TTL" default:"168h"`
}

type BookingConfig struct {
	DraftTTL time.Duration `envconfig:"ABDOUPERF_BOOKING_DRAFT_TTL" default:"24h"`
}

type PaymentConfig struct {
	ConfirmDelay      time.Duration `envconfig:"ABDOUPERF_PAYMENT_CONFIRM_DELAY" default:"2s"`
	DeliveryLeadHours int           `envconfig:"ABDOUPERF_DELIVERY_LEAD_HOURS" default:"72"`
}

// DeliveryLead returns the promised delivery window for new orders.
func (p PaymentConfig) DeliveryLead() time.Duration {
	if p.DeliveryLeadHours <= 0 {
		return 72 * time.Hour
	}
	return time.Duration(p.DeliveryLeadHours) * time.Hour
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"ABDOUPERF_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"ABDOUPERF_AUTO_MIGRATE" default:"false"`
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
