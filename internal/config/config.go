package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/sbilibin2017/gw-exchange-rates/internal/models"
)

var (
	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
	// ErrConfigInvalid is returned when the configuration file cannot be parsed.
	ErrConfigInvalid = errors.New("configuration file is invalid")
	// ErrMissingKey is returned when a required key is absent or empty.
	ErrMissingKey = errors.New("missing required configuration key")
)

// App holds HTTP listener and logging settings.
type App struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	LogLevel string `mapstructure:"log_level"`
}

// Addr returns host:port for the HTTP listener.
func (a App) Addr() string {
	return net.JoinHostPort(a.Host, a.Port)
}

// Postgres holds warehouse connection settings. The database name is the project ID.
type Postgres struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	SSLMode      string `mapstructure:"sslmode"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

// Kafka holds broker settings.
type Kafka struct {
	Brokers  string `mapstructure:"brokers"`
	GroupID  string `mapstructure:"group_id"`
	ClientID string `mapstructure:"client_id"`
}

// BrokerList splits the comma separated broker list.
func (k Kafka) BrokerList() []string {
	var brokers []string
	for _, b := range strings.Split(k.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// Redis holds the optional dedup cache settings.
type Redis struct {
	Enabled      bool   `mapstructure:"enabled"`
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	DB           int    `mapstructure:"db"`
	Password     string `mapstructure:"password"`
	PoolSize     int    `mapstructure:"pool_size"`
	MinIdleConns int    `mapstructure:"min_idle_conns"`
	TTLSeconds   int    `mapstructure:"ttl_seconds"`
}

// Addr returns host:port of the Redis server.
func (r Redis) Addr() string {
	return net.JoinHostPort(r.Host, strconv.Itoa(r.Port))
}

// TTL returns the expiration of cached dedup keys.
func (r Redis) TTL() time.Duration {
	return time.Duration(r.TTLSeconds) * time.Second
}

// HTTPClient holds outbound HTTP settings.
type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// Timeout returns the outbound request timeout.
func (c HTTPClient) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Scheduler holds the optional periodic trigger of the fetch job.
type Scheduler struct {
	IntervalSeconds int `mapstructure:"interval_seconds"`
}

// Interval returns the trigger period, zero when disabled.
func (s Scheduler) Interval() time.Duration {
	return time.Duration(s.IntervalSeconds) * time.Second
}

// Warehouse holds table management settings.
type Warehouse struct {
	AutoCreate bool `mapstructure:"auto_create"`
}

// Config is the application configuration. It is built once at startup and passed explicitly.
type Config struct {
	ProjectID   string `mapstructure:"project_id"`
	DatasetID   string `mapstructure:"dataset_id"`
	TableName   string `mapstructure:"table_name"`
	PubSubTopic string `mapstructure:"pubsub_topic"`
	USDAPIURL   string `mapstructure:"usd_api_url"`

	App        App        `mapstructure:"app"`
	Postgres   Postgres   `mapstructure:"postgres"`
	Kafka      Kafka      `mapstructure:"kafka"`
	Redis      Redis      `mapstructure:"redis"`
	HTTPClient HTTPClient `mapstructure:"http_client"`
	Scheduler  Scheduler  `mapstructure:"scheduler"`
	Warehouse  Warehouse  `mapstructure:"warehouse"`
}

// Table returns the warehouse table coordinates.
func (c *Config) Table() models.TableRef {
	return models.TableRef{
		ProjectID: c.ProjectID,
		DatasetID: c.DatasetID,
		TableName: c.TableName,
	}
}

// PostgresDSN builds the warehouse connection string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		c.Postgres.User, c.Postgres.Password,
		net.JoinHostPort(c.Postgres.Host, strconv.Itoa(c.Postgres.Port)),
		c.ProjectID, c.Postgres.SSLMode)
}

// RequireFetcher checks the keys the fetch-and-publish job needs.
func (c *Config) RequireFetcher() error {
	return requireKeys(map[string]string{
		"pubsub_topic": c.PubSubTopic,
		"usd_api_url":  c.USDAPIURL,
	})
}

// RequirePersister checks the keys the subscribe-and-persist job needs.
func (c *Config) RequirePersister() error {
	return requireKeys(map[string]string{
		"pubsub_topic": c.PubSubTopic,
	})
}

var defaults = map[string]any{
	"app.host":                    "localhost",
	"app.port":                    "8080",
	"app.log_level":               "info",
	"postgres.host":               "localhost",
	"postgres.port":               5432,
	"postgres.user":               "user",
	"postgres.password":           "password",
	"postgres.sslmode":            "disable",
	"postgres.max_open_conns":     16,
	"postgres.max_idle_conns":     8,
	"kafka.brokers":               "localhost:9092",
	"kafka.group_id":              "exchange-rates-persister",
	"kafka.client_id":             "gw-exchange-rates",
	"redis.enabled":               false,
	"redis.host":                  "localhost",
	"redis.port":                  6379,
	"redis.db":                    0,
	"redis.password":              "",
	"redis.pool_size":             10,
	"redis.min_idle_conns":        2,
	"redis.ttl_seconds":           86400,
	"http_client.timeout_seconds": 5,
	"scheduler.interval_seconds":  0,
	"warehouse.auto_create":       false,
}

var requiredKeys = []string{"project_id", "dataset_id", "table_name"}

var optionalKeys = []string{"pubsub_topic", "usd_api_url"}

// Load reads the configuration file at path and applies environment overrides.
// A .env file in the working directory, if present, is loaded into the environment first.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}

	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	for _, key := range append(append([]string{}, requiredKeys...), optionalKeys...) {
		_ = v.BindEnv(key, envName(key))
	}
	for key := range defaults {
		_ = v.BindEnv(key, envName(key))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}

	if err := requireKeys(map[string]string{
		"project_id": cfg.ProjectID,
		"dataset_id": cfg.DatasetID,
		"table_name": cfg.TableName,
	}); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// envName maps a config key to its environment variable, e.g. postgres.host -> POSTGRES_HOST.
func envName(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func requireKeys(values map[string]string) error {
	var missing []string
	for key, value := range values {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	slices.Sort(missing)
	return fmt.Errorf("%w: %s", ErrMissingKey, strings.Join(missing, ", "))
}
