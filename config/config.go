package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"deliwer/internal/domain/constants"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultSQLitePath         = "deliwer.db"
)

// Storage backends.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
		RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`
	} `json:"http" yaml:"http"`

	Storage StorageConfig `json:"storage" yaml:"storage"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Admin credentials for the back-office endpoints
	Admin *AdminConfig `json:"admin" yaml:"admin"`

	// Campaign overrides the built-in reward constants
	Campaign *CampaignConfig `json:"campaign" yaml:"campaign"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for affiliate referral codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for impact event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Notification configuration for the impact worker
	Notification *NotificationConfig `json:"notification" yaml:"notification"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StorageConfig selects the repository backend
type StorageConfig struct {
	// Backend is one of "memory", "postgres" or "sqlite"
	Backend      string `json:"backend" yaml:"backend"`
	SQLitePath   string `json:"sqlitePath" yaml:"sqlitePath"`
	AutoMigrate  bool   `json:"autoMigrate" yaml:"autoMigrate"`
	SeedDemoData bool   `json:"seedDemoData" yaml:"seedDemoData"`

	// SlowQueryThreshold makes GORM log slower statements as warnings
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// RateLimitConfig limits public write endpoints per client IP
type RateLimitConfig struct {
	Enabled bool    `json:"enabled" yaml:"enabled"`
	Rate    float64 `json:"rate" yaml:"rate"`
	Burst   int     `json:"burst" yaml:"burst"`
}

// AdminConfig holds the single back-office account
type AdminConfig struct {
	Username string `json:"username" yaml:"username"`
	// PasswordHash is a bcrypt hash
	PasswordHash string        `json:"passwordHash" yaml:"passwordHash"`
	TokenTTL     time.Duration `json:"tokenTtl" yaml:"tokenTtl"`
}

// CampaignConfig overrides reward constants; zero values keep the defaults
type CampaignConfig struct {
	OrderTotal             float64 `json:"orderTotal" yaml:"orderTotal"`
	OrderRewardPoints      int     `json:"orderRewardPoints" yaml:"orderRewardPoints"`
	OrderBottlesPrevented  int     `json:"orderBottlesPrevented" yaml:"orderBottlesPrevented"`
	FirstHundredCap        int     `json:"firstHundredCap" yaml:"firstHundredCap"`
	DefaultChallengeTarget int     `json:"defaultChallengeTarget" yaml:"defaultChallengeTarget"`
	AffiliateCommission    float64 `json:"affiliateCommission" yaml:"affiliateCommission"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// NotificationConfig controls worker fan-out
type NotificationConfig struct {
	// Topic is the FCM topic milestone notifications are sent to
	Topic string `json:"topic" yaml:"topic"`
}

type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findConfigFile(searchPaths, currEnv)
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Env names map onto existing yaml keys, e.g.
	// STORAGE_SEEDDEMODATA -> storage.seedDemoData
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func findConfigFile(searchPaths []string, currEnv string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() error {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))
	switch cfg.Storage.Backend {
	case "":
		cfg.Storage.Backend = BackendMemory
	case BackendMemory, BackendSQLite:
	case BackendPostgres:
		if cfg.Postgres == nil {
			return errors.New("storage backend postgres requires a postgres section")
		}
	default:
		return errors.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	if cfg.Storage.Backend == BackendSQLite && cfg.Storage.SQLitePath == "" {
		cfg.Storage.SQLitePath = defaultSQLitePath
	}

	if cfg.Metrics != nil && cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}

	if cfg.Campaign == nil {
		cfg.Campaign = &CampaignConfig{}
	}
	cfg.Campaign.ApplyDefaults()

	return nil
}

// DefaultCampaign returns the built-in campaign reward settings.
func DefaultCampaign() *CampaignConfig {
	c := &CampaignConfig{}
	c.ApplyDefaults()

	return c
}

// ApplyDefaults fills zero values with the built-in campaign constants.
func (c *CampaignConfig) ApplyDefaults() {
	if c.OrderTotal <= 0 {
		c.OrderTotal = constants.OrderTotalAED
	}
	if c.OrderRewardPoints <= 0 {
		c.OrderRewardPoints = constants.OrderRewardPoints
	}
	if c.OrderBottlesPrevented <= 0 {
		c.OrderBottlesPrevented = constants.OrderBottlesPrevented
	}
	if c.FirstHundredCap <= 0 {
		c.FirstHundredCap = constants.FirstHundredCap
	}
	if c.DefaultChallengeTarget <= 0 {
		c.DefaultChallengeTarget = constants.DefaultChallengeTarget
	}
	if c.AffiliateCommission <= 0 {
		c.AffiliateCommission = constants.AffiliateCommissionPercent
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}
// until the first incomplete index.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
