package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

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
	defaultMaxRequestBodySize = "20MB"

	DefaultFaceMatchThreshold = 80
	DefaultRenewalWindowDays  = 60
	DefaultIdentityTimeout    = 15 * time.Second
	DefaultMaxImageDimension  = 1600
	DefaultNotifyTimeout      = 5 * time.Second
	DefaultLockTTL            = 10 * time.Second
)

// Address match strategies for identity verification.
const (
	AddressMatchSubstring = "substring"
	AddressMatchFolded    = "folded"
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
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// TestRoutes exposes token minting endpoints for local development
	TestRoutes *TestRoutesConfig `json:"testRoutes" yaml:"testRoutes"`

	Identity *IdentityConfig `json:"identity" yaml:"identity"`

	Storage *StorageConfig `json:"storage" yaml:"storage"`

	Renewal *RenewalConfig `json:"renewal" yaml:"renewal"`

	// Notifier configures the broadcast channel for contract events
	Notifier *NotifierConfig `json:"notifier" yaml:"notifier"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// Worker configures the push delivery worker
	Worker *WorkerConfig `json:"worker" yaml:"worker"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for contract share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// TestRoutesConfig defines configuration for testing endpoints
type TestRoutesConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// IdentityConfig defines the eKYC provider endpoints and matching policy
type IdentityConfig struct {
	Provider          string        `json:"provider" yaml:"provider"`
	OCREndpoint       string        `json:"ocrEndpoint" yaml:"ocrEndpoint"`
	FaceMatchEndpoint string        `json:"faceMatchEndpoint" yaml:"faceMatchEndpoint"`
	APIKey            string        `json:"apiKey" yaml:"apiKey"`
	Timeout           time.Duration `json:"timeout" yaml:"timeout"`
	Retries           int           `json:"retries" yaml:"retries"`

	// FaceMatchThreshold is the minimum similarity (0-100) for a face match to pass
	FaceMatchThreshold int `json:"faceMatchThreshold" yaml:"faceMatchThreshold"`

	// MaxAttempts bounds persisted verdicts per contract, 0 means unlimited
	MaxAttempts int `json:"maxAttempts" yaml:"maxAttempts"`

	// AddressMatch selects the address comparison strategy: substring or folded
	AddressMatch string `json:"addressMatch" yaml:"addressMatch"`

	// MaxImageDimension caps the longest side of images sent to providers
	MaxImageDimension int `json:"maxImageDimension" yaml:"maxImageDimension"`
}

// StorageConfig defines where verification evidence is stored
type StorageConfig struct {
	// BucketURL is a gocloud.dev blob URL (gs://, file://, mem://)
	BucketURL     string `json:"bucketUrl" yaml:"bucketUrl"`
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
	StagingDir    string `json:"stagingDir" yaml:"stagingDir"`
}

// RenewalConfig defines renewal request policy
type RenewalConfig struct {
	WindowDays int `json:"windowDays" yaml:"windowDays"`
}

// NotifierConfig defines the contract event broadcast channel
type NotifierConfig struct {
	// Provider type: "noop", "local", "google" or "redis"
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint emulating a push subscription (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Channel prefix for redis PUBLISH (for redis provider)
	Channel string `json:"channel" yaml:"channel"`

	// Timeout bounds a single publish
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// RedisConfig defines the redis connection used for locks and broadcasts
type RedisConfig struct {
	Enabled  bool          `json:"enabled" yaml:"enabled"`
	Addr     string        `json:"addr" yaml:"addr"`
	Password string        `json:"password" yaml:"password"`
	DB       int           `json:"db" yaml:"db"`
	LockTTL  time.Duration `json:"lockTtl" yaml:"lockTtl"`
}

// WorkerConfig defines the push worker server
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`

	// VerifyToken enables OIDC verification of push requests
	VerifyToken bool   `json:"verifyToken" yaml:"verifyToken"`
	Audience    string `json:"audience" yaml:"audience"`
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

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if override := os.Getenv("CONFIG_PATH"); override != "" {
		searchPaths = append([]string{override}, searchPaths...)
	}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Example: IDENTITY_FACEMATCHTHRESHOLD -> identity.faceMatchThreshold
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

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	ApplyDefaults(cfg)

	// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
	if cfg.Postgres != nil {
		if replicas := buildReplicasFromEnv(); len(replicas) > 0 {
			cfg.Postgres.Replicas = replicas
		}
	}

	return cfg, nil
}

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

// ApplyDefaults fills zero values left by the YAML file and environment.
func ApplyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Identity == nil {
		cfg.Identity = &IdentityConfig{}
	}
	if cfg.Identity.FaceMatchThreshold <= 0 {
		cfg.Identity.FaceMatchThreshold = DefaultFaceMatchThreshold
	}
	if cfg.Identity.Timeout <= 0 {
		cfg.Identity.Timeout = DefaultIdentityTimeout
	}
	if cfg.Identity.Retries < 0 {
		cfg.Identity.Retries = 0
	}
	if cfg.Identity.AddressMatch == "" {
		cfg.Identity.AddressMatch = AddressMatchSubstring
	}
	if cfg.Identity.MaxImageDimension <= 0 {
		cfg.Identity.MaxImageDimension = DefaultMaxImageDimension
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.BucketURL == "" {
		cfg.Storage.BucketURL = "mem://"
	}
	if cfg.Storage.StagingDir == "" {
		cfg.Storage.StagingDir = os.TempDir()
	}

	if cfg.Renewal == nil {
		cfg.Renewal = &RenewalConfig{}
	}
	if cfg.Renewal.WindowDays <= 0 {
		cfg.Renewal.WindowDays = DefaultRenewalWindowDays
	}

	if cfg.Notifier == nil {
		cfg.Notifier = &NotifierConfig{Provider: "noop"}
	}
	if cfg.Notifier.Timeout <= 0 {
		cfg.Notifier.Timeout = DefaultNotifyTimeout
	}

	if cfg.Redis == nil {
		cfg.Redis = &RedisConfig{}
	}
	if cfg.Redis.LockTTL <= 0 {
		cfg.Redis.LockTTL = DefaultLockTTL
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
