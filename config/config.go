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
	defaultMaxRequestBodySize = "100KB"
	defaultCollectionPath     = "user-devices"
	defaultMaxAttempts        = 5
)

// Store drivers
const (
	StoreDriverFirestore = "firestore"
	StoreDriverPostgres  = "postgres"
	StoreDriverMemory    = "memory"
)

// Identity providers
const (
	IdentityProviderFirebase = "firebase"
	IdentityProviderLocal    = "local"
)

// Messaging providers
const (
	MessagingProviderLocal  = "local"
	MessagingProviderPubSub = "pubsub"
	MessagingProviderPush   = "push"
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

	// Firebase configuration shared by Firestore and Auth
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Registry configuration for the device documents
	Registry *RegistryConfig `json:"registry" yaml:"registry"`

	// Store selects the document store backend
	Store *StoreConfig `json:"store" yaml:"store"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Identity selects how ID tokens are verified
	Identity *IdentityConfig `json:"identity" yaml:"identity"`

	// Messaging configuration for push token delivery
	Messaging *MessagingConfig `json:"messaging" yaml:"messaging"`

	// Device describes this installation
	Device *DeviceConfig `json:"device" yaml:"device"`

	// Subscription controls the controller lifecycle
	Subscription *SubscriptionConfig `json:"subscription" yaml:"subscription"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines Firebase project settings
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// RegistryConfig defines where device documents live and how transactions retry
type RegistryConfig struct {
	// Collection holding one document per user
	CollectionPath string `json:"collectionPath" yaml:"collectionPath"`

	// Attempts per transaction before contention is reported
	MaxAttempts int `json:"maxAttempts" yaml:"maxAttempts"`
}

// StoreConfig defines the document store backend
type StoreConfig struct {
	// Driver: "firestore", "postgres" or "memory"
	Driver string `json:"driver" yaml:"driver"`
}

// IdentityConfig defines how sign-in credentials are verified
type IdentityConfig struct {
	// Provider type: "firebase" verifies Firebase ID tokens, "local" trusts the
	// credential as the user ID and is meant for development only
	Provider string `json:"provider" yaml:"provider"`
}

// MessagingConfig defines how push tokens reach this installation
type MessagingConfig struct {
	// Provider type: "local" for tokens set through the control API, "pubsub" for a
	// pull subscription, or "push" for a Pub/Sub push subscription targeting the control API
	Provider string `json:"provider" yaml:"provider"`

	// Initial permission state for the local provider
	PermissionGranted bool `json:"permissionGranted" yaml:"permissionGranted"`

	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Push *PushConfig `json:"push" yaml:"push"`
}

// PushConfig defines how Pub/Sub push requests are authenticated
type PushConfig struct {
	// Verify the OIDC token Pub/Sub attaches to push requests
	VerifyAuth bool `json:"verifyAuth" yaml:"verifyAuth"`

	// Expected token audience; defaults to the request URL
	Audience string `json:"audience" yaml:"audience"`
}

// PubSubConfig defines the subscription delivering token rotation events
type PubSubConfig struct {
	ProjectID      string `json:"projectId" yaml:"projectId"`
	SubscriptionID string `json:"subscriptionId" yaml:"subscriptionId"`
}

// DeviceConfig describes this installation for new device entries
type DeviceConfig struct {
	UserAgent string `json:"userAgent" yaml:"userAgent"`
}

// SubscriptionConfig controls the controller lifecycle
type SubscriptionConfig struct {
	// Subscribe on start
	AutoSubscribe bool `json:"autoSubscribe" yaml:"autoSubscribe"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
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

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Registry == nil {
		cfg.Registry = &RegistryConfig{}
	}
	if strings.TrimSpace(cfg.Registry.CollectionPath) == "" {
		cfg.Registry.CollectionPath = defaultCollectionPath
	}
	if cfg.Registry.MaxAttempts <= 0 {
		cfg.Registry.MaxAttempts = defaultMaxAttempts
	}

	if cfg.Store == nil || cfg.Store.Driver == "" {
		cfg.Store = &StoreConfig{Driver: StoreDriverFirestore}
	}

	if cfg.Identity == nil || cfg.Identity.Provider == "" {
		cfg.Identity = &IdentityConfig{Provider: IdentityProviderFirebase}
	}

	if cfg.Messaging == nil || cfg.Messaging.Provider == "" {
		cfg.Messaging = &MessagingConfig{Provider: MessagingProviderLocal}
	}

	if cfg.Device == nil {
		cfg.Device = &DeviceConfig{}
	}

	if cfg.Subscription == nil {
		cfg.Subscription = &SubscriptionConfig{}
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

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
