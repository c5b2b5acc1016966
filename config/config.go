package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "10M"
	defaultPort               = 3001
	defaultCORSOrigin         = "http://localhost:5173"
	defaultRateLimitWindow    = 15 * time.Minute
	defaultRateLimitMax       = 100
	defaultBridgeTimeout      = 2 * time.Second
	defaultAlertCooldown      = time.Minute

	// EnvProduction hides internal error details from API responses.
	EnvProduction = "production"
)

// envAliases maps flat environment names onto their config paths.
var envAliases = map[string]string{
	"PORT":     "HTTP_PORT",
	"NODE_ENV": "ENV_ENV",
}

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Version     string `json:"version" yaml:"version"`
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

	CORS struct {
		Origin string `json:"origin" yaml:"origin"`
	} `json:"cors" yaml:"cors"`

	RateLimit RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	// Firebase service-account credentials
	Firebase FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Gemini generative API
	Gemini GeminiConfig `json:"gemini" yaml:"gemini"`

	// Bridge is the external fall-detection service
	Bridge BridgeConfig `json:"bridge" yaml:"bridge"`

	// PubSub configuration for alert event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RateLimitConfig bounds requests per client IP over a fixed window.
type RateLimitConfig struct {
	WindowMs int64 `json:"windowMs" yaml:"windowMs"`
	Max      int64 `json:"max" yaml:"max"`
}

// Window returns the limiter period.
func (r RateLimitConfig) Window() time.Duration {
	return time.Duration(r.WindowMs) * time.Millisecond
}

// FirebaseConfig defines the Firebase Admin credentials.
type FirebaseConfig struct {
	ProjectID   string `json:"projectId" yaml:"projectId"`
	ClientEmail string `json:"clientEmail" yaml:"clientEmail"`
	PrivateKey  string `json:"privateKey" yaml:"privateKey"`

	// EmulatorHost points Firestore at a local emulator when set.
	EmulatorHost string `json:"emulatorHost" yaml:"emulatorHost"`
}

// GeminiConfig defines the generative API models and key.
type GeminiConfig struct {
	APIKey      string `json:"apiKey" yaml:"apiKey"`
	BaseURL     string `json:"baseUrl" yaml:"baseUrl"`
	TextModel   string `json:"textModel" yaml:"textModel"`
	SpeechModel string `json:"speechModel" yaml:"speechModel"`
	Voice       string `json:"voice" yaml:"voice"`

	// SampleRate of the PCM audio returned by the speech model
	SampleRate int `json:"sampleRate" yaml:"sampleRate"`
}

// BridgeConfig defines the fall-detection service endpoint.
type BridgeConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Minimum time between two recorded fall alerts for the same user
	AlertCooldown time.Duration `json:"alertCooldown" yaml:"alertCooldown"`
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

// IsProduction reports whether the service runs with production error hygiene.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env.Env, EnvProduction)
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

	// Overlay environment variables, e.g. FIREBASE_PROJECT_ID -> firebase.projectId
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			if alias, ok := envAliases[k]; ok {
				k = alias
			}

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
	// A missing .env file is normal outside local development.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = defaultPort
	}
	if cfg.Env.Env == "" {
		cfg.Env.Env = "development"
	}
	if cfg.CORS.Origin == "" {
		cfg.CORS.Origin = defaultCORSOrigin
	}
	if cfg.RateLimit.WindowMs <= 0 {
		cfg.RateLimit.WindowMs = defaultRateLimitWindow.Milliseconds()
	}
	if cfg.RateLimit.Max <= 0 {
		cfg.RateLimit.Max = defaultRateLimitMax
	}
	if cfg.Bridge.Timeout <= 0 {
		cfg.Bridge.Timeout = defaultBridgeTimeout
	}
	if cfg.Bridge.AlertCooldown <= 0 {
		cfg.Bridge.AlertCooldown = defaultAlertCooldown
	}
}

// canonicalizeEnvKey converts ENV_VAR_NAME to a dotted path aligned with existing YAML keys.
// Consecutive segments are joined when they spell a single camelCase key, so
// FIREBASE_PROJECT_ID resolves to firebase.projectId. The longest join wins.
func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := make([]string, 0, 4)
	for _, s := range strings.Split(strings.ToLower(rawKey), "_") {
		if s != "" {
			segments = append(segments, s)
		}
	}

	canonical := make([]string, 0, len(segments))
	current := existing

	for i := 0; i < len(segments); {
		matched, next, width := longestExistingSegment(current, segments[i:])
		if width == 0 {
			canonical = append(canonical, segments[i])
			current = nil
			i++

			continue
		}

		canonical = append(canonical, matched)
		current = next
		i += width
	}

	return strings.Join(canonical, ".")
}

func longestExistingSegment(current map[string]any, segments []string) (matched string, next map[string]any, width int) {
	if len(current) == 0 {
		return "", nil, 0
	}

	for n := len(segments); n > 0; n-- {
		if key, child, ok := findExistingSegment(current, strings.Join(segments[:n], "")); ok {
			return key, child, n
		}
	}

	return "", nil, 0
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
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
