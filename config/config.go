package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *PostgresConfig `json:"postgres" yaml:"postgres"`

	// Providers configures the external geo APIs the service calls out to.
	Providers *ProvidersConfig `json:"providers" yaml:"providers"`

	// Map configures the default view state for new map sessions.
	Map *MapConfig `json:"map" yaml:"map"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PostgresConfig defines the database connection and pool settings.
type PostgresConfig struct {
	Host            string        `json:"host" yaml:"host"`
	Port            string        `json:"port" yaml:"port"`
	UserName        string        `json:"userName" yaml:"userName"`
	Password        string        `json:"password" yaml:"password"`
	Database        string        `json:"database" yaml:"database"`
	SSLMode         string        `json:"sslMode" yaml:"sslMode"`
	MaxOpenConns    int           `json:"maxOpenConns" yaml:"maxOpenConns"`
	MaxIdleConns    int           `json:"maxIdleConns" yaml:"maxIdleConns"`
	ConnMaxLifetime time.Duration `json:"connMaxLifetime" yaml:"connMaxLifetime"`
}

// ProvidersConfig groups the third-party API settings.
type ProvidersConfig struct {
	Geocoding GeocodingConfig `json:"geocoding" yaml:"geocoding"`
	Places    PlacesConfig    `json:"places" yaml:"places"`
	Transit   TransitConfig   `json:"transit" yaml:"transit"`
	Isochrone IsochroneConfig `json:"isochrone" yaml:"isochrone"`
}

// GeocodingConfig defines the forward/reverse geocoding endpoint settings.
type GeocodingConfig struct {
	BaseURL        string        `json:"baseUrl" yaml:"baseUrl"`
	AccessToken    string        `json:"accessToken" yaml:"accessToken"`
	ResultLimit    int           `json:"resultLimit" yaml:"resultLimit"`
	MinQueryLength int           `json:"minQueryLength" yaml:"minQueryLength"`
	DebounceWindow time.Duration `json:"debounceWindow" yaml:"debounceWindow"`
	Timeout        time.Duration `json:"timeout" yaml:"timeout"`
}

// PlacesConfig defines the nearby-places search endpoint settings.
type PlacesConfig struct {
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
	APIKey  string `json:"apiKey" yaml:"apiKey"`
	// ProxyURL, when set, wraps requests in a CORS-proxy passthrough the way
	// the browser client reaches the places API.
	ProxyURL           string        `json:"proxyUrl" yaml:"proxyUrl"`
	DefaultRadiusMeter int           `json:"defaultRadiusMeter" yaml:"defaultRadiusMeter"`
	CacheTTL           time.Duration `json:"cacheTtl" yaml:"cacheTtl"`
	Timeout            time.Duration `json:"timeout" yaml:"timeout"`
}

// TransitConfig defines the open-data transit-stop endpoint settings.
type TransitConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// IsochroneConfig defines the routing/isochrone endpoint settings.
type IsochroneConfig struct {
	BaseURL     string        `json:"baseUrl" yaml:"baseUrl"`
	AccessToken string        `json:"accessToken" yaml:"accessToken"`
	BatchSize   int           `json:"batchSize" yaml:"batchSize"`
	// BatchInterval is the minimum spacing between batches.
	BatchInterval time.Duration `json:"batchInterval" yaml:"batchInterval"`
	Timeout       time.Duration `json:"timeout" yaml:"timeout"`
}

// MapConfig defines the default view state.
type MapConfig struct {
	DefaultLat       float64 `json:"defaultLat" yaml:"defaultLat"`
	DefaultLng       float64 `json:"defaultLng" yaml:"defaultLng"`
	DefaultZoomLevel string  `json:"defaultZoomLevel" yaml:"defaultZoomLevel"`
}

// LoadWithEnv loads {currEnv}.yaml from the search paths and overlays
// environment variables on top of it.
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

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Providers == nil {
		cfg.Providers = &ProvidersConfig{}
	}
	geocoding := &cfg.Providers.Geocoding
	if geocoding.ResultLimit <= 0 {
		geocoding.ResultLimit = 5
	}
	if geocoding.MinQueryLength <= 0 {
		geocoding.MinQueryLength = 3
	}
	if geocoding.DebounceWindow <= 0 {
		geocoding.DebounceWindow = 300 * time.Millisecond
	}
	if geocoding.Timeout <= 0 {
		geocoding.Timeout = 10 * time.Second
	}

	places := &cfg.Providers.Places
	if places.DefaultRadiusMeter <= 0 {
		places.DefaultRadiusMeter = 5000
	}
	if places.CacheTTL <= 0 {
		places.CacheTTL = 30 * time.Second
	}
	if places.Timeout <= 0 {
		places.Timeout = 10 * time.Second
	}

	if cfg.Providers.Transit.Timeout <= 0 {
		cfg.Providers.Transit.Timeout = 10 * time.Second
	}

	isochrone := &cfg.Providers.Isochrone
	if isochrone.BatchSize <= 0 {
		isochrone.BatchSize = 5
	}
	if isochrone.BatchInterval <= 0 {
		isochrone.BatchInterval = time.Second
	}
	if isochrone.Timeout <= 0 {
		isochrone.Timeout = 15 * time.Second
	}

	if cfg.Map == nil {
		// Centered on Switzerland, country view.
		cfg.Map = &MapConfig{
			DefaultLat:       46.8182,
			DefaultLng:       8.2275,
			DefaultZoomLevel: "country",
		}
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
