package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type AppConfig struct {
	Name string `mapstructure:"name"`
	Env  string `mapstructure:"env"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type StorageConfig struct {
	Dir string `mapstructure:"dir"`
}

// AIConfig selects the generation provider and how it is reached.
// When Vault.Enabled is true, provider calls go through the vault's
// per-provider prefix and the local process holds only a placeholder key.
type AIConfig struct {
	Provider string      `mapstructure:"provider"` // openai | anthropic | gemini
	Model    string      `mapstructure:"model"`
	APIKey   string      `mapstructure:"api_key"` // direct mode only
	Vault    VaultTarget `mapstructure:"vault"`
}

type VaultTarget struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url"`
}

// VaultConfig configures the credential vault process itself.
type VaultConfig struct {
	Addr            string `mapstructure:"addr"`
	CredentialsFile string `mapstructure:"credentials_file"`
	ProvidersFile   string `mapstructure:"providers_file"` // optional descriptor overrides
}

type CMSConfig struct {
	BaseURL    string `mapstructure:"base_url"`
	APIKey     string `mapstructure:"api_key"`
	Collection string `mapstructure:"collection"`
}

type RateLimitConfig struct {
	WindowSec int    `mapstructure:"window_sec"`
	Max       int    `mapstructure:"max"`
	Backend   string `mapstructure:"backend"` // memory | redis
	RedisAddr string `mapstructure:"redis_addr"`
	RedisDB   int    `mapstructure:"redis_db"`
}

type TelemetryConfig struct {
	Enabled      bool    `mapstructure:"enabled"`
	OtlpEndpoint string  `mapstructure:"otlp_endpoint"`
	SampleRatio  float64 `mapstructure:"sample_ratio"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Storage   StorageConfig   `mapstructure:"storage"`
	AI        AIConfig        `mapstructure:"ai"`
	Vault     VaultConfig     `mapstructure:"vault"`
	CMS       CMSConfig       `mapstructure:"cms"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Log       LogConfig       `mapstructure:"log"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "atelier")
	v.SetDefault("app.env", "development")

	v.SetDefault("server.addr", ":3001")

	v.SetDefault("storage.dir", "./artworks")

	v.SetDefault("ai.provider", "gemini")
	v.SetDefault("ai.model", "")
	v.SetDefault("ai.vault.enabled", true)
	v.SetDefault("ai.vault.url", "http://127.0.0.1:3100")

	v.SetDefault("vault.addr", ":3100")
	v.SetDefault("vault.credentials_file", "./vault-credentials.json")
	v.SetDefault("vault.providers_file", "")

	v.SetDefault("ratelimit.window_sec", 60)
	v.SetDefault("ratelimit.max", 20)
	v.SetDefault("ratelimit.backend", "memory")
	v.SetDefault("ratelimit.redis_db", 0)

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.sample_ratio", 1.0)

	v.SetDefault("log.level", "info")
}

// Load reads configuration from an optional config file plus ATELIER_*
// environment overrides. A missing config file is not an error; defaults
// plus env are enough to run both processes.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("ATELIER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
