package config

import (
	"strings"
	"time"

	"github.com/nhdewitt/jwp-dispatch/internal/server"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const EnvPrefix = "JWP"

const (
	KeyPort         = "port"
	KeyStaticDir    = "static_dir"
	KeyReadTimeout  = "read_timeout"
	KeyMaxBodyBytes = "max_body_bytes"
	KeyStrictRoutes = "strict_routes"
)

type Config struct {
	Port         int           `mapstructure:"port"`
	StaticDir    string        `mapstructure:"static_dir"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	MaxBodyBytes int           `mapstructure:"max_body_bytes"`
	StrictRoutes bool          `mapstructure:"strict_routes"`
}

// SetDefaults registers defaults and the JWP_* environment overrides on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyPort, 42069)
	v.SetDefault(KeyStaticDir, "./static")
	v.SetDefault(KeyReadTimeout, time.Duration(0))
	v.SetDefault(KeyMaxBodyBytes, 1<<20)
	v.SetDefault(KeyStrictRoutes, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// Load reads the config file named by v (if any) and decodes it.
func Load(v *viper.Viper) (Config, error) {
	if v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrap(err, "error reading config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "error decoding config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return errors.Errorf("invalid %s %d", KeyPort, c.Port)
	}
	if c.ReadTimeout < 0 {
		return errors.Errorf("invalid %s %s", KeyReadTimeout, c.ReadTimeout)
	}
	if c.MaxBodyBytes < 0 {
		return errors.Errorf("invalid %s %d", KeyMaxBodyBytes, c.MaxBodyBytes)
	}
	return nil
}

func (c Config) Server() server.Config {
	return server.Config{
		Port:         c.Port,
		ReadTimeout:  c.ReadTimeout,
		MaxBodyBytes: c.MaxBodyBytes,
	}
}
