// Package config loads osrs-random settings from flags, OSRS_RANDOM_*
// environment variables and an optional YAML file, in that precedence.
package config

import (
	stderrors "errors"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/KirkDiggler/osrs-random/internal/errors"
	"github.com/KirkDiggler/osrs-random/internal/orchestrators/picker"
	"github.com/KirkDiggler/osrs-random/internal/orchestrators/update"
)

const (
	// EnvPrefix is prepended to every environment variable
	EnvPrefix = "OSRS_RANDOM"

	configName = "osrs-random"
)

// Flag names shared by the CLI and the loader
const (
	FlagConfig        = "config"
	FlagSeed          = "seed"
	FlagSkillPolicy   = "skill-policy"
	FlagNoColor       = "no-color"
	FlagNoUpdateCheck = "no-update-check"
	FlagRedisAddr     = "redis-addr"
	FlagLogLevel      = "log-level"
)

// flag name -> config key
var flagKeys = map[string]string{
	FlagSeed:          "seed",
	FlagSkillPolicy:   "skill_policy",
	FlagNoColor:       "no_color",
	FlagNoUpdateCheck: "no_update_check",
	FlagRedisAddr:     "redis.addr",
	FlagLogLevel:      "log_level",
}

var logLevels = []string{"debug", "info", "warn", "error"}

// Config is the resolved runtime configuration
type Config struct {
	// Seed makes draws reproducible when Seeded is true
	Seed   uint64 `mapstructure:"seed"`
	Seeded bool   `mapstructure:"-"`

	SkillPolicy   string      `mapstructure:"skill_policy"`
	NoColor       bool        `mapstructure:"no_color"`
	NoUpdateCheck bool        `mapstructure:"no_update_check"`
	LogLevel      string      `mapstructure:"log_level"`
	Redis         Redis       `mapstructure:"redis"`
	UpdateCheck   UpdateCheck `mapstructure:"update_check"`

	// File is the config file that was read, if any
	File string `mapstructure:"-"`
}

// Redis configures the optional release cache server. An empty Addr keeps
// the cache in memory.
type Redis struct {
	Addr     string        `mapstructure:"addr"`
	DB       int           `mapstructure:"db"`
	Password string        `mapstructure:"password"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// UpdateCheck configures the release lookup
type UpdateCheck struct {
	Repo     string        `mapstructure:"repo"`
	Timeout  time.Duration `mapstructure:"timeout"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// RegisterFlags adds the global flags to fs
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(FlagConfig, "", "path to a YAML config file")
	fs.Uint64(FlagSeed, 0, "seed for reproducible draws")
	fs.String(FlagSkillPolicy, string(picker.SkillPolicyGrouped),
		"skill draw policy: "+strings.Join(picker.SkillPolicies(), "|"))
	fs.Bool(FlagNoColor, false, "disable colored output")
	fs.Bool(FlagNoUpdateCheck, false, "skip the release check")
	fs.String(FlagRedisAddr, "", "redis address for the release cache")
	fs.String(FlagLogLevel, "warn", "log level: "+strings.Join(logLevels, "|"))
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("skill_policy", string(picker.SkillPolicyGrouped))
	v.SetDefault("no_color", false)
	v.SetDefault("no_update_check", false)
	v.SetDefault("log_level", "warn")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.timeout", 2*time.Second)
	v.SetDefault("update_check.repo", update.DefaultRepo)
	v.SetDefault("update_check.timeout", update.DefaultTimeout)
	v.SetDefault("update_check.cache_ttl", 6*time.Hour)
}

// Load resolves configuration. fs may be nil. When no --config path is
// given, osrs-random.yaml is looked up in the working directory and the
// user config directory; a missing file is not an error.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// seed has no default so IsSet tells us whether the user asked for one
	if err := v.BindEnv("seed"); err != nil {
		return nil, errors.Wrap(err, "failed to bind seed env")
	}

	path := ""
	if fs != nil {
		for flagName, key := range flagKeys {
			if flag := fs.Lookup(flagName); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, errors.Wrapf(err, "failed to bind flag %s", flagName)
				}
			}
		}
		if flag := fs.Lookup(FlagConfig); flag != nil {
			path = flag.Value.String()
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/osrs-random")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !stderrors.As(err, &notFound) {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read config file")
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode config")
	}
	cfg.Seeded = v.IsSet("seed")
	cfg.File = v.ConfigFileUsed()
	cfg.SkillPolicy = strings.ToLower(strings.TrimSpace(cfg.SkillPolicy))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.Debug("Configuration loaded",
		"file", cfg.File,
		"skill_policy", cfg.SkillPolicy,
		"seeded", cfg.Seeded,
		"redis", cfg.Redis.Addr != "",
	)

	return cfg, nil
}

// Validate checks the resolved values
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("SkillPolicy", c.SkillPolicy, picker.SkillPolicies(), vb)
	errors.ValidateEnum("LogLevel", c.LogLevel, logLevels, vb)
	errors.ValidatePositive("UpdateCheck.Timeout", int64(c.UpdateCheck.Timeout), vb)
	if c.UpdateCheck.CacheTTL < 0 {
		vb.Field("UpdateCheck.CacheTTL", "must not be negative")
	}
	if c.Redis.DB < 0 {
		vb.Field("Redis.DB", "must not be negative")
	}

	return vb.Build()
}

// SlogLevel maps LogLevel onto slog
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
