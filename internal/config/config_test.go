package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/osrs-random/internal/config"
	"github.com/KirkDiggler/osrs-random/internal/errors"
	"github.com/KirkDiggler/osrs-random/internal/orchestrators/update"
)

type ConfigTestSuite struct {
	suite.Suite
	fs  *pflag.FlagSet
	dir string
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.T().Setenv("HOME", s.dir)

	s.fs = pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.RegisterFlags(s.fs)
}

func (s *ConfigTestSuite) writeConfig(body string) string {
	path := filepath.Join(s.dir, "osrs-random.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(body), 0o600))
	return path
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := config.Load(s.fs)
	s.Require().NoError(err)

	s.Equal("grouped", cfg.SkillPolicy)
	s.Equal("warn", cfg.LogLevel)
	s.False(cfg.Seeded)
	s.False(cfg.NoColor)
	s.False(cfg.NoUpdateCheck)
	s.Empty(cfg.Redis.Addr)
	s.Equal(update.DefaultRepo, cfg.UpdateCheck.Repo)
	s.Equal(update.DefaultTimeout, cfg.UpdateCheck.Timeout)
	s.Equal(6*time.Hour, cfg.UpdateCheck.CacheTTL)
	s.Empty(cfg.File)
}

func (s *ConfigTestSuite) TestNilFlagSet() {
	cfg, err := config.Load(nil)
	s.Require().NoError(err)
	s.Equal("grouped", cfg.SkillPolicy)
}

func (s *ConfigTestSuite) TestFlags() {
	s.Require().NoError(s.fs.Parse([]string{
		"--seed", "42",
		"--skill-policy", "FLAT",
		"--no-color",
		"--no-update-check",
		"--redis-addr", "localhost:6379",
		"--log-level", "debug",
	}))

	cfg, err := config.Load(s.fs)
	s.Require().NoError(err)

	s.True(cfg.Seeded)
	s.Equal(uint64(42), cfg.Seed)
	s.Equal("flat", cfg.SkillPolicy)
	s.True(cfg.NoColor)
	s.True(cfg.NoUpdateCheck)
	s.Equal("localhost:6379", cfg.Redis.Addr)
	s.Equal("debug", cfg.LogLevel)
}

func (s *ConfigTestSuite) TestSeedZeroIsStillASeed() {
	s.Require().NoError(s.fs.Parse([]string{"--seed", "0"}))

	cfg, err := config.Load(s.fs)
	s.Require().NoError(err)
	s.True(cfg.Seeded)
	s.Zero(cfg.Seed)
}

func (s *ConfigTestSuite) TestEnvironment() {
	s.T().Setenv("OSRS_RANDOM_SEED", "7")
	s.T().Setenv("OSRS_RANDOM_SKILL_POLICY", "flat")
	s.T().Setenv("OSRS_RANDOM_REDIS_ADDR", "cache:6379")
	s.T().Setenv("OSRS_RANDOM_UPDATE_CHECK_TIMEOUT", "750ms")

	cfg, err := config.Load(s.fs)
	s.Require().NoError(err)

	s.True(cfg.Seeded)
	s.Equal(uint64(7), cfg.Seed)
	s.Equal("flat", cfg.SkillPolicy)
	s.Equal("cache:6379", cfg.Redis.Addr)
	s.Equal(750*time.Millisecond, cfg.UpdateCheck.Timeout)
}

func (s *ConfigTestSuite) TestFlagsBeatEnvironment() {
	s.T().Setenv("OSRS_RANDOM_SKILL_POLICY", "flat")
	s.Require().NoError(s.fs.Parse([]string{"--skill-policy", "grouped"}))

	cfg, err := config.Load(s.fs)
	s.Require().NoError(err)
	s.Equal("grouped", cfg.SkillPolicy)
}

func (s *ConfigTestSuite) TestConfigFile() {
	path := s.writeConfig(`
skill_policy: flat
no_color: true
seed: 99
redis:
  addr: redis.internal:6379
  db: 2
update_check:
  repo: someone/fork
  cache_ttl: 30m
`)
	s.Require().NoError(s.fs.Parse([]string{"--config", path}))

	cfg, err := config.Load(s.fs)
	s.Require().NoError(err)

	s.Equal(path, cfg.File)
	s.Equal("flat", cfg.SkillPolicy)
	s.True(cfg.NoColor)
	s.True(cfg.Seeded)
	s.Equal(uint64(99), cfg.Seed)
	s.Equal("redis.internal:6379", cfg.Redis.Addr)
	s.Equal(2, cfg.Redis.DB)
	s.Equal("someone/fork", cfg.UpdateCheck.Repo)
	s.Equal(30*time.Minute, cfg.UpdateCheck.CacheTTL)
}

func (s *ConfigTestSuite) TestMissingExplicitFile() {
	s.Require().NoError(s.fs.Parse([]string{"--config", filepath.Join(s.dir, "nope.yaml")}))

	_, err := config.Load(s.fs)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ConfigTestSuite) TestInvalidValues() {
	testCases := []struct {
		name  string
		args  []string
		field string
	}{
		{"skill policy", []string{"--skill-policy", "weighted"}, "SkillPolicy"},
		{"log level", []string{"--log-level", "trace"}, "LogLevel"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			config.RegisterFlags(fs)
			s.Require().NoError(fs.Parse(tc.args))

			_, err := config.Load(fs)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.field)
		})
	}
}

func (s *ConfigTestSuite) TestSlogLevel() {
	for level, want := range map[string]string{
		"debug": "DEBUG",
		"info":  "INFO",
		"warn":  "WARN",
		"error": "ERROR",
	} {
		cfg := &config.Config{LogLevel: level}
		s.Equal(want, cfg.SlogLevel().String())
	}
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
