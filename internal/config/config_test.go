package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Port:         42069,
		StaticDir:    "./static",
		MaxBodyBytes: 1 << 20,
	}, cfg)
	assert.Equal(t, 42069, cfg.Server().Port)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "port: 8080\nstatic_dir: /srv/www\nread_timeout: 5s\nstrict_routes: true\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "/srv/www", cfg.StaticDir)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 1<<20, cfg.MaxBodyBytes)
	assert.True(t, cfg.StrictRoutes)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("JWP_PORT", "9000")
	t.Setenv("JWP_MAX_BODY_BYTES", "64")

	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, 64, cfg.MaxBodyBytes)
}

func TestLoadMissingFile(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load(v)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{Port: 80}
	require.NoError(t, valid.Validate())

	for _, c := range []Config{
		{Port: 0},
		{Port: 70000},
		{Port: 80, ReadTimeout: -time.Second},
		{Port: 80, MaxBodyBytes: -1},
	} {
		assert.Error(t, c.Validate(), "%+v", c)
	}
}
