package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleConfig struct {
	HTTP struct {
		Port     int `yaml:"port"`
		Timeouts struct {
			ReadTimeout time.Duration `yaml:"readTimeout"`
		} `yaml:"timeouts"`
	} `yaml:"http"`
	Images struct {
		BaseDir string `yaml:"baseDir"`
	} `yaml:"images"`
}

func writeSampleConfig(t *testing.T, dir string) {
	t.Helper()

	content := []byte("http:\n  port: 8080\n  timeouts:\n    readTimeout: 15s\nimages:\n  baseDir: public/images\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sample.yaml"), content, 0o600))
}

func TestLoadWithEnv_ReadsYAML(t *testing.T) {
	dir := t.TempDir()
	writeSampleConfig(t, dir)
	t.Chdir(dir)

	cfg, err := LoadWithEnv[sampleConfig]("sample")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 15*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	assert.Equal(t, "public/images", cfg.Images.BaseDir)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	writeSampleConfig(t, dir)
	t.Chdir(dir)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("IMAGES_BASEDIR", "/srv/images")

	cfg, err := LoadWithEnv[sampleConfig]("sample")
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "/srv/images", cfg.Images.BaseDir)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[sampleConfig]("missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml not found")
}
