package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"identity": map[string]any{
			"faceMatchThreshold": 80,
			"ocrEndpoint":        "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "IDENTITY_FACEMATCHTHRESHOLD", want: "identity.faceMatchThreshold"},
		{envKey: "IDENTITY_OCRENDPOINT", want: "identity.ocrEndpoint"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlBody := []byte(`
env:
  env: test
identity:
  faceMatchThreshold: 80
  timeout: 10s
renewal:
  windowDays: 60
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unit.yaml"), yamlBody, 0o600))

	t.Setenv("CONFIG_PATH", dir)
	t.Setenv("IDENTITY_FACEMATCHTHRESHOLD", "85")

	cfg, err := LoadWithEnv[Config]("unit")
	require.NoError(t, err)
	require.NotNil(t, cfg.Identity)

	assert.Equal(t, 85, cfg.Identity.FaceMatchThreshold)
	assert.Equal(t, 10*time.Second, cfg.Identity.Timeout)
	assert.Equal(t, 60, cfg.Renewal.WindowDays)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", t.TempDir())

	_, err := LoadWithEnv[Config]("does-not-exist")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	assert.Equal(t, DefaultFaceMatchThreshold, cfg.Identity.FaceMatchThreshold)
	assert.Equal(t, DefaultRenewalWindowDays, cfg.Renewal.WindowDays)
	assert.Equal(t, AddressMatchSubstring, cfg.Identity.AddressMatch)
	assert.Equal(t, "noop", cfg.Notifier.Provider)
	assert.Equal(t, "mem://", cfg.Storage.BucketURL)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
}
