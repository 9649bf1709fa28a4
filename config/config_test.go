package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  serviceName: ledger
storage:
  driver: memory
ledger:
  codeLength: 6
  codeTtl: 24h
secretKey:
  access: from-file
`

func writeConfig(t *testing.T, content string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))
	t.Chdir(dir)
}

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	writeConfig(t, testYAML)
	t.Setenv("LEDGER_LEDGER_CODETTL", "2h")
	t.Setenv("LEDGER_SECRETKEY_ACCESS", "from-env")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "ledger", cfg.Env.ServiceName)
	assert.Equal(t, 2*time.Hour, cfg.Ledger.CodeTTL)
	assert.Equal(t, "from-env", cfg.SecretKey.Access)
	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.Storage.Driver = "MEMORY"

	require.NoError(t, cfg.applyDefaults())

	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, MinCodeLength, cfg.Ledger.CodeLength)
	assert.Equal(t, defaultCodeTTL, cfg.Ledger.CodeTTL)
	assert.Equal(t, defaultCodeIssueAttempts, cfg.Ledger.CodeIssueAttempts)
	assert.Equal(t, defaultAccessTokenTTL, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, "noop", cfg.PubSub.Provider)
}

func TestApplyDefaults_Rejects(t *testing.T) {
	t.Run("short code", func(t *testing.T) {
		cfg := &Config{Ledger: &LedgerConfig{CodeLength: 4}}
		cfg.Storage.Driver = StorageDriverMemory

		err := cfg.applyDefaults()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "codeLength")
	})

	t.Run("postgres without config", func(t *testing.T) {
		cfg := &Config{}

		require.Error(t, cfg.applyDefaults())
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := &Config{}
		cfg.Storage.Driver = "sqlite"

		require.Error(t, cfg.applyDefaults())
	})
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LEDGER_DOTENV_PROBE=loaded\n"), 0o600))
	t.Setenv("LEDGER_DOTENV_PROBE", "")
	require.NoError(t, os.Unsetenv("LEDGER_DOTENV_PROBE"))

	require.NoError(t, loadDotEnv(".env"))
	assert.Equal(t, "loaded", os.Getenv("LEDGER_DOTENV_PROBE"))
}
