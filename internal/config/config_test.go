package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpuzzle/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(config.Default(), cfg))

	cfg, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Parallelism)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvpuzzle.yaml")
	require.NoError(t, os.WriteFile(path, []byte("parallelism: 8\ntimeout: 750ms\nlog_level: debug\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	want := &config.Config{Parallelism: 8, Timeout: 750 * time.Millisecond, CasesDir: "cases", LogLevel: "debug"}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"zero parallelism": "parallelism: 0\n",
		"bad level":        "log_level: loud\n",
		"negative timeout": "timeout: -1s\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "c.yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
			_, err := config.Load(path)
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("parallelism: [\n"), 0o600))
	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("LVPUZZLE_PARALLELISM", "2")
	t.Setenv("LVPUZZLE_TIMEOUT", "5s")
	t.Setenv("LVPUZZLE_CASES_DIR", "/tmp/cases")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Parallelism)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "/tmp/cases", cfg.CasesDir)

	t.Setenv("LVPUZZLE_TIMEOUT", "soon")
	_, err = config.Load("")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "lvpuzzle.yaml")
	cfg := config.Default()
	cfg.Parallelism = 16
	require.NoError(t, cfg.Save(path))

	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 16, got.Parallelism)
	assert.Equal(t, cfg.Timeout, got.Timeout)
}
