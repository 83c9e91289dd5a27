package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brocklab/seqdat/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SEQDAT_CONFIG_PATH", "")
	t.Setenv("SEQDAT_DATABASE", "")
	t.Setenv("SEQDAT_USER", "")
	t.Setenv("SEQDAT_SEPARATOR", "")
	t.Setenv("SEQDAT_LOG_LEVEL", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "_", cfg.Separator)
	require.Equal(t, "info", cfg.Log.Level)
	require.NotEmpty(t, cfg.Database)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(
		"database: /srv/sequencing\nuser: daylin\nlog:\n  level: debug\n",
	), 0o644))

	t.Setenv("SEQDAT_CONFIG_PATH", path)
	t.Setenv("SEQDAT_DATABASE", "")
	t.Setenv("SEQDAT_USER", "")
	t.Setenv("SEQDAT_LOG_LEVEL", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "/srv/sequencing", cfg.Database)
	require.Equal(t, "daylin", cfg.User)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "_", cfg.Separator, "unset file values keep defaults")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("database: /srv/sequencing\n"), 0o644))

	t.Setenv("SEQDAT_CONFIG_PATH", path)
	t.Setenv("SEQDAT_DATABASE", "/mnt/other")
	t.Setenv("SEQDAT_SEPARATOR", "-")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "/mnt/other", cfg.Database)
	require.Equal(t, "-", cfg.Separator)
}

func TestLoad_BadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("database: [unclosed\n"), 0o644))

	t.Setenv("SEQDAT_CONFIG_PATH", path)

	_, err := config.Load()
	require.Error(t, err)
}
