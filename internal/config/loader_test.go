package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadWritesDefaultConfig(t *testing.T) {
	req := require.New(t)
	t.Setenv("PORT", "")
	t.Setenv("ROOMRELAY_ADDR", "")

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg, resolved, err := Load(nil, path)
	req.NoError(err)
	req.Equal(path, resolved)
	req.Equal(Default().Addr, cfg.Addr)
	req.Equal(time.Hour, cfg.AudioRetention)

	_, statErr := os.Stat(path)
	req.NoError(statErr, "default config should be written")
}

func TestLoadReadsFileAndEnv(t *testing.T) {
	req := require.New(t)
	t.Setenv("PORT", "")
	t.Setenv("ROOMRELAY_ADDR", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "addr: \":9000\"\ntext_history_limit: 42\nstatic_dir: /srv/client\n"
	req.NoError(os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("ROOMRELAY_LOG_LEVEL", "debug")

	cfg, _, err := Load(nil, path)
	req.NoError(err)
	req.Equal(":9000", cfg.Addr)
	req.Equal(42, cfg.TextHistoryLimit)
	req.Equal("/srv/client", cfg.StaticDir)
	req.Equal("debug", cfg.LogLevel)
}

func TestApplyPort(t *testing.T) {
	req := require.New(t)

	cfg := Default()
	applyPort(&cfg, "8081", "")
	req.Equal(":8081", cfg.Addr)

	cfg = Default()
	applyPort(&cfg, "8081", ":7000")
	req.Equal(Default().Addr, cfg.Addr, "explicit addr wins over PORT")

	cfg = Default()
	applyPort(&cfg, "", "")
	req.Equal(Default().Addr, cfg.Addr)
}

func TestUpdateFrom(t *testing.T) {
	req := require.New(t)

	cfg := Default()
	cfg.UpdateFrom(Config{Addr: ":1234", TextHistoryLimit: 10})

	req.Equal(":1234", cfg.Addr)
	req.Equal(10, cfg.TextHistoryLimit)
	req.Equal(Default().StaticDir, cfg.StaticDir)
}
