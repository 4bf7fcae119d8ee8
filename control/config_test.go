package control_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/vring/control"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := control.Load(control.NewViper(), "")
	require.NoError(t, err)
	assert.Equal(t, control.DefaultConfig(), cfg)

	opts, err := cfg.RingOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 2)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "vring.yaml")
	require.NoError(t, os.WriteFile(file, []byte("ring:\n  capacity: 100\n  backend: flat\nlogging:\n  level: debug\n"), 0o644))

	t.Setenv("VRING_RING_NAME", "from-env")

	cfg, err := control.Load(control.NewViper(), file)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), cfg.Ring.Capacity)
	assert.Equal(t, "flat", cfg.Ring.Backend)
	assert.Equal(t, "from-env", cfg.Ring.Name)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadEnvOverridesDefault(t *testing.T) {
	t.Setenv("VRING_RING_CAPACITY", "8192")
	cfg, err := control.Load(control.NewViper(), "")
	require.NoError(t, err)
	assert.Equal(t, uint64(8192), cfg.Ring.Capacity)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := control.Load(control.NewViper(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := control.DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Ring.Capacity = 0
	cfg.Ring.Backend = "ramdisk"
	cfg.Logging.Level = "loud"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ring.capacity")
	assert.Contains(t, err.Error(), "ring.backend")
	assert.Contains(t, err.Error(), "logging.level")

	_, err = cfg.RingOptions()
	assert.Error(t, err)
}
