package cli

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/namereg/internal/app"
	"github.com/custodia-labs/namereg/internal/config"
	"github.com/custodia-labs/namereg/internal/core/domain"
	"github.com/custodia-labs/namereg/internal/logger"
)

func TestSetupServices_OpensConfiguredStorage(t *testing.T) {
	t.Cleanup(resetGlobals)
	dir := t.TempDir()

	out, err := execute(t, "--config-dir", dir, "--storage", "memory", "add", "Ada")

	require.NoError(t, err)
	assert.Contains(t, out, "Ada added")
	assert.Equal(t, config.DriverMemory, cfg.Storage.Driver)
	require.NotNil(t, configStore)
	assert.Equal(t, filepath.Join(dir, "config.toml"), configStore.Path())
}

func TestSetupServices_EnvironmentSelectsDriver(t *testing.T) {
	t.Cleanup(resetGlobals)
	t.Setenv("NAMEREG_STORAGE_DRIVER", "memory")
	t.Setenv("NAMEREG_SERVER_ADDR", ":9999")

	var opened config.Config
	openApp = func(ctx context.Context, c config.Config) (*app.App, error) {
		opened = c
		return app.Open(ctx, c)
	}

	_, err := execute(t, "--config-dir", t.TempDir(), "list")

	require.NoError(t, err)
	assert.Equal(t, config.DriverMemory, opened.Storage.Driver)
	assert.Equal(t, ":9999", cfg.Server.Addr)
}

func TestSetupServices_VerboseFlag(t *testing.T) {
	t.Cleanup(resetGlobals)

	_, err := execute(t, "--config-dir", t.TempDir(), "--storage", "memory", "--verbose", "list")

	require.NoError(t, err)
	assert.True(t, logger.IsVerbose())
}

func TestSetupServices_UnknownStorage(t *testing.T) {
	t.Cleanup(resetGlobals)

	_, err := execute(t, "--config-dir", t.TempDir(), "--storage", "oracle", "list")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSetupServices_OpenFailure(t *testing.T) {
	t.Cleanup(resetGlobals)
	openApp = func(context.Context, config.Config) (*app.App, error) {
		return nil, errors.New("cannot open")
	}

	_, err := execute(t, "--config-dir", t.TempDir(), "--storage", "memory", "list")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot open")
	assert.Nil(t, nameService)
}

func TestTeardownServices(t *testing.T) {
	t.Cleanup(resetGlobals)
	calls := 0
	closeServices = func() error {
		calls++
		return errors.New("close failed")
	}

	teardownServices()
	teardownServices()

	assert.Equal(t, 1, calls)
	assert.Nil(t, closeServices)
}
