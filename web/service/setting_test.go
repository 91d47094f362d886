package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingDefaultsAndOverrides(t *testing.T) {
	setup(t)
	defer teardown()

	service := SettingService{}

	port, err := service.GetPort()
	require.NoError(t, err)
	assert.Equal(t, 2053, port)

	require.NoError(t, service.SetPort(8080))
	port, err = service.GetPort()
	require.NoError(t, err)
	assert.Equal(t, 8080, port)
}

func TestGetBasePathIsNormalized(t *testing.T) {
	setup(t)
	defer teardown()

	service := SettingService{}

	basePath, err := service.GetBasePath()
	require.NoError(t, err)
	assert.Equal(t, "/", basePath)

	require.NoError(t, service.setString("webBasePath", "panel"))
	basePath, err = service.GetBasePath()
	require.NoError(t, err)
	assert.Equal(t, "/panel/", basePath)
}

func TestGetSecretIsStable(t *testing.T) {
	setup(t)
	defer teardown()

	service := SettingService{}

	first, err := service.GetSecret()
	require.NoError(t, err)
	assert.Len(t, first, 32)

	second, err := service.GetSecret()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResetSettings(t *testing.T) {
	setup(t)
	defer teardown()

	service := SettingService{}

	require.NoError(t, service.SetPort(9000))
	require.NoError(t, service.ResetSettings())

	port, err := service.GetPort()
	require.NoError(t, err)
	assert.Equal(t, 2053, port)
}
