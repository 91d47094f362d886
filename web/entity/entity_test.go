package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSetting() *AllSetting {
	return &AllSetting{
		WebPort:      2053,
		WebBasePath:  "/",
		TimeLocation: "UTC",
	}
}

func TestCheckValidAcceptsDefaults(t *testing.T) {
	s := validSetting()
	require.NoError(t, s.CheckValid())
}

func TestCheckValidRejectsBadListen(t *testing.T) {
	s := validSetting()
	s.WebListen = "not-an-ip"
	assert.Error(t, s.CheckValid())

	s.WebListen = "127.0.0.1"
	assert.NoError(t, s.CheckValid())
}

func TestCheckValidRejectsBadPort(t *testing.T) {
	for _, port := range []int{0, -1, 65536, 100000} {
		s := validSetting()
		s.WebPort = port
		assert.Error(t, s.CheckValid())
	}
}

func TestCheckValidNormalizesBasePath(t *testing.T) {
	s := validSetting()
	s.WebBasePath = "panel"
	require.NoError(t, s.CheckValid())
	assert.Equal(t, "/panel/", s.WebBasePath)
}

func TestCheckValidRejectsBadTimeLocation(t *testing.T) {
	s := validSetting()
	s.TimeLocation = "Nowhere/Unknown"
	assert.Error(t, s.CheckValid())
}
