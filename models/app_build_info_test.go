package models

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", " ", "abc123")

	assert.Equal(t, "1.0.0", info.BuildVersion())
	assert.Equal(t, NotAvailable, info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
}

func TestAppBuildInfo_Print(t *testing.T) {
	var buf bytes.Buffer
	NewAppBuildInfo("", "2026-01-02", "").Print(&buf)

	assert.Equal(t, "Build version: N/A\nBuild date: 2026-01-02\nBuild commit: N/A\n", buf.String())
}
