// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-quiz/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, serverVersion string) string {
	serverVersion = strings.TrimSpace(serverVersion)
	if serverVersion == "" {
		serverVersion = models.NotAvailable
	}

	body := fmt.Sprintf(
		"Application: go-quiz\nVersion: %s\nDate: %s\nCommit: %s\nServer version: %s",
		info.BuildVersion(), info.BuildDate(), info.BuildCommit(), serverVersion,
	)

	return renderPage("ABOUT", body, "esc: back")
}
