// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-feed-reader/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	lines := []string{"Application: go-feed-reader"}
	for _, f := range info.Fields() {
		lines = append(lines, f.Label+": "+f.Value)
	}

	return renderPage("ABOUT", strings.Join(lines, "\n"), "esc: back")
}
