// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-sign-desk/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString(row("Application", 11, "Sign Desk"))
	b.WriteString("\n")
	b.WriteString(row("Version", 11, valueOrNA(info.BuildVersion())))
	b.WriteString("\n")
	b.WriteString(row("Date", 11, valueOrNA(info.BuildDate())))
	b.WriteString("\n")
	b.WriteString(row("Commit", 11, valueOrNA(info.BuildCommit())))

	return renderPage("ABOUT", b.String(), "esc: back")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
