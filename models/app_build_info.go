// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

const notAvailable = "N/A"

// AppBuildInfo carries the linker-injected build metadata of a binary.
// The zero value reports every field as "N/A".
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// BuildField is one labelled line of build output.
type BuildField struct {
	Label string
	Value string
}

// NewAppBuildInfo constructs [AppBuildInfo]; surrounding whitespace is
// dropped so blank values render as "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: strings.TrimSpace(version),
		date:    strings.TrimSpace(date),
		commit:  strings.TrimSpace(commit),
	}
}

func (a AppBuildInfo) Version() string { return orNotAvailable(a.version) }
func (a AppBuildInfo) Date() string { return orNotAvailable(a.date) }
func (a AppBuildInfo) Commit() string { return orNotAvailable(a.commit) }

// Fields returns the build metadata in display order, shared by the
// startup banner and the TUI about window.
func (a AppBuildInfo) Fields() []BuildField {
	return []BuildField{
		{Label: "Version", Value: a.Version()},
		{Label: "Date", Value: a.Date()},
		{Label: "Commit", Value: a.Commit()},
	}
}

func orNotAvailable(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}
