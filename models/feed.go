// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// FeedItem is a single entry of the user's feed, independent of whether the
// server rendered it as RSS, Atom or JSON Feed.
type FeedItem struct {
	// ID is the entry GUID, or its link when the feed did not provide one.
	ID string `json:"id"`

	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
	Author      string `json:"author,omitempty"`

	// Published is the publication time, falling back to the update time.
	// Zero when the feed carried neither.
	Published time.Time `json:"published"`
}
