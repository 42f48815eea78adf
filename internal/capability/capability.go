// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package capability declares the operations screens can be given.
//
// A screen holds one exported field per capability it uses. A nil field
// means the capability was not assigned and invoking it must be skipped.
// Login and LoadFeeds return immediately and report through done, at most
// once per invocation and possibly from another goroutine.
package capability

import (
	"context"

	"github.com/MKhiriev/go-feed-reader/models"
)

// Login authenticates creds and reports the logged-in user.
type Login func(ctx context.Context, creds models.Credentials, done func(models.LoggedInUser, error))

// LoadFeeds fetches the feed of the current session.
type LoadFeeds func(ctx context.Context, done func([]models.FeedItem, error))

// Logout drops the current session. It is synchronous.
type Logout func()
