// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package feed builds the feed loading capability on top of the shared API
// client and decorates it with an in-memory cache.
package feed

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-feed-reader/internal/apiclient"
	"github.com/MKhiriev/go-feed-reader/internal/capability"
	"github.com/MKhiriev/go-feed-reader/internal/utils"
	"github.com/MKhiriev/go-feed-reader/models"
	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"
)

const feedPath = "/api/feed"

// acceptFeeds lists the formats gofeed can detect, in order of preference.
const acceptFeeds = "application/rss+xml, application/atom+xml, application/feed+json;q=0.9"

// TokenSource returns the bearer token of the current session, or "".
type TokenSource func() string

// New returns the feed loading capability backed by exec. A nil exec yields
// a nil capability.
//
// Without a token the completion receives [ErrNoSession] and no request is
// sent. RSS, Atom and JSON Feed bodies are accepted.
func New(exec apiclient.Executor, tokens TokenSource) capability.LoadFeeds {
	if exec == nil {
		return nil
	}

	return func(ctx context.Context, done func([]models.FeedItem, error)) {
		done = utils.OnceCompletion(done, nil)

		var token string
		if tokens != nil {
			token = tokens()
		}
		if token == "" {
			done(nil, ErrNoSession)
			return
		}

		req := apiclient.Request{
			Method: http.MethodGet,
			Path:   feedPath,
			Header: http.Header{
				"Authorization": []string{"Bearer " + token},
				"Accept":        []string{acceptFeeds},
			},
		}

		exec.Execute(ctx, req, func(resp apiclient.Response, err error) {
			if err != nil {
				done(nil, fmt.Errorf("load feed request: %w", err))
				return
			}
			done(decodeFeed(resp.Body))
		})
	}
}

func decodeFeed(body []byte) ([]models.FeedItem, error) {
	parsed, err := gofeed.NewParser().Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeFeed, err)
	}

	items := make([]models.FeedItem, 0, len(parsed.Items))
	for _, it := range parsed.Items {
		if it == nil {
			continue
		}
		items = append(items, toFeedItem(it))
	}

	return items, nil
}

func toFeedItem(it *gofeed.Item) models.FeedItem {
	item := models.FeedItem{
		ID:          it.GUID,
		Title:       strings.TrimSpace(it.Title),
		Link:        it.Link,
		Description: strings.TrimSpace(it.Description),
		Published:   publishedAt(it),
	}

	if item.Description == "" {
		item.Description = strings.TrimSpace(it.Content)
	}

	switch {
	case it.Author != nil:
		item.Author = it.Author.Name
	case len(it.Authors) > 0 && it.Authors[0] != nil:
		item.Author = it.Authors[0].Name
	}

	if item.ID == "" {
		item.ID = item.Link
	}
	if item.ID == "" {
		// stable across reloads of the same entry
		item.ID = uuid.NewSHA1(uuid.NameSpaceURL, []byte(item.Title+"|"+it.Published)).String()
	}

	return item
}

func publishedAt(it *gofeed.Item) time.Time {
	switch {
	case it.PublishedParsed != nil:
		return it.PublishedParsed.UTC()
	case it.UpdatedParsed != nil:
		return it.UpdatedParsed.UTC()
	default:
		return time.Time{}
	}
}
