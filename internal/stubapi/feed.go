package stubapi

import (
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-feed-reader/internal/logger"
	"github.com/gorilla/feeds"
)

const (
	contentTypeRSS  = "application/rss+xml"
	contentTypeAtom = "application/atom+xml"
	contentTypeJSON = "application/feed+json"
)

func fixedFeed() *feeds.Feed {
	published := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

	return &feeds.Feed{
		Title:       "go-feed-reader stub",
		Link:        &feeds.Link{Href: "https://stub.local/"},
		Description: "Fixed feed served by the in-process stub backend",
		Author:      &feeds.Author{Name: "Stub Editor"},
		Created:     published,
		Items: []*feeds.Item{
			{
				Id:          "stub-1",
				Title:       "Welcome to go-feed-reader",
				Link:        &feeds.Link{Href: "https://stub.local/posts/welcome"},
				Description: "You are reading the stub feed. Configure -a to use a real server.",
				Author:      &feeds.Author{Name: "Stub Editor"},
				Created:     published,
			},
			{
				Id:          "stub-2",
				Title:       "Keyboard shortcuts",
				Link:        &feeds.Link{Href: "https://stub.local/posts/keys"},
				Description: "r reloads the feed, c copies the selected link, l logs out.",
				Author:      &feeds.Author{Name: "Stub Editor"},
				Created:     published.Add(-24 * time.Hour),
			},
			{
				Id:          "stub-3",
				Title:       "Release notes",
				Link:        &feeds.Link{Href: "https://stub.local/posts/release-notes"},
				Description: "Feeds are parsed from RSS, Atom and JSON Feed.",
				Created:     published.Add(-48 * time.Hour),
				Updated:     published.Add(-47 * time.Hour),
			},
		},
	}
}

func (h *Handler) getFeed(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	contentType := negotiateFeedType(r.Header.Get("Accept"))

	var (
		body string
		err  error
	)
	switch contentType {
	case contentTypeAtom:
		body, err = h.feed.ToAtom()
	case contentTypeJSON:
		body, err = h.feed.ToJSON()
	default:
		body, err = h.feed.ToRss()
	}
	if err != nil {
		log.Err(err).Str("content_type", contentType).Msg("error rendering feed")
		writeError(w, err)
		return
	}

	userID, _ := r.Context().Value(userIDCtxKey).(int64)
	log.Debug().Int64("user_id", userID).Str("content_type", contentType).Int("items", len(h.feed.Items)).Msg("feed served")

	w.Header().Set("Content-Type", contentType+"; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}

// negotiateFeedType returns the first feed media type listed in accept,
// defaulting to RSS.
func negotiateFeedType(accept string) string {
	for _, part := range strings.Split(accept, ",") {
		mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		switch mediaType {
		case contentTypeRSS, "application/xml", "text/xml":
			return contentTypeRSS
		case contentTypeAtom:
			return contentTypeAtom
		case contentTypeJSON, "application/json":
			return contentTypeJSON
		}
	}
	return contentTypeRSS
}
