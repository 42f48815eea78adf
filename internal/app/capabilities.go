package app

import (
	"context"
	"time"

	"github.com/MKhiriev/go-feed-reader/internal/apiclient"
	"github.com/MKhiriev/go-feed-reader/internal/capability"
	"github.com/MKhiriev/go-feed-reader/internal/config"
	"github.com/MKhiriev/go-feed-reader/internal/feature/feed"
	"github.com/MKhiriev/go-feed-reader/internal/feature/login"
	"github.com/MKhiriev/go-feed-reader/internal/logger"
	"github.com/MKhiriev/go-feed-reader/internal/session"
	"github.com/MKhiriev/go-feed-reader/models"
	"github.com/patrickmn/go-cache"
)

// Capabilities is the full set of operations a screen can be given. A nil
// field leaves the matching screen action inert.
type Capabilities struct {
	Login     capability.Login
	LoadFeeds capability.LoadFeeds
	Logout    capability.Logout
}

// SharedCapabilities builds the production capabilities over client.
//
// A successful login is remembered in sess, which in turn supplies the token
// for feed loading. Loaded feeds are cached per session for
// feedCfg.CacheTTL; zero disables the cache. Logout clears the session and
// the cache. A nil sess is replaced by a private store.
func SharedCapabilities(client apiclient.Client, sess *session.Store, feedCfg config.ClientFeed, log *logger.Logger) Capabilities {
	log = logger.OrNop(log).Component("app")

	if sess == nil {
		log.Warn().Msg("no session store given, using a private one")
		sess = session.New()
	}

	var feedCache *cache.Cache
	if feedCfg.CacheTTL > 0 {
		feedCache = cache.New(feedCfg.CacheTTL, 2*feedCfg.CacheTTL)
	}

	var exec apiclient.Executor
	if client != nil {
		exec = client
	}

	return Capabilities{
		Login:     rememberSession(login.New(exec), sess, log),
		LoadFeeds: feed.Cached(feed.New(exec, sess.Token), feedCache, sess.Token),
		Logout: func() {
			sess.Clear()
			if feedCache != nil {
				feedCache.Flush()
			}
			log.Info().Msg("session cleared")
		},
	}
}

func rememberSession(next capability.Login, sess *session.Store, log *logger.Logger) capability.Login {
	if next == nil {
		return nil
	}

	return func(ctx context.Context, creds models.Credentials, done func(models.LoggedInUser, error)) {
		start := time.Now()
		next(ctx, creds, func(user models.LoggedInUser, err error) {
			if err != nil {
				log.Warn().Err(err).Str("login", creds.Login).Dur("elapsed", time.Since(start)).Msg("login failed")
			} else {
				sess.Set(user)
				log.Info().Int64("user_id", user.UserID).Dur("elapsed", time.Since(start)).Msg("user logged in")
			}
			if done != nil {
				done(user, err)
			}
		})
	}
}
