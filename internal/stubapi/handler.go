// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stubapi

import (
	"fmt"

	"github.com/MKhiriev/go-feed-reader/internal/config"
	"github.com/MKhiriev/go-feed-reader/internal/logger"
	"github.com/gorilla/feeds"
	"golang.org/x/crypto/bcrypt"
)

// stubUserID is the subject of every token the stub issues.
const stubUserID int64 = 1

// Handler serves the stub REST API for a single account.
type Handler struct {
	cfg          config.ClientStub
	passwordHash []byte
	feed         *feeds.Feed

	logger *logger.Logger
}

// NewHandler builds a Handler for the account described by cfg. The password
// is kept only as a bcrypt hash.
func NewHandler(cfg config.ClientStub, log *logger.Logger) (*Handler, error) {
	if cfg.Login == "" || cfg.Password == "" {
		return nil, fmt.Errorf("%w: empty login or password", ErrInvalidStubSettings)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("%w: hash password: %w", ErrInvalidStubSettings, err)
	}

	log = logger.OrNop(log).Component("stubapi")
	log.Debug().Str("login", cfg.Login).Msg("stub handler created")

	return &Handler{
		cfg:          cfg,
		passwordHash: hash,
		feed:         fixedFeed(),
		logger:       log,
	}, nil
}
