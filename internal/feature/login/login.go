// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package login builds the login capability on top of the shared API client.
package login

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-feed-reader/internal/apiclient"
	"github.com/MKhiriev/go-feed-reader/internal/capability"
	"github.com/MKhiriev/go-feed-reader/internal/utils"
	"github.com/MKhiriev/go-feed-reader/models"
)

const loginPath = "/api/auth/login"

// New returns the login capability backed by exec. A nil exec yields a nil
// capability.
//
// The credentials are POSTed as JSON to /api/auth/login. On success the
// bearer token is taken from the Authorization response header, the user ID
// from its subject claim and the display name from the JSON body. Empty
// credentials fail with [ErrInvalidCredentials] without sending a request.
func New(exec apiclient.Executor) capability.Login {
	if exec == nil {
		return nil
	}

	return func(ctx context.Context, creds models.Credentials, done func(models.LoggedInUser, error)) {
		done = utils.OnceCompletion(done, nil)

		creds.Login = strings.TrimSpace(creds.Login)
		if creds.Login == "" || creds.Password == "" {
			done(models.LoggedInUser{}, ErrInvalidCredentials)
			return
		}

		body, err := json.Marshal(creds)
		if err != nil {
			done(models.LoggedInUser{}, fmt.Errorf("encode credentials: %w", err))
			return
		}

		req := apiclient.Request{
			Method: http.MethodPost,
			Path:   loginPath,
			Header: http.Header{
				"Content-Type": []string{"application/json"},
				"Accept":       []string{"application/json"},
			},
			Body: body,
		}

		exec.Execute(ctx, req, func(resp apiclient.Response, err error) {
			done(decodeLogin(creds, resp, err))
		})
	}
}

func decodeLogin(creds models.Credentials, resp apiclient.Response, err error) (models.LoggedInUser, error) {
	if err != nil {
		return models.LoggedInUser{}, fmt.Errorf("login request: %w", err)
	}

	token, err := utils.ParseBearerToken(resp.Header.Get("Authorization"))
	if err != nil {
		return models.LoggedInUser{}, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}

	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return models.LoggedInUser{}, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}

	var user models.LoggedInUser
	if len(resp.Body) > 0 {
		if err = json.Unmarshal(resp.Body, &user); err != nil {
			return models.LoggedInUser{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
		}
	}

	user.UserID = userID
	user.Token = token
	if user.Login == "" {
		user.Login = creds.Login
	}
	if user.Name == "" {
		user.Name = user.Login
	}

	return user, nil
}
