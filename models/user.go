// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoggedInUser is the result of a successful login.
//
// Token is the bearer token the server issued; it is never serialised back
// to the server as part of the user record.
type LoggedInUser struct {
	// UserID is parsed from the token's "sub" claim.
	UserID int64 `json:"-"`

	// Login echoes the account name the user logged in with.
	Login string `json:"login"`

	// Name is the display name returned by the server, shown in the feed
	// screen header.
	Name string `json:"name"`

	// Token is the compact JWS string from the Authorization header.
	Token string `json:"-"`
}

// IsZero reports whether u carries no session at all.
func (u LoggedInUser) IsZero() bool {
	return u.Token == "" && u.UserID == 0 && u.Login == ""
}
