package stubapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-feed-reader/internal/logger"
	"github.com/MKhiriev/go-feed-reader/internal/utils"
	"github.com/MKhiriev/go-feed-reader/models"
	"golang.org/x/crypto/bcrypt"
)

type ctxKey struct{}

// userIDCtxKey holds the authenticated user ID set by auth.
var userIDCtxKey ctxKey

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.checkCredentials(creds); err != nil {
		log.Err(err).Str("login", creds.Login).Msg("login rejected")
		writeError(w, err)
		return
	}

	token, err := utils.GenerateJWTToken(h.cfg.TokenIssuer, stubUserID, h.cfg.TokenDuration, h.cfg.TokenSignKey)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, err)
		return
	}

	log.Debug().Int64("id", stubUserID).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token))
	utils.WriteJSON(w, models.LoggedInUser{Login: h.cfg.Login, Name: h.cfg.Name}, http.StatusOK)
}

func (h *Handler) checkCredentials(creds models.Credentials) error {
	if creds.Login == "" || creds.Password == "" {
		return ErrInvalidDataProvided
	}
	if creds.Login != h.cfg.Login {
		return ErrWrongCredentials
	}
	if bcrypt.CompareHashAndPassword(h.passwordHash, []byte(creds.Password)) != nil {
		return ErrWrongCredentials
	}
	return nil
}

// auth rejects requests without a valid bearer token with 401 and stores the
// token subject under userIDCtxKey.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			writeError(w, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			writeError(w, err)
			return
		}

		userID, err := utils.ValidateJWTToken(tokenString, h.cfg.TokenSignKey, h.cfg.TokenIssuer)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			writeError(w, ErrTokenIsExpiredOrInvalid)
			return
		}

		ctx := context.WithValue(r.Context(), userIDCtxKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
