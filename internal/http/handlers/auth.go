package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/jayparimi/beyond-january/internal/domain"
	"github.com/jayparimi/beyond-january/internal/domain/jsoncfg"
	"github.com/jayparimi/beyond-january/internal/middleware"
)

const (
	tokenTTL      = 24 * time.Hour
	tokenIssuer   = "beyond-january"
	tokenAudience = "beyond-january-web"
)

type googleVerifyRequest struct {
	IDToken string `json:"id_token"`
}

type googleVerifyResponse struct {
	Token string         `json:"token"`
	User  userProfileDTO `json:"user"`
}

type userProfileDTO struct {
	ID          string            `json:"id"`
	Email       string            `json:"email"`
	Name        string            `json:"name"`
	Picture     string            `json:"picture,omitempty"`
	Locale      string            `json:"locale"`
	Timezone    string            `json:"timezone,omitempty"`
	Preferences jsoncfg.PrefsJSON `json:"preferences"`
}

func profileFromUser(u *domain.User) userProfileDTO {
	return userProfileDTO{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Picture:     u.Picture,
		Locale:      u.Locale,
		Timezone:    u.Timezone,
		Preferences: jsoncfg.DecodePrefs(u.Properties),
	}
}

// AuthGoogleVerify exchanges a Google ID token for an app session. The user
// row is upserted by Google subject, so first login and re-login share a path.
func (a *App) AuthGoogleVerify(w http.ResponseWriter, r *http.Request) {
	var req googleVerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.IDToken == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "id_token required")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	claims, err := a.GoogleVerifier.VerifyIDToken(ctx, req.IDToken)
	if err != nil {
		a.Logger.Error().Err(err).Msg("google verify failed")
		a.error(w, http.StatusUnauthorized, "unauthorized", "invalid google token")
		return
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "invalid google token")
		return
	}
	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	picture, _ := claims["picture"].(string)
	locale, _ := claims["locale"].(string)
	if locale == "" {
		locale = middleware.LocaleFromContext(r.Context())
	}
	if locale == "" {
		locale = "en"
	}
	user, err := a.Users.UpsertByGoogleSub(r.Context(), &domain.User{
		GoogleSub: sub,
		Email:     email,
		Name:      name,
		Picture:   picture,
		Locale:    locale,
	})
	if err != nil {
		a.Logger.Error().Err(err).Msg("upsert user failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to persist user")
		return
	}
	token, err := middleware.SignJWT(a.JWTSecret, middleware.TokenClaims{
		Sub:      user.ID,
		Locale:   user.Locale,
		Timezone: user.Timezone,
		Exp:      time.Now().Add(tokenTTL).Unix(),
		Issuer:   tokenIssuer,
		Audience: tokenAudience,
	})
	if err != nil {
		a.Logger.Error().Err(err).Msg("sign jwt failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to sign token")
		return
	}
	a.json(w, http.StatusOK, googleVerifyResponse{Token: token, User: profileFromUser(user)})
}

func (a *App) Me(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	user, err := a.Users.GetByID(r.Context(), userID)
	if err != nil {
		a.domainError(w, err, "failed to load profile")
		return
	}
	a.json(w, http.StatusOK, profileFromUser(user))
}

type meUpdateRequest struct {
	Name        *string            `json:"name"`
	Locale      *string            `json:"locale"`
	Timezone    *string            `json:"timezone"`
	Preferences *jsoncfg.PrefsJSON `json:"preferences"`
}

// MeUpdate applies a partial profile update. Absent fields keep their stored
// values; an explicit empty timezone clears it back to the UTC default.
func (a *App) MeUpdate(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	var req meUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	user, err := a.Users.GetByID(r.Context(), userID)
	if err != nil {
		a.domainError(w, err, "failed to load profile")
		return
	}
	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Locale != nil && *req.Locale != "" {
		user.Locale = *req.Locale
	}
	if req.Timezone != nil {
		tz := strings.TrimSpace(*req.Timezone)
		if tz != "" {
			if _, err := time.LoadLocation(tz); err != nil {
				a.error(w, http.StatusBadRequest, "bad_request", "invalid timezone")
				return
			}
		}
		user.Timezone = tz
	}
	prefs := jsoncfg.DecodePrefs(user.Properties)
	if req.Preferences != nil {
		prefs = *req.Preferences
		prefs.Normalize()
		if err := prefs.Validate(); err != nil {
			a.error(w, http.StatusBadRequest, "bad_request", err.Error())
			return
		}
	}
	user.Properties = jsoncfg.MustMarshal(prefs)
	updated, err := a.Users.UpdateProfile(r.Context(), user)
	if err != nil {
		a.domainError(w, err, "failed to update profile")
		return
	}
	a.json(w, http.StatusOK, profileFromUser(updated))
}
