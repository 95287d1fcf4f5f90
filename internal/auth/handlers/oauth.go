package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"sectors-server/internal/auth"
	"sectors-server/internal/auth/providers"
	"sectors-server/internal/shared/config"
	"sectors-server/internal/shared/cookies"
	"sectors-server/internal/shared/errors"
	"sectors-server/internal/shared/response"
)

// OAuthHandler runs the provider login flow and issues an operator JWT for
// allow-listed emails. There is no user database: identity lives entirely in
// the signed token.
type OAuthHandler struct {
	provider     providers.OAuthProvider
	states       *auth.StateManager
	isConfigured bool
}

func NewOAuthHandler(provider providers.OAuthProvider, states *auth.StateManager, isConfigured bool) *OAuthHandler {
	return &OAuthHandler{
		provider:     provider,
		states:       states,
		isConfigured: isConfigured,
	}
}

// HandleAuth initiates the OAuth flow.
func (h *OAuthHandler) HandleAuth(w http.ResponseWriter, r *http.Request) {
	name := h.provider.Name()
	logger := slog.With("handler", name+"_oauth_init")

	if !h.isConfigured {
		response.Error(w, r, logger, errors.External(fmt.Sprintf("%s OAuth is not properly configured", name)))
		return
	}

	state, err := h.states.GenerateState(name)
	if err != nil {
		response.Error(w, r, logger, errors.WrapInternal("failed to initialize OAuth flow", err))
		return
	}

	http.Redirect(w, r, h.provider.GetAuthURL(state), http.StatusTemporaryRedirect)
}

// HandleCallback processes the provider callback, validates state, and sets
// the auth cookie.
func (h *OAuthHandler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	name := h.provider.Name()
	code := r.URL.Query().Get("code")
	state := r.URL.Query().Get("state")
	errorParam := r.URL.Query().Get("error")

	logger := slog.With(
		"handler", name+"_oauth_callback",
		"has_code", code != "",
		"has_state", state != "",
	)

	if errorParam != "" {
		logger.Warn("OAuth authorization denied", "oauth_error", errorParam)
		redirectWithError(w, r, "oauth_denied", "Authorization was denied")
		return
	}
	if code == "" {
		redirectWithError(w, r, "oauth_error", "Missing authorization code")
		return
	}

	if err := h.states.ValidateState(state, name); err != nil {
		logger.Error("OAuth state validation failed", "error", err)
		redirectWithError(w, r, "oauth_error", "Invalid request state")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	token, err := h.provider.ExchangeCode(ctx, code)
	if err != nil {
		logger.Error("Failed to exchange authorization code", "error", err)
		redirectWithError(w, r, "oauth_error", "Failed to exchange authorization code")
		return
	}

	user, err := h.provider.GetUserInfo(ctx, token)
	if err != nil {
		logger.Error("Failed to get user info", "error", err)
		redirectWithError(w, r, "oauth_error", "Failed to retrieve user information")
		return
	}

	if !auth.IsAdminEmail(user.Email) {
		logger.Warn("Login attempt from non-operator email", "email", user.Email)
		redirectWithError(w, r, "forbidden", "This account is not an operator")
		return
	}

	jwtToken, err := auth.GenerateJWT(user.Email, user.Name, auth.RoleAdmin)
	if err != nil {
		logger.Error("Failed to generate JWT token", "error", err)
		redirectWithError(w, r, "auth_error", "Failed to create authentication token")
		return
	}

	cookies.SetAuthCookie(w, jwtToken)

	logger.Info("OAuth authentication successful", "provider", name, "email", user.Email)

	cfg := config.GlobalConfig
	http.Redirect(w, r, fmt.Sprintf("%s/auth/callback?success=true", cfg.Frontend.URL), http.StatusTemporaryRedirect)
}

// redirectWithError redirects to the frontend with error parameters.
func redirectWithError(w http.ResponseWriter, r *http.Request, errorType, message string) {
	cfg := config.GlobalConfig
	errorURL := fmt.Sprintf("%s/auth/error?error=%s&message=%s", cfg.Frontend.URL, errorType, url.QueryEscape(message))
	http.Redirect(w, r, errorURL, http.StatusTemporaryRedirect)
}
