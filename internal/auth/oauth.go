package auth

import (
	"log/slog"

	"sectors-server/internal/auth/providers"
	"sectors-server/internal/shared/config"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// OAuthConfig bundles the configured login providers. Google is the only
// provider operators sign in with.
type OAuthConfig struct {
	GoogleConfig     *oauth2.Config
	GoogleProvider   *providers.GoogleProvider
	GoogleConfigured bool
}

func InitOAuth() *OAuthConfig {
	cfg := config.GlobalConfig
	logger := slog.With("component", "oauth", "operation", "init")
	logger.Debug("Initializing OAuth configurations")

	googleConfig := &oauth2.Config{
		ClientID:     cfg.OAuth.Google.ClientID,
		ClientSecret: cfg.OAuth.Google.ClientSecret,
		RedirectURL:  cfg.OAuth.Google.RedirectURL,
		Scopes:       cfg.OAuth.Google.Scopes,
		Endpoint:     google.Endpoint,
	}

	googleConfigured := cfg.GoogleOAuthConfigured()
	googleProvider := providers.NewGoogleProvider(googleConfig)

	logger.Info("OAuth configuration completed",
		"server_url", cfg.Server.URL,
		"google_configured", googleConfigured,
		"google_redirect", googleConfig.RedirectURL,
	)

	if !googleConfigured {
		logger.Warn("Google OAuth not configured - missing client credentials")
	}

	return &OAuthConfig{
		GoogleConfig:     googleConfig,
		GoogleProvider:   googleProvider,
		GoogleConfigured: googleConfigured,
	}
}
