package server

import (
	"log/slog"
	"net/http"

	"sectors-server/internal/auth"
	authHandlers "sectors-server/internal/auth/handlers"
	"sectors-server/internal/auth/providers"

	adminHandlers "sectors-server/internal/admin/handlers"
	"sectors-server/internal/campaign"
	campaignHandlers "sectors-server/internal/campaign/handlers"
	"sectors-server/internal/encounter"
	encounterHandlers "sectors-server/internal/encounter/handlers"
	"sectors-server/internal/middleware"
	"sectors-server/internal/mission"
	missionHandlers "sectors-server/internal/mission/handlers"
	"sectors-server/internal/sector"
	sectorHandlers "sectors-server/internal/sector/handlers"
	serverHandlers "sectors-server/internal/server/handlers"
	"sectors-server/internal/shared/database"
	"sectors-server/internal/shared/redis"
	"sectors-server/internal/system"
	systemHandlers "sectors-server/internal/system/handlers"
)

type Routes struct {
	db               *database.DB
	cache            *redis.Client
	campaignService  *campaign.Service
	sectorService    *sector.Service
	systemService    *system.Service
	missionService   *mission.Service
	encounterService *encounter.Service
	googleProvider   providers.OAuthProvider
	googleConfigured bool
	states           *auth.StateManager
	logger           *slog.Logger
}

func NewRoutes(
	db *database.DB,
	cache *redis.Client,
	campaignService *campaign.Service,
	sectorService *sector.Service,
	systemService *system.Service,
	missionService *mission.Service,
	encounterService *encounter.Service,
	googleProvider providers.OAuthProvider,
	googleConfigured bool,
	states *auth.StateManager,
	logger *slog.Logger,
) *Routes {
	return &Routes{
		db:               db,
		cache:            cache,
		campaignService:  campaignService,
		sectorService:    sectorService,
		systemService:    systemService,
		missionService:   missionService,
		encounterService: encounterService,
		googleProvider:   googleProvider,
		googleConfigured: googleConfigured,
		states:           states,
		logger:           logger,
	}
}

func (r *Routes) Setup() *http.ServeMux {
	logger := slog.With("component", "routes", "operation", "setup")
	logger.Debug("Setting up application routes")

	mux := http.NewServeMux()

	healthHandler := serverHandlers.NewHealthHandler(r.db, r.cache)
	campaignHandler := campaignHandlers.NewCampaignHandler(r.campaignService)
	sectorHandler := sectorHandlers.NewSectorHandler(r.sectorService)
	systemHandler := systemHandlers.NewSystemHandler(r.systemService)
	missionHandler := missionHandlers.NewMissionHandler(r.missionService)
	encounterHandler := encounterHandlers.NewEncounterHandler(r.encounterService)
	fighterHandler := encounterHandlers.NewFighterHandler(r.encounterService)
	cacheHandler := adminHandlers.NewCacheHandler(r.cache)
	logoutHandler := authHandlers.NewLogoutHandler()

	googleAuthHandler := authHandlers.NewOAuthHandler(r.googleProvider, r.states, r.googleConfigured)

	// Public endpoints
	mux.Handle("/api/server/health", healthHandler)
	mux.Handle("/api/campaign", campaignHandler)
	mux.HandleFunc("/api/sectors/{x}/{y}/{z}", sectorHandler.GetByCoord)
	mux.HandleFunc("/api/sectors/{x}/{y}/{z}/systems/{index}", systemHandler.GetByIndex)
	mux.HandleFunc("/api/sectors/{x}/{y}/{z}/systems/{index}/missions/{tier}", missionHandler.GetByTier)
	mux.HandleFunc("/api/sectors/{x}/{y}/{z}/systems/{index}/encounters/{layer}", encounterHandler.GetByLayer)
	mux.HandleFunc("/api/archetypes/fighters/{id}", fighterHandler.GetByID)

	// Admin-only endpoints (authenticated + admin role)
	mux.Handle("/api/admin/cache/flush", middleware.RequireAdmin(http.HandlerFunc(cacheHandler.Flush)))

	// OAuth endpoints
	mux.HandleFunc("/auth/google", googleAuthHandler.HandleAuth)
	mux.HandleFunc("/auth/google/callback", googleAuthHandler.HandleCallback)
	mux.Handle("/auth/logout", logoutHandler)

	logger.Info("Routes configured successfully",
		"public_endpoints", []string{
			"/api/server/health",
			"/api/campaign",
			"/api/sectors/{x}/{y}/{z}",
			"/api/sectors/{x}/{y}/{z}/systems/{index}",
			"/api/sectors/{x}/{y}/{z}/systems/{index}/missions/{tier}",
			"/api/sectors/{x}/{y}/{z}/systems/{index}/encounters/{layer}",
			"/api/archetypes/fighters/{id}",
		},
		"admin_endpoints", []string{"/api/admin/cache/flush"},
		"auth_endpoints", []string{"/auth/google", "/auth/logout"},
	)

	return mux
}
