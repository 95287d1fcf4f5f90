package handlers

import (
	"log/slog"
	"net/http"

	"sectors-server/internal/campaign"
	"sectors-server/internal/shared/errors"
	"sectors-server/internal/shared/response"
)

type CampaignHandler struct {
	service *campaign.Service
}

func NewCampaignHandler(service *campaign.Service) *CampaignHandler {
	return &CampaignHandler{service: service}
}

func (h *CampaignHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_campaign")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	response.Success(w, http.StatusOK, h.service.Info())
}
