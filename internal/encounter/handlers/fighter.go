package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"sectors-server/internal/archetype"
	"sectors-server/internal/encounter"
	"sectors-server/internal/shared/errors"
	"sectors-server/internal/shared/response"
)

type FighterHandler struct {
	service *encounter.Service
}

func NewFighterHandler(service *encounter.Service) *FighterHandler {
	return &FighterHandler{service: service}
}

func (h *FighterHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_fighter_archetype")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	id := r.PathValue("id")
	if id == "" {
		response.Error(w, r, logger, errors.Validation("fighter archetype ID is required"))
		return
	}

	def, err := h.service.FighterArchetype(id)
	if err != nil {
		if stderrors.Is(err, archetype.ErrUnknownArchetype) {
			response.Error(w, r, logger, errors.NotFoundf("fighter archetype %q not found", id))
			return
		}
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, def)
}
