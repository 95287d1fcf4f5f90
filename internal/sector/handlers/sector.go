package handlers

import (
	"log/slog"
	"net/http"

	"sectors-server/internal/sector"
	"sectors-server/internal/shared/errors"
	"sectors-server/internal/shared/response"
	"sectors-server/internal/spatial"
)

type SectorHandler struct {
	service *sector.Service
}

func NewSectorHandler(service *sector.Service) *SectorHandler {
	return &SectorHandler{service: service}
}

func (h *SectorHandler) GetByCoord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "get_sector_by_coord")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	coord, err := spatial.ParseCoord(r.PathValue("x"), r.PathValue("y"), r.PathValue("z"))
	if err != nil {
		response.Error(w, r, logger, errors.WrapValidation("invalid sector coordinate", err))
		return
	}

	def, err := h.service.Get(ctx, coord)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, def)
}
