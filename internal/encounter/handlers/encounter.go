package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"
	"strconv"

	"sectors-server/internal/encounter"
	"sectors-server/internal/shared/errors"
	"sectors-server/internal/shared/response"
	"sectors-server/internal/spatial"
	"sectors-server/internal/system"
)

type EncounterHandler struct {
	service *encounter.Service
}

func NewEncounterHandler(service *encounter.Service) *EncounterHandler {
	return &EncounterHandler{service: service}
}

func (h *EncounterHandler) GetByLayer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "get_encounter_by_layer")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	coord, err := spatial.ParseCoord(r.PathValue("x"), r.PathValue("y"), r.PathValue("z"))
	if err != nil {
		response.Error(w, r, logger, errors.WrapValidation("invalid sector coordinate", err))
		return
	}

	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		response.Error(w, r, logger, errors.WrapValidation("invalid system index format", err))
		return
	}

	layerID := r.PathValue("layer")

	def, err := h.service.Get(ctx, coord, index, layerID)
	if err != nil {
		if stderrors.Is(err, system.ErrIndexOutOfRange) {
			response.Error(w, r, logger, errors.NotFoundf("no system at index %d in sector %s", index, coord))
			return
		}
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, def)
}
