package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"
	"strconv"

	"sectors-server/internal/mission"
	"sectors-server/internal/shared/errors"
	"sectors-server/internal/shared/response"
	"sectors-server/internal/spatial"
	"sectors-server/internal/system"
)

type MissionHandler struct {
	service *mission.Service
}

func NewMissionHandler(service *mission.Service) *MissionHandler {
	return &MissionHandler{service: service}
}

func (h *MissionHandler) GetByTier(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "get_mission_by_tier")

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

	tier, err := strconv.Atoi(r.PathValue("tier"))
	if err != nil {
		response.Error(w, r, logger, errors.WrapValidation("invalid mission tier format", err))
		return
	}
	if tier < 0 {
		response.Error(w, r, logger, errors.Validation("mission tier must be non-negative"))
		return
	}

	def, err := h.service.Get(ctx, coord, index, tier)
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
