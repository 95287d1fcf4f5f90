package handlers

import (
	"log/slog"
	"net/http"

	"sectors-server/internal/shared/errors"
	"sectors-server/internal/shared/redis"
	"sectors-server/internal/shared/response"
)

type CacheHandler struct {
	cache *redis.Client
}

func NewCacheHandler(cache *redis.Client) *CacheHandler {
	return &CacheHandler{cache: cache}
}

// Flush drops every cached sector and system snapshot. Generators are
// deterministic, so the cache repopulates on demand with identical content.
func (h *CacheHandler) Flush(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "flush_cache")

	if r.Method != http.MethodPost {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	if h.cache == nil {
		response.Success(w, http.StatusOK, map[string]string{"status": "cache disabled"})
		return
	}

	if err := h.cache.FlushDB(ctx).Err(); err != nil {
		response.Error(w, r, logger, errors.WrapExternal("failed to flush cache", err))
		return
	}

	logger.Info("Cache flushed")
	response.Success(w, http.StatusOK, map[string]string{"status": "flushed"})
}
