package api

import (
	"net/http"
	"time"
)

// handleHealth responds with 200 OK to indicate the service is running
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status": "ok",
	}

	if s.cacheService != nil {
		stats := s.cacheService.Stats()
		status["query_cache"] = map[string]interface{}{
			"enabled": stats.Enabled,
			"items":   stats.GoCacheItems,
		}
	}

	if s.refreshStatus != nil {
		var lastRefresh interface{}
		if t := s.refreshStatus.LastRefresh(); !t.IsZero() {
			lastRefresh = t.UTC().Format(time.RFC3339)
		}
		status["last_refresh"] = lastRefresh
	}

	s.sendJSONResponse(w, status)
}
