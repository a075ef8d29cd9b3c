package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jonathan/market-intel/internal/fetch"
	"github.com/jonathan/market-intel/internal/market"
	"github.com/jonathan/market-intel/internal/pipeline"
	"github.com/jonathan/market-intel/internal/types"
)

type handler struct {
	pipeline *pipeline.Pipeline
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type scrapeRequest struct {
	URL string `json:"url"`
}

func (h *handler) scrape(w http.ResponseWriter, r *http.Request) {
	var req scrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}
	if req.URL == "" {
		writeError(w, http.StatusBadRequest, "url is required", nil)
		return
	}

	result, err := h.pipeline.ScrapeJob(r.Context(), req.URL)
	if err != nil {
		var fetchErr *fetch.Error
		if errors.As(err, &fetchErr) {
			writeError(w, http.StatusBadGateway, "failed to fetch posting", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "scrape failed", err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *handler) analyze(w http.ResponseWriter, r *http.Request) {
	var role types.RoleQuery
	if err := json.NewDecoder(r.Body).Decode(&role); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	cards, err := h.pipeline.AnalyzeRole(r.Context(), &role)
	if err != nil {
		switch {
		case isValidationError(err):
			writeError(w, http.StatusBadRequest, "invalid role query", err)
		case isMarketError(err):
			writeError(w, http.StatusBadGateway, "market search failed", err)
		default:
			writeError(w, http.StatusInternalServerError, "analysis failed", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, cards)
}

func (h *handler) cacheStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.pipeline.CacheStats())
}

func isMarketError(err error) bool {
	var launchErr *market.LaunchError
	var runErr *market.RunError
	var timeoutErr *market.TimeoutError
	return errors.As(err, &launchErr) || errors.As(err, &runErr) || errors.As(err, &timeoutErr)
}
