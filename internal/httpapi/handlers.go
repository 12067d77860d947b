package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/mizutama/livability/internal/domain/livability"
	"github.com/mizutama/livability/internal/metrics"
	"github.com/mizutama/livability/pkg/geo"
	"github.com/mizutama/livability/pkg/geocode"
	"github.com/mizutama/livability/pkg/logging"
)

const apiVersion = "1.0.0"

// Geocoder is the coordinates resolver used ahead of aggregation.
type Geocoder interface {
	Resolve(ctx context.Context, address string) (geocode.Result, error)
}

// Handlers serves the livability analysis endpoints.
type Handlers struct {
	analyzer livability.Service
	geocoder Geocoder
	log      *logging.Logger
	placesOK bool
}

// NewHandlers wires the HTTP handler set.
func NewHandlers(analyzer livability.Service, geocoder Geocoder, log *logging.Logger, placesConfigured bool) *Handlers {
	return &Handlers{
		analyzer: analyzer,
		geocoder: geocoder,
		log:      log,
		placesOK: placesConfigured,
	}
}

// Analyze handles POST /api/v1/analyze. The body must carry either an
// address or explicit coordinates. A total pipeline failure (unresolvable
// address, invalid coordinates) comes back as an explicit error status,
// never as a fabricated success payload.
func (h *Handlers) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "request body must be valid JSON")
		return
	}

	var origin geo.Point
	address := req.Address

	switch {
	case req.Coordinates != nil:
		origin = *req.Coordinates
		if !origin.Valid() {
			writeError(w, http.StatusBadRequest, "invalid_coordinates", "latitude/longitude out of range")
			return
		}
	case address != "":
		resolved, err := h.geocoder.Resolve(r.Context(), address)
		if err != nil {
			if errors.Is(err, geocode.ErrNotFound) {
				writeError(w, http.StatusNotFound, "address_not_found", "no coordinates found for the given address")
				return
			}
			h.log.Error("geocoding failed", "address", address, "err", err)
			writeError(w, http.StatusBadGateway, "geocoding_failed", "the coordinates resolver is unavailable")
			return
		}
		origin = geo.Point{Lat: resolved.Lat, Lng: resolved.Lng}
		address = resolved.FormattedAddress
	default:
		writeError(w, http.StatusBadRequest, "invalid_request", "either address or coordinates is required")
		return
	}

	started := time.Now()
	result, err := h.analyzer.Analyze(r.Context(), origin)
	metrics.ObserveAnalysis(time.Since(started))
	if err != nil {
		h.log.Error("analysis failed", "err", err)
		writeError(w, http.StatusInternalServerError, "analysis_failed", "livability analysis could not be completed")
		return
	}
	result.Address = address

	writeJSON(w, http.StatusOK, toAnalyzeResponse(result))
}

// Health handles GET /healthz.
func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Version:   apiVersion,
		Timestamp: time.Now().UTC(),
		APIsAvailable: map[string]bool{
			"google_places":    h.placesOK,
			"google_geocoding": h.geocoder != nil,
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: code, Message: message})
}
