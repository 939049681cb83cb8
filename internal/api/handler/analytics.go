package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pulsedash/pulsedash-go/internal/api/apierr"
	"github.com/pulsedash/pulsedash-go/internal/api/request"
	"github.com/pulsedash/pulsedash-go/internal/api/response"
	"github.com/pulsedash/pulsedash-go/internal/model"
	"github.com/pulsedash/pulsedash-go/internal/services/analytics"
	"github.com/pulsedash/pulsedash-go/internal/sse"
)

// AnalyticsHandler handles the analytics endpoints
type AnalyticsHandler struct {
	controller *analytics.Controller
	hub        *sse.Hub
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(controller *analytics.Controller, hub *sse.Hub) *AnalyticsHandler {
	return &AnalyticsHandler{
		controller: controller,
		hub:        hub,
	}
}

// List handles GET /api/analytics
func (h *AnalyticsHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.controller.List(r.Context(), listQueryFromRequest(r))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// GetSummary handles GET /api/analytics/summary
func (h *AnalyticsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.controller.Summary(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, summary)
}

// Create handles POST /api/analytics
func (h *AnalyticsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if verr := request.ValidateCreateEntry(&req); verr != nil {
		apierr.WriteError(w, verr)
		return
	}

	entry, err := h.controller.Create(r.Context(), req.ToInput())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, entry)
}

// Events handles GET /api/analytics/events, the SSE refresh stream
func (h *AnalyticsHandler) Events(w http.ResponseWriter, r *http.Request) {
	sse.ServeSSE(w, r, h.hub)
}

// listQueryFromRequest extracts the raw query parameters. "q" is accepted as
// an alias for "search". Interpretation of the values is left entirely to the
// query pipeline's normalization step.
func listQueryFromRequest(r *http.Request) model.ListQuery {
	q := r.URL.Query()
	search := q.Get("q")
	if search == "" {
		search = q.Get("search")
	}
	return model.ListQuery{
		Search:    search,
		Status:    q.Get("status"),
		DateFrom:  q.Get("dateFrom"),
		DateTo:    q.Get("dateTo"),
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
		Page:      q.Get("page"),
		Limit:     q.Get("limit"),
	}
}
