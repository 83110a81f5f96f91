package incidence

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/colvahr/backoffice/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	Report(dto ReportIncidenceDTO) (*Incidence, error)
	Resolve(id int64) (*Incidence, error)
	ListOpen(filter ListOpenFilter) ([]*OpenListing, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(base *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{BaseHandler: base, Service: service}
}

func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	var dto ReportIncidenceDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	inc, err := h.Service.Report(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, inc)
}

func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid incidence ID")
		return
	}

	inc, err := h.Service.Resolve(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, inc)
}

func (h *Handler) ListOpen(w http.ResponseWriter, r *http.Request) {
	var filter ListOpenFilter

	if jobIDStr := r.URL.Query().Get("job_id"); jobIDStr != "" {
		jobID, err := strconv.ParseInt(jobIDStr, 10, 64)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "invalid job_id")
			return
		}
		filter.JobID = jobID
	}
	filter.Department = r.URL.Query().Get("department")

	listings, err := h.Service.ListOpen(filter)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"incidences": listings,
		"count":      len(listings),
	})
}
