package handlers

import (
	"net/http"
	"time"

	"github.com/diegoclair/shift-timeslots/internal/domain"
	"github.com/diegoclair/shift-timeslots/internal/domain/contract"
	"github.com/diegoclair/shift-timeslots/internal/domain/entity"
	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// APIHandler exposes the timeslot engine as JSON over HTTP. Writes are
// recorded as made by adminUserID, same as the Slack commands.
type APIHandler struct {
	timeslotService contract.TimeslotService
	adminUserID     int64
	log             *zap.Logger
}

func NewAPI(timeslotService contract.TimeslotService, adminUserID int64, log *zap.Logger) *APIHandler {
	return &APIHandler{
		timeslotService: timeslotService,
		adminUserID:     adminUserID,
		log:             log,
	}
}

type slotsRequest struct {
	Slots []entity.SlotInput `json:"slots"`
}

type templateRequest struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Slots       []entity.SlotInput `json:"slots"`
	IsDefault   bool               `json:"is_default"`
}

type conflictResponse struct {
	Error    string                 `json:"error"`
	Conflict *entity.ConflictReport `json:"conflicts"`
}

func (h *APIHandler) Routes(r chi.Router) {
	r.Get("/weeks/{date}", h.getWeek)
	r.Post("/weeks/{date}", h.createConfiguration)
	r.Get("/weeks/{date}/conflicts", h.getConflicts)
	r.Post("/weeks/{date}/apply/{templateID}", h.applyTemplate)
	r.Post("/weeks/{date}/copy/{sourceDate}", h.copyWeek)
	r.Put("/weeks/{date}", h.updateConfiguration)

	r.Get("/templates", h.listTemplates)
	r.Post("/templates", h.createTemplate)
	r.Get("/templates/default", h.getDefaultTemplate)
	r.Get("/templates/{id}", h.getTemplate)
	r.Put("/templates/{id}/default", h.setDefaultTemplate)
	r.Delete("/templates/{id}", h.deleteTemplate)
}

func (h *APIHandler) getWeek(w http.ResponseWriter, r *http.Request) {
	weekStart, err := domain.ParseWeek(chi.URLParam(r, "date"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	week, err := h.timeslotService.GetTimeslotsForWeek(r.Context(), weekStart)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, week)
}

func (h *APIHandler) createConfiguration(w http.ResponseWriter, r *http.Request) {
	weekStart, err := domain.ParseWeek(chi.URLParam(r, "date"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req slotsRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	if !h.passConflictGate(w, r, weekStart) {
		return
	}

	week, err := h.timeslotService.CreateTimeslotConfiguration(r.Context(), weekStart, req.Slots, h.adminUserID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, week)
}

// updateConfiguration replaces every slot of the configuration stored for the week.
func (h *APIHandler) updateConfiguration(w http.ResponseWriter, r *http.Request) {
	weekStart, err := domain.ParseWeek(chi.URLParam(r, "date"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req slotsRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	if !h.passConflictGate(w, r, weekStart) {
		return
	}

	current, err := h.timeslotService.GetTimeslotsForWeek(r.Context(), weekStart)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if current.Config == nil {
		h.writeError(w, r, domain.NewNotFoundError("week of %s has no configuration", domain.FormatDate(weekStart)))
		return
	}

	week, err := h.timeslotService.UpdateTimeslotConfiguration(r.Context(), current.Config.ID, req.Slots)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, week)
}

func (h *APIHandler) getConflicts(w http.ResponseWriter, r *http.Request) {
	weekStart, err := domain.ParseWeek(chi.URLParam(r, "date"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	report, err := h.timeslotService.CheckForConflicts(r.Context(), weekStart)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, report)
}

func (h *APIHandler) applyTemplate(w http.ResponseWriter, r *http.Request) {
	weekStart, err := domain.ParseWeek(chi.URLParam(r, "date"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	templateID, err := parseID(chi.URLParam(r, "templateID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if !h.passConflictGate(w, r, weekStart) {
		return
	}

	week, err := h.timeslotService.ApplyTemplate(r.Context(), weekStart, templateID, h.adminUserID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, week)
}

func (h *APIHandler) copyWeek(w http.ResponseWriter, r *http.Request) {
	target, err := domain.ParseWeek(chi.URLParam(r, "date"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	source, err := domain.ParseWeek(chi.URLParam(r, "sourceDate"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if !h.passConflictGate(w, r, target) {
		return
	}

	week, err := h.timeslotService.CopyFromPreviousWeek(r.Context(), target, source, h.adminUserID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, week)
}

// passConflictGate writes a 409 with the report when the week has recorded
// activity and the request has no force=true query parameter.
func (h *APIHandler) passConflictGate(w http.ResponseWriter, r *http.Request, weekStart time.Time) bool {
	if r.URL.Query().Get("force") == "true" {
		return true
	}

	report, err := h.timeslotService.CheckForConflicts(r.Context(), weekStart)
	if err != nil {
		h.writeError(w, r, err)
		return false
	}
	if !report.HasConflicts {
		return true
	}

	h.writeJSON(w, http.StatusConflict, conflictResponse{
		Error:    "week has recorded availability or assignments, retry with force=true to overwrite",
		Conflict: report,
	})
	return false
}

func (h *APIHandler) listTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.timeslotService.GetAllTemplates(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if templates == nil {
		templates = []*entity.Template{}
	}

	h.writeJSON(w, http.StatusOK, templates)
}

func (h *APIHandler) createTemplate(w http.ResponseWriter, r *http.Request) {
	var req templateRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	template, err := h.timeslotService.CreateTemplate(r.Context(), entity.NewTemplate{
		Name:        req.Name,
		Description: req.Description,
		Slots:       req.Slots,
		CreatedBy:   h.adminUserID,
		IsDefault:   req.IsDefault,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, template)
}

func (h *APIHandler) getDefaultTemplate(w http.ResponseWriter, r *http.Request) {
	template, err := h.timeslotService.GetDefaultTemplate(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if template == nil {
		h.writeError(w, r, domain.NewNotFoundError("no default template"))
		return
	}

	h.writeJSON(w, http.StatusOK, template)
}

func (h *APIHandler) getTemplate(w http.ResponseWriter, r *http.Request) {
	templateID, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	template, err := h.timeslotService.GetTemplateWithSlots(r.Context(), templateID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, template)
}

func (h *APIHandler) setDefaultTemplate(w http.ResponseWriter, r *http.Request) {
	templateID, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.timeslotService.SetDefaultTemplate(r.Context(), templateID); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *APIHandler) deleteTemplate(w http.ResponseWriter, r *http.Request) {
	templateID, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.timeslotService.DeleteTemplate(r.Context(), templateID); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.NewValidationError("invalid request body: %s", err.Error())
	}
	return nil
}

func (h *APIHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		loggerFrom(r.Context(), h.log).Error("api request failed", zap.Error(err))
	}
	h.writeJSON(w, status, map[string]string{"error": publicMessage(err, status)})
}

func (h *APIHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error("failed to encode response", zap.Error(err))
	}
}
