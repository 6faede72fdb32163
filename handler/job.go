package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/jobportal/job-portal-service/common/messaging"
	"github.com/jobportal/job-portal-service/common/models"
	"github.com/jobportal/job-portal-service/common/utils"
	"github.com/jobportal/job-portal-service/jobs"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// JobHandler exposes the job CRUD and listing endpoints.
type JobHandler struct {
	svc    jobs.Service
	broker *messaging.NatsBroker
	router *chi.Mux
}

// NewJobHandler wires the job routes. The broker may be nil; events are then
// dropped silently.
func NewJobHandler(svc jobs.Service, broker *messaging.NatsBroker) *JobHandler {
	h := &JobHandler{
		svc:    svc,
		broker: broker,
	}

	r := chi.NewRouter()
	r.Get("/", h.handleIndex)
	r.Post("/", h.handleCreate)
	r.Get("/list", h.handleList)
	r.Get("/{id}", h.handleGet)
	r.Put("/{id}", h.handleUpdate)
	r.Patch("/{id}", h.handleUpdate)
	r.Delete("/{id}", h.handleDelete)

	h.router = r
	return h
}

func (h *JobHandler) Router() *chi.Mux {
	return h.router
}

// writeJobError maps domain errors onto the uniform error body.
func writeJobError(w http.ResponseWriter, err error) {
	var missingErr *jobs.MissingFieldsError
	var tooLongErr *jobs.FieldTooLongError
	var jobTypeErr *jobs.InvalidJobTypeError

	switch {
	case errors.Is(err, jobs.ErrNotFound):
		utils.WriteError(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, jobs.ErrDuplicateJob):
		utils.WriteError(w, http.StatusBadRequest, "Duplicate", "Job already exists")
	case errors.Is(err, jobs.ErrInvalidDateFormat),
		errors.As(err, &missingErr),
		errors.As(err, &tooLongErr),
		errors.As(err, &jobTypeErr):
		utils.WriteError(w, http.StatusBadRequest, "Validation error", err.Error())
	default:
		log.Error().Err(err).Msg("Job operation failed")
		utils.WriteError(w, http.StatusInternalServerError, "Server Error", "Unexpected error.")
	}
}

func jobID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (h *JobHandler) handleIndex(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Job Portal API",
		"version": "1.0",
		"endpoints": map[string]string{
			"list_jobs":  "GET /api/jobs/list",
			"create_job": "POST /api/jobs",
			"get_job":    "GET /api/jobs/{id}",
			"update_job": "PUT/PATCH /api/jobs/{id}",
			"delete_job": "DELETE /api/jobs/{id}",
		},
	})
}

func (h *JobHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Validation error", "Request body must be valid JSON")
		return
	}
	defer r.Body.Close()

	job, err := h.svc.Create(r.Context(), req)
	if err != nil {
		writeJobError(w, err)
		return
	}

	h.broker.PublishJobEvent(messaging.SubjectJobCreated, job)

	utils.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Job created successfully",
		"job":     job,
	})
}

func (h *JobHandler) handleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	params := jobs.ListParams{
		SortBy: q.Get("sort_by"),
		Order:  q.Get("order"),
	}
	if page, err := strconv.Atoi(q.Get("page")); err == nil {
		params.Page = page
	}
	if perPage, err := strconv.Atoi(q.Get("per_page")); err == nil {
		params.PerPage = perPage
	}

	result, err := h.svc.List(r.Context(), params)
	if err != nil {
		writeJobError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, result)
}

func (h *JobHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := jobID(r)
	if err != nil {
		utils.WriteError(w, http.StatusNotFound, "Not Found", "Invalid job id")
		return
	}

	job, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeJobError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, job)
}

func (h *JobHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := jobID(r)
	if err != nil {
		utils.WriteError(w, http.StatusNotFound, "Not Found", "Invalid job id")
		return
	}

	var req models.UpdateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Validation error", "Request body must be valid JSON")
		return
	}
	defer r.Body.Close()

	job, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		writeJobError(w, err)
		return
	}

	h.broker.PublishJobEvent(messaging.SubjectJobUpdated, job)

	utils.WriteJSON(w, http.StatusOK, job)
}

func (h *JobHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := jobID(r)
	if err != nil {
		utils.WriteError(w, http.StatusNotFound, "Not Found", "Invalid job id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeJobError(w, err)
		return
	}

	h.broker.PublishJobEvent(messaging.SubjectJobDeleted, models.Job{ID: id})

	utils.WriteMessage(w, http.StatusOK, fmt.Sprintf("Job ID %d deleted successfully", id))
}
