package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/talentwire/jobconnect/internal/connector/domain"
	"github.com/talentwire/jobconnect/internal/connector/service"
	"github.com/talentwire/jobconnect/internal/connector/store"
	"github.com/talentwire/jobconnect/pkg/connectsdk"
	"github.com/talentwire/jobconnect/pkg/httpx"
	"github.com/talentwire/jobconnect/pkg/slogx"
)

type JobsHandler struct {
	JobService *service.JobService
}

// HandlePost godoc
//
//	@Summary		Post Job Endpoint
//	@Description	Publish a job listing on behalf of an existing provider
//	@Tags			Jobs
//	@Accept			json
//	@Produce		json
//	@Param			request	body		connectsdk.PostJobRequest	true	"job fields, numeric values as strings"
//	@Success		201		{object}	connectsdk.PostJobResponse	"message, job"
//	@Failure		400		{object}	connectsdk.MessageResponse	"message"
//	@Failure		500		{object}	connectsdk.MessageResponse	"message"
//	@Router			/v1/jobs [post].
func (h *JobsHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req connectsdk.PostJobRequest
	if !decodeBody(w, r, &req) {
		return
	}

	job, err := h.JobService.PostJob(ctx, service.JobInput{
		ProviderID:         req.ProviderID,
		Title:              req.Title,
		Description:        req.Description,
		Location:           req.Location,
		Skills:             req.Skills,
		MinExperienceYears: req.MinExperienceYears,
		SalaryMin:          req.SalaryMin,
		SalaryMax:          req.SalaryMax,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownProvider):
			httpx.WriteMessage(w, http.StatusBadRequest, "Provider does not exist")
		case errors.Is(err, service.ErrValidation):
			httpx.WriteMessage(w, http.StatusBadRequest, err.Error())
		default:
			log.Error("job post failed", "error", err)
			httpx.WriteMessage(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, connectsdk.PostJobResponse{
		Message: "Job posted successfully",
		Job:     jobJSON(job),
	})
}

// HandleGet godoc
//
//	@Summary		Get Job Endpoint
//	@Description	Fetch a single job listing by ID
//	@Tags			Jobs
//	@Produce		json
//	@Param			id	path		string						true	"job ID"
//	@Success		200	{object}	connectsdk.Job				"job"
//	@Failure		404	{object}	connectsdk.MessageResponse	"message"
//	@Failure		500	{object}	connectsdk.MessageResponse	"message"
//	@Router			/v1/jobs/{id} [get].
func (h *JobsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	job, err := h.JobService.GetJob(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteMessage(w, http.StatusNotFound, "Job not found")
			return
		}
		log.Error("job lookup failed", "error", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, jobJSON(job))
}

// HandleList godoc
//
//	@Summary		List Jobs Endpoint
//	@Description	List active job listings, optionally filtered by location, skill and maximum required experience
//	@Tags			Jobs
//	@Produce		json
//	@Param			location	query		string						false	"exact location match"
//	@Param			skill		query		string						false	"single skill the job must require"
//	@Param			experience	query		string						false	"candidate experience in years; jobs requiring more are excluded"
//	@Success		200			{object}	connectsdk.ListJobsResponse	"jobs"
//	@Failure		400			{object}	connectsdk.MessageResponse	"message"
//	@Failure		500			{object}	connectsdk.MessageResponse	"message"
//	@Router			/v1/jobs [get].
func (h *JobsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	filter := domain.JobFilter{
		Location: strings.TrimSpace(r.URL.Query().Get("location")),
		Skill:    strings.TrimSpace(r.URL.Query().Get("skill")),
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("experience")); raw != "" {
		years, err := strconv.Atoi(raw)
		if err != nil || years < 0 {
			httpx.WriteMessage(w, http.StatusBadRequest, "experience must be a non-negative integer")
			return
		}
		filter.MaxExperience = years
	}

	jobs, err := h.JobService.ListJobs(ctx, filter)
	if err != nil {
		log.Error("job list failed", "error", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	out := make([]connectsdk.Job, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, jobJSON(j))
	}
	httpx.WriteJSON(w, http.StatusOK, connectsdk.ListJobsResponse{Jobs: out})
}

// HandleDelete godoc
//
//	@Summary		Remove Job Endpoint
//	@Description	Delete a job listing by ID
//	@Tags			Jobs
//	@Produce		json
//	@Param			id	path	string	true	"job ID"
//	@Success		204	"no content"
//	@Failure		404	{object}	connectsdk.MessageResponse	"message"
//	@Failure		500	{object}	connectsdk.MessageResponse	"message"
//	@Router			/v1/jobs/{id} [delete].
func (h *JobsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := h.JobService.RemoveJob(ctx, r.PathValue("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteMessage(w, http.StatusNotFound, "Job not found")
			return
		}
		log.Error("job delete failed", "error", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
