package service

import (
	"context"
	"errors"
	"strings"

	"github.com/talentwire/jobconnect/internal/connector/domain"
	"github.com/talentwire/jobconnect/internal/connector/store"
	"github.com/talentwire/jobconnect/pkg/idx"
)

var ErrUnknownProvider = errors.New("provider does not exist")

// JobService owns the posting/search surface. Listings are plain field
// filters; there is no ranking here.
type JobService struct {
	Store store.Store
}

// JobInput carries caller-supplied posting fields.
type JobInput struct {
	ProviderID         string
	Title              string
	Description        string
	Location           string
	Skills             string // comma-separated
	MinExperienceYears string
	SalaryMin          string
	SalaryMax          string
}

// PostJob validates and stores a new active posting for an existing provider.
func (s *JobService) PostJob(ctx context.Context, in JobInput) (domain.Job, error) {
	if strings.TrimSpace(in.Title) == "" {
		return domain.Job{}, validationErr("title", "is required")
	}
	if strings.TrimSpace(in.ProviderID) == "" {
		return domain.Job{}, validationErr("providerId", "is required")
	}

	minExperience, err := parseCount("minExperienceYears", in.MinExperienceYears)
	if err != nil {
		return domain.Job{}, err
	}
	salaryMin, err := parseCount("salaryMin", in.SalaryMin)
	if err != nil {
		return domain.Job{}, err
	}
	salaryMax, err := parseCount("salaryMax", in.SalaryMax)
	if err != nil {
		return domain.Job{}, err
	}

	if _, err := s.Store.Providers().GetProviderByID(ctx, in.ProviderID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Job{}, ErrUnknownProvider
		}
		return domain.Job{}, err
	}

	job := domain.Job{
		ID:                 idx.New().String(),
		ProviderID:         in.ProviderID,
		Title:              strings.TrimSpace(in.Title),
		Description:        strings.TrimSpace(in.Description),
		Location:           strings.TrimSpace(in.Location),
		Skills:             SplitCommaList(in.Skills),
		MinExperienceYears: minExperience,
		SalaryMin:          salaryMin,
		SalaryMax:          salaryMax,
		Active:             true,
	}

	if err := s.Store.Jobs().CreateJob(ctx, job); err != nil {
		return domain.Job{}, err
	}
	return s.Store.Jobs().GetJobByID(ctx, job.ID)
}

// GetJob fetches one posting by id.
func (s *JobService) GetJob(ctx context.Context, id string) (domain.Job, error) {
	return s.Store.Jobs().GetJobByID(ctx, id)
}

// ListJobs returns active postings matching the filter.
func (s *JobService) ListJobs(ctx context.Context, f domain.JobFilter) ([]domain.Job, error) {
	return s.Store.Jobs().ListJobs(ctx, f)
}

// RemoveJob deletes a posting.
func (s *JobService) RemoveJob(ctx context.Context, id string) error {
	return s.Store.Jobs().DeleteJob(ctx, id)
}
