package usecase

import (
	"context"

	"skill-path/internal/repository"
)

type JobListUsecase interface {
	ListJobs(ctx context.Context) ([]repository.JobListing, error)
}

// JobList serves the job listings loaded once at startup. The slice is
// shared read-only; callers must not mutate it.
type JobList struct {
	jobs []repository.JobListing
}

func NewJobListUsecase(jobs []repository.JobListing) *JobList {
	return &JobList{jobs: jobs}
}

func (u *JobList) ListJobs(ctx context.Context) ([]repository.JobListing, error) {
	_ = ctx
	return u.jobs, nil
}
