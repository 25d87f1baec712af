package usecase

import (
	"time"

	"github.com/fixway/fixway-jobs-service/internal/domain"
	jobdto "github.com/fixway/fixway-jobs-service/internal/usecase/dto/job"
)

func (uc *DefaultJobUsecase) GetJobByID(jobID string, actor domain.Actor) (*jobdto.JobOutput, error) {
	job, err := uc.jobRepo.GetJobByID(jobID)
	if err != nil {
		return nil, err
	}
	return jobdto.ToJobOutput(job), nil
}

func (uc *DefaultJobUsecase) ListJobs(filter domain.JobFilter) (*jobdto.ListJobsOutput, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}

	jobs, total, err := uc.jobRepo.ListJobs(filter)
	if err != nil {
		return nil, err
	}

	out := make([]*jobdto.JobOutput, len(jobs))
	for i, job := range jobs {
		out[i] = jobdto.ToJobOutput(job)
	}
	return &jobdto.ListJobsOutput{
		Jobs:  out,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (uc *DefaultJobUsecase) GetJobStatistics(actorID string, dateFrom, dateTo time.Time) (*domain.JobStatistics, error) {
	if dateTo.IsZero() {
		dateTo = time.Now()
	}
	if dateFrom.IsZero() {
		dateFrom = dateTo.AddDate(0, -1, 0)
	}
	return uc.jobRepo.GetJobStatistics(actorID, dateFrom, dateTo)
}
