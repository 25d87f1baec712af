package usecase

import (
	"time"

	"github.com/fixway/fixway-jobs-service/internal/domain"
	trustdto "github.com/fixway/fixway-jobs-service/internal/usecase/dto/trust"
)

type fakeJobRepo struct {
	jobs map[string]*domain.Job
}

func newFakeJobRepo(jobs ...*domain.Job) *fakeJobRepo {
	f := &fakeJobRepo{jobs: make(map[string]*domain.Job)}
	for _, j := range jobs {
		f.jobs[j.ID] = j
	}
	return f
}

func (f *fakeJobRepo) CreateJob(job *domain.Job) error {
	f.jobs[job.ID] = job
	return nil
}

func (f *fakeJobRepo) GetJobByID(jobID string) (*domain.Job, error) {
	job, ok := f.jobs[jobID]
	if !ok {
		return nil, domain.NewNotFoundError("job not found")
	}
	copied := *job
	return &copied, nil
}

func (f *fakeJobRepo) TransitionJob(jobID string, expected domain.JobStatus, update domain.JobUpdate) error {
	job, ok := f.jobs[jobID]
	if !ok {
		return domain.NewNotFoundError("job not found")
	}
	if job.Status != expected {
		return domain.NewConflictError("job state changed concurrently")
	}
	if update.Status != nil {
		job.Status = *update.Status
	}
	if update.AssignedProviderID != nil {
		job.AssignedProviderID = *update.AssignedProviderID
	}
	if update.FinalPrice != nil {
		job.FinalPrice = *update.FinalPrice
	}
	if update.PriceLocked != nil {
		job.PriceLocked = *update.PriceLocked
	}
	if update.NegotiationRounds != nil {
		job.NegotiationRounds = *update.NegotiationRounds
	}
	if update.RepostCount != nil {
		job.RepostCount = *update.RepostCount
	}
	if update.RecirculationCount != nil {
		job.RecirculationCount = *update.RecirculationCount
	}
	if update.LockedBy != nil {
		job.LockedBy = *update.LockedBy
	}
	if update.LockExpiresAt != nil {
		job.LockExpiresAt = *update.LockExpiresAt
	}
	if update.NegotiationDeadline != nil {
		job.NegotiationDeadline = *update.NegotiationDeadline
	}
	if update.PaymentDeadline != nil {
		job.PaymentDeadline = *update.PaymentDeadline
	}
	if update.CancelReason != nil {
		job.CancelReason = *update.CancelReason
	}
	return nil
}

func (f *fakeJobRepo) ListJobs(filter domain.JobFilter) ([]*domain.Job, int64, error) {
	var out []*domain.Job
	for _, j := range f.jobs {
		out = append(out, j)
	}
	return out, int64(len(out)), nil
}

func (f *fakeJobRepo) FindExpiredSoftLocks(now time.Time) ([]*domain.Job, error) {
	var out []*domain.Job
	for _, j := range f.jobs {
		if j.Status == domain.StatusSoftLocked && j.LockExpiresAt != nil && !j.LockExpiresAt.After(now) {
			out = append(out, j)
		}
	}
	return out, nil
}

func (f *fakeJobRepo) FindNegotiationExpired(now time.Time) ([]*domain.Job, error) {
	var out []*domain.Job
	for _, j := range f.jobs {
		if (j.Status == domain.StatusPending || j.Status == domain.StatusNegotiationPending) &&
			!j.NegotiationDeadline.After(now) {
			out = append(out, j)
		}
	}
	return out, nil
}

func (f *fakeJobRepo) FindPaymentExpired(now time.Time) ([]*domain.Job, error) {
	var out []*domain.Job
	for _, j := range f.jobs {
		if j.Status == domain.StatusWaitingForPayment && j.PaymentDeadline != nil && !j.PaymentDeadline.After(now) {
			out = append(out, j)
		}
	}
	return out, nil
}

func (f *fakeJobRepo) GetJobStatistics(actorID string, dateFrom, dateTo time.Time) (*domain.JobStatistics, error) {
	return &domain.JobStatistics{}, nil
}

type fakeBidRepo struct{}

func (fakeBidRepo) CreateBid(bid *domain.Bid) error                  { return nil }
func (fakeBidRepo) GetBidByID(bidID string) (*domain.Bid, error)     { return nil, domain.NewNotFoundError("bid not found") }
func (fakeBidRepo) GetBidsByJobID(jobID string) ([]*domain.Bid, error) { return nil, nil }
func (fakeBidRepo) GetActiveOriginalBid(jobID, providerID string) (*domain.Bid, error) {
	return nil, domain.NewNotFoundError("no active bid")
}
func (fakeBidRepo) UpdateBidStatus(bidID string, status domain.BidStatus) error { return nil }
func (fakeBidRepo) CreateCounterOffer(counter *domain.Bid, answeredBidID string, jobUpdate domain.JobUpdate, expected domain.JobStatus) error {
	return nil
}
func (fakeBidRepo) AcceptBids(acceptance *domain.BidAcceptance) error { return nil }
func (fakeBidRepo) CountPendingBids(jobID string) (int64, error)      { return 0, nil }

type stubTrust struct {
	rules         trustdto.AutoRules
	completions   []string
	cancellations []string
	penalties     []string
}

func (s *stubTrust) GetTrustScore(actorID string, role domain.Role) (*trustdto.TrustScoreOutput, error) {
	return &trustdto.TrustScoreOutput{ActorID: actorID, Role: role}, nil
}

func (s *stubTrust) RecalculateTrustScore(actorID string, role domain.Role) (*trustdto.TrustScoreOutput, error) {
	return &trustdto.TrustScoreOutput{ActorID: actorID, Role: role}, nil
}

func (s *stubTrust) AutoRulesFor(actorID string, role domain.Role) (*trustdto.AutoRules, error) {
	rules := s.rules
	return &rules, nil
}

func (s *stubTrust) RecordCompletion(actorID string, role domain.Role) error {
	s.completions = append(s.completions, actorID)
	return nil
}

func (s *stubTrust) RecordCancellation(actorID string, role domain.Role) error {
	s.cancellations = append(s.cancellations, actorID)
	return nil
}

func (s *stubTrust) RecordRejection(providerID string) error { return nil }

func (s *stubTrust) RecordDisputeResolved(actorID string, role domain.Role) error { return nil }

func (s *stubTrust) ApplyRepostPenalty(clientID string) error {
	s.penalties = append(s.penalties, clientID)
	return nil
}

func (s *stubTrust) SubmitReview(input *trustdto.SubmitReviewInput) error { return nil }
