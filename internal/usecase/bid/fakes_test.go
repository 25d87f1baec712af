package usecase

import (
	"time"

	"github.com/fixway/fixway-jobs-service/internal/domain"
	trustdto "github.com/fixway/fixway-jobs-service/internal/usecase/dto/trust"
)

type fakeJobRepo struct {
	jobs map[string]*domain.Job
	// beforeTransition runs once before the next guarded transition,
	// simulating a rival writer.
	beforeTransition func(*domain.Job)
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
	if f.beforeTransition != nil {
		hook := f.beforeTransition
		f.beforeTransition = nil
		hook(job)
	}
	if job.Status != expected {
		return domain.NewConflictError("job state changed concurrently")
	}
	applyJobUpdate(job, update)
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
	return nil, nil
}

func (f *fakeJobRepo) FindNegotiationExpired(now time.Time) ([]*domain.Job, error) {
	return nil, nil
}

func (f *fakeJobRepo) FindPaymentExpired(now time.Time) ([]*domain.Job, error) {
	return nil, nil
}

func (f *fakeJobRepo) GetJobStatistics(actorID string, dateFrom, dateTo time.Time) (*domain.JobStatistics, error) {
	return &domain.JobStatistics{}, nil
}

func applyJobUpdate(job *domain.Job, update domain.JobUpdate) {
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
}

type fakeBidRepo struct {
	jobs *fakeJobRepo
	bids map[string]*domain.Bid
}

func newFakeBidRepo(jobs *fakeJobRepo, bids ...*domain.Bid) *fakeBidRepo {
	f := &fakeBidRepo{jobs: jobs, bids: make(map[string]*domain.Bid)}
	for _, b := range bids {
		f.bids[b.ID] = b
	}
	return f
}

func (f *fakeBidRepo) CreateBid(bid *domain.Bid) error {
	f.bids[bid.ID] = bid
	return nil
}

func (f *fakeBidRepo) GetBidByID(bidID string) (*domain.Bid, error) {
	bid, ok := f.bids[bidID]
	if !ok {
		return nil, domain.NewNotFoundError("bid not found")
	}
	copied := *bid
	return &copied, nil
}

func (f *fakeBidRepo) GetBidsByJobID(jobID string) ([]*domain.Bid, error) {
	var out []*domain.Bid
	for _, b := range f.bids {
		if b.JobID == jobID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBidRepo) GetActiveOriginalBid(jobID, providerID string) (*domain.Bid, error) {
	for _, b := range f.bids {
		if b.JobID == jobID && b.ProviderID == providerID &&
			!b.IsCounterOffer && !domain.IsTerminalBidStatus(b.Status) {
			copied := *b
			return &copied, nil
		}
	}
	return nil, domain.NewNotFoundError("no active bid")
}

func (f *fakeBidRepo) UpdateBidStatus(bidID string, status domain.BidStatus) error {
	bid, ok := f.bids[bidID]
	if !ok {
		return domain.NewNotFoundError("bid not found")
	}
	bid.Status = status
	return nil
}

func (f *fakeBidRepo) CreateCounterOffer(counter *domain.Bid, answeredBidID string, jobUpdate domain.JobUpdate, expected domain.JobStatus) error {
	answered, ok := f.bids[answeredBidID]
	if !ok {
		return domain.NewNotFoundError("bid not found")
	}
	if answered.Status != domain.BidPending {
		return domain.NewConflictError("bid was settled concurrently")
	}
	if err := f.jobs.TransitionJob(counter.JobID, expected, jobUpdate); err != nil {
		return err
	}
	answered.Status = domain.BidCountered
	f.bids[counter.ID] = counter
	return nil
}

func (f *fakeBidRepo) AcceptBids(acceptance *domain.BidAcceptance) error {
	accepted := make(map[string]bool, len(acceptance.AcceptBidIDs))
	for _, id := range acceptance.AcceptBidIDs {
		bid, ok := f.bids[id]
		if !ok {
			return domain.NewNotFoundError("bid not found")
		}
		if domain.IsTerminalBidStatus(bid.Status) {
			return domain.NewConflictError("bid was settled concurrently")
		}
		accepted[id] = true
	}
	if err := f.jobs.TransitionJob(acceptance.JobID, acceptance.ExpectedStatus, acceptance.JobUpdate); err != nil {
		return err
	}
	for _, id := range acceptance.AcceptBidIDs {
		f.bids[id].Status = domain.BidAccepted
	}
	for _, b := range f.bids {
		if b.JobID == acceptance.JobID && !accepted[b.ID] && !domain.IsTerminalBidStatus(b.Status) {
			b.Status = domain.BidRejected
		}
	}
	return nil
}

func (f *fakeBidRepo) CountPendingBids(jobID string) (int64, error) {
	var n int64
	for _, b := range f.bids {
		if b.JobID == jobID && (b.Status == domain.BidPending || b.Status == domain.BidCountered) {
			n++
		}
	}
	return n, nil
}

func trustAutoReject() trustdto.AutoRules {
	return trustdto.AutoRules{HoldPercentage: 0.50, AutoFreeze: true, AutoRejectBids: true}
}

type stubTrust struct {
	rules      trustdto.AutoRules
	rejections []string
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

func (s *stubTrust) RecordCompletion(actorID string, role domain.Role) error   { return nil }
func (s *stubTrust) RecordCancellation(actorID string, role domain.Role) error { return nil }

func (s *stubTrust) RecordRejection(providerID string) error {
	s.rejections = append(s.rejections, providerID)
	return nil
}

func (s *stubTrust) RecordDisputeResolved(actorID string, role domain.Role) error { return nil }
func (s *stubTrust) ApplyRepostPenalty(clientID string) error                     { return nil }
func (s *stubTrust) SubmitReview(input *trustdto.SubmitReviewInput) error         { return nil }
