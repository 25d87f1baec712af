package usecase

import (
	"context"
	"errors"
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
	if update.PaymentDeadline != nil {
		job.PaymentDeadline = *update.PaymentDeadline
	}
	return nil
}

func (f *fakeJobRepo) ListJobs(filter domain.JobFilter) ([]*domain.Job, int64, error) {
	return nil, 0, nil
}

func (f *fakeJobRepo) FindExpiredSoftLocks(now time.Time) ([]*domain.Job, error) { return nil, nil }

func (f *fakeJobRepo) FindNegotiationExpired(now time.Time) ([]*domain.Job, error) { return nil, nil }

func (f *fakeJobRepo) FindPaymentExpired(now time.Time) ([]*domain.Job, error) { return nil, nil }

func (f *fakeJobRepo) GetJobStatistics(actorID string, dateFrom, dateTo time.Time) (*domain.JobStatistics, error) {
	return &domain.JobStatistics{}, nil
}

type fakePaymentRepo struct {
	jobs     *fakeJobRepo
	payments map[string]*domain.Payment // keyed by job id
	entries  []*domain.LedgerEntry
	holds    map[string]*domain.WarrantyHold
}

func newFakePaymentRepo(jobs *fakeJobRepo) *fakePaymentRepo {
	return &fakePaymentRepo{
		jobs:     jobs,
		payments: make(map[string]*domain.Payment),
		holds:    make(map[string]*domain.WarrantyHold),
	}
}

func (f *fakePaymentRepo) CreatePaymentSplit(payment *domain.Payment, entries []*domain.LedgerEntry, hold *domain.WarrantyHold, expected domain.JobStatus, jobUpdate domain.JobUpdate) error {
	if _, ok := f.payments[payment.JobID]; ok {
		return domain.NewConflictError("payment already exists for this job")
	}
	if err := f.jobs.TransitionJob(payment.JobID, expected, jobUpdate); err != nil {
		return err
	}
	f.payments[payment.JobID] = payment
	f.entries = append(f.entries, entries...)
	f.holds[hold.ID] = hold
	return nil
}

func (f *fakePaymentRepo) GetPaymentByJobID(jobID string) (*domain.Payment, error) {
	payment, ok := f.payments[jobID]
	if !ok {
		return nil, domain.NewNotFoundError("payment not found")
	}
	copied := *payment
	return &copied, nil
}

func (f *fakePaymentRepo) GetLedgerEntries(jobID string) ([]*domain.LedgerEntry, error) {
	var out []*domain.LedgerEntry
	for _, e := range f.entries {
		if e.JobID == jobID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) GetAccountBalances(jobID string) ([]*domain.AccountBalance, error) {
	byAccount := make(map[domain.AccountType]*domain.AccountBalance)
	for _, e := range f.entries {
		if e.JobID != jobID {
			continue
		}
		balance, ok := byAccount[e.Account]
		if !ok {
			balance = &domain.AccountBalance{Account: e.Account}
			byAccount[e.Account] = balance
		}
		if e.EntryType == domain.EntryCredit {
			balance.Credits += e.Amount
		} else {
			balance.Debits += e.Amount
		}
	}
	var out []*domain.AccountBalance
	for _, b := range byAccount {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakePaymentRepo) GetHoldByID(holdID string) (*domain.WarrantyHold, error) {
	hold, ok := f.holds[holdID]
	if !ok {
		return nil, domain.NewNotFoundError("warranty hold not found")
	}
	copied := *hold
	return &copied, nil
}

func (f *fakePaymentRepo) GetHoldByJobID(jobID string) (*domain.WarrantyHold, error) {
	for _, h := range f.holds {
		if h.JobID == jobID {
			copied := *h
			return &copied, nil
		}
	}
	return nil, domain.NewNotFoundError("warranty hold not found")
}

func applyHoldUpdate(hold *domain.WarrantyHold, update domain.HoldUpdate) {
	if update.Status != nil {
		hold.Status = *update.Status
	}
	if update.IsFrozen != nil {
		hold.IsFrozen = *update.IsFrozen
	}
	if update.FrozenAt != nil {
		hold.FrozenAt = *update.FrozenAt
	}
	if update.FreezeReason != nil {
		hold.FreezeReason = *update.FreezeReason
	}
	if update.EffectiveEndDate != nil {
		hold.EffectiveEndDate = *update.EffectiveEndDate
	}
	if update.ReleasedAt != nil {
		hold.ReleasedAt = *update.ReleasedAt
	}
	if update.ReleaseReason != nil {
		hold.ReleaseReason = *update.ReleaseReason
	}
}

func (f *fakePaymentRepo) UpdateHold(holdID string, guard domain.HoldStatus, update domain.HoldUpdate) error {
	hold, ok := f.holds[holdID]
	if !ok {
		return domain.NewNotFoundError("warranty hold not found")
	}
	if hold.Status != guard {
		return domain.NewConflictError("warranty hold changed concurrently")
	}
	applyHoldUpdate(hold, update)
	return nil
}

func (f *fakePaymentRepo) ReleaseHold(holdID string, guard domain.HoldStatus, update domain.HoldUpdate, entries []*domain.LedgerEntry, paymentStatus domain.PaymentStatus) error {
	if err := f.UpdateHold(holdID, guard, update); err != nil {
		return err
	}
	f.entries = append(f.entries, entries...)
	if payment, ok := f.payments[f.holds[holdID].JobID]; ok {
		payment.Status = paymentStatus
	}
	return nil
}

func (f *fakePaymentRepo) FindReleasableHolds(now time.Time) ([]*domain.WarrantyHold, error) {
	var out []*domain.WarrantyHold
	for _, h := range f.holds {
		if h.Status == domain.HoldLocked && !h.EffectiveEndDate.After(now) {
			out = append(out, h)
		}
	}
	return out, nil
}

type fakeDisputeRepo struct {
	disputes map[string]*domain.Dispute
}

func newFakeDisputeRepo(disputes ...*domain.Dispute) *fakeDisputeRepo {
	f := &fakeDisputeRepo{disputes: make(map[string]*domain.Dispute)}
	for _, d := range disputes {
		f.disputes[d.ID] = d
	}
	return f
}

func (f *fakeDisputeRepo) CreateDispute(dispute *domain.Dispute, holdID string, guard domain.HoldStatus, hold domain.HoldUpdate) error {
	f.disputes[dispute.ID] = dispute
	return nil
}

func (f *fakeDisputeRepo) GetDisputeByID(disputeID string) (*domain.Dispute, error) {
	d, ok := f.disputes[disputeID]
	if !ok {
		return nil, domain.NewNotFoundError("dispute not found")
	}
	copied := *d
	return &copied, nil
}

func (f *fakeDisputeRepo) GetOpenDisputeByJobID(jobID string) (*domain.Dispute, error) {
	for _, d := range f.disputes {
		if d.JobID == jobID && d.Status != domain.DisputeResolved {
			copied := *d
			return &copied, nil
		}
	}
	return nil, domain.NewNotFoundError("no open dispute")
}

func (f *fakeDisputeRepo) UpdateDisputeStatus(disputeID string, status domain.DisputeStatus) error {
	d, ok := f.disputes[disputeID]
	if !ok {
		return domain.NewNotFoundError("dispute not found")
	}
	d.Status = status
	return nil
}

func (f *fakeDisputeRepo) ResolveDispute(disputeID string, update domain.DisputeUpdate, holdID string, guard domain.HoldStatus, hold domain.HoldUpdate, entries []*domain.LedgerEntry) error {
	return nil
}

func (f *fakeDisputeRepo) ListDisputes(filter domain.DisputeFilter) ([]*domain.Dispute, int64, error) {
	return nil, 0, nil
}

func (f *fakeDisputeRepo) FindReviewExpired(now time.Time) ([]*domain.Dispute, error) {
	return nil, nil
}

type stubTrust struct {
	rules trustdto.AutoRules
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

func (s *stubTrust) RecordCompletion(actorID string, role domain.Role) error      { return nil }
func (s *stubTrust) RecordCancellation(actorID string, role domain.Role) error    { return nil }
func (s *stubTrust) RecordRejection(providerID string) error                      { return nil }
func (s *stubTrust) RecordDisputeResolved(actorID string, role domain.Role) error { return nil }
func (s *stubTrust) ApplyRepostPenalty(clientID string) error                     { return nil }
func (s *stubTrust) SubmitReview(input *trustdto.SubmitReviewInput) error         { return nil }

type stubCommission struct {
	rate float64
	fail bool
}

func (s *stubCommission) Lookup(ctx context.Context, jobID, categoryID, region, clientID string) (*domain.CommissionRule, error) {
	if s.fail {
		return nil, errors.New("rule service unavailable")
	}
	return &domain.CommissionRule{Rate: s.rate}, nil
}
