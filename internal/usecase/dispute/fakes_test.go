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

func (f *fakeJobRepo) CreateJob(job *domain.Job) error { return nil }

func (f *fakeJobRepo) GetJobByID(jobID string) (*domain.Job, error) {
	job, ok := f.jobs[jobID]
	if !ok {
		return nil, domain.NewNotFoundError("job not found")
	}
	copied := *job
	return &copied, nil
}

func (f *fakeJobRepo) TransitionJob(jobID string, expected domain.JobStatus, update domain.JobUpdate) error {
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
	payments map[string]*domain.Payment // keyed by job id
	holds    map[string]*domain.WarrantyHold
	entries  []*domain.LedgerEntry
}

func newFakePaymentRepo(holds ...*domain.WarrantyHold) *fakePaymentRepo {
	f := &fakePaymentRepo{
		payments: make(map[string]*domain.Payment),
		holds:    make(map[string]*domain.WarrantyHold),
	}
	for _, h := range holds {
		f.holds[h.ID] = h
		f.payments[h.JobID] = &domain.Payment{
			ID: "payment-" + h.JobID, JobID: h.JobID, Status: domain.PaymentEscrowHold,
		}
	}
	return f
}

func (f *fakePaymentRepo) CreatePaymentSplit(payment *domain.Payment, entries []*domain.LedgerEntry, hold *domain.WarrantyHold, expected domain.JobStatus, jobUpdate domain.JobUpdate) error {
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
	return nil, nil
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

func (f *fakePaymentRepo) applyHoldUpdate(holdID string, guard domain.HoldStatus, update domain.HoldUpdate) error {
	hold, ok := f.holds[holdID]
	if !ok {
		return domain.NewNotFoundError("warranty hold not found")
	}
	if hold.Status != guard {
		return domain.NewConflictError("warranty hold changed concurrently")
	}
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
	return nil
}

func (f *fakePaymentRepo) UpdateHold(holdID string, guard domain.HoldStatus, update domain.HoldUpdate) error {
	return f.applyHoldUpdate(holdID, guard, update)
}

func (f *fakePaymentRepo) ReleaseHold(holdID string, guard domain.HoldStatus, update domain.HoldUpdate, entries []*domain.LedgerEntry, paymentStatus domain.PaymentStatus) error {
	if err := f.applyHoldUpdate(holdID, guard, update); err != nil {
		return err
	}
	f.entries = append(f.entries, entries...)
	if payment, ok := f.payments[f.holds[holdID].JobID]; ok {
		payment.Status = paymentStatus
	}
	return nil
}

func (f *fakePaymentRepo) FindReleasableHolds(now time.Time) ([]*domain.WarrantyHold, error) {
	return nil, nil
}

type fakeDisputeRepo struct {
	payments *fakePaymentRepo
	disputes map[string]*domain.Dispute
}

func newFakeDisputeRepo(payments *fakePaymentRepo) *fakeDisputeRepo {
	return &fakeDisputeRepo{payments: payments, disputes: make(map[string]*domain.Dispute)}
}

func (f *fakeDisputeRepo) CreateDispute(dispute *domain.Dispute, holdID string, guard domain.HoldStatus, hold domain.HoldUpdate) error {
	for _, d := range f.disputes {
		if d.JobID == dispute.JobID && d.Status != domain.DisputeResolved {
			return domain.NewConflictError("an open dispute already exists for this job")
		}
	}
	if err := f.payments.applyHoldUpdate(holdID, guard, hold); err != nil {
		return err
	}
	copied := *dispute
	f.disputes[dispute.ID] = &copied
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
	d, ok := f.disputes[disputeID]
	if !ok {
		return domain.NewNotFoundError("dispute not found")
	}
	if d.Status == domain.DisputeResolved {
		return domain.NewConflictError("dispute was resolved concurrently")
	}
	if err := f.payments.applyHoldUpdate(holdID, guard, hold); err != nil {
		return err
	}
	if update.Status != nil {
		d.Status = *update.Status
	}
	if update.Outcome != nil {
		d.Outcome = *update.Outcome
	}
	if update.Resolution != nil {
		d.Resolution = *update.Resolution
	}
	if update.ResolvedAt != nil {
		d.ResolvedAt = *update.ResolvedAt
	}
	if len(entries) > 0 {
		f.payments.entries = append(f.payments.entries, entries...)
		if payment, ok := f.payments.payments[d.JobID]; ok {
			payment.Status = domain.PaymentReleased
		}
	}
	return nil
}

func (f *fakeDisputeRepo) ListDisputes(filter domain.DisputeFilter) ([]*domain.Dispute, int64, error) {
	var out []*domain.Dispute
	for _, d := range f.disputes {
		out = append(out, d)
	}
	return out, int64(len(out)), nil
}

func (f *fakeDisputeRepo) FindReviewExpired(now time.Time) ([]*domain.Dispute, error) {
	var out []*domain.Dispute
	for _, d := range f.disputes {
		if d.Status != domain.DisputeResolved && !d.ReviewBy.After(now) {
			out = append(out, d)
		}
	}
	return out, nil
}

type stubTrust struct {
	disputeLosses    []string
	disputeRecordErr error
}

func (s *stubTrust) GetTrustScore(actorID string, role domain.Role) (*trustdto.TrustScoreOutput, error) {
	return &trustdto.TrustScoreOutput{ActorID: actorID, Role: role}, nil
}

func (s *stubTrust) RecalculateTrustScore(actorID string, role domain.Role) (*trustdto.TrustScoreOutput, error) {
	return &trustdto.TrustScoreOutput{ActorID: actorID, Role: role}, nil
}

func (s *stubTrust) AutoRulesFor(actorID string, role domain.Role) (*trustdto.AutoRules, error) {
	return &trustdto.AutoRules{}, nil
}

func (s *stubTrust) RecordCompletion(actorID string, role domain.Role) error   { return nil }
func (s *stubTrust) RecordCancellation(actorID string, role domain.Role) error { return nil }
func (s *stubTrust) RecordRejection(providerID string) error                   { return nil }

func (s *stubTrust) RecordDisputeResolved(actorID string, role domain.Role) error {
	if s.disputeRecordErr != nil {
		return s.disputeRecordErr
	}
	s.disputeLosses = append(s.disputeLosses, actorID)
	return nil
}

func (s *stubTrust) ApplyRepostPenalty(clientID string) error             { return nil }
func (s *stubTrust) SubmitReview(input *trustdto.SubmitReviewInput) error { return nil }
