package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fixway/fixway-jobs-service/internal/domain"
	disputedto "github.com/fixway/fixway-jobs-service/internal/usecase/dto/dispute"
)

type disputeFixture struct {
	jobs     *fakeJobRepo
	payments *fakePaymentRepo
	disputes *fakeDisputeRepo
	trust    *stubTrust
	uc       *DefaultDisputeUsecase
}

func newDisputeFixture(holds ...*domain.WarrantyHold) *disputeFixture {
	f := &disputeFixture{
		jobs: newFakeJobRepo(&domain.Job{
			ID: "job-1", ClientID: "client-1", AssignedProviderID: "provider-1",
			Status: domain.StatusCompleted,
		}),
		payments: newFakePaymentRepo(holds...),
		trust:    &stubTrust{},
	}
	f.disputes = newFakeDisputeRepo(f.payments)
	f.uc = NewDefaultDisputeUsecase(f.disputes, f.payments, f.jobs, f.trust, nil, nil, nil, 72*time.Hour)
	return f
}

func lockedHold() *domain.WarrantyHold {
	end := time.Now().AddDate(0, 0, 20)
	return &domain.WarrantyHold{
		ID: "hold-1", JobID: "job-1", ProviderID: "provider-1", HoldAmount: 1900,
		Status: domain.HoldLocked, EndDate: end, EffectiveEndDate: end,
	}
}

func TestRaiseDisputeFreezesHold(t *testing.T) {
	f := newDisputeFixture(lockedHold())

	out, err := f.uc.RaiseDispute(&disputedto.RaiseDisputeInput{
		JobID:  "job-1",
		Actor:  domain.Actor{ID: "client-1", Role: domain.RoleClient},
		Type:   domain.DisputeQuality,
		Reason: "the repair failed within a week",
	})
	if err != nil {
		t.Fatalf("RaiseDispute: %v", err)
	}
	if out.Status != domain.DisputeOpen {
		t.Errorf("dispute status = %v, want OPEN", out.Status)
	}
	if out.ReviewBy.Before(time.Now().Add(71 * time.Hour)) {
		t.Errorf("review deadline %v is sooner than the configured TTL", out.ReviewBy)
	}

	hold := f.payments.holds["hold-1"]
	if hold.Status != domain.HoldFrozen || !hold.IsFrozen || hold.FrozenAt == nil {
		t.Errorf("hold = %+v, want FROZEN with timestamp", hold)
	}
	if !strings.HasPrefix(hold.FreezeReason, "dispute ") {
		t.Errorf("freeze reason = %q, want the dispute id", hold.FreezeReason)
	}
}

func TestRaiseDisputeGuards(t *testing.T) {
	f := newDisputeFixture(lockedHold())
	client := domain.Actor{ID: "client-1", Role: domain.RoleClient}

	_, err := f.uc.RaiseDispute(&disputedto.RaiseDisputeInput{
		JobID: "job-1", Actor: domain.Actor{ID: "stranger", Role: domain.RoleClient},
		Type: domain.DisputeQuality, Reason: "x",
	})
	if !domain.IsKind(err, domain.KindAuthorization) {
		t.Errorf("stranger: got %v, want authorization error", err)
	}

	_, err = f.uc.RaiseDispute(&disputedto.RaiseDisputeInput{
		JobID: "job-1", Actor: client, Type: domain.DisputeQuality,
	})
	if !domain.IsKind(err, domain.KindValidation) {
		t.Errorf("empty reason: got %v, want validation error", err)
	}

	if _, err := f.uc.RaiseDispute(&disputedto.RaiseDisputeInput{
		JobID: "job-1", Actor: client, Type: domain.DisputeQuality, Reason: "first",
	}); err != nil {
		t.Fatalf("first dispute: %v", err)
	}
	_, err = f.uc.RaiseDispute(&disputedto.RaiseDisputeInput{
		JobID: "job-1", Actor: client, Type: domain.DisputeDamage, Reason: "second",
	})
	if !domain.IsKind(err, domain.KindConflict) {
		t.Errorf("second open dispute: got %v, want conflict", err)
	}
}

func TestRaiseDisputeOnReleasedHold(t *testing.T) {
	hold := lockedHold()
	hold.Status = domain.HoldReleased
	f := newDisputeFixture(hold)

	_, err := f.uc.RaiseDispute(&disputedto.RaiseDisputeInput{
		JobID: "job-1", Actor: domain.Actor{ID: "client-1", Role: domain.RoleClient},
		Type: domain.DisputeWarranty, Reason: "too late",
	})
	if !domain.IsKind(err, domain.KindConflict) {
		t.Errorf("released hold: got %v, want conflict", err)
	}
}

func TestRaiseDisputeKeepsExistingFreeze(t *testing.T) {
	hold := lockedHold()
	frozenAt := time.Now().Add(-time.Hour)
	hold.Status = domain.HoldFrozen
	hold.IsFrozen = true
	hold.FrozenAt = &frozenAt
	hold.FreezeReason = "suspicious activity"
	f := newDisputeFixture(hold)

	_, err := f.uc.RaiseDispute(&disputedto.RaiseDisputeInput{
		JobID: "job-1", Actor: domain.Actor{ID: "provider-1", Role: domain.RoleProvider},
		Type: domain.DisputeWarranty, Reason: "contesting the freeze",
	})
	if err != nil {
		t.Fatalf("RaiseDispute: %v", err)
	}

	got := f.payments.holds["hold-1"]
	if got.FreezeReason != "suspicious activity" || !got.FrozenAt.Equal(frozenAt) {
		t.Errorf("existing freeze must be preserved, got reason %q at %v", got.FreezeReason, got.FrozenAt)
	}
}

func TestReviewDispute(t *testing.T) {
	f := newDisputeFixture(lockedHold())
	raised, err := f.uc.RaiseDispute(&disputedto.RaiseDisputeInput{
		JobID: "job-1", Actor: domain.Actor{ID: "client-1", Role: domain.RoleClient},
		Type: domain.DisputeQuality, Reason: "bad work",
	})
	if err != nil {
		t.Fatalf("RaiseDispute: %v", err)
	}

	out, err := f.uc.ReviewDispute(&disputedto.ReviewDisputeInput{DisputeID: raised.ID, OperatorID: "op-1"})
	if err != nil {
		t.Fatalf("ReviewDispute: %v", err)
	}
	if out.Status != domain.DisputeUnderReview {
		t.Errorf("status = %v, want UNDER_REVIEW", out.Status)
	}

	_, err = f.uc.ReviewDispute(&disputedto.ReviewDisputeInput{DisputeID: raised.ID, OperatorID: "op-2"})
	if !domain.IsKind(err, domain.KindConflict) {
		t.Errorf("double review: got %v, want conflict", err)
	}
}

func TestResolveDisputeProviderFavored(t *testing.T) {
	f := newDisputeFixture(lockedHold())
	raised, err := f.uc.RaiseDispute(&disputedto.RaiseDisputeInput{
		JobID: "job-1", Actor: domain.Actor{ID: "client-1", Role: domain.RoleClient},
		Type: domain.DisputeQuality, Reason: "bad work",
	})
	if err != nil {
		t.Fatalf("RaiseDispute: %v", err)
	}

	endBefore := f.payments.holds["hold-1"].EffectiveEndDate
	frozenAt := time.Now().Add(-48 * time.Hour)
	f.payments.holds["hold-1"].FrozenAt = &frozenAt

	out, err := f.uc.ResolveDispute(&disputedto.ResolveDisputeInput{
		DisputeID: raised.ID, OperatorID: "op-1",
		Outcome: domain.OutcomeProviderFavored, Resolution: "work meets the contract",
	})
	if err != nil {
		t.Fatalf("ResolveDispute: %v", err)
	}
	if out.Status != domain.DisputeResolved || out.Outcome != domain.OutcomeProviderFavored {
		t.Errorf("dispute = %+v, want RESOLVED PROVIDER_FAVORED", out)
	}

	hold := f.payments.holds["hold-1"]
	if hold.Status != domain.HoldLocked || hold.IsFrozen || hold.FrozenAt != nil {
		t.Errorf("hold = %+v, want unfrozen LOCKED", hold)
	}
	extension := hold.EffectiveEndDate.Sub(endBefore)
	if extension < 47*time.Hour || extension > 49*time.Hour {
		t.Errorf("warranty extension = %v, want about the 48h frozen", extension)
	}
	if len(f.trust.disputeLosses) != 1 || f.trust.disputeLosses[0] != "client-1" {
		t.Errorf("dispute losses = %v, want [client-1]", f.trust.disputeLosses)
	}
}

func TestResolveDisputeClientFavored(t *testing.T) {
	f := newDisputeFixture(lockedHold())
	raised, err := f.uc.RaiseDispute(&disputedto.RaiseDisputeInput{
		JobID: "job-1", Actor: domain.Actor{ID: "client-1", Role: domain.RoleClient},
		Type: domain.DisputeDamage, Reason: "broke the counter",
	})
	if err != nil {
		t.Fatalf("RaiseDispute: %v", err)
	}

	out, err := f.uc.ResolveDispute(&disputedto.ResolveDisputeInput{
		DisputeID: raised.ID, OperatorID: "op-1",
		Outcome: domain.OutcomeClientFavored, Resolution: "damage confirmed",
	})
	if err != nil {
		t.Fatalf("ResolveDispute: %v", err)
	}
	if out.Outcome != domain.OutcomeClientFavored || out.ResolvedAt == nil {
		t.Errorf("dispute = %+v, want CLIENT_FAVORED with timestamp", out)
	}

	hold := f.payments.holds["hold-1"]
	if hold.Status != domain.HoldReleased || hold.ReleasedAt == nil {
		t.Errorf("hold = %+v, want RELEASED", hold)
	}

	entries, _ := f.payments.GetLedgerEntries("job-1")
	if len(entries) != 2 {
		t.Fatalf("refund entries = %d, want 2", len(entries))
	}
	var refund *domain.LedgerEntry
	for _, e := range entries {
		if e.Account == domain.AccountClientRefund {
			refund = e
		}
	}
	if refund == nil || refund.EntryType != domain.EntryCredit || refund.Amount != 1900 {
		t.Errorf("refund entry = %+v, want CLIENT_REFUND credit of 1900", refund)
	}

	if f.payments.payments["job-1"].Status != domain.PaymentReleased {
		t.Errorf("payment status = %v, want RELEASED", f.payments.payments["job-1"].Status)
	}
	if len(f.trust.disputeLosses) != 1 || f.trust.disputeLosses[0] != "provider-1" {
		t.Errorf("dispute losses = %v, want [provider-1]", f.trust.disputeLosses)
	}
}

func TestResolveDisputeGuards(t *testing.T) {
	f := newDisputeFixture(lockedHold())
	raised, err := f.uc.RaiseDispute(&disputedto.RaiseDisputeInput{
		JobID: "job-1", Actor: domain.Actor{ID: "client-1", Role: domain.RoleClient},
		Type: domain.DisputeQuality, Reason: "bad work",
	})
	if err != nil {
		t.Fatalf("RaiseDispute: %v", err)
	}

	_, err = f.uc.ResolveDispute(&disputedto.ResolveDisputeInput{
		DisputeID: raised.ID, OperatorID: "op-1", Outcome: "SPLIT_THE_DIFFERENCE",
	})
	if !domain.IsKind(err, domain.KindValidation) {
		t.Errorf("unknown outcome: got %v, want validation error", err)
	}

	if _, err := f.uc.ResolveDispute(&disputedto.ResolveDisputeInput{
		DisputeID: raised.ID, OperatorID: "op-1",
		Outcome: domain.OutcomeProviderFavored, Resolution: "fine",
	}); err != nil {
		t.Fatalf("first resolution: %v", err)
	}
	_, err = f.uc.ResolveDispute(&disputedto.ResolveDisputeInput{
		DisputeID: raised.ID, OperatorID: "op-1",
		Outcome: domain.OutcomeClientFavored, Resolution: "changed my mind",
	})
	if !domain.IsKind(err, domain.KindConflict) {
		t.Errorf("re-resolution: got %v, want conflict", err)
	}
}

func TestResolveDisputeSurvivesTrustUpdateFailure(t *testing.T) {
	f := newDisputeFixture(lockedHold())
	raised, err := f.uc.RaiseDispute(&disputedto.RaiseDisputeInput{
		JobID: "job-1", Actor: domain.Actor{ID: "client-1", Role: domain.RoleClient},
		Type: domain.DisputeQuality, Reason: "bad work",
	})
	if err != nil {
		t.Fatalf("RaiseDispute: %v", err)
	}
	f.trust.disputeRecordErr = domain.NewDependencyError("trust store down", nil)

	out, err := f.uc.ResolveDispute(&disputedto.ResolveDisputeInput{
		DisputeID: raised.ID, OperatorID: "op-1",
		Outcome: domain.OutcomeClientFavored, Resolution: "damage confirmed",
	})
	if err != nil {
		t.Fatalf("ResolveDispute: %v, want success despite the trust failure", err)
	}
	if out.Status != domain.DisputeResolved {
		t.Errorf("dispute status = %v, want RESOLVED", out.Status)
	}
	if f.disputes.disputes[raised.ID].Status != domain.DisputeResolved {
		t.Errorf("stored dispute status = %v, want RESOLVED", f.disputes.disputes[raised.ID].Status)
	}
	if f.payments.holds["hold-1"].Status != domain.HoldReleased {
		t.Errorf("hold status = %v, want RELEASED", f.payments.holds["hold-1"].Status)
	}
}

func TestResolveExpiredReviews(t *testing.T) {
	f := newDisputeFixture(lockedHold())
	raised, err := f.uc.RaiseDispute(&disputedto.RaiseDisputeInput{
		JobID: "job-1", Actor: domain.Actor{ID: "client-1", Role: domain.RoleClient},
		Type: domain.DisputeNoShow, Reason: "nobody came",
	})
	if err != nil {
		t.Fatalf("RaiseDispute: %v", err)
	}
	f.disputes.disputes[raised.ID].ReviewBy = time.Now().Add(-time.Hour)

	if err := f.uc.ResolveExpiredReviews(context.Background()); err != nil {
		t.Fatalf("ResolveExpiredReviews: %v", err)
	}

	d := f.disputes.disputes[raised.ID]
	if d.Status != domain.DisputeResolved || d.Outcome != domain.OutcomeClientFavored {
		t.Errorf("dispute = status %v outcome %v, want auto CLIENT_FAVORED resolution", d.Status, d.Outcome)
	}
	if f.payments.holds["hold-1"].Status != domain.HoldReleased {
		t.Errorf("hold status = %v, want RELEASED by the default ruling", f.payments.holds["hold-1"].Status)
	}
}
