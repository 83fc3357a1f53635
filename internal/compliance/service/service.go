package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	compliancemetrics "fundcore/internal/compliance/metrics"
	"fundcore/internal/compliance/models"
	"fundcore/internal/events"
	id "fundcore/pkg/domain"
	dErrors "fundcore/pkg/domain-errors"
	"fundcore/pkg/platform/sentinel"
	"fundcore/pkg/requestcontext"
)

// Store is the compliance record persistence contract. Find returns
// sentinel.ErrNotFound for investors who never submitted.
type Store interface {
	Put(ctx context.Context, record models.Record) error
	Find(ctx context.Context, investor id.InvestorID) (models.Record, error)
}

// Rule is a per-fund suitability hook consulted after the global eligibility
// check. It returns false and a reason to block the trade.
type Rule func(record models.Record, fundID id.FundID) (bool, string)

// Service is the compliance gate.
type Service struct {
	store     Store
	verifier  ProofVerifier
	publisher events.Publisher
	logger    *slog.Logger
	metrics   *compliancemetrics.Metrics
	rules     []Rule
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithPublisher(publisher events.Publisher) Option {
	return func(s *Service) { s.publisher = publisher }
}

func WithMetrics(m *compliancemetrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithRule appends a per-fund suitability rule. Rules run in registration
// order; the first one that blocks wins.
func WithRule(rule Rule) Option {
	return func(s *Service) { s.rules = append(s.rules, rule) }
}

// New constructs the compliance gate service.
func New(store Store, verifier ProofVerifier, opts ...Option) *Service {
	s := &Service{
		store:     store,
		verifier:  verifier,
		publisher: events.NopPublisher{},
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SubmitCompliance verifies an attestation and records the investor as
// Verified for the validity window. Nothing is written when verification
// fails.
func (s *Service) SubmitCompliance(ctx context.Context, investor id.InvestorID, proof []byte) (models.Record, error) {
	start := time.Now()
	now := requestcontext.Now(ctx)

	classification, err := s.verifier.Verify(ctx, investor, proof)
	if err != nil {
		s.metrics.RecordSubmission("rejected")
		return models.Record{}, dErrors.Wrap(err, dErrors.CodeInvalidInput, "proof verification failed")
	}

	record := models.NewVerified(investor, classification, now)
	if err := s.store.Put(ctx, record); err != nil {
		s.metrics.RecordSubmission("store_error")
		return models.Record{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to store compliance record")
	}

	s.emit(ctx, events.New(events.KindComplianceUpdated, now, events.ComplianceUpdated{
		Investor:       record.Investor,
		Status:         string(record.Status),
		Classification: string(record.Classification),
		ExpiresAt:      record.ExpiresAt,
	}))

	s.logger.InfoContext(ctx, "compliance verified",
		"investor", record.Investor,
		"classification", record.Classification,
		"expires_at", record.ExpiresAt,
		"request_id", requestcontext.RequestID(ctx),
	)
	s.metrics.RecordSubmission("verified")
	s.metrics.ObserveSubmit(time.Since(start))
	return record, nil
}

// VerifyCompliance returns the investor's effective status and
// classification. Unknown investors get the zero record rather than an error;
// jurisdiction is recorded for audit but does not change the result.
func (s *Service) VerifyCompliance(ctx context.Context, investor id.InvestorID, jurisdiction string) (models.Status, models.Classification, error) {
	record, err := s.lookup(ctx, investor)
	if err != nil {
		return "", "", err
	}

	status := record.EffectiveStatus(requestcontext.Now(ctx))
	if jurisdiction != "" {
		s.logger.DebugContext(ctx, "compliance checked",
			"investor", investor,
			"jurisdiction", jurisdiction,
			"status", status,
		)
	}
	return status, record.Classification, nil
}

// CheckEligibility reports whether the investor may move capital in the given
// fund. The global verification check runs first, then any per-fund rules.
func (s *Service) CheckEligibility(ctx context.Context, investor id.InvestorID, fundID id.FundID) (bool, string, error) {
	record, err := s.lookup(ctx, investor)
	if err != nil {
		return false, "", err
	}

	eligible, reason := record.Eligible(requestcontext.Now(ctx))
	if eligible {
		for _, rule := range s.rules {
			if ok, ruleReason := rule(record, fundID); !ok {
				eligible, reason = false, ruleReason
				break
			}
		}
	}

	s.metrics.RecordEligibilityCheck(eligible)
	return eligible, reason, nil
}

// GetComplianceExpiry returns when the investor's verification lapses. An
// investor who never submitted gets the zero time.
func (s *Service) GetComplianceExpiry(ctx context.Context, investor id.InvestorID) (time.Time, error) {
	record, err := s.lookup(ctx, investor)
	if err != nil {
		return time.Time{}, err
	}
	return record.ExpiresAt, nil
}

func (s *Service) lookup(ctx context.Context, investor id.InvestorID) (models.Record, error) {
	record, err := s.store.Find(ctx, investor)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return models.Zero(investor), nil
		}
		return models.Record{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load compliance record")
	}
	return record, nil
}

func (s *Service) emit(ctx context.Context, event events.Event) {
	// Notifications are fire-and-forget: the state change already committed.
	if err := s.publisher.Emit(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "failed to emit notification",
			"kind", event.Kind,
			"error", err,
		)
	}
}
