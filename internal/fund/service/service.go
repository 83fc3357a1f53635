package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"fundcore/internal/events"
	fundmetrics "fundcore/internal/fund/metrics"
	"fundcore/internal/fund/models"
	id "fundcore/pkg/domain"
	dErrors "fundcore/pkg/domain-errors"
	"fundcore/pkg/platform/sentinel"
	"fundcore/pkg/requestcontext"
)

// Store is the fund registry persistence contract. Create must be
// collision-checked: inserting an identifier that already exists fails with
// sentinel.ErrConflict, never overwrites.
type Store interface {
	Create(ctx context.Context, fund *models.Fund) error
	FindByID(ctx context.Context, fundID id.FundID) (*models.Fund, error)
	ListByManager(ctx context.Context, manager id.ManagerID) ([]id.FundID, error)
	Count(ctx context.Context) (int, error)
	// Execute runs validate then mutate on the fund under the store's lock so
	// the check and the write observe the same state.
	Execute(ctx context.Context, fundID id.FundID, validate func(*models.Fund) error, mutate func(*models.Fund)) (*models.Fund, error)
}

// Service orchestrates the fund registry lifecycle.
type Service struct {
	store     Store
	publisher events.Publisher
	logger    *slog.Logger
	metrics   *fundmetrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithPublisher(publisher events.Publisher) Option {
	return func(s *Service) { s.publisher = publisher }
}

func WithMetrics(m *fundmetrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// New constructs the fund registry service.
func New(store Store, opts ...Option) *Service {
	s := &Service{
		store:     store,
		publisher: events.NopPublisher{},
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateFund validates parameters, derives the fund identifier, stores the
// record, and announces the creation.
func (s *Service) CreateFund(ctx context.Context, manager id.ManagerID, name string, targetSize, minInvestment int64, managementFeeBps, performanceFeeBps uint32) (*models.Fund, error) {
	start := time.Now()
	now := requestcontext.Now(ctx)

	fund, err := models.NewFund(manager, name, targetSize, minInvestment, managementFeeBps, performanceFeeBps, now)
	if err != nil {
		return nil, err
	}

	if err := s.store.Create(ctx, fund); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			// Same manager, name, and timestamp: a configuration fault on the
			// caller side, surfaced explicitly rather than retried.
			return nil, dErrors.New(dErrors.CodeConflict, "fund identifier collision")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to store fund")
	}

	s.emit(ctx, events.New(events.KindFundCreated, now, events.FundCreated{
		FundID:     fund.ID,
		Manager:    fund.Manager,
		Name:       fund.Name,
		TargetSize: fund.TargetSize,
	}))

	s.logger.InfoContext(ctx, "fund created",
		"fund_id", fund.ID,
		"manager", fund.Manager,
		"request_id", requestcontext.RequestID(ctx),
	)
	s.metrics.IncrementFundsCreated()
	s.metrics.ObserveCreate(start)
	return fund, nil
}

// UpdateFundStatus sets the fund's active flag. Only the owning manager may
// call this; the flag is unchanged on failure.
func (s *Service) UpdateFundStatus(ctx context.Context, caller id.ManagerID, fundID id.FundID, active bool) (*models.Fund, error) {
	fund, err := s.store.Execute(ctx, fundID,
		func(f *models.Fund) error {
			if !f.IsManagedBy(caller) {
				return dErrors.New(dErrors.CodeUnauthorized, "caller is not the fund manager")
			}
			return nil
		},
		func(f *models.Fund) {
			f.ApplyStatus(active)
		},
	)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeUnauthorized) {
			s.metrics.IncrementAuthFailures()
		}
		return nil, wrapFundErr(err)
	}

	s.emit(ctx, events.New(events.KindFundStatusChanged, requestcontext.Now(ctx), events.FundStatusChanged{
		FundID: fund.ID,
		Active: fund.Active,
	}))
	s.metrics.IncrementStatusChanges()
	return fund, nil
}

// GetFundDetails returns the fund record.
func (s *Service) GetFundDetails(ctx context.Context, fundID id.FundID) (*models.Fund, error) {
	fund, err := s.store.FindByID(ctx, fundID)
	if err != nil {
		return nil, wrapFundErr(err)
	}
	return fund, nil
}

// GetManagerFunds returns the manager's fund identifiers in creation order.
// A manager with no funds gets an empty sequence, not an error.
func (s *Service) GetManagerFunds(ctx context.Context, manager id.ManagerID) ([]id.FundID, error) {
	fundIDs, err := s.store.ListByManager(ctx, manager)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list manager funds")
	}
	return fundIDs, nil
}

// GetTotalFunds returns the number of funds ever registered.
func (s *Service) GetTotalFunds(ctx context.Context) (int, error) {
	count, err := s.store.Count(ctx)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count funds")
	}
	return count, nil
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

func wrapFundErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, "fund not found")
	default:
		var de *dErrors.Error
		if errors.As(err, &de) {
			return err
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "fund store failure")
	}
}
