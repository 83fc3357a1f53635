package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	ammmetrics "fundcore/internal/amm/metrics"
	"fundcore/internal/amm/models"
	"fundcore/internal/events"
	fundmodels "fundcore/internal/fund/models"
	id "fundcore/pkg/domain"
	dErrors "fundcore/pkg/domain-errors"
	"fundcore/pkg/platform/sentinel"
	"fundcore/pkg/requestcontext"
)

// Store is the pool and balance persistence contract. CreatePool is
// collision-checked with sentinel.ErrConflict; lookups return
// sentinel.ErrNotFound for absent pools.
type Store interface {
	CreatePool(ctx context.Context, pool *models.Pool) error
	FindPool(ctx context.Context, fundID id.FundID) (*models.Pool, error)
	// UpdatePool runs validate then mutate on the pool under the store's lock.
	UpdatePool(ctx context.Context, fundID id.FundID, validate func(*models.Pool) error, mutate func(*models.Pool)) (*models.Pool, error)
	// ExecuteTrade runs fn against the pool and the investor's balance in one
	// atomic unit: either every write fn makes is applied, or none are. It
	// returns the pool and balance as settled.
	ExecuteTrade(ctx context.Context, fundID id.FundID, investor id.InvestorID, fn func(pool *models.Pool, balance *int64) error) (*models.Pool, int64, error)
	GetBalance(ctx context.Context, fundID id.FundID, investor id.InvestorID) (int64, error)
}

// FundDirectory is the fund registry read surface the AMM consults before
// opening a pool. Satisfied by the fund service.
type FundDirectory interface {
	GetFundDetails(ctx context.Context, fundID id.FundID) (*fundmodels.Fund, error)
}

// EligibilityChecker gates trades on investor compliance. Satisfied by the
// compliance service.
type EligibilityChecker interface {
	CheckEligibility(ctx context.Context, investor id.InvestorID, fundID id.FundID) (bool, string, error)
}

// Service runs the bonding-curve markets.
type Service struct {
	store       Store
	funds       FundDirectory
	eligibility EligibilityChecker
	publisher   events.Publisher
	logger      *slog.Logger
	metrics     *ammmetrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithPublisher(publisher events.Publisher) Option {
	return func(s *Service) { s.publisher = publisher }
}

func WithMetrics(m *ammmetrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// New constructs the AMM service.
func New(store Store, funds FundDirectory, eligibility EligibilityChecker, opts ...Option) *Service {
	s := &Service{
		store:       store,
		funds:       funds,
		eligibility: eligibility,
		publisher:   events.NopPublisher{},
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreatePool opens a market for an existing fund's shares. One pool per fund.
func (s *Service) CreatePool(ctx context.Context, fundID id.FundID, initialPrice int64, reserveRatioBps uint32) (*models.Pool, error) {
	now := requestcontext.Now(ctx)

	// Pools borrow fund identifiers, they never mint them.
	if _, err := s.funds.GetFundDetails(ctx, fundID); err != nil {
		return nil, err
	}

	pool, err := models.NewPool(fundID, initialPrice, reserveRatioBps, now)
	if err != nil {
		return nil, err
	}

	if err := s.store.CreatePool(ctx, pool); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeConflict, "pool already exists for fund")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to store pool")
	}

	s.emit(ctx, events.New(events.KindPoolCreated, now, events.PoolCreated{
		FundID:          pool.FundID,
		InitialPrice:    pool.SharePrice,
		ReserveRatioBps: pool.ReserveRatioBps,
	}))
	s.logger.InfoContext(ctx, "pool created",
		"fund_id", pool.FundID,
		"initial_price", pool.SharePrice,
		"request_id", requestcontext.RequestID(ctx),
	)
	s.metrics.IncrementPoolsCreated()
	return pool, nil
}

// AddLiquidity raises the pool's trading capacity. Liquidity only ever grows;
// trades check against it without drawing it down.
func (s *Service) AddLiquidity(ctx context.Context, fundID id.FundID, amount int64) (*models.Pool, error) {
	if amount <= 0 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "liquidity amount must be positive")
	}

	pool, err := s.store.UpdatePool(ctx, fundID,
		requireActive,
		func(p *models.Pool) {
			p.TotalLiquidity += amount
		},
	)
	if err != nil {
		return nil, wrapPoolErr(err)
	}

	s.emit(ctx, events.New(events.KindLiquidityAdded, requestcontext.Now(ctx), events.LiquidityAdded{
		FundID:         pool.FundID,
		Amount:         amount,
		TotalLiquidity: pool.TotalLiquidity,
	}))
	s.metrics.RecordLiquidity(amount)
	return pool, nil
}

// CalculatePrice quotes a prospective trade without settling anything.
func (s *Service) CalculatePrice(ctx context.Context, fundID id.FundID, shareAmount int64, isBuy bool) (models.Quote, error) {
	if shareAmount <= 0 {
		return models.Quote{}, dErrors.New(dErrors.CodeInvalidInput, "share amount must be positive")
	}
	pool, err := s.store.FindPool(ctx, fundID)
	if err != nil {
		return models.Quote{}, wrapPoolErr(err)
	}
	return pool.QuoteTrade(shareAmount, isBuy), nil
}

// BuyShares settles a purchase: compliance gate, liquidity check, balance
// credit, and upward price drift in one atomic store operation.
func (s *Service) BuyShares(ctx context.Context, investor id.InvestorID, fundID id.FundID, shareAmount int64) (*models.Pool, int64, error) {
	return s.trade(ctx, investor, fundID, shareAmount, true)
}

// SellShares settles a disposal: compliance gate, holdings check, balance
// debit, and downward price drift in one atomic store operation.
func (s *Service) SellShares(ctx context.Context, investor id.InvestorID, fundID id.FundID, shareAmount int64) (*models.Pool, int64, error) {
	return s.trade(ctx, investor, fundID, shareAmount, false)
}

func (s *Service) trade(ctx context.Context, investor id.InvestorID, fundID id.FundID, shareAmount int64, isBuy bool) (*models.Pool, int64, error) {
	start := time.Now()
	if shareAmount <= 0 {
		return nil, 0, dErrors.New(dErrors.CodeInvalidInput, "share amount must be positive")
	}

	eligible, reason, err := s.eligibility.CheckEligibility(ctx, investor, fundID)
	if err != nil {
		return nil, 0, dErrors.Wrap(err, dErrors.CodeInternal, "eligibility check failed")
	}
	if !eligible {
		s.metrics.RecordBlockedTrade("ineligible")
		return nil, 0, dErrors.New(dErrors.CodeUnauthorized, reason)
	}

	var quote models.Quote
	pool, balance, err := s.store.ExecuteTrade(ctx, fundID, investor, func(p *models.Pool, balance *int64) error {
		if err := requireActive(p); err != nil {
			return err
		}
		quote = p.QuoteTrade(shareAmount, isBuy)
		if isBuy {
			if quote.TotalPrice > p.TotalLiquidity {
				return dErrors.New(dErrors.CodeConflict, "insufficient liquidity in pool")
			}
			*balance += shareAmount
		} else {
			if *balance < shareAmount {
				return dErrors.New(dErrors.CodeConflict, "insufficient shares to sell")
			}
			*balance -= shareAmount
		}
		p.ApplyDrift(isBuy)
		return nil
	})
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeConflict) {
			s.metrics.RecordBlockedTrade("capacity")
		}
		return nil, 0, wrapPoolErr(err)
	}

	s.emit(ctx, events.New(events.KindSharesTraded, requestcontext.Now(ctx), events.SharesTraded{
		FundID:      fundID,
		Investor:    investor,
		IsBuy:       isBuy,
		ShareAmount: shareAmount,
		TotalPrice:  quote.TotalPrice,
		SharePrice:  pool.SharePrice,
	}))
	s.logger.InfoContext(ctx, "trade settled",
		"fund_id", fundID,
		"investor", investor,
		"is_buy", isBuy,
		"share_amount", shareAmount,
		"total_price", quote.TotalPrice,
		"share_price", pool.SharePrice,
		"request_id", requestcontext.RequestID(ctx),
	)
	s.metrics.RecordTrade(isBuy, quote.TotalPrice)
	s.metrics.ObserveTrade(start)
	return pool, balance, nil
}

// SetPoolActive halts or resumes trading in a pool. Idempotent.
func (s *Service) SetPoolActive(ctx context.Context, fundID id.FundID, active bool) (*models.Pool, error) {
	pool, err := s.store.UpdatePool(ctx, fundID,
		func(*models.Pool) error { return nil },
		func(p *models.Pool) { p.Active = active },
	)
	if err != nil {
		return nil, wrapPoolErr(err)
	}
	s.logger.InfoContext(ctx, "pool status changed",
		"fund_id", fundID,
		"active", active,
	)
	return pool, nil
}

// GetPool returns the pool record.
func (s *Service) GetPool(ctx context.Context, fundID id.FundID) (*models.Pool, error) {
	pool, err := s.store.FindPool(ctx, fundID)
	if err != nil {
		return nil, wrapPoolErr(err)
	}
	return pool, nil
}

// GetShareBalance returns the investor's holding. Investors who never traded
// hold zero shares.
func (s *Service) GetShareBalance(ctx context.Context, fundID id.FundID, investor id.InvestorID) (int64, error) {
	balance, err := s.store.GetBalance(ctx, fundID, investor)
	if err != nil {
		return 0, wrapPoolErr(err)
	}
	return balance, nil
}

func requireActive(p *models.Pool) error {
	if !p.Active {
		return dErrors.New(dErrors.CodeInvariantViolation, "pool is not active")
	}
	return nil
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

func wrapPoolErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, "pool not found")
	case errors.Is(err, sentinel.ErrInvalidState):
		return dErrors.New(dErrors.CodeInvariantViolation, "pool is not active")
	default:
		var de *dErrors.Error
		if errors.As(err, &de) {
			return err
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "pool store failure")
	}
}
