package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks trading activity across pools.
type Metrics struct {
	PoolsCreated   prometheus.Counter
	Trades         *prometheus.CounterVec
	TradesBlocked  *prometheus.CounterVec
	TradeVolume    *prometheus.CounterVec
	LiquidityAdded prometheus.Counter
	TradeDuration  prometheus.Histogram
}

func New() *Metrics {
	return &Metrics{
		PoolsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "amm_pools_created_total",
			Help: "Liquidity pools created.",
		}),
		Trades: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "amm_trades_total",
			Help: "Settled trades by side.",
		}, []string{"side"}),
		TradesBlocked: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "amm_trades_blocked_total",
			Help: "Rejected trades by cause.",
		}, []string{"cause"}),
		TradeVolume: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "amm_trade_volume_total",
			Help: "Settled trade value by side.",
		}, []string{"side"}),
		LiquidityAdded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "amm_liquidity_added_total",
			Help: "Liquidity provisioned across pools.",
		}),
		TradeDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "amm_trade_duration_seconds",
			Help:    "Latency of trade settlement.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func sideLabel(isBuy bool) string {
	if isBuy {
		return "buy"
	}
	return "sell"
}

func (m *Metrics) IncrementPoolsCreated() {
	if m != nil {
		m.PoolsCreated.Inc()
	}
}

func (m *Metrics) RecordTrade(isBuy bool, totalPrice int64) {
	if m == nil {
		return
	}
	side := sideLabel(isBuy)
	m.Trades.WithLabelValues(side).Inc()
	m.TradeVolume.WithLabelValues(side).Add(float64(totalPrice))
}

func (m *Metrics) RecordBlockedTrade(cause string) {
	if m != nil {
		m.TradesBlocked.WithLabelValues(cause).Inc()
	}
}

func (m *Metrics) RecordLiquidity(amount int64) {
	if m != nil {
		m.LiquidityAdded.Add(float64(amount))
	}
}

func (m *Metrics) ObserveTrade(start time.Time) {
	if m != nil {
		m.TradeDuration.Observe(time.Since(start).Seconds())
	}
}
