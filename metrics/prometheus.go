package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Liqz metrics collector

var (
	// Singleton collector
	collector     *Collector
	collectorOnce sync.Once
)

// Collector holds all liqz metrics
type Collector struct {
	// Operation metrics
	OperationsTotal  *prometheus.CounterVec
	OperationLatency *prometheus.HistogramVec
	OperationErrors  *prometheus.CounterVec

	// Collateral metrics
	DepositsTotal    *prometheus.CounterVec
	WithdrawalsTotal *prometheus.CounterVec
	IncentivePaid    *prometheus.CounterVec

	// Bid metrics
	BidsPlaced    *prometheus.CounterVec
	BidsCancelled *prometheus.CounterVec
	BidCommitted  *prometheus.CounterVec

	// Loan metrics
	LoansActive      *prometheus.GaugeVec
	LoanVolume       *prometheus.CounterVec
	BorrowedVolume   *prometheus.CounterVec
	RepaymentsTotal  *prometheus.CounterVec
	LenderIncome     *prometheus.CounterVec
	ServiceFees      *prometheus.CounterVec
	SettlementsTotal *prometheus.CounterVec

	// Liquidation metrics
	LiquidationsTotal    *prometheus.CounterVec
	LiquidationRecovered *prometheus.CounterVec
}

// GetCollector returns the singleton metrics collector
func GetCollector() *Collector {
	collectorOnce.Do(func() {
		collector = newCollector()
	})
	return collector
}

func counter(subsystem, name, help string, labels ...string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "liqz",
			Subsystem: subsystem,
			Name:      name,
			Help:      help,
		},
		labels,
	)
}

// newCollector creates a new metrics collector
func newCollector() *Collector {
	c := &Collector{}

	// Operation metrics
	c.OperationsTotal = counter("operations", "total", "Protocol operations by outcome", "operation", "status")
	c.OperationLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "liqz",
			Subsystem: "operations",
			Name:      "latency_ms",
			Help:      "Operation execution latency in milliseconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25},
		},
		[]string{"operation"},
	)
	c.OperationErrors = counter("operations", "errors_total", "Failed operations by error code", "operation", "code")

	// Collateral metrics
	c.DepositsTotal = counter("collateral", "deposits_total", "NFTs deposited", "mint")
	c.WithdrawalsTotal = counter("collateral", "withdrawals_total", "NFTs withdrawn without a loan", "mint")
	c.IncentivePaid = counter("collateral", "incentive_paid", "Reward tokens paid for deposits", "mint")

	// Bid metrics
	c.BidsPlaced = counter("bids", "placed_total", "Bids placed", "mint")
	c.BidsCancelled = counter("bids", "cancelled_total", "Bids cancelled", "mint")
	c.BidCommitted = counter("bids", "committed", "Currency approved to the pool by bids", "mint")

	// Loan metrics
	c.LoansActive = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "liqz",
			Subsystem: "loans",
			Name:      "active",
			Help:      "Loans currently outstanding",
		},
		[]string{"mint"},
	)
	c.LoanVolume = counter("loans", "volume", "Total loan amount funded by lenders", "mint")
	c.BorrowedVolume = counter("loans", "borrowed_volume", "Currency paid out to borrowers", "mint")
	c.RepaymentsTotal = counter("loans", "repayments_total", "Loans repaid", "mint")
	c.LenderIncome = counter("loans", "lender_income", "Interest earned by lenders net of fees", "mint")
	c.ServiceFees = counter("loans", "service_fees", "Service fees paid to the pool owner", "source")
	c.SettlementsTotal = counter("loans", "settlements_total", "Repaid loans settled by lenders")

	// Liquidation metrics
	c.LiquidationsTotal = counter("liquidations", "total", "Loans liquidated", "mint")
	c.LiquidationRecovered = counter("liquidations", "recovered", "Margin returned to lenders on liquidation", "mint")

	// Register all metrics
	c.registerAll()

	return c
}

// registerAll registers all metrics with Prometheus
func (c *Collector) registerAll() {
	prometheus.MustRegister(
		c.OperationsTotal,
		c.OperationLatency,
		c.OperationErrors,
		c.DepositsTotal,
		c.WithdrawalsTotal,
		c.IncentivePaid,
		c.BidsPlaced,
		c.BidsCancelled,
		c.BidCommitted,
		c.LoansActive,
		c.LoanVolume,
		c.BorrowedVolume,
		c.RepaymentsTotal,
		c.LenderIncome,
		c.ServiceFees,
		c.SettlementsTotal,
		c.LiquidationsTotal,
		c.LiquidationRecovered,
	)
}

// ============ Recording Helpers ============

// RecordOperation records the outcome and latency of an operation. code is the
// error code of a failed operation and ignored on success.
func (c *Collector) RecordOperation(operation string, err error, code string, latencyMs float64) {
	status := "success"
	if err != nil {
		status = "failure"
		c.OperationErrors.WithLabelValues(operation, code).Inc()
	}
	c.OperationsTotal.WithLabelValues(operation, status).Inc()
	c.OperationLatency.WithLabelValues(operation).Observe(latencyMs)
}

// RecordDeposit records a collateral deposit
func (c *Collector) RecordDeposit(mint string, incentive uint64) {
	c.DepositsTotal.WithLabelValues(mint).Inc()
	c.IncentivePaid.WithLabelValues(mint).Add(float64(incentive))
}

// RecordWithdrawal records an NFT returned before any loan
func (c *Collector) RecordWithdrawal(mint string) {
	c.WithdrawalsTotal.WithLabelValues(mint).Inc()
}

// RecordBid records a placed bid
func (c *Collector) RecordBid(mint string, price, qty uint64) {
	c.BidsPlaced.WithLabelValues(mint).Inc()
	c.BidCommitted.WithLabelValues(mint).Add(float64(price) * float64(qty))
}

// RecordBidCancelled records a cancelled bid
func (c *Collector) RecordBidCancelled(mint string) {
	c.BidsCancelled.WithLabelValues(mint).Inc()
}

// RecordBorrow records an opened loan
func (c *Collector) RecordBorrow(mint string, total, borrowed uint64) {
	c.LoansActive.WithLabelValues(mint).Inc()
	c.LoanVolume.WithLabelValues(mint).Add(float64(total))
	c.BorrowedVolume.WithLabelValues(mint).Add(float64(borrowed))
}

// RecordRepay records a repaid loan
func (c *Collector) RecordRepay(mint string, income, fee uint64) {
	c.LoansActive.WithLabelValues(mint).Dec()
	c.RepaymentsTotal.WithLabelValues(mint).Inc()
	c.LenderIncome.WithLabelValues(mint).Add(float64(income))
	c.ServiceFees.WithLabelValues("repay").Add(float64(fee))
}

// RecordLiquidation records a liquidated loan
func (c *Collector) RecordLiquidation(mint string, withdrawable uint64) {
	c.LoansActive.WithLabelValues(mint).Dec()
	c.LiquidationsTotal.WithLabelValues(mint).Inc()
	c.LiquidationRecovered.WithLabelValues(mint).Add(float64(withdrawable))
}

// RecordSettlement records a lender collecting a repaid loan
func (c *Collector) RecordSettlement() {
	c.SettlementsTotal.WithLabelValues().Inc()
}

// ============ HTTP Handler ============

// Handler returns the Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// Timer is a helper for measuring latency
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// ElapsedMs returns the elapsed time in milliseconds
func (t *Timer) ElapsedMs() float64 {
	return float64(time.Since(t.start).Microseconds()) / 1000.0
}
