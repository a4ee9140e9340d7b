// Package metrics exposes ledger and checkout activity as Prometheus metrics.
package metrics

import (
	"context"

	"pushpay/internal/core/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the service. It is a ledger
// observer and a ports.CheckoutMetrics.
type Metrics struct {
	PaymentsReceived      *prometheus.CounterVec
	VolumeTotal           *prometheus.CounterVec
	FeesCollected         *prometheus.CounterVec
	BeneficiaryShares     *prometheus.CounterVec
	AuthorizationFailures *prometheus.CounterVec
	PaymentAmount         prometheus.Histogram
}

// New creates the metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		PaymentsReceived: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pushpay_payments_received_total",
			Help: "Total number of payments accepted by merchant ledgers",
		}, []string{"merchant_id"}),
		VolumeTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pushpay_payment_volume_total",
			Help: "Sum of accepted payment amounts in base units",
		}, []string{"merchant_id"}),
		FeesCollected: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pushpay_fees_collected_total",
			Help: "Sum of protocol fees collected in base units",
		}, []string{"merchant_id"}),
		BeneficiaryShares: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pushpay_beneficiary_share_total",
			Help: "Protocol fee paid to each beneficiary in base units",
		}, []string{"beneficiary"}),
		AuthorizationFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pushpay_checkout_authorization_failures_total",
			Help: "Checkouts rejected before reaching a merchant ledger",
		}, []string{"reason"}),
		PaymentAmount: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "pushpay_payment_amount",
			Help:    "Distribution of accepted payment amounts in base units",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		}),
	}
}

// Notify records a ledger event.
func (m *Metrics) Notify(_ context.Context, event domain.Event) {
	merchant := string(event.Merchant())
	switch e := event.(type) {
	case domain.PaymentReceived:
		m.PaymentsReceived.WithLabelValues(merchant).Inc()
		m.VolumeTotal.WithLabelValues(merchant).Add(float64(e.Amount))
		m.PaymentAmount.Observe(float64(e.Amount))
	case domain.FeeSplitExecuted:
		m.FeesCollected.WithLabelValues(merchant).Add(float64(e.TotalFee))
		m.BeneficiaryShares.WithLabelValues(string(e.BeneficiaryA)).Add(float64(e.PartyAAmount))
		m.BeneficiaryShares.WithLabelValues(string(e.BeneficiaryB)).Add(float64(e.PartyBAmount))
	}
}

// IncAuthorizationFailure counts a rejected checkout.
func (m *Metrics) IncAuthorizationFailure(reason string) {
	m.AuthorizationFailures.WithLabelValues(reason).Inc()
}
