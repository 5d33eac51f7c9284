package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RegistrationsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "registrations_total",
			Help: "Total successful user registrations",
		},
	)

	OrdersTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Total orders created",
		},
	)

	OTPIssuedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "password_reset_otp_issued_total",
			Help: "Total password reset codes issued",
		},
	)

	MailTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mail_deliveries_total",
			Help: "Outbound mail attempts by outcome",
		},
		[]string{"outcome"}, // sent|failed
	)
)

var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(RegistrationsTotal)
	prometheus.MustRegister(OrdersTotal)
	prometheus.MustRegister(OTPIssuedTotal)
	prometheus.MustRegister(MailTotal)
}
