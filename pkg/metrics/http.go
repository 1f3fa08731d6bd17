package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Duração das requisições HTTP por rota registrada (não pelo caminho concreto)
var HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "http_request_duration_seconds",
	Help:    "Duration of HTTP requests by route, method and status code",
	Buckets: prometheus.DefBuckets,
}, []string{"route", "method", "code"})
