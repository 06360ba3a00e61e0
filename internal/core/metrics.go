package core

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	HttpRequests *prometheus.CounterVec
	HttpLatency  *prometheus.HistogramVec

	LLMRequests *prometheus.CounterVec
	LLMLatency  *prometheus.HistogramVec

	KnowledgeImported prometheus.Counter
	PatientRecords    *prometheus.CounterVec

	KnowledgeEntries  prometheus.Gauge
	PatientRecordRows prometheus.Gauge
}

func NewMetrics(namespace, subsystem string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		HttpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status.",
		}, []string{"method", "path", "status"}),
		HttpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		LLMRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "llm_requests_total",
			Help:      "Model calls by usage and result.",
		}, []string{"usage", "result"}),
		LLMLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "llm_request_duration_seconds",
			Help:      "Model call latency.",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 40, 80},
		}, []string{"usage"}),
		KnowledgeImported: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "knowledge_imported_total",
			Help:      "Medical QA rows imported.",
		}),
		PatientRecords: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "patient_records_total",
			Help:      "Patient records appended by sink.",
		}, []string{"sink"}),
		KnowledgeEntries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "knowledge_entries",
			Help:      "Medical QA rows currently stored.",
		}),
		PatientRecordRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "patient_record_rows",
			Help:      "Patient records currently stored in the database.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HttpRequests,
		m.HttpLatency,
		m.LLMRequests,
		m.LLMLatency,
		m.KnowledgeImported,
		m.PatientRecords,
		m.KnowledgeEntries,
		m.PatientRecordRows,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
