package server

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/thu1977/hddtemp/engine"
)

// exporter gathers readings at scrape time. The gauge always reports
// Celsius regardless of the daemon's display unit, per Prometheus
// base-unit convention.
type exporter struct {
	srv        *Server
	tempDesc   *prometheus.Desc
	scrapeErrs prometheus.Counter
}

func newExporter(srv *Server) *exporter {
	return &exporter{
		srv: srv,
		tempDesc: prometheus.NewDesc(
			"hddtemp_device_temperature_celsius",
			"Device temperature extracted from smartctl output.",
			[]string{"device", "name"},
			nil,
		),
		scrapeErrs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hddtemp_scrape_errors_total",
			Help: "Total device reports that yielded no usable temperature.",
		}),
	}
}

// Describe implements prometheus.Collector.
func (e *exporter) Describe(ch chan<- *prometheus.Desc) {
	ch <- e.tempDesc
	e.scrapeErrs.Describe(ch)
}

// Collect implements prometheus.Collector.
func (e *exporter) Collect(ch chan<- prometheus.Metric) {
	for _, res := range e.srv.collect(context.Background()) {
		if !res.HasTemp {
			e.scrapeErrs.Inc()
			continue
		}
		name := res.Name
		if name == "" {
			name = engine.Placeholder
		}
		ch <- prometheus.MustNewConstMetric(
			e.tempDesc, prometheus.GaugeValue, float64(res.Celsius), res.Device, name)
	}
	e.scrapeErrs.Collect(ch)
}
