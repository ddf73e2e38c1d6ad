package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/thu1977/hddtemp/collector"
	"github.com/thu1977/hddtemp/engine"
	"github.com/thu1977/hddtemp/model"
)

// Options configures the daemon listeners.
type Options struct {
	ListenAddr string // TCP wire protocol address
	HTTPAddr   string // empty disables the HTTP listener
	Unit       model.Unit
}

// Server answers TCP and HTTP clients with freshly collected readings.
// Nothing is cached and nothing polls: every connection and every
// scrape runs smartctl again.
type Server struct {
	sc      *collector.Smartctl
	devices []string
	opts    Options
}

// New creates a daemon server for a fixed device list.
func New(sc *collector.Smartctl, devices []string, opts Options) *Server {
	return &Server{sc: sc, devices: devices, opts: opts}
}

// Run accepts TCP clients until ctx is canceled, starting the HTTP
// listener alongside when configured.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.ListenAddr)
	if err != nil {
		return fmt.Errorf("daemon listen: %w", err)
	}
	logrus.WithField("addr", s.opts.ListenAddr).Info("serving readings over TCP")

	if s.opts.HTTPAddr != "" {
		go s.serveHTTP(ctx)
	}

	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("daemon accept: %w", err)
		}
		go s.handleConn(ctx, conn)
	}
}

// collect runs the full pipeline once, in device order.
func (s *Server) collect(ctx context.Context) []model.Result {
	return engine.ExtractAll(s.sc.Collect(ctx, s.devices))
}

// handleConn writes one batch of readings in the legacy wire format and
// closes the connection.
func (s *Server) handleConn(ctx context.Context, conn net.Conn) {
	defer conn.Close()
	start := time.Now()

	payload := Payload(s.collect(ctx), s.opts.Unit)
	if _, err := conn.Write([]byte(payload)); err != nil {
		logrus.WithError(err).Debug("tcp write failed")
		return
	}
	logrus.WithFields(logrus.Fields{
		"peer": conn.RemoteAddr().String(),
		"took": time.Since(start).Round(time.Millisecond).String(),
	}).Debug("served readings")
}

// Payload renders results in the legacy TCP wire format: one
// |device|name|temp|unit-letter| record per device, concatenated.
func Payload(results []model.Result, unit model.Unit) string {
	var sb strings.Builder
	for _, res := range results {
		row := engine.BuildRow(res, unit, false)
		sb.WriteString("|")
		sb.WriteString(row.Device)
		sb.WriteString("|")
		sb.WriteString(row.Name)
		sb.WriteString("|")
		sb.WriteString(row.Temp)
		sb.WriteString("|")
		sb.WriteString(unit.Letter())
		sb.WriteString("|")
	}
	return sb.String()
}

// serveHTTP exposes readings as JSON and Prometheus metrics. A private
// registry keeps the exporter minimal (no Go or process collectors).
func (s *Server) serveHTTP(ctx context.Context) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(newExporter(s))

	r := chi.NewRouter()
	r.Get("/healthcheck", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("OK"))
	})
	r.Get("/v1/readings", s.handleReadings)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	srv := &http.Server{Addr: s.opts.HTTPAddr, Handler: r}
	go func() {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		srv.Shutdown(shutCtx)
	}()

	logrus.WithField("addr", s.opts.HTTPAddr).Info("serving readings over HTTP")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logrus.WithError(err).Error("http server failed")
	}
}

func (s *Server) handleReadings(w http.ResponseWriter, r *http.Request) {
	rows := engine.BuildRows(s.collect(r.Context()), s.opts.Unit, false)
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(rows); err != nil {
		logrus.WithError(err).Debug("readings encode failed")
	}
}
