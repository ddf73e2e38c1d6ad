package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/thu1977/hddtemp/collector"
	"github.com/thu1977/hddtemp/config"
	"github.com/thu1977/hddtemp/engine"
	"github.com/thu1977/hddtemp/model"
	"github.com/thu1977/hddtemp/server"
	"github.com/thu1977/hddtemp/ui"
)

// Version is set at build time via ldflags.
var Version = "0.4.0"

// Options holds CLI configuration after flags and the config file are
// merged.
type Options struct {
	Unit        model.Unit
	Numeric     bool
	Classic     bool
	Daemon      bool
	Interactive bool
	ListenAddr  string
	HTTPAddr    string
	Timeout     time.Duration
	WarnC       int
	CritC       int
	Devices     []string
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `hddtemp v%s — storage device temperatures via smartctl

Usage:
  hddtemp [OPTIONS] [DEVICE...]

Modes:
  (default)         One-shot aligned column report
  -classic          Legacy one-line-per-device layout
  -n                Numeric output only, one temperature per line
  -i                Interactive terminal view (r refresh, u unit, q quit)
  -d                Daemon: serve readings over TCP, optionally HTTP
  -v                Print version and exit

Options:
  -u C|F            Output unit (default: C, or config file value)
  -t N              Per-device smartctl timeout in seconds (default: 10)
  -smartctl PATH    smartctl binary (default: search PATH)
  -l ADDR           Daemon TCP listen address (default: 127.0.0.1:7634)
  -http ADDR        Daemon HTTP listen address serving /v1/readings,
                    /metrics and /healthcheck (default: disabled)
  -no-color         Disable ANSI colors
  -debug            Verbose logging

Devices:
  DEVICE            Block device paths (/dev/sda, /dev/nvme0, ...)
                    With none given, devices come from smartctl --scan
                    (needs root)

Config file:
  ~/.config/hddtemp/config.json supplies flag defaults (unit, timeout,
  smartctl path, listen addresses, color thresholds)

Examples:
  sudo hddtemp                       All detected devices, Celsius
  sudo hddtemp /dev/sda /dev/sdb     Two devices
  sudo hddtemp -u F /dev/nvme0       Fahrenheit
  sudo hddtemp -classic /dev/sda     /dev/sda: ST4000DM004: 34°C
  sudo hddtemp -n /dev/sda           34
  sudo hddtemp -i                    Interactive view
  sudo hddtemp -d -http :9633        Daemon: TCP 7634 plus Prometheus
  hddtemp -v
`, Version)
}

// Run parses flags and starts the application.
func Run() error {
	cfg := config.Load()

	var opts Options
	var unitFlag, smartctlPath string
	var timeoutSec int
	var noColor, debug, showVersion bool

	flag.StringVar(&unitFlag, "u", cfg.Unit, "Output unit: C or F")
	flag.BoolVar(&opts.Numeric, "n", false, "Print temperatures only, one per line")
	flag.BoolVar(&opts.Classic, "classic", false, "Legacy one-line-per-device layout")
	flag.BoolVar(&opts.Interactive, "i", false, "Interactive terminal view")
	flag.BoolVar(&opts.Daemon, "d", false, "Run as daemon serving readings over TCP/HTTP")
	flag.StringVar(&opts.ListenAddr, "l", cfg.ListenAddr, "Daemon TCP listen address")
	flag.StringVar(&opts.HTTPAddr, "http", cfg.HTTPAddr, "Daemon HTTP listen address (empty = disabled)")
	flag.IntVar(&timeoutSec, "t", cfg.TimeoutSec, "Per-device smartctl timeout in seconds")
	flag.StringVar(&smartctlPath, "smartctl", cfg.SmartctlPath, "Path to the smartctl binary")
	flag.BoolVar(&noColor, "no-color", false, "Disable ANSI colors")
	flag.BoolVar(&debug, "debug", false, "Verbose logging")
	flag.BoolVar(&showVersion, "v", false, "Print version and exit")

	flag.Usage = printUsage
	flag.Parse()

	if showVersion {
		fmt.Printf("hddtemp v%s\n", Version)
		return nil
	}

	logrus.SetLevel(logrus.WarnLevel)
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	unit, err := model.ParseUnit(unitFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		printUsage()
		os.Exit(1)
	}
	opts.Unit = unit
	opts.Timeout = time.Duration(timeoutSec) * time.Second
	opts.WarnC = cfg.WarnC
	opts.CritC = cfg.CritC
	opts.Devices = flag.Args()

	initColors(noColor)

	ctx := context.Background()
	sc, err := collector.New(ctx, smartctlPath, opts.Timeout)
	if err != nil {
		return err
	}

	// Discovery reads every attached device and needs root. Explicitly
	// named devices are still attempted and degrade per device.
	if len(opts.Devices) == 0 {
		if os.Geteuid() != 0 {
			return fmt.Errorf("device scan needs root; name devices explicitly or rerun with sudo")
		}
		devices, err := sc.Scan(ctx)
		if err != nil {
			return err
		}
		opts.Devices = devices
	} else if os.Geteuid() != 0 {
		fmt.Fprintf(os.Stderr, "Warning: running without root — smartctl may not read every device\n")
	}

	if opts.Daemon {
		return runDaemon(sc, opts)
	}
	if opts.Interactive {
		m := ui.NewModel(sc, opts.Devices, opts.Unit, opts.WarnC, opts.CritC)
		p := tea.NewProgram(m, tea.WithAltScreen())
		_, err := p.Run()
		return err
	}
	return runOnce(ctx, sc, opts)
}

// runOnce collects every device once and prints the selected layout.
func runOnce(ctx context.Context, sc *collector.Smartctl, opts Options) error {
	results := engine.ExtractAll(sc.Collect(ctx, opts.Devices))
	rows := engine.BuildRows(results, opts.Unit, opts.Classic)

	switch {
	case opts.Numeric:
		printNumeric(os.Stdout, rows)
	case opts.Classic:
		printClassic(os.Stdout, rows)
	default:
		printColumns(os.Stdout, rows, results, opts.WarnC, opts.CritC)
	}
	return nil
}

// runDaemon serves readings until SIGINT/SIGTERM.
func runDaemon(sc *collector.Smartctl, opts Options) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		cancel()
	}()

	srv := server.New(sc, opts.Devices, server.Options{
		ListenAddr: opts.ListenAddr,
		HTTPAddr:   opts.HTTPAddr,
		Unit:       opts.Unit,
	})
	return srv.Run(ctx)
}
