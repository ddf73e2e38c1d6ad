package collector

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/thu1977/hddtemp/model"
	"github.com/thu1977/hddtemp/util"
)

// Oldest smartctl whose -a text layout the extractors understand.
const (
	minMajor = 5
	minMinor = 37
)

// probeTimeout bounds the one-time --version check.
const probeTimeout = 3 * time.Second

// Smartctl invokes the smartmontools binary for device scans and
// per-device reports. It holds no reading state; every call runs the
// external tool again.
type Smartctl struct {
	path    string
	timeout time.Duration
}

// New locates smartctl and probes its version once. path overrides the
// PATH lookup when non-empty; timeout bounds each later invocation.
func New(ctx context.Context, path string, timeout time.Duration) (*Smartctl, error) {
	if path == "" {
		p, err := exec.LookPath("smartctl")
		if err != nil {
			return nil, fmt.Errorf("smartctl not found in PATH (install smartmontools): %w", err)
		}
		path = p
	}
	s := &Smartctl{path: path, timeout: timeout}

	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	out, err := exec.CommandContext(probeCtx, s.path, "--version").Output()
	if err != nil {
		return nil, fmt.Errorf("smartctl version probe: %w", err)
	}
	major, minor, ok := parseVersion(string(out))
	if !ok {
		return nil, fmt.Errorf("cannot parse smartctl version from %q", firstLine(string(out)))
	}
	if tooOld(major, minor) {
		return nil, fmt.Errorf("smartctl %d.%d is too old, need at least %d.%d", major, minor, minMajor, minMinor)
	}
	logrus.WithField("path", s.path).Debugf("using smartctl %d.%d", major, minor)
	return s, nil
}

// Scan asks smartctl for attached devices. Each non-comment output line
// names one device in its first field; enumeration order is preserved.
func (s *Smartctl) Scan(ctx context.Context) ([]string, error) {
	scanCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	out, err := exec.CommandContext(scanCtx, s.path, "--scan").Output()
	if err != nil {
		return nil, fmt.Errorf("smartctl --scan: %w", err)
	}
	devices := parseScan(string(out))
	if len(devices) == 0 {
		return nil, fmt.Errorf("smartctl --scan found no devices; name them explicitly")
	}
	return devices, nil
}

// Report captures the combined identification, attribute and
// temperature-log output for one device. smartctl exits non-zero for
// many non-error reasons, so non-empty output is used as captured; an
// empty capture yields a report no dialect will match, which renders
// as placeholders downstream.
func (s *Smartctl) Report(ctx context.Context, device string) model.Report {
	runCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	out, err := exec.CommandContext(runCtx, s.path, "-a", device).Output()
	if err != nil && len(out) == 0 {
		logrus.WithField("device", device).WithError(err).Debug("smartctl produced no output")
		return model.Report{Device: device}
	}
	return model.Report{Device: device, Lines: strings.Split(string(out), "\n")}
}

// Collect captures reports for all devices concurrently, one goroutine
// per device, and returns them in enumeration order.
func (s *Smartctl) Collect(ctx context.Context, devices []string) []model.Report {
	reports := make([]model.Report, len(devices))
	var wg sync.WaitGroup
	for i, dev := range devices {
		wg.Add(1)
		go func(i int, dev string) {
			defer wg.Done()
			reports[i] = s.Report(ctx, dev)
		}(i, dev)
	}
	wg.Wait()
	return reports
}

// parseScan pulls device paths out of `smartctl --scan` output. Lines
// look like "/dev/sda -d sat # /dev/sda [SAT], ATA device".
func parseScan(out string) []string {
	var devices []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if dev := util.FieldsAt(line, 0); dev != "" {
			devices = append(devices, dev)
		}
	}
	return devices
}

func tooOld(major, minor int) bool {
	return major < minMajor || (major == minMajor && minor < minMinor)
}

// parseVersion pulls MAJOR.MINOR from the first line of
// `smartctl --version` output, e.g. "smartctl 7.4 2023-08-01 r5530 ...".
func parseVersion(out string) (int, int, bool) {
	fields := strings.Fields(firstLine(out))
	if len(fields) < 2 || fields[0] != "smartctl" {
		return 0, 0, false
	}
	parts := strings.SplitN(fields[1], ".", 3)
	if len(parts) < 2 {
		return 0, 0, false
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	minor, err := strconv.Atoi(util.DigitPrefix(parts[1]))
	if err != nil {
		return 0, 0, false
	}
	return major, minor, true
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return strings.TrimSpace(s[:idx])
	}
	return strings.TrimSpace(s)
}
