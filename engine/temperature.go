package engine

import (
	"strconv"
	"strings"

	"github.com/thu1977/hddtemp/model"
	"github.com/thu1977/hddtemp/util"
)

// Temperature markers per dialect, each paired with the whitespace
// field index holding the numeric value on a matching line.
const (
	markerSCT      = "Current Temperature:"        // ATA SCT status log, field 2
	markerAttr194  = "194 "                        // Temperature_Celsius raw value, field 9
	markerAttr190  = "190 "                        // Airflow_Temperature_Cel raw value, field 9
	markerNVMeTemp = "Temperature:"                // NVMe health log, field 1
	markerSCSITemp = "Current Drive Temperature:"  // SCSI log page, field 3
)

// Temperature extracts the Celsius reading from a report of the given
// dialect. ok is false when the report carries no usable reading; a
// genuine 0°C reading and "no reading" are never conflated.
func Temperature(dialect model.Dialect, lines []string) (int, bool) {
	switch dialect {
	case model.DialectATA:
		return ataTemperature(lines)
	case model.DialectNVMe:
		return nvmeTemperature(lines)
	case model.DialectSCSI:
		return scsiTemperature(lines)
	default:
		return 0, false
	}
}

// ataTemperature picks from three candidate sources: the SCT probe,
// then attribute 194, then attribute 190. The whole report is scanned
// first, keeping the last line seen per marker; the priority choice is
// made only after the scan completes.
func ataTemperature(lines []string) (int, bool) {
	var sct, attr194, attr190 string

	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, markerSCT):
			sct = util.FieldsAt(line, 2)
		case strings.HasPrefix(line, markerAttr194):
			attr194 = util.FieldsAt(line, 9)
		case strings.HasPrefix(line, markerAttr190):
			attr190 = util.FieldsAt(line, 9)
		}
	}

	for _, candidate := range []string{sct, attr194, attr190} {
		if v, ok := ataValue(candidate); ok {
			return v, true
		}
	}
	return 0, false
}

// ataValue validates and parses one raw ATA candidate. A candidate is
// usable only when it starts with a nonzero digit: these fields are
// known to report literal zero when the sensor is broken, so "0" reads
// as absent rather than freezing. Anything after the digits is vendor
// annotation and is dropped.
func ataValue(candidate string) (int, bool) {
	if candidate == "" || candidate[0] < '1' || candidate[0] > '9' {
		return 0, false
	}
	v, err := strconv.Atoi(util.DigitPrefix(candidate))
	if err != nil {
		return 0, false
	}
	return v, true
}

// nvmeTemperature returns the value of the first "Temperature:" line.
func nvmeTemperature(lines []string) (int, bool) {
	for _, line := range lines {
		if !strings.HasPrefix(line, markerNVMeTemp) {
			continue
		}
		v, err := strconv.Atoi(util.FieldsAt(line, 1))
		if err != nil {
			return 0, false
		}
		return v, true
	}
	return 0, false
}

// scsiTemperature returns the value of the first
// "Current Drive Temperature:" line.
func scsiTemperature(lines []string) (int, bool) {
	for _, line := range lines {
		if !strings.HasPrefix(line, markerSCSITemp) {
			continue
		}
		v, err := strconv.Atoi(util.FieldsAt(line, 3))
		if err != nil {
			return 0, false
		}
		return v, true
	}
	return 0, false
}
