package model

import "fmt"

// Dialect identifies which report vocabulary smartctl used for a device.
type Dialect int

const (
	DialectUnknown Dialect = iota
	DialectATA
	DialectNVMe
	DialectSCSI
)

// String returns the short dialect label.
func (d Dialect) String() string {
	switch d {
	case DialectATA:
		return "ata"
	case DialectNVMe:
		return "nvme"
	case DialectSCSI:
		return "scsi"
	default:
		return "unknown"
	}
}

// Unit is the temperature scale applied uniformly to one run.
type Unit int

const (
	UnitCelsius Unit = iota
	UnitFahrenheit
)

// ParseUnit accepts the flag/config spellings "C" and "F".
func ParseUnit(s string) (Unit, error) {
	switch s {
	case "C", "c":
		return UnitCelsius, nil
	case "F", "f":
		return UnitFahrenheit, nil
	default:
		return UnitCelsius, fmt.Errorf("unknown unit %q (want C or F)", s)
	}
}

// Letter returns the bare scale letter used by the TCP wire format.
func (u Unit) Letter() string {
	if u == UnitFahrenheit {
		return "F"
	}
	return "C"
}

// Suffix returns the degree suffix used by the classic layout.
func (u Unit) Suffix() string {
	return "°" + u.Letter()
}

// Report is the captured smartctl output for one device. Lines keep
// their original order; a Report is never modified after capture.
type Report struct {
	Device string   // e.g., "/dev/sda", "/dev/nvme0n1"
	Lines  []string
}

// Result is one device's classified and extracted outcome.
type Result struct {
	Device  string
	Dialect Dialect
	Name    string // empty when no identification marker matched
	Celsius int    // meaningful only when HasTemp
	HasTemp bool   // false means no reading; a real 0°C keeps HasTemp true
}

// Row is the formatter-facing view of a Result. Absent values carry the
// "?" placeholder.
type Row struct {
	Device string `json:"device"`
	Name   string `json:"name"`
	Temp   string `json:"temp"`
	Suffix string `json:"suffix,omitempty"` // "°C"/"°F" in classic mode only
}
