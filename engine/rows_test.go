package engine

import (
	"testing"

	"github.com/thu1977/hddtemp/model"
)

func ataReport() model.Report {
	return model.Report{
		Device: "/dev/sda",
		Lines: []string{
			"=== START OF INFORMATION SECTION ===",
			"Device Model:     WDC WD30EFRX-68EUZN0",
			"Serial Number:    WD-WCC4N1234567",
			attrHeader,
			"194 Temperature_Celsius     0x0022   114   099   000    Old_age   Always       -       33",
			"SCT Status Version:                  3",
			"Current Temperature:                    34 Celsius",
		},
	}
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		rep  model.Report
		want model.Result
	}{
		{
			"ata report",
			ataReport(),
			model.Result{
				Device:  "/dev/sda",
				Dialect: model.DialectATA,
				Name:    "WDC WD30EFRX-68EUZN0",
				Celsius: 34,
				HasTemp: true,
			},
		},
		{
			"scsi report",
			model.Report{
				Device: "/dev/sg1",
				Lines: []string{
					"Vendor:               SEAGATE",
					"Product:              ST373455SS",
					"Current Drive Temperature:     18 C",
				},
			},
			model.Result{
				Device:  "/dev/sg1",
				Dialect: model.DialectSCSI,
				Name:    "ST373455SS",
				Celsius: 18,
				HasTemp: true,
			},
		},
		{
			"dialect known but no reading",
			model.Report{
				Device: "/dev/sdb",
				Lines:  []string{"Device Model:     ST4000DM004-2CV104"},
			},
			model.Result{
				Device:  "/dev/sdb",
				Dialect: model.DialectATA,
				Name:    "ST4000DM004-2CV104",
			},
		},
		{
			"no marker skips temperature lines entirely",
			model.Report{
				Device: "/dev/sdc",
				Lines: []string{
					"/dev/sdc: Unknown USB bridge [0x1234:0x5678]",
					"Current Temperature:                    45 Celsius",
					"Temperature:                        38 Celsius",
				},
			},
			model.Result{Device: "/dev/sdc"},
		},
		{
			"empty report",
			model.Report{Device: "/dev/sdd"},
			model.Result{Device: "/dev/sdd"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.rep)
			if got != tt.want {
				t.Errorf("Extract() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestExtractIdempotent(t *testing.T) {
	rep := ataReport()
	first := Extract(rep)
	second := Extract(rep)
	if first != second {
		t.Errorf("Extract() not idempotent: first %+v, second %+v", first, second)
	}
}

func TestBuildRow(t *testing.T) {
	present := model.Result{
		Device:  "/dev/sda",
		Dialect: model.DialectATA,
		Name:    "WDC WD30EFRX-68EUZN0",
		Celsius: 34,
		HasTemp: true,
	}
	absent := model.Result{Device: "/dev/sdc"}

	tests := []struct {
		name    string
		res     model.Result
		unit    model.Unit
		classic bool
		want    model.Row
	}{
		{
			"celsius column mode",
			present, model.UnitCelsius, false,
			model.Row{Device: "/dev/sda", Name: "WDC WD30EFRX-68EUZN0", Temp: "34"},
		},
		{
			"fahrenheit converts at output",
			present, model.UnitFahrenheit, false,
			model.Row{Device: "/dev/sda", Name: "WDC WD30EFRX-68EUZN0", Temp: "93"},
		},
		{
			"classic adds suffix",
			present, model.UnitCelsius, true,
			model.Row{Device: "/dev/sda", Name: "WDC WD30EFRX-68EUZN0", Temp: "34", Suffix: "°C"},
		},
		{
			"classic fahrenheit suffix",
			present, model.UnitFahrenheit, true,
			model.Row{Device: "/dev/sda", Name: "WDC WD30EFRX-68EUZN0", Temp: "93", Suffix: "°F"},
		},
		{
			"absent renders placeholders",
			absent, model.UnitCelsius, false,
			model.Row{Device: "/dev/sdc", Name: "?", Temp: "?"},
		},
		{
			"absent never carries a suffix",
			absent, model.UnitFahrenheit, true,
			model.Row{Device: "/dev/sdc", Name: "?", Temp: "?"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildRow(tt.res, tt.unit, tt.classic)
			if got != tt.want {
				t.Errorf("BuildRow() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBuildRowLeavesCelsiusUntouched(t *testing.T) {
	res := model.Result{Device: "/dev/sda", Dialect: model.DialectATA, Name: "X", Celsius: 21, HasTemp: true}
	if row := BuildRow(res, model.UnitFahrenheit, false); row.Temp != "70" {
		t.Fatalf("first conversion = %q, want %q", row.Temp, "70")
	}
	if res.Celsius != 21 {
		t.Fatalf("Celsius mutated to %d", res.Celsius)
	}
	if row := BuildRow(res, model.UnitFahrenheit, false); row.Temp != "70" {
		t.Errorf("second conversion = %q, want %q", row.Temp, "70")
	}
}
