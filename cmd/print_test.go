package cmd

import (
	"bytes"
	"testing"

	"github.com/thu1977/hddtemp/model"
)

// blankColors empties the ANSI palette so expected output is plain text.
func blankColors() {
	R, D, FGrn, FBRed, FBYel = "", "", "", "", ""
}

func TestPrintColumns(t *testing.T) {
	blankColors()

	results := []model.Result{
		{Device: "/dev/sda", Dialect: model.DialectATA, Name: "WDC WD30EFRX-68EUZN0", Celsius: 34, HasTemp: true},
		{Device: "/dev/nvme0", Dialect: model.DialectNVMe, Name: "Samsung SSD 970", Celsius: 57, HasTemp: true},
		{Device: "/dev/sdc"},
	}
	rows := []model.Row{
		{Device: "/dev/sda", Name: "WDC WD30EFRX-68EUZN0", Temp: "34"},
		{Device: "/dev/nvme0", Name: "Samsung SSD 970", Temp: "57"},
		{Device: "/dev/sdc", Name: "?", Temp: "?"},
	}

	var buf bytes.Buffer
	printColumns(&buf, rows, results, 45, 55)

	want := "DEVICE      NAME                  TEMP\n" +
		"/dev/sda    WDC WD30EFRX-68EUZN0  34\n" +
		"/dev/nvme0  Samsung SSD 970       57\n" +
		"/dev/sdc    ?                     ?\n"
	if buf.String() != want {
		t.Errorf("printColumns() =\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestPrintClassic(t *testing.T) {
	blankColors()

	rows := []model.Row{
		{Device: "/dev/sda", Name: "ST4000DM004-2CV104", Temp: "34", Suffix: "°C"},
		{Device: "/dev/sdb", Name: "?", Temp: "?"},
	}

	var buf bytes.Buffer
	printClassic(&buf, rows)

	want := "/dev/sda: ST4000DM004-2CV104: 34°C\n/dev/sdb: ?: ?\n"
	if buf.String() != want {
		t.Errorf("printClassic() = %q, want %q", buf.String(), want)
	}
}

func TestPrintNumeric(t *testing.T) {
	blankColors()

	rows := []model.Row{
		{Device: "/dev/sda", Name: "X", Temp: "34"},
		{Device: "/dev/sdb", Name: "?", Temp: "?"},
	}

	var buf bytes.Buffer
	printNumeric(&buf, rows)

	want := "34\n?\n"
	if buf.String() != want {
		t.Errorf("printNumeric() = %q, want %q", buf.String(), want)
	}
}

func TestCtemp(t *testing.T) {
	R, D, FGrn, FBRed, FBYel = "[R]", "[D]", "[G]", "[C]", "[W]"
	defer blankColors()

	tests := []struct {
		name string
		text string
		res  model.Result
		want string
	}{
		{"ok", "30", model.Result{Celsius: 30, HasTemp: true}, "[G]30[R]"},
		{"warn", "45", model.Result{Celsius: 45, HasTemp: true}, "[W]45[R]"},
		{"crit", "55", model.Result{Celsius: 55, HasTemp: true}, "[C]55[R]"},
		{"fahrenheit text celsius threshold", "131", model.Result{Celsius: 55, HasTemp: true}, "[C]131[R]"},
		{"absent dim", "?", model.Result{}, "[D]?[R]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ctemp(tt.text, tt.res, 45, 55)
			if got != tt.want {
				t.Errorf("ctemp(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
