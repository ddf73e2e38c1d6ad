package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/thu1977/hddtemp/model"
)

// ── ANSI color/style codes ──────────────────────────────────────────────────

var (
	R = "\033[0m" // reset
	D = "\033[2m" // dim

	FGrn  = "\033[32m"
	FBRed = "\033[91m"
	FBYel = "\033[93m"
)

// initColors blanks the palette when colors are disabled or stdout is
// not a terminal.
func initColors(noColor bool) {
	if !noColor && isTerminal() {
		return
	}
	R, D, FGrn, FBRed, FBYel = "", "", "", "", ""
}

func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// ctemp colors a temperature cell by the Celsius thresholds; display
// text may already be converted to Fahrenheit, the thresholds are not.
func ctemp(text string, res model.Result, warnC, critC int) string {
	if !res.HasTemp {
		return D + text + R
	}
	switch {
	case res.Celsius >= critC:
		return FBRed + text + R
	case res.Celsius >= warnC:
		return FBYel + text + R
	default:
		return FGrn + text + R
	}
}

// printColumns renders the default aligned layout. Temperatures sit in
// the last column so coloring never disturbs the padding.
func printColumns(w io.Writer, rows []model.Row, results []model.Result, warnC, critC int) {
	devW, nameW := len("DEVICE"), len("NAME")
	for _, row := range rows {
		if len(row.Device) > devW {
			devW = len(row.Device)
		}
		if len(row.Name) > nameW {
			nameW = len(row.Name)
		}
	}

	fmt.Fprintf(w, "%s%-*s  %-*s  TEMP%s\n", D, devW, "DEVICE", nameW, "NAME", R)
	for i, row := range rows {
		fmt.Fprintf(w, "%-*s  %-*s  %s\n",
			devW, row.Device, nameW, row.Name, ctemp(row.Temp, results[i], warnC, critC))
	}
}

// printClassic renders the legacy one-line-per-device layout:
// "/dev/sda: ST4000DM004-2CV104: 34°C".
func printClassic(w io.Writer, rows []model.Row) {
	for _, row := range rows {
		fmt.Fprintf(w, "%s: %s: %s%s\n", row.Device, row.Name, row.Temp, row.Suffix)
	}
}

// printNumeric prints bare values for scripting.
func printNumeric(w io.Writer, rows []model.Row) {
	for _, row := range rows {
		fmt.Fprintln(w, row.Temp)
	}
}
