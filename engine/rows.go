package engine

import (
	"strconv"

	"github.com/thu1977/hddtemp/model"
)

// Placeholder stands in for a name or reading that could not be
// determined.
const Placeholder = "?"

// Extract classifies one report and pulls its temperature. A report
// with no recognizable identification marker keeps DialectUnknown and
// is never scanned for a temperature. Extract reads nothing but its
// argument, so callers may run it concurrently across devices.
func Extract(rep model.Report) model.Result {
	res := model.Result{Device: rep.Device}
	res.Dialect, res.Name = Classify(rep.Lines)
	if res.Dialect == model.DialectUnknown {
		return res
	}
	res.Celsius, res.HasTemp = Temperature(res.Dialect, rep.Lines)
	return res
}

// ExtractAll maps reports to results, preserving order.
func ExtractAll(reports []model.Report) []model.Result {
	results := make([]model.Result, len(reports))
	for i, rep := range reports {
		results[i] = Extract(rep)
	}
	return results
}

// BuildRow renders a Result for one output unit. Conversion to
// Fahrenheit happens here, at output time, leaving the stored Celsius
// value untouched. In classic mode a present reading carries the degree
// suffix; placeholders never claim a unit.
func BuildRow(res model.Result, unit model.Unit, classic bool) model.Row {
	row := model.Row{Device: res.Device, Name: Placeholder, Temp: Placeholder}
	if res.Name != "" {
		row.Name = res.Name
	}
	if res.HasTemp {
		v := res.Celsius
		if unit == model.UnitFahrenheit {
			v = Fahrenheit(v)
		}
		row.Temp = strconv.Itoa(v)
		if classic {
			row.Suffix = unit.Suffix()
		}
	}
	return row
}

// BuildRows maps results to rows, preserving order.
func BuildRows(results []model.Result, unit model.Unit, classic bool) []model.Row {
	rows := make([]model.Row, len(results))
	for i, res := range results {
		rows[i] = BuildRow(res, unit, classic)
	}
	return rows
}
