package server

import (
	"testing"

	"github.com/thu1977/hddtemp/model"
)

func TestPayload(t *testing.T) {
	results := []model.Result{
		{Device: "/dev/sda", Dialect: model.DialectATA, Name: "ST3250620AS", Celsius: 40, HasTemp: true},
		{Device: "/dev/sdb", Dialect: model.DialectATA, Name: "WDC WD30EFRX-68EUZN0", Celsius: 21, HasTemp: true},
		{Device: "/dev/sdc"},
	}

	tests := []struct {
		name    string
		results []model.Result
		unit    model.Unit
		want    string
	}{
		{
			"celsius batch",
			results,
			model.UnitCelsius,
			"|/dev/sda|ST3250620AS|40|C||/dev/sdb|WDC WD30EFRX-68EUZN0|21|C||/dev/sdc|?|?|C|",
		},
		{
			"fahrenheit converts and flips the letter",
			results[:2],
			model.UnitFahrenheit,
			"|/dev/sda|ST3250620AS|104|F||/dev/sdb|WDC WD30EFRX-68EUZN0|70|F|",
		},
		{
			"empty batch",
			nil,
			model.UnitCelsius,
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Payload(tt.results, tt.unit)
			if got != tt.want {
				t.Errorf("Payload() = %q, want %q", got, tt.want)
			}
		})
	}
}
