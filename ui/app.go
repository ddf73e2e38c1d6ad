package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/thu1977/hddtemp/collector"
	"github.com/thu1977/hddtemp/engine"
	"github.com/thu1977/hddtemp/model"
)

// readingsMsg carries the results of one collection pass.
type readingsMsg []model.Result

// Model is the bubbletea model. There is no refresh timer: every
// reading shown was collected at startup or on an explicit 'r'.
type Model struct {
	sc      *collector.Smartctl
	devices []string

	// Display
	unit  model.Unit
	warnC int
	critC int

	// Data
	results []model.Result
	loading bool

	width  int
	height int
}

// NewModel builds the interactive view for the given devices.
func NewModel(sc *collector.Smartctl, devices []string, unit model.Unit, warnC, critC int) Model {
	return Model{
		sc:      sc,
		devices: devices,
		unit:    unit,
		warnC:   warnC,
		critC:   critC,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return collectOnce(m.sc, m.devices)
}

func collectOnce(sc *collector.Smartctl, devices []string) tea.Cmd {
	return func() tea.Msg {
		return readingsMsg(engine.ExtractAll(sc.Collect(context.Background(), devices)))
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			if !m.loading {
				m.loading = true
				return m, collectOnce(m.sc, m.devices)
			}
		case "u":
			if m.unit == model.UnitCelsius {
				m.unit = model.UnitFahrenheit
			} else {
				m.unit = model.UnitCelsius
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case readingsMsg:
		m.results = msg
		m.loading = false
	}

	return m, nil
}

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(fmt.Sprintf("hddtemp — %d devices", len(m.devices))))
	sb.WriteString("\n\n")

	if m.loading && len(m.results) == 0 {
		sb.WriteString(dimStyle.Render("Reading devices..."))
		sb.WriteString("\n")
	} else {
		sb.WriteString(m.renderTable())
	}

	sb.WriteString("\n")
	help := "r:refresh  u:°C/°F  q:quit"
	if m.loading {
		help = "refreshing...  " + help
	}
	sb.WriteString(helpStyle.Render(help))
	sb.WriteString("\n")
	return sb.String()
}

func (m Model) renderTable() string {
	rows := engine.BuildRows(m.results, m.unit, false)

	devW, nameW := len("DEVICE"), len("NAME")
	for _, row := range rows {
		if len(row.Device) > devW {
			devW = len(row.Device)
		}
		if len(row.Name) > nameW {
			nameW = len(row.Name)
		}
	}

	var sb strings.Builder
	sb.WriteString(headerStyle.Render(fmt.Sprintf("%-*s  %-*s  TEMP (%s)", devW, "DEVICE", nameW, "NAME", m.unit.Suffix())))
	sb.WriteString("\n")
	for i, row := range rows {
		res := m.results[i]
		temp := dimStyle.Render(row.Temp)
		if res.HasTemp {
			temp = tempStyle(res.Celsius, m.warnC, m.critC).Render(row.Temp)
		}
		sb.WriteString(styledPad(valueStyle.Render(row.Device), devW))
		sb.WriteString("  ")
		sb.WriteString(styledPad(valueStyle.Render(row.Name), nameW))
		sb.WriteString("  ")
		sb.WriteString(temp)
		sb.WriteString("\n")
	}
	return sb.String()
}
