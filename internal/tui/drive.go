// Package tui provides an interactive terminal driving view built on
// Bubble Tea. One key per car operation, with live subsystem panels, the
// current policy verdicts, and a scrolling event log.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/carsim/internal/car"
	"github.com/san-kum/carsim/internal/logging"
	"github.com/san-kum/carsim/internal/policy"
	"github.com/san-kum/carsim/internal/vehicle"
)

const eventLogLines = 10

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	noStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// eventLog collects car events for the view.
type eventLog struct {
	events []car.Event
}

func (l *eventLog) OnOp(ev car.Event) {
	l.events = append(l.events, ev)
}

// Model is the interactive driving session.
type Model struct {
	car      *car.Car
	pol      policy.Policy
	events   *eventLog
	speed    int // last commanded speed
	brake    int // last commanded brake force
	angle    int // last commanded wheel angle
	showHelp bool
}

// NewModel builds a fresh car for an interactive session. Console logging is
// discarded; the view renders state directly.
func NewModel() Model {
	log := logging.Discard()
	pol := policy.NewDefault()
	c := car.New(log,
		vehicle.NewEngine(log),
		vehicle.NewTransmission(log),
		vehicle.NewSteeringSystem(log),
		vehicle.NewBrakingSystem(log),
		pol,
	)
	events := &eventLog{}
	c.AddObserver(events)
	return Model{car: c, pol: pol, events: events}
}

// Run starts the interactive driving program.
func Run() error {
	p := tea.NewProgram(NewModel())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

// Update maps keys to car operations.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "?":
		m.showHelp = !m.showHelp
	case "s":
		m.car.Start()
	case "x":
		m.car.Stop()
	case "u":
		m.car.ShiftUp()
	case "d":
		m.car.ShiftDown()
	case "r":
		m.car.Reverse()
	case "up":
		m.speed += 10
		m.car.Accelerate(m.speed)
	case "down":
		m.speed -= 10
		if m.speed < 0 {
			m.speed = 0
		}
		m.car.Accelerate(m.speed)
	case "left":
		m.angle -= 5
		m.car.TurnWheel(m.angle)
	case "right":
		m.angle += 5
		m.car.TurnWheel(m.angle)
	case "0":
		m.angle = 0
		m.car.StraightenWheels()
	case "b":
		m.brake += 10
		if m.brake > vehicle.MaxBrakeForce {
			m.brake = vehicle.MaxBrakeForce
		}
		m.car.ApplyBrakes(m.brake)
	case "B":
		m.brake = 0
		m.car.ApplyBrakes(0)
	case "e":
		m.brake = vehicle.MaxBrakeForce
		m.car.ApplyEmergencyBrakes()
	}

	// Commanded values track what the subsystems actually accepted.
	st := m.car.State()
	m.speed = st.Speed
	m.brake = st.BrakeForce
	m.angle = st.SteeringAngle

	return m, nil
}

func (m Model) View() string {
	st := m.car.State()

	var b strings.Builder
	b.WriteString(headerStyle.Render("carsim — interactive drive"))
	b.WriteString("\n")

	status := m.statusPanel(st)
	verdicts := m.verdictPanel(st)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, status, " ", verdicts))
	b.WriteString("\n")
	b.WriteString(panelStyle.Render(m.eventLines()))
	b.WriteString("\n")

	if m.showHelp {
		b.WriteString(helpStyle.Render(
			"s start  x stop  u/d shift  r reverse  ↑/↓ speed  ←/→ steer\n" +
				"0 straighten  b brake +10  B release  e emergency  q quit"))
	} else {
		b.WriteString(helpStyle.Render("? help  q quit"))
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) statusPanel(st car.Snapshot) string {
	engine := noStyle.Render("off")
	if st.EngineActive {
		engine = okStyle.Render("running")
	}

	rows := []string{
		labelStyle.Render("engine") + valueStyle.Render(engine),
		labelStyle.Render("gear") + valueStyle.Render(st.Gear.String()),
		labelStyle.Render("speed") + valueStyle.Render(fmt.Sprintf("%d km/h", st.Speed)),
		labelStyle.Render("brakes") + valueStyle.Render(fmt.Sprintf("%d/%d", st.BrakeForce, vehicle.MaxBrakeForce)),
		labelStyle.Render("wheel") + valueStyle.Render(fmt.Sprintf("%+d°", st.SteeringAngle)),
	}
	return panelStyle.Render(strings.Join(rows, "\n"))
}

func (m Model) verdictPanel(st car.Snapshot) string {
	obs := policy.Observed{
		EngineOn: st.EngineActive,
		Selector: st.Gear,
		BrakeOn:  st.BrakeForce > 0,
	}

	verdict := func(name string, ok bool) string {
		mark := noStyle.Render("✗")
		if ok {
			mark = okStyle.Render("✓")
		}
		return labelStyle.Render(name) + mark
	}

	rows := []string{
		verdict("start", m.pol.CanStart(obs, obs, obs)),
		verdict("stop", m.pol.CanStop(obs, obs)),
		verdict("accel", m.pol.CanAccelerate(obs, obs, obs)),
		verdict("reverse", m.pol.CanReverse(obs, obs)),
	}
	return panelStyle.Render(strings.Join(rows, "\n"))
}

func (m Model) eventLines() string {
	evs := m.events.events
	if len(evs) == 0 {
		return dimStyle.Render("no operations yet")
	}
	start := 0
	if len(evs) > eventLogLines {
		start = len(evs) - eventLogLines
	}

	lines := make([]string, 0, eventLogLines)
	for _, ev := range evs[start:] {
		mark := noStyle.Render("rejected")
		if ev.Accepted {
			mark = okStyle.Render("ok")
		}
		line := fmt.Sprintf("%3d  %-18s %s", ev.Step, ev.Op, mark)
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
