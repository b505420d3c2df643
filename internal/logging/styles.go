package logging

import "github.com/charmbracelet/lipgloss"

// Component names used across the simulator.
const (
	CompCar          = "car"
	CompEngine       = "engine"
	CompTransmission = "transmission"
	CompSteering     = "steering"
	CompBrakes       = "brakes"
)

// Style table for component prefixes. lipgloss degrades to plain text on
// non-color terminals, so the table is safe to apply unconditionally.
var styles = map[string]lipgloss.Style{
	CompCar:          lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
	CompEngine:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	CompTransmission: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	CompSteering:     lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
	CompBrakes:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
}

var defaultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Render returns the component name in its table style.
func Render(name string) string {
	st, ok := styles[name]
	if !ok {
		st = defaultStyle
	}
	return st.Render(name)
}
