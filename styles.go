package main

import "github.com/charmbracelet/lipgloss"

// Sphere grid geometry. The horizontal plot radius is roughly twice the
// vertical one so the projected circle looks round in 1:2 terminal cells.
const (
	sphereW  = 57 // canvas width in cells
	sphereH  = 25 // canvas height in cells
	sphereCX = 28 // sphere centre column
	sphereCY = 12 // sphere centre row

	plotRadiusX    = 22.0
	plotRadiusY    = 10.0
	axisLabelScale = 1.18 // axis labels sit just outside the sphere
)

// Lipgloss styles used across the renderer and TUI.
var (
	sphereStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7aa2f7")).
			Padding(0, 1)

	readoutStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#bb9af7")).
			Padding(0, 1)

	controlsStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#9ece6a")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff9e64"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89"))

	axisStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7dcfff"))

	gateStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#73daca"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e0af68"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#f7768e"))

	menuBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#ff9e64")).
			Padding(0, 1)

	menuSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#ff9e64"))

	menuNormalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0caf5"))
)

// stepPalette colors trajectory markers by step, cycling like the
// reference plots cycled C0..C9.
var stepPalette = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("#7aa2f7")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#ff9e64")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#9ece6a")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#f7768e")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#bb9af7")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#e0af68")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#7dcfff")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#73daca")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#c0caf5")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#41a6b5")),
}
