package main

import (
	"fmt"
	"strings"
)

// menuItem is a single gate choice in the picker.
type menuItem struct {
	name       string
	gateType   string
	needsAngle bool
	hint       string
}

// gateMenu lists the catalog in picker order: fixed gates, then rotations.
var gateMenu = []menuItem{
	{name: "Hadamard", gateType: "H"},
	{name: "Pauli-X (NOT)", gateType: "X"},
	{name: "Pauli-Y", gateType: "Y"},
	{name: "Pauli-Z", gateType: "Z"},
	{name: "Phase (S)", gateType: "S"},
	{name: "T Gate", gateType: "T"},
	{name: "Rotate X", gateType: "RX", needsAngle: true, hint: "pi/2"},
	{name: "Rotate Y", gateType: "RY", needsAngle: true, hint: "pi/2"},
	{name: "Rotate Z", gateType: "RZ", needsAngle: true, hint: "pi/2"},
}

// renderMenu renders the floating gate-picker popup.
func (m Model) renderMenu() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Add Gate"))
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render(strings.Repeat("─", 30)))
	sb.WriteString("\n")

	for i, item := range gateMenu {
		if i == m.menuIdx {
			sb.WriteString(menuSelectedStyle.Render(" ▸ "))
			sb.WriteString(menuSelectedStyle.Render(fmt.Sprintf("%-16s", item.name)))
			sb.WriteString(gateStyle.Render(item.gateType))
		} else {
			sb.WriteString("   ")
			sb.WriteString(menuNormalStyle.Render(fmt.Sprintf("%-16s", item.name)))
			sb.WriteString(dimStyle.Render(item.gateType))
		}
		if item.needsAngle {
			sb.WriteString(dimStyle.Render(fmt.Sprintf(" (%s)", item.hint)))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(dimStyle.Render(" ↑↓ Select  ⏎ Ok  Esc ✕"))

	return menuBorderStyle.Render(sb.String())
}

// renderAngleInput renders the rotation-angle input overlay.
func (m Model) renderAngleInput() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(fmt.Sprintf("Angle for %s", m.pendingGate)))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("Radians: %s_", m.angleInput))
	sb.WriteString("\n\n")
	sb.WriteString(dimStyle.Render("Examples: pi/2, 3*pi/4, 1.57"))
	return menuBorderStyle.Render(sb.String())
}
