// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/lusolve/lu"
	"github.com/katalvlaran/lusolve/matrix"
	"github.com/katalvlaran/lusolve/system"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ffff"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)
)

func field(label, value string) string {
	return labelStyle.Render(fmt.Sprintf("%-9s", label)) + " " + valueStyle.Render(value)
}

func formatVec(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprintf("%.4f", x)
	}

	return "[" + strings.Join(parts, " ") + "]"
}

func formatMatrix(m matrix.Matrix) (string, error) {
	rows, err := matrix.ToRows(m)
	if err != nil {
		return "", err
	}
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = formatVec(r)
	}

	return strings.Join(lines, "\n"), nil
}

func renderReport(r *system.Report) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(r.Name),
		field("x", formatVec(r.X)),
		field("residual", fmt.Sprintf("%.3e", r.Residual)),
		field("det", fmt.Sprintf("%.4f", r.Det)),
		field("pivots", fmt.Sprint(r.Pivots)),
	)

	return panelStyle.Render(body)
}

func renderFactorization(name string, f *lu.Factorization) (string, error) {
	l, err := formatMatrix(f.L())
	if err != nil {
		return "", err
	}
	u, err := formatMatrix(f.U())
	if err != nil {
		return "", err
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(name),
		labelStyle.Render("L"),
		valueStyle.Render(l),
		labelStyle.Render("U"),
		valueStyle.Render(u),
		field("pivots", fmt.Sprint(f.Pivots())),
	)

	return panelStyle.Render(body), nil
}
