// Copyright 2026 The Tailieu Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

// Colour modes accepted by --color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ColorFlags is an embeddable parameter group adding --color.
type ColorFlags struct {
	Color string `json:"-" flag:"color" desc:"colorize output: auto, always, never" default:"auto"`
}

// Theme returns the styles for writing to w under the selected colour
// mode. In auto mode lipgloss inspects w (and NO_COLOR) itself.
func (f *ColorFlags) Theme(w io.Writer) (*Theme, error) {
	renderer := lipgloss.NewRenderer(w)
	switch f.Color {
	case ColorAuto, "":
	case ColorAlways:
		renderer.SetColorProfile(termenv.TrueColor)
	case ColorNever:
		renderer.SetColorProfile(termenv.Ascii)
	default:
		return nil, Validation("--color must be one of %s, %s, %s (got %q)", ColorAuto, ColorAlways, ColorNever, f.Color)
	}
	return NewTheme(renderer), nil
}

// Theme holds the lipgloss styles shared by report-style commands.
type Theme struct {
	Heading lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Faint   lipgloss.Style
	OK      lipgloss.Style
	Fail    lipgloss.Style
	Warn    lipgloss.Style
}

// accent is the extension's brand blue.
var accent = lipgloss.Color("#667eea")

// NewTheme builds the crxicon styles on renderer.
func NewTheme(renderer *lipgloss.Renderer) *Theme {
	return &Theme{
		Heading: renderer.NewStyle().Bold(true).Foreground(accent),
		Label:   renderer.NewStyle().Foreground(lipgloss.Color("7")),
		Value:   renderer.NewStyle().Bold(true),
		Faint:   renderer.NewStyle().Faint(true),
		OK:      renderer.NewStyle().Foreground(lipgloss.Color("2")),
		Fail:    renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		Warn:    renderer.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

// Table renders rows as left-aligned columns separated by three spaces.
// Cells may already carry ANSI styling; widths are measured on the
// visible text so coloured and plain cells line up.
func Table(rows [][]string) string {
	var widths []int
	for _, row := range rows {
		for column, cell := range row {
			if column >= len(widths) {
				widths = append(widths, 0)
			}
			widths[column] = max(widths[column], ansi.StringWidth(cell))
		}
	}

	var builder strings.Builder
	for _, row := range rows {
		for column, cell := range row {
			builder.WriteString(cell)
			if column == len(row)-1 {
				break
			}
			builder.WriteString(strings.Repeat(" ", widths[column]-ansi.StringWidth(cell)+3))
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}
