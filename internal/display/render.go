// Package display shows player frames, either as a full-screen panel on a
// terminal or as plain caption lines on any other writer.
package display

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/AdmajaBahari/lirik/internal/player"
	"github.com/AdmajaBahari/lirik/internal/waveform"
)

const credit = "code by bahar"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#22d3ee"))

	waveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#d946ef"))

	mainStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#fafafa"))

	supportStyle = lipgloss.NewStyle().
			Faint(true).
			Italic(true).
			Foreground(lipgloss.Color("#67e8f9"))

	clockStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde047"))

	creditStyle = lipgloss.NewStyle().
			Faint(true).
			Foreground(lipgloss.Color("#d4d4d8"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3b82f6")).
			Padding(1, 2)
)

// Render composes the panel for one frame.
func Render(title string, f player.Frame) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("🎵 "+title),
		"",
		waveStyle.Render(waveform.Bar(f.Bar)),
		"",
		mainStyle.Render(f.Main),
		supportStyle.Render(f.Support),
		"",
		clockStyle.Render(Clock(f)),
		creditStyle.Render(credit),
	)
	return panelStyle.Render(content)
}

// Clock formats the elapsed-time readout.
func Clock(f player.Frame) string {
	return fmt.Sprintf("⏱️  %.1fs / %.1fs", f.Elapsed.Seconds(), f.Total.Seconds())
}
