package shared

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	dimStyle    = lipgloss.NewStyle().Faint(true)
	cyanStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	yellowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	blueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	boldStyle   = lipgloss.NewStyle().Bold(true)
)

func Dim(s string) string    { return dimStyle.Render(s) }
func Cyan(s string) string   { return cyanStyle.Render(s) }
func Green(s string) string  { return greenStyle.Render(s) }
func Yellow(s string) string { return yellowStyle.Render(s) }
func Red(s string) string    { return redStyle.Render(s) }
func Blue(s string) string   { return blueStyle.Render(s) }
func Bold(s string) string   { return boldStyle.Render(s) }
