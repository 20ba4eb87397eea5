package tui

import "github.com/charmbracelet/lipgloss"

// Styles는 피커의 lipgloss 스타일 모음이다.
type Styles struct {
	Title    lipgloss.Style
	Prompt   lipgloss.Style
	Normal   lipgloss.Style
	Selected lipgloss.Style
	Score    lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
}

// DefaultStyles는 기본 스타일을 반환한다.
func DefaultStyles() *Styles {
	return &Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Prompt:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Normal:   lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		Score:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Error:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
}
