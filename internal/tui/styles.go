package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/reviews/internal/model"
	"github.com/idilsaglam/reviews/internal/notify"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	optimistStyle = lipgloss.NewStyle().Italic(true).Faint(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)

	barStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)

	pillBase = lipgloss.NewStyle().Padding(0, 1).Bold(true)
	pills    = map[model.Sentiment]lipgloss.Style{
		model.SentimentPositive: pillBase.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("42")),
		model.SentimentNegative: pillBase.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("160")),
		model.SentimentNeutral:  pillBase.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("75")),
		model.SentimentPending:  pillBase.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214")),
	}
	unknownPill = pillBase.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("240"))

	toastBase   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	toastStyles = map[notify.Kind]lipgloss.Style{
		notify.KindInfo:    toastBase.BorderForeground(lipgloss.Color("12")),
		notify.KindSuccess: toastBase.BorderForeground(lipgloss.Color("42")),
		notify.KindError:   toastBase.BorderForeground(lipgloss.Color("9")),
	}
)

func pill(s model.Sentiment) string {
	style, ok := pills[s]
	if !ok {
		style = unknownPill
		s = model.SentimentUnknown
	}
	return style.Render(string(s))
}

func toastStyle(k notify.Kind) lipgloss.Style {
	if st, ok := toastStyles[k]; ok {
		return st
	}
	return toastStyles[notify.KindInfo]
}
