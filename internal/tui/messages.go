package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/reviews/internal/model"
	"github.com/idilsaglam/reviews/internal/reconcile"
)

type analyzedMsg struct {
	sub  reconcile.Submission
	item model.Item
	err  error
}

type reloadedMsg struct {
	items []model.Item
	err   error
}

type copiedMsg struct {
	err error
}

// expiredMsg arrives from a notification timer so the toast list re-renders.
type expiredMsg struct {
	id uint64
}

// Capability calls run as commands off the update loop; their results come
// back as messages and are applied in Update.

func analyzeCmd(ctx context.Context, rec *reconcile.Reconciler, sub reconcile.Submission) tea.Cmd {
	return func() tea.Msg {
		item, err := rec.Analyze(ctx, sub)
		return analyzedMsg{sub: sub, item: item, err: err}
	}
}

func fetchCmd(ctx context.Context, rec *reconcile.Reconciler) tea.Cmd {
	return func() tea.Msg {
		items, err := rec.Fetch(ctx)
		return reloadedMsg{items: items, err: err}
	}
}

func copyCmd(rec *reconcile.Reconciler, text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: rec.WriteClipboard(text)}
	}
}
