// Package tui is the interactive terminal front end for the review client.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/reviews/internal/model"
	"github.com/idilsaglam/reviews/internal/notify"
	"github.com/idilsaglam/reviews/internal/reconcile"
)

// listItem adapts model.Item to bubbles/list.Item
type listItem struct {
	model.Item
}

func (i listItem) FilterValue() string { return i.Text }

type keyMap struct {
	Analyze, Search, Refresh, Copy, Info, Dismiss, Detail key.Binding
}

var keys = keyMap{
	Analyze: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "analyze")),
	Search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Copy:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy key points")),
	Info:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "info")),
	Dismiss: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "dismiss")),
	Detail:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
}

func (k keyMap) bindings() []key.Binding {
	return []key.Binding{k.Analyze, k.Search, k.Refresh, k.Copy, k.Info, k.Dismiss, k.Detail}
}

// Model is the Bubble Tea model. All reconciler state changes happen in
// Update; capability calls run as commands.
type Model struct {
	ctx context.Context
	rec *reconcile.Reconciler

	list   list.Model
	input  textinput.Model // review text
	search textinput.Model
	spin   spinner.Model
	md     *markdown

	adding     bool
	searching  bool
	showDetail bool
	query      string

	width, height int
}

// New builds the model. The first reload starts from Init.
func New(ctx context.Context, rec *reconcile.Reconciler) Model {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.Title = "Results"
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.SetStatusBarItemName("item", "items")
	l.AdditionalShortHelpKeys = keys.bindings
	l.AdditionalFullHelpKeys = keys.bindings

	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = "Write a product review here..."
	in.CharLimit = 2000

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "Search results..."
	search.CharLimit = 200

	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(pendingStyle))

	return Model{
		ctx:    ctx,
		rec:    rec,
		list:   l,
		input:  in,
		search: search,
		spin:   sp,
		md:     newMarkdown(),
		width:  80,
		height: 24,
	}
}

// Run starts the program and blocks until the user quits.
func Run(ctx context.Context, rec *reconcile.Reconciler, notes *notify.Center) error {
	p := tea.NewProgram(New(ctx, rec), tea.WithAltScreen(), tea.WithContext(ctx))
	notes.OnExpire(func(id uint64) { p.Send(expiredMsg{id: id}) })
	defer notes.OnExpire(nil)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func (m Model) Init() tea.Cmd {
	m.rec.BeginReload()
	return tea.Batch(m.spin.Tick, fetchCmd(m.ctx, m.rec))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case analyzedMsg:
		m.rec.FinishSubmit(msg.sub, msg.item, msg.err)
		cmd := m.refresh()
		return m, cmd

	case reloadedMsg:
		m.rec.FinishReload(msg.items, msg.err)
		cmd := m.refresh()
		return m, cmd

	case copiedMsg:
		m.rec.FinishCopy(msg.err)
		return m, nil

	case expiredMsg:
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.adding {
			return m.updateAdding(msg)
		}
		if m.searching {
			return m.updateSearching(msg)
		}
		return m.updateBrowsing(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		sub, err := m.rec.BeginSubmit(m.input.Value())
		if err != nil {
			return m, nil
		}
		// Clear right away so the next review can be typed while this one is analyzed.
		m.input.SetValue("")
		m.input.Blur()
		m.adding = false
		cmd := m.refresh()
		return m, tea.Batch(cmd, analyzeCmd(m.ctx, m.rec, sub))
	case tea.KeyEsc:
		m.input.SetValue("")
		m.input.Blur()
		m.adding = false
		m.rec.ClearFormError()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateSearching(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		return m, nil
	case tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.query = ""
		cmd := m.refresh()
		return m, cmd
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.query = m.search.Value()
	refresh := m.refresh()
	return m, tea.Batch(cmd, refresh)
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "q":
		return m, tea.Quit

	case msg.Type == tea.KeyEsc:
		switch {
		case m.rec.FormError() != "":
			m.rec.ClearFormError()
		case m.showDetail:
			m.showDetail = false
		case m.query != "":
			m.query = ""
			m.search.SetValue("")
			cmd := m.refresh()
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, keys.Analyze):
		if m.rec.Submitting() {
			return m, nil
		}
		m.adding = true
		cmd := m.input.Focus()
		return m, cmd

	case key.Matches(msg, keys.Search):
		m.searching = true
		cmd := m.search.Focus()
		return m, cmd

	case key.Matches(msg, keys.Refresh):
		if m.rec.Fetching() {
			return m, nil
		}
		m.rec.BeginReload()
		return m, fetchCmd(m.ctx, m.rec)

	case key.Matches(msg, keys.Copy):
		if it, ok := m.selected(); ok {
			return m, copyCmd(m.rec, it.KeyPoints)
		}
		return m, nil

	case key.Matches(msg, keys.Info):
		if it, ok := m.selected(); ok {
			m.rec.ShowInfo(it)
		}
		return m, nil

	case key.Matches(msg, keys.Dismiss):
		m.rec.DismissLatest()
		return m, nil

	case key.Matches(msg, keys.Detail):
		m.showDetail = !m.showDetail
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// refresh recomputes the visible rows from the store and the current query.
func (m *Model) refresh() tea.Cmd {
	visible := m.rec.Visible(m.query)
	items := make([]list.Item, 0, len(visible))
	for _, it := range visible {
		items = append(items, listItem{Item: it})
	}
	m.list.Title = resultsTitle(len(items))
	return m.list.SetItems(items)
}

func resultsTitle(n int) string {
	if n == 1 {
		return "Results  1 review"
	}
	return fmt.Sprintf("Results  %d reviews", n)
}

func (m Model) selected() (model.Item, bool) {
	li, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return model.Item{}, false
	}
	return li.Item, true
}
