package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const appTitle = "Product Review Analyzer"

// Custom delegate: a header row with the sentiment pill and a muted key points row.
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 2 }
func (d itemDelegate) Spacing() int                              { return 1 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	width := m.Width() - 4
	if width < 20 {
		width = 20
	}

	text := clip(it.Text, width-24)
	if it.Optimistic {
		text = optimistStyle.Render(text)
	}
	head := fmt.Sprintf("%s %s %s", pill(it.Sentiment), text, mutedStyle.Render("id: "+it.ID.Display()))

	body := mutedStyle.Render(clip(firstLine(it.KeyPoints), width))
	if !it.Resolved() {
		body = pendingStyle.Render("◌ Processing…")
	}

	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintf(w, "%s%s\n  %s", prefix, head, body)
}

func (m Model) View() string {
	w, h := m.width, m.height

	sections := []string{m.headerView(w)}
	if msg := m.rec.FormError(); msg != "" {
		sections = append(sections, errorStyle.Render("✖ "+msg))
	}
	if toasts := m.toastsView(); toasts != "" {
		sections = append(sections, toasts)
	}
	var footer []string
	if m.showDetail {
		footer = append(footer, m.detailView(w-4))
	}
	if bar := m.inputView(); bar != "" {
		footer = append(footer, bar)
	}

	used := 2 // outer panel border
	for _, s := range sections {
		used += lipgloss.Height(s)
	}
	for _, s := range footer {
		used += lipgloss.Height(s)
	}
	listHeight := h - used
	if listHeight < 4 {
		listHeight = 4
	}
	m.list.SetSize(w-4, listHeight)

	content := append(sections, m.list.View())
	content = append(content, footer...)
	return panelString(lipgloss.JoinVertical(lipgloss.Left, content...))
}

func (m Model) headerView(width int) string {
	title := titleStyle.Render(appTitle)
	var status []string
	if m.rec.Submitting() {
		status = append(status, m.spin.View()+" Analyzing...")
	}
	if m.rec.Fetching() {
		status = append(status, m.spin.View()+" Refreshing")
	}
	right := accentStyle.Render(strings.Join(status, "  "))
	if len(status) == 0 {
		right = helpStyle.Render("a analyze · r refresh · q quit")
	}
	gap := width - 4 - lipgloss.Width(title) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + right
}

func (m Model) toastsView() string {
	notes := m.rec.Notifications()
	if len(notes) == 0 {
		return ""
	}
	boxes := make([]string, 0, len(notes))
	for _, n := range notes {
		boxes = append(boxes, toastStyle(n.Kind).Render(titleStyle.Render(n.Title)+" "+n.Message+mutedStyle.Render(" ✕")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func (m Model) detailView(width int) string {
	it, ok := m.selected()
	if !ok {
		return barStyle.Render(mutedStyle.Render("No reviews yet. Try adding one!"))
	}
	body := pendingStyle.Render("◌ Processing…")
	if it.Resolved() {
		body = m.md.render(it.KeyPoints, width-4)
	}
	lines := []string{
		titleStyle.Render(it.Text),
		pill(it.Sentiment) + mutedStyle.Render("  id: "+it.ID.Display()),
		"",
		body,
	}
	return barStyle.Width(width).Render(strings.Join(lines, "\n"))
}

func (m Model) inputView() string {
	switch {
	case m.adding:
		return barStyle.Render("Analyze a review\n" + m.input.View())
	case m.searching:
		return barStyle.Render("Search\n" + m.search.View())
	case m.query != "":
		return helpStyle.Render("filter: " + m.query + "  (esc to clear)")
	}
	return ""
}

// helpers for View
func panelString(inner string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	return border.Render(inner)
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}

func clip(s string, n int) string {
	if n < 4 {
		n = 4
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// markdown renders key points, caching the renderer per wrap width.
type markdown struct {
	width    int
	renderer *glamour.TermRenderer
}

func newMarkdown() *markdown { return &markdown{} }

func (md *markdown) render(src string, width int) string {
	if width < 20 {
		width = 20
	}
	if md.renderer == nil || md.width != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return src
		}
		md.renderer, md.width = r, width
	}
	out, err := md.renderer.Render(src)
	if err != nil {
		return src
	}
	return strings.TrimSpace(out)
}

var _ list.ItemDelegate = itemDelegate{}
var _ tea.Model = Model{}
