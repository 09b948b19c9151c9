package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/reviews/internal/api"
	"github.com/idilsaglam/reviews/internal/model"
	"github.com/idilsaglam/reviews/internal/notify"
	"github.com/idilsaglam/reviews/internal/notify/notifytest"
	"github.com/idilsaglam/reviews/internal/reconcile"
	"github.com/idilsaglam/reviews/internal/store"
)

type stubService struct {
	items   []model.Item
	loadErr error
	result  model.Item
	err     error
	texts   []string
}

func (s *stubService) ListReviews(context.Context) ([]model.Item, error) { return s.items, s.loadErr }

func (s *stubService) Analyze(_ context.Context, text string) (model.Item, error) {
	s.texts = append(s.texts, text)
	return s.result, s.err
}

type stubClipboard struct{ written []string }

func (c *stubClipboard) WriteAll(text string) error {
	c.written = append(c.written, text)
	return nil
}

type harness struct {
	t     *testing.T
	m     tea.Model
	svc   *stubService
	clip  *stubClipboard
	notes *notify.Center
	rec   *reconcile.Reconciler
}

func newHarness(t *testing.T, svc *stubService) *harness {
	t.Helper()
	notes := notify.NewCenter(notify.WithClock(&notifytest.Clock{}))
	clip := &stubClipboard{}
	rec := reconcile.New(store.New(), notes, reconcile.Deps{Analyzer: svc, Loader: svc, Clipboard: clip})
	h := &harness{t: t, svc: svc, clip: clip, notes: notes, rec: rec}
	h.m = New(context.Background(), rec)
	h.run(h.m.Init())
	return h
}

// run executes cmd and feeds the capability results back into the model.
// Other commands (cursor blink, spinner ticks) are not followed.
func (h *harness) run(cmd tea.Cmd) {
	for _, msg := range collect(cmd) {
		switch msg.(type) {
		case analyzedMsg, reloadedMsg, copiedMsg:
			var next tea.Cmd
			h.m, next = h.m.Update(msg)
			h.run(next)
		}
	}
}

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, collect(c)...)
	}
	return out
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.m, cmd = h.m.Update(msg)
	return cmd
}

func (h *harness) press(s string) tea.Cmd {
	return h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func (h *harness) model() Model { return h.m.(Model) }

func (h *harness) rows() []model.Item {
	var out []model.Item
	for _, it := range h.model().list.Items() {
		out = append(out, it.(listItem).Item)
	}
	return out
}

func seed() []model.Item {
	return []model.Item{
		{ID: model.PermanentID(2), Text: "Great blender", Sentiment: model.SentimentPositive, KeyPoints: "- crushes ice"},
		{ID: model.PermanentID(1), Text: "Noisy fan", Sentiment: model.SentimentNegative, KeyPoints: "- loud"},
	}
}

func TestInitLoadsCollection(t *testing.T) {
	h := newHarness(t, &stubService{items: seed()})
	if got := len(h.rows()); got != 2 {
		t.Fatalf("rows = %d, want 2", got)
	}
	if h.rec.Fetching() {
		t.Fatal("fetching flag still raised")
	}
	if got := h.model().list.Title; got != "Results  2 reviews" {
		t.Fatalf("title = %q", got)
	}
}

func TestResultsTitleCountsReviews(t *testing.T) {
	for n, want := range map[int]string{0: "Results  0 reviews", 1: "Results  1 review", 3: "Results  3 reviews"} {
		if got := resultsTitle(n); got != want {
			t.Errorf("resultsTitle(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestSubmitShowsOptimisticRowThenCommits(t *testing.T) {
	svc := &stubService{
		items:  seed(),
		result: model.Item{ID: model.PermanentID(5), Text: "Great product", Sentiment: model.SentimentPositive, KeyPoints: "Fast shipping, good quality"},
	}
	h := newHarness(t, svc)

	h.press("a")
	if !h.model().adding {
		t.Fatal("a should open the review input")
	}
	h.press("Great product")
	cmd := h.send(tea.KeyMsg{Type: tea.KeyEnter})

	m := h.model()
	if m.adding || m.input.Value() != "" {
		t.Fatalf("input should be cleared and closed: adding=%v value=%q", m.adding, m.input.Value())
	}
	rows := h.rows()
	if len(rows) != 3 || !rows[0].Optimistic || rows[0].Sentiment != model.SentimentPending {
		t.Fatalf("optimistic row missing: %+v", rows)
	}
	if !strings.Contains(m.View(), "Analyzing") {
		t.Fatal("header should show the analysis in progress")
	}

	h.run(cmd)
	rows = h.rows()
	if len(rows) != 3 || rows[0].ID != model.PermanentID(5) || rows[0].Optimistic {
		t.Fatalf("row not committed in place: %+v", rows)
	}
	notes := h.notes.Snapshot()
	if len(notes) != 1 || notes[0].Kind != notify.KindSuccess {
		t.Fatalf("notifications = %+v", notes)
	}
	if len(svc.texts) != 1 || svc.texts[0] != "Great product" {
		t.Fatalf("analyzed texts = %v", svc.texts)
	}
}

func TestEmptySubmitKeepsInputOpen(t *testing.T) {
	svc := &stubService{items: seed()}
	h := newHarness(t, svc)
	h.press("a")
	h.run(h.send(tea.KeyMsg{Type: tea.KeyEnter}))

	if !h.model().adding {
		t.Fatal("input should stay open after a validation error")
	}
	if len(svc.texts) != 0 {
		t.Fatal("empty review reached the service")
	}
	if len(h.rows()) != 2 {
		t.Fatal("collection changed")
	}
	if !strings.Contains(h.model().View(), "Please fill in a review first.") {
		t.Fatal("form error not rendered")
	}

	h.send(tea.KeyMsg{Type: tea.KeyEsc})
	if h.model().adding || h.rec.FormError() != "" {
		t.Fatal("esc should close the input and clear the form error")
	}
}

func TestFailedSubmitRollsBack(t *testing.T) {
	svc := &stubService{items: seed(), err: &api.ResponseError{StatusCode: 500, Detail: "analysis service unavailable"}}
	h := newHarness(t, svc)
	h.press("a")
	h.press("Broken item")
	h.run(h.send(tea.KeyMsg{Type: tea.KeyEnter}))

	if len(h.rows()) != 2 {
		t.Fatalf("rows = %+v", h.rows())
	}
	if !strings.Contains(h.model().View(), "analysis service unavailable") {
		t.Fatal("detail not rendered")
	}
}

func TestAnalyzeKeyDisabledWhileSubmitting(t *testing.T) {
	h := newHarness(t, &stubService{items: seed()})
	if _, err := h.rec.BeginSubmit("pending one"); err != nil {
		t.Fatalf("BeginSubmit: %v", err)
	}
	h.press("a")
	if h.model().adding {
		t.Fatal("analyze trigger should be disabled while a submission is in flight")
	}
}

func TestSearchFiltersRows(t *testing.T) {
	h := newHarness(t, &stubService{items: seed()})
	h.press("/")
	h.press("GREAT")
	rows := h.rows()
	if len(rows) != 1 || rows[0].ID != model.PermanentID(2) {
		t.Fatalf("rows = %+v", rows)
	}
	h.send(tea.KeyMsg{Type: tea.KeyEsc})
	if len(h.rows()) != 2 {
		t.Fatal("esc should clear the search")
	}
}

func TestRefreshFailureKeepsRows(t *testing.T) {
	svc := &stubService{items: seed()}
	h := newHarness(t, svc)
	svc.loadErr = errors.New("connection refused")
	h.run(h.press("r"))
	if len(h.rows()) != 2 {
		t.Fatal("failed refresh dropped rows")
	}
	if h.rec.Fetching() {
		t.Fatal("fetching flag not cleared")
	}
	if n := h.notes.Snapshot(); len(n) != 1 || n[0].Kind != notify.KindError {
		t.Fatalf("notifications = %+v", n)
	}
}

func TestCopyInfoAndDismiss(t *testing.T) {
	h := newHarness(t, &stubService{items: seed()})
	h.run(h.press("c"))
	if len(h.clip.written) != 1 || h.clip.written[0] != "- crushes ice" {
		t.Fatalf("clipboard = %v", h.clip.written)
	}
	h.press("i")
	notes := h.notes.Snapshot()
	if len(notes) != 2 || notes[1].Message != "Review: Great blender" {
		t.Fatalf("notifications = %+v", notes)
	}
	h.press("x")
	h.press("x")
	h.press("x")
	if h.notes.Len() != 0 {
		t.Fatalf("notifications left: %d", h.notes.Len())
	}
}

func TestDetailPaneShowsSelection(t *testing.T) {
	h := newHarness(t, &stubService{items: seed()})
	h.send(tea.WindowSizeMsg{Width: 100, Height: 40})
	h.send(tea.KeyMsg{Type: tea.KeyEnter})
	if !h.model().showDetail {
		t.Fatal("enter should open the detail pane")
	}
	if view := h.model().View(); !strings.Contains(view, "Great blender") {
		t.Fatalf("detail pane missing selection:\n%s", view)
	}
}

func TestExpiredMessageRerenders(t *testing.T) {
	h := newHarness(t, &stubService{items: seed()})
	id := h.rec.ShowInfo(seed()[0])
	h.notes.Dismiss(id)
	if cmd := h.send(expiredMsg{id: id}); cmd != nil {
		t.Fatal("expired message should not schedule work")
	}
	if strings.Contains(h.model().View(), "Review: Great blender") {
		t.Fatal("expired notification still rendered")
	}
}
