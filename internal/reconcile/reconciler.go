// Package reconcile drives optimistic review submission, full reloads and
// clipboard copies against the item store and the notification center.
//
// Every operation is split into a Begin step that mutates state, a capability
// call that touches no state, and a Finish step that applies the outcome.
// Interactive callers run the capability call off the update loop and feed the
// result back; line-mode callers use the blocking wrappers.
package reconcile

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/idilsaglam/reviews/internal/clipboard"
	"github.com/idilsaglam/reviews/internal/filter"
	"github.com/idilsaglam/reviews/internal/logging"
	"github.com/idilsaglam/reviews/internal/model"
	"github.com/idilsaglam/reviews/internal/notify"
	"github.com/idilsaglam/reviews/internal/store"
)

// Analyzer is the submit-text capability.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (model.Item, error)
}

// Loader is the fetch-collection capability.
type Loader interface {
	ListReviews(ctx context.Context) ([]model.Item, error)
}

// SubmitState is the lifecycle position of the most recent submission.
type SubmitState string

const (
	SubmitIdle       SubmitState = "idle"
	SubmitValidating SubmitState = "validating"
	SubmitSubmitting SubmitState = "submitting"
	SubmitCommitted  SubmitState = "committed"
	SubmitRolledBack SubmitState = "rolled_back"
)

// ReloadState is the lifecycle position of the most recent reload.
type ReloadState string

const (
	ReloadIdle    ReloadState = "idle"
	ReloadLoading ReloadState = "loading"
	ReloadLoaded  ReloadState = "loaded"
	ReloadFailed  ReloadState = "load_failed"
)

// Deps are the external capabilities the reconciler drives.
type Deps struct {
	Analyzer  Analyzer
	Loader    Loader
	Clipboard clipboard.Writer
	Logger    *slog.Logger
}

// Submission identifies one in-flight analyze request.
type Submission struct {
	TempID model.ID
	Text   string
}

type Reconciler struct {
	items    *store.Store
	notes    *notify.Center
	analyzer Analyzer
	loader   Loader
	clip     clipboard.Writer
	logger   *slog.Logger

	mu          sync.Mutex
	submitting  bool
	fetching    bool
	submitState SubmitState
	reloadState ReloadState
	formErr     string
}

func New(items *store.Store, notes *notify.Center, deps Deps) *Reconciler {
	logger := deps.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &Reconciler{
		items:       items,
		notes:       notes,
		analyzer:    deps.Analyzer,
		loader:      deps.Loader,
		clip:        deps.Clipboard,
		logger:      logger,
		submitState: SubmitIdle,
		reloadState: ReloadIdle,
	}
}

// Submit runs a whole submission: validate, insert optimistically, analyze,
// then commit or roll back.
func (r *Reconciler) Submit(ctx context.Context, raw string) (model.Item, error) {
	sub, err := r.BeginSubmit(raw)
	if err != nil {
		return model.Item{}, err
	}
	item, err := r.Analyze(ctx, sub)
	return r.FinishSubmit(sub, item, err)
}

// BeginSubmit validates raw text and, when it is usable, prepends a pending
// optimistic item and raises the submission flag. Blank text produces one
// error notification and no item.
func (r *Reconciler) BeginSubmit(raw string) (Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.formErr = ""
	r.submitState = SubmitValidating
	if strings.TrimSpace(raw) == "" {
		r.formErr = msgEmptyReview
		r.submitState = SubmitIdle
		r.notes.Push(titleOops, msgEmptyReview, notify.KindError)
		return Submission{}, ErrEmptyReview
	}
	if r.submitting {
		r.submitState = SubmitSubmitting
		r.notes.Push(titleBusy, msgBusy, notify.KindInfo)
		return Submission{}, ErrSubmissionInFlight
	}

	tempID := r.items.InsertOptimistic(model.Item{Text: raw, KeyPoints: model.PendingKeyPoints})
	r.submitting = true
	r.submitState = SubmitSubmitting
	r.logger.Info("review submitted", "temp_id", tempID.String(), "length", len(raw))
	return Submission{TempID: tempID, Text: raw}, nil
}

// Analyze calls the analyze capability for sub. It does not touch state and
// is safe to run off the update loop.
func (r *Reconciler) Analyze(ctx context.Context, sub Submission) (model.Item, error) {
	return r.analyzer.Analyze(ctx, sub.Text)
}

// FinishSubmit applies the analyze outcome: commit in place on success,
// remove the optimistic item on failure. Either way exactly one notification
// is pushed and the submission flag is cleared.
func (r *Reconciler) FinishSubmit(sub Submission, item model.Item, err error) (model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.submitting = false

	if err == nil && (item.ID.IsTemporary() || item.ID.IsZero()) {
		err = fmt.Errorf("analysis result has no service id (got %q)", item.ID.String())
	}
	if err != nil {
		classified := classify("analyze", err)
		r.items.Rollback(sub.TempID)
		msg := userMessage(classified, msgAnalyzeFailed)
		r.formErr = msg
		r.submitState = SubmitRolledBack
		r.notes.Push(titleError, msg, notify.KindError)
		r.logger.Warn("review analysis failed, rolled back", "temp_id", sub.TempID.String(), "error", err)
		return model.Item{}, classified
	}

	item.Optimistic = false
	if !r.items.Commit(sub.TempID, item) {
		r.logger.Debug("optimistic item already resolved", "temp_id", sub.TempID.String())
	}
	r.submitState = SubmitCommitted
	r.notes.Push(titleSuccess, msgAnalyzed, notify.KindSuccess)
	r.logger.Info("review committed",
		"temp_id", sub.TempID.String(),
		"id", item.ID.String(),
		"sentiment", string(item.Sentiment),
	)
	return item, nil
}

// Reload replaces the collection with the service's current list.
func (r *Reconciler) Reload(ctx context.Context) error {
	r.BeginReload()
	items, err := r.Fetch(ctx)
	return r.FinishReload(items, err)
}

// BeginReload raises the fetching flag. It is independent of the submission flag.
func (r *Reconciler) BeginReload() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.formErr = ""
	r.fetching = true
	r.reloadState = ReloadLoading
}

// Fetch calls the fetch-collection capability without touching state.
func (r *Reconciler) Fetch(ctx context.Context) ([]model.Item, error) {
	return r.loader.ListReviews(ctx)
}

// FinishReload installs items on success. On failure the collection is left
// exactly as it was.
func (r *Reconciler) FinishReload(items []model.Item, err error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fetching = false

	if err != nil {
		r.formErr = msgReloadForm
		r.reloadState = ReloadFailed
		r.notes.Push(titleError, msgReloadToast, notify.KindError)
		r.logger.Warn("reload failed", "error", err)
		return classify("reload", err)
	}
	if items == nil {
		items = []model.Item{}
	}
	r.items.ReplaceAll(items)
	r.reloadState = ReloadLoaded
	r.logger.Info("reviews reloaded", "count", len(items))
	return nil
}

// CopyKeyPoints writes the item's key points to the clipboard.
func (r *Reconciler) CopyKeyPoints(item model.Item) error {
	return r.FinishCopy(r.WriteClipboard(item.KeyPoints))
}

// WriteClipboard calls the clipboard capability without touching state.
func (r *Reconciler) WriteClipboard(text string) error {
	return r.clip.WriteAll(text)
}

// FinishCopy reports the clipboard outcome through a notification.
func (r *Reconciler) FinishCopy(err error) error {
	if err != nil {
		r.notes.Push(titleFailed, msgCopyFailed, notify.KindError)
		r.logger.Warn("clipboard write failed", "error", err)
		return &ClipboardError{Err: err}
	}
	r.notes.Push(titleCopied, msgCopied, notify.KindSuccess)
	return nil
}

// ShowInfo pushes an info notification quoting the start of the item's text.
func (r *Reconciler) ShowInfo(item model.Item) uint64 {
	return r.notes.Push(titleInfo, "Review: "+item.Excerpt(infoExcerptRunes), notify.KindInfo)
}

// ClearFormError drops the standing form-level message.
func (r *Reconciler) ClearFormError() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.formErr = ""
}

// FormError is the standing form-level message, empty when there is none.
func (r *Reconciler) FormError() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.formErr
}

// Submitting reports whether a submission is waiting for its result.
func (r *Reconciler) Submitting() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.submitting
}

// Fetching reports whether a reload is in flight.
func (r *Reconciler) Fetching() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fetching
}

func (r *Reconciler) SubmitState() SubmitState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.submitState
}

func (r *Reconciler) ReloadState() ReloadState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reloadState
}

// Find looks up an item by id.
func (r *Reconciler) Find(id model.ID) (model.Item, bool) { return r.items.Find(id) }

// Visible returns the collection narrowed by query; recomputed on every call.
func (r *Reconciler) Visible(query string) []model.Item {
	return filter.Apply(r.items.Snapshot(), query)
}

// Notifications returns the notifications currently shown.
func (r *Reconciler) Notifications() []notify.Notification { return r.notes.Snapshot() }

// Dismiss removes a notification; repeated calls are no-ops.
func (r *Reconciler) Dismiss(id uint64) bool { return r.notes.Dismiss(id) }

// DismissLatest removes the newest notification.
func (r *Reconciler) DismissLatest() bool { return r.notes.DismissLatest() }
