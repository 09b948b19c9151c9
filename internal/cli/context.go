package cli

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/reviews/internal/api"
	"github.com/idilsaglam/reviews/internal/clipboard"
	"github.com/idilsaglam/reviews/internal/config"
	"github.com/idilsaglam/reviews/internal/logging"
	"github.com/idilsaglam/reviews/internal/notify"
	"github.com/idilsaglam/reviews/internal/reconcile"
	"github.com/idilsaglam/reviews/internal/store"
	"github.com/idilsaglam/reviews/internal/ui"
)

// deps are the process-level capabilities; tests swap them out.
type deps struct {
	clipboard  clipboard.Writer
	httpClient *http.Client
}

func defaultDeps() deps {
	return deps{clipboard: clipboard.System{}}
}

type commandContext struct {
	configFlag *string
	groupFlag  *bool
	deps       deps

	configOnce sync.Once
	config     *config.Config
	configPath string
	configSeen bool
	configErr  error
}

func newCommandContext(configFlag *string, groupFlag *bool, d deps) *commandContext {
	return &commandContext{configFlag: configFlag, groupFlag: groupFlag, deps: d}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, exists, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		ui.SetColorMode(cfg.UI.Color)
		ui.SetTheme(cfg.UI.Theme)
		c.config, c.configPath, c.configSeen = cfg, resolved, exists
	})
	return c.config, c.configErr
}

func (c *commandContext) group() bool {
	return c.groupFlag != nil && *c.groupFlag
}

// session is one wired client: API, store, notification center and reconciler.
type session struct {
	cfg    *config.Config
	logger *slog.Logger
	closer io.Closer
	client *api.Client
	notes  *notify.Center
	rec    *reconcile.Reconciler
}

// openSession wires the reconciler. Interactive sessions own the terminal, so
// they log only to the configured file.
func (c *commandContext) openSession(cmd *cobra.Command, interactive bool) (*session, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}

	logOpts := logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Path:   cfg.Logging.File,
	}
	if !interactive {
		logOpts.Fallback = cmd.ErrOrStderr()
	}
	logger, closer, err := logging.New(logOpts)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}
	logger = logger.With("component", cmd.Name())

	client := api.NewClient(api.Options{
		BaseURL:    cfg.API.BaseURL,
		Token:      cfg.API.Token,
		Timeout:    cfg.Timeout(),
		HTTPClient: c.deps.httpClient,
		Logger:     logger,
	})

	info, success, errTimeout := cfg.NotificationTimeouts()
	notes := notify.NewCenter(notify.WithTimeouts(notify.Timeouts{Info: info, Success: success, Error: errTimeout}))

	rec := reconcile.New(store.New(), notes, reconcile.Deps{
		Analyzer:  client,
		Loader:    client,
		Clipboard: c.deps.clipboard,
		Logger:    logger,
	})

	logger.Debug("session ready",
		"base_url", cfg.API.BaseURL,
		"config", c.configPath,
		"config_found", c.configSeen,
	)
	return &session{cfg: cfg, logger: logger, closer: closer, client: client, notes: notes, rec: rec}, nil
}

func (s *session) Close() error {
	return s.closer.Close()
}

// flush prints and dismisses every pending notification.
func (s *session) flush(w io.Writer) {
	for _, n := range s.notes.Snapshot() {
		line := n.Title + ": " + n.Message
		switch n.Kind {
		case notify.KindSuccess:
			ui.OK(w, line)
		case notify.KindError:
			ui.Fail(w, line)
		default:
			ui.Info(w, line)
		}
		s.notes.Dismiss(n.ID)
	}
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
