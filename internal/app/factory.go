// Package app wires settings, the engine and the console binding together.
package app

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/footprint-tools/cmdkit/internal/async"
	"github.com/footprint-tools/cmdkit/internal/choices"
	"github.com/footprint-tools/cmdkit/internal/commands"
	"github.com/footprint-tools/cmdkit/internal/config"
	"github.com/footprint-tools/cmdkit/internal/console"
	"github.com/footprint-tools/cmdkit/internal/cooldown"
	"github.com/footprint-tools/cmdkit/internal/dispatchers"
	"github.com/footprint-tools/cmdkit/internal/domain"
	"github.com/footprint-tools/cmdkit/internal/log"
	"github.com/footprint-tools/cmdkit/internal/messages"
	"github.com/footprint-tools/cmdkit/internal/paths"
	"github.com/footprint-tools/cmdkit/internal/providers"
	"github.com/footprint-tools/cmdkit/internal/store"
	"github.com/footprint-tools/cmdkit/internal/ui"
	"github.com/footprint-tools/cmdkit/internal/ui/style"
)

// Options configures the application factory.
type Options struct {
	// Pager options
	PagerDisabled bool
	PagerOverride string

	// Style options
	StyleEnabled bool

	// Watch reloads the choices file when it changes.
	Watch bool

	// Output receives results and listings; stdout when nil.
	Output io.Writer
}

// DefaultOptions returns the default application options.
func DefaultOptions() Options {
	return Options{
		StyleEnabled: true,
		Watch:        true,
	}
}

// Runtime is a wired console: the engine, its collaborators and the
// resources to release on Close.
type Runtime struct {
	App        *domain.Application
	Settings   config.Settings
	Registry   *dispatchers.Registry
	Tree       *dispatchers.Tree
	Dispatcher *dispatchers.Dispatcher
	Console    *console.Console
	Choices    *choices.Loader

	// ChoicesFile is the choices file in use, empty when there is none.
	ChoicesFile string

	pool    *async.Pool
	watcher *choices.Watcher
	cancel  context.CancelFunc
}

// New creates a Runtime from settings.
func New(ctx context.Context, settings config.Settings, opts Options) (*Runtime, error) {
	ctx, cancel := context.WithCancel(ctx)
	r := &Runtime{Settings: settings, cancel: cancel}

	logger := newLogger(settings)

	style.Init(opts.StyleEnabled, settings.Theme)

	var writerOpts []ui.WriterOption
	if opts.PagerDisabled {
		writerOpts = append(writerOpts, ui.WithPagerDisabled())
	}
	if opts.PagerOverride != "" {
		writerOpts = append(writerOpts, ui.WithPagerOverride(opts.PagerOverride))
	}

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	r.App = &domain.Application{
		Config: config.NewProvider(),
		Logger: logger,
		Output: ui.NewWriterTo(out, writerOpts...),
		Styler: style.NewStyler(),
	}

	if settings.AuditEnabled {
		auditPath := settings.AuditPath
		if auditPath == "" {
			auditPath = store.DBPath()
		}
		s, err := store.New(auditPath)
		if err != nil {
			_ = r.Close()
			return nil, err
		}
		r.App.Audit = s
	}

	msgs := messages.New(nil)
	r.Registry = dispatchers.NewRegistry()
	providers.RegisterDefaults(r.Registry, msgs)
	r.Registry.Register(console.ChannelKey, providers.Value(console.ChannelKey, "channel", msgs))

	r.Choices = choices.NewLoader(r.Registry, msgs, logger)
	r.Choices.SetBase(commands.BuiltinChoices)
	r.Choices.Apply(nil)

	r.ChoicesFile = choicesFile(settings)
	if r.ChoicesFile != "" {
		if err := r.Choices.Reload(r.ChoicesFile); err != nil {
			logger.Warn("app: choices file %s not loaded: %v", r.ChoicesFile, err)
		}
		if opts.Watch {
			w, err := choices.Watch(ctx, r.Choices, r.ChoicesFile, choices.DefaultDebounce)
			if err != nil {
				logger.Warn("app: not watching %s: %v", r.ChoicesFile, err)
			} else {
				r.watcher = w
			}
		}
	}

	r.pool = async.NewPool(ctx, settings.AsyncWorkers, settings.AsyncQueue, logger)
	permissions := console.Permissions(settings)

	dispatchOpts := []dispatchers.Option{
		dispatchers.WithPermissions(permissions),
		dispatchers.WithExecutor(r.pool),
		dispatchers.WithLogger(logger),
	}
	if r.App.Audit != nil {
		dispatchOpts = append(dispatchOpts, dispatchers.WithRecorder(store.NewRecorder(r.App.Audit)))
	}
	r.Dispatcher = dispatchers.New(r.Registry, msgs, dispatchOpts...)

	deps := commands.DefaultDeps()
	deps.Prefix = settings.Prefix
	deps.Permissions = permissions
	deps.Loader = r.Choices
	deps.ChoicesFile = r.ChoicesFile
	deps.Audit = r.App.Audit
	deps.Config = r.App.Config

	tree, err := commands.Tree(deps)
	if err != nil {
		_ = r.Close()
		return nil, err
	}
	r.Tree = tree

	r.Console = console.New(r.Dispatcher, r.Tree,
		console.WithPrefix(settings.Prefix),
		console.WithSender(console.NewSender(settings.SenderName)),
		console.WithStyler(r.App.Styler),
		console.WithLogger(logger),
		console.WithOutput(out),
		console.WithCooldown(cooldown.New(settings.Cooldown, 1), msgs),
	)

	logger.Info("app: %d commands, %d provider types", len(r.Tree.Roots()), r.Registry.Snapshot().Len())
	return r, nil
}

// choicesFile returns the configured choices file, or the default one when
// it exists.
func choicesFile(settings config.Settings) string {
	if settings.ChoicesFile != "" {
		return settings.ChoicesFile
	}
	if path := paths.ChoicesFilePath(); path != "" {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func newLogger(settings config.Settings) domain.Logger {
	if !settings.EnableLog {
		return log.NopLogger{}
	}

	l, err := log.New(paths.LogFilePath(), log.ParseLevel(settings.LogLevel))
	if err != nil {
		// Fall back to NopLogger on error
		return log.NopLogger{}
	}
	return l
}

// Close waits for async commands to finish, then releases the watcher, the
// audit store and the logger.
func (r *Runtime) Close() error {
	var errs []error

	if r.pool != nil {
		errs = append(errs, r.pool.Close())
	}
	if r.watcher != nil {
		errs = append(errs, r.watcher.Close())
	}
	r.cancel()

	if r.App != nil {
		if r.App.Audit != nil {
			errs = append(errs, r.App.Audit.Close())
		}
		if r.App.Logger != nil {
			errs = append(errs, r.App.Logger.Close())
		}
	}
	return errors.Join(errs...)
}
