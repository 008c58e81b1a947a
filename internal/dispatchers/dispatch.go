package dispatchers

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/footprint-tools/cmdkit/internal/domain"
	"github.com/footprint-tools/cmdkit/internal/log"
	"github.com/footprint-tools/cmdkit/internal/usage"
)

// Messages renders the user-facing text of dispatch outcomes. The engine
// never hardcodes sender-visible text.
type Messages interface {
	CommandNotFound(command string, suggestions []string, ctx *Context) string
	NotAllowed(ctx *Context) string
	MissingArgument(name, description string, position int, ctx *Context) string
	MissingStrings(name, description string, position, minCount, missing int, ctx *Context) string
	InvocationFailed(ctx *Context) string
}

// PermissionChecker decides whether sender holds permission.
type PermissionChecker interface {
	Allowed(sender Sender, permission string) bool
}

// PermissionFunc adapts a function to PermissionChecker.
type PermissionFunc func(sender Sender, permission string) bool

func (f PermissionFunc) Allowed(sender Sender, permission string) bool {
	return f(sender, permission)
}

// Executor runs the invocation stage of async commands.
type Executor interface {
	Go(fn func())
}

type goExecutor struct{}

func (goExecutor) Go(fn func()) { go fn() }

// Recorder receives one Record per finished dispatch.
type Recorder interface {
	Record(rec Record) error
}

// Stage is a step of the per-invocation state machine.
type Stage int

const (
	StageLookup Stage = iota
	StagePermission
	StageResolution
	StageInvocation
	StageNormalization
)

func (s Stage) String() string {
	switch s {
	case StageLookup:
		return "lookup"
	case StagePermission:
		return "permission"
	case StageResolution:
		return "resolution"
	case StageInvocation:
		return "invocation"
	case StageNormalization:
		return "normalization"
	default:
		return "unknown"
	}
}

// Record describes a finished dispatch: the stage it ended in and its result.
type Record struct {
	ID         string
	SenderID   string
	SenderName string
	Command    string
	Tokens     []string
	Stage      Stage
	Kind       ResultKind
	Silent     bool
	Message    string
	Async      bool
	Err        string
	Started    time.Time
	Duration   time.Duration
}

// Dispatcher runs lookup, permission check, argument resolution and
// invocation for one line of tokens at a time. It holds no per-invocation
// state and is safe for concurrent use.
type Dispatcher struct {
	registry    *Registry
	messages    Messages
	permissions PermissionChecker
	executor    Executor
	recorder    Recorder
	logger      domain.Logger
	suggestions int
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithPermissions sets the permission checker. Without one every sender is
// allowed.
func WithPermissions(p PermissionChecker) Option {
	return func(d *Dispatcher) { d.permissions = p }
}

// WithExecutor sets where async invocations run. The default starts a
// goroutine per invocation.
func WithExecutor(e Executor) Option {
	return func(d *Dispatcher) { d.executor = e }
}

// WithRecorder sets the audit recorder.
func WithRecorder(r Recorder) Option {
	return func(d *Dispatcher) { d.recorder = r }
}

// WithLogger sets the operator-facing logger.
func WithLogger(l domain.Logger) Option {
	return func(d *Dispatcher) { d.logger = l }
}

// WithSuggestions sets how many similar commands a not-found result offers.
func WithSuggestions(n int) Option {
	return func(d *Dispatcher) { d.suggestions = n }
}

// New creates a dispatcher resolving arguments against registry.
func New(registry *Registry, messages Messages, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		registry:    registry,
		messages:    messages,
		executor:    goExecutor{},
		logger:      log.NopLogger{},
		suggestions: defaultSuggestionsCount,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Registry returns the registry the dispatcher snapshots from.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Dispatch runs tokens against tree. The tokens must already be split and
// have any binding prefix removed.
//
// The returned result is nil when the command chose to produce no output,
// and for async commands, whose result is handed to ctx.Reply instead once
// the invocation finishes.
func (d *Dispatcher) Dispatch(tree *Tree, tokens []string, ctx *Context) *Result {
	started := time.Now()

	if ctx == nil {
		ctx = NewContext(nil)
	}
	if ctx.ID == "" {
		ctx.ID = uuid.NewString()
	}
	ctx.Raw = tokens
	ctx.Messages = d.messages

	// Lookup
	match, ok := tree.Resolve(tokens)
	if !ok {
		input := ""
		if len(tokens) > 0 {
			input = tokens[0]
		}
		ctx.Tokens = tokens
		similar := d.suggest(ctx, input, nil, tree.Roots())
		res := NotFound(d.messages.CommandNotFound(input, similar, ctx))
		d.finish(ctx, StageLookup, res, usage.NotFound(input), started)
		return res
	}

	node := match.Node
	ctx.Node = node
	ctx.Label = match.Label
	ctx.Tokens = match.Remaining
	d.logger.Debug("dispatch %s: matched '%s' (%d argument tokens)", ctx.ID, strings.Join(node.Path, " "), len(ctx.Tokens))

	if node.Action == nil {
		missing := strings.Join(node.Path, " ")
		var similar []string
		if len(ctx.Tokens) > 0 {
			missing += " " + ctx.Tokens[0]
			similar = d.suggest(ctx, ctx.Tokens[0], match.Trail, node.Children)
		}
		res := NotFound(d.messages.CommandNotFound(missing, similar, ctx))
		d.finish(ctx, StageLookup, res, usage.NotFound(missing), started)
		return res
	}

	// Permission check
	if denied := d.denied(ctx.Sender, match.Trail); denied != nil {
		res := NotAllowed(d.messages.NotAllowed(ctx))
		d.finish(ctx, StagePermission, res, usage.NotAllowed(strings.Join(node.Path, " "), denied.Permission), started)
		return res
	}

	// Argument resolution
	ctx.Registry = d.registry.Snapshot()
	values, err := Resolve(node.Arguments, ctx.Tokens, ctx)
	if err != nil {
		res := d.resolutionFailure(err, ctx)
		d.finish(ctx, StageResolution, res, err, started)
		return res
	}

	// Invocation
	if node.Async {
		d.executor.Go(func() {
			res, err := d.invoke(node, ctx, values)
			d.finish(ctx, StageNormalization, res, err, started)
			if res != nil && ctx.Reply != nil {
				ctx.Reply(res)
			}
		})
		return nil
	}

	res, err := d.invoke(node, ctx, values)
	d.finish(ctx, StageNormalization, res, err, started)
	return res
}

// denied returns the first node of trail whose permission sender lacks.
func (d *Dispatcher) denied(sender Sender, trail []*Node) *Node {
	if d.permissions == nil {
		return nil
	}
	for _, n := range trail {
		if n.Permission != "" && !d.permissions.Allowed(sender, n.Permission) {
			return n
		}
	}
	return nil
}

// suggest offers the candidates close to input that the sender could run.
// Nothing is offered below a node the sender may not enter.
func (d *Dispatcher) suggest(ctx *Context, input string, trail, candidates []*Node) []string {
	if d.denied(ctx.Sender, trail) != nil {
		return nil
	}

	visible := candidates
	if d.permissions != nil {
		visible = make([]*Node, 0, len(candidates))
		for _, n := range candidates {
			if d.denied(ctx.Sender, []*Node{n}) == nil {
				visible = append(visible, n)
			}
		}
	}
	return FindSimilarCommands(input, visible, d.suggestions)
}

// invoke runs the action and normalizes its outcome. Errors and panics
// become a generic error result; the detail goes to the operator log only.
func (d *Dispatcher) invoke(node *Node, ctx *Context, values []any) (res *Result, err error) {
	path := strings.Join(node.Path, " ")

	defer func() {
		if r := recover(); r != nil {
			err = usage.Invocation(path, fmt.Errorf("panic: %v", r))
			d.logger.Error("dispatch %s: command '%s' panicked: %v\n%s", ctx.ID, path, r, debug.Stack())
			res = Failure(d.messages.InvocationFailed(ctx))
		}
	}()

	out, actionErr := node.Action(ctx, values)
	if actionErr != nil {
		d.logger.Error("dispatch %s: command '%s' failed: %v", ctx.ID, path, actionErr)
		return Failure(d.messages.InvocationFailed(ctx)), usage.Invocation(path, actionErr)
	}
	return out, nil
}

// resolutionFailure maps a structured resolution error to an error result.
func (d *Dispatcher) resolutionFailure(err error, ctx *Context) *Result {
	var ue *usage.Error
	if !errors.As(err, &ue) {
		d.logger.Error("dispatch %s: resolution failed: %v", ctx.ID, err)
		return Failure(d.messages.InvocationFailed(ctx))
	}

	switch ue.Kind {
	case usage.ErrMissingArgument:
		return Failure(d.messages.MissingArgument(ue.Argument, ue.Description, ue.Position, ctx))
	case usage.ErrMissingStrings:
		return Failure(d.messages.MissingStrings(ue.Argument, ue.Description, ue.Position, ue.MinCount, ue.Missing, ctx))
	case usage.ErrProvider:
		return Failure(ue.Message)
	default:
		d.logger.Error("dispatch %s: resolution failed: %v", ctx.ID, ue)
		return Failure(d.messages.InvocationFailed(ctx))
	}
}

func (d *Dispatcher) finish(ctx *Context, stage Stage, res *Result, err error, started time.Time) {
	rec := Record{
		ID:       ctx.ID,
		Tokens:   ctx.Raw,
		Stage:    stage,
		Silent:   res == nil,
		Started:  started,
		Duration: time.Since(started),
	}
	if ctx.Sender != nil {
		rec.SenderID = ctx.Sender.ID()
		rec.SenderName = ctx.Sender.Name()
	}
	if ctx.Node != nil {
		rec.Command = strings.Join(ctx.Node.Path, " ")
		rec.Async = ctx.Node.Async
	}
	if res != nil {
		rec.Kind = res.Kind
		rec.Message = res.Message
	}
	if err != nil {
		rec.Err = err.Error()
	}

	d.logger.Debug("dispatch %s: finished at %s with %s in %s", ctx.ID, stage, res, rec.Duration)

	if d.recorder == nil {
		return
	}
	if err := d.recorder.Record(rec); err != nil {
		d.logger.Warn("dispatch %s: could not record invocation: %v", ctx.ID, err)
	}
}
