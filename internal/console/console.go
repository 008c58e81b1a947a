// Package console binds the dispatcher to a terminal: lines typed by the
// operator become commands, results are styled and printed.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/footprint-tools/cmdkit/internal/cooldown"
	"github.com/footprint-tools/cmdkit/internal/dispatchers"
	"github.com/footprint-tools/cmdkit/internal/domain"
	"github.com/footprint-tools/cmdkit/internal/log"
	"github.com/footprint-tools/cmdkit/internal/ui/style"
)

// ChannelKey is the context value naming where a command was typed.
const ChannelKey = "channel"

// Console dispatches operator input and prints the results.
type Console struct {
	dispatcher *dispatchers.Dispatcher
	tree       *dispatchers.Tree
	prefix     string
	sender     dispatchers.Sender
	channel    string
	styler     domain.Styler
	logger     domain.Logger

	cooldown     *cooldown.Limiter
	cooldownText CooldownMessages

	mu  sync.Mutex
	out io.Writer
}

// CooldownMessages renders the reply to a sender who is on cooldown.
type CooldownMessages interface {
	Cooldown(left time.Duration) string
}

// Option configures a Console.
type Option func(*Console)

// WithPrefix sets the prefix a line must start with.
func WithPrefix(prefix string) Option {
	return func(c *Console) { c.prefix = prefix }
}

// WithSender sets who the commands are issued by.
func WithSender(s dispatchers.Sender) Option {
	return func(c *Console) { c.sender = s }
}

// WithChannel names the channel commands are issued in.
func WithChannel(name string) Option {
	return func(c *Console) { c.channel = name }
}

// WithStyler sets how results are styled.
func WithStyler(s domain.Styler) Option {
	return func(c *Console) { c.styler = s }
}

// WithOutput sets where results are printed.
func WithOutput(w io.Writer) Option {
	return func(c *Console) { c.out = w }
}

// WithCooldown rejects commands a sender issues faster than l allows. A nil
// limiter disables the cooldown.
func WithCooldown(l *cooldown.Limiter, msgs CooldownMessages) Option {
	return func(c *Console) {
		c.cooldown = l
		c.cooldownText = msgs
	}
}

// WithLogger sets the console logger.
func WithLogger(l domain.Logger) Option {
	return func(c *Console) { c.logger = l }
}

// New creates a console dispatching into tree.
func New(dispatcher *dispatchers.Dispatcher, tree *dispatchers.Tree, opts ...Option) *Console {
	c := &Console{
		dispatcher: dispatcher,
		tree:       tree,
		sender:     NewSender(""),
		channel:    "console",
		styler:     style.NopStyler{},
		logger:     log.NopLogger{},
		out:        os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Prefix returns the prefix lines must start with.
func (c *Console) Prefix() string {
	return c.prefix
}

// Tree returns the command tree the console dispatches into.
func (c *Console) Tree() *dispatchers.Tree {
	return c.tree
}

// Execute dispatches one line. reply receives the result of an async
// command. ok is false when the line is not a command.
func (c *Console) Execute(line string, reply func(*dispatchers.Result)) (res *dispatchers.Result, ok bool) {
	tokens, ok := Tokenize(line, c.prefix)
	if !ok {
		return nil, false
	}

	if left := c.cooldown.Check(c.sender.ID()); left > 0 {
		c.logger.Debug("console: %s on cooldown for %s", c.sender.ID(), left)
		return dispatchers.Failure(c.cooldownText.Cooldown(left)), true
	}

	opts := []dispatchers.ContextOption{dispatchers.WithReply(reply)}
	if c.channel != "" {
		opts = append(opts, dispatchers.WithValue(ChannelKey, c.channel))
	}

	ctx := dispatchers.NewContext(c.sender, opts...)
	return c.dispatcher.Dispatch(c.tree, tokens, ctx), true
}

// RunLines executes every line read from r, printing results as they come.
// It returns the exit code of the last command executed.
func (c *Console) RunLines(r io.Reader) (int, error) {
	code := ExitOK

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		res, ok := c.Execute(scanner.Text(), c.Print)
		if !ok {
			continue
		}
		code = ExitCode(res)
		c.Print(res)
	}

	if err := scanner.Err(); err != nil {
		return ExitError, fmt.Errorf("console: read input: %w", err)
	}
	return code, nil
}

// Print renders res to the output. Safe for use from async workers.
func (c *Console) Print(res *dispatchers.Result) {
	text := Render(res, c.styler)
	if text == "" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := fmt.Fprintln(c.out, text); err != nil {
		c.logger.Warn("console: write result: %v", err)
	}
}
