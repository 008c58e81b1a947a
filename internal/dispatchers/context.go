package dispatchers

import "strings"

// Sender is the opaque identity of whoever issued a command. Bindings supply
// their own implementation; the engine only passes it along.
type Sender interface {
	ID() string
	Name() string
}

// Context is the per-invocation state handed to providers and actions.
// It is created fresh for every dispatch and owned by a single goroutine.
type Context struct {
	// ID identifies this invocation in logs and the audit trail.
	ID     string
	Sender Sender

	// Raw holds every token given to Dispatch; Tokens holds those left after
	// the command name tokens were stripped.
	Raw    []string
	Tokens []string

	// Label is the alias the sender typed for the matched command.
	Label string
	Node  *Node

	Registry *Snapshot
	Messages Messages

	// Reply receives the result of an async invocation. Bindings set it.
	Reply func(*Result)

	values map[string]any
}

// ContextOption configures a new Context.
type ContextOption func(*Context)

// WithValue attaches binding data (a channel, a guild, a world) that context
// providers can read.
func WithValue(key string, value any) ContextOption {
	return func(c *Context) {
		if c.values == nil {
			c.values = make(map[string]any)
		}
		c.values[key] = value
	}
}

// WithReply sets the continuation that receives async results.
func WithReply(fn func(*Result)) ContextOption {
	return func(c *Context) {
		c.Reply = fn
	}
}

// NewContext creates the context for one invocation by sender.
func NewContext(sender Sender, opts ...ContextOption) *Context {
	c := &Context{Sender: sender}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Value returns binding data stored under key.
func (c *Context) Value(key string) (any, bool) {
	v, ok := c.values[key]
	return v, ok
}

// HasFlag reports whether any remaining token equals flag, ignoring case.
func (c *Context) HasFlag(flag string) bool {
	for _, tok := range c.Tokens {
		if strings.EqualFold(tok, flag) {
			return true
		}
	}
	return false
}

// Flags returns typed access to the flag-looking remaining tokens.
func (c *Context) Flags() *ParsedFlags {
	return ParseFlags(c.Tokens)
}

// Joined returns the remaining tokens joined by single spaces.
func (c *Context) Joined() string {
	return strings.Join(c.Tokens, " ")
}
