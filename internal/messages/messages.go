// Package messages renders the user-facing text of the engine and of the
// built-in providers from {0}-style templates.
package messages

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/footprint-tools/cmdkit/internal/dispatchers"
	"github.com/footprint-tools/cmdkit/internal/providers"
)

// Template keys.
const (
	KeyCommandNotFound  = "command_not_found"
	KeySuggestions      = "suggestions"
	KeyNotAllowed       = "not_allowed"
	KeyMissingArgument  = "missing_argument"
	KeyMissingStrings   = "missing_strings"
	KeyInvocationFailed = "invocation_failed"
	KeyInvalidInteger   = "invalid_integer"
	KeyInvalidLong      = "invalid_long"
	KeyInvalidDouble    = "invalid_double"
	KeyInvalidBoolean   = "invalid_boolean"
	KeyInvalidTime      = "invalid_time"
	KeyInvalidChoice    = "invalid_choice"
	KeyNotInContext     = "not_in_context"
	KeyCooldown         = "cooldown"
)

// Defaults are the English templates. {0}, {1}, ... are positional
// placeholders.
var Defaults = map[string]string{
	KeyCommandNotFound:  "'{0}' is not a command.",
	KeySuggestions:      " Did you mean: {0}?",
	KeyNotAllowed:       "You are not allowed to use this command.",
	KeyMissingArgument:  "Missing argument '{0}' ({1}) at position {2}.",
	KeyMissingStrings:   "Argument '{0}' ({1}) at position {2} needs at least {3} value(s); {4} missing.",
	KeyInvocationFailed: "Something went wrong while running this command.",
	KeyInvalidInteger:   "'{0}' is not a valid integer.",
	KeyInvalidLong:      "'{0}' is not a valid number.",
	KeyInvalidDouble:    "'{0}' is not a valid decimal number.",
	KeyInvalidBoolean:   "'{0}' is not true or false.",
	KeyInvalidTime:      "'{0}' is not a valid time, use something like 30s, 5m or 2h.",
	KeyInvalidChoice:    "'{0}' is not one of: {1}.",
	KeyNotInContext:     "This command can only be used with a {0}.",
	KeyCooldown:         "Slow down, try again in {0}.",
}

// Format replaces {i} with the i-th argument.
func Format(template string, args ...any) string {
	if len(args) == 0 {
		return template
	}
	pairs := make([]string, 0, len(args)*2)
	for i, a := range args {
		pairs = append(pairs, "{"+strconv.Itoa(i)+"}", toString(a))
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

func toString(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case []string:
		return strings.Join(t, ", ")
	default:
		return fmt.Sprint(t)
	}
}

// Provider renders messages from a template table.
type Provider struct {
	templates map[string]string
}

// New returns a Provider using Defaults with overrides applied. Unknown
// override keys are kept and ignored.
func New(overrides map[string]string) *Provider {
	templates := make(map[string]string, len(Defaults)+len(overrides))
	for k, v := range Defaults {
		templates[k] = v
	}
	for k, v := range overrides {
		templates[k] = v
	}
	return &Provider{templates: templates}
}

func (p *Provider) render(key string, args ...any) string {
	return Format(p.templates[key], args...)
}

func (p *Provider) CommandNotFound(command string, suggestions []string, _ *dispatchers.Context) string {
	msg := p.render(KeyCommandNotFound, command)
	if len(suggestions) > 0 {
		msg += p.render(KeySuggestions, strings.Join(suggestions, ", "))
	}
	return msg
}

// Cooldown is shown when a sender issues commands faster than the cooldown
// allows. left is rounded up to a tenth of a second.
func (p *Provider) Cooldown(left time.Duration) string {
	const step = 100 * time.Millisecond
	if rounded := left.Truncate(step); rounded < left {
		left = rounded + step
	}
	return p.render(KeyCooldown, left)
}

func (p *Provider) NotAllowed(_ *dispatchers.Context) string {
	return p.render(KeyNotAllowed)
}

func (p *Provider) MissingArgument(name, description string, position int, _ *dispatchers.Context) string {
	return p.render(KeyMissingArgument, name, description, position)
}

func (p *Provider) MissingStrings(name, description string, position, minCount, missing int, _ *dispatchers.Context) string {
	return p.render(KeyMissingStrings, name, description, position, minCount, missing)
}

func (p *Provider) InvocationFailed(_ *dispatchers.Context) string {
	return p.render(KeyInvocationFailed)
}

func (p *Provider) InvalidInteger(token string, _ *dispatchers.Context) string {
	return p.render(KeyInvalidInteger, token)
}

func (p *Provider) InvalidLong(token string, _ *dispatchers.Context) string {
	return p.render(KeyInvalidLong, token)
}

func (p *Provider) InvalidDouble(token string, _ *dispatchers.Context) string {
	return p.render(KeyInvalidDouble, token)
}

func (p *Provider) InvalidBoolean(token string, _ *dispatchers.Context) string {
	return p.render(KeyInvalidBoolean, token)
}

func (p *Provider) InvalidTime(token string, _ *dispatchers.Context) string {
	return p.render(KeyInvalidTime, token)
}

func (p *Provider) InvalidChoice(token string, choices []string, _ *dispatchers.Context) string {
	return p.render(KeyInvalidChoice, token, choices)
}

func (p *Provider) NotInContext(what string, _ *dispatchers.Context) string {
	return p.render(KeyNotInContext, what)
}

var (
	_ dispatchers.Messages = (*Provider)(nil)
	_ providers.Messages   = (*Provider)(nil)
)
