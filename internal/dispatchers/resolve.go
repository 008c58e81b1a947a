package dispatchers

import (
	"errors"

	"github.com/footprint-tools/cmdkit/internal/usage"
)

// Resolve converts tokens into one value per argument, in declaration order,
// using the providers of ctx.Registry.
//
// Context-derived arguments are resolved first so that context-shape errors
// ("must be used in a guild") win over input errors. String-consuming
// arguments then take tokens left to right; the first argument that cannot
// be satisfied aborts resolution. Tokens left over at the end are ignored.
func Resolve(args []Argument, tokens []string, ctx *Context) ([]any, error) {
	values := make([]any, len(args))

	for i, a := range args {
		if a.Kind != ArgContext {
			continue
		}
		p, err := providerFor(a, ctx.Registry)
		if err != nil {
			return nil, err
		}
		v, err := p.FromContext(ctx)
		if err != nil {
			return nil, providerError(a, err)
		}
		values[i] = v
	}

	cursor := 0
	for i, a := range args {
		if !a.consumesTokens() {
			continue
		}

		p, err := providerFor(a, ctx.Registry)
		if err != nil {
			return nil, err
		}

		switch a.Kind {
		case ArgSingle:
			var raw string
			switch {
			case cursor < len(tokens):
				raw = tokens[cursor]
				cursor++
			case a.Required:
				return nil, usage.MissingArgument(a.Name, a.Description, a.Position)
			case a.Default == nil:
				values[i] = nil
				continue
			default:
				raw = *a.Default
			}

			v, err := p.FromToken(raw, ctx)
			if err != nil {
				return nil, providerError(a, err)
			}
			values[i] = v

		case ArgVariadic:
			available := len(tokens) - cursor
			if available < a.Min {
				return nil, usage.MissingStrings(a.Name, a.Description, a.Position, a.Min, a.Min-available)
			}

			n := available
			if a.Max != Unbounded && n > a.Max {
				n = a.Max
			}
			run := append([]string(nil), tokens[cursor:cursor+n]...)
			cursor += n

			v, err := convertRun(p, run, ctx)
			if err != nil {
				return nil, providerError(a, err)
			}
			values[i] = v
		}
	}

	return values, nil
}

// convertRun feeds a token run to a multiple provider, or to a single
// provider one token at a time.
func convertRun(p *Provider, run []string, ctx *Context) (any, error) {
	if p.Kind() == ProviderMultiple {
		return p.FromTokens(run, ctx)
	}

	out := make([]any, 0, len(run))
	for _, tok := range run {
		v, err := p.FromToken(tok, ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func providerFor(a Argument, snapshot *Snapshot) (*Provider, error) {
	p, ok := snapshot.Lookup(a.Type)
	if !ok || !p.serves(a.Kind) {
		return nil, usage.NoProvider(a.Name, string(a.Type), a.Position)
	}
	return p, nil
}

// providerError tags a provider failure with the argument it concerns. The
// provider's message is kept verbatim.
func providerError(a Argument, err error) error {
	var ue *usage.Error
	if errors.As(err, &ue) {
		tagged := *ue
		if tagged.Kind == usage.ErrUnknown {
			tagged.Kind = usage.ErrProvider
		}
		tagged.Argument = a.Name
		tagged.Description = a.Description
		tagged.Position = a.Position
		return &tagged
	}

	pe := usage.Provider(err.Error())
	pe.Argument = a.Name
	pe.Description = a.Description
	pe.Position = a.Position
	return pe
}
