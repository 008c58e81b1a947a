package dispatchers

// Type is the tag a provider is registered under and an argument asks for.
type Type string

// ProviderKind is the capability a provider registration carries.
type ProviderKind int

const (
	ProviderSingle   ProviderKind = iota // converts one token
	ProviderMultiple                     // converts a run of tokens
	ProviderContext                      // reads the invocation context
)

func (k ProviderKind) String() string {
	switch k {
	case ProviderSingle:
		return "single"
	case ProviderMultiple:
		return "multiple"
	case ProviderContext:
		return "context"
	default:
		return "unknown"
	}
}

type (
	TokenFunc   func(token string, ctx *Context) (any, error)
	TokensFunc  func(tokens []string, ctx *Context) (any, error)
	ContextFunc func(ctx *Context) (any, error)
)

// Provider converts tokens or context into a value. Exactly one of its
// functions is set, according to Kind.
type Provider struct {
	kind        ProviderKind
	fromToken   TokenFunc
	fromTokens  TokensFunc
	fromContext ContextFunc
}

// SingleProvider builds a provider that converts one token.
func SingleProvider(fn TokenFunc) *Provider {
	return &Provider{kind: ProviderSingle, fromToken: fn}
}

// MultipleProvider builds a provider that converts a run of tokens.
func MultipleProvider(fn TokensFunc) *Provider {
	return &Provider{kind: ProviderMultiple, fromTokens: fn}
}

// ContextProvider builds a provider that reads the invocation context.
func ContextProvider(fn ContextFunc) *Provider {
	return &Provider{kind: ProviderContext, fromContext: fn}
}

// Single is SingleProvider with a typed conversion function.
func Single[T any](fn func(token string, ctx *Context) (T, error)) *Provider {
	return SingleProvider(func(token string, ctx *Context) (any, error) {
		v, err := fn(token, ctx)
		if err != nil {
			return nil, err
		}
		return v, nil
	})
}

// Multiple is MultipleProvider with a typed conversion function.
func Multiple[T any](fn func(tokens []string, ctx *Context) (T, error)) *Provider {
	return MultipleProvider(func(tokens []string, ctx *Context) (any, error) {
		v, err := fn(tokens, ctx)
		if err != nil {
			return nil, err
		}
		return v, nil
	})
}

// Extra is ContextProvider with a typed function.
func Extra[T any](fn func(ctx *Context) (T, error)) *Provider {
	return ContextProvider(func(ctx *Context) (any, error) {
		v, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		return v, nil
	})
}

// Kind returns the provider's capability.
func (p *Provider) Kind() ProviderKind {
	return p.kind
}

// FromToken converts a single token. Only valid for ProviderSingle.
func (p *Provider) FromToken(token string, ctx *Context) (any, error) {
	return p.fromToken(token, ctx)
}

// FromTokens converts a run of tokens. Only valid for ProviderMultiple.
func (p *Provider) FromTokens(tokens []string, ctx *Context) (any, error) {
	return p.fromTokens(tokens, ctx)
}

// FromContext reads the invocation context. Only valid for ProviderContext.
func (p *Provider) FromContext(ctx *Context) (any, error) {
	return p.fromContext(ctx)
}

// serves reports whether the provider can resolve an argument of kind k.
// A single provider also serves variadic arguments, one token at a time.
func (p *Provider) serves(k ArgKind) bool {
	switch k {
	case ArgSingle:
		return p.kind == ProviderSingle
	case ArgVariadic:
		return p.kind == ProviderMultiple || p.kind == ProviderSingle
	case ArgContext:
		return p.kind == ProviderContext
	default:
		return false
	}
}
