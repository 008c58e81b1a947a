package providers

import "github.com/footprint-tools/cmdkit/internal/dispatchers"

// Sender returns whoever issued the command. It fails when the binding did
// not set one.
func Sender(msgs Messages) *dispatchers.Provider {
	return dispatchers.Extra(func(ctx *dispatchers.Context) (dispatchers.Sender, error) {
		if ctx.Sender == nil {
			return nil, reject(msgs.NotInContext("sender", ctx))
		}
		return ctx.Sender, nil
	})
}

// Flags returns the flag-looking tokens left after the command name.
func Flags() *dispatchers.Provider {
	return dispatchers.Extra(func(ctx *dispatchers.Context) (*dispatchers.ParsedFlags, error) {
		return ctx.Flags(), nil
	})
}

// Context returns the invocation context itself.
func Context() *dispatchers.Provider {
	return dispatchers.Extra(func(ctx *dispatchers.Context) (*dispatchers.Context, error) {
		return ctx, nil
	})
}

// Value returns the binding value stored under key. When it is missing the
// command is rejected with NotInContext(what), the way a guild-only command
// rejects a direct message.
func Value(key, what string, msgs Messages) *dispatchers.Provider {
	return dispatchers.ContextProvider(func(ctx *dispatchers.Context) (any, error) {
		v, ok := ctx.Value(key)
		if !ok || v == nil {
			return nil, reject(msgs.NotInContext(what, ctx))
		}
		return v, nil
	})
}
