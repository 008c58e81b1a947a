// Package providers holds the built-in argument providers: scalar
// conversions, token runs and values read from the invocation context.
package providers

import (
	"github.com/footprint-tools/cmdkit/internal/dispatchers"
	"github.com/footprint-tools/cmdkit/internal/usage"
)

// Type tags of the built-in providers.
const (
	TypeString   dispatchers.Type = "string"
	TypeInt      dispatchers.Type = "int"
	TypeLong     dispatchers.Type = "long"
	TypeDouble   dispatchers.Type = "double"
	TypeBool     dispatchers.Type = "bool"
	TypeDuration dispatchers.Type = "duration"
	TypeStrings  dispatchers.Type = "strings"
	TypeJoined   dispatchers.Type = "joined"
	TypeSender   dispatchers.Type = "sender"
	TypeFlags    dispatchers.Type = "flags"
	TypeContext  dispatchers.Type = "context"
)

// Messages renders the sender-facing text of conversion failures.
type Messages interface {
	InvalidInteger(token string, ctx *dispatchers.Context) string
	InvalidLong(token string, ctx *dispatchers.Context) string
	InvalidDouble(token string, ctx *dispatchers.Context) string
	InvalidBoolean(token string, ctx *dispatchers.Context) string
	InvalidTime(token string, ctx *dispatchers.Context) string
	InvalidChoice(token string, choices []string, ctx *dispatchers.Context) string
	NotInContext(what string, ctx *dispatchers.Context) string
}

// RegisterDefaults registers every built-in provider on reg.
func RegisterDefaults(reg *dispatchers.Registry, msgs Messages) {
	reg.Refresh(func(m map[dispatchers.Type]*dispatchers.Provider) {
		m[TypeString] = String()
		m[TypeInt] = Int(msgs)
		m[TypeLong] = Long(msgs)
		m[TypeDouble] = Double(msgs)
		m[TypeBool] = Bool(msgs)
		m[TypeDuration] = Duration(msgs)
		m[TypeStrings] = Strings()
		m[TypeJoined] = Joined()
		m[TypeSender] = Sender(msgs)
		m[TypeFlags] = Flags()
		m[TypeContext] = Context()
	})
}

func reject(message string) error {
	return usage.Provider(message)
}
