package dispatchers

import "github.com/footprint-tools/cmdkit/internal/usage"

// Unbounded is the Max of a variadic argument that takes every remaining token.
const Unbounded = -1

// ArgKind tells the resolver how an argument consumes tokens.
type ArgKind int

const (
	ArgSingle   ArgKind = iota // exactly one token (or its default)
	ArgVariadic                // a run of trailing tokens
	ArgContext                 // no tokens; derived from the invocation context
)

func (k ArgKind) String() string {
	switch k {
	case ArgSingle:
		return "single"
	case ArgVariadic:
		return "variadic"
	case ArgContext:
		return "context"
	default:
		return "unknown"
	}
}

// Argument describes one formal parameter of a command.
type Argument struct {
	Name        string
	Description string
	Position    int // assigned by the builder, 0-based declaration order
	Kind        ArgKind
	Type        Type

	// Single only
	Required bool
	Default  *string

	// Variadic only
	Min int
	Max int
}

// Required declares a single argument that must be present.
func Required(name, description string, typ Type) Argument {
	return Argument{Name: name, Description: description, Kind: ArgSingle, Type: typ, Required: true}
}

// Optional declares a single argument that falls back to def when absent.
// The default goes through the same provider as a typed token would.
func Optional(name, description string, typ Type, def string) Argument {
	return Argument{Name: name, Description: description, Kind: ArgSingle, Type: typ, Default: &def}
}

// Nullable declares a single argument that resolves to nil when absent.
func Nullable(name, description string, typ Type) Argument {
	return Argument{Name: name, Description: description, Kind: ArgSingle, Type: typ}
}

// Variadic declares an argument consuming between min and max trailing tokens.
// Use Unbounded for max to take everything left.
func Variadic(name, description string, typ Type, min, max int) Argument {
	return Argument{Name: name, Description: description, Kind: ArgVariadic, Type: typ, Min: min, Max: max}
}

// FromContext declares an argument whose value comes from the invocation
// context and consumes no tokens.
func FromContext(name, description string, typ Type) Argument {
	return Argument{Name: name, Description: description, Kind: ArgContext, Type: typ}
}

// consumesTokens reports whether the argument reads from the token stream.
func (a Argument) consumesTokens() bool {
	return a.Kind == ArgSingle || a.Kind == ArgVariadic
}

// usageToken renders the argument for a usage line: <name>, [name] or <name...>.
func (a Argument) usageToken() string {
	switch a.Kind {
	case ArgVariadic:
		return "<" + a.Name + "...>"
	case ArgSingle:
		if a.Required {
			return "<" + a.Name + ">"
		}
		return "[" + a.Name + "]"
	default:
		return ""
	}
}

// validateArguments assigns positions and checks the ordering invariants:
// at most one variadic argument, and it is the last string-consuming one.
func validateArguments(command string, args []Argument) ([]Argument, error) {
	out := make([]Argument, len(args))
	variadicAt := -1

	for i, a := range args {
		a.Position = i

		if a.Name == "" {
			return nil, usage.Registration("command '%s': argument %d has no name", command, i)
		}
		if a.Type == "" {
			return nil, usage.Registration("command '%s': argument '%s' has no type", command, a.Name)
		}

		switch a.Kind {
		case ArgVariadic:
			if variadicAt >= 0 {
				return nil, usage.Registration("command '%s': more than one variadic argument ('%s' and '%s')",
					command, args[variadicAt].Name, a.Name)
			}
			if a.Min < 1 {
				return nil, usage.Registration("command '%s': variadic argument '%s' needs a minimum of at least 1",
					command, a.Name)
			}
			if a.Max != Unbounded && a.Max < a.Min {
				return nil, usage.Registration("command '%s': variadic argument '%s' has max %d below min %d",
					command, a.Name, a.Max, a.Min)
			}
			variadicAt = i
		case ArgSingle:
			if variadicAt >= 0 {
				return nil, usage.Registration("command '%s': argument '%s' follows variadic argument '%s'",
					command, a.Name, args[variadicAt].Name)
			}
			if a.Required && a.Default != nil {
				return nil, usage.Registration("command '%s': required argument '%s' cannot have a default",
					command, a.Name)
			}
		case ArgContext:
		default:
			return nil, usage.Registration("command '%s': argument '%s' has unknown kind %d", command, a.Name, a.Kind)
		}

		out[i] = a
	}

	return out, nil
}
