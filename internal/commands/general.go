package commands

import (
	"strings"

	"github.com/footprint-tools/cmdkit/internal/dispatchers"
	"github.com/footprint-tools/cmdkit/internal/providers"
)

func pingCommand() *dispatchers.Node {
	return dispatchers.Command(dispatchers.CommandSpec{
		Name:     "ping",
		Summary:  "Check that commands are answered",
		Category: dispatchers.CategoryGeneral,
		Action: func(*dispatchers.Context, []any) (*dispatchers.Result, error) {
			return dispatchers.Success("Pong!"), nil
		},
	})
}

func whoamiCommand() *dispatchers.Node {
	return dispatchers.Command(dispatchers.CommandSpec{
		Name:     "whoami",
		Summary:  "Show who is issuing commands (--id adds the invocation id)",
		Category: dispatchers.CategoryGeneral,
		Args: []dispatchers.Argument{
			dispatchers.FromContext("sender", "Who issued the command", providers.TypeSender),
			dispatchers.FromContext("flags", "Flags given after the command", providers.TypeFlags),
		},
		Action: func(ctx *dispatchers.Context, values []any) (*dispatchers.Result, error) {
			sender := values[0].(dispatchers.Sender)
			flags := values[1].(*dispatchers.ParsedFlags)

			msg := "You are " + sender.Name() + " (" + sender.ID() + ")."
			if flags.Has("--id") {
				msg += " Invocation " + ctx.ID + "."
			}
			return dispatchers.Success(msg), nil
		},
	})
}

// helpCommand lists the commands the sender may run, or details the
// command at a path such as "admin audit". The command argument is the
// first word of the path; the words after it are read from the context.
// tree is filled in once the tree is built.
func helpCommand(tree **dispatchers.Tree, deps Deps) *dispatchers.Node {
	return dispatchers.Command(dispatchers.CommandSpec{
		Name:     "help",
		Aliases:  []string{"?"},
		Summary:  "List commands or show help for a command path",
		Category: dispatchers.CategoryGeneral,
		Args: []dispatchers.Argument{
			dispatchers.FromContext("context", "", providers.TypeContext),
			dispatchers.Nullable("command", "Command path, e.g. admin audit", providers.TypeString),
		},
		Action: func(_ *dispatchers.Context, values []any) (*dispatchers.Result, error) {
			ctx := values[0].(*dispatchers.Context)
			t := *tree
			visible := func(n *dispatchers.Node) bool {
				return allowed(t, n, ctx.Sender, deps.Permissions)
			}

			first, ok := values[1].(string)
			if !ok {
				return dispatchers.Success(strings.TrimRight(dispatchers.HelpText(t, nil, deps.Prefix, visible), "\n")), nil
			}

			path := append([]string{first}, ctx.Tokens[1:]...)
			match, ok := t.Resolve(path)
			if !ok || len(match.Remaining) > 0 || !visible(match.Node) {
				return dispatchers.NotFound("No help for '" + strings.Join(path, " ") + "'."), nil
			}
			return dispatchers.Success(strings.TrimRight(dispatchers.HelpText(t, match.Node, deps.Prefix, visible), "\n")), nil
		},
	})
}

// allowed reports whether sender passes the permission of n and of every
// node above it.
func allowed(tree *dispatchers.Tree, n *dispatchers.Node, sender dispatchers.Sender, checker dispatchers.PermissionChecker) bool {
	if checker == nil {
		return true
	}

	match, ok := tree.Resolve(n.Path)
	if !ok {
		return false
	}
	for _, node := range match.Trail {
		if node.Permission != "" && !checker.Allowed(sender, node.Permission) {
			return false
		}
	}
	return true
}
