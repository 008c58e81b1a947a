package dispatchers

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
)

// Usage renders the usage line of a command, e.g.
// "!give|g <amount> <tags...>". Only the matched node's aliases are joined;
// parent path elements use their canonical names.
func Usage(node *Node, prefix string) string {
	var b strings.Builder
	b.WriteString(prefix)

	if len(node.Path) > 1 {
		b.WriteString(strings.Join(node.Path[:len(node.Path)-1], " "))
		b.WriteString(" ")
	}
	b.WriteString(strings.Join(node.Names(), "|"))

	for _, a := range node.Arguments {
		if tok := a.usageToken(); tok != "" {
			b.WriteString(" ")
			b.WriteString(tok)
		}
	}

	if node.IsGroup() {
		b.WriteString(" <command>")
	}

	return b.String()
}

func collectLeafCommands(node *Node, out *[]*Node) {
	if node.Action != nil {
		*out = append(*out, node)
	}

	for _, child := range node.Children {
		collectLeafCommands(child, out)
	}
}

// HelpText renders the command listing of a tree grouped by category, or the
// detailed help of node when it is not nil. When visible is set, commands
// it rejects are left out.
func HelpText(tree *Tree, node *Node, prefix string, visible func(*Node) bool) string {
	var out bytes.Buffer

	if node == nil {
		grouped := make(map[CommandCategory][]*Node)

		var leaves []*Node
		for _, root := range tree.Roots() {
			collectLeafCommands(root, &leaves)
		}

		for _, cmd := range leaves {
			if visible != nil && !visible(cmd) {
				continue
			}
			grouped[cmd.Category] = append(grouped[cmd.Category], cmd)
		}

		for _, cat := range categoryOrder {
			cmds := grouped[cat]
			if len(cmds) == 0 {
				continue
			}

			out.WriteString(cat.String())
			out.WriteString("\n")

			sort.Slice(cmds, func(i, j int) bool {
				return strings.Join(cmds[i].Path, " ") < strings.Join(cmds[j].Path, " ")
			})

			for _, cmd := range cmds {
				fmt.Fprintf(&out, "   %-16s  %s\n", strings.Join(cmd.Path, " "), cmd.Summary)
			}
			out.WriteString("\n")
		}

		fmt.Fprintf(&out, "See '%shelp <command>' for detailed help on a specific command.\n", prefix)
		return out.String()
	}

	out.WriteString(strings.Join(node.Path, " "))
	if node.Summary != "" {
		out.WriteString(" - ")
		out.WriteString(node.Summary)
	}
	out.WriteString("\n\n")

	out.WriteString("USAGE\n   ")
	out.WriteString(Usage(node, prefix))
	out.WriteString("\n")

	if len(node.Aliases) > 0 {
		out.WriteString("\nALIASES\n   ")
		out.WriteString(strings.Join(node.Aliases, ", "))
		out.WriteString("\n")
	}

	var described []Argument
	for _, a := range node.Arguments {
		if a.consumesTokens() {
			described = append(described, a)
		}
	}
	if len(described) > 0 {
		out.WriteString("\nARGUMENTS\n")
		for _, a := range described {
			fmt.Fprintf(&out, "   %-12s  %s\n", a.Name, a.Description)
		}
	}

	if len(node.Children) > 0 {
		out.WriteString("\nCOMMANDS\n")
		for _, child := range node.Children {
			if visible != nil && !visible(child) {
				continue
			}
			fmt.Fprintf(&out, "   %-12s  %s\n", child.Name, child.Summary)
		}
	}

	return out.String()
}
