package dispatchers

import "strings"

// CommandSpec describes a command for Command.
type CommandSpec struct {
	Name       string
	Aliases    []string
	Parent     *Node
	Summary    string
	Args       []Argument
	Action     Action
	Async      bool
	Permission string
	Category   CommandCategory
}

// GroupSpec describes a node that only holds subcommands.
type GroupSpec struct {
	Name       string
	Aliases    []string
	Parent     *Node
	Summary    string
	Permission string
	Category   CommandCategory
}

// NewNode creates a node and, when parent is set, appends it to the
// parent's children. Structural checks happen in NewTree.
func NewNode(
	name string,
	aliases []string,
	parent *Node,
	summary string,
	args []Argument,
	action Action,
) *Node {

	node := &Node{
		Name:      strings.TrimSpace(name),
		Aliases:   aliases,
		Summary:   summary,
		Arguments: args,
		Action:    action,
	}

	if parent == nil {
		node.Path = []string{node.Name}
	} else {
		node.Path = append(append([]string{}, parent.Path...), node.Name)
		parent.Children = append(parent.Children, node)
	}

	return node
}

// Command builds an executable node from spec.
func Command(spec CommandSpec) *Node {
	node := NewNode(
		spec.Name,
		spec.Aliases,
		spec.Parent,
		spec.Summary,
		spec.Args,
		spec.Action,
	)

	node.Async = spec.Async
	node.Permission = spec.Permission
	node.Category = spec.Category
	return node
}

// Group builds a node without behavior of its own.
func Group(spec GroupSpec) *Node {
	node := NewNode(
		spec.Name,
		spec.Aliases,
		spec.Parent,
		spec.Summary,
		nil,
		nil,
	)

	node.Permission = spec.Permission
	node.Category = spec.Category
	return node
}
