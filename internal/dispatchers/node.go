package dispatchers

// Action is a command's behavior. values holds one resolved value per
// declared argument, in declaration order. Returning (nil, nil) means the
// command deliberately produces no output.
type Action func(ctx *Context, values []any) (*Result, error)

// Node is one entry in a command tree.
type Node struct {
	Name       string
	Aliases    []string
	Path       []string
	Summary    string
	Arguments  []Argument
	Children   []*Node
	Async      bool
	Permission string
	Action     Action
	Category   CommandCategory
}

// Names returns the canonical name followed by the aliases.
func (n *Node) Names() []string {
	names := make([]string, 0, len(n.Aliases)+1)
	names = append(names, n.Name)
	return append(names, n.Aliases...)
}

// Child returns the child answering to alias, ignoring case.
func (n *Node) Child(alias string) *Node {
	return matchNode(n.Children, alias)
}

// IsGroup reports whether the node only exists to hold children.
func (n *Node) IsGroup() bool {
	return n.Action == nil && len(n.Children) > 0
}
