package dispatchers

import (
	"strings"

	"github.com/footprint-tools/cmdkit/internal/usage"
)

// Tree is a validated, immutable set of root commands.
type Tree struct {
	roots []*Node
}

// Match is the outcome of walking a tree with a token sequence.
type Match struct {
	Node *Node
	// Label is the token that selected Node, as typed.
	Label string
	// Remaining holds the tokens after the command name tokens.
	Remaining []string
	// Trail lists every matched node from the root down to Node.
	Trail []*Node
}

// NewTree validates roots and their descendants and returns a tree.
// Sibling aliases must not overlap (ignoring case), argument lists must obey
// the variadic ordering rules, and no node may appear twice.
func NewTree(roots ...*Node) (*Tree, error) {
	seen := make(map[*Node]bool)
	if err := validateSiblings(roots, nil, seen); err != nil {
		return nil, err
	}
	return &Tree{roots: roots}, nil
}

// MustTree is NewTree that panics on a registration error. For static trees
// built at startup.
func MustTree(roots ...*Node) *Tree {
	t, err := NewTree(roots...)
	if err != nil {
		panic(err)
	}
	return t
}

// Roots returns the top-level commands in registration order.
func (t *Tree) Roots() []*Node {
	return t.roots
}

// Find returns the node at the given alias path, or nil.
func (t *Tree) Find(path ...string) *Node {
	if len(path) == 0 {
		return nil
	}
	node := matchNode(t.roots, path[0])
	for _, p := range path[1:] {
		if node == nil {
			return nil
		}
		node = node.Child(p)
	}
	return node
}

// Resolve walks from the roots to the deepest node whose aliases match the
// leading tokens. Tokens left after the last match are returned untouched;
// they are arguments, not a lookup failure.
func (t *Tree) Resolve(tokens []string) (Match, bool) {
	if len(tokens) == 0 {
		return Match{}, false
	}

	node := matchNode(t.roots, tokens[0])
	if node == nil {
		return Match{}, false
	}

	label := tokens[0]
	rest := tokens[1:]
	trail := []*Node{node}
	for len(rest) > 0 {
		child := node.Child(rest[0])
		if child == nil {
			break
		}
		node = child
		label = rest[0]
		rest = rest[1:]
		trail = append(trail, node)
	}

	return Match{Node: node, Label: label, Remaining: rest, Trail: trail}, true
}

// matchNode returns the first node answering to alias, ignoring case.
func matchNode(nodes []*Node, alias string) *Node {
	for _, n := range nodes {
		if strings.EqualFold(n.Name, alias) {
			return n
		}
		for _, a := range n.Aliases {
			if strings.EqualFold(a, alias) {
				return n
			}
		}
	}
	return nil
}

func validateSiblings(nodes []*Node, parentPath []string, seen map[*Node]bool) error {
	owner := make(map[string]*Node)

	for _, n := range nodes {
		if n == nil {
			return usage.Registration("nil command under '%s'", strings.Join(parentPath, " "))
		}
		if seen[n] {
			return usage.Registration("command '%s' is registered more than once", n.Name)
		}
		seen[n] = true

		if n.Name == "" {
			return usage.Registration("command under '%s' has no name", strings.Join(parentPath, " "))
		}

		n.Path = append(append([]string{}, parentPath...), n.Name)
		pathName := strings.Join(n.Path, " ")

		for _, alias := range n.Names() {
			if alias == "" || strings.ContainsAny(alias, " \t\r\n") {
				return usage.Registration("command '%s' has an invalid alias %q", pathName, alias)
			}
			key := strings.ToLower(alias)
			if other, dup := owner[key]; dup {
				if other == n {
					continue
				}
				return usage.Registration("alias '%s' of '%s' is already used by sibling '%s'", alias, pathName, other.Name)
			}
			owner[key] = n
		}

		if n.Action == nil && len(n.Children) == 0 {
			return usage.Registration("command '%s' has neither an action nor subcommands", pathName)
		}

		args, err := validateArguments(pathName, n.Arguments)
		if err != nil {
			return err
		}
		n.Arguments = args

		if err := validateSiblings(n.Children, n.Path, seen); err != nil {
			return err
		}
	}

	return nil
}
