package dispatchers

import (
	"sort"
	"strings"
)

const defaultSuggestionsCount = 3

// levenshtein calculates the edit distance between two strings
func levenshtein(a, b string) int {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
	}

	for i := 0; i <= len(a); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(a)][len(b)]
}

type suggestion struct {
	name     string
	distance int
}

// FindSimilarCommands returns up to maxResults canonical names among nodes
// whose name or alias is close to input. Each node is suggested once, at
// the distance of its closest alias.
func FindSimilarCommands(input string, nodes []*Node, maxResults int) []string {
	if input == "" || len(nodes) == 0 {
		return nil
	}

	const maxDistance = 3

	var suggestions []suggestion

	for _, n := range nodes {
		best := -1
		for _, alias := range n.Names() {
			dist := levenshtein(input, alias)
			if best < 0 || dist < best {
				best = dist
			}
		}
		if best <= maxDistance && best > 0 {
			suggestions = append(suggestions, suggestion{name: n.Name, distance: best})
		}
	}

	// Sort by distance (ascending), then alphabetically for stability
	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].distance != suggestions[j].distance {
			return suggestions[i].distance < suggestions[j].distance
		}
		return suggestions[i].name < suggestions[j].name
	})

	if len(suggestions) > maxResults {
		suggestions = suggestions[:maxResults]
	}

	result := make([]string, len(suggestions))
	for i, s := range suggestions {
		result[i] = s.name
	}

	return result
}

// CollectAllCommands recursively collects the full path of every command
// below nodes, e.g. "admin reload".
func CollectAllCommands(nodes []*Node, prefix string) []string {
	var commands []string

	for _, n := range nodes {
		fullPath := n.Name
		if prefix != "" {
			fullPath = prefix + " " + n.Name
		}
		commands = append(commands, fullPath)
		commands = append(commands, CollectAllCommands(n.Children, fullPath)...)
	}

	return commands
}
