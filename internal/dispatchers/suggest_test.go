package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{
			name: "identical strings",
			a:    "give",
			b:    "give",
			want: 0,
		},
		{
			name: "one character difference",
			a:    "give",
			b:    "gives",
			want: 1,
		},
		{
			name: "typo - transposition",
			a:    "give",
			b:    "igve",
			want: 2,
		},
		{
			name: "typo - substitution",
			a:    "reload",
			b:    "relaod",
			want: 2,
		},
		{
			name: "completely different",
			a:    "give",
			b:    "xyz",
			want: 4,
		},
		{
			name: "empty string a",
			a:    "",
			b:    "give",
			want: 4,
		},
		{
			name: "empty string b",
			a:    "give",
			b:    "",
			want: 4,
		},
		{
			name: "both empty",
			a:    "",
			b:    "",
			want: 0,
		},
		{
			name: "case insensitive",
			a:    "GIVE",
			b:    "give",
			want: 0,
		},
		{
			name: "missing letter",
			a:    "whoami",
			b:    "whoai",
			want: 1,
		},
		{
			name: "extra letter",
			a:    "whoami",
			b:    "whooami",
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := levenshtein(tt.a, tt.b)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFindSimilarCommands(t *testing.T) {
	nodes := []*Node{
		Command(CommandSpec{Name: "give", Action: noop}),
		Command(CommandSpec{Name: "ping", Action: noop}),
		Command(CommandSpec{Name: "roll", Aliases: []string{"toss"}, Action: noop}),
		Command(CommandSpec{Name: "whoami", Action: noop}),
	}

	tests := []struct {
		name  string
		input string
		max   int
		want  []string
	}{
		{"typo", "pnig", 3, []string{"ping"}},
		{"alias typo suggests canonical name", "tosss", 3, []string{"roll"}},
		{"exact match is not a suggestion", "ping", 3, []string{"give"}},
		{"nothing close", "xylophone", 3, nil},
		{"empty input", "", 3, nil},
		{"limited", "gove", 1, []string{"give"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindSimilarCommands(tt.input, nodes, tt.max)
			if tt.want == nil {
				require.Empty(t, got)
				return
			}
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFindSimilarCommands_SortedByDistance(t *testing.T) {
	nodes := []*Node{
		Command(CommandSpec{Name: "pong", Action: noop}),
		Command(CommandSpec{Name: "ping", Action: noop}),
		Command(CommandSpec{Name: "pang", Action: noop}),
		Command(CommandSpec{Name: "pinga", Action: noop}),
	}

	got := FindSimilarCommands("pingx", nodes, 3)

	// pinga is one edit away; ping one; pang and pong two.
	require.Equal(t, []string{"ping", "pinga", "pang"}, got)
}

func TestFindSimilarCommands_NoNodes(t *testing.T) {
	require.Nil(t, FindSimilarCommands("ping", nil, 3))
}

func TestCollectAllCommands(t *testing.T) {
	admin := Group(GroupSpec{Name: "admin"})
	Command(CommandSpec{Name: "reload", Parent: admin, Action: noop})
	Command(CommandSpec{Name: "ban", Parent: admin, Action: noop})
	ping := Command(CommandSpec{Name: "ping", Action: noop})

	got := CollectAllCommands([]*Node{ping, admin}, "")

	require.Equal(t, []string{"ping", "admin", "admin reload", "admin ban"}, got)
}

func TestCollectAllCommands_Empty(t *testing.T) {
	require.Empty(t, CollectAllCommands(nil, ""))
}
