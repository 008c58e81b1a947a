package dispatchers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   []string
	}{
		{"no flags", []string{"5", "red"}, nil},
		{"long and short", []string{"--silent", "x", "-v"}, []string{"--silent", "-v"}},
		{"negative numbers are not flags", []string{"-5", "-2.5", "--loud"}, []string{"--loud"}},
		{"lone dash is not a flag", []string{"-", "--"}, []string{"--"}},
		{"value flag", []string{"--times=3"}, []string{"--times=3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ParseFlags(tt.tokens).Raw())
		})
	}
}

func TestParsedFlags_Has(t *testing.T) {
	tests := []struct {
		name     string
		flags    []string
		checkFor string
		want     bool
	}{
		{"flag present", []string{"--verbose", "--debug"}, "--verbose", true},
		{"flag not present", []string{"--verbose"}, "--debug", false},
		{"empty flags", []string{}, "--verbose", false},
		{"value flag is not boolean", []string{"--limit=5"}, "--limit", false},
		{"case is ignored", []string{"--Silent"}, "--silent", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NewParsedFlags(tt.flags).Has(tt.checkFor))
		})
	}
}

func TestParsedFlags_String(t *testing.T) {
	tests := []struct {
		name  string
		flags []string
		flag  string
		def   string
		want  string
	}{
		{"present", []string{"--user=alice"}, "--user", "", "alice"},
		{"absent", []string{"--other=x"}, "--user", "bob", "bob"},
		{"empty value", []string{"--user="}, "--user", "bob", ""},
		{"value keeps equals", []string{"--expr=a=b"}, "--expr", "", "a=b"},
		{"first wins", []string{"--user=a", "--user=b"}, "--user", "", "a"},
		{"name ignores case", []string{"--USER=Alice"}, "--user", "", "Alice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NewParsedFlags(tt.flags).String(tt.flag, tt.def))
		})
	}
}

func TestParsedFlags_Int(t *testing.T) {
	tests := []struct {
		name  string
		flags []string
		def   int
		want  int
	}{
		{"valid", []string{"--times=3"}, 1, 3},
		{"negative", []string{"--times=-2"}, 1, -2},
		{"invalid", []string{"--times=abc"}, 1, 1},
		{"absent", nil, 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NewParsedFlags(tt.flags).Int("--times", tt.def))
		})
	}
}

func TestParsedFlags_Duration(t *testing.T) {
	pf := NewParsedFlags([]string{"--after=1m30s", "--bad=soon"})

	require.Equal(t, 90*time.Second, pf.Duration("--after", 0))
	require.Equal(t, time.Second, pf.Duration("--bad", time.Second))
	require.Equal(t, time.Minute, pf.Duration("--missing", time.Minute))
}

func TestContext_Flags(t *testing.T) {
	ctx := NewContext(nil)
	ctx.Tokens = []string{"hello", "--loud", "-3"}

	require.True(t, ctx.HasFlag("--LOUD"))
	require.False(t, ctx.HasFlag("--quiet"))
	require.Equal(t, []string{"--loud"}, ctx.Flags().Raw())
	require.Equal(t, "hello --loud -3", ctx.Joined())
}
