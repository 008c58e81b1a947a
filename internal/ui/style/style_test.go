package style

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var helpers = []struct {
	name string
	fn   func(string) string
}{
	{"Success", Success},
	{"Warning", Warning},
	{"Error", Error},
	{"Info", Info},
	{"Header", Header},
	{"Muted", Muted},
	{"Prompt", Prompt},
}

func TestDisabledReturnsPlainText(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("CMDSH_NO_COLOR", "")
	Init(false, "default-dark")

	for _, tt := range helpers {
		t.Run(tt.name, func(t *testing.T) {
			output := tt.fn("test message")
			require.Equal(t, "test message", output)
			require.NotContains(t, output, "\x1b[")
		})
	}
}

func TestEnabledReturnsStyledText(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("CMDSH_NO_COLOR", "")
	Init(true, "default-dark")

	for _, tt := range helpers {
		t.Run(tt.name, func(t *testing.T) {
			output := tt.fn("test message")
			require.Contains(t, output, "test message")
			require.Contains(t, output, "\x1b[")
		})
	}
}

func TestNoColorEnvDisablesStyling(t *testing.T) {
	for _, key := range []string{"NO_COLOR", "CMDSH_NO_COLOR"} {
		t.Run(key, func(t *testing.T) {
			t.Setenv("NO_COLOR", "")
			t.Setenv("CMDSH_NO_COLOR", "")
			t.Setenv(key, "1")

			Init(true, "default-dark")
			require.False(t, Enabled())
			require.Equal(t, "test", Error("test"))
		})
	}
}

func TestResolveThemeName(t *testing.T) {
	require.Equal(t, "mono-light", ResolveThemeName("mono-light"))
	require.Equal(t, "contrast-dark", ResolveThemeName("contrast-dark"))

	got := ResolveThemeName("mono")
	require.True(t, strings.HasPrefix(got, "mono-"), got)

	got = ResolveThemeName("")
	require.True(t, strings.HasPrefix(got, "default-"), got)
}

func TestLoadColorConfig(t *testing.T) {
	require.Equal(t, Themes["mono-dark"], LoadColorConfig("mono-dark"))
	require.Equal(t, Themes["default-dark"], LoadColorConfig("neon-dark"))
}

func TestThemesAreComplete(t *testing.T) {
	for _, base := range BaseThemeNames {
		for _, variant := range []string{"-dark", "-light"} {
			c, ok := Themes[base+variant]
			require.True(t, ok, base+variant)
			require.NotEmpty(t, c.Success)
			require.NotEmpty(t, c.Warning)
			require.NotEmpty(t, c.Error)
			require.NotEmpty(t, c.Prompt)
		}
	}
}

func TestStylerMatchesPackageFunctions(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("CMDSH_NO_COLOR", "")
	Init(true, "default-dark")

	s := NewStyler()
	require.True(t, s.Enabled())
	require.Equal(t, Success("ok"), s.Success("ok"))
	require.Equal(t, Error("no"), s.Error("no"))

	var nop NopStyler
	require.False(t, nop.Enabled())
	require.Equal(t, "x", nop.Warning("x"))
}
