package providers_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cmdkit/internal/dispatchers"
	"github.com/footprint-tools/cmdkit/internal/messages"
	"github.com/footprint-tools/cmdkit/internal/providers"
	"github.com/footprint-tools/cmdkit/internal/usage"
)

type sender struct{}

func (sender) ID() string   { return "7" }
func (sender) Name() string { return "bob" }

func newRegistry() *dispatchers.Registry {
	reg := dispatchers.NewRegistry()
	providers.RegisterDefaults(reg, messages.New(nil))
	return reg
}

func fromToken(t *testing.T, typ dispatchers.Type, token string) (any, error) {
	t.Helper()
	p, ok := newRegistry().Lookup(typ)
	require.True(t, ok, "no provider for %s", typ)
	require.Equal(t, dispatchers.ProviderSingle, p.Kind())
	return p.FromToken(token, dispatchers.NewContext(sender{}))
}

func TestRegisterDefaults(t *testing.T) {
	types := newRegistry().Snapshot().Types()

	require.ElementsMatch(t, []dispatchers.Type{
		providers.TypeString, providers.TypeInt, providers.TypeLong, providers.TypeDouble,
		providers.TypeBool, providers.TypeDuration, providers.TypeStrings, providers.TypeJoined,
		providers.TypeSender, providers.TypeFlags, providers.TypeContext,
	}, types)
}

func TestScalars(t *testing.T) {
	tests := []struct {
		name    string
		typ     dispatchers.Type
		token   string
		want    any
		wantErr string
	}{
		{"string", providers.TypeString, "Hello", "Hello", ""},
		{"int", providers.TypeInt, "-42", -42, ""},
		{"int invalid", providers.TypeInt, "4.2", nil, "'4.2' is not a valid integer."},
		{"long", providers.TypeLong, "9000000000", int64(9000000000), ""},
		{"long invalid", providers.TypeLong, "nine", nil, "'nine' is not a valid number."},
		{"double", providers.TypeDouble, "2.5", 2.5, ""},
		{"double NaN", providers.TypeDouble, "NaN", nil, "'NaN' is not a valid decimal number."},
		{"double invalid", providers.TypeDouble, "x", nil, "'x' is not a valid decimal number."},
		{"bool true", providers.TypeBool, "TRUE", true, ""},
		{"bool false", providers.TypeBool, "False", false, ""},
		{"bool one", providers.TypeBool, "1", true, ""},
		{"bool zero", providers.TypeBool, "0", false, ""},
		{"bool yes is rejected", providers.TypeBool, "yes", nil, "'yes' is not true or false."},
		{"bool 01 is rejected", providers.TypeBool, "01", nil, "'01' is not true or false."},
		{"duration unit", providers.TypeDuration, "5m", 5 * time.Minute, ""},
		{"duration days", providers.TypeDuration, "2d", 48 * time.Hour, ""},
		{"duration go syntax", providers.TypeDuration, "1h30m", 90 * time.Minute, ""},
		{"duration invalid", providers.TypeDuration, "soon", nil, "'soon' is not a valid time, use something like 30s, 5m or 2h."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fromToken(t, tt.typ, tt.token)
			if tt.wantErr != "" {
				require.Error(t, err)
				require.Equal(t, usage.ErrProvider, usage.KindOf(err))
				require.Equal(t, tt.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
		ok   bool
	}{
		{"30s", 30 * time.Second, true},
		{"30S", 30 * time.Second, true},
		{"2h", 2 * time.Hour, true},
		{"1w", 7 * 24 * time.Hour, true},
		{"250ms", 250 * time.Millisecond, true},
		{"-5s", 0, false},
		{"s", 0, false},
		{"10", 0, false},
		{"", 0, false},
		{"99999999999999w", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := providers.ParseDuration(tt.in)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestMultiple(t *testing.T) {
	reg := newRegistry()
	ctx := dispatchers.NewContext(sender{})

	p, ok := reg.Lookup(providers.TypeStrings)
	require.True(t, ok)
	got, err := p.FromTokens([]string{"red", "blue"}, ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"red", "blue"}, got)

	p, ok = reg.Lookup(providers.TypeJoined)
	require.True(t, ok)
	got, err = p.FromTokens([]string{"hello", "there"}, ctx)
	require.NoError(t, err)
	require.Equal(t, "hello there", got)
}

func TestContextProviders(t *testing.T) {
	reg := newRegistry()
	ctx := dispatchers.NewContext(sender{})
	ctx.Tokens = []string{"a", "--loud"}

	p, _ := reg.Lookup(providers.TypeSender)
	got, err := p.FromContext(ctx)
	require.NoError(t, err)
	require.Equal(t, sender{}, got)

	p, _ = reg.Lookup(providers.TypeFlags)
	got, err = p.FromContext(ctx)
	require.NoError(t, err)
	require.True(t, got.(*dispatchers.ParsedFlags).Has("--loud"))

	p, _ = reg.Lookup(providers.TypeContext)
	got, err = p.FromContext(ctx)
	require.NoError(t, err)
	require.Same(t, ctx, got)
}

func TestSender_Missing(t *testing.T) {
	p, _ := newRegistry().Lookup(providers.TypeSender)

	_, err := p.FromContext(dispatchers.NewContext(nil))

	require.Error(t, err)
	require.Equal(t, "This command can only be used with a sender.", err.Error())
}

func TestValue(t *testing.T) {
	p := providers.Value("channel", "channel", messages.New(nil))

	got, err := p.FromContext(dispatchers.NewContext(sender{}, dispatchers.WithValue("channel", "#general")))
	require.NoError(t, err)
	require.Equal(t, "#general", got)

	_, err = p.FromContext(dispatchers.NewContext(sender{}))
	require.Error(t, err)
	require.Equal(t, "This command can only be used with a channel.", err.Error())
}

func TestChoice(t *testing.T) {
	p := providers.Choice([]string{"Rock", "Paper", "Scissors"}, messages.New(nil))
	ctx := dispatchers.NewContext(sender{})

	got, err := p.FromToken("paper", ctx)
	require.NoError(t, err)
	require.Equal(t, "Paper", got)

	_, err = p.FromToken("lizard", ctx)
	require.Error(t, err)
	require.Equal(t, "'lizard' is not one of: Rock, Paper, Scissors.", err.Error())
}

func TestProvidersThroughDispatch(t *testing.T) {
	reg := newRegistry()
	msgs := messages.New(nil)

	var got []any
	sum := dispatchers.Command(dispatchers.CommandSpec{
		Name: "sum",
		Args: []dispatchers.Argument{
			dispatchers.FromContext("who", "caller", providers.TypeSender),
			dispatchers.Variadic("numbers", "numbers to add", providers.TypeDouble, 1, dispatchers.Unbounded),
		},
		Action: func(_ *dispatchers.Context, values []any) (*dispatchers.Result, error) {
			got = values
			return dispatchers.None()
		},
	})
	tree := dispatchers.MustTree(sum)

	d := dispatchers.New(reg, msgs)
	res := d.Dispatch(tree, []string{"sum", "1", "2.5"}, dispatchers.NewContext(sender{}))

	require.Nil(t, res)
	require.Equal(t, []any{sender{}, []any{1.0, 2.5}}, got)

	res = d.Dispatch(tree, []string{"sum", "1", "two"}, dispatchers.NewContext(sender{}))
	require.Equal(t, dispatchers.Failure("'two' is not a valid decimal number."), res)
}
