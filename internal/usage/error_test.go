package usage

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMissingArgument(t *testing.T) {
	err := MissingArgument("amount", "How many", 0)

	require.Equal(t, ErrMissingArgument, err.Kind)
	require.Equal(t, "amount", err.Argument)
	require.Equal(t, "How many", err.Description)
	require.Equal(t, 0, err.Position)
	require.Contains(t, err.Error(), "amount")
}

func TestMissingStrings(t *testing.T) {
	err := MissingStrings("tags", "Tags to apply", 1, 2, 1)

	require.Equal(t, ErrMissingStrings, err.Kind)
	require.Equal(t, 2, err.MinCount)
	require.Equal(t, 1, err.Missing)
	require.Equal(t, 1, err.Position)
}

func TestError_IsMatchesKind(t *testing.T) {
	err := fmt.Errorf("resolve: %w", Provider("not a number"))

	require.True(t, errors.Is(err, &Error{Kind: ErrProvider}))
	require.False(t, errors.Is(err, &Error{Kind: ErrMissingArgument}))
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"usage error", NotFound("xyz"), ErrNotFound},
		{"wrapped", fmt.Errorf("x: %w", NotAllowed("ban", "admin")), ErrNotAllowed},
		{"plain error", errors.New("boom"), ErrUnknown},
		{"nil", nil, ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestInvocation_UnwrapsCause(t *testing.T) {
	cause := errors.New("database down")
	err := Invocation("give", cause)

	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "database down")
	require.False(t, err.Kind.UserFacing())
}

func TestErrorKind_UserFacing(t *testing.T) {
	require.True(t, ErrMissingArgument.UserFacing())
	require.True(t, ErrProvider.UserFacing())
	require.False(t, ErrRegistration.UserFacing())
	require.False(t, ErrNoProvider.UserFacing())
	require.False(t, ErrInvocation.UserFacing())
}

func TestRegistration(t *testing.T) {
	err := Registration("duplicate alias %q", "p")

	require.Equal(t, ErrRegistration, err.Kind)
	require.Equal(t, `registration: duplicate alias "p"`, err.Error())
}
