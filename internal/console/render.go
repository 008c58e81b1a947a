package console

import (
	"strings"

	"github.com/footprint-tools/cmdkit/internal/dispatchers"
	"github.com/footprint-tools/cmdkit/internal/domain"
)

// Exit codes per result kind, following shell conventions.
const (
	ExitOK         = 0
	ExitError      = 1
	ExitNotAllowed = 126
	ExitNotFound   = 127
)

// Tokenize strips prefix from line and splits the rest on whitespace.
// ok is false when line does not start with prefix or holds no tokens.
func Tokenize(line, prefix string) (tokens []string, ok bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, prefix) {
		return nil, false
	}

	tokens = strings.Fields(line[len(prefix):])
	return tokens, len(tokens) > 0
}

// ExitCode maps a result to a process exit code. Silent results succeed.
func ExitCode(res *dispatchers.Result) int {
	if res == nil {
		return ExitOK
	}

	switch res.Kind {
	case dispatchers.ResultError:
		return ExitError
	case dispatchers.ResultNotFound:
		return ExitNotFound
	case dispatchers.ResultNotAllowed:
		return ExitNotAllowed
	default:
		return ExitOK
	}
}

// Render styles the message of res by kind. Results without a message
// render as the empty string.
func Render(res *dispatchers.Result, styler domain.Styler) string {
	if !res.HasMessage() {
		return ""
	}

	switch res.Kind {
	case dispatchers.ResultSuccess:
		return styler.Success(res.Message)
	case dispatchers.ResultNotFound:
		return styler.Warning(res.Message)
	case dispatchers.ResultNotAllowed, dispatchers.ResultError:
		return styler.Error(res.Message)
	default:
		return res.Message
	}
}
