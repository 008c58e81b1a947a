package commands

import (
	"strconv"
	"time"

	"github.com/footprint-tools/cmdkit/internal/dispatchers"
	"github.com/footprint-tools/cmdkit/internal/providers"
)

func echoCommand() *dispatchers.Node {
	return dispatchers.Command(dispatchers.CommandSpec{
		Name:     "echo",
		Aliases:  []string{"say"},
		Summary:  "Repeat the given text",
		Category: dispatchers.CategoryUtility,
		Args: []dispatchers.Argument{
			dispatchers.Variadic("text", "Text to repeat", providers.TypeJoined, 1, dispatchers.Unbounded),
		},
		Action: func(_ *dispatchers.Context, values []any) (*dispatchers.Result, error) {
			return dispatchers.Success(values[0].(string)), nil
		},
	})
}

func sumCommand() *dispatchers.Node {
	return dispatchers.Command(dispatchers.CommandSpec{
		Name:     "sum",
		Aliases:  []string{"add"},
		Summary:  "Add numbers together",
		Category: dispatchers.CategoryUtility,
		Args: []dispatchers.Argument{
			dispatchers.Variadic("numbers", "Numbers to add", providers.TypeDouble, 1, dispatchers.Unbounded),
		},
		Action: func(_ *dispatchers.Context, values []any) (*dispatchers.Result, error) {
			var total float64
			for _, v := range values[0].([]any) {
				total += v.(float64)
			}
			return dispatchers.Success("Sum: " + strconv.FormatFloat(total, 'f', -1, 64)), nil
		},
	})
}

func waitCommand(deps Deps) *dispatchers.Node {
	return dispatchers.Command(dispatchers.CommandSpec{
		Name:     "wait",
		Aliases:  []string{"sleep"},
		Summary:  "Answer after a delay, without blocking the console",
		Category: dispatchers.CategoryUtility,
		Async:    true,
		Args: []dispatchers.Argument{
			dispatchers.Required("delay", "How long to wait, e.g. 5s or 2m", providers.TypeDuration),
		},
		Action: func(_ *dispatchers.Context, values []any) (*dispatchers.Result, error) {
			delay := values[0].(time.Duration)
			deps.Sleep(delay)
			return dispatchers.Successf("Waited %s.", delay), nil
		},
	})
}
