package commands

import (
	"strconv"
	"strings"

	"github.com/footprint-tools/cmdkit/internal/dispatchers"
	"github.com/footprint-tools/cmdkit/internal/providers"
)

const (
	maxDice  = 100
	maxSides = 1000
)

func rollCommand(deps Deps) *dispatchers.Node {
	return dispatchers.Command(dispatchers.CommandSpec{
		Name:     "roll",
		Aliases:  []string{"dice"},
		Summary:  "Roll dice",
		Category: dispatchers.CategoryFun,
		Args: []dispatchers.Argument{
			dispatchers.Optional("sides", "Sides per die", providers.TypeInt, "6"),
			dispatchers.Optional("count", "How many dice", providers.TypeInt, "1"),
		},
		Action: func(_ *dispatchers.Context, values []any) (*dispatchers.Result, error) {
			sides, count := values[0].(int), values[1].(int)
			if sides < 2 || sides > maxSides {
				return dispatchers.Failuref("A die needs between 2 and %d sides.", maxSides), nil
			}
			if count < 1 || count > maxDice {
				return dispatchers.Failuref("Roll between 1 and %d dice.", maxDice), nil
			}

			rolls := make([]string, count)
			total := 0
			for i := range rolls {
				n := deps.Rand(sides) + 1
				total += n
				rolls[i] = strconv.Itoa(n)
			}

			if count == 1 {
				return dispatchers.Successf("You rolled %d.", total), nil
			}
			return dispatchers.Successf("You rolled %s (total %d).", strings.Join(rolls, ", "), total), nil
		},
	})
}

func pickCommand(deps Deps) *dispatchers.Node {
	return dispatchers.Command(dispatchers.CommandSpec{
		Name:     "pick",
		Aliases:  []string{"choose"},
		Summary:  "Pick one of the given options",
		Category: dispatchers.CategoryFun,
		Args: []dispatchers.Argument{
			dispatchers.Variadic("options", "Options to pick from", providers.TypeStrings, 2, dispatchers.Unbounded),
		},
		Action: func(_ *dispatchers.Context, values []any) (*dispatchers.Result, error) {
			options := values[0].([]string)
			return dispatchers.Successf("I pick %s.", options[deps.Rand(len(options))]), nil
		},
	})
}

// beats maps each hand to the hand it defeats.
var beats = map[string]string{
	"rock":     "scissors",
	"paper":    "rock",
	"scissors": "paper",
}

func rpsCommand(deps Deps) *dispatchers.Node {
	return dispatchers.Command(dispatchers.CommandSpec{
		Name:     "rps",
		Summary:  "Play rock, paper, scissors",
		Category: dispatchers.CategoryFun,
		Args: []dispatchers.Argument{
			dispatchers.Required("hand", "rock, paper or scissors", TypeHand),
		},
		Action: func(_ *dispatchers.Context, values []any) (*dispatchers.Result, error) {
			hands := BuiltinChoices[TypeHand]
			mine := hands[deps.Rand(len(hands))]
			yours := strings.ToLower(values[0].(string))

			switch {
			case yours == mine:
				return dispatchers.Successf("I picked %s too. Draw.", mine), nil
			case beats[yours] == mine:
				return dispatchers.Successf("I picked %s. You win!", mine), nil
			case beats[mine] == yours:
				return dispatchers.Successf("I picked %s. I win!", mine), nil
			default:
				// hand redefined by a choices file
				return dispatchers.Successf("I picked %s. Nobody knows who wins.", mine), nil
			}
		},
	})
}
