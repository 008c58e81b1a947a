package commands

import (
	"github.com/footprint-tools/cmdkit/internal/dispatchers"
	"github.com/footprint-tools/cmdkit/internal/providers"
)

func giveCommand() *dispatchers.Node {
	return dispatchers.Command(dispatchers.CommandSpec{
		Name:     "give",
		Aliases:  []string{"g"},
		Summary:  "Give an amount of an item to someone",
		Category: dispatchers.CategoryEconomy,
		Args: []dispatchers.Argument{
			dispatchers.FromContext("sender", "", providers.TypeSender),
			dispatchers.Required("player", "Who receives the items", providers.TypeString),
			dispatchers.Required("amount", "How many", providers.TypeLong),
			dispatchers.Optional("item", "What to give", providers.TypeString, "coins"),
		},
		Action: func(_ *dispatchers.Context, values []any) (*dispatchers.Result, error) {
			sender := values[0].(dispatchers.Sender)
			player := values[1].(string)
			amount := values[2].(int64)
			item := values[3].(string)

			if amount <= 0 {
				return dispatchers.Failure("The amount must be positive."), nil
			}
			if player == sender.Name() {
				return dispatchers.Failure("You cannot give to yourself."), nil
			}
			return dispatchers.Successf("Gave %d %s to %s.", amount, item, player), nil
		},
	})
}
