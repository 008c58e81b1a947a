// Package commands is the command set of the cmdsh console.
package commands

import (
	"math/rand/v2"
	"time"

	"github.com/footprint-tools/cmdkit/internal/choices"
	"github.com/footprint-tools/cmdkit/internal/dispatchers"
	"github.com/footprint-tools/cmdkit/internal/domain"
)

// TypeHand is the choice type of rock-paper-scissors hands.
const TypeHand dispatchers.Type = "hand"

// PermissionAdmin gates the admin group.
const PermissionAdmin = "admin"

// BuiltinChoices are the choice types the command set relies on. A choices
// file may redefine them.
var BuiltinChoices = choices.Definitions{
	TypeHand: {"rock", "paper", "scissors"},
}

type Deps struct {
	Prefix      string
	Permissions dispatchers.PermissionChecker

	// Loader and ChoicesFile back "admin reload"; either may be unset.
	Loader      *choices.Loader
	ChoicesFile string

	// Audit backs the audit commands; nil when auditing is off.
	Audit domain.AuditStore

	// Config backs "admin config"; nil disables it.
	Config domain.ConfigProvider

	Rand  func(n int) int
	Sleep func(time.Duration)
	Now   func() time.Time
}

func DefaultDeps() Deps {
	return Deps{
		Rand:  rand.IntN,
		Sleep: time.Sleep,
		Now:   time.Now,
	}
}

// Tree builds the command tree.
func Tree(deps Deps) (*dispatchers.Tree, error) {
	if deps.Rand == nil {
		deps.Rand = rand.IntN
	}
	if deps.Sleep == nil {
		deps.Sleep = time.Sleep
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	var tree *dispatchers.Tree
	roots := []*dispatchers.Node{
		pingCommand(),
		whoamiCommand(),
		helpCommand(&tree, deps),
		echoCommand(),
		sumCommand(),
		waitCommand(deps),
		rollCommand(deps),
		pickCommand(deps),
		rpsCommand(deps),
		giveCommand(),
		adminGroup(deps),
	}

	tree, err := dispatchers.NewTree(roots...)
	if err != nil {
		return nil, err
	}
	return tree, nil
}
