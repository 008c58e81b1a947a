package console

import (
	"github.com/footprint-tools/cmdkit/internal/config"
	"github.com/footprint-tools/cmdkit/internal/dispatchers"
)

// SenderID identifies the local operator.
const SenderID = "console"

// Sender is the operator typing at the console.
type Sender struct {
	name string
}

// NewSender returns the console sender displayed as name.
func NewSender(name string) Sender {
	if name == "" {
		name = SenderID
	}
	return Sender{name: name}
}

func (s Sender) ID() string   { return SenderID }
func (s Sender) Name() string { return s.name }

// Permissions grants the console sender what settings grant it. Other
// senders get nothing.
func Permissions(settings config.Settings) dispatchers.PermissionChecker {
	return dispatchers.PermissionFunc(func(sender dispatchers.Sender, permission string) bool {
		if sender == nil || sender.ID() != SenderID {
			return false
		}
		return settings.HasPermission(permission)
	})
}
