package store

import "github.com/footprint-tools/cmdkit/internal/paths"

// DBPath returns the default audit database location.
func DBPath() string {
	return paths.AuditDBPath()
}
