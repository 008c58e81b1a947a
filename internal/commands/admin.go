package commands

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/footprint-tools/cmdkit/internal/dispatchers"
	"github.com/footprint-tools/cmdkit/internal/domain"
	"github.com/footprint-tools/cmdkit/internal/format"
	"github.com/footprint-tools/cmdkit/internal/providers"
)

func adminGroup(deps Deps) *dispatchers.Node {
	admin := dispatchers.Group(dispatchers.GroupSpec{
		Name:       "admin",
		Summary:    "Maintenance commands",
		Permission: PermissionAdmin,
		Category:   dispatchers.CategoryAdmin,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "reload",
		Parent:   admin,
		Summary:  "Reload the choices file",
		Category: dispatchers.CategoryAdmin,
		Action: func(*dispatchers.Context, []any) (*dispatchers.Result, error) {
			if deps.Loader == nil || deps.ChoicesFile == "" {
				return dispatchers.Failure("No choices file is configured."), nil
			}
			if err := deps.Loader.Reload(deps.ChoicesFile); err != nil {
				return dispatchers.Failuref("Choices were not reloaded: %v", err), nil
			}
			return dispatchers.Successf("Reloaded %d choice types.", len(deps.Loader.Types())), nil
		},
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "audit",
		Aliases:  []string{"log"},
		Parent:   admin,
		Summary:  "Show recent invocations",
		Category: dispatchers.CategoryAdmin,
		Args: []dispatchers.Argument{
			dispatchers.Optional("limit", "How many entries", providers.TypeInt, "10"),
			dispatchers.Nullable("command", "Only this command", providers.TypeString),
		},
		Action: func(_ *dispatchers.Context, values []any) (*dispatchers.Result, error) {
			if deps.Audit == nil {
				return dispatchers.Failure("Auditing is disabled."), nil
			}

			filter := domain.AuditFilter{Limit: values[0].(int)}
			if filter.Limit < 1 {
				return dispatchers.Failure("The limit must be positive."), nil
			}
			if cmd, ok := values[1].(string); ok {
				filter.Command = cmd
			}

			entries, err := deps.Audit.List(filter)
			if err != nil {
				return nil, err
			}
			if len(entries) == 0 {
				return dispatchers.Success("No invocations recorded."), nil
			}
			return dispatchers.Success(formatEntries(entries)), nil
		},
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "stats",
		Parent:   admin,
		Summary:  "Count recorded invocations by outcome",
		Category: dispatchers.CategoryAdmin,
		Action: func(*dispatchers.Context, []any) (*dispatchers.Result, error) {
			if deps.Audit == nil {
				return dispatchers.Failure("Auditing is disabled."), nil
			}

			counts, err := deps.Audit.Count()
			if err != nil {
				return nil, err
			}
			if len(counts) == 0 {
				return dispatchers.Success("No invocations recorded."), nil
			}

			kinds := make([]string, 0, len(counts))
			for k := range counts {
				kinds = append(kinds, k)
			}
			sort.Strings(kinds)

			lines := make([]string, len(kinds))
			for i, k := range kinds {
				lines[i] = fmt.Sprintf("%-12s %d", k, counts[k])
			}
			return dispatchers.Success(strings.Join(lines, "\n")), nil
		},
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "prune",
		Parent:   admin,
		Summary:  "Delete invocations older than an age",
		Category: dispatchers.CategoryAdmin,
		Args: []dispatchers.Argument{
			dispatchers.Required("age", "Keep invocations younger than this, e.g. 7d", providers.TypeDuration),
		},
		Action: func(_ *dispatchers.Context, values []any) (*dispatchers.Result, error) {
			if deps.Audit == nil {
				return dispatchers.Failure("Auditing is disabled."), nil
			}

			n, err := deps.Audit.Prune(deps.Now().Add(-values[0].(time.Duration)))
			if err != nil {
				return nil, err
			}
			return dispatchers.Successf("Deleted %d invocations.", n), nil
		},
	})

	configGroup(admin, deps)

	return admin
}

// configGroup adds "admin config" for reading and editing the rc file.
// Most settings are read at startup and apply on the next start.
func configGroup(admin *dispatchers.Node, deps Deps) {
	group := dispatchers.Group(dispatchers.GroupSpec{
		Name:     "config",
		Aliases:  []string{"cfg"},
		Parent:   admin,
		Summary:  "Read and change settings",
		Category: dispatchers.CategoryAdmin,
	})

	keyArg := dispatchers.Required("key", "Setting name", providers.TypeString)

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "list",
		Parent:   group,
		Summary:  "Show every setting",
		Category: dispatchers.CategoryAdmin,
		Action: func(*dispatchers.Context, []any) (*dispatchers.Result, error) {
			if deps.Config == nil {
				return dispatchers.Failure(noSettings), nil
			}

			all, err := deps.Config.GetAll()
			if err != nil {
				return nil, err
			}

			keys := domain.VisibleConfigKeys()
			lines := make([]string, len(keys))
			for i, k := range keys {
				lines[i] = k.Name + "=" + all[k.Name]
			}
			return dispatchers.Success(strings.Join(lines, "\n")), nil
		},
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "get",
		Parent:   group,
		Summary:  "Show one setting",
		Category: dispatchers.CategoryAdmin,
		Args:     []dispatchers.Argument{keyArg},
		Action: func(_ *dispatchers.Context, values []any) (*dispatchers.Result, error) {
			if deps.Config == nil {
				return dispatchers.Failure(noSettings), nil
			}

			key := strings.ToLower(values[0].(string))
			if !domain.IsValidConfigKey(key) {
				return dispatchers.Failuref("'%s' is not a setting.", key), nil
			}

			value, _ := deps.Config.Get(key)
			if value == "" {
				return dispatchers.Successf("%s is not set.", key), nil
			}
			return dispatchers.Successf("%s=%s", key, value), nil
		},
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "set",
		Parent:   group,
		Summary:  "Change a setting",
		Category: dispatchers.CategoryAdmin,
		Args: []dispatchers.Argument{
			keyArg,
			dispatchers.Variadic("value", "New value", providers.TypeJoined, 1, dispatchers.Unbounded),
		},
		Action: func(_ *dispatchers.Context, values []any) (*dispatchers.Result, error) {
			if deps.Config == nil {
				return dispatchers.Failure(noSettings), nil
			}

			key, value := strings.ToLower(values[0].(string)), values[1].(string)
			if !domain.IsValidConfigKey(key) {
				return dispatchers.Failuref("'%s' is not a setting.", key), nil
			}
			if err := deps.Config.Set(key, value); err != nil {
				return dispatchers.Failuref("Setting not changed: %v", err), nil
			}
			return dispatchers.Successf("Saved %s=%s.", key, value), nil
		},
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "unset",
		Aliases:  []string{"reset"},
		Parent:   group,
		Summary:  "Restore a setting's default",
		Category: dispatchers.CategoryAdmin,
		Args:     []dispatchers.Argument{keyArg},
		Action: func(_ *dispatchers.Context, values []any) (*dispatchers.Result, error) {
			if deps.Config == nil {
				return dispatchers.Failure(noSettings), nil
			}

			key := strings.ToLower(values[0].(string))
			if !domain.IsValidConfigKey(key) {
				return dispatchers.Failuref("'%s' is not a setting.", key), nil
			}
			if err := deps.Config.Unset(key); err != nil {
				return dispatchers.Failuref("Setting not changed: %v", err), nil
			}
			return dispatchers.Successf("%s is back to its default.", key), nil
		},
	})
}

const noSettings = "Settings cannot be changed from here."

func formatEntries(entries []domain.AuditEntry) string {
	layout := format.Current()
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = fmt.Sprintf("%s  %-10s %-16s %-12s %s",
			layout.Full(e.StartedAt.Local()),
			e.SenderName,
			e.Input,
			e.Kind,
			format.Elapsed(e.DurationMS),
		)
	}
	return strings.Join(lines, "\n")
}
