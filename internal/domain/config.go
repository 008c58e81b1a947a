package domain

// ConfigKey defines a configuration key with its metadata.
type ConfigKey struct {
	Name        string
	Default     string
	Description string
	Section     string // Section for grouping in listings (Console, Logging, ...)
	Hidden      bool   // Hidden keys are not shown in listings
	HideIfEmpty bool   // Only listed if explicitly set
}

// ConfigKeys defines all available configuration keys.
// This is the single source of truth for configuration.
var ConfigKeys = []ConfigKey{
	// Console
	{
		Name:        "prefix",
		Default:     "",
		Description: "Prefix a line must start with to be read as a command (empty accepts every line)",
		Section:     "Console",
	},
	{
		Name:        "permissions",
		Default:     "",
		Description: "Comma-separated permissions granted to the console sender ('*' grants all)",
		Section:     "Console",
	},
	{
		Name:        "sender_name",
		Default:     "console",
		Description: "Display name of the console sender",
		Section:     "Console",
	},
	{
		Name:        "theme",
		Default:     "default",
		Description: "Color theme: default, mono",
		Section:     "Console",
	},
	{
		Name:        "display_date",
		Default:     "yyyy-mm-dd",
		Description: "Date format: yyyy-mm-dd, dd/mm/yyyy, mm/dd/yyyy or a Go layout",
		Section:     "Console",
	},
	{
		Name:        "display_time",
		Default:     "24h",
		Description: "Time format: 24h or 12h",
		Section:     "Console",
	},
	// Logging
	{
		Name:        "enable_log",
		Default:     "true",
		Description: "Enable logging to file (true/false)",
		Section:     "Logging",
	},
	{
		Name:        "log_level",
		Default:     "info",
		Description: "Minimum log level: debug, info, warn, error",
		Section:     "Logging",
	},
	// Execution
	{
		Name:        "async_workers",
		Default:     "4",
		Description: "Workers running async commands",
		Section:     "Execution",
	},
	{
		Name:        "async_queue",
		Default:     "64",
		Description: "Async invocations that may wait for a worker",
		Section:     "Execution",
	},
	{
		Name:        "cooldown",
		Default:     "0s",
		Description: "Minimum time between two commands of the same sender, e.g. 500ms (0s disables it)",
		Section:     "Execution",
	},
	{
		Name:        "choices_file",
		Default:     "",
		Description: "YAML file defining choice argument types (watched for changes)",
		Section:     "Execution",
		HideIfEmpty: true,
	},
	// Audit
	{
		Name:        "audit_enabled",
		Default:     "false",
		Description: "Record every dispatched command in the audit database (true/false)",
		Section:     "Audit",
	},
	{
		Name:        "audit_path",
		Default:     "", // Set dynamically to paths.AuditDBPath()
		Description: "Path to the audit database",
		Section:     "Audit",
		HideIfEmpty: true,
	},
}

// configKeyMap is a lookup map for configuration keys.
var configKeyMap map[string]ConfigKey

func init() {
	configKeyMap = make(map[string]ConfigKey, len(ConfigKeys))
	for _, key := range ConfigKeys {
		configKeyMap[key.Name] = key
	}
}

// GetConfigKey returns the ConfigKey for a given name.
func GetConfigKey(name string) (ConfigKey, bool) {
	key, ok := configKeyMap[name]
	return key, ok
}

// IsValidConfigKey checks if a key name is valid.
func IsValidConfigKey(name string) bool {
	_, ok := configKeyMap[name]
	return ok
}

// VisibleConfigKeys returns all non-hidden configuration keys.
func VisibleConfigKeys() []ConfigKey {
	var visible []ConfigKey
	for _, key := range ConfigKeys {
		if !key.Hidden {
			visible = append(visible, key)
		}
	}
	return visible
}

// ConfigSections returns the ordered list of section names.
func ConfigSections() []string {
	return []string{"Console", "Logging", "Execution", "Audit"}
}
