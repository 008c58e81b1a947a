package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvPrefix is prepended to the upper-cased key name to form the
// environment variable overriding it, e.g. CMDSH_LOG_LEVEL.
const EnvPrefix = "CMDSH_"

// Settings is the typed view of the configuration used at startup.
type Settings struct {
	Prefix       string        `env:"PREFIX"`
	Permissions  []string      `env:"PERMISSIONS" envSeparator:","`
	SenderName   string        `env:"SENDER_NAME"`
	Theme        string        `env:"THEME"`
	EnableLog    bool          `env:"ENABLE_LOG"`
	LogLevel     string        `env:"LOG_LEVEL"`
	AsyncWorkers int           `env:"ASYNC_WORKERS"`
	AsyncQueue   int           `env:"ASYNC_QUEUE"`
	Cooldown     time.Duration `env:"COOLDOWN"`
	ChoicesFile  string        `env:"CHOICES_FILE"`
	AuditEnabled bool          `env:"AUDIT_ENABLED"`
	AuditPath    string        `env:"AUDIT_PATH"`
}

// Load merges defaults, the rc file and the environment, in increasing
// precedence. dotenv files are loaded into the environment first without
// replacing variables that are already set; with none given, ./.env is used
// when it exists.
func Load(dotenv ...string) (Settings, error) {
	if err := loadDotenv(dotenv); err != nil {
		return Settings{}, err
	}

	values, err := GetAll()
	if err != nil {
		return Settings{}, err
	}

	s, err := FromMap(values)
	if err != nil {
		return Settings{}, err
	}

	if err := env.ParseWithOptions(&s, env.Options{Prefix: EnvPrefix}); err != nil {
		return Settings{}, fmt.Errorf("config: environment: %w", err)
	}

	s.Permissions = cleanList(s.Permissions)
	return s, nil
}

func loadDotenv(files []string) error {
	if len(files) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: .env: %w", err)
		}
		return nil
	}

	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("config: dotenv: %w", err)
	}
	return nil
}

// FromMap builds Settings from raw key=value pairs.
func FromMap(values map[string]string) (Settings, error) {
	var (
		s   Settings
		err error
	)

	s.Prefix = values["prefix"]
	s.Permissions = cleanList(strings.Split(values["permissions"], ","))
	s.SenderName = values["sender_name"]
	s.Theme = values["theme"]
	s.LogLevel = values["log_level"]
	s.ChoicesFile = values["choices_file"]
	s.AuditPath = values["audit_path"]

	if s.EnableLog, err = parseBool("enable_log", values["enable_log"]); err != nil {
		return Settings{}, err
	}
	if s.AuditEnabled, err = parseBool("audit_enabled", values["audit_enabled"]); err != nil {
		return Settings{}, err
	}
	if s.AsyncWorkers, err = parseInt("async_workers", values["async_workers"]); err != nil {
		return Settings{}, err
	}
	if s.AsyncQueue, err = parseInt("async_queue", values["async_queue"]); err != nil {
		return Settings{}, err
	}
	if s.Cooldown, err = parseDuration("cooldown", values["cooldown"]); err != nil {
		return Settings{}, err
	}

	return s, nil
}

func parseBool(key, value string) (bool, error) {
	if value == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("config: %s: invalid boolean '%s'", key, value)
	}
	return b, nil
}

func parseInt(key, value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("config: %s: invalid integer '%s'", key, value)
	}
	return n, nil
}

func parseDuration(key, value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("config: %s: invalid duration '%s'", key, value)
	}
	return d, nil
}

func cleanList(items []string) []string {
	var out []string
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// HasPermission reports whether the settings grant permission. '*' grants
// everything.
func (s Settings) HasPermission(permission string) bool {
	for _, p := range s.Permissions {
		if p == "*" || strings.EqualFold(p, permission) {
			return true
		}
	}
	return false
}
