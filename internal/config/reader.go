package config

import (
	"bufio"
	"os"
	"strings"

	"github.com/footprint-tools/cmdkit/internal/domain"
	"github.com/footprint-tools/cmdkit/internal/log"
	"github.com/footprint-tools/cmdkit/internal/paths"
)

// ReadLines returns the lines of the rc file, creating it with the default
// values of every visible key when it does not exist yet.
func ReadLines() ([]string, error) {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(configPath)
	isNew := os.IsNotExist(err) || (err == nil && info.Size() == 0)

	file, err := os.OpenFile(configPath, os.O_CREATE|os.O_RDONLY, 0600)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	if err := os.Chmod(configPath, 0600); err != nil {
		log.Warn("config: could not set permissions on config file: %v", err)
	}

	var lines []string
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := scanner.Text()
		line = strings.TrimSuffix(line, "\r") // Windows CRLF
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if isNew && len(lines) == 0 {
		lines = initializeDefaults()
		if err := WriteLines(lines); err != nil {
			log.Warn("config: could not write default config: %v", err)
		}
	}

	return lines, nil
}

// initializeDefaults creates config lines with default values for visible keys.
func initializeDefaults() []string {
	var lines []string

	lines = append(lines, "# cmdsh configuration")
	lines = append(lines, "# Environment variables named CMDSH_<KEY> take precedence over this file.")

	section := ""
	for _, key := range domain.ConfigKeys {
		if key.Hidden {
			continue
		}

		if key.Section != section {
			section = key.Section
			lines = append(lines, "", "# "+section)
		}

		value := key.Default
		if fn, ok := Defaults[key.Name]; ok {
			value = fn()
		}

		if strings.Contains(value, " ") {
			value = "\"" + value + "\""
		}

		if key.HideIfEmpty {
			lines = append(lines, "# "+key.Name+"=")
		} else {
			lines = append(lines, key.Name+"="+value)
		}
	}

	return lines
}
