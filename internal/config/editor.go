package config

import "strings"

// assignment returns the key a line assigns and the inline comment after
// its value. ok is false for blank lines, comments and lines without '='.
func assignment(line string) (key, comment string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false
	}

	key, value, found := strings.Cut(trimmed, "=")
	if !found {
		return "", "", false
	}
	if i := strings.Index(value, "#"); i >= 0 {
		comment = strings.TrimSpace(value[i:])
	}
	return strings.TrimSpace(key), comment, true
}

// quote wraps values containing spaces the way Parse expects them.
func quote(value string) string {
	if strings.ContainsAny(value, " \t") {
		return "\"" + value + "\""
	}
	return value
}

// Set assigns value to key in lines. The first assignment of key is
// rewritten in place, keeping its inline comment; otherwise key=value is
// appended. It reports whether key was already assigned.
func Set(lines []string, key, value string) ([]string, bool) {
	line := key + "=" + quote(value)

	for i, l := range lines {
		k, comment, ok := assignment(l)
		if !ok || k != key {
			continue
		}
		if comment != "" {
			lines[i] = line + " " + comment
		} else {
			lines[i] = line
		}
		return lines, true
	}

	return append(lines, line), false
}

// Unset drops every assignment of key, leaving comments and blank lines
// alone. It reports whether anything was dropped.
func Unset(lines []string, key string) ([]string, bool) {
	var kept []string
	removed := false

	for _, l := range lines {
		if k, _, ok := assignment(l); ok && k == key {
			removed = true
			continue
		}
		kept = append(kept, l)
	}

	return kept, removed
}
