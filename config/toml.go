package config

import (
	"fmt"
	"strconv"
	"strings"
)

// parseTOML reads the subset of TOML the config file uses:
// comments, [section] headers and key = value pairs with string, bool,
// integer and float values. Keys before the first header land in section "".
func parseTOML(data []byte) (map[string]map[string]any, error) {
	result := map[string]map[string]any{"": {}}
	section := ""

	for n, line := range strings.Split(string(data), "\n") {
		lineNo := n + 1
		line = strings.TrimSpace(stripComment(line))
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "[") {
			if !strings.HasSuffix(line, "]") || strings.HasPrefix(line, "[[") {
				return nil, fmt.Errorf("line %d: malformed table header %q", lineNo, line)
			}
			section = strings.TrimSpace(line[1 : len(line)-1])
			if !isBareKey(section) {
				return nil, fmt.Errorf("line %d: invalid table name %q", lineNo, section)
			}
			if _, dup := result[section]; dup {
				return nil, fmt.Errorf("line %d: table [%s] defined twice", lineNo, section)
			}
			result[section] = map[string]any{}
			continue
		}

		key, raw, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("line %d: expected key = value", lineNo)
		}
		key = strings.TrimSpace(key)
		if !isBareKey(key) {
			return nil, fmt.Errorf("line %d: invalid key %q", lineNo, key)
		}

		val, err := parseValue(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("line %d: key %q: %w", lineNo, key, err)
		}

		table := result[section]
		if _, dup := table[key]; dup {
			return nil, fmt.Errorf("line %d: key %q defined twice", lineNo, key)
		}
		table[key] = val
	}

	return result, nil
}

// stripComment removes a trailing # comment outside of double quotes
func stripComment(line string) string {
	inString := false
	escaped := false
	for i, r := range line {
		switch {
		case escaped:
			escaped = false
		case r == '\\' && inString:
			escaped = true
		case r == '"':
			inString = !inString
		case r == '#' && !inString:
			return line[:i]
		}
	}
	return line
}

// parseValue converts a scalar literal to string, bool, int64 or float64
func parseValue(s string) (any, error) {
	switch {
	case s == "":
		return nil, fmt.Errorf("missing value")
	case s == "true":
		return true, nil
	case s == "false":
		return false, nil
	case strings.HasPrefix(s, `"`):
		v, err := strconv.Unquote(s)
		if err != nil {
			return nil, fmt.Errorf("bad string %s", s)
		}
		return v, nil
	}

	clean := strings.ReplaceAll(s, "_", "")
	if i, err := strconv.ParseInt(clean, 10, 64); err == nil {
		return i, nil
	}
	if f, err := strconv.ParseFloat(clean, 64); err == nil {
		return f, nil
	}
	return nil, fmt.Errorf("unsupported value %s", s)
}

// isBareKey checks if string can be used as an unquoted TOML key
func isBareKey(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return false
		}
	}
	return true
}
