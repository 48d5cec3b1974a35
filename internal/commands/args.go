package commands

import (
	"fmt"
	"strings"
)

// parseAssignments turns key=value arguments into a body map. Repeated keys
// collect into a []string, as a form submission would.
func parseAssignments(args []string) (map[string]any, error) {
	body := make(map[string]any, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid value %q: expected key=value", arg)
		}
		switch existing := body[key].(type) {
		case nil:
			body[key] = value
		case string:
			body[key] = []string{existing, value}
		case []string:
			body[key] = append(existing, value)
		}
	}
	return body, nil
}
