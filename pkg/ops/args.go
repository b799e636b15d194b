package ops

import "strconv"

// Argument accessors tolerant of missing slots and loosely-typed recipe
// documents (YAML/JSON decode numbers as float64, flags sometimes as strings).

func argValue(args []any, i int) any {
	if i < 0 || i >= len(args) {
		return nil
	}
	return args[i]
}

func argString(args []any, i int) string {
	if s, ok := argValue(args, i).(string); ok {
		return s
	}
	return ""
}

func argInt(args []any, i, def int) int {
	switch v := argValue(args, i).(type) {
	case int:
		return v
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func argBool(args []any, i int) bool {
	switch v := argValue(args, i).(type) {
	case bool:
		return v
	case string:
		return v == "true" || v == "yes" || v == "1"
	}
	return false
}
