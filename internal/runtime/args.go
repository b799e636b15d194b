package runtime

import (
	"strconv"

	"github.com/quernlab/quern/pkg/domain"
)

// Ingredient accessors for flow-control operations. Recipe documents are
// loosely typed (YAML/JSON decode numbers as float64, flags sometimes as
// strings), so these coerce instead of panicking.

func argValue(op *domain.Operation, i int) any {
	if i < 0 || i >= len(op.Ingredients) {
		return nil
	}
	return op.Ingredients[i].Value
}

func argString(op *domain.Operation, i int) string {
	switch v := argValue(op, i).(type) {
	case string:
		return v
	case *domain.ToggleText:
		return v.Text
	}
	return ""
}

func argInt(op *domain.Operation, i, def int) int {
	switch v := argValue(op, i).(type) {
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

func argBool(op *domain.Operation, i int) bool {
	switch v := argValue(op, i).(type) {
	case bool:
		return v
	case string:
		return v == "true" || v == "yes" || v == "1"
	}
	return false
}
