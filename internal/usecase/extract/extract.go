package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// Value evaluates a JSONPath expression against a JSON document and renders the
// match as a string. Scalars print bare; objects and multi-element arrays print as JSON.
func Value(doc []byte, expr string) (string, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return "", fmt.Errorf("empty jsonpath expression")
	}

	parsed, err := parseJSON(doc)
	if err != nil {
		return "", fmt.Errorf("document is not valid JSON: %w", err)
	}

	val, err := jsonpath.Get(expr, parsed)
	if err != nil {
		return "", fmt.Errorf("%s: jsonpath error: %w", expr, err)
	}
	if isEmptyValue(val) {
		return "", fmt.Errorf("%s: no value found", expr)
	}

	s, err := toString(val)
	if err != nil {
		return "", fmt.Errorf("%s: cannot convert value to string: %w", expr, err)
	}
	return s, nil
}

func parseJSON(body []byte) (any, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}

func toString(v any) (string, error) {
	// jsonpath wildcards return a slice; a single match prints as the element.
	if arr, ok := v.([]any); ok {
		if len(arr) == 0 {
			return "", fmt.Errorf("empty array")
		}
		if len(arr) == 1 {
			return toString(arr[0])
		}
		b, err := json.Marshal(arr)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	switch t := v.(type) {
	case string:
		return t, nil
	case bool, int, int64, uint64:
		return fmt.Sprint(t), nil
	case float64:
		return fmt.Sprint(t), nil
	case map[string]any:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return fmt.Sprint(t), nil
	}
}
