package homework

import (
	"encoding/json"
	"fmt"
)

const (
	keyHomeworks   = "homeworks"
	keyCurrentDate = "current_date"
)

// CheckResponse verifies the top-level shape of a decoded response and
// returns its homeworks list unchanged.
func CheckResponse(body any) ([]any, error) {
	obj, ok := body.(map[string]any)
	if !ok {
		return nil, &MalformedResponseError{Reason: fmt.Sprintf("expected JSON object, got %s", kindOf(body))}
	}
	raw, ok := obj[keyHomeworks]
	if !ok {
		return nil, ErrMissingHomeworksKey
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, &MalformedResponseError{Reason: fmt.Sprintf("%q is %s, not an array", keyHomeworks, kindOf(raw))}
	}
	return list, nil
}

// Record converts a homeworks list entry into a submission record.
func Record(entry any) (map[string]any, error) {
	rec, ok := entry.(map[string]any)
	if !ok {
		return nil, &MalformedResponseError{Reason: fmt.Sprintf("homework entry is %s, not an object", kindOf(entry))}
	}
	return rec, nil
}

// CurrentDate extracts the integer "current_date" field. ok is false when the
// field is absent or not an integer.
func CurrentDate(body any) (int64, bool) {
	obj, ok := body.(map[string]any)
	if !ok {
		return 0, false
	}
	switch v := obj[keyCurrentDate].(type) {
	case json.Number:
		n, err := v.Int64()
		return n, err == nil
	case float64:
		if v != float64(int64(v)) {
			return 0, false
		}
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	default:
		return 0, false
	}
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "bool"
	case json.Number, float64, int, int64:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
