package utils

import (
	"bytes"
	"encoding/json"
)

func IsValidValueOfConstant(value string, constantValues []string) bool {
	for _, r := range constantValues {
		if r == value {
			return true
		}
	}
	return false
}

// IsEmptyBody reports a body that is blank, not JSON, or an empty object/array.
func IsEmptyBody(body []byte) bool {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return true
	}

	var decoded interface{}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return true
	}
	switch v := decoded.(type) {
	case map[string]interface{}:
		return len(v) == 0
	case []interface{}:
		return len(v) == 0
	case nil:
		return true
	}
	return false
}
