package transformer

import (
	"encoding/json"
	"strings"
)

// JSON stores structured data in a single text field as encoded JSON.
type JSON struct {
	// StripNulls drops null members from decoded objects and arrays.
	StripNulls bool
}

func (j JSON) ToForm(value any, _ Target) any {
	if value == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return nil
	}

	return string(data)
}

func (j JSON) FromForm(value any, _ Target) any {
	s, ok := value.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return nil
	}

	var decoded any
	if err := json.Unmarshal([]byte(s), &decoded); err != nil {
		return nil
	}

	if j.StripNulls {
		decoded = stripNulls(decoded)
	}

	return decoded
}

func stripNulls(value any) any {
	switch v := value.(type) {
	case map[string]any:
		for k, item := range v {
			if item == nil {
				delete(v, k)
				continue
			}

			v[k] = stripNulls(item)
		}
	case []any:
		out := v[:0]
		for _, item := range v {
			if item != nil {
				out = append(out, stripNulls(item))
			}
		}

		return out
	}

	return value
}
