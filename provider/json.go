package provider

import (
	"encoding/json"
	"mime"
	"net/http"

	"form-binder/form"
)

// JSON reads a JSON object body.
type JSON struct {
	// Method is the method the form is submitted with, POST by default.
	Method string
}

func (p JSON) Handle(r *http.Request, f *form.Form) (map[string]any, bool) {
	if !methodMatches(r, p.Method) || r.Body == nil {
		return nil, false
	}

	if ct := r.Header.Get("Content-Type"); ct != "" {
		if mediaType, _, err := mime.ParseMediaType(ct); err != nil || mediaType != "application/json" {
			return nil, false
		}
	}

	var data map[string]any
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		f.Logger().Debugw("request body is not a JSON object", "form", f.Name(), "error", err)
		return nil, false
	}

	return data, submits(data, f)
}
