// Package provider extracts submitted form data from HTTP requests.
//
// Field names use the bracket notation produced by form.Element.FormName:
//
//	person[last_name]=Giron
//	person[addresses][0][city]=Paris
//	person[tags][]=a&person[tags][]=b
//
// and are parsed into nested maps ready for form.Form.Submit.
package provider

import (
	"net/http"
	"strings"

	"form-binder/form"
)

// DataProvider reads the data submitted for a form. It reports false when
// the request does not submit the form.
type DataProvider interface {
	Handle(r *http.Request, f *form.Form) (map[string]any, bool)
}

// Submit submits f with the data p reads from r.
func Submit(p DataProvider, r *http.Request, f *form.Form) (bool, error) {
	data, ok := p.Handle(r, f)
	if !ok {
		return false, nil
	}

	return f.Submit(data)
}

func methodMatches(r *http.Request, method string) bool {
	if method == "" {
		method = http.MethodPost
	}

	return strings.EqualFold(r.Method, method)
}

// submits reports whether data holds the entry of a named form. An
// anonymous form is submitted by any non empty payload.
func submits(data map[string]any, f *form.Form) bool {
	if f.Name() == "" {
		return len(data) > 0
	}

	_, ok := data[f.Name()]

	return ok
}
