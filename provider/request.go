package provider

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"form-binder/form"
	"form-binder/internal/common"
)

// DefaultMaxMemory bounds the multipart data kept in memory.
const DefaultMaxMemory = 32 << 20

// Request reads urlencoded and multipart bodies, or the query string for GET
// forms. Uploaded files are submitted as *multipart.FileHeader values.
type Request struct {
	// Method is the method the form is submitted with, POST by default.
	Method    string
	MaxMemory int64
}

func (p Request) Handle(r *http.Request, f *form.Form) (map[string]any, bool) {
	if !methodMatches(r, p.Method) {
		return nil, false
	}

	var values url.Values

	if r.Method == http.MethodGet {
		values = r.URL.Query()
	} else {
		maxMemory := p.MaxMemory
		if maxMemory == 0 {
			maxMemory = DefaultMaxMemory
		}

		err := r.ParseMultipartForm(maxMemory)
		if err != nil && !errors.Is(err, http.ErrNotMultipart) {
			f.Logger().Debugw("request body cannot be parsed", "form", f.Name(), "error", err)
			return nil, false
		}

		values = r.Form
	}

	data := ParseValues(values)

	if r.MultipartForm != nil {
		for name, files := range r.MultipartForm.File {
			list := make([]any, 0, len(files))
			for _, fh := range files {
				list = append(list, fh)
			}

			insert(data, ParseName(name), list)
		}
	}

	return data, submits(data, f)
}

// ParseName splits a bracket name into its path segments. An empty
// segment ("tags[]") stands for the next index.
func ParseName(name string) []string {
	head, rest, found := strings.Cut(name, "[")
	if !found {
		return []string{name}
	}

	segments := []string{head}

	for rest != "" {
		segment, after, ok := strings.Cut(rest, "]")
		if !ok {
			// unbalanced brackets are kept literally in the last segment
			segments[len(segments)-1] += "[" + rest
			break
		}

		segments = append(segments, segment)

		if !strings.HasPrefix(after, "[") {
			break
		}

		rest = after[1:]
	}

	return segments
}

// ParseValues turns bracket named values into nested maps. A name with
// several values yields a list.
func ParseValues(values url.Values) map[string]any {
	data := map[string]any{}

	for name, vs := range values {
		list := make([]any, 0, len(vs))
		for _, v := range vs {
			list = append(list, v)
		}

		insert(data, ParseName(name), list)
	}

	return data
}

func insert(data map[string]any, path []string, values []any) {
	node := data

	for _, segment := range path[:len(path)-1] {
		if segment == "" {
			segment = common.NextKey(keys(node))
		}

		child, ok := node[segment].(map[string]any)
		if !ok {
			child = map[string]any{}
			node[segment] = child
		}

		node = child
	}

	last := path[len(path)-1]
	if last == "" {
		for _, v := range values {
			node[common.NextKey(keys(node))] = v
		}

		return
	}

	switch len(values) {
	case 0:
		node[last] = nil
	case 1:
		node[last] = values[0]
	default:
		node[last] = values
	}
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}

	return out
}
