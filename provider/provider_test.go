package provider_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"form-binder/form"
	"form-binder/provider"
)

func TestParseName(t *testing.T) {
	tests := []struct {
		name string
		want []string
	}{
		{name: "q", want: []string{"q"}},
		{name: "person[last_name]", want: []string{"person", "last_name"}},
		{name: "person[addresses][0][zip]", want: []string{"person", "addresses", "0", "zip"}},
		{name: "tags[]", want: []string{"tags", ""}},
		{name: "broken[name", want: []string{"broken[name"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, provider.ParseName(tt.name))
		})
	}
}

func TestParseValues(t *testing.T) {
	values := url.Values{
		"person[last_name]":          {"Giron"},
		"person[addresses][0][city]": {"Paris"},
		"person[addresses][1][city]": {"Lyon"},
		"person[tags][]":             {"a", "b"},
		"person[roles]":              {"admin", "user"},
	}

	assert.Equal(t, map[string]any{
		"person": map[string]any{
			"last_name": "Giron",
			"addresses": map[string]any{
				"0": map[string]any{"city": "Paris"},
				"1": map[string]any{"city": "Lyon"},
			},
			"tags":  map[string]any{"0": "a", "1": "b"},
			"roles": []any{"admin", "user"},
		},
	}, provider.ParseValues(values))
}

func newForm() *form.Form {
	f := form.NewForm("person", nil)
	f.Add(form.NewText("last_name"), form.NewCollection("tags", form.NewText("")))

	return f
}

func TestRequest_Urlencoded(t *testing.T) {
	body := url.Values{"person[last_name]": {"Giron"}, "person[tags][]": {"a", "b"}}.Encode()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	f := newForm()

	ok, err := provider.Submit(provider.Request{}, r, f)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, map[string]any{
		"last_name": "Giron",
		"tags":      map[string]any{"0": "a", "1": "b"},
	}, f.Value())
}

func TestRequest_MethodAndName(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?person[last_name]=Giron", nil)

	_, ok := provider.Request{}.Handle(r, newForm())
	assert.False(t, ok, "POST is expected by default")

	data, ok := provider.Request{Method: http.MethodGet}.Handle(r, newForm())
	require.True(t, ok)
	assert.Equal(t, map[string]any{"person": map[string]any{"last_name": "Giron"}}, data)

	r = httptest.NewRequest(http.MethodGet, "/?other[last_name]=Giron", nil)
	_, ok = provider.Request{Method: http.MethodGet}.Handle(r, newForm())
	assert.False(t, ok, "form key is missing")
}

func TestRequest_Multipart(t *testing.T) {
	var buf bytes.Buffer

	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("person[last_name]", "Giron"))

	fw, err := w.CreateFormFile("person[avatar]", "avatar.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("png"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r := httptest.NewRequest(http.MethodPost, "/", &buf)
	r.Header.Set("Content-Type", w.FormDataContentType())

	data, ok := provider.Request{}.Handle(r, newForm())
	require.True(t, ok)

	person := data["person"].(map[string]any)
	assert.Equal(t, "Giron", person["last_name"])

	fh, ok := person["avatar"].(*multipart.FileHeader)
	require.True(t, ok)
	assert.Equal(t, "avatar.png", fh.Filename)
}

func TestJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"person":{"last_name":"Giron","tags":["a"]}}`))
	r.Header.Set("Content-Type", "application/json; charset=utf-8")

	f := newForm()

	ok, err := provider.Submit(provider.JSON{}, r, f)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"last_name": "Giron", "tags": map[string]any{"0": "a"}}, f.Value())

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`[1, 2]`))
	_, ok = provider.JSON{}.Handle(r, newForm())
	assert.False(t, ok)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
	r.Header.Set("Content-Type", "text/plain")
	_, ok = provider.JSON{}.Handle(r, newForm())
	assert.False(t, ok)
}
