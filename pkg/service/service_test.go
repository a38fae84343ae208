package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icubam/bedmap-colorize/pkg/colorize"
)

func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	svc := New("127.0.0.1", 0, colorize.DefaultOptions())
	ts := httptest.NewServer(svc.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postColorize(t *testing.T, ts *httptest.Server, body string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Post(ts.URL+"/api/colorize", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, buf.Bytes()
}

func TestHandleHealth(t *testing.T) {
	ts := setupTestServer(t)

	resp, err := http.Get(ts.URL + "/api/health")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestHandleThemes(t *testing.T) {
	ts := setupTestServer(t)

	resp, err := http.Get(ts.URL + "/api/themes")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var themes map[string]colorize.Theme
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&themes))
	assert.Equal(t, colorize.BuiltinThemes(), themes)
}

func TestHandleColorize(t *testing.T) {
	ts := setupTestServer(t)

	resp, body := postColorize(t, ts, `{"cells":[
		{"id":"a","text":"10"},
		{"id":"b","text":"20"},
		{"id":"c","text":"30"},
		{"id":"d","text":"n/a"}
	]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var out ColorizeResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, []colorize.ColorResult{
		{ID: "a", Background: "#E48080", Text: "black"},
		{ID: "b", Background: "#FFFFFF", Text: "black"},
		{ID: "c", Background: "#88D2A5", Text: "black"},
	}, out.Results)
}

func TestHandleColorize_Overrides(t *testing.T) {
	ts := setupTestServer(t)

	resp, body := postColorize(t, ts, `{
		"cells":[{"id":"a","text":"100"},{"id":"b","text":"50"}],
		"theme":"blue-white-red","max":100,"readable":false
	}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var out ColorizeResponse
	require.NoError(t, json.Unmarshal(body, &out))
	require.Len(t, out.Results, 2)
	assert.Equal(t, "#C80000", out.Results[0].Background)
	assert.Empty(t, out.Results[0].Text)
	assert.NotContains(t, string(body), "textColor")
}

func TestHandleColorize_Errors(t *testing.T) {
	ts := setupTestServer(t)

	tests := []struct {
		name string
		body string
		want string
	}{
		{"unknown theme", `{"cells":[{"id":"a","text":"1"}],"theme":"rainbow"}`, "unknown theme"},
		{"malformed json", `{"cells":`, "Invalid request"},
		{"unknown field", `{"cells":[],"colour":"red"}`, "Invalid request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := postColorize(t, ts, tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Contains(t, string(body), tt.want)
		})
	}

	// a failed request does not affect the next one
	resp, _ := postColorize(t, ts, `{"cells":[{"id":"a","text":"1"}]}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestOptions(t *testing.T) {
	svc := New("", 0, colorize.DefaultOptions())
	f := false
	opts := svc.options(ColorizeRequest{
		Center:       colorize.Float(3),
		Percent:      new(bool),
		ZeroAnchored: &f,
	})
	assert.Equal(t, colorize.DefaultTheme, opts.Theme)
	assert.Equal(t, 3.0, *opts.Center)
	assert.False(t, opts.Percent)
	assert.False(t, opts.ZeroAnchored)
	assert.True(t, opts.Readable)
	assert.True(t, svc.defaults.ZeroAnchored, "defaults are not mutated")
}

func TestShutdownWithoutStart(t *testing.T) {
	svc := New("127.0.0.1", 0, colorize.DefaultOptions())
	assert.NoError(t, svc.Shutdown(context.Background()))
}
