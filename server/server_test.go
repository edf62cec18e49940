package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daily_finance_mailer/generator"
	"daily_finance_mailer/history"
)

type stubGen struct {
	lesson generator.Lesson
	err    error
}

func (s stubGen) NextLesson(context.Context, []history.Record) (generator.Lesson, error) {
	return s.lesson, s.err
}

type stubCharts struct{ url string }

func (s stubCharts) Render(context.Context, json.RawMessage) (string, bool) {
	return s.url, s.url != ""
}

type emptyStore struct{}

func (emptyStore) Load() []history.Record                { return nil }
func (emptyStore) Append(string, []history.Record) error { return nil }

func newTestServer(t *testing.T, gen stubGen, charts stubCharts) *httptest.Server {
	t.Helper()
	srv, err := New(gen, charts, emptyStore{})
	require.NoError(t, err)
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)
	return ts
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t, stubGen{}, stubCharts{})

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestPreviewJSON(t *testing.T) {
	lesson := generator.Lesson{Topic: "Budgeting", Subject: "s", HTMLBody: "<p>b</p>"}
	ts := newTestServer(t, stubGen{lesson: lesson}, stubCharts{})

	resp, err := http.Post(ts.URL+"/api/preview", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got generator.Lesson
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "Budgeting", got.Topic)
}

func TestPreviewJSON_MethodNotAllowed(t *testing.T) {
	ts := newTestServer(t, stubGen{}, stubCharts{})

	resp, err := http.Get(ts.URL + "/api/preview")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestPreviewHTML(t *testing.T) {
	lesson := generator.Lesson{
		Topic:       "Budgeting",
		HTMLBody:    "<p>b</p>",
		ChartConfig: json.RawMessage(`{"type":"bar"}`),
	}
	ts := newTestServer(t, stubGen{lesson: lesson}, stubCharts{url: "https://example.com/c.png"})

	resp, err := http.Get(ts.URL + "/preview")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Daily Finance Byte")
	assert.Contains(t, string(body), "https://example.com/c.png")
}

func TestPreview_GenerationFailure(t *testing.T) {
	ts := newTestServer(t, stubGen{err: errors.New("model down")}, stubCharts{})

	resp, err := http.Get(ts.URL + "/preview")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}
