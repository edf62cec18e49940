package chart

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var barConfig = json.RawMessage(`{"type":"bar","data":{"labels":["A"],"datasets":[{"label":"x","data":[1]}]}}`)

func TestRender_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)

		var req map[string]any
		assert.NoError(t, json.Unmarshal(body, &req))
		assert.EqualValues(t, 600, req["width"])
		assert.EqualValues(t, 400, req["height"])
		assert.Equal(t, "white", req["backgroundColor"])
		assert.Equal(t, "png", req["format"])
		assert.NotNil(t, req["chart"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"url":"https://quickchart.io/chart/render/abc123"}`))
	}))
	defer srv.Close()

	url, ok := NewRenderer(srv.URL).Render(context.Background(), barConfig)
	require.True(t, ok)
	assert.Equal(t, "https://quickchart.io/chart/render/abc123", url)
}

func TestRender_EmptyConfigSkipsCall(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for empty config")
	}))
	defer srv.Close()

	_, ok := NewRenderer(srv.URL).Render(context.Background(), nil)
	assert.False(t, ok)
}

func TestRender_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, ok := NewRenderer(srv.URL).Render(context.Background(), barConfig)
	assert.False(t, ok)
}

func TestRender_MissingURLField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	_, ok := NewRenderer(srv.URL).Render(context.Background(), barConfig)
	assert.False(t, ok)
}

func TestRender_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // closed on purpose

	_, ok := NewRenderer(srv.URL).Render(context.Background(), barConfig)
	assert.False(t, ok)
}
