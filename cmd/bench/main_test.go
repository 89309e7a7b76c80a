package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHumanBytes(t *testing.T) {
	assert.Equal(t, "512 B", humanBytes(512))
	assert.Equal(t, "1.50 KB", humanBytes(1536))
	assert.Equal(t, "2.00 MB", humanBytes(2<<20))
	assert.Equal(t, "1.00 GB", humanBytes(1<<30))
}

func TestRenderMarkdown(t *testing.T) {
	out := renderMarkdown([]BenchResult{
		{File: "a.jpg", Duration: time.Second, Size: 2048},
		{File: "b.jpg", Duration: 3 * time.Second, Size: 2048},
		{File: "c.jpg", Err: errors.New("bad status 500: boom")},
	})

	assert.Contains(t, out, "| 2 | 1 | 2s | 4s | 2.00 KB |")
}

func TestRenderMarkdown_AllFailed(t *testing.T) {
	out := renderMarkdown([]BenchResult{{File: "a.jpg", Err: errors.New("x")}})
	assert.Contains(t, out, "| 0 | 1 | - | - | - |")
}

func TestBenchmarkImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"response":"I see a cat."}`))
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "cat.jpg")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xd8, 0xff}, 0o600))

	res := benchmarkImage(context.Background(), srv.Client(), srv.URL, path, "")
	require.NoError(t, res.Err)
	assert.Equal(t, "cat.jpg", res.File)
	assert.Equal(t, int64(3), res.Size)
	assert.Equal(t, len("I see a cat."), res.Chars)
}

func TestAnalyze_ErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Missing 'image' in request"}`))
	}))
	defer srv.Close()

	_, err := analyze(context.Background(), srv.Client(), srv.URL, AnalyzeRequest{})
	require.Error(t, err)
	assert.Equal(t, "bad status 400: Missing 'image' in request", err.Error())
}
