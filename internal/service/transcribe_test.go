package service

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kdduha/vision-relay/internal/config"
	"github.com/kdduha/vision-relay/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscribe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/audio/transcriptions", r.URL.Path)

		if assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			assert.Equal(t, "whisper-1", r.FormValue("model"))
			assert.Equal(t, "en", r.FormValue("language"))

			file, hdr, err := r.FormFile("file")
			if assert.NoError(t, err) {
				defer file.Close()
				assert.Equal(t, "recording.m4a", hdr.Filename)
				payload, _ := io.ReadAll(file)
				assert.Equal(t, "fake audio", string(payload))
			}
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text":"what is in front of me"}`))
	}))
	defer srv.Close()

	svc := NewTranscribeService(logging.Discard(), newOpenAIClient(srv.URL), config.OpenAIConfig{
		TranscribeModel:    "whisper-1",
		TranscribeLanguage: "en",
	})

	text, err := svc.Transcribe(context.Background(), strings.NewReader("fake audio"), "recording.m4a", "audio/mp4")
	require.NoError(t, err)
	assert.Equal(t, "what is in front of me", text)
}

func TestTranscribe_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"Invalid file format."}}`))
	}))
	defer srv.Close()

	svc := NewTranscribeService(logging.Discard(), newOpenAIClient(srv.URL), config.OpenAIConfig{TranscribeModel: "whisper-1"})

	_, err := svc.Transcribe(context.Background(), strings.NewReader("x"), "a.wav", "audio/wav")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}
