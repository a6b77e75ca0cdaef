package whisper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTranscribeSendsMultipartForm
func TestTranscribeSendsMultipartForm(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/audio/transcriptions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "whisper-1", r.FormValue("model"))
		assert.Equal(t, "sk", r.FormValue("language"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "recording.webm", header.Filename)

		w.Write([]byte(`{"text": "Potrebujem automatizovať faktúry"}`))
	}))
	defer server.Close()

	c := NewClient("test-key")
	c.baseURL = server.URL

	text, err := c.Transcribe(context.Background(), "recording.webm", strings.NewReader("fake-audio"))

	require.NoError(t, err)
	assert.Equal(t, "Potrebujem automatizovať faktúry", text)
}

// TestTranscribeAPIError
func TestTranscribeAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"message": "invalid key"}}`))
	}))
	defer server.Close()

	c := NewClient("bad-key")
	c.baseURL = server.URL

	_, err := c.Transcribe(context.Background(), "recording.webm", strings.NewReader("fake-audio"))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

// TestTranscribeRequiresAPIKey
func TestTranscribeRequiresAPIKey(t *testing.T) {
	c := NewClient("")

	_, err := c.Transcribe(context.Background(), "recording.webm", strings.NewReader("fake-audio"))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
