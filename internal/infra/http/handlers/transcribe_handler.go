package handlers

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

// Transcriber turns an uploaded recording into text. Implemented by the
// whisper integration client.
type Transcriber interface {
	Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error)
}

type TranscribeHandler struct {
	Transcriber Transcriber
}

func NewTranscribeHandler(transcriber Transcriber) *TranscribeHandler {
	return &TranscribeHandler{Transcriber: transcriber}
}

const maxAudioUpload = 10 << 20 // 10 MB

func (h *TranscribeHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxAudioUpload); err != nil {
		writeJSON(w, http.StatusBadRequest, chatErrorResponse{Error: "Invalid multipart form"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, chatErrorResponse{Error: "No file provided"})
		return
	}
	defer file.Close()

	if !strings.HasPrefix(header.Header.Get("Content-Type"), "audio/") {
		writeJSON(w, http.StatusBadRequest, chatErrorResponse{Error: "Invalid file type. Please upload an audio file."})
		return
	}

	text, err := h.Transcriber.Transcribe(r.Context(), header.Filename, file)
	if err != nil {
		logrus.Errorf("transcription failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, chatErrorResponse{Error: "Failed to transcribe audio"})
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Text string `json:"text"`
	}{Text: text})
}
