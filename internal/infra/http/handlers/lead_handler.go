package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/mstancik/leadgen-backend/internal/infra/http/middleware"
	"github.com/mstancik/leadgen-backend/internal/usecase"
)

type LeadHandler struct {
	Intake      *usecase.CaptureLeadUseCase
	rateLimiter *RateLimiter
}

func NewLeadHandler(intake *usecase.CaptureLeadUseCase) *LeadHandler {
	return &LeadHandler{
		Intake:      intake,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min per IP
	}
}

type CaptureLeadResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Status  string `json:"status,omitempty"`
}

// CaptureLead handles the generic contact form.
func (h *LeadHandler) CaptureLead(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeJSON(w, http.StatusTooManyRequests, CaptureLeadResponse{
			Success: false,
			Message: "Too many requests. Please try again later.",
		})
		return
	}

	var req usecase.CaptureLeadInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, CaptureLeadResponse{Success: false, Message: "Invalid JSON"})
		return
	}

	h.capture(w, r, req)
}

type VoiceContactRequest struct {
	Email        string `json:"email"`
	Message      string `json:"message"`
	RecordingURL string `json:"recording_url,omitempty"`
}

// VoiceContact handles the voice-transcript form: the browser already
// turned the recording into text via /api/transcribe.
func (h *LeadHandler) VoiceContact(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeJSON(w, http.StatusTooManyRequests, CaptureLeadResponse{
			Success: false,
			Message: "Too many requests. Please try again later.",
		})
		return
	}

	var req VoiceContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, CaptureLeadResponse{Success: false, Message: "Invalid JSON"})
		return
	}

	if req.Email == "" || req.Message == "" {
		writeJSON(w, http.StatusBadRequest, CaptureLeadResponse{
			Success: false,
			Message: "Email and message are required",
		})
		return
	}

	h.capture(w, r, usecase.CaptureLeadInput{
		Email:    req.Email,
		Name:     "Voice User",
		Interest: "Voice Inquiry: " + req.Message,
	})
}

func (h *LeadHandler) capture(w http.ResponseWriter, r *http.Request, input usecase.CaptureLeadInput) {
	output, err := h.Intake.Execute(r.Context(), input)
	if err != nil {
		if usecase.IsDomainError(err) {
			writeJSON(w, http.StatusBadRequest, CaptureLeadResponse{Success: false, Message: err.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, CaptureLeadResponse{Success: false, Message: "Failed to capture lead"})
		return
	}

	middleware.RecordLeadCaptured(output.Status)
	writeJSON(w, http.StatusOK, CaptureLeadResponse{
		Success: true,
		Message: output.Message,
		Status:  output.Status,
	})
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := time.Now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
