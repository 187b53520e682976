package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/NithinRegidi/docvox/internal/voice"
)

// commandRequest is the body of POST /v1/command.
type commandRequest struct {
	Transcript string `json:"transcript"`
}

// localeRequest is the body of PUT /v1/session/locale and the optional body
// of POST /v1/session/start.
type localeRequest struct {
	Locale string `json:"locale"`
}

// sessionState is the body of GET /v1/session responses.
type sessionState struct {
	Mode         string `json:"mode"`
	Locale       string `json:"locale"`
	LastResponse string `json:"last_response,omitempty"`
	StreamOnline bool   `json:"stream_online"`
}

// errorBody is the JSON error envelope for all non-2xx API responses.
type errorBody struct {
	Error string `json:"error"`
}

// handleCommand runs one transcript through the recognition pipeline and
// returns the full command result. This is the text entry point; clients
// with local speech recognition post final transcripts here instead of
// streaming them over the WebSocket.
func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	var req commandRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if strings.TrimSpace(req.Transcript) == "" {
		writeError(w, http.StatusBadRequest, errors.New("transcript must not be empty"))
		return
	}

	result := s.session.ProcessCommand(r.Context(), req.Transcript)
	writeJSON(w, http.StatusOK, result)
}

// handleDocument installs a new analysis snapshot for the session.
func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	var snap voice.AnalysisSnapshot
	if err := decodeJSON(r, &snap); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.session.SetDocument(&snap)
	slog.Debug("document snapshot installed", "type", snap.DocumentType)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSessionState(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, sessionState{
		Mode:         string(s.session.Mode()),
		Locale:       s.session.Locale(),
		LastResponse: s.session.LastResponse(),
		StreamOnline: s.bridge.Online(),
	})
}

func (s *Server) handleSessionLocale(w http.ResponseWriter, r *http.Request) {
	var req localeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Locale == "" {
		writeError(w, http.StatusBadRequest, errors.New("locale must not be empty"))
		return
	}
	s.session.SetVoiceLanguage(req.Locale)
	w.WriteHeader(http.StatusNoContent)
}

// handleSessionStart begins a listening window. It requires a connected
// voice stream; without one there is nothing to capture from.
func (s *Server) handleSessionStart(w http.ResponseWriter, r *http.Request) {
	// The body is optional: an absent or empty body starts listening in the
	// session's current locale. EOF covers chunked requests, which report an
	// unknown ContentLength even when the body is empty.
	var req localeRequest
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	// The listening window must outlive this request; the request context is
	// cancelled as soon as the handler returns.
	ctx := context.WithoutCancel(r.Context())
	if err := s.session.StartCommandMode(ctx, req.Locale); err != nil {
		if errors.Is(err, ErrNoStream) {
			writeError(w, http.StatusConflict, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSessionStop(w http.ResponseWriter, _ *http.Request) {
	s.session.StopCommandMode()
	w.WriteHeader(http.StatusNoContent)
}

// decodeJSON decodes the request body into v, rejecting unknown fields. The
// underlying decode error stays wrapped so callers can distinguish an empty
// body (io.EOF) from malformed JSON.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorBody{Error: err.Error()})
}
