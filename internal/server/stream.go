package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/NithinRegidi/docvox/pkg/speech"
)

// ErrNoStream is returned by bridge operations when no client is connected
// to /v1/stream.
var ErrNoStream = errors.New("server: no voice stream connected")

// Frame types exchanged on /v1/stream. The client performs the actual audio
// work (microphone capture, speech recognition, playback); the server
// directs it and consumes its transcripts.
const (
	// client → server
	frameTranscript   = "transcript"
	frameCaptureError = "capture.error"

	// server → client
	frameCaptureStart  = "capture.start"
	frameCaptureStop   = "capture.stop"
	frameSpeak         = "speak"
	frameSynthesisStop = "synthesis.stop"
	frameTranslate     = "translate"
)

// streamFrame is the single JSON envelope for every /v1/stream message.
// Fields are populated according to Type.
type streamFrame struct {
	Type string `json:"type"`

	// transcript
	Text       string  `json:"text,omitempty"`
	Interim    bool    `json:"interim,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`

	// capture.error
	Message string `json:"message,omitempty"`

	// capture.start / transcript / speak / translate
	Locale         string `json:"locale,omitempty"`
	Continuous     bool   `json:"continuous,omitempty"`
	InterimResults bool   `json:"interim_results,omitempty"`
	LanguageCode   string `json:"language_code,omitempty"`
}

// Bridge adapts the currently connected /v1/stream client into the speech
// collaborator interfaces the session controller expects. At most one client
// is active at a time; a new connection replaces the previous one. With no
// client connected, capture fails with [ErrNoStream] and synthesis and
// translate dispatches are dropped.
type Bridge struct {
	mu   sync.Mutex
	conn *streamConn
}

// NewBridge returns a Bridge with no client attached.
func NewBridge() *Bridge {
	return &Bridge{}
}

var (
	_ speech.Capture     = (*Bridge)(nil)
	_ speech.Synthesizer = (*Bridge)(nil)
	_ speech.Translator  = (*Bridge)(nil)
)

// Online reports whether a stream client is currently connected.
func (b *Bridge) Online() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.conn != nil
}

// Start implements speech.Capture by directing the connected client to
// begin recognition.
func (b *Bridge) Start(ctx context.Context, cfg speech.CaptureConfig) (speech.CaptureHandle, error) {
	c, err := b.current()
	if err != nil {
		return nil, err
	}
	return c.startCapture(ctx, cfg)
}

// Speak implements speech.Synthesizer by sending the utterance to the
// connected client for playback.
func (b *Bridge) Speak(ctx context.Context, text string, opts speech.SpeakOptions) error {
	c, err := b.current()
	if err != nil {
		return err
	}
	return c.send(ctx, streamFrame{
		Type:         frameSpeak,
		Text:         text,
		LanguageCode: opts.LanguageCode,
	})
}

// Stop implements speech.Synthesizer by directing the client to cancel any
// in-flight playback. With no client connected there is nothing to cancel.
func (b *Bridge) Stop() {
	c, err := b.current()
	if err != nil {
		return
	}
	if err := c.send(context.Background(), streamFrame{Type: frameSynthesisStop}); err != nil {
		slog.Warn("stream: synthesis stop dispatch failed", "err", err)
	}
}

// Translate implements speech.Translator by asking the client to re-render
// the document view in the target language.
func (b *Bridge) Translate(ctx context.Context, targetLanguageCode string) error {
	c, err := b.current()
	if err != nil {
		return err
	}
	return c.send(ctx, streamFrame{
		Type:         frameTranslate,
		LanguageCode: targetLanguageCode,
	})
}

func (b *Bridge) current() (*streamConn, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.conn == nil {
		return nil, ErrNoStream
	}
	return b.conn, nil
}

// attach makes c the active client, closing any previous one.
func (b *Bridge) attach(c *streamConn) {
	b.mu.Lock()
	prev := b.conn
	b.conn = c
	b.mu.Unlock()

	if prev != nil {
		prev.close(websocket.StatusPolicyViolation, "replaced by a new stream client")
	}
}

// detach removes c if it is still the active client.
func (b *Bridge) detach(c *streamConn) {
	b.mu.Lock()
	if b.conn == c {
		b.conn = nil
	}
	b.mu.Unlock()
}

// handleStream upgrades the request to a WebSocket and pumps frames until
// the client disconnects.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		slog.Warn("stream: accept failed", "err", err)
		return
	}

	sc := newStreamConn(conn)
	s.bridge.attach(sc)
	defer s.bridge.detach(sc)

	slog.Info("stream: client connected", "remote", r.RemoteAddr)

	err = sc.readLoop(r.Context())
	sc.close(websocket.StatusNormalClosure, "stream closed")

	if err != nil && websocket.CloseStatus(err) == -1 && !errors.Is(err, context.Canceled) {
		slog.Warn("stream: read loop ended", "err", err)
	}
	slog.Info("stream: client disconnected", "remote", r.RemoteAddr)
}

// streamConn is one live /v1/stream connection.
type streamConn struct {
	conn    *websocket.Conn
	writeMu sync.Mutex

	mu      sync.Mutex
	capture *captureHandle

	closeOnce sync.Once
}

func newStreamConn(conn *websocket.Conn) *streamConn {
	return &streamConn{conn: conn}
}

// send writes one frame to the client. Writes are serialised; coder/websocket
// allows only one concurrent writer.
func (c *streamConn) send(ctx context.Context, f streamFrame) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := wsjson.Write(ctx, c.conn, f); err != nil {
		return fmt.Errorf("server: stream write: %w", err)
	}
	return nil
}

// startCapture opens a capture window: it tells the client to start
// recognition and returns a handle streaming the resulting transcripts.
// A new window replaces any previous one.
func (c *streamConn) startCapture(ctx context.Context, cfg speech.CaptureConfig) (speech.CaptureHandle, error) {
	h := &captureHandle{
		conn:        c,
		transcripts: make(chan speech.Transcript, 16),
		errs:        make(chan string, 4),
	}

	c.mu.Lock()
	prev := c.capture
	c.capture = h
	if prev != nil {
		close(prev.transcripts)
		close(prev.errs)
	}
	c.mu.Unlock()

	err := c.send(ctx, streamFrame{
		Type:           frameCaptureStart,
		Locale:         cfg.Locale,
		Continuous:     cfg.Continuous,
		InterimResults: cfg.InterimResults,
	})
	if err != nil {
		c.clearCapture(h)
		return nil, err
	}
	return h, nil
}

// clearCapture removes h as the active window and closes its channels.
// Safe to call more than once per handle.
func (c *streamConn) clearCapture(h *captureHandle) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.capture != h {
		return
	}
	c.capture = nil
	close(h.transcripts)
	close(h.errs)
}

// readLoop consumes client frames until the connection drops. Transcript and
// error frames are routed to the active capture window; frames arriving with
// no window open are dropped.
func (c *streamConn) readLoop(ctx context.Context) error {
	for {
		var f streamFrame
		if err := wsjson.Read(ctx, c.conn, &f); err != nil {
			return err
		}

		switch f.Type {
		case frameTranscript:
			c.deliverTranscript(speech.Transcript{
				Text:       f.Text,
				Interim:    f.Interim,
				Confidence: f.Confidence,
				Locale:     f.Locale,
				Timestamp:  time.Now(),
			})
		case frameCaptureError:
			c.deliverError(f.Message)
		default:
			slog.Debug("stream: unknown frame type", "type", f.Type)
		}
	}
}

// deliverTranscript hands a transcript to the active capture window,
// dropping it when no window is open or the window's buffer is full.
func (c *streamConn) deliverTranscript(t speech.Transcript) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.capture == nil {
		return
	}
	select {
	case c.capture.transcripts <- t:
	default:
		slog.Warn("stream: transcript dropped, capture buffer full")
	}
}

func (c *streamConn) deliverError(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.capture == nil {
		slog.Warn("stream: capture error with no window open", "err", msg)
		return
	}
	select {
	case c.capture.errs <- msg:
	default:
	}
}

// close tears the connection down: the active capture window is closed so
// any session listening on it unblocks.
func (c *streamConn) close(status websocket.StatusCode, reason string) {
	c.closeOnce.Do(func() {
		c.mu.Lock()
		h := c.capture
		c.capture = nil
		if h != nil {
			close(h.transcripts)
			close(h.errs)
		}
		c.mu.Unlock()
		c.conn.Close(status, reason)
	})
}

// captureHandle is one capture window over a stream connection. It
// implements speech.CaptureHandle.
type captureHandle struct {
	conn        *streamConn
	transcripts chan speech.Transcript
	errs        chan string
	stopOnce    sync.Once
}

func (h *captureHandle) Transcripts() <-chan speech.Transcript { return h.transcripts }

func (h *captureHandle) Errors() <-chan string { return h.errs }

// Stop closes the window and directs the client to halt recognition.
// Idempotent.
func (h *captureHandle) Stop() error {
	var err error
	h.stopOnce.Do(func() {
		h.conn.clearCapture(h)
		// Best effort: the client may already be gone.
		err = h.conn.send(context.Background(), streamFrame{Type: frameCaptureStop})
	})
	return err
}
