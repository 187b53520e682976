package voice

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/NithinRegidi/docvox/internal/observe"
	"github.com/NithinRegidi/docvox/pkg/speech"
)

// Mode is the session state: idle, listening for a command, or interpreting
// one.
type Mode string

const (
	ModeIdle       Mode = "idle"
	ModeListening  Mode = "listening"
	ModeProcessing Mode = "processing"
)

// defaultProcessingDebounce is how long the Processing mode persists after a
// command has been dispatched. It is a debounce against re-entrant
// transcript events, not a completion signal: a new command may legally
// start listening before the prior utterance has finished playing.
const defaultProcessingDebounce = time.Second

// Collaborators bundles the injected speech collaborators. Capture feeds
// transcripts in; Synth and Translator receive dispatches. Any field may be
// nil, in which case the corresponding dispatch is skipped.
type Collaborators struct {
	Capture    speech.Capture
	Synth      speech.Synthesizer
	Translator speech.Translator
}

// SessionOption is a functional option for configuring a [Session].
type SessionOption func(*Session)

// WithLocale sets the initial command locale (BCP-47 tag).
func WithLocale(tag string) SessionOption {
	return func(s *Session) { s.locale = Locale(tag) }
}

// WithDebounce overrides the Processing-clear debounce delay.
func WithDebounce(d time.Duration) SessionOption {
	return func(s *Session) { s.debounce = d }
}

// WithMetrics attaches metric instruments. Nil (the default) disables
// recording.
func WithMetrics(m *observe.Metrics) SessionOption {
	return func(s *Session) { s.metrics = m }
}

// WithMatcher replaces the default intent matcher.
func WithMatcher(m *Matcher) SessionOption {
	return func(s *Session) { s.matcher = m }
}

// WithComposer replaces the default response composer.
func WithComposer(c *Composer) SessionOption {
	return func(s *Session) { s.composer = c }
}

// WithErrorHandler sets a callback invoked with capture collaborator errors
// (permission denied, no microphone, network loss). The session itself never
// fails on them; surfacing them to the UI is the caller's business.
func WithErrorHandler(fn func(string)) SessionOption {
	return func(s *Session) { s.onError = fn }
}

// Session is the stateful command orchestrator: it owns the session state
// (mode, command locale, last response), drives the capture collaborator,
// runs Normalizer → Matcher → Composer over incoming transcripts, and
// dispatches to the synthesis / translate collaborators.
//
// All exported methods are safe for concurrent use. Dispatches to the
// synthesizer are fire-and-forget so that a subsequent STOP can always be
// issued while speech is in flight.
type Session struct {
	mu            sync.Mutex
	mode          Mode
	locale        Locale
	lastResponse  string
	snapshot      *AnalysisSnapshot
	handle        speech.CaptureHandle
	cancelListen  context.CancelFunc
	debounceTimer *time.Timer

	// counted mirrors this session's +1 contribution to the active-sessions
	// gauge. Tracked separately from mode: the STOP intent and the debounce
	// timer both return the mode to Idle, and each transition must settle
	// the gauge exactly once.
	counted bool

	// Hot-reloadable, guarded by mu.
	matcher  *Matcher
	debounce time.Duration

	// Read-only after construction.
	composer *Composer
	collab   Collaborators
	metrics  *observe.Metrics
	onError  func(string)
}

// NewSession creates a Session with the given collaborators. Defaults:
// English locale, built-in catalog matcher and composer, one-second
// processing debounce, no metrics.
func NewSession(collab Collaborators, opts ...SessionOption) *Session {
	s := &Session{
		mode:     ModeIdle,
		locale:   Locale(LocaleEnglish),
		collab:   collab,
		matcher:  NewMatcher(),
		composer: NewComposer(),
		debounce: defaultProcessingDebounce,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// StartCommandMode transitions the session to Listening and starts the
// capture collaborator: non-continuous, interim results enabled, using the
// session's command locale (updated first when localeTag is non-empty).
//
// Returns an error when no capture collaborator is configured or the
// capture backend cannot start. Calling StartCommandMode while already
// listening restarts capture.
func (s *Session) StartCommandMode(ctx context.Context, localeTag string) error {
	if s.collab.Capture == nil {
		return fmt.Errorf("voice: no capture collaborator configured")
	}

	s.mu.Lock()
	if localeTag != "" {
		s.locale = Locale(localeTag)
	}
	locale := s.locale
	prevHandle := s.handle
	prevCancel := s.cancelListen
	s.mu.Unlock()

	// Tear down any previous listening window before opening a new one.
	if prevCancel != nil {
		prevCancel()
	}
	if prevHandle != nil {
		if err := prevHandle.Stop(); err != nil {
			slog.Warn("voice: stop previous capture", "err", err)
		}
	}

	listenCtx, cancel := context.WithCancel(ctx)
	handle, err := s.collab.Capture.Start(listenCtx, speech.CaptureConfig{
		Locale:         string(locale),
		Continuous:     false,
		InterimResults: true,
	})
	if err != nil {
		cancel()
		return fmt.Errorf("voice: start capture: %w", err)
	}

	s.mu.Lock()
	wasCounted := s.counted
	s.counted = true
	s.mode = ModeListening
	s.handle = handle
	s.cancelListen = cancel
	s.mu.Unlock()

	if !wasCounted {
		s.metrics.AddActiveSessions(ctx, 1)
	}

	go s.listen(listenCtx, handle)

	slog.Info("voice: command mode started", "locale", string(locale))
	return nil
}

// StopCommandMode stops capture and returns the session to Idle without
// speaking.
func (s *Session) StopCommandMode() {
	s.mu.Lock()
	handle := s.handle
	cancel := s.cancelListen
	wasCounted := s.counted
	s.counted = false
	s.mode = ModeIdle
	s.handle = nil
	s.cancelListen = nil
	if s.debounceTimer != nil {
		s.debounceTimer.Stop()
		s.debounceTimer = nil
	}
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if handle != nil {
		if err := handle.Stop(); err != nil {
			slog.Warn("voice: stop capture", "err", err)
		}
	}
	if wasCounted {
		s.metrics.AddActiveSessions(context.Background(), -1)
	}
}

// SetVoiceLanguage updates the command locale used for matching templates
// and synthesis.
func (s *Session) SetVoiceLanguage(tag string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locale = Locale(tag)
}

// SetDocument installs the analysis snapshot replies are composed from. The
// snapshot is trusted as supplied and never mutated. May be nil to clear.
func (s *Session) SetDocument(snap *AnalysisSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = snap
}

// Mode returns the current session mode.
func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Locale returns the current command locale tag.
func (s *Session) Locale() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return string(s.locale)
}

// LastResponse returns the most recent non-control response, or "".
func (s *Session) LastResponse() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastResponse
}

// SetDebounce updates the processing-clear delay applied to subsequent
// commands. Used by config hot reload.
func (s *Session) SetDebounce(d time.Duration) {
	if d <= 0 {
		d = defaultProcessingDebounce
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.debounce = d
}

// ReplaceMatcher swaps the intent matcher. Used by config hot reload when
// the phonetic correction stage is enabled, disabled, or retuned.
func (s *Session) ReplaceMatcher(m *Matcher) {
	if m == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matcher = m
}

// DetectIntent resolves a transcript to an intent without composing or
// dispatching anything. Exposed for introspection and testing.
func (s *Session) DetectIntent(transcript string) (Intent, Params) {
	s.mu.Lock()
	m := s.matcher
	s.mu.Unlock()
	return m.Detect(transcript)
}

// ProcessCommand runs the full recognition pipeline over one transcript:
// normalise, match, compose, dispatch. It is the direct-call entry point the
// capture loop also uses, so commands can be tested without audio.
//
// Dispatch policy: STOP invokes the synthesis Stop collaborator
// synchronously and returns to Idle without speaking. TRANSLATE invokes the
// translate collaborator with the resolved language code and then speaks
// the acknowledgement. Everything else speaks the composed response.
// Synthesis dispatches are fire-and-forget; rejections are logged and
// swallowed so a dispatch failure never interrupts the state machine.
func (s *Session) ProcessCommand(ctx context.Context, transcript string) CommandResult {
	start := time.Now()

	s.mu.Lock()
	s.mode = ModeProcessing
	locale := s.locale
	snap := s.snapshot
	last := s.lastResponse
	matcher := s.matcher
	s.mu.Unlock()

	intent, params, tier := matcher.detect(transcript)
	response := s.composer.Compose(intent, params, locale, snap, last)
	result := CommandResult{
		Intent:     intent,
		Params:     params,
		Transcript: transcript,
		Response:   response,
	}

	s.metrics.RecordIntent(ctx, string(intent), tier)

	slog.Debug("voice: command recognised",
		"intent", string(intent),
		"tier", tier,
		"locale", string(locale),
	)

	if intent == IntentStop {
		if s.collab.Synth != nil {
			s.collab.Synth.Stop()
		}
		s.mu.Lock()
		s.mode = ModeIdle
		wasCounted := s.counted
		s.counted = false
		if s.debounceTimer != nil {
			s.debounceTimer.Stop()
			s.debounceTimer = nil
		}
		s.mu.Unlock()
		if wasCounted {
			s.metrics.AddActiveSessions(ctx, -1)
		}
		s.metrics.RecordCommandDuration(ctx, time.Since(start).Seconds())
		return result
	}

	if intent == IntentTranslate && s.collab.Translator != nil {
		if err := s.collab.Translator.Translate(ctx, params.LanguageCode); err != nil {
			slog.Warn("voice: translate dispatch failed",
				"language", params.Language, "err", err)
		}
		s.metrics.RecordTranslateRequest(ctx, params.Language)
	}

	s.speak(ctx, response, locale)

	if !intent.IsControl() {
		s.mu.Lock()
		s.lastResponse = response
		s.mu.Unlock()
	}

	s.scheduleProcessingClear()
	s.metrics.RecordCommandDuration(ctx, time.Since(start).Seconds())
	return result
}

// listen consumes one capture session's transcript and error streams. Only
// final transcripts arriving while the session is Listening are processed;
// everything else is dropped by the Processing guard.
func (s *Session) listen(ctx context.Context, handle speech.CaptureHandle) {
	transcripts := handle.Transcripts()
	errs := handle.Errors()

	for transcripts != nil || errs != nil {
		select {
		case <-ctx.Done():
			return

		case t, ok := <-transcripts:
			if !ok {
				transcripts = nil
				continue
			}
			if t.Interim || t.Text == "" {
				continue
			}
			s.onTranscript(ctx, t.Text)

		case msg, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			s.metrics.RecordCaptureError(ctx)
			slog.Warn("voice: capture error", "err", msg)
			if s.onError != nil {
				s.onError(msg)
			}
		}
	}
}

// onTranscript handles one final transcript from the capture loop. The
// Processing guard makes re-entrant transcript events no-ops while a
// command is being interpreted.
func (s *Session) onTranscript(ctx context.Context, text string) {
	s.mu.Lock()
	if s.mode != ModeListening {
		s.mu.Unlock()
		return
	}
	handle := s.handle
	s.mode = ModeProcessing
	s.mu.Unlock()

	if handle != nil {
		if err := handle.Stop(); err != nil {
			slog.Warn("voice: stop capture", "err", err)
		}
	}

	s.ProcessCommand(ctx, text)
}

// speak dispatches text to the synthesizer fire-and-forget. The dispatch
// context is detached from the caller so an already-finished request cannot
// cancel speech in flight; STOP remains the way to interrupt it.
func (s *Session) speak(ctx context.Context, text string, locale Locale) {
	syn := s.collab.Synth
	if syn == nil {
		return
	}
	dispatchCtx := context.WithoutCancel(ctx)
	go func() {
		err := syn.Speak(dispatchCtx, text, speech.SpeakOptions{LanguageCode: string(locale)})
		if err != nil {
			// Swallowed deliberately: callers of ProcessCommand never see
			// synthesis rejections.
			slog.Warn("voice: synthesis dispatch failed", "err", err)
			s.metrics.RecordSynthesisDispatch(dispatchCtx, "error")
			return
		}
		s.metrics.RecordSynthesisDispatch(dispatchCtx, "ok")
	}()
}

// scheduleProcessingClear arms the debounce that returns the session to
// Idle after a command has been dispatched.
func (s *Session) scheduleProcessingClear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.debounceTimer != nil {
		s.debounceTimer.Stop()
	}
	s.debounceTimer = time.AfterFunc(s.debounce, func() {
		s.mu.Lock()
		cleared := false
		if s.mode == ModeProcessing {
			s.mode = ModeIdle
			cleared = s.counted
			s.counted = false
		}
		s.mu.Unlock()
		if cleared {
			s.metrics.AddActiveSessions(context.Background(), -1)
		}
	})
}
