// Package mock provides test doubles for the speech package interfaces.
//
// Use Capture to feed controlled Transcript values into a command session and
// Synthesizer / Translator to verify what the session dispatched.
//
// Example:
//
//	cap := &mock.Capture{Handle: mock.NewHandle(4)}
//	synth := &mock.Synthesizer{}
//	handle, _ := cap.Start(ctx, cfg)
//	cap.Handle.TranscriptsCh <- speech.Transcript{Text: "deadline"}
package mock

import (
	"context"
	"sync"

	"github.com/NithinRegidi/docvox/pkg/speech"
)

// StartCall records a single invocation of Capture.Start.
type StartCall struct {
	// Ctx is the context passed to Start.
	Ctx context.Context
	// Cfg is the CaptureConfig passed to Start.
	Cfg speech.CaptureConfig
}

// Capture is a mock implementation of speech.Capture.
type Capture struct {
	mu sync.Mutex

	// Handle is returned by Start. If nil, Start creates a new default
	// Handle with buffered channels.
	Handle *Handle

	// StartErr, if non-nil, is returned as the error from Start.
	StartErr error

	// StartCalls records every call to Start.
	StartCalls []StartCall
}

// Start records the call and returns Handle, StartErr.
func (c *Capture) Start(ctx context.Context, cfg speech.CaptureConfig) (speech.CaptureHandle, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.StartCalls = append(c.StartCalls, StartCall{Ctx: ctx, Cfg: cfg})
	if c.StartErr != nil {
		return nil, c.StartErr
	}
	if c.Handle == nil {
		c.Handle = NewHandle(16)
	}
	return c.Handle, nil
}

// Calls returns a copy of the recorded Start calls.
func (c *Capture) Calls() []StartCall {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]StartCall, len(c.StartCalls))
	copy(out, c.StartCalls)
	return out
}

// Handle is a mock implementation of speech.CaptureHandle. Feed transcripts
// through TranscriptsCh and errors through ErrorsCh; both are closed by Stop.
type Handle struct {
	TranscriptsCh chan speech.Transcript
	ErrorsCh      chan string

	mu        sync.Mutex
	stopped   bool
	StopCalls int
}

// NewHandle creates a Handle with channels buffered to size n.
func NewHandle(n int) *Handle {
	return &Handle{
		TranscriptsCh: make(chan speech.Transcript, n),
		ErrorsCh:      make(chan string, n),
	}
}

// Transcripts returns the transcript channel.
func (h *Handle) Transcripts() <-chan speech.Transcript { return h.TranscriptsCh }

// Errors returns the error channel.
func (h *Handle) Errors() <-chan string { return h.ErrorsCh }

// Stop closes both channels. Safe to call more than once.
func (h *Handle) Stop() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.StopCalls++
	if h.stopped {
		return nil
	}
	h.stopped = true
	close(h.TranscriptsCh)
	close(h.ErrorsCh)
	return nil
}

// SpeakCall records a single invocation of Synthesizer.Speak.
type SpeakCall struct {
	// Text is the utterance passed to Speak.
	Text string
	// Opts is the SpeakOptions passed to Speak.
	Opts speech.SpeakOptions
}

// Synthesizer is a mock implementation of speech.Synthesizer.
type Synthesizer struct {
	mu sync.Mutex

	// SpeakErr, if non-nil, is returned as the error from Speak.
	SpeakErr error

	// SpeakCalls records every call to Speak.
	SpeakCalls []SpeakCall

	// StopCalls counts invocations of Stop.
	StopCalls int

	// spoken is signalled after every Speak call.
	spoken chan struct{}
}

// Speak records the call and returns SpeakErr.
func (s *Synthesizer) Speak(_ context.Context, text string, opts speech.SpeakOptions) error {
	s.mu.Lock()
	s.SpeakCalls = append(s.SpeakCalls, SpeakCall{Text: text, Opts: opts})
	ch := s.spoken
	err := s.SpeakErr
	s.mu.Unlock()
	if ch != nil {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
	return err
}

// Stop records the call.
func (s *Synthesizer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.StopCalls++
}

// Calls returns a copy of the recorded Speak calls.
func (s *Synthesizer) Calls() []SpeakCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]SpeakCall, len(s.SpeakCalls))
	copy(out, s.SpeakCalls)
	return out
}

// Stops returns the number of Stop invocations.
func (s *Synthesizer) Stops() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.StopCalls
}

// Spoken returns a channel that receives a signal after each Speak call.
// Useful for waiting on fire-and-forget dispatches in tests.
func (s *Synthesizer) Spoken() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.spoken == nil {
		s.spoken = make(chan struct{}, 16)
	}
	return s.spoken
}

// TranslateCall records a single invocation of Translator.Translate.
type TranslateCall struct {
	// TargetLanguageCode is the BCP-47 code passed to Translate.
	TargetLanguageCode string
}

// Translator is a mock implementation of speech.Translator.
type Translator struct {
	mu sync.Mutex

	// TranslateErr, if non-nil, is returned as the error from Translate.
	TranslateErr error

	// TranslateCalls records every call to Translate.
	TranslateCalls []TranslateCall
}

// Translate records the call and returns TranslateErr.
func (t *Translator) Translate(_ context.Context, code string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.TranslateCalls = append(t.TranslateCalls, TranslateCall{TargetLanguageCode: code})
	return t.TranslateErr
}

// Calls returns a copy of the recorded Translate calls.
func (t *Translator) Calls() []TranslateCall {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]TranslateCall, len(t.TranslateCalls))
	copy(out, t.TranslateCalls)
	return out
}
