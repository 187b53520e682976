// Package speech defines the collaborator interfaces the DocVox voice-command
// core talks to: speech capture (microphone + STT, typically running in the
// browser), speech synthesis (TTS playback), and document translation.
//
// The voice core never performs audio or network I/O itself. It consumes
// final transcripts from a [Capture] session and dispatches composed replies
// to a [Synthesizer] fire-and-forget, so a STOP command can always interrupt
// speech that is still in flight. Implementations must be safe for concurrent
// use.
package speech

import "context"

// CaptureHandle represents an open capture session. It is an interface so
// that test code can provide mock implementations without a live microphone
// connection.
//
// Callers must call Stop when the session is no longer needed. All methods
// must be safe for concurrent use.
type CaptureHandle interface {
	// Transcripts returns a read-only channel emitting recognition results.
	// When CaptureConfig.InterimResults is set, interim transcripts are
	// interleaved with finals; consumers filter on [Transcript.Interim].
	// The channel is closed when the session ends.
	Transcripts() <-chan Transcript

	// Errors returns a read-only channel carrying capture failures as
	// human-readable strings (permission denied, no microphone, network
	// loss). Errors do not terminate the session unless the channel is
	// followed by a close of Transcripts.
	Errors() <-chan string

	// Stop terminates the session and releases resources. After Stop
	// returns, the Transcripts and Errors channels will be closed. Calling
	// Stop more than once is safe and returns nil.
	Stop() error
}

// Capture is the abstraction over any speech-capture backend.
type Capture interface {
	// Start opens a new listening session with the given configuration.
	// The returned handle is emitting transcripts immediately. The caller
	// owns the handle and must call Stop when done.
	Start(ctx context.Context, cfg CaptureConfig) (CaptureHandle, error)
}

// Synthesizer is the abstraction over any text-to-speech backend.
type Synthesizer interface {
	// Speak synthesises and plays text using a voice matching opts.
	// Implementations may return before playback completes; the voice core
	// treats the call as fire-and-forget.
	Speak(ctx context.Context, text string, opts SpeakOptions) error

	// Stop interrupts any utterance currently playing. Calling Stop when
	// nothing is playing is a no-op.
	Stop()
}

// Translator receives the resolved target language when a translate command
// is recognised. The actual document translation happens outside the voice
// core.
type Translator interface {
	// Translate requests translation of the active document into the
	// language identified by the BCP-47 code (e.g., "ta-IN").
	Translate(ctx context.Context, targetLanguageCode string) error
}
