package speech

import "time"

// Transcript represents a single speech-to-text result delivered by a
// Capture collaborator. Both interim and final transcripts use this type.
type Transcript struct {
	// Text is the transcribed speech content.
	Text string

	// Interim indicates a low-latency preliminary result. Interim
	// transcripts are suitable for UI indicators but must not be fed into
	// command recognition.
	Interim bool

	// Confidence is the overall confidence score (0.0–1.0). May be zero if
	// the capture backend does not report confidence.
	Confidence float64

	// Locale is the BCP-47 tag the capture backend recognised against
	// (e.g., "en-IN", "te-IN").
	Locale string

	// Timestamp marks when the transcript was received. The zero value means
	// the backend did not report one.
	Timestamp time.Time
}

// CaptureConfig describes how a capture session should listen.
type CaptureConfig struct {
	// Locale is the BCP-47 language tag for recognition (e.g., "te-IN").
	// An empty string lets the backend auto-detect, if supported.
	Locale string

	// Continuous keeps the session open after the first final transcript.
	// Command mode uses false: one utterance per listening window.
	Continuous bool

	// InterimResults enables delivery of interim transcripts.
	InterimResults bool
}

// SpeakOptions configures a single synthesis request.
type SpeakOptions struct {
	// LanguageCode is the BCP-47 tag for the utterance (e.g., "hi-IN").
	// The synthesizer picks a matching voice; an empty string means the
	// backend default.
	LanguageCode string
}
