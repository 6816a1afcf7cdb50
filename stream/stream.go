// SPDX-License-Identifier: EPL-2.0

package stream

// Stream is the pull interface every audio-producing node implements.
// Samples are interleaved float32 values in [-1, 1].
type Stream interface {
	// EOS reports whether the stream will never produce another sample.
	EOS() bool

	// MaxRead returns the number of samples retrievable right now without
	// further decode work. Zero does not imply end of stream.
	MaxRead() int

	// ReadAdd accumulates exactly len(buf) samples into buf, adding to the
	// values already there. len(buf) must not exceed MaxRead; violating the
	// precondition panics.
	ReadAdd(buf Buffer)

	// Load performs buffering or decoding so that MaxRead can rise above
	// zero, or detects end of stream. It returns any streams that became
	// independent during loading (the tails of spliced tracks); the caller
	// owns them afterwards. Load is a safe no-op while MaxRead is positive.
	Load() ([]Stream, error)
}

// Empty is the inert Stream: always at end of stream, never readable.
type Empty struct{}

func (Empty) EOS() bool    { return true }
func (Empty) MaxRead() int { return 0 }

func (Empty) ReadAdd(buf Buffer) {
	if len(buf) > 0 {
		panic("stream: read past MaxRead in Empty")
	}
}

func (Empty) Load() ([]Stream, error) { return nil, nil }
