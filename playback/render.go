// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"fmt"
	"io"

	"github.com/ik5/soundwalk/formats/wav"
	"github.com/ik5/soundwalk/stream"
	"github.com/ik5/soundwalk/utils"
)

// Render pumps the mixer into w as a 16-bit PCM WAV. Rendering stops at
// the mix's end of stream or after maxFrames frames, whichever comes
// first; maxFrames must be positive, since a soundscape with a cycle in
// it never ends on its own. Mixer load errors go to onError, nil
// discards them.
func Render(w io.Writer, m *stream.Mixer, channels, sampleRate, maxFrames int, onError func(error)) error {
	if maxFrames <= 0 {
		return fmt.Errorf("playback: render bound must be positive, got %d", maxFrames)
	}

	pcm := make([]int16, 0, maxFrames*channels)
	buf := make(stream.Buffer, 4096)
	for len(pcm) < maxFrames*channels && !m.EOS() {
		n := min(m.MaxRead(), len(buf), maxFrames*channels-len(pcm))
		if n == 0 {
			if err := m.Load(); err != nil && onError != nil {
				onError(err)
			}
			continue
		}
		m.ReadAdd(buf[:n])
		for _, v := range buf[:n] {
			pcm = append(pcm, utils.Float32ToInt16(v))
		}
	}

	if err := wav.WriteWAV16(w, sampleRate, channels, pcm); err != nil {
		return fmt.Errorf("playback: %w", err)
	}
	return nil
}
