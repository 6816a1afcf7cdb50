// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"fmt"

	"github.com/gordonklaus/portaudio"

	"github.com/ik5/soundwalk/stream"
)

// Device is a blocking-write portaudio output. It owns the portaudio
// runtime; at most one Device should be open at a time.
type Device struct {
	stream   *portaudio.Stream
	buf      []float32
	channels int
}

// OpenDevice initializes portaudio and starts a blocking stream on the
// default output device. bufFrames is the device buffer length in frames.
func OpenDevice(channels, sampleRate, bufFrames int) (*Device, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("playback: %w", err)
	}

	d := &Device{
		buf:      make([]float32, bufFrames*channels),
		channels: channels,
	}

	s, err := portaudio.OpenDefaultStream(0, channels, float64(sampleRate), bufFrames, &d.buf)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("playback: %w", err)
	}
	if err := s.Start(); err != nil {
		s.Close()
		portaudio.Terminate()
		return nil, fmt.Errorf("playback: %w", err)
	}

	d.stream = s
	return d, nil
}

// Play pumps the mixer into the device until its end of stream. Errors
// the mixer reports while loading mean one source dropped out of the mix;
// they go to onError and playback continues. nil discards them.
//
// The final partial buffer is zero padded, so the stream always writes
// whole device buffers.
func (d *Device) Play(m *stream.Mixer, onError func(error)) error {
	for {
		filled := d.fill(m, onError)
		if filled == 0 {
			return nil
		}
		for i := filled; i < len(d.buf); i++ {
			d.buf[i] = 0
		}
		if err := d.stream.Write(); err != nil {
			return fmt.Errorf("playback: %w", err)
		}
	}
}

// fill reads mixer output into the device buffer until it is full or the
// mix ends, loading whenever nothing is readable.
func (d *Device) fill(m *stream.Mixer, onError func(error)) int {
	filled := 0
	for filled < len(d.buf) && !m.EOS() {
		n := min(m.MaxRead(), len(d.buf)-filled)
		if n == 0 {
			if err := m.Load(); err != nil && onError != nil {
				onError(err)
			}
			continue
		}
		m.ReadAdd(d.buf[filled : filled+n])
		filled += n
	}
	return filled
}

// Close stops the stream and tears down the portaudio runtime. The
// blocking write API drains buffered audio before Stop returns.
func (d *Device) Close() error {
	err := d.stream.Stop()
	if cerr := d.stream.Close(); err == nil {
		err = cerr
	}
	if terr := portaudio.Terminate(); err == nil {
		err = terr
	}
	if err != nil {
		return fmt.Errorf("playback: %w", err)
	}
	return nil
}
