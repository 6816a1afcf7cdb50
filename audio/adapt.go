// SPDX-License-Identifier: EPL-2.0

package audio

// Adapt conforms src to the given channel count and sample rate so sources
// from differently mastered files can share one playback session.
//
// A mismatched sample rate goes through the Resampler (cubic
// interpolation); a multi-channel source feeding a mono session goes
// through the MonoMixer. A channel layout that cannot be bridged that way,
// such as a mono clip in a stereo session, is reported as ErrAudioFormat.
func Adapt(src Source, channels, sampleRate int) (Source, error) {
	if src.SampleRate() != sampleRate {
		src = NewResampler(src, sampleRate)
	}
	if src.Channels() != channels {
		if channels != 1 {
			return nil, ErrAudioFormat
		}
		src = NewMonoMixer(src)
	}
	return src, nil
}
