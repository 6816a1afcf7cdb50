// SPDX-License-Identifier: EPL-2.0

// Package soundwalk builds endless generative soundscapes from directories
// of audio clips.
//
// Clips are short recordings named <tail>-<head>[-<variant>].<ext>. Each
// directory of clips forms a directed multigraph: nodes are the labels,
// arrows are the clips connecting them. A random walk over the graph turns
// the clips into an unbounded gapless playlist, one playlist per directory,
// and all playlists are averaged into a single output signal.
//
// # Supported Formats
//
// The bundled decoder registry covers:
//   - WAV (PCM 16-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//
// # Quick Start
//
// Build a mixer over one or more clip directories and run it through a
// playback device:
//
//	mixer, format, err := soundwalk.Build([]string{"forest", "rain"}, soundwalk.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	device, _ := playback.OpenDevice(format.Channels, format.SampleRate, 4096)
//	defer device.Close()
//	device.Play(mixer, nil)
//
// The zero Config uses system-entropy randomness, the default decoder
// registry and no warning hook. Pass a seeded rand.Rand for a reproducible
// walk.
//
// # Splice Points
//
// A clip may carry a SPLICEPOINT=<frames> tag in its metadata. Playback of
// the clip stops at that frame while the remainder keeps sounding as an
// overlapping tail, so consecutive clips blend into each other instead of
// butting edges. Vorbis clips carry the tag as a user comment, WAV clips
// in the LIST-INFO comment field.
//
// # Session Format
//
// The first decodable clip fixes the session's channel count and sample
// rate. Later clips at other sample rates are resampled (cubic
// interpolation); stereo clips in a mono session are downmixed. A mono
// clip in a stereo session cannot be adapted and fails with
// audio.ErrAudioFormat.
//
// # Building Blocks
//
// The subpackages are usable on their own:
//   - graph: label digraph and the random walk over it
//   - classify: clip file naming scheme
//   - stream: pull-driven streams, tracks, players and the mixer
//   - audio: decoder contract, registry, resampling, splice metadata
//   - playback: portaudio output and offline WAV rendering
//
// See the individual subpackages for more detailed documentation.
package soundwalk
