// SPDX-License-Identifier: EPL-2.0

// Package playback turns a mixer into audible or rendered output.
//
// Device drives the default portaudio output with blocking writes,
// running the pull loop (read what is readable, load when nothing is)
// until the mix ends. Render runs the same loop offline into a 16-bit
// WAV file, bounded by a frame count so an endless soundscape can still
// be captured.
package playback
