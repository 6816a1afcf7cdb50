// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrAudioFormat indicates a source whose channel layout cannot be
	// adapted to the playback session.
	ErrAudioFormat = errors.New("incompatible audio format")

	// ErrBadSplicePoint indicates a splice point comment whose value is
	// not a non-negative integer.
	ErrBadSplicePoint = errors.New("malformed splice point")
)
