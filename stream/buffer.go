// SPDX-License-Identifier: EPL-2.0

package stream

// Buffer holds interleaved float32 samples, the unit moved between decode
// and mix stages.
type Buffer []float32

// Zero fills the buffer with silence.
func (dst Buffer) Zero() {
	for i := range dst {
		dst[i] = 0
	}
}

// Gain scales all samples by gain.
func (dst Buffer) Gain(gain float32) {
	for i := range dst {
		dst[i] *= gain
	}
}

// Add accumulates src into dst. The shorter length wins.
func (dst Buffer) Add(src Buffer) {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] += src[i]
	}
}
