// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"strconv"
	"strings"
)

// SplicePointTag is the conventional comment key carrying a clip's splice
// point, in frames. The key is matched case-insensitively.
const SplicePointTag = "SPLICEPOINT"

// Commented is implemented by sources whose container format carries
// comment tags (Vorbis comment headers, WAV LIST-INFO chunks).
type Commented interface {
	// Comments returns the raw "KEY=value" comment entries.
	Comments() []string
}

// SplicePoint scans comment entries for splice point tags. It returns the
// splice point in frames and whether one was present; when the tag is
// repeated the minimum wins. A tag whose value is not a non-negative
// integer is a malformed-metadata error.
func SplicePoint(comments []string) (int64, bool, error) {
	var (
		found  bool
		splice int64
	)
	for _, entry := range comments {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || !strings.EqualFold(strings.TrimSpace(key), SplicePointTag) {
			continue
		}
		n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil || n < 0 {
			return 0, false, fmt.Errorf("%w: %q", ErrBadSplicePoint, entry)
		}
		if !found || n < splice {
			splice = n
		}
		found = true
	}
	return splice, found, nil
}
