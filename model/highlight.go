package model

import (
	"fmt"
	"strconv"
	"strings"
)

// HighlightTimestamp is one AI-inferred moment of interest in a source video.
// A highlight set keeps the narrative order of the video, it is not ranked.
type HighlightTimestamp struct {
	Time        string `json:"time"`
	Description string `json:"description"`
	Reason      string `json:"reason"`
}

// Seconds converts the MM:SS offset to a second count. Entries that fail this
// conversion are dropped by the highlight parser rather than propagated.
func (h HighlightTimestamp) Seconds() (int, error) {
	parts := strings.Split(h.Time, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed timestamp %q", h.Time)
	}
	minutes, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("malformed timestamp %q: %w", h.Time, err)
	}
	seconds, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("malformed timestamp %q: %w", h.Time, err)
	}
	if minutes < 0 || seconds < 0 {
		return 0, fmt.Errorf("negative timestamp %q", h.Time)
	}
	return minutes*60 + seconds, nil
}
