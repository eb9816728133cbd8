package youtube

import "regexp"

// The provider hands out opaque 11-character video IDs.
const videoIDLength = 11

var videoIDPattern = regexp.MustCompile(`(?:youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*)`)

// ExtractVideoID pulls the canonical video ID out of the common URL shapes
// (watch?v=, youtu.be/, embed/, v/, u/<char>/). When a URL carries more than
// one candidate marker the last one wins, so a trailing &v= parameter
// overrides an earlier value. It reports false when no 11-character ID is
// found; that is a validation outcome, not a failure.
func ExtractVideoID(url string) (string, bool) {
	matches := videoIDPattern.FindAllStringSubmatch(url, -1)
	if len(matches) == 0 {
		return "", false
	}

	id := matches[len(matches)-1][1]
	if len(id) != videoIDLength {
		return "", false
	}

	return id, true
}
