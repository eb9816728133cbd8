package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractVideoID(t *testing.T) {
	const wantID = "dQw4w9WgXcQ"

	for _, url := range []string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s",
		"https://youtu.be/dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ?si=abcdef",
		"https://www.youtube.com/embed/dQw4w9WgXcQ",
		"https://www.youtube.com/v/dQw4w9WgXcQ",
		"https://www.youtube.com/u/2/dQw4w9WgXcQ",
		"https://www.youtube.com/watch?feature=share&v=dQw4w9WgXcQ",
		"https://www.youtube.com/embed/dQw4w9WgXcQ#t=30",
		"https://www.youtube.com/watch?v=short&v=dQw4w9WgXcQ",
	} {
		id, ok := ExtractVideoID(url)
		assert.True(t, ok, url)
		assert.Equal(t, wantID, id, url)
	}
}

func TestExtractVideoIDNotFound(t *testing.T) {
	for _, url := range []string{
		"",
		"not a url at all",
		"https://example.com/watch?v=tooshort",
		"https://www.youtube.com/watch?v=waytoolongvideoid",
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ&v=bad",
		"https://www.youtube.com/watch",
		"https://youtu.be/",
	} {
		id, ok := ExtractVideoID(url)
		assert.False(t, ok, url)
		assert.Empty(t, id, url)
	}
}
